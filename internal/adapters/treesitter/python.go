package treesitter

import (
	"strings"

	tree_sitter "github.com/tree-sitter/go-tree-sitter"

	"github.com/corey/leafsift/internal/domain/classifier"
)

// PythonAnalyzer classifies Python functions as leaf candidates. Python
// has no native overloading, so signature identity is the bare name, and
// the symbol set spans every file in the directory: the orchestrator runs
// CollectSymbols over all files before any classification, so a call to a
// same-named function defined elsewhere still disqualifies a candidate.
type PythonAnalyzer struct {
	adapter *Adapter
	parser  *Parser
}

// NewPythonAnalyzer constructs the analyzer with its own parser bound to
// the Python grammar.
func NewPythonAnalyzer(a *Adapter) (*PythonAnalyzer, error) {
	p, err := a.Parser("python")
	if err != nil {
		return nil, err
	}
	return &PythonAnalyzer{adapter: a, parser: p}, nil
}

func (p *PythonAnalyzer) Language() string    { return "python" }
func (p *PythonAnalyzer) Extension() string   { return ".py" }
func (p *PythonAnalyzer) Artifact() string    { return "python_leaf" }
func (p *PythonAnalyzer) ProjectScoped() bool { return true }
func (p *PythonAnalyzer) Close()              { p.adapter.Close() }

// CollectSymbols adds the name of every function defined in source to set.
func (p *PythonAnalyzer) CollectSymbols(path string, source []byte, set *classifier.SymbolSet) error {
	tree, err := p.parser.Parse(source)
	if err != nil {
		return err
	}
	defer tree.Close()

	for _, fn := range collectKind(tree.RootNode(), "function_definition") {
		if nm := fn.ChildByFieldName("name"); nm != nil {
			set.Add(classifier.Signature{Name: nodeText(nm, source), File: path})
		}
	}
	return nil
}

// MatchLeafBlocks classifies every function in source against the
// project-wide symbol set and returns the leaf records in document order.
func (p *PythonAnalyzer) MatchLeafBlocks(path string, source []byte, set *classifier.SymbolSet) ([]classifier.FunctionRecord, error) {
	tree, err := p.parser.Parse(source)
	if err != nil {
		return nil, err
	}
	defer tree.Close()

	if set == nil {
		set = classifier.NewSymbolSet(false)
	}

	var records []classifier.FunctionRecord
	for _, fn := range collectKind(tree.RootNode(), "function_definition") {
		if p.isLeafFunction(fn, source, set) {
			records = append(records, classifier.FunctionRecord{
				Code:      classifier.SliceLines(source, startLine(fn), endLine(fn)),
				FilePath:  path,
				StartLine: startLine(fn),
				EndLine:   endLine(fn),
				IsLeaf:    true,
			})
		}
	}
	return records, nil
}

// isLeafFunction applies the Python leaf rules: not a dunder, has body,
// basic type hints where present, not an undecorated instance method, no
// calls to other project-defined functions.
func (p *PythonAnalyzer) isLeafFunction(fn *tree_sitter.Node, source []byte, set *classifier.SymbolSet) bool {
	name := ""
	if nm := fn.ChildByFieldName("name"); nm != nil {
		name = nodeText(nm, source)
	}

	// Dunder/internal methods are always excluded.
	if classifier.IsDunderName(name) {
		return false
	}

	body := fn.ChildByFieldName("body")
	if body == nil {
		return false
	}

	// An absent return hint satisfies the basic-type rule; a present one
	// must name a basic shape.
	if rt := fn.ChildByFieldName("return_type"); rt != nil && !classifier.IsBasicPythonType(nodeText(rt, source)) {
		return false
	}

	params := pythonParameters(fn, source)
	for _, param := range params {
		if param.typeText != "" && !classifier.IsBasicPythonType(param.typeText) {
			return false
		}
	}

	// A first parameter named "self" marks an instance method unless an
	// explicit @staticmethod decorator overrides the convention.
	if len(params) > 0 && params[0].name == "self" && !pythonIsStaticMethod(fn, source) {
		return false
	}

	// Calls are resolved both as bare names and attribute invocations
	// (self.foo()); matching any project-defined name other than the
	// candidate's own disqualifies it.
	callsOther := false
	Walk(body, func(n *tree_sitter.Node) bool {
		if callsOther {
			return false
		}
		if n.Kind() != "call" {
			return true
		}
		callee := pythonCalleeName(n, source)
		if callee != "" && callee != name && set.Contains(callee, 0) {
			callsOther = true
			return false
		}
		return true
	})
	return !callsOther
}

// pythonParam is a declared parameter: its name and type hint text, empty
// when no hint is present.
type pythonParam struct {
	name     string
	typeText string
}

// pythonParameters extracts the declared parameters of a function
// definition across the grammar's parameter node shapes.
func pythonParameters(fn *tree_sitter.Node, source []byte) []pythonParam {
	list := fn.ChildByFieldName("parameters")
	if list == nil {
		return nil
	}
	var params []pythonParam
	for i := uint(0); i < list.NamedChildCount(); i++ {
		c := list.NamedChild(i)
		if c == nil {
			continue
		}
		switch c.Kind() {
		case "identifier":
			params = append(params, pythonParam{name: nodeText(c, source)})
		case "typed_parameter":
			p := pythonParam{}
			if c.ChildCount() > 0 {
				p.name = nodeText(c.Child(0), source)
			}
			if t := c.ChildByFieldName("type"); t != nil {
				p.typeText = nodeText(t, source)
			}
			params = append(params, p)
		case "default_parameter", "typed_default_parameter":
			p := pythonParam{}
			if nm := c.ChildByFieldName("name"); nm != nil {
				p.name = nodeText(nm, source)
			}
			if t := c.ChildByFieldName("type"); t != nil {
				p.typeText = nodeText(t, source)
			}
			params = append(params, p)
		case "list_splat_pattern", "dictionary_splat_pattern":
			// *args / **kwargs carry no hint and never denote the instance.
			if c.NamedChildCount() > 0 {
				params = append(params, pythonParam{name: nodeText(c.NamedChild(0), source)})
			}
		}
	}
	return params
}

// pythonIsStaticMethod reports whether the function definition sits under
// a decorated_definition carrying @staticmethod.
func pythonIsStaticMethod(fn *tree_sitter.Node, source []byte) bool {
	parent := fn.Parent()
	if parent == nil || parent.Kind() != "decorated_definition" {
		return false
	}
	for i := uint(0); i < parent.ChildCount(); i++ {
		c := parent.Child(i)
		if c != nil && c.Kind() == "decorator" && strings.Contains(nodeText(c, source), "staticmethod") {
			return true
		}
	}
	return false
}

// pythonCalleeName resolves the called name of a call node: a bare
// identifier, or the attribute of an attribute access (obj.foo()).
func pythonCalleeName(call *tree_sitter.Node, source []byte) string {
	fn := call.ChildByFieldName("function")
	if fn == nil {
		return ""
	}
	switch fn.Kind() {
	case "identifier":
		return nodeText(fn, source)
	case "attribute":
		if attr := fn.ChildByFieldName("attribute"); attr != nil && attr.Kind() == "identifier" {
			return nodeText(attr, source)
		}
	}
	return ""
}
