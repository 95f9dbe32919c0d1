package treesitter

import (
	tree_sitter "github.com/tree-sitter/go-tree-sitter"

	"github.com/corey/leafsift/internal/domain/classifier"
)

// JavaAnalyzer classifies Java methods as leaf candidates. The symbol set
// is file-local and overload-aware: identity is (name, arity). Call sites
// are matched by syntactic arity only, so two same-arity overloads with
// different parameter types are indistinguishable.
type JavaAnalyzer struct {
	adapter *Adapter
	parser  *Parser
}

// NewJavaAnalyzer constructs the analyzer with its own parser bound to the
// Java grammar.
func NewJavaAnalyzer(a *Adapter) (*JavaAnalyzer, error) {
	p, err := a.Parser("java")
	if err != nil {
		return nil, err
	}
	return &JavaAnalyzer{adapter: a, parser: p}, nil
}

func (j *JavaAnalyzer) Language() string    { return "java" }
func (j *JavaAnalyzer) Extension() string   { return ".java" }
func (j *JavaAnalyzer) Artifact() string    { return "java_leaf" }
func (j *JavaAnalyzer) ProjectScoped() bool { return false }
func (j *JavaAnalyzer) Close()              { j.adapter.Close() }

// CollectSymbols adds a (name, arity) signature for every method declared
// in source.
func (j *JavaAnalyzer) CollectSymbols(path string, source []byte, set *classifier.SymbolSet) error {
	tree, err := j.parser.Parse(source)
	if err != nil {
		return err
	}
	defer tree.Close()

	for _, m := range collectKind(tree.RootNode(), "method_declaration") {
		set.Add(javaSignature(m, source, path))
	}
	return nil
}

// MatchLeafBlocks classifies every method in source against a fresh
// file-local symbol set and returns the leaf records in document order.
// The passed set is ignored; Java classification never crosses files.
func (j *JavaAnalyzer) MatchLeafBlocks(path string, source []byte, _ *classifier.SymbolSet) ([]classifier.FunctionRecord, error) {
	tree, err := j.parser.Parse(source)
	if err != nil {
		return nil, err
	}
	defer tree.Close()

	// First pass: every method declaration and its signature.
	methods := collectKind(tree.RootNode(), "method_declaration")
	set := classifier.NewSymbolSet(true)
	for _, m := range methods {
		set.Add(javaSignature(m, source, path))
	}

	// Second pass: apply the leaf rules per method, in order, rejecting on
	// the first failure.
	var records []classifier.FunctionRecord
	for _, m := range methods {
		if j.isLeafMethod(m, source, path, set) {
			records = append(records, classifier.FunctionRecord{
				Code:      classifier.SliceLines(source, startLine(m), endLine(m)),
				FilePath:  path,
				StartLine: startLine(m),
				EndLine:   endLine(m),
				IsLeaf:    true,
			})
		}
	}
	return records, nil
}

// javaSignature extracts the (name, arity) signature of a method
// declaration. Arity counts declared formal parameters.
func javaSignature(m *tree_sitter.Node, source []byte, path string) classifier.Signature {
	name := ""
	if n := m.ChildByFieldName("name"); n != nil {
		name = nodeText(n, source)
	}
	return classifier.Signature{
		Name:  name,
		Arity: javaParamCount(m),
		File:  path,
	}
}

// javaParamCount counts formal_parameter children of the parameters list.
func javaParamCount(m *tree_sitter.Node) int {
	params := m.ChildByFieldName("parameters")
	if params == nil {
		return 0
	}
	count := 0
	for i := uint(0); i < params.ChildCount(); i++ {
		if c := params.Child(i); c != nil && c.Kind() == "formal_parameter" {
			count++
		}
	}
	return count
}

// isLeafMethod applies the Java leaf rules in order: has body, no
// annotations, basic return type, basic parameter types, static modifier,
// no calls to other user-defined methods.
func (j *JavaAnalyzer) isLeafMethod(m *tree_sitter.Node, source []byte, path string, set *classifier.SymbolSet) bool {
	// Rule 1: a body-less declaration (abstract/interface stub) is never a leaf.
	body := m.ChildByFieldName("body")
	if body == nil {
		return false
	}

	// Rule 2: no annotation nodes among the children before the body.
	// Annotations appear inside the modifiers child, so each pre-body child
	// is scanned in depth.
	bodyStart := body.StartByte()
	for i := uint(0); i < m.ChildCount(); i++ {
		c := m.Child(i)
		if c == nil || c.StartByte() >= bodyStart {
			break
		}
		if containsKindSubstring(c, "annotation") {
			return false
		}
	}

	// Rule 3: declared return type must be void or basic.
	if t := m.ChildByFieldName("type"); t != nil && !classifier.IsBasicJavaType(nodeText(t, source)) {
		return false
	}

	// Rule 4: every declared parameter type must be basic.
	if params := m.ChildByFieldName("parameters"); params != nil {
		for i := uint(0); i < params.ChildCount(); i++ {
			c := params.Child(i)
			if c == nil || c.Kind() != "formal_parameter" {
				continue
			}
			if t := c.ChildByFieldName("type"); t != nil && !classifier.IsBasicJavaType(nodeText(t, source)) {
				return false
			}
		}
	}

	// Rule 5: instance methods implicitly depend on object state.
	if !javaIsStatic(m, source) {
		return false
	}

	// Rule 6: no invocation of another signature in the file's symbol set.
	// A call matching the candidate's own signature (direct recursion) is
	// treated as self-contained.
	own := javaSignature(m, source, path)
	callsOther := false
	Walk(body, func(n *tree_sitter.Node) bool {
		if callsOther {
			return false
		}
		if n.Kind() != "method_invocation" {
			return true
		}
		callee := ""
		if nm := n.ChildByFieldName("name"); nm != nil {
			callee = nodeText(nm, source)
		}
		arity := javaArgCount(n)
		if set.Contains(callee, arity) && !(callee == own.Name && arity == own.Arity) {
			callsOther = true
			return false
		}
		return true
	})
	return !callsOther
}

// javaIsStatic reports whether the method carries a static modifier.
func javaIsStatic(m *tree_sitter.Node, source []byte) bool {
	for i := uint(0); i < m.ChildCount(); i++ {
		c := m.Child(i)
		if c == nil || c.Kind() != "modifiers" {
			continue
		}
		for k := uint(0); k < c.ChildCount(); k++ {
			if mod := c.Child(k); mod != nil && nodeText(mod, source) == "static" {
				return true
			}
		}
		return false
	}
	return false
}

// javaArgCount counts argument expressions of a method invocation,
// skipping punctuation and comments.
func javaArgCount(call *tree_sitter.Node) int {
	args := call.ChildByFieldName("arguments")
	if args == nil {
		return 0
	}
	count := 0
	for i := uint(0); i < args.NamedChildCount(); i++ {
		c := args.NamedChild(i)
		if c == nil {
			continue
		}
		switch c.Kind() {
		case "comment", "line_comment", "block_comment":
			continue
		}
		count++
	}
	return count
}
