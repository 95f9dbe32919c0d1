// Package treesitter implements source parsing and per-language leaf
// classification using tree-sitter grammars. Java and Python grammars are
// compiled in via CGo from the official binding modules; additional
// grammars can be loaded at runtime from shared libraries via purego.
package treesitter

import (
	"fmt"
	"unsafe"

	tree_sitter "github.com/tree-sitter/go-tree-sitter"
	ts_java "github.com/tree-sitter/tree-sitter-java/bindings/go"
	ts_python "github.com/tree-sitter/tree-sitter-python/bindings/go"
)

// Adapter resolves grammars and hands out language-bound parsers. Exactly
// one parser is constructed per language per adapter; workers each own
// their own Adapter, so no parser is shared across goroutines.
type Adapter struct {
	languages map[string]*tree_sitter.Language
	parsers   map[string]*Parser
	loader    *DynamicLoader
}

// langPtr wraps a binding Language() call that returns unsafe.Pointer.
func langPtr(p unsafe.Pointer) *tree_sitter.Language {
	return tree_sitter.NewLanguage(p)
}

// NewAdapter creates an adapter with the compiled-in grammars registered.
// When grammarPaths are given, grammars missing from the built-in set are
// searched as shared libraries in those directories.
func NewAdapter(grammarPaths ...string) *Adapter {
	a := &Adapter{
		languages: make(map[string]*tree_sitter.Language),
		parsers:   make(map[string]*Parser),
	}
	a.languages["java"] = langPtr(ts_java.Language())
	a.languages["python"] = langPtr(ts_python.Language())
	if len(grammarPaths) > 0 {
		a.loader = NewDynamicLoader(grammarPaths)
	}
	return a
}

// Language resolves a grammar by name: built-in first, then the dynamic
// loader. A missing grammar is a configuration error and aborts the run
// for that language.
func (a *Adapter) Language(name string) (*tree_sitter.Language, error) {
	if lang, ok := a.languages[name]; ok {
		return lang, nil
	}
	if a.loader != nil {
		lang, err := a.loader.LoadGrammar(name)
		if err == nil {
			a.languages[name] = lang
			return lang, nil
		}
	}
	return nil, fmt.Errorf("no grammar available for language %q", name)
}

// Parser returns the cached parser for a language, constructing it on
// first use.
func (a *Adapter) Parser(name string) (*Parser, error) {
	if p, ok := a.parsers[name]; ok {
		return p, nil
	}
	lang, err := a.Language(name)
	if err != nil {
		return nil, err
	}
	tsp := tree_sitter.NewParser()
	if err := tsp.SetLanguage(lang); err != nil {
		tsp.Close()
		return nil, fmt.Errorf("bind grammar %q: %w", name, err)
	}
	p := &Parser{name: name, ts: tsp}
	a.parsers[name] = p
	return p, nil
}

// Loader returns the dynamic grammar loader, or nil if not configured.
func (a *Adapter) Loader() *DynamicLoader {
	return a.loader
}

// Close releases every parser the adapter constructed.
func (a *Adapter) Close() {
	for _, p := range a.parsers {
		p.ts.Close()
	}
	a.parsers = make(map[string]*Parser)
	if a.loader != nil {
		a.loader.Close()
	}
}

// Parser wraps a tree-sitter parser bound to one grammar. Not safe for
// concurrent use.
type Parser struct {
	name string
	ts   *tree_sitter.Parser
}

// Parse parses source into a syntax tree. The caller owns the tree and
// must Close it; trees are never retained across files.
func (p *Parser) Parse(source []byte) (*tree_sitter.Tree, error) {
	tree := p.ts.Parse(source, nil)
	if tree == nil {
		return nil, fmt.Errorf("parse failed for language %q", p.name)
	}
	return tree, nil
}

// nodeText returns the source text for a node by byte span.
func nodeText(n *tree_sitter.Node, source []byte) string {
	start, end := n.StartByte(), n.EndByte()
	if int(start) >= len(source) || int(end) > len(source) {
		return ""
	}
	return string(source[start:end])
}

// startLine and endLine convert a node's row span to 1-based inclusive lines.
func startLine(n *tree_sitter.Node) int { return int(n.StartPosition().Row) + 1 }
func endLine(n *tree_sitter.Node) int   { return int(n.EndPosition().Row) + 1 }
