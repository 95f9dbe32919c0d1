// Package classifier holds the language-independent data model for leaf
// candidate extraction: callable signatures, the symbol set call sites are
// checked against, and the records the pipeline persists. The tree-walking
// rule engines that produce these live in internal/adapters/treesitter.
package classifier

import (
	"strconv"
	"strings"
)

// Signature identifies a user-defined callable. Arity participates in
// identity only for overload-aware languages; File keeps same-name
// definitions in different files distinct.
type Signature struct {
	Name  string
	Arity int
	File  string
}

// SymbolSet is the collected set of callable signatures for one scope
// (a single file for overload-aware languages, a whole directory for
// dynamically-typed ones).
type SymbolSet struct {
	overloadAware bool
	entries       map[string]map[string]struct{} // identity -> defining files
}

// NewSymbolSet creates an empty symbol set. When overloadAware is true,
// identity is (name, arity); otherwise name alone.
func NewSymbolSet(overloadAware bool) *SymbolSet {
	return &SymbolSet{
		overloadAware: overloadAware,
		entries:       make(map[string]map[string]struct{}),
	}
}

// OverloadAware reports whether arity participates in signature identity.
func (s *SymbolSet) OverloadAware() bool {
	return s.overloadAware
}

func (s *SymbolSet) identity(name string, arity int) string {
	if s.overloadAware {
		return name + ":" + strconv.Itoa(arity)
	}
	return name
}

// Add records a signature. Adding the same identity from the same file
// twice collapses to one entry.
func (s *SymbolSet) Add(sig Signature) {
	key := s.identity(sig.Name, sig.Arity)
	files, ok := s.entries[key]
	if !ok {
		files = make(map[string]struct{})
		s.entries[key] = files
	}
	files[sig.File] = struct{}{}
}

// Contains reports whether any file defines a callable with this identity.
// Arity is ignored for non-overload-aware sets.
func (s *SymbolSet) Contains(name string, arity int) bool {
	_, ok := s.entries[s.identity(name, arity)]
	return ok
}

// Len returns the number of distinct identities in the set.
func (s *SymbolSet) Len() int {
	return len(s.entries)
}

// FunctionRecord is one leaf candidate: the exact source slice and its
// 1-based inclusive line span. Only leaf records are persisted; IsLeaf is
// not serialized.
type FunctionRecord struct {
	Code      string `json:"code"`
	FilePath  string `json:"file_path"`
	StartLine int    `json:"start_line"`
	EndLine   int    `json:"end_line"`
	IsLeaf    bool   `json:"-"`
}

// SliceLines returns the text of source between startLine and endLine,
// 1-based and inclusive. The slice covers whole lines, so slicing the
// owning file by a record's span reproduces its Code field exactly.
func SliceLines(source []byte, startLine, endLine int) string {
	lines := strings.Split(string(source), "\n")
	if startLine < 1 {
		startLine = 1
	}
	if endLine > len(lines) {
		endLine = len(lines)
	}
	if startLine > endLine {
		return ""
	}
	return strings.Join(lines[startLine-1:endLine], "\n")
}
