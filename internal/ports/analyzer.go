// Package ports defines the interfaces between the analysis core and its
// adapters (tree-sitter, bbolt, fsnotify). The orchestrator in internal/app
// depends only on these.
package ports

import "github.com/corey/leafsift/internal/domain/classifier"

// Analyzer classifies leaf candidates for one language. The concrete
// implementations (tree-sitter rule engines) live in
// internal/adapters/treesitter. An Analyzer owns its parser instance and is
// not safe for concurrent use; each worker constructs its own.
type Analyzer interface {
	// Language returns the language identifier, e.g. "java".
	Language() string

	// Extension returns the source file extension including the leading
	// dot, e.g. ".java". One extension per language.
	Extension() string

	// Artifact returns the output artifact base name, e.g. "java_leaf".
	Artifact() string

	// ProjectScoped reports whether the symbol set spans every file in the
	// directory. When true, the orchestrator runs CollectSymbols over all
	// files before any MatchLeafBlocks call; when false, MatchLeafBlocks
	// builds its own file-local set and the passed set may be nil.
	ProjectScoped() bool

	// CollectSymbols parses source and adds every callable definition it
	// finds to set.
	CollectSymbols(path string, source []byte, set *classifier.SymbolSet) error

	// MatchLeafBlocks parses source and returns the leaf candidate records
	// for it, in document order.
	MatchLeafBlocks(path string, source []byte, set *classifier.SymbolSet) ([]classifier.FunctionRecord, error)

	// Close releases the parser resources owned by the analyzer.
	Close()
}
