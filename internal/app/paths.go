package app

import (
	"os"
	"path/filepath"
)

// Paths holds the resolved filesystem layout of the .leafsift/ workspace
// under a dataset root. All fields are pre-computed strings.
type Paths struct {
	Root        string // .leafsift/
	LedgerDB    string // .leafsift/runs.db
	GrammarsDir string // .leafsift/grammars/
}

// NewPaths constructs all resolved paths from a dataset root directory.
func NewPaths(datasetRoot string) *Paths {
	root := filepath.Join(datasetRoot, ".leafsift")
	return &Paths{
		Root:        root,
		LedgerDB:    filepath.Join(root, "runs.db"),
		GrammarsDir: filepath.Join(root, "grammars"),
	}
}

// EnsureDirs creates the workspace directories. Idempotent.
func (p *Paths) EnsureDirs() error {
	for _, d := range []string{p.Root, p.GrammarsDir} {
		if err := os.MkdirAll(d, 0755); err != nil {
			return err
		}
	}
	return nil
}
