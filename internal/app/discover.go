package app

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// skipDirs lists directory names never descended into during discovery,
// regardless of exclude patterns.
var skipDirs = map[string]bool{
	".git":         true,
	"node_modules": true,
	".venv":        true,
	"__pycache__":  true,
	"vendor":       true,
	".idea":        true,
	".vscode":      true,
	"dist":         true,
	"build":        true,
	"target":       true,
	".leafsift":    true,
}

// FindSourceFiles walks dir and returns the files carrying ext (including
// the leading dot), sorted, filtered by the exclude globs. Unreadable
// entries are skipped, not fatal.
func FindSourceFiles(dir, ext string, excludes []string) ([]string, error) {
	absDir, err := filepath.Abs(dir)
	if err != nil {
		return nil, err
	}

	var files []string
	err = filepath.Walk(absDir, func(path string, info os.FileInfo, walkErr error) error {
		if walkErr != nil {
			return nil // skip unreadable
		}
		rel, relErr := filepath.Rel(absDir, path)
		if relErr != nil {
			return nil
		}
		if info.IsDir() {
			if path != absDir && (skipDirs[info.Name()] || matchesAny(excludes, rel+"/")) {
				return filepath.SkipDir
			}
			return nil
		}
		if !strings.EqualFold(filepath.Ext(path), ext) {
			return nil
		}
		if matchesAny(excludes, rel) {
			return nil
		}
		files = append(files, path)
		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.Strings(files)
	return files, nil
}

// matchesAny reports whether relPath matches any doublestar pattern.
func matchesAny(patterns []string, relPath string) bool {
	slashed := filepath.ToSlash(relPath)
	for _, pattern := range patterns {
		if ok, err := doublestar.Match(pattern, slashed); err == nil && ok {
			return true
		}
	}
	return false
}

// ListUnits returns the work units under root: its immediate
// subdirectories (sorted), or root itself when it has none. Directories
// are independent units; no shared state crosses them.
func ListUnits(root string) ([]string, error) {
	entries, err := os.ReadDir(root)
	if err != nil {
		return nil, err
	}
	var units []string
	for _, e := range entries {
		if !e.IsDir() || skipDirs[e.Name()] {
			continue
		}
		units = append(units, filepath.Join(root, e.Name()))
	}
	if len(units) == 0 {
		return []string{root}, nil
	}
	sort.Strings(units)
	return units, nil
}

// OwningUnit maps a file path back to its work unit under root: the
// immediate subdirectory containing it, or root itself.
func OwningUnit(root, file string) string {
	rel, err := filepath.Rel(root, file)
	if err != nil || strings.HasPrefix(rel, "..") {
		return root
	}
	parts := strings.SplitN(filepath.ToSlash(rel), "/", 2)
	if len(parts) < 2 {
		return root
	}
	return filepath.Join(root, parts[0])
}
