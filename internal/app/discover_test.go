package app

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, path string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte("content"), 0o644))
}

func baseNames(paths []string) []string {
	names := make([]string, len(paths))
	for i, p := range paths {
		names[i] = filepath.Base(p)
	}
	return names
}

func TestFindSourceFiles_FiltersByExtension(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "Main.java"))
	writeFile(t, filepath.Join(dir, "util.py"))
	writeFile(t, filepath.Join(dir, "sub", "Helper.java"))
	writeFile(t, filepath.Join(dir, "notes.txt"))

	files, err := FindSourceFiles(dir, ".java", nil)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"Main.java", "Helper.java"}, baseNames(files))

	files, err = FindSourceFiles(dir, ".py", nil)
	require.NoError(t, err)
	assert.Equal(t, []string{"util.py"}, baseNames(files))
}

func TestFindSourceFiles_ExtensionCaseInsensitive(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "Legacy.JAVA"))

	files, err := FindSourceFiles(dir, ".java", nil)
	require.NoError(t, err)
	assert.Equal(t, []string{"Legacy.JAVA"}, baseNames(files))
}

func TestFindSourceFiles_SkipsToolingDirs(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "Main.java"))
	writeFile(t, filepath.Join(dir, ".git", "Hook.java"))
	writeFile(t, filepath.Join(dir, "node_modules", "Dep.java"))
	writeFile(t, filepath.Join(dir, "__pycache__", "cached.py"))
	writeFile(t, filepath.Join(dir, ".leafsift", "Stale.java"))

	files, err := FindSourceFiles(dir, ".java", nil)
	require.NoError(t, err)
	assert.Equal(t, []string{"Main.java"}, baseNames(files))
}

func TestFindSourceFiles_ExcludeGlobs(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "Main.java"))
	writeFile(t, filepath.Join(dir, "gen", "Stub.java"))
	writeFile(t, filepath.Join(dir, "src", "gen", "Deep.java"))
	writeFile(t, filepath.Join(dir, "src", "Real.java"))

	files, err := FindSourceFiles(dir, ".java", []string{"**/gen/**", "gen/**"})
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"Main.java", "Real.java"}, baseNames(files))
}

func TestFindSourceFiles_Sorted(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "b.py"))
	writeFile(t, filepath.Join(dir, "a.py"))
	writeFile(t, filepath.Join(dir, "c.py"))

	files, err := FindSourceFiles(dir, ".py", nil)
	require.NoError(t, err)
	assert.Equal(t, []string{"a.py", "b.py", "c.py"}, baseNames(files))
}

func TestListUnits_Subdirectories(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "projB", "b.py"))
	writeFile(t, filepath.Join(root, "projA", "a.py"))
	writeFile(t, filepath.Join(root, "stray.py"))
	require.NoError(t, os.MkdirAll(filepath.Join(root, ".git"), 0o755))

	units, err := ListUnits(root)
	require.NoError(t, err)
	assert.Equal(t, []string{
		filepath.Join(root, "projA"),
		filepath.Join(root, "projB"),
	}, units)
}

func TestListUnits_FlatRoot(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "only.py"))

	// A root without subdirectories is its own single unit.
	units, err := ListUnits(root)
	require.NoError(t, err)
	assert.Equal(t, []string{root}, units)
}

func TestOwningUnit(t *testing.T) {
	root := filepath.Join("/data", "corpus")

	assert.Equal(t, filepath.Join(root, "projA"),
		OwningUnit(root, filepath.Join(root, "projA", "src", "Main.java")))
	assert.Equal(t, filepath.Join(root, "projB"),
		OwningUnit(root, filepath.Join(root, "projB", "util.py")))

	// Files directly under the root, or outside it, map to the root.
	assert.Equal(t, root, OwningUnit(root, filepath.Join(root, "stray.py")))
	assert.Equal(t, root, OwningUnit(root, "/elsewhere/x.py"))
}
