package fsnotify

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func waitForPath(t *testing.T, ch <-chan string, want string) {
	t.Helper()
	deadline := time.After(2 * time.Second)
	for {
		select {
		case got := <-ch:
			if got == want {
				return
			}
		case <-deadline:
			t.Fatalf("timed out waiting for event on %s", want)
		}
	}
}

func TestWatcher_DetectsWrite(t *testing.T) {
	root := t.TempDir()
	target := filepath.Join(root, "main.py")
	require.NoError(t, os.WriteFile(target, []byte("def f():\n    pass\n"), 0o644))

	w, err := NewWatcher()
	require.NoError(t, err)
	defer w.Stop()

	events := make(chan string, 16)
	require.NoError(t, w.Watch(root, func(path string) { events <- path }))

	require.NoError(t, os.WriteFile(target, []byte("def f():\n    return 1\n"), 0o644))
	waitForPath(t, events, target)
}

func TestWatcher_DetectsCreate(t *testing.T) {
	root := t.TempDir()

	w, err := NewWatcher()
	require.NoError(t, err)
	defer w.Stop()

	events := make(chan string, 16)
	require.NoError(t, w.Watch(root, func(path string) { events <- path }))

	target := filepath.Join(root, "New.java")
	require.NoError(t, os.WriteFile(target, []byte("class New {}\n"), 0o644))
	waitForPath(t, events, target)
}

func TestWatcher_IgnoresArtifactDir(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(root, "ana_json"), 0o755))

	w, err := NewWatcher()
	require.NoError(t, err)
	defer w.Stop()

	events := make(chan string, 16)
	require.NoError(t, w.Watch(root, func(path string) { events <- path }))

	// Artifact writes must not feed back into re-analysis.
	require.NoError(t, os.WriteFile(
		filepath.Join(root, "ana_json", "java_leaf.json"), []byte("[]"), 0o644))

	seen := filepath.Join(root, "seen.py")
	require.NoError(t, os.WriteFile(seen, []byte("x = 1\n"), 0o644))
	waitForPath(t, events, seen)

	// Only the source file came through.
	for {
		select {
		case got := <-events:
			assert.NotContains(t, got, "ana_json")
		default:
			return
		}
	}
}

func TestWatcher_IgnoresCompiledFiles(t *testing.T) {
	assert.True(t, shouldIgnorePath("/data/proj/Main.class"))
	assert.True(t, shouldIgnorePath("/data/proj/mod.pyc"))
	assert.True(t, shouldIgnorePath("/data/proj/.leafsift/runs.db"))
	assert.True(t, shouldIgnorePath("/data/proj/ana_json/java_leaf.json"))
	assert.False(t, shouldIgnorePath("/data/proj/Main.java"))
	assert.False(t, shouldIgnorePath("/data/proj/util.py"))
}

func TestWatcher_StopTwice(t *testing.T) {
	w, err := NewWatcher()
	require.NoError(t, err)

	require.NoError(t, w.Stop())
	require.NoError(t, w.Stop())
}
