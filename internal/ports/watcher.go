package ports

// Watcher monitors a directory tree for source changes. The concrete
// implementation (fsnotify) lives in internal/adapters/fsnotify.
type Watcher interface {
	// Watch starts monitoring root recursively. onChange is called with
	// the absolute path of each changed file.
	Watch(root string, onChange func(path string)) error

	// Stop ends monitoring and releases resources. Safe to call twice.
	Stop() error
}
