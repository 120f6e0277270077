package driven

// FileWatcher reports changes to files below a directory.
type FileWatcher interface {
	// Watch starts monitoring root recursively. onChange is called with the
	// absolute path of each changed file, from any goroutine.
	Watch(root string, onChange func(path string)) error

	// Stop ends monitoring. No onChange calls fire after Stop returns.
	// Safe to call multiple times.
	Stop() error
}
