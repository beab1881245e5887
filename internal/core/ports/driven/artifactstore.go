package driven

// ArtifactStore persists rendered PNG bytes to the filesystem.
type ArtifactStore interface {
	// WriteTemp writes data to a fresh, exclusively-owned temporary file
	// and returns its path together with a cleanup function. Cleanup is
	// best-effort: removal failures are logged and ignored because they
	// do not affect the correctness of the operation that owned the
	// file. Callers must invoke cleanup on every exit path.
	WriteTemp(data []byte) (path string, cleanup func(), err error)

	// WriteFile writes data to a caller-chosen path, creating parent
	// directories as needed. Errors carry the offending path.
	WriteFile(path string, data []byte) error
}
