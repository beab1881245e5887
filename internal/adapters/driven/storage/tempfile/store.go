// Package tempfile persists rendered PNG bytes to the local filesystem.
// Temp files are exclusively owned by the operation that created them and
// removed via the returned cleanup function on every exit path; removal
// failures are logged and ignored because they do not affect the primary
// operation.
package tempfile

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"

	"github.com/caddraft/qrstamp-cli/internal/core/ports/driven"
)

// Ensure Store implements the interface.
var _ driven.ArtifactStore = (*Store)(nil)

// Store writes artifacts under a base directory.
type Store struct {
	dir string
	log driven.Logger
}

// NewStore creates a store writing temp files under dir.
// An empty dir falls back to the OS temp directory. log may be nil.
func NewStore(dir string, log driven.Logger) *Store {
	if dir == "" {
		dir = os.TempDir()
	}
	return &Store{dir: dir, log: log}
}

// WriteTemp writes data to a fresh uniquely-named file and returns its
// path with a best-effort cleanup function.
func (s *Store) WriteTemp(data []byte) (string, func(), error) {
	path := filepath.Join(s.dir, fmt.Sprintf("qrstamp-%s.png", uuid.NewString()))
	if err := os.WriteFile(path, data, 0600); err != nil {
		return "", nil, fmt.Errorf("writing temp file %s: %w", path, err)
	}

	cleanup := func() {
		if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
			if s.log != nil {
				s.log.Warn("removing temp file %s: %v", path, err)
			}
		}
	}
	return path, cleanup, nil
}

// WriteFile writes data to a caller-chosen path, creating parent
// directories as needed.
func (s *Store) WriteFile(path string, data []byte) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("creating directory %s: %w", dir, err)
		}
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}
