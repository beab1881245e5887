package tempfile

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStore_WriteTemp_RoundTripAndCleanup(t *testing.T) {
	store := NewStore(t.TempDir(), nil)

	path, cleanup, err := store.WriteTemp([]byte("png-bytes"))
	require.NoError(t, err)
	require.NotNil(t, cleanup)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, []byte("png-bytes"), data)
	assert.True(t, strings.HasPrefix(filepath.Base(path), "qrstamp-"))
	assert.True(t, strings.HasSuffix(path, ".png"))

	cleanup()
	_, err = os.Stat(path)
	assert.True(t, os.IsNotExist(err))
}

func TestStore_WriteTemp_UniquePaths(t *testing.T) {
	store := NewStore(t.TempDir(), nil)

	first, cleanupFirst, err := store.WriteTemp([]byte("a"))
	require.NoError(t, err)
	defer cleanupFirst()

	second, cleanupSecond, err := store.WriteTemp([]byte("b"))
	require.NoError(t, err)
	defer cleanupSecond()

	assert.NotEqual(t, first, second)
}

func TestStore_WriteTemp_CleanupTwiceIsSafe(t *testing.T) {
	store := NewStore(t.TempDir(), nil)

	_, cleanup, err := store.WriteTemp([]byte("a"))
	require.NoError(t, err)

	cleanup()
	assert.NotPanics(t, cleanup)
}

func TestStore_WriteFile_CreatesParentDirs(t *testing.T) {
	store := NewStore("", nil)
	path := filepath.Join(t.TempDir(), "nested", "out", "stamp.png")

	err := store.WriteFile(path, []byte("png"))
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, []byte("png"), data)
}

func TestStore_WriteFile_ErrorCarriesPath(t *testing.T) {
	store := NewStore("", nil)
	dir := t.TempDir()

	// The target path is occupied by a directory, so the write must fail.
	target := filepath.Join(dir, "occupied")
	require.NoError(t, os.Mkdir(target, 0755))

	err := store.WriteFile(target, []byte("png"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), target)
}
