package fs

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalFileSystem(t *testing.T) {
	lfs := NewLocalFileSystem()
	path := filepath.Join(t.TempDir(), "values.txt")

	exists, err := lfs.Exists(path)
	require.NoError(t, err)
	assert.False(t, exists)

	require.NoError(t, lfs.WriteFile(path, 0644, []byte("79444\n")))

	exists, err = lfs.Exists(path)
	require.NoError(t, err)
	assert.True(t, exists)

	contents, err := lfs.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, []byte("79444\n"), contents)
}

func TestReadFileMissing(t *testing.T) {
	lfs := NewLocalFileSystem()

	_, err := lfs.ReadFile(filepath.Join(t.TempDir(), "missing.txt"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}
