package fs_test

import (
	"errors"
	iofs "io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/podfiler/internal/adapters/fs"
)

func TestFileSystem_WriteFile(t *testing.T) {
	fsys := fs.NewFileSystem()
	path := filepath.Join(t.TempDir(), "build", "nested", "pods.yml")

	require.NoError(t, fsys.WriteFile(path, []byte("first")))
	require.NoError(t, fsys.WriteFile(path, []byte("second")))

	data, err := fsys.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "second", string(data))

	entries, err := os.ReadDir(filepath.Dir(path))
	require.NoError(t, err)
	assert.Len(t, entries, 1, "temporary files must not be left behind")
}

func TestFileSystem_ReadFileMissing(t *testing.T) {
	_, err := fs.NewFileSystem().ReadFile(filepath.Join(t.TempDir(), "Podfile.lock"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, iofs.ErrNotExist))
}

func TestHasher(t *testing.T) {
	h := fs.NewHasher()
	path := filepath.Join(t.TempDir(), "Podfile.lock")
	require.NoError(t, os.WriteFile(path, []byte("PODS:\n"), 0o600))

	fromFile, err := h.HashFile(path)
	require.NoError(t, err)
	assert.Len(t, fromFile, 16)
	assert.Equal(t, h.HashBytes([]byte("PODS:\n")), fromFile)
	assert.NotEqual(t, h.HashBytes([]byte("PODS:\n\n")), fromFile)
	assert.Equal(t, "ef46db3751d8e999", h.HashBytes(nil))
}

func TestHasher_MissingFile(t *testing.T) {
	_, err := fs.NewHasher().HashFile(filepath.Join(t.TempDir(), "missing"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, iofs.ErrNotExist))
}
