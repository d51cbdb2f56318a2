package fsutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func touch(t *testing.T, path string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, nil, 0o644))
}

func TestFindFilesByExtension(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	dir := t.TempDir()
	touch(t, filepath.Join(dir, "b.hcl"))
	touch(t, filepath.Join(dir, "nested", "a.hcl"))
	touch(t, filepath.Join(dir, "notes.txt"))
	single := filepath.Join(dir, "b.hcl")

	// --- Act ---
	files, err := FindFilesByExtension(".hcl", dir, single, filepath.Join(dir, "missing"))

	// --- Assert ---
	require.NoError(t, err)
	assert.Equal(t, []string{
		filepath.Join(dir, "b.hcl"),
		filepath.Join(dir, "nested", "a.hcl"),
	}, files)
}

func TestFindFilesByExtension_SingleFileWrongExtension(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "config.json")
	touch(t, path)

	files, err := FindFilesByExtension(".hcl", path)

	require.NoError(t, err)
	assert.Empty(t, files)
}

func TestFindFilesByExtension_EmptyExtension(t *testing.T) {
	t.Parallel()

	_, err := FindFilesByExtension("", t.TempDir())

	require.Error(t, err)
}
