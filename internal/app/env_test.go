package app

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadEnvFile(t *testing.T) {
	// --- Arrange ---
	const key = "FIGVARS_ENV_FILE_TEST_TOKEN"
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte(key+"=from-file\n"), 0o600))
	t.Cleanup(func() { _ = os.Unsetenv(key) })

	// --- Act ---
	err := LoadEnvFile(path)

	// --- Assert ---
	require.NoError(t, err)
	assert.Equal(t, "from-file", os.Getenv(key))
}

func TestLoadEnvFile_KeepsExisting(t *testing.T) {
	const key = "FIGVARS_ENV_FILE_TEST_EXISTING"
	t.Setenv(key, "from-env")
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte(key+"=from-file\n"), 0o600))

	require.NoError(t, LoadEnvFile(path))

	assert.Equal(t, "from-env", os.Getenv(key))
}

func TestLoadEnvFile_MissingOrEmpty(t *testing.T) {
	t.Parallel()

	require.NoError(t, LoadEnvFile(""))
	require.NoError(t, LoadEnvFile(filepath.Join(t.TempDir(), "nope.env")))
	require.Error(t, LoadEnvFile(t.TempDir()), "a directory is rejected")
}
