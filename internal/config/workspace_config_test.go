package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/require"
)

func stringPtr(s string) *string {
	return &s
}

func TestGetFallbackBranch(t *testing.T) {
	t.Parallel()

	t.Run("returns develop when config does not exist", func(t *testing.T) {
		t.Parallel()
		branch, err := GetFallbackBranch(t.TempDir())
		require.NoError(t, err)
		require.Equal(t, "develop", branch)
	})

	t.Run("returns the configured branch", func(t *testing.T) {
		t.Parallel()
		root := t.TempDir()
		require.NoError(t, write(root, &WorkspaceConfig{FallbackBranch: stringPtr("main")}))

		branch, err := GetFallbackBranch(root)
		require.NoError(t, err)
		require.Equal(t, "main", branch)
	})

	t.Run("empty value falls back to develop", func(t *testing.T) {
		t.Parallel()
		root := t.TempDir()
		require.NoError(t, write(root, &WorkspaceConfig{FallbackBranch: stringPtr("")}))

		branch, err := GetFallbackBranch(root)
		require.NoError(t, err)
		require.Equal(t, "develop", branch)
	})

	t.Run("returns an error for malformed config", func(t *testing.T) {
		t.Parallel()
		root := t.TempDir()
		require.NoError(t, os.WriteFile(Path(root), []byte("{not json"), 0600))

		_, err := GetFallbackBranch(root)
		require.Error(t, err)
	})
}

func TestSetFallbackBranch(t *testing.T) {
	t.Parallel()
	root := t.TempDir()

	require.NoError(t, Initialize(root))
	require.NoError(t, SetFallbackBranch(root, "trunk"))

	branch, err := GetFallbackBranch(root)
	require.NoError(t, err)
	require.Equal(t, "trunk", branch)
	require.True(t, IsInitialized(root))

	require.Error(t, SetFallbackBranch(root, ""))
}

func TestInitialize(t *testing.T) {
	t.Parallel()
	root := t.TempDir()

	require.False(t, IsInitialized(root))
	require.NoError(t, SetFallbackBranch(root, "main"))
	require.False(t, IsInitialized(root))

	require.NoError(t, Initialize(root))
	require.True(t, IsInitialized(root))

	branch, err := GetFallbackBranch(root)
	require.NoError(t, err)
	require.Equal(t, "main", branch)

	logFile, err := GetLogFile(root)
	require.NoError(t, err)
	require.Empty(t, logFile)
}
