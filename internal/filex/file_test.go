package filex

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEnsureParentDir_CreatesNestedDirectories(t *testing.T) {
	tmp := t.TempDir()
	dir := filepath.Join(tmp, "var", "scan")

	require.NoError(t, EnsureParentDir(filepath.Join(dir, "scan.db")))

	fi, err := os.Stat(dir)
	require.NoError(t, err)
	require.True(t, fi.IsDir(), "should create a directory")

	if runtime.GOOS != "windows" {
		require.Equal(t, os.FileMode(0o700), fi.Mode().Perm()&0o700)
	}
}

func TestEnsureParentDir_Idempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data", "scan.db")

	require.NoError(t, EnsureParentDir(path))
	require.NoError(t, EnsureParentDir(path))
}

func TestEnsureParentDir_URI(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "uri")

	require.NoError(t, EnsureParentDir("file:"+filepath.Join(dir, "scan.db")+"?mode=rwc"))
	_, err := os.Stat(dir)
	require.NoError(t, err)
}

func TestEnsureParentDir_NothingToCreate(t *testing.T) {
	require.NoError(t, EnsureParentDir("scan.db"))
	require.NoError(t, EnsureParentDir(":memory:"))
	require.NoError(t, EnsureParentDir(""))
}

func TestEnsureParentDir_FailsIfFileInTheWay(t *testing.T) {
	tmp := t.TempDir()
	blocker := filepath.Join(tmp, "data")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0o660))

	err := EnsureParentDir(filepath.Join(blocker, "scan.db"))
	require.Error(t, err, "should fail when a file exists with the directory's name")
}
