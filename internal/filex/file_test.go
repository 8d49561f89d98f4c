package filex

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEnsureDir_CreatesDirectory(t *testing.T) {
	tmp := t.TempDir()

	dir := filepath.Join(tmp, "downloads")
	got, err := EnsureDir(dir)
	require.NoError(t, err)
	require.Equal(t, dir, got)

	fi, err := os.Stat(dir)
	require.NoError(t, err)
	require.True(t, fi.IsDir(), "should create a directory")
}

func TestEnsureDir_ExistingDirectoryIsFine(t *testing.T) {
	tmp := t.TempDir()

	_, err := EnsureDir(tmp)
	require.NoError(t, err)
}

func TestWriteTo_CreatesFileWithContent(t *testing.T) {
	tmp := t.TempDir()

	path, err := WriteTo(filepath.Join(tmp, "out"), "d1.pdf", []byte("%PDF-1.7 data"))
	require.NoError(t, err)
	require.Equal(t, filepath.Join(tmp, "out", "d1.pdf"), path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, "%PDF-1.7 data", string(data))
}
