package archive

import (
	"archive/zip"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// buildZip writes a zip archive with the given name->content entries.
func buildZip(t *testing.T, path string, entries map[string]string) {
	t.Helper()
	f, err := os.Create(path)
	require.NoError(t, err)
	defer f.Close()

	zw := zip.NewWriter(f)
	for name, content := range entries {
		w, err := zw.Create(name)
		require.NoError(t, err)
		_, err = w.Write([]byte(content))
		require.NoError(t, err)
	}
	require.NoError(t, zw.Close())
}

func TestUnzip(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "dataset.zip")
	buildZip(t, src, map[string]string{
		"enwiki_namespace_0/chunk_0001.jsonl": "{\"id\": 1}\n",
		"frwiki_namespace_0/chunk_0001.jsonl": "{\"id\": 2}\n",
	})

	dest := filepath.Join(dir, "data")
	require.NoError(t, Unzip(src, dest))

	content, err := os.ReadFile(filepath.Join(dest, "enwiki_namespace_0", "chunk_0001.jsonl"))
	require.NoError(t, err)
	assert.Equal(t, "{\"id\": 1}\n", string(content))

	_, err = os.Stat(filepath.Join(dest, "frwiki_namespace_0", "chunk_0001.jsonl"))
	assert.NoError(t, err)
}

func TestUnzip_RejectsTraversal(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "evil.zip")
	buildZip(t, src, map[string]string{
		"../evil.jsonl": "{}\n",
	})

	err := Unzip(src, filepath.Join(dir, "data"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "escapes destination")
}

func TestUnzip_MissingArchive(t *testing.T) {
	err := Unzip(filepath.Join(t.TempDir(), "missing.zip"), t.TempDir())
	assert.Error(t, err)
}
