package archive

import (
	"archive/zip"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/maximvlah/ntf/internal/domain"
)

func writeZip(t *testing.T, entries map[string]string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "upload.zip")
	f, err := os.Create(path)
	require.NoError(t, err)
	defer func() { _ = f.Close() }()

	w := zip.NewWriter(f)
	for name, content := range entries {
		entry, err := w.Create(name)
		require.NoError(t, err)
		_, err = entry.Write([]byte(content))
		require.NoError(t, err)
	}
	require.NoError(t, w.Close())
	return path
}

func TestExtractZip_RoundTrip(t *testing.T) {
	src := writeZip(t, map[string]string{
		"receipts/a.json": `{"x":1}`,
		"b.JSON":          `{"y":2}`,
		"notes.txt":       "ignore me",
	})
	dest := filepath.Join(t.TempDir(), "work")

	require.NoError(t, ExtractZip(src, dest))

	data, err := os.ReadFile(filepath.Join(dest, "receipts", "a.json"))
	require.NoError(t, err)
	assert.Equal(t, `{"x":1}`, string(data))
}

func TestExtractZip_NotAnArchive(t *testing.T) {
	path := filepath.Join(t.TempDir(), "garbage.zip")
	require.NoError(t, os.WriteFile(path, []byte("this is not a zip"), 0o644))

	err := ExtractZip(path, t.TempDir())
	assert.ErrorIs(t, err, domain.ErrInvalidArchive)
}

func TestExtractZip_RejectsEscapingEntry(t *testing.T) {
	src := writeZip(t, map[string]string{
		"../evil.json": `{}`,
	})
	dest := filepath.Join(t.TempDir(), "work")

	err := ExtractZip(src, dest)
	assert.ErrorIs(t, err, domain.ErrInvalidArchive)
	assert.NoFileExists(t, filepath.Join(filepath.Dir(dest), "evil.json"))
}

func TestFindDocuments_RecursiveAndSorted(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(root, "nested", "deep"), 0o755))
	for _, name := range []string{
		"zulu.json",
		"alpha.json",
		filepath.Join("nested", "doc.JSON"),
		filepath.Join("nested", "deep", "last.json"),
		"readme.txt",
	} {
		require.NoError(t, os.WriteFile(filepath.Join(root, name), []byte("{}"), 0o644))
	}

	paths, err := FindDocuments(root)
	require.NoError(t, err)

	require.Len(t, paths, 4)
	assert.True(t, sortedStrings(paths), "paths should be sorted: %v", paths)
	for _, p := range paths {
		assert.NotContains(t, p, "readme")
	}
}

func TestFindDocuments_EmptyDir(t *testing.T) {
	paths, err := FindDocuments(t.TempDir())
	require.NoError(t, err)
	assert.Empty(t, paths)
}

func sortedStrings(s []string) bool {
	for i := 1; i < len(s); i++ {
		if s[i] < s[i-1] {
			return false
		}
	}
	return true
}
