package filex

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnsureSubDir_CreatesDirectoryUnderBase(t *testing.T) {
	base := t.TempDir()

	got, err := EnsureSubDir(base, "views")
	require.NoError(t, err)
	require.Equal(t, filepath.Join(base, "views"), got)

	fi, err := os.Stat(got)
	require.NoError(t, err)
	require.True(t, fi.IsDir())

	again, err := EnsureSubDir(base, "views")
	require.NoError(t, err)
	require.Equal(t, got, again)
}

func TestEnsureSubDir_FailsWhenBaseIsAFile(t *testing.T) {
	base := filepath.Join(t.TempDir(), "plain")
	require.NoError(t, os.WriteFile(base, []byte("x"), 0o600))

	_, err := EnsureSubDir(base, "views")
	require.Error(t, err)
}

func TestSafeName(t *testing.T) {
	tests := map[string]string{
		"photo.jpg":         "photo.jpg",
		"../../etc/passwd":  "passwd",
		`C:\Users\a\b.png`:  "b.png",
		"what?.gif":         "what_.gif",
		"":                  "file",
		"..":                "file",
	}
	for in, want := range tests {
		assert.Equal(t, want, SafeName(in), "input %q", in)
	}
}

func TestWriteExport(t *testing.T) {
	dir := t.TempDir()

	path, err := WriteExport(dir, "../a.jpg", []byte{1, 2, 3})
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "a.jpg"), path)

	b, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, []byte{1, 2, 3}, b)
}
