package fs

import (
	"errors"
	iofs "io/fs"
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOSFileSystem_WriteFileOverwrites(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "body.html")
	fsys := NewOSFileSystem()

	require.NoError(t, fsys.WriteFile(path, []byte("first"), 0644))
	require.NoError(t, fsys.WriteFile(path, []byte("second"), 0644))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "second", string(data))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, iofs.FileMode(0644), info.Mode().Perm())
}

func TestOSFileSystem_Predicates(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "content.json")
	require.NoError(t, os.WriteFile(file, []byte("{}"), 0644))
	fsys := NewOSFileSystem()

	assert.True(t, fsys.FileExists(file))
	assert.False(t, fsys.FileExists(dir), "a directory is not a file")
	assert.True(t, fsys.IsDir(dir))
	assert.False(t, fsys.IsDir(file))
	assert.False(t, fsys.FileExists(filepath.Join(dir, "missing")))
}

func TestReadOnlyFileSystem(t *testing.T) {
	mapFS := fstest.MapFS{
		"blog/content.json": {Data: []byte(`{"a":1}`)},
		"blog/style.css":    {Data: []byte("body{}")},
	}
	fsys := NewReadOnlyFileSystem(mapFS)

	data, err := fsys.ReadFile("./blog/content.json")
	require.NoError(t, err)
	assert.Equal(t, `{"a":1}`, string(data))

	entries, err := fsys.ReadDir(".")
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "blog", entries[0].Name())

	assert.True(t, fsys.IsDir("blog"))
	assert.True(t, fsys.FileExists(filepath.Join("blog", "style.css")))
	assert.False(t, fsys.FileExists("blog/script.js"))

	err = fsys.WriteFile("blog/body.html", []byte("x"), 0644)
	assert.True(t, errors.Is(err, ErrReadOnly))
	err = fsys.MkdirAll("other", 0755)
	assert.True(t, errors.Is(err, ErrReadOnly))
	err = fsys.RemoveAll("other")
	assert.True(t, errors.Is(err, ErrReadOnly))
}
