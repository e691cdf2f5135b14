package fs

import (
	"errors"
	iofs "io/fs"
	"path"
	"path/filepath"
	"strings"
)

var ErrReadOnly = errors.New("filesystem is read-only")

// ReadOnlyFileSystem serves any io/fs.FS (embed.FS, os.DirFS, fstest.MapFS)
// through the FileSystem port. Paths are cleaned and made slash-separated;
// a leading "./" or "/" is dropped.
type ReadOnlyFileSystem struct {
	fs iofs.FS
}

func NewReadOnlyFileSystem(fsys iofs.FS) *ReadOnlyFileSystem {
	return &ReadOnlyFileSystem{fs: fsys}
}

func (fs *ReadOnlyFileSystem) ReadFile(name string) ([]byte, error) {
	return iofs.ReadFile(fs.fs, fsPath(name))
}

func (fs *ReadOnlyFileSystem) ReadDir(name string) ([]iofs.DirEntry, error) {
	return iofs.ReadDir(fs.fs, fsPath(name))
}

func (fs *ReadOnlyFileSystem) Stat(name string) (iofs.FileInfo, error) {
	return iofs.Stat(fs.fs, fsPath(name))
}

func (fs *ReadOnlyFileSystem) FileExists(name string) bool {
	info, err := fs.Stat(name)
	return err == nil && !info.IsDir()
}

func (fs *ReadOnlyFileSystem) IsDir(name string) bool {
	info, err := fs.Stat(name)
	return err == nil && info.IsDir()
}

func (fs *ReadOnlyFileSystem) WriteFile(name string, data []byte, perm iofs.FileMode) error {
	return &iofs.PathError{Op: "write", Path: name, Err: ErrReadOnly}
}

func (fs *ReadOnlyFileSystem) MkdirAll(name string, perm iofs.FileMode) error {
	return &iofs.PathError{Op: "mkdir", Path: name, Err: ErrReadOnly}
}

func (fs *ReadOnlyFileSystem) RemoveAll(name string) error {
	return &iofs.PathError{Op: "remove", Path: name, Err: ErrReadOnly}
}

func fsPath(name string) string {
	p := path.Clean(filepath.ToSlash(name))
	p = strings.TrimPrefix(p, "/")
	if p == "" {
		return "."
	}
	return p
}
