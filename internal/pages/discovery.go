package pages

import (
	"fmt"
	iofs "io/fs"
	"path/filepath"
	"sort"
	"strings"

	"github.com/3-lines-studio/pagegen/internal/adapters/fs"
	"github.com/3-lines-studio/pagegen/internal/core"
)

// Discover returns the names of root's child directories that directly
// contain content.json, sorted ascending. An empty result is not an error.
func Discover(fsys fs.FileSystem, root string) ([]string, error) {
	entries, err := fsys.ReadDir(root)
	if err != nil {
		return nil, fmt.Errorf("failed to read site root %s: %w", root, err)
	}

	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		if strings.HasPrefix(entry.Name(), ".") {
			continue
		}
		isDir := entry.IsDir()
		if !isDir && entry.Type()&iofs.ModeSymlink != 0 {
			isDir = fsys.IsDir(filepath.Join(root, entry.Name()))
		}
		if !isDir {
			continue
		}
		if fsys.FileExists(filepath.Join(root, entry.Name(), core.ContentFile)) {
			names = append(names, entry.Name())
		}
	}

	sort.Strings(names)
	return names, nil
}

// IsPage reports whether name satisfies the page folder convention.
func IsPage(fsys fs.FileSystem, root, name string) bool {
	if core.ValidatePageName(name) != nil {
		return false
	}
	paths := core.PathsFor(root, name)
	return fsys.IsDir(paths.Dir) && fsys.FileExists(paths.Content)
}
