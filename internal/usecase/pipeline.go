package usecase

import (
	"context"
	"fmt"

	"github.com/3-lines-studio/pagegen/internal/core"
	"github.com/3-lines-studio/pagegen/internal/pages"
)

// pipeline runs convention check, load and render for one page. It never
// writes.
type pipeline struct {
	fs       FileSystem
	root     string
	loader   Loader
	renderer Renderer
}

func (p pipeline) checkPage(pageName string) error {
	if pages.IsPage(p.fs, p.root, pageName) {
		return nil
	}
	if err := core.ValidatePageName(pageName); err != nil {
		return err
	}
	paths := core.PathsFor(p.root, pageName)
	if !p.fs.IsDir(paths.Dir) {
		return fmt.Errorf("%w: page folder '%s' not found", core.ErrPageNotFound, pageName)
	}
	if !p.fs.FileExists(paths.Content) {
		return fmt.Errorf("%w: %s not found in '%s' folder", core.ErrPageNotFound, core.ContentFile, pageName)
	}
	return nil
}

func (p pipeline) render(ctx context.Context, pageName string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if err := p.checkPage(pageName); err != nil {
		return "", err
	}

	src, err := p.loader.Load(pageName)
	if err != nil {
		return "", err
	}
	return p.renderer.Render(src.Name, src.Content, src.CSS, src.JS)
}
