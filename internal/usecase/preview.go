package usecase

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/3-lines-studio/pagegen/internal/core"
	"github.com/3-lines-studio/pagegen/internal/pages"
)

// PreviewService answers preview requests. Every call rereads the page
// folders and templates.
type PreviewService struct {
	pipeline
}

func NewPreviewService(fs FileSystem, root string, loader Loader, renderer Renderer) *PreviewService {
	return &PreviewService{
		pipeline: pipeline{
			fs:       fs,
			root:     root,
			loader:   loader,
			renderer: renderer,
		},
	}
}

func (s *PreviewService) FirstPage(ctx context.Context) (string, error) {
	names, err := s.discover(ctx)
	if err != nil {
		return "", err
	}
	return names[0], nil
}

func (s *PreviewService) RenderPage(ctx context.Context, pageName string) (string, error) {
	return s.render(ctx, pageName)
}

// Pages lists every page with a best-effort title. Pages whose content cannot
// be loaded are listed under their folder name.
func (s *PreviewService) Pages(ctx context.Context) ([]core.PageLink, error) {
	names, err := s.discover(ctx)
	if err != nil {
		return nil, err
	}

	links := make([]core.PageLink, 0, len(names))
	for _, name := range names {
		title := name
		if doc, err := s.loader.LoadContent(name); err == nil {
			if t, ok := core.SiteTitle(doc); ok {
				title = t
			}
		}
		links = append(links, core.PageLink{
			Name:  name,
			Title: title,
			URL:   core.PageURL(name),
		})
	}
	return links, nil
}

func (s *PreviewService) Listing(ctx context.Context) (string, error) {
	links, err := s.Pages(ctx)
	if err != nil {
		return "", err
	}
	return core.RenderPageListing(links)
}

type PageFile struct {
	Path        string
	ContentType string
	Data        []byte
}

// PageFile reads a file that sits directly inside a page folder.
func (s *PreviewService) PageFile(ctx context.Context, pageName, fileName string) (PageFile, error) {
	if err := ctx.Err(); err != nil {
		return PageFile{}, err
	}
	if err := s.checkPage(pageName); err != nil {
		return PageFile{}, err
	}
	if err := core.ValidatePageName(fileName); err != nil {
		return PageFile{}, fmt.Errorf("%w: %s", core.ErrMissingFile, fileName)
	}

	path := filepath.Join(core.PathsFor(s.root, pageName).Dir, fileName)
	if !s.fs.FileExists(path) {
		return PageFile{}, fmt.Errorf("%w: %s not found in %s", core.ErrMissingFile, fileName, pageName)
	}
	data, err := s.fs.ReadFile(path)
	if err != nil {
		return PageFile{}, fmt.Errorf("read %s: %w", path, err)
	}
	return PageFile{
		Path:        path,
		ContentType: core.GetContentType(path),
		Data:        data,
	}, nil
}

func (s *PreviewService) discover(ctx context.Context) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	names, err := pages.Discover(s.fs, s.root)
	if err != nil {
		return nil, fmt.Errorf("discover pages: %w", err)
	}
	if len(names) == 0 {
		return nil, ErrNoPages
	}
	return names, nil
}
