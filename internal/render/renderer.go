package render

import (
	"bytes"
	"errors"
	"fmt"
	"html/template"
	iofs "io/fs"
	"path"
	"sort"

	"github.com/3-lines-studio/pagegen/internal/core"
)

// Renderer executes <page>/index.html from a templates tree. Every *.html file
// in the page's directory and in _partials/ is parsed into the same set, by
// base name, so templates can include each other with {{template "x.html" .}}.
type Renderer struct {
	templates iofs.FS
	funcs     template.FuncMap
}

func New(templates iofs.FS) *Renderer {
	return &Renderer{
		templates: templates,
		funcs:     FuncMap(),
	}
}

func (r *Renderer) Render(pageName string, doc core.Document, css, js string) (string, error) {
	tmpl, err := r.load(pageName)
	if err != nil {
		return "", err
	}

	data := core.NewRenderContext(pageName, doc, css, js)

	var buf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buf, core.EntryTemplate, data); err != nil {
		return "", fmt.Errorf("%w: %s: %v", core.ErrRender, core.EntryTemplatePath(pageName), err)
	}
	return buf.String(), nil
}

// HasTemplate reports whether an entry template exists for pageName.
func (r *Renderer) HasTemplate(pageName string) bool {
	info, err := iofs.Stat(r.templates, core.EntryTemplatePath(pageName))
	return err == nil && !info.IsDir()
}

func (r *Renderer) load(pageName string) (*template.Template, error) {
	if err := core.ValidatePageName(pageName); err != nil {
		return nil, err
	}

	entry := core.EntryTemplatePath(pageName)
	if !r.HasTemplate(pageName) {
		return nil, fmt.Errorf("%w: %s", core.ErrTemplateNotFound, entry)
	}

	files, err := r.templateFiles(pageName)
	if err != nil {
		return nil, err
	}

	tmpl := template.New(pageName).Funcs(r.funcs).Option("missingkey=error")
	for _, file := range files {
		src, err := iofs.ReadFile(r.templates, file)
		if err != nil {
			return nil, fmt.Errorf("failed to read template %s: %w", file, err)
		}
		// Page-local files are parsed after partials so they can override them.
		if _, err := tmpl.New(path.Base(file)).Parse(string(src)); err != nil {
			return nil, fmt.Errorf("%w: %v", core.ErrRender, err)
		}
	}
	return tmpl, nil
}

func (r *Renderer) templateFiles(pageName string) ([]string, error) {
	partials, err := htmlFiles(r.templates, core.PartialsDir)
	if err != nil && !errors.Is(err, iofs.ErrNotExist) {
		return nil, fmt.Errorf("failed to list %s: %w", core.PartialsDir, err)
	}
	local, err := htmlFiles(r.templates, pageName)
	if err != nil {
		return nil, fmt.Errorf("failed to list templates for %s: %w", pageName, err)
	}
	return append(partials, local...), nil
}

func htmlFiles(fsys iofs.FS, dir string) ([]string, error) {
	entries, err := iofs.ReadDir(fsys, dir)
	if err != nil {
		return nil, err
	}
	var files []string
	for _, entry := range entries {
		if entry.IsDir() || path.Ext(entry.Name()) != ".html" {
			continue
		}
		files = append(files, path.Join(dir, entry.Name()))
	}
	sort.Strings(files)
	return files, nil
}
