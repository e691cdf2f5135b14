package core

import (
	"net/url"
	"path/filepath"
)

const (
	ContentFile    = "content.json"
	StylesheetFile = "style.css"
	ScriptFile     = "script.js"
	OutputFile     = "body.html"

	EntryTemplate  = "index.html"
	PartialsDir    = "_partials"
	DefaultAddr    = "127.0.0.1:8000"
	DefaultTmplDir = "templates"
)

type PagePaths struct {
	Dir        string
	Content    string
	Stylesheet string
	Script     string
	Output     string
}

func PathsFor(root, pageName string) PagePaths {
	dir := filepath.Join(root, pageName)
	return PagePaths{
		Dir:        dir,
		Content:    filepath.Join(dir, ContentFile),
		Stylesheet: filepath.Join(dir, StylesheetFile),
		Script:     filepath.Join(dir, ScriptFile),
		Output:     filepath.Join(dir, OutputFile),
	}
}

// EntryTemplatePath is slash-separated because templates are read through io/fs.
func EntryTemplatePath(pageName string) string {
	return pageName + "/" + EntryTemplate
}

func PageURL(pageName string) string {
	return "/" + url.PathEscape(pageName)
}
