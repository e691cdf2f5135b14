package pages

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	iofs "io/fs"
	"path/filepath"

	"github.com/3-lines-studio/pagegen/internal/adapters/fs"
	"github.com/3-lines-studio/pagegen/internal/core"
)

type Loader struct {
	fs   fs.FileSystem
	root string
}

func NewLoader(fsys fs.FileSystem, root string) *Loader {
	return &Loader{
		fs:   fsys,
		root: root,
	}
}

func (l *Loader) Root() string {
	return l.root
}

func (l *Loader) LoadContent(pageName string) (core.Document, error) {
	path := core.PathsFor(l.root, pageName).Content
	data, err := l.readFile(pageName, path)
	if err != nil {
		return nil, err
	}

	doc, err := decodeDocument(data)
	if err != nil {
		return nil, core.NewMalformedDataError(path, data, err)
	}
	if doc == nil {
		// "null" decodes without error but is not an object.
		return nil, core.NewMalformedDataError(path, data, errors.New("top-level value is not an object"))
	}
	return doc, nil
}

func (l *Loader) LoadStylesheet(pageName string) (string, error) {
	data, err := l.readFile(pageName, core.PathsFor(l.root, pageName).Stylesheet)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

func (l *Loader) LoadScript(pageName string) (string, error) {
	data, err := l.readFile(pageName, core.PathsFor(l.root, pageName).Script)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// Load reads content, stylesheet and script in that order and stops at the
// first failure.
func (l *Loader) Load(pageName string) (core.PageSource, error) {
	doc, err := l.LoadContent(pageName)
	if err != nil {
		return core.PageSource{}, err
	}
	css, err := l.LoadStylesheet(pageName)
	if err != nil {
		return core.PageSource{}, err
	}
	js, err := l.LoadScript(pageName)
	if err != nil {
		return core.PageSource{}, err
	}

	return core.PageSource{
		Name:    pageName,
		Content: doc,
		CSS:     css,
		JS:      js,
	}, nil
}

// decodeDocument keeps numbers as json.Number so templates print them as
// written. Syntax errors and trailing data are reported by json.Unmarshal,
// which carries byte offsets; io.ErrUnexpectedEOF from a Decoder would not.
func decodeDocument(data []byte) (core.Document, error) {
	if err := json.Unmarshal(data, new(json.RawMessage)); err != nil {
		return nil, err
	}

	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var doc core.Document
	if err := dec.Decode(&doc); err != nil {
		return nil, err
	}
	if _, err := dec.Token(); err != io.EOF {
		return nil, errors.New("unexpected data after top-level value")
	}
	return doc, nil
}

func (l *Loader) readFile(pageName, path string) ([]byte, error) {
	data, err := l.fs.ReadFile(path)
	if err != nil {
		if errors.Is(err, iofs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s not found in %s", core.ErrMissingFile, filepath.Base(path), pageName)
		}
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	return data, nil
}
