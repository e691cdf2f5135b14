package render

import (
	"bytes"
	"encoding/json"
	"fmt"
	"html/template"
	"strings"

	"github.com/yuin/goldmark"
	highlighting "github.com/yuin/goldmark-highlighting/v2"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	gmhtml "github.com/yuin/goldmark/renderer/html"

	"github.com/3-lines-studio/pagegen/internal/core"
)

var markdownEngine = goldmark.New(
	goldmark.WithExtensions(
		extension.GFM,
		highlighting.NewHighlighting(
			highlighting.WithStyle("github"),
		),
	),
	goldmark.WithParserOptions(
		parser.WithAutoHeadingID(),
	),
	goldmark.WithRendererOptions(
		gmhtml.WithUnsafe(),
	),
)

// FuncMap holds the helpers available to page templates.
//
// safeHTML, safeCSS and safeJS mark author-controlled strings as trusted. They
// exist for css_content and js_content, which are meant to be inlined as-is.
func FuncMap() template.FuncMap {
	return template.FuncMap{
		"title":    titleFunc,
		"upper":    strings.ToUpper,
		"lower":    strings.ToLower,
		"safeHTML": func(v any) template.HTML { return template.HTML(toString(v)) },
		"safeCSS":  func(v any) template.CSS { return template.CSS(toString(v)) },
		"safeJS":   func(v any) template.JS { return template.JS(toString(v)) },
		"markdown": Markdown,
		"json":     jsonFunc,
		"default":  defaultFunc,
		"get":      get,
	}
}

// Markdown converts author markdown into HTML. Raw HTML inside the source is
// kept, matching how highlight boxes embed <strong> and friends.
func Markdown(v any) (template.HTML, error) {
	var buf bytes.Buffer
	if err := markdownEngine.Convert([]byte(toString(v)), &buf); err != nil {
		return "", fmt.Errorf("markdown: %w", err)
	}
	return template.HTML(buf.String()), nil
}

func titleFunc(v any) string {
	return core.TitleCase(toString(v))
}

func jsonFunc(v any) (template.JS, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return "", err
	}
	return template.JS(strings.ReplaceAll(string(data), "</", `<\/`)), nil
}

// defaultFunc is used as {{.x | default "fallback"}}.
func defaultFunc(fallback, v any) any {
	if isEmpty(v) {
		return fallback
	}
	return v
}

// get looks a key up in a nested map without failing on missing keys, for
// optional content such as {{get .ui_text "en"}}.
func get(m any, key string) any {
	mm, ok := m.(map[string]any)
	if !ok {
		return nil
	}
	return mm[key]
}

func isEmpty(v any) bool {
	switch x := v.(type) {
	case nil:
		return true
	case string:
		return x == ""
	case bool:
		return !x
	case json.Number:
		f, err := x.Float64()
		return err == nil && f == 0
	case float64:
		return x == 0
	case []any:
		return len(x) == 0
	case map[string]any:
		return len(x) == 0
	}
	return false
}

func toString(v any) string {
	switch x := v.(type) {
	case nil:
		return ""
	case string:
		return x
	case template.HTML:
		return string(x)
	case fmt.Stringer:
		return x.String()
	}
	return fmt.Sprint(v)
}
