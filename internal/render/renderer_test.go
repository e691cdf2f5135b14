package render

import (
	"errors"
	"os"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/gkampitakis/go-snaps/snaps"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/3-lines-studio/pagegen/internal/core"
)

func TestMain(m *testing.M) {
	v := m.Run()
	snaps.Clean(m)
	os.Exit(v)
}

const basicIndex = `<!doctype html>
<html>
<head><title>{{.site.title}}</title><style>{{safeCSS .css_content}}</style></head>
<body data-page="{{.page_name}}">{{template "content.html" .}}<script>{{safeJS .js_content}}</script></body>
</html>`

func templatesFS() fstest.MapFS {
	files := map[string]string{
		"blog/index.html":       basicIndex,
		"blog/content.html":     `<h1>{{title .page_name}}</h1><p>{{.readme.en.intro}}</p>`,
		"_partials/footer.html": `<footer>{{.site.title}}</footer>`,
		"footer/index.html":     `{{template "footer.html" .}}`,
		"strict/index.html":     `{{.does_not_exist}}`,
		"broken/index.html":     `{{if}}`,
		"badcall/index.html":    `{{len .site.title.nope}}`,
		"whoami/index.html":     `{{.page_name}}`,
	}
	fsys := fstest.MapFS{}
	for name, content := range files {
		fsys[name] = &fstest.MapFile{Data: []byte(content)}
	}
	return fsys
}

func blogDoc() core.Document {
	return core.Document{
		"site":   map[string]any{"title": "Community"},
		"readme": map[string]any{"en": map[string]any{"intro": "<script>alert(1)</script>"}},
	}
}

func TestRender(t *testing.T) {
	r := New(templatesFS())

	html, err := r.Render("blog", blogDoc(), "body { color: red; }", "console.log('hi');")
	require.NoError(t, err)

	assert.Contains(t, html, "<title>Community</title>")
	assert.Contains(t, html, "<style>body { color: red; }</style>")
	assert.Contains(t, html, "<script>console.log('hi');</script>")
	assert.Contains(t, html, `data-page="blog"`)
	assert.Contains(t, html, "<h1>Blog</h1>")
	snaps.MatchSnapshot(t, html)
}

func TestRender_AutoEscapesContent(t *testing.T) {
	html, err := New(templatesFS()).Render("blog", blogDoc(), "", "")
	require.NoError(t, err)

	assert.NotContains(t, html, "<script>alert(1)</script>")
	assert.Contains(t, html, "&lt;script&gt;alert(1)&lt;/script&gt;")
}

func TestRender_ReservedKeysWin(t *testing.T) {
	doc := core.Document{"page_name": "spoof"}

	html, err := New(templatesFS()).Render("whoami", doc, "", "")
	require.NoError(t, err)
	assert.Equal(t, "whoami", html)
}

func TestRender_SharedPartials(t *testing.T) {
	html, err := New(templatesFS()).Render("footer", blogDoc(), "", "")
	require.NoError(t, err)
	assert.Equal(t, "<footer>Community</footer>", html)
}

func TestRender_Errors(t *testing.T) {
	tests := []struct {
		name    string
		page    string
		wantErr error
	}{
		{name: "no template for page", page: "missing", wantErr: core.ErrTemplateNotFound},
		{name: "missing key", page: "strict", wantErr: core.ErrRender},
		{name: "parse failure", page: "broken", wantErr: core.ErrRender},
		{name: "incompatible operation", page: "badcall", wantErr: core.ErrRender},
		{name: "invalid page name", page: "../blog", wantErr: core.ErrInvalidPageName},
	}

	r := New(templatesFS())
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := r.Render(tt.page, blogDoc(), "", "")
			require.Error(t, err)
			assert.True(t, errors.Is(err, tt.wantErr), "got %v", err)
		})
	}
}

func TestRender_MissingKeyMessageNamesKey(t *testing.T) {
	_, err := New(templatesFS()).Render("strict", core.Document{}, "", "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "does_not_exist")
}

func TestHasTemplate(t *testing.T) {
	r := New(templatesFS())
	assert.True(t, r.HasTemplate("blog"))
	assert.False(t, r.HasTemplate("nothing"))
}

func TestFuncs(t *testing.T) {
	fsys := fstest.MapFS{
		"funcs/index.html": {Data: []byte(strings.Join([]string{
			`{{upper "a"}}{{lower "B"}}`,
			`{{.missing_ok | default "fallback"}}`,
			`{{get .site "nope" | default "none"}}`,
			`<script type="application/json">{{json .site}}</script>`,
			`{{safeHTML .raw}}`,
			`{{markdown .body}}`,
		}, "\n"))},
	}
	doc := core.Document{
		"missing_ok": "",
		"site":       map[string]any{"title": "</script>"},
		"body":       "**bold**",
		"raw":        "<em>x</em>",
	}

	html, err := New(fsys).Render("funcs", doc, "", "")
	require.NoError(t, err)

	lines := strings.Split(html, "\n")
	require.GreaterOrEqual(t, len(lines), 6)
	assert.Equal(t, "Ab", lines[0])
	assert.Equal(t, "fallback", lines[1])
	assert.Equal(t, "none", lines[2])
	assert.NotContains(t, lines[3], `"</script>"`)
	assert.Equal(t, "<em>x</em>", lines[4])
	assert.Equal(t, "<p><strong>bold</strong></p>", lines[5])
}

func TestMarkdown_HighlightsCode(t *testing.T) {
	out, err := Markdown("```go\nfunc main() {}\n```")
	require.NoError(t, err)
	assert.Contains(t, string(out), "<pre")
	assert.Contains(t, string(out), "func")
}
