package templates

import (
	"encoding/json"
	"io/fs"
	"strings"
	"testing"
)

func TestProcessFilename(t *testing.T) {
	tests := []struct {
		name         string
		filename     string
		wantFilename string
		wantIsTmpl   bool
	}{
		{
			name:         "tmpl file gets processed",
			filename:     "style.css.tmpl",
			wantFilename: "style.css",
			wantIsTmpl:   true,
		},
		{
			name:         "page template unchanged",
			filename:     "content.html",
			wantFilename: "content.html",
			wantIsTmpl:   false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gotFilename, gotIsTmpl := ProcessFilename(tt.filename)
			if gotFilename != tt.wantFilename {
				t.Errorf("ProcessFilename(%q) filename = %q, want %q", tt.filename, gotFilename, tt.wantFilename)
			}
			if gotIsTmpl != tt.wantIsTmpl {
				t.Errorf("ProcessFilename(%q) isTmpl = %v, want %v", tt.filename, gotIsTmpl, tt.wantIsTmpl)
			}
		})
	}
}

func TestProcessContent(t *testing.T) {
	data := TemplateData{Page: "community-hub", Title: "Community Hub"}

	tests := []struct {
		name       string
		content    string
		isTemplate bool
		want       string
	}{
		{
			name:       "placeholders replaced",
			content:    "/* {{.Title}} ({{.Page}}) */",
			isTemplate: true,
			want:       "/* Community Hub (community-hub) */",
		},
		{
			name:       "page template actions kept",
			content:    "<h1>{{title .page_name}}</h1>",
			isTemplate: false,
			want:       "<h1>{{title .page_name}}</h1>",
		},
		{
			name:       "renderer actions survive in tmpl files",
			content:    "{{.Page}} {{.page_name}}",
			isTemplate: true,
			want:       "community-hub {{.page_name}}",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := string(ProcessContent([]byte(tt.content), tt.isTemplate, data))
			if got != tt.want {
				t.Errorf("ProcessContent() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestEmbeddedSkeleton(t *testing.T) {
	site, err := SiteFiles()
	if err != nil {
		t.Fatalf("SiteFiles() error = %v", err)
	}
	for _, name := range []string{"style.css.tmpl", "script.js.tmpl"} {
		if _, err := fs.Stat(site, name); err != nil {
			t.Errorf("site skeleton missing %s: %v", name, err)
		}
	}

	tmpl, err := TemplateFiles()
	if err != nil {
		t.Fatalf("TemplateFiles() error = %v", err)
	}
	index, err := fs.ReadFile(tmpl, "index.html")
	if err != nil {
		t.Fatalf("read index.html: %v", err)
	}
	for _, want := range []string{`{{template "content.html" .}}`, "safeCSS .css_content", "safeJS .js_content"} {
		if !strings.Contains(string(index), want) {
			t.Errorf("index.html missing %q", want)
		}
	}
	if _, err := fs.Stat(tmpl, "content.html"); err != nil {
		t.Errorf("template skeleton missing content.html: %v", err)
	}
}

func TestMarshalContent(t *testing.T) {
	data, err := MarshalContent(NewDefaultContent(NewTemplateData("events")))
	if err != nil {
		t.Fatalf("MarshalContent() error = %v", err)
	}
	text := string(data)

	site := strings.Index(text, `"site"`)
	readme := strings.Index(text, `"readme"`)
	ui := strings.Index(text, `"ui_text"`)
	if site < 0 || site > readme || readme > ui {
		t.Errorf("top-level keys out of order: site=%d readme=%d ui_text=%d", site, readme, ui)
	}
	if !strings.Contains(text, "<strong>Events</strong>") {
		t.Errorf("expected unescaped HTML in welcome box, got:\n%s", text)
	}
	if !strings.Contains(text, "\n  \"site\": {") {
		t.Errorf("expected two-space indentation, got:\n%s", text)
	}

	var decoded map[string]any
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("generated content is not valid JSON: %v", err)
	}
	siteMap := decoded["site"].(map[string]any)
	if siteMap["title"] != "Events" {
		t.Errorf("site.title = %v, want Events", siteMap["title"])
	}
}
