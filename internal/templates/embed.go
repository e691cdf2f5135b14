package templates

import (
	"bytes"
	"embed"
	"encoding/json"
	"io/fs"
	"strings"

	"github.com/3-lines-studio/pagegen/internal/core"
)

//go:embed all:page
var pageFS embed.FS

// SiteFiles are written into the new page folder.
func SiteFiles() (fs.FS, error) {
	return fs.Sub(pageFS, "page/site")
}

// TemplateFiles are written into templates/<page>/.
func TemplateFiles() (fs.FS, error) {
	return fs.Sub(pageFS, "page/templates")
}

type TemplateData struct {
	Page  string
	Title string
}

func NewTemplateData(pageName string) TemplateData {
	return TemplateData{
		Page:  pageName,
		Title: core.TitleCase(pageName),
	}
}

// ProcessFilename strips a .tmpl suffix and reports whether the file needs
// placeholder substitution.
func ProcessFilename(filename string) (string, bool) {
	if before, ok := strings.CutSuffix(filename, ".tmpl"); ok {
		return before, true
	}
	return filename, false
}

// ProcessContent replaces the scaffold placeholders. Files without the .tmpl
// suffix are page templates whose {{...}} actions belong to the renderer, so
// they are returned untouched.
func ProcessContent(content []byte, isTemplate bool, data TemplateData) []byte {
	if !isTemplate {
		return content
	}

	result := string(content)
	result = strings.ReplaceAll(result, "{{.Page}}", data.Page)
	result = strings.ReplaceAll(result, "{{.Title}}", data.Title)

	return []byte(result)
}

type SiteInfo struct {
	Title        string `json:"title"`
	LogoURL      string `json:"logo_url"`
	HomeURL      string `json:"home_url"`
	ContactEmail string `json:"contact_email"`
}

type Section struct {
	Type    string `json:"type"`
	Content string `json:"content"`
}

type Readme struct {
	Title    string    `json:"title"`
	Sections []Section `json:"sections"`
}

type UIText struct {
	ThemeToggle    string `json:"theme_toggle"`
	LanguageSwitch string `json:"language_switch"`
	ReadmeTab      string `json:"readme_tab"`
	ConductTab     string `json:"conduct_tab"`
}

// DefaultContent is the content.json a new page starts with. Field order is
// the order keys appear in the file.
type DefaultContent struct {
	Site   SiteInfo          `json:"site"`
	Readme map[string]Readme `json:"readme"`
	UIText map[string]UIText `json:"ui_text"`
}

func NewDefaultContent(data TemplateData) DefaultContent {
	return DefaultContent{
		Site: SiteInfo{
			Title:        data.Title,
			LogoURL:      "https://example.com/logo.png",
			HomeURL:      "https://example.com",
			ContactEmail: "contact@example.com",
		},
		Readme: map[string]Readme{
			"en": {
				Title: data.Title,
				Sections: []Section{
					{
						Type:    "highlight_box",
						Content: "Welcome to <strong>" + data.Title + "</strong> page.",
					},
				},
			},
		},
		UIText: map[string]UIText{
			"en": {
				ThemeToggle:    "🌙",
				LanguageSwitch: "中文",
				ReadmeTab:      "README",
				ConductTab:     "Code of Conduct",
			},
		},
	}
}

// MarshalContent encodes with two-space indentation. HTML is not escaped.
func MarshalContent(content DefaultContent) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(content); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
