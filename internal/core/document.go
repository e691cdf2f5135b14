package core

const (
	KeyPageName   = "page_name"
	KeyCSSContent = "css_content"
	KeyJSContent  = "js_content"
)

// Document is a decoded content.json. The pipeline never looks inside it
// except to read a listing title.
type Document = map[string]any

type PageSource struct {
	Name    string
	Content Document
	CSS     string
	JS      string
}

// NewRenderContext copies the document's top-level keys and then sets the
// reserved keys, so page_name, css_content and js_content always reflect the
// page being rendered. doc is not modified.
func NewRenderContext(pageName string, doc Document, css, js string) Document {
	ctx := make(Document, len(doc)+3)
	for k, v := range doc {
		ctx[k] = v
	}
	ctx[KeyPageName] = pageName
	ctx[KeyCSSContent] = css
	ctx[KeyJSContent] = js
	return ctx
}

// SiteTitle returns site.title when it is a non-empty string.
func SiteTitle(doc Document) (string, bool) {
	site, ok := doc["site"].(map[string]any)
	if !ok {
		return "", false
	}
	title, ok := site["title"].(string)
	if !ok || title == "" {
		return "", false
	}
	return title, true
}
