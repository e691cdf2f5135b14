package core

import (
	"bytes"
	"html/template"
)

type PageLink struct {
	Name  string
	Title string
	URL   string
}

var listingTemplate = template.Must(template.New("listing").Parse(`<!doctype html>
<html lang="en">
<head>
    <meta charset="UTF-8">
    <title>Available Pages</title>
    <style>
        body { font-family: -apple-system, BlinkMacSystemFont, sans-serif; max-width: 800px; margin: 50px auto; padding: 20px; }
        h1 { color: #333; }
        .page-list { list-style: none; padding: 0; }
        .page-item { margin: 15px 0; padding: 15px; border: 1px solid #ddd; border-radius: 6px; }
        .page-item a { text-decoration: none; color: #0969da; font-weight: 600; }
        .page-item a:hover { text-decoration: underline; }
        .page-name { font-size: 12px; color: #666; margin-top: 5px; }
    </style>
</head>
<body>
    <h1>📄 Available Pages</h1>
    <ul class="page-list">
{{- range .}}
        <li class="page-item">
            <a href="{{.URL}}">{{.Title}}</a>
            <div class="page-name">/{{.Name}}</div>
        </li>
{{- end}}
    </ul>
    <p><small>💡 Add new pages by creating folders with content.json, style.css, and script.js files.</small></p>
</body>
</html>
`))

func RenderPageListing(links []PageLink) (string, error) {
	var buf bytes.Buffer
	if err := listingTemplate.Execute(&buf, links); err != nil {
		return "", err
	}
	return buf.String(), nil
}
