package core

type Renderer interface {
	Render(pageName string, doc Document, css, js string) (string, error)
}
