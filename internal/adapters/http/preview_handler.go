package http

import (
	"bytes"
	"errors"
	"html"
	"html/template"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/3-lines-studio/pagegen/internal/core"
	"github.com/3-lines-studio/pagegen/internal/usecase"
)

const (
	noPagesMessage     = "No pages found. Please create a page folder with content.json"
	noPagesListMessage = "No pages found"
)

type PreviewHandler struct {
	service *usecase.PreviewService
	reload  *Reload
	logger  *slog.Logger
}

// NewRouter mounts the preview routes. A nil reload disables live reload.
func NewRouter(service *usecase.PreviewService, reload *Reload, logger *slog.Logger) http.Handler {
	if logger == nil {
		logger = slog.Default()
	}
	h := &PreviewHandler{
		service: service,
		reload:  reload,
		logger:  logger,
	}

	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(middleware.StripSlashes)
	r.Use(h.logRequests)

	r.Get("/", h.serveIndex)
	r.Get("/pages", h.serveListing)
	if reload != nil {
		r.Handle(ReloadPath, reload)
	}
	r.Get("/{page}", h.servePage)
	r.Get("/{page}/{file}", h.serveFile)

	return r
}

func (h *PreviewHandler) serveIndex(w http.ResponseWriter, req *http.Request) {
	first, err := h.service.FirstPage(req.Context())
	if errors.Is(err, usecase.ErrNoPages) {
		h.serveText(w, http.StatusNotFound, noPagesMessage)
		return
	}
	if err != nil {
		h.serveError(w, req, err)
		return
	}
	http.Redirect(w, req, core.PageURL(first), http.StatusFound)
}

func (h *PreviewHandler) serveListing(w http.ResponseWriter, req *http.Request) {
	listing, err := h.service.Listing(req.Context())
	if errors.Is(err, usecase.ErrNoPages) {
		h.serveText(w, http.StatusNotFound, noPagesListMessage)
		return
	}
	if err != nil {
		h.serveError(w, req, err)
		return
	}
	h.serveHTML(w, listing)
}

func (h *PreviewHandler) servePage(w http.ResponseWriter, req *http.Request) {
	page := chi.URLParam(req, "page")
	rendered, err := h.service.RenderPage(req.Context(), page)
	if err != nil {
		h.serveError(w, req, err)
		return
	}
	if h.reload != nil {
		rendered = InjectReloadScript(rendered)
	}
	h.serveHTML(w, rendered)
}

func (h *PreviewHandler) serveFile(w http.ResponseWriter, req *http.Request) {
	page := chi.URLParam(req, "page")
	file := chi.URLParam(req, "file")

	pf, err := h.service.PageFile(req.Context(), page, file)
	if err != nil {
		if errors.Is(err, core.ErrMissingFile) || errors.Is(err, core.ErrPageNotFound) || errors.Is(err, core.ErrInvalidPageName) {
			http.NotFound(w, req)
			return
		}
		h.serveError(w, req, err)
		return
	}

	w.Header().Set("Content-Type", pf.ContentType)
	http.ServeContent(w, req, file, time.Time{}, bytes.NewReader(pf.Data))
}

func (h *PreviewHandler) serveHTML(w http.ResponseWriter, body string) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(body))
}

func (h *PreviewHandler) serveText(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(status)
	_, _ = w.Write([]byte(msg))
}

func (h *PreviewHandler) serveError(w http.ResponseWriter, req *http.Request, err error) {
	status := core.StatusForError(err)
	h.logger.Warn("preview request failed",
		"path", req.URL.Path,
		"status", status,
		"error", err,
	)

	data := errorData{
		Title:   http.StatusText(status),
		Message: err.Error(),
	}

	var buf bytes.Buffer
	if err := errorTemplate.Execute(&buf, data); err != nil {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.WriteHeader(status)
		_, _ = w.Write([]byte("<!doctype html><html><body><pre>" + html.EscapeString(data.Message) + "</pre></body></html>"))
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = w.Write(buf.Bytes())
}

// logRequests also marks every response as uncacheable; previews change on
// every save.
func (h *PreviewHandler) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		w.Header().Set("Cache-Control", "no-cache, no-store, must-revalidate")
		w.Header().Set("Pragma", "no-cache")
		w.Header().Set("Expires", "0")

		if req.URL.Path == ReloadPath {
			next.ServeHTTP(w, req)
			return
		}

		ww := middleware.NewWrapResponseWriter(w, req.ProtoMajor)
		start := time.Now()
		next.ServeHTTP(ww, req)
		h.logger.Debug("request",
			"method", req.Method,
			"path", req.URL.Path,
			"status", ww.Status(),
			"duration", time.Since(start),
		)
	})
}

type errorData struct {
	Title   string
	Message string
}

var errorTemplate = template.Must(template.New("error").Parse(`<!doctype html>
<html lang="en">
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <title>{{.Title}}</title>
    <style>
        body { font-family: system-ui, sans-serif; max-width: 800px; margin: 50px auto; padding: 0 20px; }
        h1 { color: #e74c3c; }
        pre { background: #f8f9fa; padding: 15px; border-radius: 5px; overflow-x: auto; white-space: pre-wrap; }
    </style>
</head>
<body>
    <h1>{{.Title}}</h1>
    <pre>{{.Message}}</pre>
</body>
</html>`))
