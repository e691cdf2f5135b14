package http

import (
	"net/http"
	"strings"
	"sync"
)

const ReloadPath = "/__reload"

const reloadMarker = "__pagegen_reload"

const reloadScriptSource = `(function(){var id="` + reloadMarker + `";if(window[id])return;window[id]=true;` +
	`var es=new EventSource("` + ReloadPath + `");` +
	`es.addEventListener("reload",function(){window.location.reload();});})();`

// Reload fans change notifications out to connected preview tabs.
type Reload struct {
	mu   sync.Mutex
	subs map[chan struct{}]struct{}
}

func NewReload() *Reload {
	return &Reload{
		subs: map[chan struct{}]struct{}{},
	}
}

func (h *Reload) subscribe() chan struct{} {
	ch := make(chan struct{}, 1)
	h.mu.Lock()
	h.subs[ch] = struct{}{}
	h.mu.Unlock()
	return ch
}

func (h *Reload) unsubscribe(ch chan struct{}) {
	h.mu.Lock()
	delete(h.subs, ch)
	h.mu.Unlock()
	close(ch)
}

func (h *Reload) Subscribers() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.subs)
}

func (h *Reload) Notify() {
	h.mu.Lock()
	for ch := range h.subs {
		select {
		case ch <- struct{}{}:
		default:
		}
	}
	h.mu.Unlock()
}

func (h *Reload) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	flusher, ok := w.(http.Flusher)
	if !ok {
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")

	ch := h.subscribe()
	defer h.unsubscribe(ch)

	_, _ = w.Write([]byte("event: ready\ndata: 1\n\n"))
	flusher.Flush()

	for {
		select {
		case <-req.Context().Done():
			return
		case <-ch:
			_, _ = w.Write([]byte("event: reload\ndata: 1\n\n"))
			flusher.Flush()
		}
	}
}

// InjectReloadScript adds the client before the first </body>, or at the end
// when the document has none.
func InjectReloadScript(html string) string {
	if strings.Contains(html, reloadMarker) {
		return html
	}

	script := "<script>" + reloadScriptSource + "</script>"

	if strings.Contains(html, "</body>") {
		return strings.Replace(html, "</body>", script+"</body>", 1)
	}

	return html + script
}
