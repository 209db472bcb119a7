package testutils

import (
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/denotw/website/internal/manual"
)

const (
	ContentHostDoc  = "https://github.com/Laysi/deno-docs-tw/blob/"
	NotFoundMessage = "404: Not Found"
)

// ContentHost serves manual files from memory, standing in for the x and raw content hosts. Files are keyed by
// request path, e.g. "/x/1.0.0/toc.json" or "/raw/main/introduction.md". Unknown paths are answered with 404.
type ContentHost struct {
	*httptest.Server

	mu        sync.Mutex
	files     map[string]string
	requested []string
}

// NewContentHost starts a ContentHost which is closed on test cleanup
func NewContentHost(t *testing.T, files map[string]string) *ContentHost {
	h := &ContentHost{files: files}
	h.Server = httptest.NewServer(http.HandlerFunc(h.serve))
	t.Cleanup(h.Close)
	return h
}

func (h *ContentHost) serve(w http.ResponseWriter, r *http.Request) {
	h.mu.Lock()
	h.requested = append(h.requested, r.URL.Path)
	content, ok := h.files[r.URL.Path]
	h.mu.Unlock()
	if !ok {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(NotFoundMessage))
		return
	}
	_, _ = w.Write([]byte(content))
}

// Hosts returns the hosts to pass to a manual.Resolver to fetch from h
func (h *ContentHost) Hosts() manual.Hosts {
	return manual.Hosts{
		X:   h.URL + "/x/",
		Raw: h.URL + "/raw/",
		Doc: ContentHostDoc,
	}
}

// Requested returns the paths requested so far, in order
func (h *ContentHost) Requested() []string {
	h.mu.Lock()
	defer h.mu.Unlock()
	return append([]string(nil), h.requested...)
}

func (h *ContentHost) ResetRequested() {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.requested = nil
}
