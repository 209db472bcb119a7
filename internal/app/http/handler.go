package http

import (
	"bytes"
	"net/http"
	"net/url"
	"strings"

	"github.com/denotw/website/internal/site"
	"github.com/gorilla/mux"
)

const (
	basePathManual = "/manual"
	basePathAPI    = "/api"

	paramVersion = "version"
	paramPath    = "path"
)

type SiteHandler struct {
	service HandlerService
}

func NewSiteHandler(service HandlerService) *SiteHandler {
	return &SiteHandler{
		service: service,
	}
}

// GetIndex renders the landing page
// (GET /)
func (h *SiteHandler) GetIndex(w http.ResponseWriter, r *http.Request) {
	landing, err := h.service.Landing(r.Context())
	if err != nil {
		HandlePageErrorResponse(w, r, err)
		return
	}
	h.renderPage(w, r, func(buf *bytes.Buffer) error { return site.RenderIndex(buf, landing) })
}

// GetManual redirects to the manual of the version given as query parameter, or the latest one
// (GET /manual)
func (h *SiteHandler) GetManual(w http.ResponseWriter, r *http.Request) {
	version := strings.TrimSpace(r.URL.Query().Get(paramVersion))
	if version == "" {
		latest, err := h.service.LatestVersion(r.Context())
		if err != nil {
			HandlePageErrorResponse(w, r, err)
			return
		}
		version = latest
	}
	http.Redirect(w, r, basePathManual+"/"+url.PathEscape(version), http.StatusFound)
}

// GetManualIndex renders the table of contents of a version
// (GET /manual/{version})
func (h *SiteHandler) GetManualIndex(w http.ResponseWriter, r *http.Request) {
	version := mux.Vars(r)[paramVersion]
	page, err := h.service.ManualIndex(r.Context(), version)
	if err != nil {
		HandlePageErrorResponse(w, r, err)
		return
	}
	h.renderPage(w, r, func(buf *bytes.Buffer) error { return site.RenderManual(buf, page) })
}

// GetManualPage renders a manual document
// (GET /manual/{version}/{path})
func (h *SiteHandler) GetManualPage(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	path := "/" + strings.TrimSuffix(vars[paramPath], "/")
	page, err := h.service.ManualPage(r.Context(), vars[paramVersion], path)
	if err != nil {
		HandlePageErrorResponse(w, r, err)
		return
	}
	h.renderPage(w, r, func(buf *bytes.Buffer) error { return site.RenderManual(buf, page) })
}

// GetTableOfContents returns the table of contents of a version as JSON
// (GET /manual/{version}/toc.json)
func (h *SiteHandler) GetTableOfContents(w http.ResponseWriter, r *http.Request) {
	toc, err := h.service.TableOfContents(r.Context(), mux.Vars(r)[paramVersion])
	if err != nil {
		HandleErrorResponse(w, r, err)
		return
	}
	HandleJsonResponse(w, r, http.StatusOK, toc)
}

// GetManualURLs returns where a manual document of a version is fetched from and where it can be viewed
// (GET /api/manual/{version}/urls?path=)
func (h *SiteHandler) GetManualURLs(w http.ResponseWriter, r *http.Request) {
	path := r.URL.Query().Get(paramPath)
	if path == "" {
		HandleErrorResponse(w, r, NewBadRequestError(nil, "query parameter %q is required", paramPath))
		return
	}
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	urls, err := h.service.ManualURLs(r.Context(), mux.Vars(r)[paramVersion], path)
	if err != nil {
		HandleErrorResponse(w, r, err)
		return
	}
	HandleJsonResponse(w, r, http.StatusOK, urls)
}

// GetHealth
// (GET /healthz)
func (h *SiteHandler) GetHealth(w http.ResponseWriter, r *http.Request) {
	err := h.service.CheckHealth(r.Context())
	if err != nil {
		HandleErrorResponse(w, r, NewServiceUnavailableError(err, "site is not ready"))
		return
	}
	HandleHealthyResponse(w, r)
}

func (h *SiteHandler) renderPage(w http.ResponseWriter, r *http.Request, render func(buf *bytes.Buffer) error) {
	buf := bytes.NewBuffer(nil)
	if err := render(buf); err != nil {
		HandlePageErrorResponse(w, r, err)
		return
	}
	HandleByteResponse(w, r, http.StatusOK, MimeHTML, buf.Bytes())
}
