package http

import (
	"net/http"

	"github.com/gorilla/mux"
)

// NewHttpHandler registers the routes of h on a new router. Middlewares are applied to matched routes only.
func NewHttpHandler(h *SiteHandler, mws []mux.MiddlewareFunc) http.Handler {
	r := mux.NewRouter().StrictSlash(true)
	r.NotFoundHandler = http.HandlerFunc(handleNoRoute)
	r.MethodNotAllowedHandler = http.HandlerFunc(handleNoRoute)

	r.HandleFunc("/", h.GetIndex).Methods(http.MethodGet, http.MethodHead)
	r.HandleFunc("/healthz", h.GetHealth).Methods(http.MethodGet, http.MethodHead)

	m := r.PathPrefix(basePathManual).Subrouter()
	m.HandleFunc("", h.GetManual).Methods(http.MethodGet, http.MethodHead)
	m.HandleFunc("/{version}", h.GetManualIndex).Methods(http.MethodGet, http.MethodHead)
	m.HandleFunc("/{version}/toc.json", h.GetTableOfContents).Methods(http.MethodGet, http.MethodHead)
	m.HandleFunc("/{version}/{path:.+}", h.GetManualPage).Methods(http.MethodGet, http.MethodHead)

	r.HandleFunc(basePathAPI+basePathManual+"/{version}/urls", h.GetManualURLs).Methods(http.MethodGet)

	r.Use(mws...)
	return r
}

func handleNoRoute(w http.ResponseWriter, r *http.Request) {
	HandleErrorResponse(w, r, NewNotFoundError(nil, "Path not handled by the site"))
}
