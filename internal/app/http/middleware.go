package http

import (
	"log/slog"
	"net/http"

	"github.com/denotw/website/internal/utils"
	"github.com/felixge/httpsnoop"
	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

type ServerOptions struct {
	// AccessLog enables logging of every handled request
	AccessLog bool
}

func CollectMiddlewares(opts ServerOptions) []mux.MiddlewareFunc {
	mws := []mux.MiddlewareFunc{RequestIDMiddleware}
	if opts.AccessLog {
		mws = append(mws, AccessLogMiddleware)
	}
	return mws
}

// RequestIDMiddleware assigns a request id, which is echoed in the X-Request-Id header and attached to the
// request's logger. An id sent by the client is kept.
func RequestIDMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(HeaderRequestID)
		if id == "" {
			id = uuid.NewString()
		}
		w.Header().Set(HeaderRequestID, id)
		ctx := utils.WithLogger(r.Context(), slog.Default().With("requestId", id))
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func AccessLogMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		m := httpsnoop.CaptureMetrics(next, w, r)
		utils.GetLogger(r.Context(), "http.AccessLog").Info("request handled",
			"method", r.Method,
			"uri", r.RequestURI,
			"status", m.Code,
			"bytes", m.Written,
			"duration", m.Duration,
		)
	})
}
