package testutils

import (
	"net/http"
	"net/http/httptest"
)

// Request builds a request without body against a handler. The site only serves safe methods.
type Request struct {
	method  string
	route   string
	headers map[string]string
}

func NewRequest(method, route string) *Request {
	return &Request{
		method:  method,
		route:   route,
		headers: make(map[string]string),
	}
}

func (r *Request) WithHeader(key, value string) *Request {
	r.headers[key] = value
	return r
}

func (r *Request) RunOnHandler(h http.Handler) *httptest.ResponseRecorder {
	req := httptest.NewRequest(r.method, r.route, nil)
	for k, v := range r.headers {
		req.Header.Add(k, v)
	}

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}
