package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/denotw/website/internal/app/http/mocks"
	"github.com/denotw/website/internal/manual"
	"github.com/denotw/website/internal/model"
	"github.com/denotw/website/internal/site"
	"github.com/denotw/website/internal/testutils"
	"github.com/kinbiko/jsonassert"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

var unknownErr = errors.New("an unknown error")

var notFoundErr = &manual.RetrievalError{URL: "https://raw.example.org/main/nope.md", StatusCode: http.StatusNotFound, Body: "404: Not Found"}
var upstreamErr = &manual.RetrievalError{URL: "https://raw.example.org/main/toc.json", StatusCode: http.StatusInternalServerError, Body: "oops"}

var testManifest = model.Manifest{
	CLI: model.VersionList{"1.1.0", "1.0.0"},
	Std: model.VersionList{"0.71.0", "0.70.0"},
}

var testTOC = model.TableOfContents{
	"introduction":    {Name: "Introduction"},
	"getting_started": {Name: "Getting Started", Children: map[string]string{"installation": "Installation"}},
}

func setupTestHttpHandler(hs HandlerService) http.Handler {
	return NewHttpHandler(NewSiteHandler(hs), CollectMiddlewares(ServerOptions{}))
}

func Test_healthz(t *testing.T) {

	route := "/healthz"

	hs := mocks.NewHandlerService(t)
	httpHandler := setupTestHttpHandler(hs)

	t.Run("with success", func(t *testing.T) {
		hs.On("CheckHealth", mock.Anything).Return(nil).Once()
		// when: calling the route
		rec := testutils.NewRequest(http.MethodGet, route).RunOnHandler(httpHandler)
		// then: it returns 204 status and empty body
		assertHealthyResponse204(t, rec)
	})

	t.Run("with error", func(t *testing.T) {
		hs.On("CheckHealth", mock.Anything).Return(model.ErrNoVersions).Once()
		// when: calling the route
		rec := testutils.NewRequest(http.MethodGet, route).RunOnHandler(httpHandler)
		// then: it returns 503 status and json error as body
		assertResponse503(t, rec, route)
	})
}

func Test_index(t *testing.T) {

	route := "/"

	hs := mocks.NewHandlerService(t)
	httpHandler := setupTestHttpHandler(hs)

	t.Run("with success", func(t *testing.T) {
		landing, err := site.NewLanding(testManifest)
		assert.NoError(t, err)
		hs.On("Landing", mock.Anything).Return(landing, nil).Once()
		// when: calling the route
		rec := testutils.NewRequest(http.MethodGet, route).RunOnHandler(httpHandler)
		// then: it returns the rendered landing page
		assertHtmlResponse200(t, rec)
		assert.Contains(t, rec.Body.String(), "1.1.0")
		assert.Contains(t, rec.Body.String(), "https://deno.land/std@0.71.0/http/server.ts")
	})

	t.Run("with empty version list", func(t *testing.T) {
		hs.On("Landing", mock.Anything).Return(site.Landing{}, model.ErrNoVersions).Once()
		// when: calling the route
		rec := testutils.NewRequest(http.MethodGet, route).RunOnHandler(httpHandler)
		// then: it returns 503 status and an error page
		assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
		assert.Equal(t, MimeHTML, rec.Header().Get(HeaderContentType))
		assert.Contains(t, rec.Body.String(), Error503Title)
	})
}

func Test_manual(t *testing.T) {

	route := "/manual"

	hs := mocks.NewHandlerService(t)
	httpHandler := setupTestHttpHandler(hs)

	t.Run("redirects to latest", func(t *testing.T) {
		hs.On("LatestVersion", mock.Anything).Return("1.1.0", nil).Once()
		// when: calling the route
		rec := testutils.NewRequest(http.MethodGet, route).RunOnHandler(httpHandler)
		// then: it redirects to the manual of the latest version
		assert.Equal(t, http.StatusFound, rec.Code)
		assert.Equal(t, "/manual/1.1.0", rec.Header().Get(HeaderLocation))
	})

	t.Run("redirects to selected version", func(t *testing.T) {
		// when: calling the route with a version query, as sent by the version select form
		rec := testutils.NewRequest(http.MethodGet, route+"?version=main").RunOnHandler(httpHandler)
		// then: it redirects to the manual of that version without consulting the service
		assert.Equal(t, http.StatusFound, rec.Code)
		assert.Equal(t, "/manual/main", rec.Header().Get(HeaderLocation))
	})

	t.Run("with empty version list", func(t *testing.T) {
		hs.On("LatestVersion", mock.Anything).Return("", model.ErrNoVersions).Once()
		// when: calling the route
		rec := testutils.NewRequest(http.MethodGet, route).RunOnHandler(httpHandler)
		// then: it returns 503 status
		assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	})
}

func Test_manualIndex(t *testing.T) {

	route := "/manual/1.0.0"

	hs := mocks.NewHandlerService(t)
	httpHandler := setupTestHttpHandler(hs)

	t.Run("with success", func(t *testing.T) {
		page := site.ManualPage{Version: "1.0.0", Versions: testManifest.CLI, Title: "1.0.0", TOC: testTOC}
		hs.On("ManualIndex", mock.Anything, "1.0.0").Return(page, nil).Once()
		// when: calling the route
		rec := testutils.NewRequest(http.MethodGet, route).RunOnHandler(httpHandler)
		// then: it returns the table of contents with links to all pages
		assertHtmlResponse200(t, rec)
		body := rec.Body.String()
		assert.Contains(t, body, `href="/manual/1.0.0/introduction"`)
		assert.Contains(t, body, `href="/manual/1.0.0/getting_started/installation"`)
	})

	t.Run("with trailing slash", func(t *testing.T) {
		// when: calling the route with a trailing slash
		rec := testutils.NewRequest(http.MethodGet, route+"/").RunOnHandler(httpHandler)
		// then: it redirects to the route without trailing slash
		assert.Equal(t, http.StatusMovedPermanently, rec.Code)
		assert.Equal(t, route, rec.Header().Get(HeaderLocation))
	})

	t.Run("with unknown version", func(t *testing.T) {
		hs.On("ManualIndex", mock.Anything, "1.0.0").Return(site.ManualPage{}, notFoundErr).Once()
		// when: calling the route
		rec := testutils.NewRequest(http.MethodGet, route).RunOnHandler(httpHandler)
		// then: it returns 404 status and an error page
		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, MimeHTML, rec.Header().Get(HeaderContentType))
		assert.Contains(t, rec.Body.String(), Error404Title)
	})

	t.Run("with failing content host", func(t *testing.T) {
		hs.On("ManualIndex", mock.Anything, "1.0.0").Return(site.ManualPage{}, upstreamErr).Once()
		// when: calling the route
		rec := testutils.NewRequest(http.MethodGet, route).RunOnHandler(httpHandler)
		// then: it returns 502 status and an error page
		assert.Equal(t, http.StatusBadGateway, rec.Code)
		assert.Contains(t, rec.Body.String(), Error502Detail)
	})
}

func Test_manualPage(t *testing.T) {

	route := "/manual/1.0.0/getting_started/installation"

	hs := mocks.NewHandlerService(t)
	httpHandler := setupTestHttpHandler(hs)

	t.Run("with success", func(t *testing.T) {
		page := site.ManualPage{
			Version:   "1.0.0",
			Versions:  testManifest.CLI,
			Path:      "/getting_started/installation",
			Title:     "Installation",
			TOC:       testTOC,
			Content:   "<h1>Installation</h1>",
			SourceURL: "https://browse.example.org/blob/1.0.0/getting_started/installation.md",
		}
		hs.On("ManualPage", mock.Anything, "1.0.0", "/getting_started/installation").Return(page, nil).Once()
		// when: calling the route
		rec := testutils.NewRequest(http.MethodGet, route).RunOnHandler(httpHandler)
		// then: it returns the rendered document
		assertHtmlResponse200(t, rec)
		body := rec.Body.String()
		assert.Contains(t, body, "<h1>Installation</h1>")
		assert.Contains(t, body, page.SourceURL)
		assert.Contains(t, body, `class="active"><a href="/manual/1.0.0/getting_started/installation"`)
	})

	t.Run("with unknown document", func(t *testing.T) {
		hs.On("ManualPage", mock.Anything, "1.0.0", "/getting_started/installation").Return(site.ManualPage{}, notFoundErr).Once()
		// when: calling the route
		rec := testutils.NewRequest(http.MethodGet, route).RunOnHandler(httpHandler)
		// then: it returns 404 status
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("with unknown error", func(t *testing.T) {
		hs.On("ManualPage", mock.Anything, "1.0.0", "/getting_started/installation").Return(site.ManualPage{}, unknownErr).Once()
		// when: calling the route
		rec := testutils.NewRequest(http.MethodGet, route).RunOnHandler(httpHandler)
		// then: it returns 500 status
		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.Contains(t, rec.Body.String(), Error500Title)
	})
}

func Test_tableOfContents(t *testing.T) {

	route := "/manual/main/toc.json"

	hs := mocks.NewHandlerService(t)
	httpHandler := setupTestHttpHandler(hs)

	t.Run("with success", func(t *testing.T) {
		hs.On("TableOfContents", mock.Anything, "main").Return(testTOC, nil).Once()
		// when: calling the route
		rec := testutils.NewRequest(http.MethodGet, route).RunOnHandler(httpHandler)
		// then: it returns the table of contents as json
		assertResponse200(t, rec)
		jsonassert.New(t).Assertf(rec.Body.String(), `{
			"introduction": {"name": "Introduction"},
			"getting_started": {"name": "Getting Started", "children": {"installation": "Installation"}}
		}`)
	})

	t.Run("with invalid table of contents", func(t *testing.T) {
		hs.On("TableOfContents", mock.Anything, "main").Return(nil, manual.ErrInvalidTableOfContents).Once()
		// when: calling the route
		rec := testutils.NewRequest(http.MethodGet, route).RunOnHandler(httpHandler)
		// then: it returns 502 status and json error as body
		assertResponse502(t, rec, route)
	})

	t.Run("with unreachable content host", func(t *testing.T) {
		transportErr := &manual.RetrievalError{URL: "https://raw.example.org/main/toc.json", Err: unknownErr}
		hs.On("TableOfContents", mock.Anything, "main").Return(nil, transportErr).Once()
		// when: calling the route
		rec := testutils.NewRequest(http.MethodGet, route).RunOnHandler(httpHandler)
		// then: it returns 502 status and json error as body
		assertResponse502(t, rec, route)
	})

	t.Run("with unknown version", func(t *testing.T) {
		hs.On("TableOfContents", mock.Anything, "main").Return(nil, notFoundErr).Once()
		// when: calling the route
		rec := testutils.NewRequest(http.MethodGet, route).RunOnHandler(httpHandler)
		// then: it returns 404 status and json error as body
		assertResponse404(t, rec, route)
	})
}

func Test_manualURLs(t *testing.T) {

	route := "/api/manual/1.0.0/urls"

	hs := mocks.NewHandlerService(t)
	httpHandler := setupTestHttpHandler(hs)

	urls := model.ManualURLs{
		Version:            "1.0.0",
		Path:               "/introduction",
		Route:              "x",
		TableOfContentsURL: "https://x.example.org/docs@1.0.0/toc.json",
		FileURL:            "https://x.example.org/docs@1.0.0/introduction.md",
		DocURL:             "https://browse.example.org/blob/1.0.0/introduction.md",
	}

	t.Run("with success", func(t *testing.T) {
		hs.On("ManualURLs", mock.Anything, "1.0.0", "/introduction").Return(urls, nil).Once()
		// when: calling the route
		rec := testutils.NewRequest(http.MethodGet, route+"?path=/introduction").RunOnHandler(httpHandler)
		// then: it returns the urls as json
		assertResponse200(t, rec)
		jsonassert.New(t).Assertf(rec.Body.String(), `{
			"version": "1.0.0",
			"path": "/introduction",
			"route": "x",
			"tocUrl": "https://x.example.org/docs@1.0.0/toc.json",
			"fileUrl": "https://x.example.org/docs@1.0.0/introduction.md",
			"docUrl": "https://browse.example.org/blob/1.0.0/introduction.md"
		}`)
	})

	t.Run("with path missing leading slash", func(t *testing.T) {
		hs.On("ManualURLs", mock.Anything, "1.0.0", "/introduction").Return(urls, nil).Once()
		// when: calling the route with a relative path
		rec := testutils.NewRequest(http.MethodGet, route+"?path=introduction").RunOnHandler(httpHandler)
		// then: the path is made absolute
		assertResponse200(t, rec)
	})

	t.Run("without path", func(t *testing.T) {
		// when: calling the route without path query
		rec := testutils.NewRequest(http.MethodGet, route).RunOnHandler(httpHandler)
		// then: it returns 400 status and json error as body
		assertResponse400(t, rec, route)
	})
}

func Test_noRoute(t *testing.T) {
	hs := mocks.NewHandlerService(t)
	httpHandler := setupTestHttpHandler(hs)

	for _, route := range []string{"/unknown", "/api/manual/1.0.0"} {
		rec := testutils.NewRequest(http.MethodGet, route).RunOnHandler(httpHandler)
		assertResponse404(t, rec, route)
	}

	route := "/api/manual/1.0.0/urls?path=/a"
	rec := testutils.NewRequest(http.MethodPost, route).RunOnHandler(httpHandler)
	assertResponse404(t, rec, route)
}

func Test_requestID(t *testing.T) {
	hs := mocks.NewHandlerService(t)
	httpHandler := setupTestHttpHandler(hs)
	hs.On("CheckHealth", mock.Anything).Return(nil)

	t.Run("generated", func(t *testing.T) {
		rec := testutils.NewRequest(http.MethodGet, "/healthz").RunOnHandler(httpHandler)
		assert.Len(t, rec.Header().Get(HeaderRequestID), 36)
	})
	t.Run("sent by client", func(t *testing.T) {
		rec := testutils.NewRequest(http.MethodGet, "/healthz").WithHeader(HeaderRequestID, "abc").RunOnHandler(httpHandler)
		assert.Equal(t, "abc", rec.Header().Get(HeaderRequestID))
	})
}

func Test_accessLog(t *testing.T) {
	hs := mocks.NewHandlerService(t)
	httpHandler := NewHttpHandler(NewSiteHandler(hs), CollectMiddlewares(ServerOptions{AccessLog: true}))
	hs.On("CheckHealth", mock.Anything).Return(nil).Once()

	rec := testutils.NewRequest(http.MethodGet, "/healthz").RunOnHandler(httpHandler)
	assertHealthyResponse204(t, rec)
}

func assertHealthyResponse204(t *testing.T, rec *httptest.ResponseRecorder) {
	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, 0, rec.Body.Len())
	assert.Equal(t, NoCache, rec.Header().Get(HeaderCacheControl))
}

func assertResponse200(t *testing.T, rec *httptest.ResponseRecorder) {
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, MimeJSON, rec.Header().Get(HeaderContentType))
}

func assertHtmlResponse200(t *testing.T, rec *httptest.ResponseRecorder) {
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, MimeHTML, rec.Header().Get(HeaderContentType))
}

func assertResponse400(t *testing.T, rec *httptest.ResponseRecorder, route string) {
	assertProblemResponse(t, rec, route, http.StatusBadRequest, Error400Title)
}

func assertResponse404(t *testing.T, rec *httptest.ResponseRecorder, route string) {
	assertProblemResponse(t, rec, route, http.StatusNotFound, Error404Title)
}

func assertResponse502(t *testing.T, rec *httptest.ResponseRecorder, route string) {
	errResponse := assertProblemResponse(t, rec, route, http.StatusBadGateway, Error502Title)
	if assert.NotNil(t, errResponse.Detail) {
		assert.Equal(t, Error502Detail, *errResponse.Detail)
	}
}

func assertResponse503(t *testing.T, rec *httptest.ResponseRecorder, route string) {
	assertProblemResponse(t, rec, route, http.StatusServiceUnavailable, Error503Title)
}

func assertProblemResponse(t *testing.T, rec *httptest.ResponseRecorder, route string, status int, title string) ErrorResponse {
	assert.Equal(t, status, rec.Code)
	var errResponse ErrorResponse
	assertUnmarshalResponse(t, rec.Body.Bytes(), &errResponse)
	assert.Equal(t, status, errResponse.Status)
	if assert.NotNil(t, errResponse.Instance) {
		assert.Equal(t, route, *errResponse.Instance)
	}
	assert.Equal(t, title, errResponse.Title)

	assert.Equal(t, MimeProblemJSON, rec.Header().Get(HeaderContentType))
	assert.Equal(t, NoSniff, rec.Header().Get(HeaderXContentTypeOptions))
	return errResponse
}

func assertUnmarshalResponse(t *testing.T, data []byte, v any) {
	err := json.Unmarshal(data, v)
	assert.NoError(t, err, "error unmarshalling response")
}
