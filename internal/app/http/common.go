package http

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/denotw/website/internal/manual"
	"github.com/denotw/website/internal/model"
	"github.com/denotw/website/internal/site"
	"github.com/denotw/website/internal/utils"
)

const (
	Error400Title  = "Bad Request"
	Error404Title  = "Not Found"
	Error500Title  = "Internal Server Error"
	Error500Detail = "An unhandled error has occurred. Try again later. If it is a bug we already recorded it. Retrying will most likely not help"
	Error502Title  = "Bad Gateway"
	Error502Detail = "The manual content could not be retrieved from its host"
	Error503Title  = "Service Unavailable"

	HeaderContentType         = "Content-Type"
	HeaderCacheControl        = "Cache-Control"
	HeaderXContentTypeOptions = "X-Content-Type-Options"
	HeaderLocation            = "Location"
	HeaderRequestID           = "X-Request-Id"
	MimeJSON                  = "application/json"
	MimeProblemJSON           = "application/problem+json"
	MimeHTML                  = "text/html; charset=utf-8"
	NoSniff                   = "nosniff"
	NoCache                   = "no-cache, no-store, max-age=0, must-revalidate"
)

// ErrorResponse is the problem details body (RFC 7807) of all error responses
type ErrorResponse struct {
	Title    string  `json:"title"`
	Status   int     `json:"status"`
	Detail   *string `json:"detail,omitempty"`
	Instance *string `json:"instance,omitempty"`
}

func HandleJsonResponse(w http.ResponseWriter, r *http.Request, status int, data any) {
	body, err := json.MarshalIndent(data, "", "    ")
	if err != nil {
		HandleErrorResponse(w, r, err)
		return
	}

	w.Header().Set(HeaderContentType, MimeJSON)
	w.WriteHeader(status)
	_, _ = w.Write(body)
}

func HandleByteResponse(w http.ResponseWriter, r *http.Request, status int, mime string, data []byte) {
	w.Header().Set(HeaderContentType, mime)
	w.WriteHeader(status)
	_, _ = w.Write(data)
}

func HandleHealthyResponse(w http.ResponseWriter, r *http.Request) {
	w.Header().Set(HeaderCacheControl, NoCache)
	w.WriteHeader(http.StatusNoContent)
	_, _ = w.Write(nil)
}

// HandleErrorResponse writes err as problem+json
func HandleErrorResponse(w http.ResponseWriter, r *http.Request, err error) {
	errStatus, errTitle, errDetail := classifyError(r, err)

	problem := ErrorResponse{
		Title:    errTitle,
		Detail:   &errDetail,
		Status:   errStatus,
		Instance: &r.RequestURI,
	}

	respBody, _ := json.MarshalIndent(problem, "", "  ")
	w.Header().Set(HeaderContentType, MimeProblemJSON)
	w.Header().Set(HeaderXContentTypeOptions, NoSniff)
	w.WriteHeader(errStatus)
	_, _ = w.Write(respBody)
}

// HandlePageErrorResponse writes err as an HTML error page, with the same status HandleErrorResponse would use
func HandlePageErrorResponse(w http.ResponseWriter, r *http.Request, err error) {
	errStatus, errTitle, errDetail := classifyError(r, err)

	buf := bytes.NewBuffer(nil)
	rErr := site.RenderError(buf, site.ErrorPage{Status: errStatus, Title: errTitle, Detail: errDetail})
	if rErr != nil {
		utils.GetLogger(r.Context(), "http.HandlePageErrorResponse").Error("cannot render error page", "error", rErr)
		HandleErrorResponse(w, r, err)
		return
	}
	w.Header().Set(HeaderXContentTypeOptions, NoSniff)
	HandleByteResponse(w, r, errStatus, MimeHTML, buf.Bytes())
}

func classifyError(r *http.Request, err error) (int, string, string) {
	log := utils.GetLogger(r.Context(), "http.HandleErrorResponse")

	errTitle := Error500Title
	errDetail := Error500Detail
	errStatus := http.StatusInternalServerError

	var rErr *manual.RetrievalError
	var hErr *BaseHttpError
	switch {
	case errors.As(err, &hErr):
		errTitle = hErr.Title
		errDetail = hErr.Detail
		errStatus = hErr.Status
	case errors.As(err, &rErr) && rErr.NotFound():
		errTitle = Error404Title
		errDetail = fmt.Sprintf("%s does not exist", rErr.URL)
		errStatus = http.StatusNotFound
	case errors.Is(err, manual.ErrRetrieval), errors.Is(err, manual.ErrInvalidTableOfContents):
		errTitle = Error502Title
		errDetail = Error502Detail
		errStatus = http.StatusBadGateway
	case errors.Is(err, model.ErrNoVersions):
		errTitle = Error503Title
		errDetail = err.Error()
		errStatus = http.StatusServiceUnavailable
	}

	if errStatus >= http.StatusInternalServerError {
		log.Error("request failed", "status", errStatus, "error", err)
	} else {
		log.Debug("request failed", "status", errStatus, "error", err)
	}
	return errStatus, errTitle, errDetail
}

type BaseHttpError struct {
	Status int
	Title  string
	Detail string
	Err    error
}

func (e *BaseHttpError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%d: %s: %s", e.Status, e.Detail, e.Err.Error())
	} else {
		return fmt.Sprintf("%d: %s", e.Status, e.Detail)
	}
}

func (e *BaseHttpError) Unwrap() error {
	return e.Err
}

func NewNotFoundError(err error, detail string, args ...any) error {
	detail = fmt.Sprintf(detail, args...)
	return &BaseHttpError{
		Status: http.StatusNotFound,
		Title:  Error404Title,
		Detail: detail,
		Err:    err,
	}
}

func NewBadRequestError(err error, detail string, args ...any) error {
	detail = fmt.Sprintf(detail, args...)
	return &BaseHttpError{
		Status: http.StatusBadRequest,
		Title:  Error400Title,
		Detail: detail,
		Err:    err,
	}
}

func NewServiceUnavailableError(err error, detail string) error {
	return &BaseHttpError{
		Status: http.StatusServiceUnavailable,
		Title:  Error503Title,
		Detail: detail,
		Err:    err,
	}
}
