package manual

import (
	"errors"
	"fmt"
)

var (
	ErrRetrieval              = errors.New("cannot retrieve manual content")
	ErrInvalidTableOfContents = errors.New("invalid manual table of contents")
)

// RetrievalError is returned when manual content could not be fetched: either the host answered with a status
// other than 200, or the request failed before any response arrived. In the latter case StatusCode is 0 and
// Err holds the transport error.
type RetrievalError struct {
	URL        string
	StatusCode int
	Body       string
	Err        error
}

func (e *RetrievalError) Error() string {
	if e.StatusCode == 0 {
		return fmt.Sprintf("got an error while getting %s: %v", e.URL, e.Err)
	}
	return fmt.Sprintf("got an error (%d) while getting %s:\n%s", e.StatusCode, e.URL, e.Body)
}

func (e *RetrievalError) Unwrap() error {
	return e.Err
}

func (e *RetrievalError) Is(target error) bool {
	return target == ErrRetrieval
}

// NotFound reports whether the host answered 404.
func (e *RetrievalError) NotFound() bool {
	return e.StatusCode == 404
}
