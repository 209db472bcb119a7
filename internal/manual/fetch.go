package manual

import (
	"context"
	"io"
	"net/http"

	"github.com/denotw/website/internal/model"
	"github.com/denotw/website/internal/utils"
)

// TableOfContents fetches toc.json of the given version. Every call issues exactly one request.
func (r *Resolver) TableOfContents(ctx context.Context, version string) (model.TableOfContents, error) {
	body, err := r.fetch(ctx, r.TableOfContentsURL(version))
	if err != nil {
		return nil, err
	}
	return ParseTableOfContents(body)
}

// File fetches the raw markdown of the document at path.
func (r *Resolver) File(ctx context.Context, version, path string) ([]byte, error) {
	return r.fetch(ctx, r.FileURL(version, path))
}

func (r *Resolver) fetch(ctx context.Context, reqUrl string) ([]byte, error) {
	log := utils.GetLogger(ctx, "manual.Resolver")
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqUrl, nil)
	if err != nil {
		return nil, &RetrievalError{URL: reqUrl, Err: err}
	}

	log.Debug("fetching manual content", "url", reqUrl)
	resp, err := r.client.Do(req)
	if err != nil {
		log.Error("request to content host failed", "url", reqUrl, "error", err)
		return nil, &RetrievalError{URL: reqUrl, Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &RetrievalError{URL: reqUrl, StatusCode: resp.StatusCode, Err: err}
	}
	if resp.StatusCode != http.StatusOK {
		log.Error("received error response from content host", "url", reqUrl, "status", resp.StatusCode)
		return nil, &RetrievalError{URL: reqUrl, StatusCode: resp.StatusCode, Body: string(body)}
	}
	return body, nil
}
