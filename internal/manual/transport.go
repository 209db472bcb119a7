package manual

import (
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/gregjones/httpcache"
	"github.com/gregjones/httpcache/diskcache"
)

const cacheDirPermissions = 0770

// NewHTTPClient creates the client handed to the Resolver via WithHTTPClient. If cacheDir is not empty,
// responses are cached on disk and revalidated according to their HTTP caching headers. The Resolver itself
// never caches.
func NewHTTPClient(cacheDir string, timeout time.Duration) (*http.Client, error) {
	transport := http.DefaultTransport
	if cacheDir != "" {
		err := os.MkdirAll(cacheDir, cacheDirPermissions)
		if err != nil {
			return nil, fmt.Errorf("cannot create http cache directory %s: %w", cacheDir, err)
		}
		transport = httpcache.NewTransport(diskcache.New(cacheDir))
	}
	return &http.Client{
		Transport: transport,
		Timeout:   timeout,
	}, nil
}
