package cli

import (
	"fmt"
	"net"
	nethttp "net/http"
	"time"

	"github.com/denotw/website/internal/app/http"
	"github.com/denotw/website/internal/app/http/cors"
	"github.com/denotw/website/internal/manual"
	"github.com/denotw/website/internal/model"
)

const readHeaderTimeout = 10 * time.Second

type ServeOptions struct {
	Resolver     *manual.Resolver
	Manifest     model.Manifest
	FetchTimeout time.Duration
	CORS         cors.CORSOptions
	http.ServerOptions
}

// NewServeHandler assembles the site handler with its middlewares and CORS support
func NewServeHandler(opts ServeOptions) (nethttp.Handler, error) {
	hs, err := http.NewDefaultHandlerService(opts.Resolver, opts.Manifest, opts.FetchTimeout)
	if err != nil {
		return nil, err
	}
	handler := http.NewHttpHandler(http.NewSiteHandler(hs), http.CollectMiddlewares(opts.ServerOptions))
	return cors.Protect(handler, opts.CORS), nil
}

func Serve(host, port string, opts ServeOptions) error {
	handler, err := NewServeHandler(opts)
	if err != nil {
		Stderrf("Could not start site server: %v", err)
		return err
	}

	s := &nethttp.Server{
		Handler:           handler,
		Addr:              net.JoinHostPort(host, port),
		ReadHeaderTimeout: readHeaderTimeout,
	}

	fmt.Printf("Start site server on %s\n", s.Addr)
	err = s.ListenAndServe()
	if err != nil {
		Stderrf("Could not start site server on %s: %v", s.Addr, err)
		return err
	}

	return nil
}
