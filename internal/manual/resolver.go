// Package manual resolves where the manual of a given version lives. Recognized versions (those present in the
// configured version list) are served from the "x" host, any other ref such as a branch name or a commit hash is
// served from the raw content host. A third host is used only for human-facing "view source" links.
package manual

import (
	"fmt"
	"net/http"

	"github.com/denotw/website/internal/model"
)

const (
	DefaultHostX   = "https://deno.land/x/deno_docs_tw@"
	DefaultHostRaw = "https://raw.githubusercontent.com/Laysi/deno-docs-tw/"
	DefaultHostDoc = "https://github.com/Laysi/deno-docs-tw/blob/"

	TableOfContentsFile = "toc.json"
	fileExt             = ".md"
)

// Route selects the content host for a version.
type Route int

const (
	RouteX Route = iota + 1
	RouteRaw
)

func (r Route) String() string {
	switch r {
	case RouteX:
		return "x"
	case RouteRaw:
		return "raw"
	default:
		return fmt.Sprintf("unknown route: %d", int(r))
	}
}

// Hosts are the host roots URLs are built against. Each root is used as a plain string prefix and should end
// with the separator expected in front of the version.
type Hosts struct {
	X   string
	Raw string
	Doc string
}

func DefaultHosts() Hosts {
	return Hosts{
		X:   DefaultHostX,
		Raw: DefaultHostRaw,
		Doc: DefaultHostDoc,
	}
}

// Resolver builds manual URLs and fetches manual content. It holds only immutable state and is safe for
// concurrent use.
type Resolver struct {
	versions model.VersionList
	known    map[string]struct{}
	hosts    Hosts
	client   *http.Client
}

type Option func(*Resolver)

func WithHosts(hosts Hosts) Option {
	return func(r *Resolver) {
		r.hosts = hosts
	}
}

// WithHTTPClient sets the client used for fetching. Caching, timeouts and the like belong to the client's
// transport.
func WithHTTPClient(client *http.Client) Option {
	return func(r *Resolver) {
		if client != nil {
			r.client = client
		}
	}
}

func NewResolver(versions model.VersionList, opts ...Option) *Resolver {
	r := &Resolver{
		versions: versions,
		known:    make(map[string]struct{}, len(versions)),
		hosts:    DefaultHosts(),
		client:   http.DefaultClient,
	}
	for _, v := range versions {
		r.known[v] = struct{}{}
	}
	for _, o := range opts {
		o(r)
	}
	return r
}

// Versions returns the recognized versions, latest first.
func (r *Resolver) Versions() model.VersionList {
	return r.versions
}

func (r *Resolver) Hosts() Hosts {
	return r.hosts
}

// Recognized reports whether version is an exact member of the version list.
func (r *Resolver) Recognized(version string) bool {
	_, ok := r.known[version]
	return ok
}

func (r *Resolver) Route(version string) Route {
	if r.Recognized(version) {
		return RouteX
	}
	return RouteRaw
}

// BasePath returns the host root to fetch the given version from.
func (r *Resolver) BasePath(version string) string {
	switch r.Route(version) {
	case RouteX:
		return r.hosts.X
	default:
		return r.hosts.Raw
	}
}

func (r *Resolver) TableOfContentsURL(version string) string {
	return r.BasePath(version) + version + "/" + TableOfContentsFile
}

// FileURL returns the fetch URL of the markdown document at path, e.g. "/getting_started/installation".
// Neither version nor path are escaped.
func (r *Resolver) FileURL(version, path string) string {
	return r.BasePath(version) + version + path + fileExt
}

// DocURL returns the link to the document in the repository browser. It does not depend on whether the
// version is recognized.
func (r *Resolver) DocURL(version, path string) string {
	return r.hosts.Doc + version + path + fileExt
}

// URLs bundles the builders above for one document
func (r *Resolver) URLs(version, path string) model.ManualURLs {
	return model.ManualURLs{
		Version:            version,
		Path:               path,
		Route:              r.Route(version).String(),
		TableOfContentsURL: r.TableOfContentsURL(version),
		FileURL:            r.FileURL(version, path),
		DocURL:             r.DocURL(version, path),
	}
}
