package manual

import (
	"net/http"
	"testing"

	"github.com/denotw/website/internal/model"
	"github.com/stretchr/testify/assert"
)

var testHosts = Hosts{
	X:   "https://x.example.org/docs@",
	Raw: "https://raw.example.org/owner/repo/",
	Doc: "https://browse.example.org/owner/repo/blob/",
}

func TestNewResolver(t *testing.T) {
	versions := model.VersionList{"1.1.0", "1.0.0"}

	r := NewResolver(versions)
	assert.Equal(t, DefaultHosts(), r.Hosts())
	assert.Equal(t, versions, r.Versions())
	assert.Same(t, http.DefaultClient, r.client)

	client := &http.Client{}
	r = NewResolver(versions, WithHosts(testHosts), WithHTTPClient(client))
	assert.Equal(t, testHosts, r.Hosts())
	assert.Same(t, client, r.client)

	r = NewResolver(versions, WithHTTPClient(nil))
	assert.Same(t, http.DefaultClient, r.client)
}

func TestResolver_Route(t *testing.T) {
	r := NewResolver(model.VersionList{"1.0.0", "1.1.0"}, WithHosts(testHosts))

	tests := []struct {
		version string
		route   Route
		base    string
	}{
		{"1.0.0", RouteX, testHosts.X},
		{"1.1.0", RouteX, testHosts.X},
		{"1.1.0-beta", RouteRaw, testHosts.Raw},
		{"1.2.0-rc", RouteRaw, testHosts.Raw},
		{"v1.1.0", RouteRaw, testHosts.Raw},
		{"1.1", RouteRaw, testHosts.Raw},
		{"main", RouteRaw, testHosts.Raw},
		{"4f9d2ae", RouteRaw, testHosts.Raw},
		{"", RouteRaw, testHosts.Raw},
	}
	for _, test := range tests {
		t.Run(test.version, func(t *testing.T) {
			assert.Equal(t, test.route, r.Route(test.version))
			assert.Equal(t, test.base, r.BasePath(test.version))
			assert.Equal(t, test.route == RouteX, r.Recognized(test.version))
		})
	}

	assert.NotEqual(t, r.BasePath("1.1.0"), r.BasePath("1.1.0-beta"))
}

func TestResolver_RouteEmptyVersionList(t *testing.T) {
	r := NewResolver(nil, WithHosts(testHosts))
	assert.Equal(t, RouteRaw, r.Route("1.0.0"))
	assert.Equal(t, testHosts.Raw, r.BasePath("1.0.0"))
}

func TestRoute_String(t *testing.T) {
	assert.Equal(t, "x", RouteX.String())
	assert.Equal(t, "raw", RouteRaw.String())
	assert.Equal(t, "unknown route: 0", Route(0).String())
}

func TestResolver_URLs(t *testing.T) {
	r := NewResolver(model.VersionList{"1.0.0", "1.1.0"}, WithHosts(testHosts))

	tests := []struct {
		version string
		path    string
		toc     string
		file    string
		doc     string
	}{
		{
			"1.1.0", "/getting_started/installation",
			"https://x.example.org/docs@1.1.0/toc.json",
			"https://x.example.org/docs@1.1.0/getting_started/installation.md",
			"https://browse.example.org/owner/repo/blob/1.1.0/getting_started/installation.md",
		},
		{
			"main", "/introduction",
			"https://raw.example.org/owner/repo/main/toc.json",
			"https://raw.example.org/owner/repo/main/introduction.md",
			"https://browse.example.org/owner/repo/blob/main/introduction.md",
		},
		{
			// no escaping of version or path
			"feature/a b", "/a?b",
			"https://raw.example.org/owner/repo/feature/a b/toc.json",
			"https://raw.example.org/owner/repo/feature/a b/a?b.md",
			"https://browse.example.org/owner/repo/blob/feature/a b/a?b.md",
		},
		{
			"1.0.0", "",
			"https://x.example.org/docs@1.0.0/toc.json",
			"https://x.example.org/docs@1.0.0.md",
			"https://browse.example.org/owner/repo/blob/1.0.0.md",
		},
	}
	for _, test := range tests {
		t.Run(test.version+test.path, func(t *testing.T) {
			assert.Equal(t, test.toc, r.TableOfContentsURL(test.version))
			assert.Equal(t, test.file, r.FileURL(test.version, test.path))
			assert.Equal(t, r.BasePath(test.version)+test.version+test.path+".md", r.FileURL(test.version, test.path))
			assert.Equal(t, test.doc, r.DocURL(test.version, test.path))
			assert.Equal(t, testHosts.Doc+test.version+test.path+".md", r.DocURL(test.version, test.path))
		})
	}
}

func TestResolver_URLsAreIdempotent(t *testing.T) {
	r := NewResolver(model.VersionList{"1.0.0"}, WithHosts(testHosts))

	for _, v := range []string{"1.0.0", "main"} {
		file, doc, toc := r.FileURL(v, "/intro"), r.DocURL(v, "/intro"), r.TableOfContentsURL(v)
		for i := 0; i < 3; i++ {
			assert.Equal(t, file, r.FileURL(v, "/intro"))
			assert.Equal(t, doc, r.DocURL(v, "/intro"))
			assert.Equal(t, toc, r.TableOfContentsURL(v))
		}
	}
}

func TestResolver_URLsBundle(t *testing.T) {
	r := NewResolver(model.VersionList{"1.0.0"}, WithHosts(testHosts))

	assert.Equal(t, model.ManualURLs{
		Version:            "main",
		Path:               "/introduction",
		Route:              "raw",
		TableOfContentsURL: "https://raw.example.org/owner/repo/main/toc.json",
		FileURL:            "https://raw.example.org/owner/repo/main/introduction.md",
		DocURL:             "https://browse.example.org/owner/repo/blob/main/introduction.md",
	}, r.URLs("main", "/introduction"))
	assert.Equal(t, "x", r.URLs("1.0.0", "/introduction").Route)
}
