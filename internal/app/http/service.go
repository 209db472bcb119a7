package http

import (
	"context"
	"fmt"
	"time"

	"github.com/denotw/website/internal/manual"
	"github.com/denotw/website/internal/model"
	"github.com/denotw/website/internal/site"
)

//go:generate mockery --name HandlerService --outpkg mocks --output mocks
type HandlerService interface {
	Landing(ctx context.Context) (site.Landing, error)
	LatestVersion(ctx context.Context) (string, error)
	ManualIndex(ctx context.Context, version string) (site.ManualPage, error)
	ManualPage(ctx context.Context, version, path string) (site.ManualPage, error)
	TableOfContents(ctx context.Context, version string) (model.TableOfContents, error)
	ManualURLs(ctx context.Context, version, path string) (model.ManualURLs, error)
	CheckHealth(ctx context.Context) error
}

type defaultHandlerService struct {
	resolver     *manual.Resolver
	manifest     model.Manifest
	fetchTimeout time.Duration
}

// NewDefaultHandlerService creates the HandlerService backed by the manual resolver. Each fetch from a content
// host is bounded by fetchTimeout, if positive.
func NewDefaultHandlerService(resolver *manual.Resolver, manifest model.Manifest, fetchTimeout time.Duration) (*defaultHandlerService, error) {
	if resolver == nil {
		return nil, fmt.Errorf("resolver must not be nil")
	}
	dhs := &defaultHandlerService{
		resolver:     resolver,
		manifest:     manifest,
		fetchTimeout: fetchTimeout,
	}
	return dhs, nil
}

func (dhs *defaultHandlerService) Landing(ctx context.Context) (site.Landing, error) {
	return site.NewLanding(dhs.manifest)
}

func (dhs *defaultHandlerService) LatestVersion(ctx context.Context) (string, error) {
	return dhs.manifest.CLI.Latest()
}

func (dhs *defaultHandlerService) ManualIndex(ctx context.Context, version string) (site.ManualPage, error) {
	ctx, cancel := dhs.withTimeout(ctx)
	defer cancel()

	toc, err := dhs.resolver.TableOfContents(ctx, version)
	if err != nil {
		return site.ManualPage{}, err
	}
	return site.ManualPage{
		Version:  version,
		Versions: dhs.manifest.CLI,
		Title:    version,
		TOC:      toc,
	}, nil
}

// ManualPage fetches the table of contents and the document at path. Documents not listed in the table of
// contents are served as well, titled by their path.
func (dhs *defaultHandlerService) ManualPage(ctx context.Context, version, path string) (site.ManualPage, error) {
	ctx, cancel := dhs.withTimeout(ctx)
	defer cancel()

	toc, err := dhs.resolver.TableOfContents(ctx, version)
	if err != nil {
		return site.ManualPage{}, err
	}
	md, err := dhs.resolver.File(ctx, version, path)
	if err != nil {
		return site.ManualPage{}, err
	}
	content, err := site.MarkdownToHTML(md)
	if err != nil {
		return site.ManualPage{}, fmt.Errorf("cannot render %s: %w", path, err)
	}
	title, _ := toc.Lookup(path)
	return site.ManualPage{
		Version:   version,
		Versions:  dhs.manifest.CLI,
		Path:      path,
		Title:     title,
		TOC:       toc,
		Content:   content,
		SourceURL: dhs.resolver.DocURL(version, path),
	}, nil
}

func (dhs *defaultHandlerService) TableOfContents(ctx context.Context, version string) (model.TableOfContents, error) {
	ctx, cancel := dhs.withTimeout(ctx)
	defer cancel()
	return dhs.resolver.TableOfContents(ctx, version)
}

func (dhs *defaultHandlerService) ManualURLs(ctx context.Context, version, path string) (model.ManualURLs, error) {
	return dhs.resolver.URLs(version, path), nil
}

// CheckHealth reports the service unhealthy when there is no version to serve
func (dhs *defaultHandlerService) CheckHealth(ctx context.Context) error {
	_, err := dhs.manifest.CLI.Latest()
	return err
}

func (dhs *defaultHandlerService) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if dhs.fetchTimeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, dhs.fetchTimeout)
}
