// Package build writes the website as static files.
package build

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/denotw/website/internal/manual"
	"github.com/denotw/website/internal/model"
	"github.com/denotw/website/internal/site"
	"github.com/denotw/website/internal/utils"
	"github.com/gofrs/flock"
)

const (
	LockFile  = ".build.lock"
	IndexFile = "index.html"

	defaultDirPermissions  = 0775
	defaultFilePermissions = 0664
	lockTimeout            = 5 * time.Second
	lockRetryDelay         = 100 * time.Millisecond
)

var (
	ErrOutputLocked  = errors.New("output directory is locked by another build")
	ErrOutsideOutput = errors.New("path is outside of the output directory")
)

// Builder renders the site into OutDir
type Builder struct {
	resolver *manual.Resolver
	manifest model.Manifest
	outDir   string
}

type Options struct {
	// Manual enables rendering every page of the latest manual in addition to the landing page
	Manual bool
	// Version overrides the manual version to render. Defaults to the latest cli version.
	Version string
}

// Result lists the files written, relative to the output directory
type Result struct {
	Files []string
}

func NewBuilder(resolver *manual.Resolver, manifest model.Manifest, outDir string) *Builder {
	return &Builder{
		resolver: resolver,
		manifest: manifest,
		outDir:   outDir,
	}
}

func (b *Builder) Build(ctx context.Context, opts Options) (Result, error) {
	log := utils.GetLogger(ctx, "build.Builder")
	err := os.MkdirAll(b.outDir, defaultDirPermissions)
	if err != nil {
		return Result{}, err
	}

	unlock, err := b.lock(ctx)
	defer unlock()
	if err != nil {
		return Result{}, err
	}

	var res Result
	landing, err := site.NewLanding(b.manifest)
	if err != nil {
		return res, err
	}
	err = b.writePage(&res, IndexFile, func(buf *bytes.Buffer) error { return site.RenderIndex(buf, landing) })
	if err != nil {
		return res, err
	}

	if !opts.Manual {
		return res, nil
	}

	version := opts.Version
	if version == "" {
		version, err = b.manifest.CLI.Latest()
		if err != nil {
			return res, err
		}
	}
	log.Info("building manual", "version", version, "route", b.resolver.Route(version).String())
	err = b.buildManual(ctx, &res, version)
	return res, err
}

func (b *Builder) buildManual(ctx context.Context, res *Result, version string) error {
	toc, err := b.resolver.TableOfContents(ctx, version)
	if err != nil {
		return err
	}
	page := site.ManualPage{
		Version:  version,
		Versions: b.manifest.CLI,
		TOC:      toc,
	}

	versionDir := filepath.Join("manual", version)
	err = b.writePage(res, filepath.Join(versionDir, IndexFile), func(buf *bytes.Buffer) error { return site.RenderManual(buf, page) })
	if err != nil {
		return err
	}

	for _, p := range toc.Pages() {
		md, err := b.resolver.File(ctx, version, p.Path)
		if err != nil {
			return err
		}
		content, err := site.MarkdownToHTML(md)
		if err != nil {
			return fmt.Errorf("cannot render %s: %w", p.Path, err)
		}
		pp := page
		pp.Path = p.Path
		pp.Title = p.Name
		pp.Content = content
		pp.SourceURL = b.resolver.DocURL(version, p.Path)

		name := filepath.Join(versionDir, filepath.FromSlash(strings.TrimPrefix(p.Path, "/")), IndexFile)
		err = b.writePage(res, name, func(buf *bytes.Buffer) error { return site.RenderManual(buf, pp) })
		if err != nil {
			return err
		}
	}
	return nil
}

func (b *Builder) writePage(res *Result, name string, render func(buf *bytes.Buffer) error) error {
	buf := bytes.NewBuffer(nil)
	if err := render(buf); err != nil {
		return fmt.Errorf("cannot render %s: %w", name, err)
	}
	abs := filepath.Join(b.outDir, name)
	rel, err := filepath.Rel(b.outDir, abs)
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return fmt.Errorf("%w: %s", ErrOutsideOutput, name)
	}
	if err := os.MkdirAll(filepath.Dir(abs), defaultDirPermissions); err != nil {
		return err
	}
	if err := utils.AtomicWriteFile(abs, buf.Bytes(), defaultFilePermissions); err != nil {
		return err
	}
	res.Files = append(res.Files, filepath.ToSlash(name))
	return nil
}

type unlockFunc func()

func (b *Builder) lock(ctx context.Context) (unlockFunc, error) {
	fl := flock.New(filepath.Join(b.outDir, LockFile))
	ctx, cancel := context.WithTimeout(ctx, lockTimeout)
	unlock := func() {
		cancel()
		_ = fl.Unlock()
	}
	locked, err := fl.TryLockContext(ctx, lockRetryDelay)
	if err != nil && !errors.Is(err, context.DeadlineExceeded) {
		return unlock, err
	}
	if !locked {
		return unlock, ErrOutputLocked
	}
	return unlock, nil
}
