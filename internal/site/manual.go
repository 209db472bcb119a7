package site

import (
	"bytes"
	"html/template"
	"io"
	"strings"

	"github.com/denotw/website/internal/model"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
)

var markdown = goldmark.New(
	goldmark.WithExtensions(extension.GFM),
	goldmark.WithParserOptions(parser.WithAutoHeadingID()),
)

// MarkdownToHTML converts a manual document to HTML. Raw HTML embedded in the document is not passed through.
func MarkdownToHTML(md []byte) (template.HTML, error) {
	var buf bytes.Buffer
	if err := markdown.Convert(md, &buf); err != nil {
		return "", err
	}
	return template.HTML(buf.String()), nil
}

// ManualPage is the data a manual page is rendered from. Path is empty for the index page of a version.
type ManualPage struct {
	Version   string
	Versions  model.VersionList
	Path      string
	Title     string
	TOC       model.TableOfContents
	Content   template.HTML
	SourceURL string
}

// Sections returns the table of contents for the sidebar, in the same lexical slug order as TableOfContents.Pages
func (p ManualPage) Sections() []Section {
	var sections []Section
	for _, slug := range p.TOC.SortedSlugs() {
		e := p.TOC[slug]
		s := Section{Link: p.link("/" + slug), Name: e.Name, Active: p.Path == "/"+slug}
		for _, child := range e.SortedChildSlugs() {
			path := "/" + slug + "/" + child
			s.Children = append(s.Children, Section{Link: p.link(path), Name: e.Children[child], Active: p.Path == path})
		}
		sections = append(sections, s)
	}
	return sections
}

func (p ManualPage) link(path string) string {
	return "/manual/" + p.Version + path
}

// Recognized reports whether the page belongs to a released version of the manual
func (p ManualPage) Recognized() bool {
	return p.Versions.Contains(p.Version)
}

type Section struct {
	Link     string
	Name     string
	Active   bool
	Children []Section
}

func RenderManual(w io.Writer, p ManualPage) error {
	if p.Title == "" {
		p.Title = strings.TrimPrefix(p.Path, "/")
	}
	return templates.ExecuteTemplate(w, tmplManual, p)
}
