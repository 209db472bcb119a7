package model

import "sort"

// TableOfContents maps a slug to a manual section. It is a two-level tree: sections may have children,
// children are plain slug -> name pairs.
type TableOfContents map[string]Entry

type Entry struct {
	Name     string            `json:"name"`
	Children map[string]string `json:"children,omitempty"`
}

// SortedSlugs returns the top-level slugs in lexical order. The order of the keys in toc.json is not kept,
// since it is decoded into a map; authors control the order by naming slugs.
func (t TableOfContents) SortedSlugs() []string {
	slugs := make([]string, 0, len(t))
	for s := range t {
		slugs = append(slugs, s)
	}
	sort.Strings(slugs)
	return slugs
}

// SortedChildSlugs returns the child slugs of the entry in lexical order.
func (e Entry) SortedChildSlugs() []string {
	slugs := make([]string, 0, len(e.Children))
	for s := range e.Children {
		slugs = append(slugs, s)
	}
	sort.Strings(slugs)
	return slugs
}

// Page is a single addressable document of the manual.
type Page struct {
	// Path is the document path relative to the version root, starting with '/' and without extension
	Path string
	Name string
}

// Pages flattens the table of contents into the list of documents it references, parents before their
// children. Both levels are in lexical slug order, not in the order of toc.json.
func (t TableOfContents) Pages() []Page {
	var pages []Page
	for _, slug := range t.SortedSlugs() {
		e := t[slug]
		pages = append(pages, Page{Path: "/" + slug, Name: e.Name})
		for _, child := range e.SortedChildSlugs() {
			pages = append(pages, Page{Path: "/" + slug + "/" + child, Name: e.Children[child]})
		}
	}
	return pages
}

// Lookup finds the display name of the document at path, e.g. "/getting_started/installation".
func (t TableOfContents) Lookup(path string) (string, bool) {
	for _, p := range t.Pages() {
		if p.Path == path {
			return p.Name, true
		}
	}
	return "", false
}
