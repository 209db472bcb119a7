package cli

import (
	"context"
	"fmt"

	"github.com/denotw/website/internal/manual"
)

// TableOfContents prints the table of contents of a version as a tree of paths and names
func TableOfContents(ctx context.Context, r *manual.Resolver, version, format string) error {
	if !IsValidOutputFormat(format) {
		Stderrf("%v", ErrInvalidOutputFormat)
		return ErrInvalidOutputFormat
	}
	toc, err := r.TableOfContents(ctx, version)
	if err != nil {
		Stderrf("Could not get table of contents of %s: %v", version, err)
		return err
	}

	switch format {
	case OutputFormatJSON:
		printJSON(toc)
	case OutputFormatPlain:
		for _, slug := range toc.SortedSlugs() {
			e := toc[slug]
			fmt.Printf("/%s\t%s\n", slug, e.Name)
			for _, child := range e.SortedChildSlugs() {
				fmt.Printf("  /%s/%s\t%s\n", slug, child, e.Children[child])
			}
		}
	}
	return nil
}
