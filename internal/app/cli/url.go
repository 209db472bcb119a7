package cli

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/denotw/website/internal/manual"
)

// URLs prints where the document at path is fetched from and where it can be viewed
func URLs(r *manual.Resolver, version, path, format string) error {
	if !IsValidOutputFormat(format) {
		Stderrf("%v", ErrInvalidOutputFormat)
		return ErrInvalidOutputFormat
	}
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	urls := r.URLs(version, path)

	switch format {
	case OutputFormatJSON:
		printJSON(urls)
	case OutputFormatPlain:
		table := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		_, _ = fmt.Fprintf(table, "ROUTE\t%s\n", urls.Route)
		_, _ = fmt.Fprintf(table, "TOC\t%s\n", urls.TableOfContentsURL)
		_, _ = fmt.Fprintf(table, "FILE\t%s\n", urls.FileURL)
		_, _ = fmt.Fprintf(table, "DOC\t%s\n", urls.DocURL)
		_ = table.Flush()
	}
	return nil
}
