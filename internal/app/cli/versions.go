package cli

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/denotw/website/internal/model"
)

type VersionResultEntry struct {
	Kind    string `json:"kind"`
	Version string `json:"version"`
	Latest  bool   `json:"latest,omitempty"`
}

// ListVersions prints the released versions of the runtime and the standard library, latest first
func ListVersions(m model.Manifest, format string) error {
	if !IsValidOutputFormat(format) {
		Stderrf("%v", ErrInvalidOutputFormat)
		return ErrInvalidOutputFormat
	}
	res := toVersionResults(m)

	switch format {
	case OutputFormatJSON:
		printJSON(res)
	case OutputFormatPlain:
		printVersions(res)
	}
	return nil
}

func toVersionResults(m model.Manifest) []VersionResultEntry {
	var r []VersionResultEntry
	for _, l := range []struct {
		kind     string
		versions model.VersionList
	}{{model.ManifestKeyCLI, m.CLI}, {model.ManifestKeyStd, m.Std}} {
		for i, v := range l.versions {
			r = append(r, VersionResultEntry{Kind: l.kind, Version: v, Latest: i == 0})
		}
	}
	return r
}

func printVersions(res []VersionResultEntry) {
	table := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)

	_, _ = fmt.Fprintf(table, "KIND\tVERSION\tLATEST\n")
	for _, v := range res {
		latest := ""
		if v.Latest {
			latest = "*"
		}
		_, _ = fmt.Fprintf(table, "%s\t%s\t%s\n", v.Kind, v.Version, latest)
	}
	_ = table.Flush()
}
