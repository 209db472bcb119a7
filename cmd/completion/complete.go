package completion

import (
	"context"
	"strings"

	"github.com/denotw/website/internal/app/cli"
	"github.com/denotw/website/internal/config"
	"github.com/spf13/cobra"
)

func NoCompletionNoFile(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	return nil, cobra.ShellCompDirectiveNoFileComp
}

func CompleteOutputFormats(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	return []string{cli.OutputFormatPlain, cli.OutputFormatJSON}, cobra.ShellCompDirectiveNoFileComp
}

// CompleteVersions completes the released runtime versions. Other refs are accepted but not completed.
func CompleteVersions(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	if len(args) > 0 {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	m, err := config.LoadManifest()
	if err != nil {
		return nil, cobra.ShellCompDirectiveError
	}

	var vs []string
	for _, v := range m.CLI {
		if strings.HasPrefix(v, toComplete) {
			vs = append(vs, v)
		}
	}
	return vs, cobra.ShellCompDirectiveNoFileComp | cobra.ShellCompDirectiveKeepOrder
}

// CompleteVersionAndPath completes the version as first argument and the document paths listed in that
// version's table of contents as second.
func CompleteVersionAndPath(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	switch len(args) {
	case 0:
		return CompleteVersions(cmd, args, toComplete)
	case 1:
		return completeManualPaths(cmd, args[0], toComplete)
	default:
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
}

func completeManualPaths(cmd *cobra.Command, version, toComplete string) ([]string, cobra.ShellCompDirective) {
	m, err := config.LoadManifest()
	if err != nil {
		return nil, cobra.ShellCompDirectiveError
	}
	r, err := cli.NewResolver(m)
	if err != nil {
		return nil, cobra.ShellCompDirectiveError
	}
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	toc, err := r.TableOfContents(ctx, version)
	if err != nil {
		return nil, cobra.ShellCompDirectiveError
	}

	var paths []string
	for _, p := range toc.Pages() {
		if strings.HasPrefix(p.Path, toComplete) {
			paths = append(paths, p.Path)
		}
	}
	return paths, cobra.ShellCompDirectiveNoFileComp
}
