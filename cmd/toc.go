package cmd

import (
	"os"

	"github.com/denotw/website/cmd/completion"
	"github.com/denotw/website/internal/app/cli"
	"github.com/spf13/cobra"
)

var tocCmd = &cobra.Command{
	Use:   "toc <VERSION>",
	Short: "Show the table of contents of the manual",
	Long: `Show the table of contents of the manual of a version. VERSION is either a released version,
or any other ref of the manual repository, like a branch name or a commit hash.`,
	Args:              cobra.ExactArgs(1),
	Run:               executeTableOfContents,
	ValidArgsFunction: completion.CompleteVersions,
}

func init() {
	RootCmd.AddCommand(tocCmd)
	tocCmd.Flags().StringP("format", "f", cli.OutputFormatPlain, "output format, one of [plain, json]")
	_ = tocCmd.RegisterFlagCompletionFunc("format", completion.CompleteOutputFormats)
}

func executeTableOfContents(cmd *cobra.Command, args []string) {
	format := cmd.Flag("format").Value.String()
	r := newResolver(loadManifest())

	err := cli.TableOfContents(cmd.Context(), r, args[0], format)
	if err != nil {
		os.Exit(1)
	}
}
