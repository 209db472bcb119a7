package cmd

import (
	"os"

	"github.com/denotw/website/cmd/completion"
	"github.com/denotw/website/internal/app/cli"
	"github.com/spf13/cobra"
)

var urlCmd = &cobra.Command{
	Use:   "url <VERSION> <PATH>",
	Short: "Show where a manual document is fetched from",
	Long: `Show the content host route and the URLs of the table of contents, the markdown file and the
repository view of the manual document at PATH, e.g. /getting_started/installation.
No request is made.`,
	Args:              cobra.ExactArgs(2),
	Run:               executeURL,
	ValidArgsFunction: completion.CompleteVersionAndPath,
}

func init() {
	RootCmd.AddCommand(urlCmd)
	urlCmd.Flags().StringP("format", "f", cli.OutputFormatPlain, "output format, one of [plain, json]")
	_ = urlCmd.RegisterFlagCompletionFunc("format", completion.CompleteOutputFormats)
}

func executeURL(cmd *cobra.Command, args []string) {
	format := cmd.Flag("format").Value.String()
	r := newResolver(loadManifest())

	err := cli.URLs(r, args[0], args[1], format)
	if err != nil {
		os.Exit(1)
	}
}
