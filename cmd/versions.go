package cmd

import (
	"os"

	"github.com/denotw/website/cmd/completion"
	"github.com/denotw/website/internal/app/cli"
	"github.com/spf13/cobra"
)

var versionsCmd = &cobra.Command{
	Use:   "versions",
	Short: "List the released versions",
	Long: `List the released versions of the runtime and the standard library, latest first.
The manual of released versions is fetched from the x host, any other version from the raw host.`,
	Args:              cobra.NoArgs,
	Run:               executeVersions,
	ValidArgsFunction: completion.NoCompletionNoFile,
}

func init() {
	RootCmd.AddCommand(versionsCmd)
	versionsCmd.Flags().StringP("format", "f", cli.OutputFormatPlain, "output format, one of [plain, json]")
	_ = versionsCmd.RegisterFlagCompletionFunc("format", completion.CompleteOutputFormats)
}

func executeVersions(cmd *cobra.Command, args []string) {
	format := cmd.Flag("format").Value.String()

	err := cli.ListVersions(loadManifest(), format)
	if err != nil {
		os.Exit(1)
	}
}
