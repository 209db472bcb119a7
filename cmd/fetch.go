package cmd

import (
	"os"

	"github.com/denotw/website/cmd/completion"
	"github.com/denotw/website/internal/app/cli"
	"github.com/spf13/cobra"
)

var fetchCmd = &cobra.Command{
	Use:               "fetch <VERSION> <PATH>",
	Short:             "Fetch the markdown of a manual document",
	Long:              `Fetch the markdown of the manual document at PATH, e.g. /getting_started/installation.`,
	Args:              cobra.ExactArgs(2),
	Run:               executeFetch,
	ValidArgsFunction: completion.CompleteVersionAndPath,
}

func init() {
	RootCmd.AddCommand(fetchCmd)
	fetchCmd.Flags().StringP("output", "o", "", "write the document to a file instead of stdout")
}

func executeFetch(cmd *cobra.Command, args []string) {
	outputFile := cmd.Flag("output").Value.String()
	r := newResolver(loadManifest())

	err := cli.Fetch(cmd.Context(), r, args[0], args[1], outputFile)
	if err != nil {
		os.Exit(1)
	}
}
