package cmd

import (
	"os"

	"github.com/denotw/website/cmd/completion"
	"github.com/denotw/website/internal/app/cli"
	"github.com/denotw/website/internal/build"
	"github.com/spf13/cobra"
)

const defaultOutDir = "dist"

var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Build a static copy of the site",
	Long: `Build a static copy of the site into the output directory. By default only the landing page is built.
With --manual, every document of the manual of the latest version, or of the one given with --version, is
fetched and rendered as well. The build fails on the first document that cannot be fetched.`,
	Args:              cobra.NoArgs,
	Run:               executeBuild,
	ValidArgsFunction: completion.NoCompletionNoFile,
}

func init() {
	RootCmd.AddCommand(buildCmd)
	buildCmd.Flags().StringP("out", "o", defaultOutDir, "output directory")
	buildCmd.Flags().Bool("manual", false, "also build the manual")
	buildCmd.Flags().String("version", "", "version of the manual to build (default is the latest version)")
	_ = buildCmd.RegisterFlagCompletionFunc("version", completion.CompleteVersions)
}

func executeBuild(cmd *cobra.Command, args []string) {
	outDir := cmd.Flag("out").Value.String()
	withManual, _ := cmd.Flags().GetBool("manual")
	version := cmd.Flag("version").Value.String()

	m := loadManifest()
	err := cli.Build(cmd.Context(), newResolver(m), m, outDir, build.Options{Manual: withManual, Version: version})
	if err != nil {
		os.Exit(1)
	}
}
