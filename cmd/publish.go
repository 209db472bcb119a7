package cmd

import (
	"os"

	"github.com/denotw/website/cmd/completion"
	"github.com/denotw/website/internal/app/cli"
	"github.com/denotw/website/internal/config"
	"github.com/denotw/website/internal/publish"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var publishCmd = &cobra.Command{
	Use:   "publish",
	Short: "Upload a built site to an S3 bucket",
	Long: `Upload all files of a built site to an S3 bucket. Paths listed in the .publishignore file of the
directory, in gitignore syntax, are skipped.
The bucket, region, endpoint, key prefix and credentials are read from the "publish" section of the config
file or from the DENOSITE_PUBLISH_* environment variables. Without credentials the default AWS credential
chain is used.`,
	Args:              cobra.NoArgs,
	Run:               executePublish,
	ValidArgsFunction: completion.NoCompletionNoFile,
}

func init() {
	RootCmd.AddCommand(publishCmd)
	publishCmd.Flags().StringP("dir", "d", defaultOutDir, "directory of the built site")
	publishCmd.Flags().String("bucket", "", "name of the bucket to upload to")
	publishCmd.Flags().String("prefix", "", "key prefix of the uploaded objects")
	_ = viper.BindPFlag(config.KeyPublishBucket, publishCmd.Flags().Lookup("bucket"))
	_ = viper.BindPFlag(config.KeyPublishPrefix, publishCmd.Flags().Lookup("prefix"))
}

func executePublish(cmd *cobra.Command, args []string) {
	dir := cmd.Flag("dir").Value.String()

	p, err := publish.NewS3Publisher(cmd.Context(), config.PublishConfig())
	if err != nil {
		cli.Stderrf("Could not set up publishing: %v", err)
		os.Exit(1)
	}
	err = cli.Publish(cmd.Context(), p, dir)
	if err != nil {
		os.Exit(1)
	}
}
