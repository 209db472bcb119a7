package cmd

import (
	"fmt"

	"github.com/denotw/website/cmd/completion"
	"github.com/denotw/website/internal/config"
	"github.com/denotw/website/internal/utils"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var versionCmd = &cobra.Command{
	Use:               "version",
	Short:             "Show denosite version information",
	Long:              `Show denosite version information`,
	Args:              cobra.NoArgs,
	ValidArgsFunction: completion.NoCompletionNoFile,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("denosite version %s\n", utils.GetSiteVersion())
		cf := viper.ConfigFileUsed()
		if cf == "" {
			cf = fmt.Sprintf("No config.json file found in '%s'. Using default settings", config.ConfigDir)
		}
		fmt.Printf("Configuration file used: %s\n", cf)
	},
}

func init() {
	RootCmd.AddCommand(versionCmd)
}
