package cmd

import (
	"context"
	"os"
	"os/signal"

	"github.com/denotw/website/internal"
	"github.com/denotw/website/internal/app/cli"
	"github.com/denotw/website/internal/config"
	"github.com/denotw/website/internal/utils"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:   "denosite",
	Short: "Builds and serves the zh-TW Deno website",
	Long: `denosite renders the landing page and the translated manual of the Deno runtime.
The manual of every version is fetched from its content host on demand, either by
the built-in web server or by building a static copy of the site.`,
	PersistentPreRun: preRun,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the RootCmd.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := RootCmd.ExecuteContext(ctx)
	stop()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	RootCmd.PersistentFlags().StringP("loglevel", "l", "", "enable logging by setting a log level, one of [error, warn, info, debug, off]")
	RootCmd.PersistentFlags().String("config", "", "directory to read config.json from (default is $HOME/.denosite)")
	RootCmd.PersistentFlags().Duration("timeout", config.DefaultFetchTimeout, "timeout for each request to a content host")
	_ = viper.BindPFlag(config.KeyLogLevel, RootCmd.PersistentFlags().Lookup("loglevel"))
	_ = viper.BindPFlag(config.KeyConfig, RootCmd.PersistentFlags().Lookup("config"))
	_ = viper.BindPFlag(config.KeyFetchTimeout, RootCmd.PersistentFlags().Lookup("timeout"))
}

func preRun(cmd *cobra.Command, args []string) {
	if cfg := viper.GetString(config.KeyConfig); cfg != "" {
		dir, err := utils.ExpandHome(cfg)
		if err != nil {
			cli.Stderrf("Invalid config directory %s: %v", cfg, err)
			os.Exit(1)
		}
		if dir != config.ConfigDir {
			config.ConfigDir = dir
			config.InitViper()
		}
	}
	// the server logs by default, all other commands log only on request
	viper.SetDefault(config.KeyLog, cmd.Name() == serveCmd.Name())
	internal.InitLogging()
}
