package cmd

import (
	"os"

	"github.com/denotw/website/cmd/completion"
	"github.com/denotw/website/internal/app/cli"
	"github.com/denotw/website/internal/app/http"
	"github.com/denotw/website/internal/app/http/cors"
	"github.com/denotw/website/internal/config"
	"github.com/denotw/website/internal/utils"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the site",
	Long: `Serve the landing page and the manual of every version. Manual documents are fetched from their content
host on each request. Enable the http cache in the config to keep them on disk.`,
	Args:              cobra.NoArgs,
	Run:               serve,
	ValidArgsFunction: completion.NoCompletionNoFile,
}

func init() {
	RootCmd.AddCommand(serveCmd)
	serveCmd.Flags().String("host", "0.0.0.0", "serve with this host name")
	serveCmd.Flags().String("port", "8080", "serve with this port")
	serveCmd.Flags().Bool("access-log", true, "log every handled request")
}

func serve(cmd *cobra.Command, args []string) {
	host := cmd.Flag("host").Value.String()
	port := cmd.Flag("port").Value.String()
	accessLog, _ := cmd.Flags().GetBool("access-log")

	m := loadManifest()
	opts := cli.ServeOptions{
		Resolver:      newResolver(m),
		Manifest:      m,
		FetchTimeout:  config.FetchTimeout(),
		CORS:          getCORSOptions(),
		ServerOptions: http.ServerOptions{AccessLog: accessLog},
	}
	err := cli.Serve(host, port, opts)
	if err != nil {
		cli.Stderrf("serve failed")
		os.Exit(1)
	}
}

func getCORSOptions() cors.CORSOptions {
	opts := cors.CORSOptions{}
	opts.AddAllowedOrigins(utils.ParseAsList(viper.GetString(config.KeyCorsAllowedOrigins), cli.DefaultListSeparator, true)...)
	opts.AddAllowedHeaders(utils.ParseAsList(viper.GetString(config.KeyCorsAllowedHeaders), cli.DefaultListSeparator, true)...)
	opts.AllowCredentials(viper.GetBool(config.KeyCorsAllowCredentials))
	opts.MaxAge(viper.GetInt(config.KeyCorsMaxAge))
	return opts
}
