// Package cli contains implementations of CLI commands. The command code is supposed to contain only logic specific
// to the CLI and delegate reusable stuff to the manual, build and publish packages.
// Commands in cli package print results in human-readable format to stdout, or as JSON if requested.
package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/denotw/website/internal/config"
	"github.com/denotw/website/internal/manual"
	"github.com/denotw/website/internal/model"
)

const (
	OutputFormatJSON  = "json"
	OutputFormatPlain = "plain"
)

var ErrInvalidOutputFormat = errors.New("invalid output format. Must be one of " + OutputFormatPlain + ", " + OutputFormatJSON)

// Stderrf prints a message to os.Stderr, followed by newline
func Stderrf(format string, args ...any) {
	_, _ = fmt.Fprintf(os.Stderr, format, args...)
	_, _ = fmt.Fprintln(os.Stderr)
}

func IsValidOutputFormat(format string) bool {
	return format == OutputFormatJSON || format == OutputFormatPlain
}

func printJSON(v any) {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		Stderrf("Could not marshal result: %v", err)
		return
	}
	fmt.Println(string(b))
}

// NewResolver creates a resolver for the versions in m, fetching from the configured hosts with the configured
// cache and timeout
func NewResolver(m model.Manifest) (*manual.Resolver, error) {
	client, err := manual.NewHTTPClient(config.HttpCacheDir(), config.FetchTimeout())
	if err != nil {
		return nil, err
	}
	return manual.NewResolver(m.CLI, manual.WithHosts(config.Hosts()), manual.WithHTTPClient(client)), nil
}
