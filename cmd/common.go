package cmd

import (
	"os"

	"github.com/denotw/website/internal/app/cli"
	"github.com/denotw/website/internal/config"
	"github.com/denotw/website/internal/manual"
	"github.com/denotw/website/internal/model"
)

func loadManifest() model.Manifest {
	m, err := config.LoadManifest()
	if err != nil {
		cli.Stderrf("Could not load version list: %v", err)
		os.Exit(1)
	}
	return m
}

func newResolver(m model.Manifest) *manual.Resolver {
	r, err := cli.NewResolver(m)
	if err != nil {
		cli.Stderrf("Could not set up content hosts: %v", err)
		os.Exit(1)
	}
	return r
}
