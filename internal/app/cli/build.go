package cli

import (
	"context"
	"fmt"

	"github.com/denotw/website/internal/build"
	"github.com/denotw/website/internal/manual"
	"github.com/denotw/website/internal/model"
)

// Build writes the static site to outDir and prints the files written
func Build(ctx context.Context, r *manual.Resolver, m model.Manifest, outDir string, opts build.Options) error {
	res, err := build.NewBuilder(r, m, outDir).Build(ctx, opts)
	if err != nil {
		Stderrf("Could not build site into %s: %v", outDir, err)
		return err
	}
	for _, f := range res.Files {
		fmt.Println(f)
	}
	return nil
}
