package cli

import (
	"context"
	"fmt"

	"github.com/denotw/website/internal/publish"
)

// Publish uploads the built site in dir and prints the object keys written
func Publish(ctx context.Context, p *publish.Publisher, dir string) error {
	keys, err := p.Publish(ctx, dir)
	for _, k := range keys {
		fmt.Println(k)
	}
	if err != nil {
		Stderrf("Could not publish %s: %v", dir, err)
		return err
	}
	return nil
}
