package cli

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/denotw/website/internal/manual"
	"github.com/denotw/website/internal/utils"
)

const (
	DefaultListSeparator   = ","
	defaultFilePermissions = 0664
)

// Fetch prints the raw markdown of the document at path, or writes it to outputFile if not empty
func Fetch(ctx context.Context, r *manual.Resolver, version, path, outputFile string) error {
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	md, err := r.File(ctx, version, path)
	if err != nil {
		Stderrf("Could not fetch %s of %s: %v", path, version, err)
		return err
	}
	md = utils.ConvertToNativeLineEndings(utils.NormalizeLineEndings(md))

	if outputFile == "" {
		fmt.Print(string(md))
		return nil
	}
	outputFile, err = utils.ExpandHome(outputFile)
	if err != nil {
		Stderrf("Invalid output file %s: %v", outputFile, err)
		return err
	}
	if info, err := os.Stat(outputFile); err == nil && info.IsDir() {
		err = fmt.Errorf("%s is a directory", outputFile)
		Stderrf("Could not write output: %v", err)
		return err
	}
	err = utils.AtomicWriteFile(outputFile, md, defaultFilePermissions)
	if err != nil {
		Stderrf("Could not write output: %v", err)
		return err
	}
	return nil
}
