// Package app provides storefront session wiring.
package app

import (
	"io"

	"github.com/guttosm/bakery-service/config"
	"github.com/guttosm/bakery-service/internal/cli"
	"github.com/guttosm/bakery-service/internal/service"
)

// RunStorefront wires up the catalog and runs an interactive storefront
// session over the given streams until the customer checks out or exits.
func RunStorefront(cfg config.Config, in io.Reader, out io.Writer) error {
	InitializeLogger()

	catalog := service.NewCatalogService()

	var opts []cli.ShellOption
	if cfg.Storefront.Locale != "" {
		opts = append(opts, cli.WithLocale(cfg.Storefront.Locale))
	}

	shell := cli.NewShell(in, out, catalog, opts...)
	return shell.Run()
}
