package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/negocio/pkg/commands/options"
	"tableflip.dev/negocio/pkg/runner/catalog"
)

func addCatalog(topLevel *cobra.Command) {
	co := &options.CurrencyOptions{}

	cmd := &cobra.Command{
		Use:     "catalog",
		Aliases: []string{"servicios", "services"},
		Short:   "print the service price list",
		Example: `
negocio catalog
negocio servicios --currency "$"
`,
		ValidArgs: []string{},
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			currency := cfg.CurrencyLabel()
			if co.Label != "" {
				currency = co.Label
			}
			s := catalog.Catalog{
				Currency: currency,
				Services: cfg.SeedServices(),
			}
			return oo.HandleError(s.Do(context.Background()))
		},
	}

	options.AddCurrencyArgs(cmd, co)

	topLevel.AddCommand(cmd)
}
