package commands

import (
	"context"
	"time"

	"github.com/spf13/cobra"

	"tableflip.dev/negocio/pkg/commands/options"
	"tableflip.dev/negocio/pkg/runner/ledger"
	"tableflip.dev/negocio/pkg/sales"
	"tableflip.dev/negocio/pkg/timeutil"
)

func addLedger(topLevel *cobra.Command) {
	co := &options.CurrencyOptions{}
	do := &options.DateOptions{}

	cmd := &cobra.Command{
		Use:     "ledger",
		Aliases: []string{"ventas", "sales"},
		Short:   "print the sales recorded for a day",
		Long: "Print the sales recorded for a day. Sales live in memory for the\n" +
			"lifetime of the ui session, so outside of it this shows the empty\n" +
			"skeleton for the chosen day.",
		Example: `
negocio ledger
negocio ventas --date 15/6/2025
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

			day := time.Now()
			if do.Date != "" {
				if day, err = timeutil.ParseDisplayDate(do.Date); err != nil {
					return err
				}
			}

			s := ledger.Ledger{
				Currency: currency,
				Day:      day,
				Entries:  sales.NewLedger(),
			}
			return oo.HandleError(s.Do(context.Background()))
		},
	}

	options.AddCurrencyArgs(cmd, co)
	options.AddDateArgs(cmd, do)

	topLevel.AddCommand(cmd)
}
