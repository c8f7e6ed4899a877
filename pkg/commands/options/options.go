// Package options defines shared flag helpers for CLI commands.
package options

import (
	"github.com/spf13/cobra"
)

// CurrencyOptions captures the currency label override flag.
type CurrencyOptions struct {
	Label string
}

// AddCurrencyArgs wires the currency flag on the provided command.
func AddCurrencyArgs(cmd *cobra.Command, o *CurrencyOptions) {
	cmd.Flags().StringVar(&o.Label, "currency", "",
		"Currency label for prices, overrides the configured one.")
}

// DateOptions captures the day selection flag.
type DateOptions struct {
	Date string
}

// AddDateArgs wires the date flag on the provided command.
func AddDateArgs(cmd *cobra.Command, o *DateOptions) {
	cmd.Flags().StringVarP(&o.Date, "date", "d", "",
		"Day to show, as d/m/yyyy. Defaults to today.")
}
