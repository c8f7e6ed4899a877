package printers

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"tableflip.dev/negocio/pkg/catalog"
	"tableflip.dev/negocio/pkg/money"
	"tableflip.dev/negocio/pkg/sales"
)

// PrettyPrint renders catalog and ledger tables for the one-shot commands.
type PrettyPrint struct {
	Currency string
}

func (pp *PrettyPrint) label() string {
	if pp.Currency == "" {
		return money.DefaultLabel
	}
	return pp.Currency
}

func (pp *PrettyPrint) Title(title string) {
	t := color.New(color.Bold, color.Underline)
	_, _ = t.Println(title)
}

// Catalog prints the service list as a table.
func (pp *PrettyPrint) Catalog(services ...catalog.Service) {
	if len(services) == 0 {
		f := color.New(color.Faint, color.Italic)
		_, _ = f.Println(" sin servicios")
		return
	}

	tbl := uitable.New()
	tbl.Separator = "  "
	for _, s := range services {
		tbl.AddRow(s.Name, money.FormatWith(pp.label(), s.Price))
	}
	_, _ = fmt.Fprintln(color.Output, tbl)
}

// Ledger prints a day's sales and total.
func (pp *PrettyPrint) Ledger(day string, total float64, entries ...sales.Sale) {
	c := color.New(color.Faint)
	_, _ = c.Printf("Fecha: %s\n", day)

	if len(entries) == 0 {
		f := color.New(color.Faint, color.Italic)
		_, _ = f.Println(" No hay ventas para esta fecha.")
	} else {
		tbl := uitable.New()
		tbl.Separator = "  "
		for _, s := range entries {
			tbl.AddRow(s.Time, s.Service, money.FormatWith(pp.label(), s.Price))
		}
		_, _ = fmt.Fprintln(color.Output, tbl)
	}

	t := color.New(color.Bold)
	_, _ = t.Printf("Total del Día: %s\n", money.FormatWith(pp.label(), total))
}
