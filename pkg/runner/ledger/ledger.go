package ledger

import (
	"context"
	"errors"
	"fmt"
	"time"

	"tableflip.dev/negocio/pkg/printers"
	"tableflip.dev/negocio/pkg/sales"
	"tableflip.dev/negocio/pkg/timeutil"
)

// Ledger prints the sales recorded for one day.
type Ledger struct {
	Currency string
	Day      time.Time
	Entries  *sales.Ledger
}

func (l *Ledger) Do(ctx context.Context) error {
	if l.Entries == nil {
		return errors.New("can not print, no ledger")
	}

	entries, total := l.Entries.ForDay(l.Day)
	day := timeutil.DisplayDate(l.Day)

	pp := printers.PrettyPrint{Currency: l.Currency}

	fmt.Println("")
	pp.Title("Ventas Realizadas")
	pp.Ledger(day, total, entries...)

	return nil
}
