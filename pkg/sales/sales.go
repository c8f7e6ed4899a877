// Package sales records completed transactions and derives ledger views.
package sales

import (
	"time"

	"tableflip.dev/negocio/pkg/catalog"
	"tableflip.dev/negocio/pkg/timeutil"
	"tableflip.dev/negocio/pkg/xid"
)

// Sale is an immutable record of one transaction. Service and Price are
// snapshots taken at confirmation time; they never follow later catalog
// edits. Date and Time are the localized display strings shown in lists,
// ISODate is the canonical instant.
type Sale struct {
	ID      string    `json:"id"`
	Service string    `json:"service"`
	Price   float64   `json:"price"`
	Date    string    `json:"date"`
	Time    string    `json:"time"`
	ISODate time.Time `json:"isoDate"`
}

// Ledger is the append-only sale collection. Sales are never deleted.
type Ledger struct {
	sales []Sale
}

// NewLedger returns an empty ledger.
func NewLedger() *Ledger {
	return &Ledger{}
}

// Register appends a snapshot of the service taken at the given instant.
func (l *Ledger) Register(svc catalog.Service, at time.Time) Sale {
	s := Sale{
		ID:      xid.New("sale"),
		Service: svc.Name,
		Price:   svc.Price,
		Date:    timeutil.DisplayDate(at),
		Time:    timeutil.DisplayTime(at),
		ISODate: at,
	}
	l.sales = append(l.sales, s)
	return s
}

// All returns every sale in insertion order. The slice is a copy.
func (l *Ledger) All() []Sale {
	return append([]Sale(nil), l.sales...)
}

// ForDay filters sales whose display date matches the given day, in
// insertion order, and sums their prices. Days with no sales yield an
// empty list and a zero total.
func (l *Ledger) ForDay(day time.Time) ([]Sale, float64) {
	key := timeutil.DisplayDate(day)
	var out []Sale
	var total float64
	for _, s := range l.sales {
		if s.Date == key {
			out = append(out, s)
			total += s.Price
		}
	}
	return out, total
}

// MonthlyTotal sums prices of sales whose instant falls in the month and
// year of the given time. Recomputed from the full collection on every
// call; nothing is cached.
func (l *Ledger) MonthlyTotal(month time.Time) float64 {
	var total float64
	for _, s := range l.sales {
		if timeutil.SameMonth(s.ISODate, month) {
			total += s.Price
		}
	}
	return total
}
