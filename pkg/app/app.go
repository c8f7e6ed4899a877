// Package app owns the whole application state: the service catalog, the
// sale ledger, the day agenda, and the cross-screen selections. Every field
// has this single owner; UIs read derived views and call the operations
// below in response to user input.
package app

import (
	"errors"
	"time"

	"tableflip.dev/negocio/pkg/agenda"
	"tableflip.dev/negocio/pkg/catalog"
	"tableflip.dev/negocio/pkg/money"
	"tableflip.dev/negocio/pkg/sales"
	"tableflip.dev/negocio/pkg/timeutil"
)

// Screen selects which of the five screens is active. Exactly one renders
// at a time.
type Screen int

const (
	ScreenMenu Screen = iota
	ScreenSaleEntry
	ScreenLedger
	ScreenCatalog
	ScreenCalendar
)

var (
	ErrServiceNotFound = errors.New("app: servicio no encontrado")
	ErrNoDaySelected   = errors.New("app: ningún día seleccionado")
)

// App is the state container. Construct with New; the zero value is not
// usable.
type App struct {
	Catalog *catalog.Catalog
	Ledger  *sales.Ledger
	Agenda  *agenda.Agenda

	// Now supplies the current instant. Tests override it for determinism.
	Now func() time.Time

	screen      Screen
	editingID   string
	ledgerDate  time.Time
	selectedDay string
	expanded    string
	viewedMonth time.Time
}

// New builds an app seeded with the given catalog services.
func New(seed ...catalog.Service) *App {
	now := time.Now
	return &App{
		Catalog:     catalog.New(seed...),
		Ledger:      sales.NewLedger(),
		Agenda:      agenda.New(),
		Now:         now,
		screen:      ScreenMenu,
		ledgerDate:  now(),
		viewedMonth: timeutil.MonthStart(now()),
	}
}

// Screen returns the active screen.
func (a *App) Screen() Screen { return a.screen }

// SetScreen switches the active screen. Leaving the catalog abandons any
// in-progress edit.
func (a *App) SetScreen(s Screen) {
	if a.screen == ScreenCatalog && s != ScreenCatalog {
		a.CancelEdit()
	}
	a.screen = s
}

// RegisterSale snapshots the service into the ledger at the current
// instant, then moves to the ledger screen with that instant selected.
// Callers gate this behind an explicit confirmation.
func (a *App) RegisterSale(serviceID string) (sales.Sale, error) {
	svc, ok := a.Catalog.Get(serviceID)
	if !ok {
		return sales.Sale{}, ErrServiceNotFound
	}
	now := a.Now()
	s := a.Ledger.Register(svc, now)
	a.ledgerDate = now
	a.SetScreen(ScreenLedger)
	return s, nil
}

// AddOrUpdateService parses the form buffers and either updates the edit
// target in place or appends a new service. Empty name or unparseable
// price is a silent no-op that keeps the edit target. A successful call
// clears it.
func (a *App) AddOrUpdateService(name, price string) bool {
	p, ok := money.ParsePrice(price)
	if !ok {
		return false
	}
	if a.editingID != "" {
		if _, ok := a.Catalog.Update(a.editingID, name, p); !ok {
			return false
		}
	} else {
		if _, ok := a.Catalog.Add(name, p); !ok {
			return false
		}
	}
	a.editingID = ""
	return true
}

// StartEdit marks a service as the edit target and returns it so the UI
// can load its form buffers.
func (a *App) StartEdit(id string) (catalog.Service, bool) {
	svc, ok := a.Catalog.Get(id)
	if !ok {
		return catalog.Service{}, false
	}
	a.editingID = id
	return svc, true
}

// CancelEdit clears the edit target without touching the catalog.
func (a *App) CancelEdit() { a.editingID = "" }

// Editing returns the current edit target, if any.
func (a *App) Editing() (catalog.Service, bool) {
	if a.editingID == "" {
		return catalog.Service{}, false
	}
	return a.Catalog.Get(a.editingID)
}

// DeleteService removes a service. Recorded sales keep their snapshots.
// Callers gate this behind an explicit confirmation.
func (a *App) DeleteService(id string) bool {
	if a.editingID == id {
		a.editingID = ""
	}
	return a.Catalog.Delete(id)
}

// LedgerDate returns the day the ledger screen filters on.
func (a *App) LedgerDate() time.Time { return a.ledgerDate }

// SetLedgerDate changes the ledger filter day. Sale data is untouched.
func (a *App) SetLedgerDate(t time.Time) { a.ledgerDate = t }

// LedgerView derives the sale list and daily total for the selected day.
func (a *App) LedgerView() ([]sales.Sale, float64) {
	return a.Ledger.ForDay(a.ledgerDate)
}

// ViewedMonth returns the month the calendar summary aggregates over.
func (a *App) ViewedMonth() time.Time { return a.viewedMonth }

// SetViewedMonth moves the calendar to the month containing t.
func (a *App) SetViewedMonth(t time.Time) {
	a.viewedMonth = timeutil.MonthStart(t)
}

// ShiftMonth moves the viewed month by delta months.
func (a *App) ShiftMonth(delta int) {
	a.viewedMonth = a.viewedMonth.AddDate(0, delta, 0)
}

// MonthlyTotal derives the sale total for the viewed month. Always
// recomputed; stale totals are a correctness bug.
func (a *App) MonthlyTotal() float64 {
	return a.Ledger.MonthlyTotal(a.viewedMonth)
}

// SelectedDay returns the calendar day selected for notes, "" when none.
func (a *App) SelectedDay() string { return a.selectedDay }

// TapDay cycles the day's open/closed status and selects it for note
// display. The UI collapses its note form in response.
func (a *App) TapDay(day string) (agenda.Status, bool) {
	a.selectedDay = day
	return a.Agenda.CycleStatus(day)
}

// AddNote appends a note to the selected day, stamped with the current
// instant.
func (a *App) AddNote(title, content string) (agenda.Note, error) {
	if a.selectedDay == "" {
		return agenda.Note{}, ErrNoDaySelected
	}
	return a.Agenda.AddNote(a.selectedDay, title, content, a.Now())
}

// Notes returns the selected day's notes in insertion order.
func (a *App) Notes() []agenda.Note {
	if a.selectedDay == "" {
		return nil
	}
	return a.Agenda.NotesFor(a.selectedDay)
}

// ExpandedNote returns the id of the single expanded note, "" when none.
func (a *App) ExpandedNote() string { return a.expanded }

// ToggleNote expands the note with the given id, collapsing any other;
// toggling the expanded note collapses it.
func (a *App) ToggleNote(id string) {
	if a.expanded == id {
		a.expanded = ""
		return
	}
	a.expanded = id
}

// Markers derives the merged per-day calendar markers.
func (a *App) Markers() map[string]agenda.Marker {
	return a.Agenda.Markers(a.selectedDay)
}
