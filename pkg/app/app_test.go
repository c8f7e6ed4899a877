package app

import (
	"errors"
	"testing"
	"time"

	"tableflip.dev/negocio/pkg/agenda"
	"tableflip.dev/negocio/pkg/catalog"
)

func fixedClock(at time.Time) func() time.Time {
	return func() time.Time { return at }
}

func newTestApp(at time.Time) *App {
	a := New(
		catalog.Service{Name: "Corte de Cabello", Price: 20},
		catalog.Service{Name: "Diseño de Barba", Price: 15},
		catalog.Service{Name: "Tinte Capilar", Price: 50},
	)
	a.Now = fixedClock(at)
	a.SetLedgerDate(at)
	a.SetViewedMonth(at)
	return a
}

func serviceNamed(t *testing.T, a *App, name string) catalog.Service {
	t.Helper()
	for _, s := range a.Catalog.List() {
		if s.Name == name {
			return s
		}
	}
	t.Fatalf("service %q not found", name)
	return catalog.Service{}
}

func TestNavigationLeavingCatalogClearsEdit(t *testing.T) {
	a := newTestApp(time.Date(2025, time.June, 10, 10, 0, 0, 0, time.Local))
	a.SetScreen(ScreenCatalog)

	svc := serviceNamed(t, a, "Corte de Cabello")
	if _, ok := a.StartEdit(svc.ID); !ok {
		t.Fatalf("start edit failed")
	}
	a.SetScreen(ScreenMenu)
	if _, editing := a.Editing(); editing {
		t.Fatalf("leaving the catalog must abandon the edit")
	}
	if a.Screen() != ScreenMenu {
		t.Fatalf("expected menu screen, got %v", a.Screen())
	}
}

func TestRegisterSaleSnapshotsAndNavigates(t *testing.T) {
	at := time.Date(2025, time.June, 10, 14, 30, 0, 0, time.Local)
	a := newTestApp(at)
	a.SetScreen(ScreenSaleEntry)

	svc := serviceNamed(t, a, "Tinte Capilar")
	sale, err := a.RegisterSale(svc.ID)
	if err != nil {
		t.Fatalf("register sale: %v", err)
	}
	if sale.Service != "Tinte Capilar" || sale.Price != 50 {
		t.Fatalf("snapshot mismatch: %+v", sale)
	}
	if a.Screen() != ScreenLedger {
		t.Fatalf("register must navigate to the ledger")
	}
	if a.LedgerDate() != at {
		t.Fatalf("ledger date must follow the sale instant")
	}
	list, total := a.LedgerView()
	if len(list) != 1 || total != 50 {
		t.Fatalf("ledger should show the new sale: %v total=%v", list, total)
	}
}

func TestRegisterSaleUnknownService(t *testing.T) {
	a := newTestApp(time.Now())
	if _, err := a.RegisterSale("missing"); !errors.Is(err, ErrServiceNotFound) {
		t.Fatalf("expected ErrServiceNotFound, got %v", err)
	}
}

func TestAddOrUpdateServiceValidation(t *testing.T) {
	a := newTestApp(time.Now())
	before := a.Catalog.Len()

	if a.AddOrUpdateService("", "10") {
		t.Fatalf("empty name must be a no-op")
	}
	if a.AddOrUpdateService("Peinado", "") {
		t.Fatalf("empty price must be a no-op")
	}
	if a.AddOrUpdateService("Peinado", "gratis") {
		t.Fatalf("unparseable price must be a no-op")
	}
	if a.Catalog.Len() != before {
		t.Fatalf("failed submits must not mutate the catalog")
	}

	if !a.AddOrUpdateService("Peinado", "12.50") {
		t.Fatalf("valid submit failed")
	}
	if a.Catalog.Len() != before+1 {
		t.Fatalf("expected one new service")
	}
}

func TestEditTargetSurvivesInvalidSubmit(t *testing.T) {
	a := newTestApp(time.Now())
	svc := serviceNamed(t, a, "Corte de Cabello")
	a.StartEdit(svc.ID)

	if a.AddOrUpdateService("Corte", "???") {
		t.Fatalf("invalid price must not apply")
	}
	if _, editing := a.Editing(); !editing {
		t.Fatalf("invalid submit must keep the edit target")
	}

	if !a.AddOrUpdateService("Corte Premium", "25") {
		t.Fatalf("valid update failed")
	}
	if _, editing := a.Editing(); editing {
		t.Fatalf("successful update must clear the edit target")
	}
	got, _ := a.Catalog.Get(svc.ID)
	if got.Name != "Corte Premium" || got.Price != 25 {
		t.Fatalf("update not applied: %+v", got)
	}
}

func TestDeleteServiceKeepsSales(t *testing.T) {
	at := time.Date(2025, time.June, 10, 11, 0, 0, 0, time.Local)
	a := newTestApp(at)
	svc := serviceNamed(t, a, "Diseño de Barba")

	if _, err := a.RegisterSale(svc.ID); err != nil {
		t.Fatalf("register: %v", err)
	}
	if !a.DeleteService(svc.ID) {
		t.Fatalf("delete failed")
	}
	list, total := a.LedgerView()
	if len(list) != 1 || list[0].Service != "Diseño de Barba" || total != 15 {
		t.Fatalf("deleting a service must not touch recorded sales: %v", list)
	}
}

// Catalog starts with Corte 20; add Tinte; edit Corte to 25; sell Corte;
// the recorded sale keeps 25 even after a further edit to 30.
func TestScenarioSnapshotSurvivesEdits(t *testing.T) {
	at := time.Date(2025, time.June, 10, 16, 0, 0, 0, time.Local)
	a := New(catalog.Service{Name: "Haircut", Price: 20})
	a.Now = fixedClock(at)
	a.SetLedgerDate(at)

	if !a.AddOrUpdateService("Tint", "50") {
		t.Fatalf("add Tint failed")
	}
	haircut := serviceNamed(t, a, "Haircut")
	a.StartEdit(haircut.ID)
	if !a.AddOrUpdateService("Haircut", "25") {
		t.Fatalf("edit Haircut failed")
	}
	if _, err := a.RegisterSale(haircut.ID); err != nil {
		t.Fatalf("register: %v", err)
	}

	list, total := a.LedgerView()
	if len(list) != 1 || list[0].Price != 25 || total != 25 {
		t.Fatalf("ledger should show one entry at 25: %v", list)
	}
	if got, _ := a.Catalog.Get(haircut.ID); got.Price != 25 {
		t.Fatalf("catalog should still list 25: %+v", got)
	}

	a.StartEdit(haircut.ID)
	if !a.AddOrUpdateService("Haircut", "30") {
		t.Fatalf("second edit failed")
	}
	list, _ = a.LedgerView()
	if list[0].Price != 25 {
		t.Fatalf("recorded sale must stay at 25, got %v", list[0].Price)
	}
}

func TestMonthlyTotalFollowsViewedMonth(t *testing.T) {
	jun := time.Date(2025, time.June, 10, 12, 0, 0, 0, time.Local)
	a := newTestApp(jun)
	svc := serviceNamed(t, a, "Corte de Cabello")

	if _, err := a.RegisterSale(svc.ID); err != nil {
		t.Fatalf("register: %v", err)
	}
	if got := a.MonthlyTotal(); got != 20 {
		t.Fatalf("expected June total 20, got %v", got)
	}

	a.ShiftMonth(1)
	if got := a.MonthlyTotal(); got != 0 {
		t.Fatalf("expected July total 0, got %v", got)
	}
	a.ShiftMonth(-1)
	if got := a.MonthlyTotal(); got != 20 {
		t.Fatalf("expected June total back to 20, got %v", got)
	}
}

func TestTapDaySelectsAndCycles(t *testing.T) {
	a := newTestApp(time.Now())

	if s, ok := a.TapDay("2025-06-10"); !ok || s != agenda.Open {
		t.Fatalf("first tap should open, got %q ok=%v", s, ok)
	}
	if a.SelectedDay() != "2025-06-10" {
		t.Fatalf("tap must select the day")
	}
	if s, ok := a.TapDay("2025-06-10"); !ok || s != agenda.Closed {
		t.Fatalf("second tap should close, got %q ok=%v", s, ok)
	}
	if _, ok := a.TapDay("2025-06-10"); ok {
		t.Fatalf("third tap should clear")
	}

	m := a.Markers()["2025-06-10"]
	if m.Status != "" || !m.Selected {
		t.Fatalf("cleared day stays selected without status: %+v", m)
	}
}

func TestAddNoteRequiresSelectedDay(t *testing.T) {
	a := newTestApp(time.Now())
	if _, err := a.AddNote("título", "contenido"); !errors.Is(err, ErrNoDaySelected) {
		t.Fatalf("expected ErrNoDaySelected, got %v", err)
	}
}

func TestNoteExpansionIsExclusive(t *testing.T) {
	a := newTestApp(time.Date(2025, time.June, 10, 9, 0, 0, 0, time.Local))
	a.TapDay("2025-06-10")

	first, err := a.AddNote("Primera", "uno")
	if err != nil {
		t.Fatalf("add: %v", err)
	}
	second, err := a.AddNote("Segunda", "dos")
	if err != nil {
		t.Fatalf("add: %v", err)
	}

	a.ToggleNote(first.ID)
	if a.ExpandedNote() != first.ID {
		t.Fatalf("first note should be expanded")
	}
	a.ToggleNote(second.ID)
	if a.ExpandedNote() != second.ID {
		t.Fatalf("expanding the second must collapse the first")
	}
	a.ToggleNote(second.ID)
	if a.ExpandedNote() != "" {
		t.Fatalf("toggling the expanded note must collapse it")
	}

	notes := a.Notes()
	if len(notes) != 2 || notes[0].Title != "Primera" {
		t.Fatalf("note order must be preserved: %+v", notes)
	}
}

func TestEmptyCatalogSaleEntryRendersEmpty(t *testing.T) {
	a := New()
	a.SetScreen(ScreenSaleEntry)
	if got := a.Catalog.List(); len(got) != 0 {
		t.Fatalf("expected empty selectable list, got %v", got)
	}
}
