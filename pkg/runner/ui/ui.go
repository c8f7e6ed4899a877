package ui

import (
	"context"
	"errors"

	"tableflip.dev/negocio/pkg/app"
	"tableflip.dev/negocio/pkg/store"
	teaui "tableflip.dev/negocio/pkg/tui/app"
)

// UI wires the loaded configuration into the full-screen program.
type UI struct {
	Config store.Config
}

func (u *UI) Do(ctx context.Context) error {
	if u.Config == nil {
		return errors.New("can not open the ui, no config")
	}
	a := app.New(u.Config.SeedServices()...)
	return teaui.Run(a, u.Config.CurrencyLabel())
}
