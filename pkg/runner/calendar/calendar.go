package calendar

import (
	"context"
	"errors"
	"fmt"
	"time"

	"tableflip.dev/negocio/pkg/agenda"
	"tableflip.dev/negocio/pkg/printers"
	"tableflip.dev/negocio/pkg/timeutil"
)

// Calendar prints one month's grid with its day markers.
type Calendar struct {
	Month  time.Time
	Agenda *agenda.Agenda
}

func (c *Calendar) Do(ctx context.Context) error {
	if c.Agenda == nil {
		return errors.New("can not print, no agenda")
	}

	pp := printers.PrettyPrint{}

	fmt.Println("")
	pp.Month(timeutil.MonthStart(c.Month), c.Agenda.Markers(""))

	return nil
}
