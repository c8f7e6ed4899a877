package printers

import (
	"fmt"
	"strings"
	"time"

	"github.com/fatih/color"

	"tableflip.dev/negocio/pkg/agenda"
	"tableflip.dev/negocio/pkg/timeutil"
)

const monthWidth = len("11 12 13 14 15 16 17") // an example week

// Month prints the month grid with per-day open/closed colors and note
// dots, the terminal cousin of the ui calendar.
func (pp *PrettyPrint) Month(month time.Time, markers map[string]agenda.Marker) {
	tf := color.New(color.FgWhite, color.Italic)

	title := timeutil.MonthTitle(month)
	mid := (monthWidth - len([]rune(title))) / 2
	if mid < 0 {
		mid = 0
	}
	_, _ = tf.Printf("%s%s\n", strings.Repeat(" ", mid), title)

	hf := color.New(color.Faint)
	header := make([]string, 0, 7)
	for _, name := range timeutil.WeekdayHeader() {
		header = append(header, name[0:1])
	}
	_, _ = hf.Printf(" %s\n", strings.Join(header, "  "))

	plain := color.New(color.Faint, color.FgWhite)
	today := color.New(color.Bold, color.FgHiWhite)
	open := color.New(color.Bold, color.FgGreen)
	closed := color.New(color.Bold, color.FgRed)

	first := time.Date(month.Year(), month.Month(), 1, 0, 0, 0, 0, time.Local)
	now := time.Now()

	// Pad out the start of the month.
	d := first.Weekday()
	for i := time.Sunday; i < d; i++ {
		fmt.Print("   ")
	}

	for i := 0; i < timeutil.DaysIn(month); i++ {
		date := first.AddDate(0, 0, i)
		mk := markers[timeutil.ISODay(date)]

		printer := plain
		switch mk.Status {
		case agenda.Open:
			printer = open
		case agenda.Closed:
			printer = closed
		default:
			if timeutil.SameDay(date, now) {
				printer = today
			}
		}

		dot := " "
		if mk.HasNote {
			dot = "·"
		}
		_, _ = printer.Printf("%2d", i+1)
		fmt.Print(dot)

		d++
		if d > time.Saturday {
			d = time.Sunday
			fmt.Print("\n")
		}
	}
	fmt.Print("\n")
}
