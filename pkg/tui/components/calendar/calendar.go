// Package calendar renders the month grid with per-day status colors,
// note dots, and the selection highlight.
package calendar

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss/v2"

	"tableflip.dev/negocio/pkg/agenda"
	"tableflip.dev/negocio/pkg/timeutil"
)

// Day describes one day cell. The three marker facts are independent and
// merged at render time; none of them alters the others.
type Day struct {
	Day        int
	Status     agenda.Status
	HasNote    bool
	IsToday    bool
	IsSelected bool
	IsCursor   bool
}

// Options controls calendar styling.
type Options struct {
	HeaderStyle   lipgloss.Style
	EmptyStyle    lipgloss.Style
	OpenStyle     lipgloss.Style
	ClosedStyle   lipgloss.Style
	SelectedStyle lipgloss.Style
	TodayStyle    lipgloss.Style
	CursorStyle   lipgloss.Style
	NoteDotStyle  lipgloss.Style
	ShowHeader    bool
}

// DefaultOptions returns the styling used for calendar rendering.
func DefaultOptions() Options {
	return Options{
		HeaderStyle:   lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Bold(true),
		EmptyStyle:    lipgloss.NewStyle(),
		OpenStyle:     lipgloss.NewStyle().Foreground(lipgloss.Color("#4CAF50")).Bold(true),
		ClosedStyle:   lipgloss.NewStyle().Foreground(lipgloss.Color("#F44336")).Bold(true),
		SelectedStyle: lipgloss.NewStyle().Foreground(lipgloss.Color("#5D3FD3")).Bold(true),
		TodayStyle:    lipgloss.NewStyle().Underline(true),
		CursorStyle:   lipgloss.NewStyle().Reverse(true),
		NoteDotStyle:  lipgloss.NewStyle().Foreground(lipgloss.Color("#FF6347")),
		ShowHeader:    true,
	}
}

// Render produces the multi-line grid for the given month. Days not listed
// render unmarked.
func Render(month time.Time, days map[int]Day, opts Options) string {
	if month.IsZero() {
		return ""
	}

	first := time.Date(month.Year(), month.Month(), 1, 0, 0, 0, 0, month.Location())
	daysInMonth := timeutil.DaysIn(month)

	var lines []string
	if opts.ShowHeader {
		var cells []string
		for _, name := range timeutil.WeekdayHeader() {
			cells = append(cells, opts.HeaderStyle.Render(name))
		}
		lines = append(lines, strings.Join(cells, " "))
	}

	startOffset := int(first.Weekday())
	totalCells := startOffset + daysInMonth
	rows := (totalCells + 6) / 7

	for row := 0; row < rows; row++ {
		var cells []string
		for col := 0; col < 7; col++ {
			cellIdx := row*7 + col
			day := cellIdx - startOffset + 1
			if day < 1 || day > daysInMonth {
				cells = append(cells, opts.EmptyStyle.Render("   "))
				continue
			}
			cells = append(cells, renderDay(days[day], day, opts))
		}
		lines = append(lines, strings.Join(cells, " "))
	}

	return strings.Join(lines, "\n")
}

func renderDay(info Day, day int, opts Options) string {
	// The status color wins; a selected day without a status gets the
	// accent instead. Today and cursor stack on top of either.
	style := opts.EmptyStyle
	switch info.Status {
	case agenda.Open:
		style = opts.OpenStyle
	case agenda.Closed:
		style = opts.ClosedStyle
	default:
		if info.IsSelected {
			style = opts.SelectedStyle
		}
	}
	if info.IsSelected && info.Status != "" {
		style = style.Underline(true)
	}
	if info.IsToday {
		style = style.Inherit(opts.TodayStyle)
	}
	if info.IsCursor {
		style = style.Inherit(opts.CursorStyle)
	}

	dot := " "
	if info.HasNote {
		dot = opts.NoteDotStyle.Render("·")
	}
	return style.Render(fmt.Sprintf("%2d", day)) + dot
}
