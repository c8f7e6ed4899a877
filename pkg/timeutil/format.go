// Package timeutil renders dates and times the way the app displays them:
// a single fixed Spanish locale, independent of the host's locale settings.
package timeutil

import (
	"fmt"
	"time"
)

const (
	// LayoutISO keys day-scoped state (statuses, notes).
	LayoutISO = "2006-01-02"
	// LayoutDisplayDate is the d/m/yyyy form shown to the user.
	LayoutDisplayDate = "2/1/2006"
	// LayoutDisplayTime is the hh:mm form shown to the user.
	LayoutDisplayTime = "15:04"
)

var monthNames = [...]string{
	"enero", "febrero", "marzo", "abril", "mayo", "junio",
	"julio", "agosto", "septiembre", "octubre", "noviembre", "diciembre",
}

var dayNamesShort = [...]string{"Dom", "Lun", "Mar", "Mié", "Jue", "Vie", "Sáb"}

// MonthName returns the Spanish name for a month, lowercase as es-ES renders it.
func MonthName(m time.Month) string {
	return monthNames[int(m)-1]
}

// MonthTitle returns "junio 2025" style month headings.
func MonthTitle(t time.Time) string {
	return fmt.Sprintf("%s %d", MonthName(t.Month()), t.Year())
}

// WeekdayHeader returns the calendar header row, Sunday first.
func WeekdayHeader() [7]string {
	return dayNamesShort
}

// DisplayDate formats a time as the user-facing date string.
func DisplayDate(t time.Time) string {
	return t.Format(LayoutDisplayDate)
}

// DisplayTime formats a time as the user-facing clock string.
func DisplayTime(t time.Time) string {
	return t.Format(LayoutDisplayTime)
}

// ISODay returns the canonical day key for a time.
func ISODay(t time.Time) string {
	return t.Format(LayoutISO)
}

// ParseISODay parses a canonical day key in the local location.
func ParseISODay(key string) (time.Time, error) {
	return time.ParseInLocation(LayoutISO, key, time.Local)
}

// ParseDisplayDate parses user-typed d/m/yyyy dates.
func ParseDisplayDate(s string) (time.Time, error) {
	return time.ParseInLocation(LayoutDisplayDate, s, time.Local)
}

// SameDay reports whether two times fall on the same calendar day.
func SameDay(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month() && a.Day() == b.Day()
}

// SameMonth reports whether two times fall in the same month and year.
func SameMonth(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month()
}

// DaysIn returns the number of days in the month containing t.
func DaysIn(t time.Time) int {
	first := time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
	return first.AddDate(0, 1, -1).Day()
}

// MonthStart truncates t to the first day of its month.
func MonthStart(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
}
