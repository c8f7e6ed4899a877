// Package agenda tracks per-day open/closed status and free-text notes,
// both keyed by canonical day strings (2006-01-02).
package agenda

import (
	"errors"
	"strings"
	"time"

	"tableflip.dev/negocio/pkg/timeutil"
	"tableflip.dev/negocio/pkg/xid"
)

// Status is the per-day open/closed marker. Absence of a day key means
// unset; no other value is representable.
type Status string

const (
	Open   Status = "open"
	Closed Status = "closed"
)

// Note is a free-text annotation on a day. Notes are append-only; there is
// no edit or delete.
type Note struct {
	ID      string `json:"id"`
	Title   string `json:"title"`
	Content string `json:"content"`
	Time    string `json:"time"`
}

// ErrEmptyNote rejects notes with a blank title or content.
var ErrEmptyNote = errors.New("agenda: el título y el contenido de la nota no pueden estar vacíos")

// Agenda owns day statuses and note sequences.
type Agenda struct {
	status map[string]Status
	notes  map[string][]Note
}

// New returns an empty agenda.
func New() *Agenda {
	return &Agenda{
		status: make(map[string]Status),
		notes:  make(map[string][]Note),
	}
}

// StatusFor returns the status for a day key, with ok=false when unset.
func (a *Agenda) StatusFor(day string) (Status, bool) {
	s, ok := a.status[day]
	return s, ok
}

// CycleStatus advances a day through unset → open → closed → unset and
// returns the new state (ok=false means the cycle cleared it).
func (a *Agenda) CycleStatus(day string) (Status, bool) {
	switch a.status[day] {
	case Open:
		a.status[day] = Closed
		return Closed, true
	case Closed:
		delete(a.status, day)
		return "", false
	default:
		a.status[day] = Open
		return Open, true
	}
}

// AddNote appends a note to a day, stamping it with the localized time of
// the given instant. Blank title or content leaves the day untouched.
func (a *Agenda) AddNote(day, title, content string, at time.Time) (Note, error) {
	if strings.TrimSpace(title) == "" || strings.TrimSpace(content) == "" {
		return Note{}, ErrEmptyNote
	}
	n := Note{
		ID:      xid.New("note"),
		Title:   title,
		Content: content,
		Time:    timeutil.DisplayTime(at),
	}
	a.notes[day] = append(a.notes[day], n)
	return n, nil
}

// NotesFor returns the notes of a day in insertion order. The slice is a
// copy; days without notes yield an empty slice.
func (a *Agenda) NotesFor(day string) []Note {
	return append([]Note(nil), a.notes[day]...)
}

// HasNotes reports whether a day carries at least one note.
func (a *Agenda) HasNotes(day string) bool {
	return len(a.notes[day]) > 0
}

// Marker is the merged per-day visual state for the calendar grid. The
// three facts are independent: status coloring, a note dot, and the
// selection highlight.
type Marker struct {
	Status   Status
	HasNote  bool
	Selected bool
}

// Markers merges status, note presence, and the selected day for every day
// that carries at least one of them. Keys are canonical day strings.
func (a *Agenda) Markers(selectedDay string) map[string]Marker {
	marked := make(map[string]Marker)
	for day, s := range a.status {
		m := marked[day]
		m.Status = s
		marked[day] = m
	}
	for day, notes := range a.notes {
		if len(notes) == 0 {
			continue
		}
		m := marked[day]
		m.HasNote = true
		marked[day] = m
	}
	if selectedDay != "" {
		m := marked[selectedDay]
		m.Selected = true
		marked[selectedDay] = m
	}
	return marked
}
