package theme

import (
	"image/color"

	"github.com/charmbracelet/lipgloss/v2"
)

// Palette carries the app's fixed colors.
type Palette struct {
	Primary   color.Color
	Secondary color.Color
	Success   color.Color
	Danger    color.Color
	Muted     color.Color
}

// Theme centralizes Lip Gloss styles for the Bubble Tea UI.
type Theme struct {
	Colors Palette

	Title    lipgloss.Style
	Subtitle lipgloss.Style
	Status   lipgloss.Style
	Empty    lipgloss.Style

	Card        lipgloss.Style
	Summary     lipgloss.Style
	SummaryText lipgloss.Style
	Price       lipgloss.Style
	Timestamp   lipgloss.Style

	Modal      lipgloss.Style
	ModalTitle lipgloss.Style
	Danger     lipgloss.Style

	NoteTitle lipgloss.Style
	NoteBody  lipgloss.Style
}

// Default returns the built-in theme.
func Default() Theme {
	colors := Palette{
		Primary:   lipgloss.Color("#5D3FD3"),
		Secondary: lipgloss.Color("#FF6347"),
		Success:   lipgloss.Color("#4CAF50"),
		Danger:    lipgloss.Color("#F44336"),
		Muted:     lipgloss.Color("#888888"),
	}

	return Theme{
		Colors: colors,

		Title:    lipgloss.NewStyle().Bold(true),
		Subtitle: lipgloss.NewStyle().Bold(true).Foreground(colors.Primary),
		Status:   lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		Empty:    lipgloss.NewStyle().Italic(true).Foreground(colors.Muted),

		Card: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			Padding(0, 1),
		Summary: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colors.Primary).
			Padding(0, 2),
		SummaryText: lipgloss.NewStyle().Bold(true).Foreground(colors.Primary),
		Price:       lipgloss.NewStyle().Bold(true).Foreground(colors.Primary),
		Timestamp:   lipgloss.NewStyle().Foreground(colors.Muted),

		Modal: lipgloss.NewStyle().
			Border(lipgloss.DoubleBorder()).
			Padding(1, 2),
		ModalTitle: lipgloss.NewStyle().Bold(true),
		Danger:     lipgloss.NewStyle().Bold(true).Foreground(colors.Danger),

		NoteTitle: lipgloss.NewStyle().Bold(true).Foreground(colors.Primary),
		NoteBody:  lipgloss.NewStyle(),
	}
}
