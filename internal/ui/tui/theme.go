package tui

import "github.com/charmbracelet/lipgloss"

// Palette uses 256-colour codes so it renders the same on most terminals.
const (
	colorAccent = lipgloss.Color("63")
	colorGood   = lipgloss.Color("42")
	colorBad    = lipgloss.Color("203")
	colorGold   = lipgloss.Color("220")
)

type Theme struct {
	Title    lipgloss.Style
	Subtitle lipgloss.Style
	Help     lipgloss.Style
	Card     lipgloss.Style

	// Answer styles.
	OK    lipgloss.Style
	Error lipgloss.Style
	Grid  lipgloss.Style
}

func DefaultTheme() Theme {
	return Theme{
		Title:    lipgloss.NewStyle().Bold(true).Foreground(colorGold),
		Subtitle: lipgloss.NewStyle().Faint(true),
		Help:     lipgloss.NewStyle().Faint(true),
		Card: lipgloss.NewStyle().
			Padding(1, 2).
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(colorAccent),
		OK:    lipgloss.NewStyle().Bold(true).Foreground(colorGood),
		Error: lipgloss.NewStyle().Foreground(colorBad),
		Grid:  lipgloss.NewStyle().Foreground(colorGood).PaddingLeft(2),
	}
}
