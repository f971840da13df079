package tui

import "github.com/charmbracelet/lipgloss"

type Theme struct {
	Title    lipgloss.Style
	Subtitle lipgloss.Style
	Help     lipgloss.Style
	Card     lipgloss.Style
	Toast    lipgloss.Style

	Good lipgloss.Style
	Bad  lipgloss.Style
}

func DefaultTheme() Theme {
	accent := lipgloss.Color("63")

	return Theme{
		Title:    lipgloss.NewStyle().Bold(true).Foreground(accent),
		Subtitle: lipgloss.NewStyle().Faint(true),
		Help:     lipgloss.NewStyle().Faint(true),
		Card: lipgloss.NewStyle().
			Padding(1, 2).
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(accent),
		Toast: lipgloss.NewStyle().Italic(true).Foreground(lipgloss.Color("214")),
		Good:  lipgloss.NewStyle().Foreground(lipgloss.Color("42")),
		Bad:   lipgloss.NewStyle().Foreground(lipgloss.Color("203")),
	}
}

// Verdict styles a classifier or point result.
func (t Theme) Verdict(ok bool) lipgloss.Style {
	if ok {
		return t.Good
	}
	return t.Bad
}
