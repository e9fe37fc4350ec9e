// Package ui renders leaderboard tables for the terminal.
package ui

import (
	"github.com/charmbracelet/lipgloss"
)

// Color palette
var (
	Primary = lipgloss.AdaptiveColor{Light: "#101F38", Dark: "#8BC34A"}
	Muted   = lipgloss.AdaptiveColor{Light: "#6a737d", Dark: "#8b949e"}
	Success = lipgloss.Color("#8BC34A")
	Warning = lipgloss.Color("#FFC107")
)

// Styles contains the lipgloss styles used by the tables.
type Styles struct {
	Title    lipgloss.Style
	Subtitle lipgloss.Style
	Bold     lipgloss.Style
	Body     lipgloss.Style
	Muted    lipgloss.Style
	Good     lipgloss.Style
	Flag     lipgloss.Style
}

// DefaultStyles returns the default style set.
func DefaultStyles() Styles {
	return Styles{
		Title:    lipgloss.NewStyle().Bold(true).Foreground(Primary),
		Subtitle: lipgloss.NewStyle().Italic(true).Foreground(Muted),
		Bold:     lipgloss.NewStyle().Bold(true),
		Body:     lipgloss.NewStyle(),
		Muted:    lipgloss.NewStyle().Foreground(Muted),
		Good:     lipgloss.NewStyle().Foreground(Success),
		Flag:     lipgloss.NewStyle().Foreground(Warning),
	}
}

// PlainStyles returns unstyled output, for pipes and tests.
func PlainStyles() Styles {
	plain := lipgloss.NewStyle()
	return Styles{
		Title:    plain,
		Subtitle: plain,
		Bold:     plain,
		Body:     plain,
		Muted:    plain,
		Good:     plain,
		Flag:     plain,
	}
}
