package tui

import (
	"charm.land/lipgloss/v2"

	"github.com/wethinkt/go-suhoor/internal/tui/theme"
)

// Styles holds the computed lipgloss styles for the TUI.
type Styles struct {
	// Page frame
	Frame  lipgloss.Style
	Header lipgloss.Style
	Help   lipgloss.Style

	// Times page
	Title     lipgloss.Style
	Label     lipgloss.Style
	Time      lipgloss.Style
	Countdown lipgloss.Style
	Secondary lipgloss.Style
	Notice    lipgloss.Style

	// Settings page
	Section    lipgloss.Style
	Selected   lipgloss.Style
	Unselected lipgloss.Style
	Active     lipgloss.Style
}

// applyStyle applies a theme.Style to a lipgloss.Style builder.
func applyStyle(s lipgloss.Style, ts theme.Style) lipgloss.Style {
	if ts.Fg != "" {
		s = s.Foreground(lipgloss.Color(ts.Fg))
	}
	if ts.Bg != "" {
		s = s.Background(lipgloss.Color(ts.Bg))
	}
	if ts.Bold {
		s = s.Bold(true)
	}
	if ts.Italic {
		s = s.Italic(true)
	}
	if ts.Underline {
		s = s.Underline(true)
	}
	return s
}

// buildStyles creates Styles from a Theme.
func buildStyles(t theme.Theme) Styles {
	return Styles{
		Frame: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(t.GetBorderActive())).
			Padding(1, 2),

		Header: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.GetBorderInactive())),

		Help: applyStyle(lipgloss.NewStyle(), t.TextMuted),

		Title:     applyStyle(lipgloss.NewStyle(), t.Title).MarginBottom(1),
		Label:     applyStyle(lipgloss.NewStyle(), t.EventLabel),
		Time:      applyStyle(lipgloss.NewStyle(), t.EventTime),
		Countdown: applyStyle(lipgloss.NewStyle(), t.Countdown),
		Secondary: applyStyle(lipgloss.NewStyle(), t.TextSecondary),
		Notice:    applyStyle(lipgloss.NewStyle(), t.Notice),

		Section: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(t.GetAccent())),

		Selected:   applyStyle(lipgloss.NewStyle(), t.Selected).Padding(0, 1),
		Unselected: applyStyle(lipgloss.NewStyle(), t.Unselected).Padding(0, 1),
		Active:     applyStyle(lipgloss.NewStyle(), t.TextPrimary).Bold(true),
	}
}
