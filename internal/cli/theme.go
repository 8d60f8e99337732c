package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/wethinkt/go-suhoor/internal/tui/theme"
)

// ThemeDisplay handles theme visualization in the terminal.
type ThemeDisplay struct {
	w     io.Writer
	theme theme.Theme
}

// NewThemeDisplay creates a new theme display formatter.
func NewThemeDisplay(w io.Writer, t theme.Theme) *ThemeDisplay {
	return &ThemeDisplay{w: w, theme: t}
}

// themeEntry represents a single theme color entry for display.
type themeEntry struct {
	Name       string
	Style      theme.Style
	Category   string
	SampleText string
}

// Show displays the theme with styled samples.
func (d *ThemeDisplay) Show() error {
	t := d.theme

	entries := []themeEntry{
		{Name: "Accent", Style: theme.Style{Fg: t.GetAccent()}, Category: "Accent", SampleText: "▌Active Border"},
		{Name: "BorderInactive", Style: theme.Style{Fg: t.GetBorderInactive()}, Category: "Accent", SampleText: "│ Inactive Border"},

		{Name: "TextPrimary", Style: t.TextPrimary, Category: "Text", SampleText: "Primary Text"},
		{Name: "TextSecondary", Style: t.TextSecondary, Category: "Text", SampleText: "Secondary info text"},
		{Name: "TextMuted", Style: t.TextMuted, Category: "Text", SampleText: "Muted help text"},

		{Name: "Title", Style: t.Title, Category: "Times", SampleText: "Below are the times for the next Suhoor and Iftar"},
		{Name: "EventLabel", Style: t.EventLabel, Category: "Times", SampleText: "Suhoor"},
		{Name: "EventTime", Style: t.EventTime, Category: "Times", SampleText: "March 11, 04:43"},
		{Name: "Countdown", Style: t.Countdown, Category: "Times", SampleText: "in 3h 05m"},
		{Name: "Notice", Style: t.Notice, Category: "Times", SampleText: "It's not Ramadan"},

		{Name: "Selected", Style: t.Selected, Category: "Settings", SampleText: " ✓ English "},
		{Name: "Unselected", Style: t.Unselected, Category: "Settings", SampleText: "   TÜRKÇE "},
	}

	fmt.Fprintf(d.w, "Theme:       %s\n", t.Name)
	if t.Description != "" {
		fmt.Fprintf(d.w, "Description: %s\n", t.Description)
	}
	fmt.Fprintln(d.w)

	currentCategory := ""
	for _, entry := range entries {
		if entry.Category != currentCategory {
			if currentCategory != "" {
				fmt.Fprintln(d.w)
			}
			categoryStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(t.GetAccent()))
			fmt.Fprintf(d.w, "%s\n", categoryStyle.Render(entry.Category))
			fmt.Fprintf(d.w, "%s\n", strings.Repeat("─", len(entry.Category)+2))
			currentCategory = entry.Category
		}

		style := lipgloss.NewStyle()
		if entry.Style.Fg != "" {
			style = style.Foreground(lipgloss.Color(entry.Style.Fg))
		}
		if entry.Style.Bg != "" {
			style = style.Background(lipgloss.Color(entry.Style.Bg))
		}
		if entry.Style.Bold {
			style = style.Bold(true)
		}

		nameStyle := lipgloss.NewStyle().Width(16)
		colorStyle := lipgloss.NewStyle().Width(10).Foreground(lipgloss.Color(t.TextMuted.Fg))

		fmt.Fprintf(d.w, "  %s %s %s\n",
			nameStyle.Render(entry.Name),
			colorStyle.Render(entry.Style.Fg),
			style.Render(entry.SampleText),
		)
	}

	fmt.Fprintln(d.w)
	return nil
}

// ShowJSON displays the theme as JSON.
func (d *ThemeDisplay) ShowJSON() error {
	enc := json.NewEncoder(d.w)
	enc.SetIndent("", "  ")
	return enc.Encode(d.theme)
}

// ListThemes displays all available themes, marking active with *.
func ListThemes(w io.Writer, active string) error {
	fmt.Fprintln(w, "Available Themes:")
	fmt.Fprintln(w)

	for _, t := range theme.ListAvailable() {
		marker := "  "
		if t.Name == active {
			marker = "* "
		}

		source := "built-in"
		if !t.Embedded {
			source = "user"
		}

		fmt.Fprintf(w, "%s%-12s  %-10s  %s\n", marker, t.Name, "("+source+")", t.Description)
	}

	fmt.Fprintln(w)
	fmt.Fprintf(w, "Active theme marked with *\n")
	fmt.Fprintf(w, "Use 'suhoor appearance --theme <name>' to change theme\n")

	return nil
}
