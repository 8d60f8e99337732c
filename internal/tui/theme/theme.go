// Package theme provides the dark and light color schemes for the TUI.
package theme

import (
	"embed"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"github.com/wethinkt/go-suhoor/internal/config"
)

//go:embed themes/*.json
var embeddedThemes embed.FS

// Names of the two built-in themes.
const (
	Dark  = "dark"
	Light = "light"
)

// Style defines colors and text attributes for a UI element.
type Style struct {
	Fg        string `json:"fg,omitempty"`
	Bg        string `json:"bg,omitempty"`
	Bold      bool   `json:"bold,omitempty"`
	Italic    bool   `json:"italic,omitempty"`
	Underline bool   `json:"underline,omitempty"`
}

// Theme defines all styles used in the TUI.
type Theme struct {
	// Metadata
	Name        string `json:"name,omitempty"`
	Description string `json:"description,omitempty"`

	// UI chrome
	Accent         string `json:"accent,omitempty"`          // Primary accent (active elements)
	BorderActive   string `json:"border_active,omitempty"`   // Focused borders
	BorderInactive string `json:"border_inactive,omitempty"` // Inactive borders
	Background     string `json:"background,omitempty"`      // Page background

	// Text styles
	TextPrimary   Style `json:"text_primary,omitempty"`
	TextSecondary Style `json:"text_secondary,omitempty"`
	TextMuted     Style `json:"text_muted,omitempty"`

	// Times page
	Title      Style `json:"title,omitempty"`
	EventLabel Style `json:"event_label,omitempty"`
	EventTime  Style `json:"event_time,omitempty"`
	Countdown  Style `json:"countdown,omitempty"`
	Notice     Style `json:"notice,omitempty"`

	// Settings lists
	Selected   Style `json:"selected,omitempty"`
	Unselected Style `json:"unselected,omitempty"`
}

// ThemeMeta holds metadata about an available theme.
type ThemeMeta struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Path        string `json:"path"`     // File path (empty for embedded)
	Embedded    bool   `json:"embedded"` // True if this is a built-in theme
}

// DefaultTheme returns the embedded light theme.
func DefaultTheme() Theme {
	theme, _ := LoadEmbedded(Light)
	return theme
}

// ForMode returns the built-in theme for the dark-mode preference.
func ForMode(dark bool) Theme {
	name := Light
	if dark {
		name = Dark
	}
	theme, err := LoadEmbedded(name)
	if err != nil {
		return DefaultTheme()
	}
	return theme
}

// Resolve picks the theme for a preference set: a named theme wins,
// otherwise the dark-mode flag chooses dark or light. An unloadable
// named theme falls back to the mode theme and returns the error.
func Resolve(cfg config.Config) (Theme, error) {
	if cfg.Theme == "" {
		return ForMode(cfg.IsDarkMode), nil
	}
	theme, err := LoadByName(cfg.Theme)
	if err != nil {
		return ForMode(cfg.IsDarkMode), err
	}
	return theme, nil
}

// LoadEmbedded loads a theme from the embedded themes.
func LoadEmbedded(name string) (Theme, error) {
	data, err := embeddedThemes.ReadFile("themes/" + name + ".json")
	if err != nil {
		return Theme{}, err
	}

	var theme Theme
	if err := json.Unmarshal(data, &theme); err != nil {
		return Theme{}, err
	}

	return theme, nil
}

// ListEmbedded returns the names of all embedded themes.
func ListEmbedded() []string {
	entries, err := embeddedThemes.ReadDir("themes")
	if err != nil {
		return nil
	}

	var names []string
	for _, entry := range entries {
		if !entry.IsDir() && strings.HasSuffix(entry.Name(), ".json") {
			names = append(names, strings.TrimSuffix(entry.Name(), ".json"))
		}
	}
	return names
}

// ThemesDir returns the path to the user themes directory.
func ThemesDir() (string, error) {
	configDir, err := config.Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, "themes"), nil
}

// ListAvailable returns all available themes (embedded + user themes).
func ListAvailable() []ThemeMeta {
	var themes []ThemeMeta

	for _, name := range ListEmbedded() {
		theme, err := LoadEmbedded(name)
		if err != nil {
			continue
		}
		themes = append(themes, ThemeMeta{
			Name:        name,
			Description: theme.Description,
			Embedded:    true,
		})
	}

	themesDir, err := ThemesDir()
	if err != nil {
		return themes
	}
	entries, err := os.ReadDir(themesDir)
	if err != nil {
		return themes
	}
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".json") {
			continue
		}

		path := filepath.Join(themesDir, entry.Name())
		description := "User theme"
		if data, err := os.ReadFile(path); err == nil {
			var t Theme
			if json.Unmarshal(data, &t) == nil && t.Description != "" {
				description = t.Description
			}
		}

		themes = append(themes, ThemeMeta{
			Name:        strings.TrimSuffix(entry.Name(), ".json"),
			Description: description,
			Path:        path,
		})
	}
	return themes
}

// LoadByName loads a theme by name, checking user themes first, then
// embedded. Fields missing from a user theme keep the light values.
func LoadByName(name string) (Theme, error) {
	themesDir, err := ThemesDir()
	if err == nil {
		userPath := filepath.Join(themesDir, name+".json")
		if data, err := os.ReadFile(userPath); err == nil {
			theme := DefaultTheme()
			if err := json.Unmarshal(data, &theme); err == nil {
				theme.Name = name
				return theme, nil
			}
		}
	}

	return LoadEmbedded(name)
}

// GetAccent returns the accent color, with fallback.
func (t Theme) GetAccent() string {
	if t.Accent != "" {
		return t.Accent
	}
	return "#E5B567"
}

// GetBorderActive returns the active border color.
func (t Theme) GetBorderActive() string {
	if t.BorderActive != "" {
		return t.BorderActive
	}
	return t.GetAccent()
}

// GetBorderInactive returns the inactive border color.
func (t Theme) GetBorderInactive() string {
	if t.BorderInactive != "" {
		return t.BorderInactive
	}
	return "#444444"
}
