package tui

import (
	"errors"
	"time"

	"github.com/wethinkt/go-suhoor/internal/i18n"
	"github.com/wethinkt/go-suhoor/internal/schedule"
	"github.com/wethinkt/go-suhoor/internal/tui/theme"
	"github.com/wethinkt/go-suhoor/internal/tuilog"
)

// Preferences is the persisted state edited on the settings page.
// *config.Store satisfies it.
type Preferences interface {
	Language() i18n.Language
	DarkMode() bool
	SetLanguage(i18n.Language) error
	SetDarkMode(bool) error
}

// Options configures a TUI session.
type Options struct {
	Catalog   *i18n.Catalog
	Timetable *schedule.Timetable
	Prefs     Preferences
	Clock     schedule.Clock
	Policy    schedule.Policy

	// Language is the starting language. It may differ from Prefs when
	// SUHOOR_LANG or --lang is set.
	Language i18n.Language

	// ThemeName overrides the dark/light theme pick when set.
	ThemeName string

	// Reloads delivers timetable file changes; nil disables reloading.
	Reloads <-chan schedule.Reload
}

// app is the state shared by every page. It is only touched from the
// bubbletea update loop.
type app struct {
	catalog   *i18n.Catalog
	timetable *schedule.Timetable
	prefs     Preferences
	clock     schedule.Clock
	policy    schedule.Policy
	themeName string

	lang   i18n.Language
	dark   bool
	styles Styles
}

func newApp(opts Options) (*app, error) {
	if opts.Catalog == nil {
		return nil, errors.New("tui: catalog is required")
	}
	if opts.Timetable == nil {
		return nil, errors.New("tui: timetable is required")
	}
	if opts.Prefs == nil {
		return nil, errors.New("tui: preferences are required")
	}
	clock := opts.Clock
	if clock == nil {
		clock = schedule.RealClock{}
	}
	lang := opts.Language
	if !lang.Valid() {
		lang = opts.Prefs.Language()
	}

	a := &app{
		catalog:   opts.Catalog,
		timetable: opts.Timetable,
		prefs:     opts.Prefs,
		clock:     clock,
		policy:    opts.Policy,
		themeName: opts.ThemeName,
		lang:      lang,
		dark:      opts.Prefs.DarkMode(),
	}
	a.styles = buildStyles(a.theme())
	return a, nil
}

func (a *app) theme() theme.Theme {
	if a.themeName != "" {
		if t, err := theme.LoadByName(a.themeName); err == nil {
			return t
		}
		tuilog.Log.Warn("Theme not found, using mode theme", "theme", a.themeName)
	}
	return theme.ForMode(a.dark)
}

func (a *app) now() time.Time {
	return a.clock.Now()
}

func (a *app) phrase(id i18n.PhraseID) string {
	return a.catalog.Phrase(id, a.lang)
}

// setLanguage switches the display language and persists it. The session
// language may come from SUHOOR_LANG, so the save is skipped only when the
// stored value already matches. A failed write is logged; the session
// keeps the new language.
func (a *app) setLanguage(lang i18n.Language) {
	if lang != a.lang {
		tuilog.Log.Info("Language changed", "from", a.lang.EnglishName(), "to", lang.EnglishName())
		a.lang = lang
	}
	if lang == a.prefs.Language() {
		return
	}
	if err := a.prefs.SetLanguage(lang); err != nil {
		tuilog.Log.Error("Failed to save language", "error", err)
	}
}

// setDarkMode switches the appearance, rebuilds styles and persists it.
func (a *app) setDarkMode(dark bool) {
	if dark == a.dark {
		return
	}
	tuilog.Log.Info("Appearance changed", "dark", dark)
	a.dark = dark
	a.styles = buildStyles(a.theme())
	if err := a.prefs.SetDarkMode(dark); err != nil {
		tuilog.Log.Error("Failed to save appearance", "error", err)
	}
}

// setTimetable swaps in a reloaded timetable.
func (a *app) setTimetable(tt *schedule.Timetable) {
	if tt != nil {
		a.timetable = tt
	}
}
