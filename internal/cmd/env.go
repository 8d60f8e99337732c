package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/wethinkt/go-suhoor/internal/config"
	"github.com/wethinkt/go-suhoor/internal/i18n"
	"github.com/wethinkt/go-suhoor/internal/schedule"
	"github.com/wethinkt/go-suhoor/internal/tuilog"
)

// environment is everything a command needs: the catalog, the saved
// preferences and the active timetable.
type environment struct {
	catalog   *i18n.Catalog
	store     *config.Store
	timetable *schedule.Timetable

	// timetableFile is the user timetable path, empty for the built-in one.
	timetableFile string
}

// loadEnvironment opens the preferences and loads the catalog and the
// timetable. With lenient set, a broken user timetable falls back to the
// built-in one instead of failing.
func loadEnvironment(lenient bool) (*environment, error) {
	store, err := config.Open("")
	if err != nil {
		return nil, err
	}

	cat, err := i18n.NewCatalog()
	if err != nil {
		return nil, err
	}

	env := &environment{catalog: cat, store: store}
	env.timetableFile = resolveTimetablePath(store.Config())

	tt, err := schedule.Load(env.timetableFile)
	if err != nil {
		if !lenient || env.timetableFile == "" {
			return nil, err
		}
		tuilog.Log.Warn("Falling back to built-in timetable", "path", env.timetableFile, "error", err)
		fmt.Fprintf(os.Stderr, "warning: %v; using the built-in timetable\n", err)
		env.timetableFile = ""
		if tt, err = schedule.Default(); err != nil {
			return nil, err
		}
	}
	env.timetable = tt

	tuilog.Log.Info("Environment loaded",
		"config", store.Path(),
		"timetable", tt.Name(),
		"file", env.timetableFile)
	return env, nil
}

// resolveTimetablePath picks the timetable file.
// Priority: --timetable > SUHOOR_TIMETABLE > config > ~/.suhoor/timetable.toml > built-in ("")
func resolveTimetablePath(cfg config.Config) string {
	if timetablePath != "" {
		return timetablePath
	}
	if v := os.Getenv("SUHOOR_TIMETABLE"); v != "" {
		return v
	}
	if cfg.Timetable != "" {
		return cfg.Timetable
	}
	if dir, err := config.Dir(); err == nil {
		path := filepath.Join(dir, "timetable.toml")
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}

// language resolves the language for this run. An explicit flag must
// parse; otherwise SUHOOR_LANG, then the saved preference, then English.
func (e *environment) language(flag string) (i18n.Language, error) {
	if flag != "" {
		return i18n.ParseLanguage(flag)
	}
	return i18n.ResolveLanguage(e.store.Config().SelectedLanguage), nil
}

// policy resolves the selection policy. An explicit flag must parse; a
// bad saved value is logged and ignored.
func (e *environment) policy(flag string) (schedule.Policy, error) {
	if flag != "" {
		return schedule.ParsePolicy(flag)
	}
	saved := e.store.Config().Policy
	p, err := schedule.ParsePolicy(saved)
	if err != nil {
		tuilog.Log.Warn("Ignoring saved policy", "policy", saved, "error", err)
		return schedule.PolicyUpcoming, nil
	}
	return p, nil
}

// referenceTime parses --at. Empty means now. Values without a zone are
// read in the timetable location.
func referenceTime(s string, loc *time.Location) (time.Time, error) {
	if s == "" {
		return time.Now(), nil
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	for _, layout := range []string{"2006-01-02 15:04", "2006-01-02T15:04", "2006-01-02"} {
		if t, err := time.ParseInLocation(layout, s, loc); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid --at %q: use RFC 3339 or \"2006-01-02 15:04\"", s)
}
