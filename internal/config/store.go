package config

import (
	"fmt"
	"sync"

	"github.com/wethinkt/go-suhoor/internal/i18n"
)

// Store is the preference store: it holds the current preferences in
// memory and writes them to disk on every change.
type Store struct {
	mu   sync.Mutex
	path string
	cfg  Config
}

// Open loads the store backed by path. An empty path uses Path().
func Open(path string) (*Store, error) {
	if path == "" {
		p, err := Path()
		if err != nil {
			return nil, err
		}
		path = p
	}
	cfg, err := LoadFrom(path)
	if err != nil {
		return nil, fmt.Errorf("load preferences: %w", err)
	}
	return &Store{path: path, cfg: cfg}, nil
}

// Path returns the backing file.
func (s *Store) Path() string { return s.path }

// Config returns a copy of the current preferences.
func (s *Store) Config() Config {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cfg
}

// Language returns the stored language, or English if none is stored
// or the stored label is not recognized.
func (s *Store) Language() i18n.Language {
	s.mu.Lock()
	defer s.mu.Unlock()
	l, err := i18n.ParseLanguage(s.cfg.SelectedLanguage)
	if err != nil {
		return i18n.English
	}
	return l
}

// DarkMode reports the stored appearance.
func (s *Store) DarkMode() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cfg.IsDarkMode
}

// SetLanguage stores lang and persists it.
func (s *Store) SetLanguage(lang i18n.Language) error {
	if !lang.Valid() {
		return fmt.Errorf("%w: %v", i18n.ErrUnknownLanguage, lang)
	}
	return s.update(func(c *Config) { c.SelectedLanguage = lang.String() })
}

// SetDarkMode stores the appearance and persists it.
func (s *Store) SetDarkMode(dark bool) error {
	return s.update(func(c *Config) { c.IsDarkMode = dark })
}

// SetPolicy stores the default selection policy name.
func (s *Store) SetPolicy(policy string) error {
	return s.update(func(c *Config) { c.Policy = policy })
}

// SetTheme stores a theme name overriding the dark/light pick. An empty
// name clears the override.
func (s *Store) SetTheme(name string) error {
	return s.update(func(c *Config) { c.Theme = name })
}

// SetTimetable stores the path of a user timetable file.
func (s *Store) SetTimetable(path string) error {
	return s.update(func(c *Config) { c.Timetable = path })
}

func (s *Store) update(fn func(*Config)) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	next := s.cfg
	fn(&next)
	if err := SaveTo(s.path, next); err != nil {
		return fmt.Errorf("save preferences: %w", err)
	}
	s.cfg = next
	return nil
}
