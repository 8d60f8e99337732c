package schedule

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"sort"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
)

//go:embed data/timetable.toml
var defaultTimetable []byte

// ErrEmptyTimetable is returned when a timetable has no Suhoor or no
// Iftar entries.
var ErrEmptyTimetable = errors.New("timetable needs at least one suhoor and one iftar")

// Status describes where an instant falls relative to the timetable.
type Status int

const (
	// StatusBefore means now is before the first Suhoor.
	StatusBefore Status = iota
	// StatusActive means the period is running.
	StatusActive
	// StatusEnded means now is after the last Iftar.
	StatusEnded
)

func (s Status) String() string {
	switch s {
	case StatusBefore:
		return "before"
	case StatusActive:
		return "active"
	case StatusEnded:
		return "ended"
	default:
		return fmt.Sprintf("Status(%d)", int(s))
	}
}

// Timetable is an immutable set of Suhoor and Iftar instants.
type Timetable struct {
	name     string
	location *time.Location
	suhoor   []time.Time
	iftar    []time.Time
}

// file is the on-disk TOML shape.
type file struct {
	Name     string      `toml:"name"`
	Location string      `toml:"location"`
	Events   []fileEvent `toml:"events"`
}

type fileEvent struct {
	Kind string `toml:"kind"`
	Date string `toml:"date"`
	Time string `toml:"time"`
}

// Default returns the embedded timetable.
func Default() (*Timetable, error) {
	tt, err := Parse(defaultTimetable)
	if err != nil {
		return nil, fmt.Errorf("embedded timetable: %w", err)
	}
	return tt, nil
}

// Load reads a timetable from path, or returns the embedded one if path
// is empty.
func Load(path string) (*Timetable, error) {
	if path == "" {
		return Default()
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read timetable: %w", err)
	}
	tt, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return tt, nil
}

// Parse decodes a TOML timetable.
func Parse(data []byte) (*Timetable, error) {
	var f file
	if _, err := toml.Decode(string(data), &f); err != nil {
		return nil, fmt.Errorf("decode timetable: %w", err)
	}

	loc, err := loadLocation(f.Location)
	if err != nil {
		return nil, err
	}

	tt := &Timetable{name: f.Name, location: loc}
	for i, e := range f.Events {
		kind, err := ParseKind(e.Kind)
		if err != nil {
			return nil, fmt.Errorf("event %d: %w", i, err)
		}
		at, err := parseWallClock(e.Date, e.Time, loc)
		if err != nil {
			return nil, fmt.Errorf("event %d: %w", i, err)
		}
		switch kind {
		case Suhoor:
			tt.suhoor = append(tt.suhoor, at)
		case Iftar:
			tt.iftar = append(tt.iftar, at)
		}
	}

	if len(tt.suhoor) == 0 || len(tt.iftar) == 0 {
		return nil, ErrEmptyTimetable
	}
	return tt, nil
}

// New builds a timetable directly from instants.
func New(name string, loc *time.Location, suhoor, iftar []time.Time) (*Timetable, error) {
	if len(suhoor) == 0 || len(iftar) == 0 {
		return nil, ErrEmptyTimetable
	}
	if loc == nil {
		loc = time.Local
	}
	return &Timetable{
		name:     name,
		location: loc,
		suhoor:   append([]time.Time(nil), suhoor...),
		iftar:    append([]time.Time(nil), iftar...),
	}, nil
}

func loadLocation(name string) (*time.Location, error) {
	switch strings.TrimSpace(name) {
	case "", "Local", "local":
		return time.Local, nil
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		return nil, fmt.Errorf("location %q: %w", name, err)
	}
	return loc, nil
}

func parseWallClock(date, clock string, loc *time.Location) (time.Time, error) {
	layout := "2006-01-02 15:04"
	if strings.Count(clock, ":") == 2 {
		layout = "2006-01-02 15:04:05"
	}
	at, err := time.ParseInLocation(layout, strings.TrimSpace(date)+" "+strings.TrimSpace(clock), loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("date %q time %q: %w", date, clock, err)
	}
	return at, nil
}

// Name returns the timetable's display name.
func (t *Timetable) Name() string { return t.name }

// Location returns the zone times are rendered in.
func (t *Timetable) Location() *time.Location { return t.location }

// Times returns a copy of the instants for kind, in file order.
func (t *Timetable) Times(kind Kind) []time.Time {
	switch kind {
	case Suhoor:
		return append([]time.Time(nil), t.suhoor...)
	case Iftar:
		return append([]time.Time(nil), t.iftar...)
	}
	return nil
}

func (t *Timetable) list(kind Kind) []time.Time {
	if kind == Iftar {
		return t.iftar
	}
	return t.suhoor
}

// Next returns the entry of kind selected by policy relative to now.
func (t *Timetable) Next(kind Kind, now time.Time, policy Policy) (time.Time, bool) {
	return FindNearest(t.list(kind), now, policy)
}

// SameDay returns the entries of kind on ref's calendar day.
func (t *Timetable) SameDay(kind Kind, ref time.Time) []time.Time {
	return SameDay(t.list(kind), ref, t.location)
}

// Events returns every entry in chronological order. Entries with the
// same instant keep Suhoor before Iftar.
func (t *Timetable) Events() []Event {
	events := make([]Event, 0, len(t.suhoor)+len(t.iftar))
	for _, at := range t.suhoor {
		events = append(events, Event{Kind: Suhoor, At: at})
	}
	for _, at := range t.iftar {
		events = append(events, Event{Kind: Iftar, At: at})
	}
	sort.SliceStable(events, func(i, j int) bool {
		return events[i].At.Before(events[j].At)
	})
	return events
}

// Start returns the earliest Suhoor.
func (t *Timetable) Start() time.Time {
	return earliest(t.suhoor)
}

// End returns the latest Iftar.
func (t *Timetable) End() time.Time {
	return latest(t.iftar)
}

// Status reports whether now is before, during or after the period.
func (t *Timetable) Status(now time.Time) Status {
	switch {
	case now.Before(t.Start()):
		return StatusBefore
	case now.After(t.End()):
		return StatusEnded
	default:
		return StatusActive
	}
}

func earliest(list []time.Time) time.Time {
	var first time.Time
	for i, t := range list {
		if i == 0 || t.Before(first) {
			first = t
		}
	}
	return first
}

func latest(list []time.Time) time.Time {
	var last time.Time
	for i, t := range list {
		if i == 0 || t.After(last) {
			last = t
		}
	}
	return last
}

// MarshalText implements encoding.TextMarshaler.
func (s Status) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *Status) UnmarshalText(text []byte) error {
	for _, v := range []Status{StatusBefore, StatusActive, StatusEnded} {
		if v.String() == string(text) {
			*s = v
			return nil
		}
	}
	return fmt.Errorf("unknown status %q", text)
}
