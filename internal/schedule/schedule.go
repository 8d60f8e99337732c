// Package schedule holds the Suhoor and Iftar timetable and picks the
// entry closest to a reference instant.
package schedule

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

var (
	// ErrUnknownKind is returned for an event kind other than suhoor or iftar.
	ErrUnknownKind = errors.New("unknown event kind")
	// ErrUnknownPolicy is returned for an unrecognized selection policy.
	ErrUnknownPolicy = errors.New("unknown selection policy")
)

// Kind distinguishes the two daily events.
type Kind int

const (
	Suhoor Kind = iota
	Iftar
)

// Kinds lists both event kinds in display order.
var Kinds = []Kind{Suhoor, Iftar}

func (k Kind) String() string {
	switch k {
	case Suhoor:
		return "suhoor"
	case Iftar:
		return "iftar"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// ParseKind parses "suhoor" or "iftar" (case-insensitive).
func ParseKind(s string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "suhoor", "sehri", "sahur":
		return Suhoor, nil
	case "iftar":
		return Iftar, nil
	}
	return Suhoor, fmt.Errorf("%w: %q", ErrUnknownKind, s)
}

// Event is a single Suhoor or Iftar instant.
type Event struct {
	Kind Kind      `json:"kind"`
	At   time.Time `json:"at"`
}

// Policy decides what "nearest" means.
type Policy int

const (
	// PolicyUpcoming picks the earliest entry at or after now.
	PolicyUpcoming Policy = iota
	// PolicyAbsolute picks the entry closest to now in either direction.
	PolicyAbsolute
)

func (p Policy) String() string {
	switch p {
	case PolicyUpcoming:
		return "upcoming"
	case PolicyAbsolute:
		return "absolute"
	default:
		return fmt.Sprintf("Policy(%d)", int(p))
	}
}

// ParsePolicy parses "upcoming" or "absolute". Empty means upcoming.
func ParsePolicy(s string) (Policy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "upcoming", "future", "next":
		return PolicyUpcoming, nil
	case "absolute", "nearest":
		return PolicyAbsolute, nil
	}
	return PolicyUpcoming, fmt.Errorf("%w: %q", ErrUnknownPolicy, s)
}

// FindNearest scans list and returns the entry selected by policy
// relative to now. It reports false when list is empty, or when policy
// is PolicyUpcoming and every entry is before now. The list need not be
// sorted; ties go to the earlier position in list.
func FindNearest(list []time.Time, now time.Time, policy Policy) (time.Time, bool) {
	best := -1
	var bestDist time.Duration

	for i, t := range list {
		d := t.Sub(now)
		switch policy {
		case PolicyAbsolute:
			if d < 0 {
				d = -d
			}
		default:
			if d < 0 {
				continue
			}
		}
		if best < 0 || d < bestDist {
			best = i
			bestDist = d
		}
	}

	if best < 0 {
		return time.Time{}, false
	}
	return list[best], true
}

// SameDay returns the entries of list that fall on ref's calendar day
// in loc, in list order.
func SameDay(list []time.Time, ref time.Time, loc *time.Location) []time.Time {
	if loc == nil {
		loc = ref.Location()
	}
	ry, rm, rd := ref.In(loc).Date()

	var out []time.Time
	for _, t := range list {
		y, m, d := t.In(loc).Date()
		if y == ry && m == rm && d == rd {
			out = append(out, t)
		}
	}
	return out
}

// MarshalText implements encoding.TextMarshaler.
func (k Kind) MarshalText() ([]byte, error) {
	if k != Suhoor && k != Iftar {
		return nil, fmt.Errorf("%w: %d", ErrUnknownKind, int(k))
	}
	return []byte(k.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (k *Kind) UnmarshalText(text []byte) error {
	parsed, err := ParseKind(string(text))
	if err != nil {
		return err
	}
	*k = parsed
	return nil
}
