// Package report builds the localized views of a timetable shared by the
// CLI, the HTTP API and the TUI.
package report

import (
	"time"

	"github.com/wethinkt/go-suhoor/internal/i18n"
	"github.com/wethinkt/go-suhoor/internal/schedule"
)

// Event is one selected Suhoor or Iftar with its localized rendering.
type Event struct {
	Kind      schedule.Kind `json:"kind"`
	Label     string        `json:"label"`
	At        time.Time     `json:"at"`
	Display   string        `json:"display"`
	Countdown string        `json:"countdown,omitempty"`
	SameDay   []string      `json:"same_day,omitempty"`
}

// Next is the answer to "when is the next Suhoor and Iftar".
type Next struct {
	Language string          `json:"language"`
	Policy   string          `json:"policy"`
	Now      time.Time       `json:"now"`
	Status   schedule.Status `json:"status"`
	Notice   string          `json:"notice,omitempty"`
	Detail   string          `json:"detail,omitempty"`
	Events   []Event         `json:"events"`
}

// BuildNext selects the next Suhoor and Iftar relative to now. After the
// period ends Events is empty and Notice carries the periodEnded phrase;
// before it starts Notice and Detail carry notRamadan and timeLeft.
func BuildNext(cat *i18n.Catalog, tt *schedule.Timetable, now time.Time, lang i18n.Language, policy schedule.Policy) Next {
	n := Next{
		Language: lang.Code(),
		Policy:   policy.String(),
		Now:      now,
		Status:   tt.Status(now),
		Events:   []Event{},
	}

	switch n.Status {
	case schedule.StatusEnded:
		n.Notice = cat.Phrase(i18n.PhrasePeriodEnded, lang)
		return n
	case schedule.StatusBefore:
		n.Notice = cat.Phrase(i18n.PhraseNotRamadan, lang)
		n.Detail = cat.Phrase(i18n.PhraseTimeLeft, lang)
	}

	loc := tt.Location()
	for _, kind := range schedule.Kinds {
		at, ok := tt.Next(kind, now, policy)
		if !ok {
			continue
		}
		ev := Event{
			Kind:    kind,
			Label:   cat.Phrase(KindPhrase(kind), lang),
			At:      at,
			Display: cat.FormatEvent(at.In(loc), lang),
		}
		if !at.Before(now) {
			ev.Countdown = cat.Countdown(at.Sub(now), lang)
		}
		for _, other := range tt.SameDay(kind, at) {
			if !other.Equal(at) {
				ev.SameDay = append(ev.SameDay, cat.FormatClock(other.In(loc), lang))
			}
		}
		n.Events = append(n.Events, ev)
	}
	return n
}

// Entry is one row of the full timetable listing.
type Entry struct {
	Kind  schedule.Kind `json:"kind"`
	Label string        `json:"label"`
	At    time.Time     `json:"at"`
	Date  string        `json:"date"`
	Time  string        `json:"time"`
}

// BuildSchedule lists every event of the given kinds in chronological
// order. No kinds means both.
func BuildSchedule(cat *i18n.Catalog, tt *schedule.Timetable, lang i18n.Language, kinds ...schedule.Kind) []Entry {
	want := map[schedule.Kind]bool{}
	for _, k := range kinds {
		want[k] = true
	}

	loc := tt.Location()
	entries := []Entry{}
	for _, ev := range tt.Events() {
		if len(want) > 0 && !want[ev.Kind] {
			continue
		}
		local := ev.At.In(loc)
		entries = append(entries, Entry{
			Kind:  ev.Kind,
			Label: cat.Phrase(KindPhrase(ev.Kind), lang),
			At:    ev.At,
			Date:  cat.FormatMonthDay(local, lang),
			Time:  cat.FormatClock(local, lang),
		})
	}
	return entries
}

// KindPhrase maps an event kind to its label phrase.
func KindPhrase(k schedule.Kind) i18n.PhraseID {
	if k == schedule.Iftar {
		return i18n.PhraseIftar
	}
	return i18n.PhraseSuhoor
}
