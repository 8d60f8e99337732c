package tui

import (
	"errors"
	"strings"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/wethinkt/go-suhoor/internal/i18n"
	"github.com/wethinkt/go-suhoor/internal/schedule"
)

type memPrefs struct {
	lang    i18n.Language
	dark    bool
	saves   int
	failErr error
}

func (p *memPrefs) Language() i18n.Language { return p.lang }
func (p *memPrefs) DarkMode() bool { return p.dark }

func (p *memPrefs) SetLanguage(l i18n.Language) error {
	if p.failErr != nil {
		return p.failErr
	}
	p.lang = l
	p.saves++
	return nil
}

func (p *memPrefs) SetDarkMode(d bool) error {
	if p.failErr != nil {
		return p.failErr
	}
	p.dark = d
	p.saves++
	return nil
}

func localTime(month time.Month, day, hour, minute int) time.Time {
	return time.Date(2024, month, day, hour, minute, 0, 0, time.Local)
}

func newTestApp(t *testing.T, lang i18n.Language, now time.Time) (*app, *memPrefs) {
	t.Helper()
	cat, err := i18n.NewCatalog()
	if err != nil {
		t.Fatalf("NewCatalog: %v", err)
	}
	tt, err := schedule.Default()
	if err != nil {
		t.Fatalf("Default timetable: %v", err)
	}
	prefs := &memPrefs{lang: lang}
	a, err := newApp(Options{
		Catalog:   cat,
		Timetable: tt,
		Prefs:     prefs,
		Clock:     schedule.FixedClock{At: now},
		Language:  lang,
	})
	if err != nil {
		t.Fatalf("newApp: %v", err)
	}
	return a, prefs
}

func keyPress(s string) tea.KeyPressMsg {
	switch s {
	case "enter":
		return tea.KeyPressMsg{Code: tea.KeyEnter}
	case "esc":
		return tea.KeyPressMsg{Code: tea.KeyEscape}
	case "up":
		return tea.KeyPressMsg{Code: tea.KeyUp}
	case "down":
		return tea.KeyPressMsg{Code: tea.KeyDown}
	}
	r := []rune(s)[0]
	return tea.KeyPressMsg{Code: r, Text: s}
}

func TestTimesContentActive(t *testing.T) {
	a, _ := newTestApp(t, i18n.English, localTime(time.March, 11, 12, 0))
	c := buildTimesContent(a, a.now())

	if c.Status != schedule.StatusActive {
		t.Fatalf("status = %v, want active", c.Status)
	}
	if c.Notice != "" {
		t.Errorf("unexpected notice %q", c.Notice)
	}
	if len(c.Events) != 2 {
		t.Fatalf("expected 2 events, got %d", len(c.Events))
	}

	suhoor, iftar := c.Events[0], c.Events[1]
	if suhoor.Label != "Suhoor" || suhoor.Display != "March 12, 04:41" {
		t.Errorf("suhoor row = %+v", suhoor)
	}
	if suhoor.Countdown != "in 16h 41m" {
		t.Errorf("suhoor countdown = %q", suhoor.Countdown)
	}
	if iftar.Label != "Iftar" || iftar.Display != "March 11, 18:02" {
		t.Errorf("iftar row = %+v", iftar)
	}
	if iftar.Countdown != "in 6h 02m" {
		t.Errorf("iftar countdown = %q", iftar.Countdown)
	}
}

func TestTimesContentLocalized(t *testing.T) {
	a, _ := newTestApp(t, i18n.Arabic, localTime(time.March, 11, 12, 0))
	c := buildTimesContent(a, a.now())

	if c.Title != a.catalog.Phrase(i18n.PhraseTimesForIftarAndSuhoor, i18n.Arabic) {
		t.Errorf("title not localized: %q", c.Title)
	}
	if !strings.Contains(c.Events[1].Display, "مارس ١١") {
		t.Errorf("iftar date not localized: %q", c.Events[1].Display)
	}
	if strings.ContainsAny(c.Events[1].Display, "0123456789") {
		t.Errorf("ASCII digits left in %q", c.Events[1].Display)
	}
}

func TestTimesContentBeforeAndEnded(t *testing.T) {
	a, _ := newTestApp(t, i18n.English, localTime(time.March, 1, 9, 0))
	c := buildTimesContent(a, a.now())
	if c.Status != schedule.StatusBefore {
		t.Fatalf("status = %v, want before", c.Status)
	}
	if c.Notice != "It's not Ramadan" {
		t.Errorf("notice = %q", c.Notice)
	}
	if c.Detail == "" || len(c.Events) != 2 {
		t.Errorf("expected detail and rows before the period: %+v", c)
	}

	a, _ = newTestApp(t, i18n.English, localTime(time.April, 20, 9, 0))
	c = buildTimesContent(a, a.now())
	if c.Status != schedule.StatusEnded {
		t.Fatalf("status = %v, want ended", c.Status)
	}
	if c.Notice != a.catalog.Phrase(i18n.PhrasePeriodEnded, i18n.English) {
		t.Errorf("notice = %q", c.Notice)
	}
	if len(c.Events) != 0 {
		t.Errorf("expected no events after the period, got %d", len(c.Events))
	}
}

func TestTimesContentSameDay(t *testing.T) {
	a, _ := newTestApp(t, i18n.English, localTime(time.March, 29, 0, 0))
	c := buildTimesContent(a, a.now())

	suhoor := c.Events[0]
	if suhoor.Display != "March 29, 04:04" {
		t.Errorf("suhoor = %q, want the closer of the two Mar 29 entries", suhoor.Display)
	}
	if len(suhoor.SameDay) != 1 || suhoor.SameDay[0] != "04:06" {
		t.Errorf("same day = %v, want [04:06]", suhoor.SameDay)
	}
}

func TestTimesContentAbsolutePolicy(t *testing.T) {
	a, _ := newTestApp(t, i18n.English, localTime(time.March, 11, 12, 0))
	a.policy = schedule.PolicyAbsolute
	c := buildTimesContent(a, a.now())

	if c.Events[0].Display != "March 11, 04:43" {
		t.Errorf("suhoor = %q, want March 11, 04:43", c.Events[0].Display)
	}
	if c.Events[0].Countdown != "" {
		t.Errorf("past entry should have no countdown, got %q", c.Events[0].Countdown)
	}
}

func TestSettingsSelectLanguage(t *testing.T) {
	a, prefs := newTestApp(t, i18n.English, localTime(time.March, 11, 12, 0))
	page := NewSettingsPage(a)

	// Cursor starts on the active language (row 1, after the toggle).
	if page.cursor != 1 {
		t.Fatalf("cursor = %d, want 1", page.cursor)
	}
	for i := 0; i < int(i18n.Hindi); i++ {
		page.Update(keyPress("down"))
	}
	page.Update(keyPress("enter"))

	if a.lang != i18n.Hindi {
		t.Fatalf("language = %v, want Hindi", a.lang)
	}
	if prefs.lang != i18n.Hindi || prefs.saves != 1 {
		t.Errorf("preference not persisted: %+v", prefs)
	}

	lines := page.lines()
	if lines[0].Text != a.catalog.Phrase(i18n.PhraseSettingsTitle, i18n.Hindi) {
		t.Errorf("settings title not re-localized: %q", lines[0].Text)
	}
	var checked []string
	for _, l := range lines {
		if l.Checked {
			checked = append(checked, l.Text)
		}
	}
	if len(checked) != 1 || checked[0] != "हिंदी" {
		t.Errorf("checked rows = %v, want [हिंदी]", checked)
	}
}

func TestSettingsToggleDarkMode(t *testing.T) {
	a, prefs := newTestApp(t, i18n.English, localTime(time.March, 11, 12, 0))
	page := NewSettingsPage(a)

	page.Update(keyPress("up"))
	page.Update(keyPress("enter"))
	if !a.dark || !prefs.dark {
		t.Fatalf("dark mode not enabled: app=%v prefs=%v", a.dark, prefs.dark)
	}
	page.Update(keyPress("enter"))
	if a.dark || prefs.dark {
		t.Fatal("dark mode not toggled back off")
	}
}

func TestSettingsSaveFailureKeepsSession(t *testing.T) {
	a, prefs := newTestApp(t, i18n.English, localTime(time.March, 11, 12, 0))
	prefs.failErr = errors.New("read-only")

	a.setLanguage(i18n.Turkish)
	if a.lang != i18n.Turkish {
		t.Error("language should change even when saving fails")
	}
	if a.phrase(i18n.PhraseLanguageHeader) != "Dil" {
		t.Errorf("languageHeader = %q, want Dil", a.phrase(i18n.PhraseLanguageHeader))
	}
}

func TestSettingsSavesEnvLanguage(t *testing.T) {
	a, prefs := newTestApp(t, i18n.Arabic, localTime(time.March, 11, 12, 0))
	prefs.lang = i18n.English

	a.setLanguage(i18n.Arabic)
	if prefs.lang != i18n.Arabic || prefs.saves != 1 {
		t.Errorf("stored = %v after %d saves, want Arabic after 1", prefs.lang, prefs.saves)
	}

	a.setLanguage(i18n.Arabic)
	if prefs.saves != 1 {
		t.Errorf("saves = %d, want no rewrite of an unchanged preference", prefs.saves)
	}
}

func TestShellNavigation(t *testing.T) {
	a, _ := newTestApp(t, i18n.English, localTime(time.March, 11, 12, 0))
	s := &Shell{stack: NewNavStack(), app: a, width: 80, height: 24}
	s.stack.items = append(s.stack.items, NavItem{Title: "times", Model: NewTimesPage(a)})

	_, cmd := s.Update(keyPress("s"))
	var pushed bool
	for _, msg := range runAllCmdMessages(cmd) {
		if _, ok := msg.(PushPageMsg); ok {
			pushed = true
		}
		s.Update(msg)
	}
	if !pushed {
		t.Fatal("expected PushPageMsg after pressing s")
	}
	if got := s.stack.Path(); len(got) != 2 || got[1] != "settings" {
		t.Fatalf("stack = %v, want [times settings]", got)
	}

	_, cmd = s.Update(keyPress("esc"))
	for _, msg := range runAllCmdMessages(cmd) {
		s.Update(msg)
	}
	if got := s.stack.Path(); len(got) != 1 {
		t.Fatalf("stack after esc = %v, want [times]", got)
	}

	_, cmd = s.Update(keyPress("q"))
	msgs := runAllCmdMessages(cmd)
	var quit bool
	for _, msg := range msgs {
		if _, ok := msg.(tea.QuitMsg); ok {
			quit = true
		}
	}
	if !quit {
		t.Fatalf("expected QuitMsg, got %#v", msgs)
	}
}

func TestShellTimetableReload(t *testing.T) {
	a, _ := newTestApp(t, i18n.English, localTime(time.March, 11, 12, 0))
	s := &Shell{stack: NewNavStack(), app: a}

	replacement, err := schedule.New("Replacement", time.Local,
		[]time.Time{localTime(time.March, 11, 5, 0)},
		[]time.Time{localTime(time.March, 11, 19, 0)})
	if err != nil {
		t.Fatal(err)
	}

	s.Update(timetableReloadedMsg{Err: errors.New("bad file")})
	if a.timetable.Name() != "Ramadan 1445" {
		t.Fatal("failed reload should keep the previous timetable")
	}

	s.Update(timetableReloadedMsg{Timetable: replacement})
	if a.timetable.Name() != "Replacement" {
		t.Fatalf("timetable = %q, want Replacement", a.timetable.Name())
	}
}

func TestNewShellValidatesOptions(t *testing.T) {
	if _, err := NewShell(Options{}); err == nil {
		t.Error("expected error for missing catalog")
	}
}

func TestViewsRender(t *testing.T) {
	for _, lang := range i18n.All() {
		a, _ := newTestApp(t, lang, localTime(time.March, 11, 12, 0))
		times := NewTimesPage(a)
		times.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
		if v := times.render(a.now()); !strings.Contains(v, a.phrase(i18n.PhraseSuhoor)) {
			t.Errorf("%s: times view missing suhoor label", lang.EnglishName())
		}

		settings := NewSettingsPage(a)
		settings.View()
	}
}
