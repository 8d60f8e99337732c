package tui

import (
	"strings"
	"time"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/wethinkt/go-suhoor/internal/i18n"
	"github.com/wethinkt/go-suhoor/internal/report"
)

// timesContent is the unstyled content of the times page.
type timesContent struct {
	Title string
	Help  string
	report.Next
}

// buildTimesContent computes what the times page shows at now.
func buildTimesContent(a *app, now time.Time) timesContent {
	return timesContent{
		Title: a.phrase(i18n.PhraseTimesForIftarAndSuhoor),
		Help:  a.phrase(i18n.PhraseHelpTimes),
		Next:  report.BuildNext(a.catalog, a.timetable, now, a.lang, a.policy),
	}
}

// TimesPage shows the next Suhoor and Iftar.
type TimesPage struct {
	app    *app
	keys   timesKeyMap
	width  int
	height int
}

// NewTimesPage creates the times page.
func NewTimesPage(a *app) *TimesPage {
	return &TimesPage{app: a, keys: defaultTimesKeyMap()}
}

func (p *TimesPage) Init() tea.Cmd {
	return nil
}

func (p *TimesPage) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		p.width = msg.Width
		p.height = msg.Height

	case tea.KeyPressMsg:
		switch {
		case key.Matches(msg, p.keys.Quit):
			return p, tea.Quit
		case key.Matches(msg, p.keys.Settings):
			settings := NewSettingsPage(p.app)
			return p, func() tea.Msg {
				return PushPageMsg{Item: NavItem{Title: "settings", Model: settings}}
			}
		}
	}
	return p, nil
}

func (p *TimesPage) View() tea.View {
	return tea.NewView(p.render(p.app.now()))
}

func (p *TimesPage) render(now time.Time) string {
	st := p.app.styles
	c := buildTimesContent(p.app, now)

	var lines []string
	lines = append(lines, st.Title.Render(c.Title))
	if c.Notice != "" {
		lines = append(lines, st.Notice.Render(c.Notice))
	}
	if c.Detail != "" {
		lines = append(lines, st.Secondary.Render(c.Detail))
	}
	if c.Notice != "" && len(c.Events) > 0 {
		lines = append(lines, "")
	}
	for _, ev := range c.Events {
		line := st.Label.Render(ev.Label+":") + " " + st.Time.Render(ev.Display)
		if ev.Countdown != "" {
			line += "  " + st.Countdown.Render(ev.Countdown)
		}
		lines = append(lines, line)
		if len(ev.SameDay) > 0 {
			lines = append(lines, "  "+st.Secondary.Render(strings.Join(ev.SameDay, " · ")))
		}
	}

	body := strings.Join(lines, "\n")
	if p.app.lang.RTL() {
		body = lipgloss.NewStyle().Align(lipgloss.Right).Render(body)
	}
	frame := st.Frame.Render(body)
	help := st.Help.Render(c.Help)
	return placeCenter(p.width, p.height, frame+"\n"+help)
}

// placeCenter centers content when the window size is known.
func placeCenter(width, height int, content string) string {
	if width <= 0 || height <= 0 {
		return content
	}
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}
