package tui

import (
	"strings"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"

	"github.com/wethinkt/go-suhoor/internal/i18n"
)

// settingsItem is a selectable row: the dark-mode toggle or a language.
type settingsItem struct {
	darkMode bool
	lang     i18n.Language
}

// settingsLine is one rendered row of the settings page.
type settingsLine struct {
	Text    string
	Header  bool
	Cursor  bool
	Checked bool
}

// SettingsPage edits appearance and language.
type SettingsPage struct {
	app    *app
	keys   settingsKeyMap
	items  []settingsItem
	cursor int
	width  int
	height int
}

// NewSettingsPage creates the settings page with the cursor on the
// active language.
func NewSettingsPage(a *app) *SettingsPage {
	items := []settingsItem{{darkMode: true}}
	cursor := 0
	for _, l := range i18n.All() {
		if l == a.lang {
			cursor = len(items)
		}
		items = append(items, settingsItem{lang: l})
	}
	return &SettingsPage{
		app:    a,
		keys:   defaultSettingsKeyMap(),
		items:  items,
		cursor: cursor,
	}
}

func (p *SettingsPage) Init() tea.Cmd {
	return nil
}

func (p *SettingsPage) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		p.width = msg.Width
		p.height = msg.Height

	case tea.KeyPressMsg:
		switch {
		case key.Matches(msg, p.keys.Quit):
			return p, tea.Quit
		case key.Matches(msg, p.keys.Back):
			return p, func() tea.Msg { return PopPageMsg{} }
		case key.Matches(msg, p.keys.Up):
			if p.cursor > 0 {
				p.cursor--
			}
		case key.Matches(msg, p.keys.Down):
			if p.cursor < len(p.items)-1 {
				p.cursor++
			}
		case key.Matches(msg, p.keys.Select):
			p.activate(p.items[p.cursor])
		}
	}
	return p, nil
}

func (p *SettingsPage) activate(item settingsItem) {
	if item.darkMode {
		p.app.setDarkMode(!p.app.dark)
		return
	}
	p.app.setLanguage(item.lang)
}

// lines returns the unstyled rows in display order.
func (p *SettingsPage) lines() []settingsLine {
	a := p.app
	out := []settingsLine{
		{Text: a.phrase(i18n.PhraseSettingsTitle), Header: true},
		{Text: a.phrase(i18n.PhraseAppearanceHeader), Header: true},
	}
	for i, item := range p.items {
		if i == 1 {
			out = append(out, settingsLine{Text: a.phrase(i18n.PhraseLanguageHeader), Header: true})
		}
		line := settingsLine{Cursor: i == p.cursor}
		if item.darkMode {
			line.Text = a.phrase(i18n.PhraseDarkModeToggle)
			line.Checked = a.dark
		} else {
			line.Text = item.lang.String()
			line.Checked = item.lang == a.lang
		}
		out = append(out, line)
	}
	return out
}

func (p *SettingsPage) View() tea.View {
	st := p.app.styles

	var b strings.Builder
	for i, line := range p.lines() {
		switch {
		case i == 0:
			b.WriteString(st.Title.Render(line.Text))
		case line.Header:
			b.WriteString("\n" + st.Section.Render(line.Text))
		default:
			mark := "  "
			if line.Checked {
				mark = "● "
			}
			style := st.Unselected
			if line.Cursor {
				style = st.Selected
			}
			b.WriteString(style.Render(mark + line.Text))
		}
		b.WriteString("\n")
	}

	frame := st.Frame.Render(strings.TrimRight(b.String(), "\n"))
	help := st.Help.Render(p.app.phrase(i18n.PhraseHelpSettings))
	return tea.NewView(placeCenter(p.width, p.height, frame+"\n"+help))
}
