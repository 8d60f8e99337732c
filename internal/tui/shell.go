package tui

import (
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/wethinkt/go-suhoor/internal/schedule"
	"github.com/wethinkt/go-suhoor/internal/tuilog"
)

// NavItem represents a page in the navigation stack
type NavItem struct {
	Title string
	Model tea.Model
}

// NavStack manages navigation history
type NavStack struct {
	items []NavItem
}

func NewNavStack() *NavStack {
	return &NavStack{items: make([]NavItem, 0)}
}

func (ns *NavStack) Push(item NavItem, width, height int) tea.Cmd {
	ns.items = append(ns.items, item)
	initCmd := item.Model.Init()
	// Send current window size to the new model so it can lay itself out
	if width > 0 && height > 0 {
		sizeCmd := func() tea.Msg {
			return tea.WindowSizeMsg{Width: width, Height: height}
		}
		return tea.Batch(initCmd, sizeCmd)
	}
	return initCmd
}

func (ns *NavStack) Pop() {
	if len(ns.items) > 0 {
		ns.items = ns.items[:len(ns.items)-1]
	}
}

func (ns *NavStack) Peek() (NavItem, bool) {
	if len(ns.items) == 0 {
		return NavItem{}, false
	}
	return ns.items[len(ns.items)-1], true
}

func (ns *NavStack) IsEmpty() bool {
	return len(ns.items) == 0
}

func (ns *NavStack) Path() []string {
	path := make([]string, len(ns.items))
	for i, item := range ns.items {
		path[i] = item.Title
	}
	return path
}

// Navigation messages
type PushPageMsg struct {
	Item NavItem
}

type PopPageMsg struct{}

// tickMsg refreshes countdowns.
type tickMsg time.Time

// timetableReloadedMsg carries a watcher result into the update loop.
type timetableReloadedMsg schedule.Reload

const tickInterval = 30 * time.Second

func tickCmd() tea.Cmd {
	return tea.Tick(tickInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func waitForReload(ch <-chan schedule.Reload) tea.Cmd {
	if ch == nil {
		return nil
	}
	return func() tea.Msg {
		r, ok := <-ch
		if !ok {
			return nil
		}
		return timetableReloadedMsg(r)
	}
}

// Shell is the main TUI container with navigation
type Shell struct {
	width   int
	height  int
	stack   *NavStack
	app     *app
	reloads <-chan schedule.Reload
}

// NewShell creates the main TUI shell, starting on the times page.
func NewShell(opts Options) (*Shell, error) {
	a, err := newApp(opts)
	if err != nil {
		return nil, err
	}
	s := &Shell{
		stack:   NewNavStack(),
		app:     a,
		reloads: opts.Reloads,
	}
	s.stack.items = append(s.stack.items, NavItem{
		Title: "times",
		Model: NewTimesPage(a),
	})
	return s, nil
}

func (s *Shell) Init() tea.Cmd {
	tuilog.Log.Info("Shell.Init: starting", "language", s.app.lang.EnglishName(), "dark", s.app.dark)
	cmds := []tea.Cmd{tickCmd(), waitForReload(s.reloads)}
	if current, ok := s.stack.Peek(); ok {
		cmds = append(cmds, current.Model.Init())
	}
	return tea.Batch(cmds...)
}

func (s *Shell) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		s.width = msg.Width
		s.height = msg.Height

	case tickMsg:
		cmds = append(cmds, tickCmd())

	case timetableReloadedMsg:
		if msg.Err != nil {
			tuilog.Log.Warn("Shell.Update: keeping previous timetable", "error", msg.Err)
		} else {
			s.app.setTimetable(msg.Timetable)
			tuilog.Log.Info("Shell.Update: timetable replaced", "name", msg.Timetable.Name())
		}
		cmds = append(cmds, waitForReload(s.reloads))

	case PushPageMsg:
		tuilog.Log.Info("Shell.Update: PushPageMsg received", "page", msg.Item.Title)
		return s, s.stack.Push(msg.Item, s.width, s.height)

	case PopPageMsg:
		tuilog.Log.Info("Shell.Update: PopPageMsg received")
		s.stack.Pop()
		if s.stack.IsEmpty() {
			tuilog.Log.Info("Shell.Update: stack empty, quitting")
			return s, tea.Quit
		}
		// Send WindowSizeMsg to the revealed page so it re-renders
		if s.width > 0 && s.height > 0 {
			width, height := s.width, s.height
			cmds = append(cmds, func() tea.Msg {
				return tea.WindowSizeMsg{Width: width, Height: height}
			})
		}
		return s, tea.Batch(cmds...)
	}

	// Pass message to current page
	if current, ok := s.stack.Peek(); ok {
		newModel, cmd := current.Model.Update(msg)
		current.Model = newModel
		s.stack.items[len(s.stack.items)-1] = current
		cmds = append(cmds, cmd)
	}

	return s, tea.Batch(cmds...)
}

func (s *Shell) View() tea.View {
	if s.stack.IsEmpty() {
		v := tea.NewView("")
		v.AltScreen = true
		return v
	}

	current, _ := s.stack.Peek()
	v := current.Model.View()
	v.AltScreen = true
	return v
}

// Run starts the TUI and blocks until the user quits.
func Run(opts Options) error {
	shell, err := NewShell(opts)
	if err != nil {
		return err
	}
	p := tea.NewProgram(shell, termSizeOpts()...)
	_, err = p.Run()
	tuilog.Log.Info("TUI exited", "error", err)
	return err
}
