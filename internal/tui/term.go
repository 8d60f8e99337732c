package tui

import (
	"os"

	tea "charm.land/bubbletea/v2"
	"golang.org/x/term"

	"github.com/wethinkt/go-suhoor/internal/tuilog"
)

// termSizeOpts seeds the program with the terminal size, trying stdout,
// stdin and stderr in order.
func termSizeOpts() []tea.ProgramOption {
	var opts []tea.ProgramOption
	for _, fd := range []int{int(os.Stdout.Fd()), int(os.Stdin.Fd()), int(os.Stderr.Fd())} {
		if term.IsTerminal(fd) {
			w, h, err := term.GetSize(fd)
			if err == nil && w > 0 && h > 0 {
				tuilog.Log.Info("Terminal size", "fd", fd, "width", w, "height", h)
				opts = append(opts, tea.WithWindowSize(w, h))
				break
			}
		}
	}
	return opts
}
