package cmd

import (
	"context"
	"time"

	"github.com/spf13/cobra"

	"github.com/wethinkt/go-suhoor/internal/schedule"
	"github.com/wethinkt/go-suhoor/internal/tui"
	"github.com/wethinkt/go-suhoor/internal/tuilog"
)

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Launch the interactive TUI",
	Long: `Show the next Suhoor and Iftar in a full-screen terminal view.

Press s to open settings, where you can switch the language and toggle
dark mode. Changes are saved to ~/.suhoor/config.json.

When a timetable file is in use, edits to it are picked up live.`,
	Args: cobra.NoArgs,
	RunE: runTUI,
}

func runTUI(cmd *cobra.Command, args []string) error {
	tuilog.Log.Info("Starting TUI")

	env, err := loadEnvironment(true)
	if err != nil {
		return err
	}
	lang, err := env.language("")
	if err != nil {
		return err
	}
	policy, err := env.policy("")
	if err != nil {
		return err
	}

	opts := tui.Options{
		Catalog:   env.catalog,
		Timetable: env.timetable,
		Prefs:     env.store,
		Clock:     schedule.RealClock{},
		Policy:    policy,
		Language:  lang,
		ThemeName: env.store.Config().Theme,
	}

	if env.timetableFile != "" {
		w, err := schedule.NewWatcher(env.timetableFile, 200*time.Millisecond)
		if err != nil {
			tuilog.Log.Warn("Timetable watcher disabled", "error", err)
		} else {
			ctx, cancel := context.WithCancel(cmd.Context())
			defer cancel()
			defer w.Close()
			opts.Reloads = w.Start(ctx)
		}
	}

	return tui.Run(opts)
}
