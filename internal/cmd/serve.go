package cmd

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/wethinkt/go-suhoor/internal/config"
	"github.com/wethinkt/go-suhoor/internal/schedule"
	"github.com/wethinkt/go-suhoor/internal/server"
	"github.com/wethinkt/go-suhoor/internal/tuilog"
)

// Serve command flags
var (
	servePort int
	serveHost string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the JSON API server",
	Long: `Start a local HTTP server with the next-times API.

Endpoints:
  GET /api/v1/next       Next Suhoor and Iftar (?lang=, ?policy=, ?at=)
  GET /api/v1/schedule   Full timetable (?kind=, ?lang=)
  GET /api/v1/languages  Supported languages
  GET /api/v1/phrases    Phrase catalog (?lang=)
  GET /swagger/          API documentation
  GET /metrics           Prometheus metrics

When a timetable file is in use, edits to it are picked up live.

Examples:
  suhoor serve                  # http://localhost:8785
  suhoor serve -p 9000 --host 0.0.0.0`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func runServe(cmd *cobra.Command, args []string) error {
	if inst := config.FindInstanceByPort(servePort); inst != nil {
		return fmt.Errorf("port %d is already used by suhoor %s at %s (pid %d)", servePort, inst.Type, inst.URL(), inst.PID)
	}

	env, err := loadEnvironment(false)
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

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	tuilog.Log.Info("Starting HTTP server", "port", servePort, "host", serveHost)

	srv, err := server.NewHTTPServer(env.catalog, env.timetable, schedule.RealClock{}, server.Config{
		Port:     servePort,
		Host:     serveHost,
		Language: lang,
		Policy:   policy,
	})
	if err != nil {
		return err
	}

	ln, err := srv.Listen()
	if err != nil {
		return err
	}

	// Registered after Listen so an auto-assigned port is recorded.
	inst := config.Instance{
		Type:      config.InstanceServe,
		PID:       os.Getpid(),
		Port:      srv.Port(),
		Host:      serveHost,
		StartedAt: time.Now(),
	}
	if err := config.RegisterInstance(inst); err != nil {
		tuilog.Log.Warn("Failed to register instance", "error", err)
	}
	defer config.UnregisterInstance(inst.PID)

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return srv.Serve(ctx, ln)
	})

	if env.timetableFile != "" {
		w, err := schedule.NewWatcher(env.timetableFile, 200*time.Millisecond)
		if err != nil {
			tuilog.Log.Warn("Timetable watcher disabled", "error", err)
		} else {
			defer w.Close()
			reloads := w.Start(ctx)
			g.Go(func() error {
				for r := range reloads {
					if r.Err != nil {
						fmt.Fprintf(os.Stderr, "timetable reload failed: %v\n", r.Err)
						continue
					}
					srv.SetTimetable(r.Timetable)
					fmt.Fprintf(os.Stderr, "timetable reloaded: %s\n", r.Timetable.Name())
				}
				return nil
			})
		}
	}

	fmt.Println("Suhoor server starting...")
	fmt.Printf("Timetable: %s\n", env.timetable.Name())

	err = g.Wait()
	if ctx.Err() != nil && err == nil {
		fmt.Fprintln(os.Stderr, "\nShutting down...")
	}
	return err
}
