// Package cmd provides the CLI commands for suhoor.
package cmd

import (
	"fmt"
	"os"
	"runtime/pprof"

	"github.com/spf13/cobra"

	"github.com/wethinkt/go-suhoor/internal/config"
	"github.com/wethinkt/go-suhoor/internal/server"
	"github.com/wethinkt/go-suhoor/internal/tuilog"
)

// global flags
var (
	profileFile   *os.File // held open for profiling
	logPath       string
	timetablePath string
	outputJSON    bool
)

// rootCmd is the root command for the CLI.
var rootCmd = &cobra.Command{
	Use:   "suhoor",
	Short: "Next Suhoor and Iftar times in six languages",
	Long: `suhoor shows the next Suhoor and Iftar times from a Ramadan timetable,
in English, Arabic, Urdu, Hindi, Turkish or Punjabi.

Running without a subcommand launches the interactive TUI.

Commands:
  tui         Launch the interactive TUI (default)
  next        Print the next Suhoor and Iftar
  schedule    Print the full timetable
  language    Get or set the display language
  appearance  Get or set dark mode and the theme
  phrases     Print the localized phrase catalog
  serve       Start the JSON API server

Examples:
  suhoor                          # Launch TUI
  suhoor next --lang ar           # Next times in Arabic
  suhoor language हिंदी            # Switch to Hindi
  suhoor appearance dark          # Switch to dark mode`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if err := config.LoadEnv(); err != nil {
			return fmt.Errorf("load .env: %w", err)
		}

		if logPath != "" {
			if err := tuilog.Init(logPath); err != nil {
				return err
			}
		}

		// Start pprof profiling if SUHOOR_PROFILE is set
		if profilePath := os.Getenv("SUHOOR_PROFILE"); profilePath != "" {
			f, err := os.Create(profilePath)
			if err != nil {
				return fmt.Errorf("create profile file: %w", err)
			}
			profileFile = f

			if err := pprof.StartCPUProfile(f); err != nil {
				f.Close()
				profileFile = nil
				return fmt.Errorf("start CPU profile: %w", err)
			}
		}
		return nil
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		if profileFile != nil {
			pprof.StopCPUProfile()
			profileFile.Close()
			profileFile = nil
		}
		return tuilog.Log.Close()
	},
	RunE: runTUI,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&logPath, "log", "", "write debug log to file")
	rootCmd.PersistentFlags().StringVar(&timetablePath, "timetable", "", "timetable TOML file (default: $SUHOOR_TIMETABLE, config, then built-in)")

	// Next command flags
	nextCmd.Flags().StringVarP(&nextLang, "lang", "l", "", "language for this run (default: saved preference)")
	nextCmd.Flags().StringVar(&nextAt, "at", "", "reference time, RFC 3339 or \"2006-01-02 15:04\" (default: now)")
	nextCmd.Flags().StringVar(&nextPolicy, "policy", "", "selection policy: upcoming or absolute (default: config, then upcoming)")
	nextCmd.Flags().BoolVar(&outputJSON, "json", false, "output as JSON")

	// Schedule command flags
	scheduleCmd.Flags().StringVarP(&scheduleLang, "lang", "l", "", "language for this run (default: saved preference)")
	scheduleCmd.Flags().StringVarP(&scheduleKind, "kind", "k", "", "only list suhoor or iftar")
	scheduleCmd.Flags().StringVar(&scheduleTemplate, "template", "", "custom Go text/template for output")
	scheduleCmd.Flags().BoolVar(&scheduleJSON, "json", false, "output as JSON")

	// Language command flags
	languageCmd.Flags().BoolVar(&languageList, "list", false, "list supported languages")
	languageCmd.Flags().BoolVar(&languageJSON, "json", false, "output the list as JSON")

	// Appearance command flags
	appearanceCmd.Flags().StringVar(&appearanceTheme, "theme", "", "use a named theme instead of the dark/light pick")
	appearanceCmd.Flags().BoolVar(&appearanceClear, "clear-theme", false, "clear the named theme and follow dark mode")
	appearanceCmd.Flags().BoolVar(&appearanceList, "list", false, "list available themes")
	appearanceCmd.Flags().BoolVar(&appearanceShow, "show", false, "show the active theme with styled samples")
	appearanceCmd.Flags().BoolVar(&appearanceJSON, "json", false, "with --show, output the theme as JSON")

	// Phrases command flags
	phrasesCmd.Flags().StringVarP(&phrasesLang, "lang", "l", "", "language (default: saved preference)")
	phrasesCmd.Flags().BoolVar(&phrasesJSON, "json", false, "output as JSON")

	// Serve command flags
	serveCmd.Flags().IntVarP(&servePort, "port", "p", server.DefaultConfig().Port, "server port")
	serveCmd.Flags().StringVar(&serveHost, "host", server.DefaultConfig().Host, "server host")

	// Version command flags
	versionCmd.Flags().BoolVar(&versionJSON, "json", false, "output as JSON")

	rootCmd.AddCommand(tuiCmd)
	rootCmd.AddCommand(nextCmd)
	rootCmd.AddCommand(scheduleCmd)
	rootCmd.AddCommand(languageCmd)
	rootCmd.AddCommand(appearanceCmd)
	rootCmd.AddCommand(phrasesCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(versionCmd)
}
