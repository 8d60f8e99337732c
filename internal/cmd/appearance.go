package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/wethinkt/go-suhoor/internal/cli"
	"github.com/wethinkt/go-suhoor/internal/config"
	"github.com/wethinkt/go-suhoor/internal/tui/theme"
)

// Appearance command flags
var (
	appearanceTheme string
	appearanceClear bool
	appearanceList  bool
	appearanceShow  bool
	appearanceJSON  bool
)

var appearanceCmd = &cobra.Command{
	Use:   "appearance [dark|light]",
	Short: "Get or set dark mode and the theme",
	Long: `Get or set the appearance. dark and light set the dark mode preference;
--theme picks a named theme (built-in or from ~/.suhoor/themes/) that
overrides it.

Examples:
  suhoor appearance               # show current appearance
  suhoor appearance dark          # enable dark mode
  suhoor appearance --theme mine  # use ~/.suhoor/themes/mine.json
  suhoor appearance --clear-theme # follow dark mode again
  suhoor appearance --list        # list themes
  suhoor appearance --show --json # dump the active theme`,
	Args:      cobra.MaximumNArgs(1),
	ValidArgs: []string{"dark", "light"},
	RunE:      runAppearance,
}

func runAppearance(cmd *cobra.Command, args []string) error {
	store, err := config.Open("")
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()

	if len(args) == 1 {
		switch strings.ToLower(args[0]) {
		case "dark":
			err = store.SetDarkMode(true)
		case "light":
			err = store.SetDarkMode(false)
		default:
			return fmt.Errorf("unknown appearance %q: use dark or light", args[0])
		}
		if err != nil {
			return err
		}
	}

	switch {
	case appearanceClear:
		if err := store.SetTheme(""); err != nil {
			return err
		}
	case appearanceTheme != "":
		if _, err := theme.LoadByName(appearanceTheme); err != nil {
			return fmt.Errorf("failed to load theme %q: %w", appearanceTheme, err)
		}
		if err := store.SetTheme(appearanceTheme); err != nil {
			return err
		}
	}

	cfg := store.Config()
	active, err := theme.Resolve(cfg)
	if err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "warning: %v\n", err)
	}

	switch {
	case appearanceList:
		return cli.ListThemes(out, active.Name)
	case appearanceShow && appearanceJSON:
		return cli.NewThemeDisplay(out, active).ShowJSON()
	case appearanceShow:
		return cli.NewThemeDisplay(out, active).Show()
	}

	mode := "light"
	if cfg.IsDarkMode {
		mode = "dark"
	}
	fmt.Fprintf(out, "Dark mode: %s\n", mode)
	fmt.Fprintf(out, "Theme:     %s\n", active.Name)
	return nil
}
