package cmd

import (
	"github.com/spf13/cobra"

	"github.com/wethinkt/go-suhoor/internal/cli"
	"github.com/wethinkt/go-suhoor/internal/i18n"
	"github.com/wethinkt/go-suhoor/internal/report"
)

// Next command flags
var (
	nextLang   string
	nextAt     string
	nextPolicy string
)

var nextCmd = &cobra.Command{
	Use:   "next",
	Short: "Print the next Suhoor and Iftar",
	Long: `Print the next Suhoor and Iftar from the timetable, localized into the
selected language.

The upcoming policy (default) picks the nearest time that has not passed
yet. The absolute policy picks the nearest time in either direction.

Examples:
  suhoor next                          # Using the saved language
  suhoor next --lang ur                # In Urdu
  suhoor next --at "2024-03-20 12:00"  # As of a given time
  suhoor next --policy absolute --json`,
	Args: cobra.NoArgs,
	RunE: runNext,
}

func runNext(cmd *cobra.Command, args []string) error {
	env, err := loadEnvironment(false)
	if err != nil {
		return err
	}
	lang, err := env.language(nextLang)
	if err != nil {
		return err
	}
	policy, err := env.policy(nextPolicy)
	if err != nil {
		return err
	}
	now, err := referenceTime(nextAt, env.timetable.Location())
	if err != nil {
		return err
	}

	next := report.BuildNext(env.catalog, env.timetable, now, lang, policy)

	f := cli.NewNextFormatter(cmd.OutOrStdout(), env.catalog.Phrase(i18n.PhraseTimesForIftarAndSuhoor, lang))
	if outputJSON {
		return f.FormatJSON(next)
	}
	return f.FormatText(next)
}
