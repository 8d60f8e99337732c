package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/wethinkt/go-suhoor/internal/cli"
	"github.com/wethinkt/go-suhoor/internal/report"
	"github.com/wethinkt/go-suhoor/internal/schedule"
)

// Schedule command flags
var (
	scheduleLang     string
	scheduleKind     string
	scheduleTemplate string
	scheduleJSON     bool
)

var scheduleCmd = &cobra.Command{
	Use:   "schedule",
	Short: "Print the full timetable",
	Long: fmt.Sprintf(`Print every Suhoor and Iftar in the timetable in chronological order.

Examples:
  suhoor schedule                  # Both kinds
  suhoor schedule --kind iftar     # Iftar only
  suhoor schedule --lang tr --json
  suhoor schedule --template '{{range .}}{{.Date}} {{.Label}}{{"\n"}}{{end}}'

%s`, cli.ScheduleTemplateHelp),
	Args: cobra.NoArgs,
	RunE: runSchedule,
}

func runSchedule(cmd *cobra.Command, args []string) error {
	env, err := loadEnvironment(false)
	if err != nil {
		return err
	}
	lang, err := env.language(scheduleLang)
	if err != nil {
		return err
	}

	var kinds []schedule.Kind
	if scheduleKind != "" {
		kind, err := schedule.ParseKind(scheduleKind)
		if err != nil {
			return err
		}
		kinds = append(kinds, kind)
	}

	entries := report.BuildSchedule(env.catalog, env.timetable, lang, kinds...)

	f := cli.NewScheduleFormatter(cmd.OutOrStdout())
	switch {
	case scheduleJSON:
		return f.FormatJSON(entries)
	case scheduleTemplate != "":
		return f.FormatTemplate(entries, scheduleTemplate)
	default:
		return f.FormatTable(entries)
	}
}
