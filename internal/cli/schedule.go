package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"
	"text/template"

	"github.com/wethinkt/go-suhoor/internal/report"
)

// DefaultScheduleTemplate renders one entry per line.
const DefaultScheduleTemplate = `{{range .}}{{.Date}}  {{.Time}}  {{.Label}}
{{end}}`

// ScheduleTemplateHelp documents the template variables available.
const ScheduleTemplateHelp = `Template Variables
==================

The template receives the list of entries. Each entry has:
  .Kind   schedule.Kind - suhoor or iftar
  .Label  string        - Localized kind name
  .At     time.Time     - The instant
  .Date   string        - Localized month and day, e.g. "मार्च ११"
  .Time   string        - Localized 24-hour time

Example custom template:
  {{range .}}{{.Label}} {{.Date}} {{.Time}}
  {{end}}`

// ScheduleFormatter formats timetable listings for CLI output.
type ScheduleFormatter struct {
	w io.Writer
}

// NewScheduleFormatter creates a new schedule formatter.
func NewScheduleFormatter(w io.Writer) *ScheduleFormatter {
	return &ScheduleFormatter{w: w}
}

// FormatTable writes entries in aligned date, time and label columns.
func (f *ScheduleFormatter) FormatTable(entries []report.Entry) error {
	w := tabwriter.NewWriter(f.w, 0, 0, 2, ' ', 0)
	for _, e := range entries {
		fmt.Fprintf(w, "%s\t%s\t%s\n", e.Date, e.Time, e.Label)
	}
	return w.Flush()
}

// FormatJSON writes entries as indented JSON.
func (f *ScheduleFormatter) FormatJSON(entries []report.Entry) error {
	enc := json.NewEncoder(f.w)
	enc.SetIndent("", "  ")
	return enc.Encode(entries)
}

// FormatTemplate renders entries through a text/template. An empty
// tmplText uses DefaultScheduleTemplate.
func (f *ScheduleFormatter) FormatTemplate(entries []report.Entry, tmplText string) error {
	if tmplText == "" {
		tmplText = DefaultScheduleTemplate
	}
	tmpl, err := template.New("schedule").Parse(tmplText)
	if err != nil {
		return fmt.Errorf("parse template: %w", err)
	}
	return tmpl.Execute(f.w, entries)
}
