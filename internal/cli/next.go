// Package cli provides CLI output formatting utilities.
package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/wethinkt/go-suhoor/internal/report"
)

// NextFormatter formats the next Suhoor and Iftar for CLI output.
type NextFormatter struct {
	w       io.Writer
	heading string
}

// NewNextFormatter creates a new formatter. heading is printed above the
// event rows, usually the localized timesForIftarAndSuhoor phrase.
func NewNextFormatter(w io.Writer, heading string) *NextFormatter {
	return &NextFormatter{w: w, heading: heading}
}

// FormatText writes the notice lines, then one aligned row per event:
//
//	Suhoor  March 12, 04:41  in 16h 41m  (also 05:10)
func (f *NextFormatter) FormatText(n report.Next) error {
	if n.Notice != "" {
		fmt.Fprintln(f.w, n.Notice)
	}
	if n.Detail != "" {
		fmt.Fprintln(f.w, n.Detail)
	}
	if len(n.Events) == 0 {
		return nil
	}
	if n.Notice != "" {
		fmt.Fprintln(f.w)
	}
	if f.heading != "" {
		fmt.Fprintln(f.w, f.heading)
	}

	w := tabwriter.NewWriter(f.w, 0, 0, 2, ' ', 0)
	for _, ev := range n.Events {
		countdown := ev.Countdown
		if countdown == "" {
			countdown = "-"
		}
		line := fmt.Sprintf("%s\t%s\t%s", ev.Label, ev.Display, countdown)
		if len(ev.SameDay) > 0 {
			line += "\t(" + strings.Join(ev.SameDay, ", ") + ")"
		}
		fmt.Fprintln(w, line)
	}
	return w.Flush()
}

// FormatJSON writes n as indented JSON.
func (f *NextFormatter) FormatJSON(n report.Next) error {
	enc := json.NewEncoder(f.w)
	enc.SetIndent("", "  ")
	return enc.Encode(n)
}
