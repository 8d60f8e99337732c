package cli

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/wethinkt/go-suhoor/internal/i18n"
	"github.com/wethinkt/go-suhoor/internal/report"
	"github.com/wethinkt/go-suhoor/internal/schedule"
	"github.com/wethinkt/go-suhoor/internal/tui/theme"
)

func sampleNext() report.Next {
	return report.Next{
		Language: "en",
		Policy:   "upcoming",
		Status:   schedule.StatusActive,
		Events: []report.Event{
			{Kind: schedule.Suhoor, Label: "Suhoor", Display: "March 12, 04:41", Countdown: "in 16h 41m"},
			{Kind: schedule.Iftar, Label: "Iftar", Display: "March 11, 18:02", Countdown: "in 6h 02m", SameDay: []string{"18:30"}},
		},
	}
}

func TestNextFormatText(t *testing.T) {
	var buf bytes.Buffer
	if err := NewNextFormatter(&buf, "Below are the times for the next Suhoor and Iftar").FormatText(sampleNext()); err != nil {
		t.Fatalf("FormatText error: %v", err)
	}

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 3 {
		t.Fatalf("expected 3 lines, got %d: %q", len(lines), buf.String())
	}
	if lines[0] != "Below are the times for the next Suhoor and Iftar" {
		t.Errorf("heading = %q", lines[0])
	}
	if !strings.HasPrefix(lines[1], "Suhoor  March 12, 04:41") {
		t.Errorf("suhoor row = %q", lines[1])
	}
	if !strings.Contains(lines[2], "in 6h 02m") || !strings.HasSuffix(lines[2], "(18:30)") {
		t.Errorf("iftar row = %q", lines[2])
	}
}

func TestNextFormatText_Ended(t *testing.T) {
	n := report.Next{
		Status: schedule.StatusEnded,
		Notice: "Ramadan has ended, see you next year",
		Events: []report.Event{},
	}

	var buf bytes.Buffer
	if err := NewNextFormatter(&buf, "heading").FormatText(n); err != nil {
		t.Fatalf("FormatText error: %v", err)
	}
	if got := buf.String(); got != "Ramadan has ended, see you next year\n" {
		t.Errorf("output = %q", got)
	}
}

func TestNextFormatJSON(t *testing.T) {
	var buf bytes.Buffer
	if err := NewNextFormatter(&buf, "").FormatJSON(sampleNext()); err != nil {
		t.Fatalf("FormatJSON error: %v", err)
	}

	var decoded map[string]any
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if decoded["status"] != "active" {
		t.Errorf("status = %v", decoded["status"])
	}
	events := decoded["events"].([]any)
	if first := events[0].(map[string]any); first["kind"] != "suhoor" {
		t.Errorf("first kind = %v", first["kind"])
	}
}

func sampleEntries() []report.Entry {
	at := time.Date(2024, 3, 11, 4, 43, 0, 0, time.UTC)
	return []report.Entry{
		{Kind: schedule.Suhoor, Label: "Suhoor", At: at, Date: "March 11", Time: "04:43"},
		{Kind: schedule.Iftar, Label: "Iftar", At: at.Add(13 * time.Hour), Date: "March 11", Time: "17:43"},
	}
}

func TestScheduleFormatTable(t *testing.T) {
	var buf bytes.Buffer
	if err := NewScheduleFormatter(&buf).FormatTable(sampleEntries()); err != nil {
		t.Fatalf("FormatTable error: %v", err)
	}

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %d", len(lines))
	}
	if lines[0] != "March 11  04:43  Suhoor" {
		t.Errorf("line 0 = %q", lines[0])
	}
}

func TestScheduleFormatTemplate(t *testing.T) {
	var buf bytes.Buffer
	f := NewScheduleFormatter(&buf)

	if err := f.FormatTemplate(sampleEntries(), "{{range .}}{{.Label}}={{.Time}};{{end}}"); err != nil {
		t.Fatalf("FormatTemplate error: %v", err)
	}
	if got := buf.String(); got != "Suhoor=04:43;Iftar=17:43;" {
		t.Errorf("output = %q", got)
	}

	buf.Reset()
	if err := f.FormatTemplate(sampleEntries(), ""); err != nil {
		t.Fatalf("default template error: %v", err)
	}
	if !strings.Contains(buf.String(), "March 11  04:43  Suhoor") {
		t.Errorf("default template output = %q", buf.String())
	}

	if err := f.FormatTemplate(nil, "{{.Broken"); err == nil {
		t.Error("expected parse error for malformed template")
	}
}

func TestListLanguages(t *testing.T) {
	var buf bytes.Buffer
	if err := ListLanguages(&buf, i18n.AvailableLanguages(i18n.Hindi)); err != nil {
		t.Fatalf("ListLanguages error: %v", err)
	}

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 6 {
		t.Fatalf("expected 6 lines, got %d", len(lines))
	}
	if !strings.HasPrefix(lines[3], "* hi") {
		t.Errorf("Hindi should be marked active: %q", lines[3])
	}
	if !strings.HasSuffix(lines[1], "rtl") {
		t.Errorf("Arabic should be marked rtl: %q", lines[1])
	}
}

func TestThemeDisplay(t *testing.T) {
	var buf bytes.Buffer
	if err := NewThemeDisplay(&buf, theme.ForMode(true)).Show(); err != nil {
		t.Fatalf("Show error: %v", err)
	}
	out := buf.String()
	for _, want := range []string{"Theme:", "dark", "Times", "Countdown", "Settings"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q", want)
		}
	}

	buf.Reset()
	if err := NewThemeDisplay(&buf, theme.ForMode(false)).ShowJSON(); err != nil {
		t.Fatalf("ShowJSON error: %v", err)
	}
	var decoded theme.Theme
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if decoded.Name != "light" {
		t.Errorf("name = %q, want light", decoded.Name)
	}
}

func TestListThemes(t *testing.T) {
	t.Setenv("SUHOOR_CONFIG_DIR", t.TempDir())

	var buf bytes.Buffer
	if err := ListThemes(&buf, "dark"); err != nil {
		t.Fatalf("ListThemes error: %v", err)
	}
	out := buf.String()
	if !strings.Contains(out, "* dark") {
		t.Errorf("dark should be marked active:\n%s", out)
	}
	if !strings.Contains(out, "  light") {
		t.Errorf("light should be listed:\n%s", out)
	}
}
