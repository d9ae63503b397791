package stats_test

import (
	"encoding/csv"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/yoanbernabeu/cmdstats/stats"
)

// ---- json ----

func TestExport_JSON(t *testing.T) {
	s := summaryOf("git status", "git push", "ls")
	out, err := stats.Export(s, stats.FormatJSON, testNow)
	if err != nil {
		t.Fatalf("Export: %v", err)
	}

	var payload struct {
		Statistics stats.Summary `json:"statistics"`
		ExportDate string        `json:"export_date"`
	}
	if err := json.Unmarshal([]byte(out), &payload); err != nil {
		t.Fatalf("export is not valid json: %v", err)
	}
	if payload.Statistics.Total != 3 {
		t.Errorf("statistics.total_commands = %d, want 3", payload.Statistics.Total)
	}
	if payload.ExportDate != testNow.Format(time.RFC3339) {
		t.Errorf("export_date = %q, want %q", payload.ExportDate, testNow.Format(time.RFC3339))
	}
}

// ---- csv ----

func TestExport_CSV(t *testing.T) {
	s := summaryOf("git status", "git push", "ls")
	out, err := stats.Export(s, stats.FormatCSV, testNow)
	if err != nil {
		t.Fatalf("Export: %v", err)
	}

	records, err := csv.NewReader(strings.NewReader(out)).ReadAll()
	if err != nil {
		t.Fatalf("export is not valid csv: %v", err)
	}
	if len(records) != 3 { // header + 2 bases
		t.Fatalf("got %d records, want 3", len(records))
	}
	if got := strings.Join(records[0], ","); got != "command,count,percentage,last_used" {
		t.Errorf("header = %q", got)
	}
	if records[1][0] != "git" || records[1][1] != "2" {
		t.Errorf("first row = %v, want git with count 2", records[1])
	}
	if records[1][2] != "66.67" {
		t.Errorf("percentage = %q, want 66.67", records[1][2])
	}
}

func TestExport_CSV_EmptyTotal(t *testing.T) {
	// A summary whose maps carry bases but whose total is zero must not
	// divide by zero; every percentage renders as 0.00.
	s := stats.Summary{
		BaseCounts: map[string]int{"ls": 0},
		FullCounts: map[string]int{},
		LastUsed:   map[string]time.Time{},
	}
	out, err := stats.Export(s, stats.FormatCSV, testNow)
	if err != nil {
		t.Fatalf("Export: %v", err)
	}
	records, err := csv.NewReader(strings.NewReader(out)).ReadAll()
	if err != nil {
		t.Fatalf("export is not valid csv: %v", err)
	}
	for _, rec := range records[1:] {
		if rec[2] != "0.00" {
			t.Errorf("percentage = %q, want 0.00 when total is 0", rec[2])
		}
	}
}

func TestExport_CSV_QuotesCommas(t *testing.T) {
	s := summaryOf("a,b --flag")
	out, err := stats.Export(s, stats.FormatCSV, testNow)
	if err != nil {
		t.Fatalf("Export: %v", err)
	}
	records, err := csv.NewReader(strings.NewReader(out)).ReadAll()
	if err != nil {
		t.Fatalf("export is not valid csv: %v", err)
	}
	if records[1][0] != "a,b" {
		t.Errorf("command field = %q, want a,b preserved through quoting", records[1][0])
	}
}

// ---- text ----

func TestExport_Text(t *testing.T) {
	s := summaryOf("git status", "ls")
	out, err := stats.Export(s, stats.FormatText, testNow)
	if err != nil {
		t.Fatalf("Export: %v", err)
	}
	if !strings.Contains(out, "Total commands: 2") {
		t.Errorf("text export missing totals:\n%s", out)
	}
	if !strings.Contains(out, "git") || !strings.Contains(out, "ls") {
		t.Errorf("text export missing bases:\n%s", out)
	}
}

// ---- toon ----

func TestExport_TOON(t *testing.T) {
	s := summaryOf("git status", "ls")
	out, err := stats.Export(s, stats.FormatTOON, testNow)
	if err != nil {
		t.Fatalf("Export: %v", err)
	}
	if out == "" || !strings.HasSuffix(out, "\n") {
		t.Errorf("toon export should be non-empty and newline-terminated, got %q", out)
	}
}

// ---- errors ----

func TestExport_UnknownFormat(t *testing.T) {
	if _, err := stats.Export(summaryOf("ls"), "xml", testNow); err == nil {
		t.Error("expected an error for an unknown format")
	}
}

// ---- Percentage ----

func TestPercentage(t *testing.T) {
	if got := stats.Percentage(1, 4); got != 25 {
		t.Errorf("Percentage(1,4) = %v, want 25", got)
	}
	if got := stats.Percentage(5, 0); got != 0 {
		t.Errorf("Percentage(5,0) = %v, want 0", got)
	}
}
