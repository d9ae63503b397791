package stats

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/alpkeskin/gotoon"
)

// Format selects an export encoding.
type Format = string

const (
	FormatJSON Format = "json"
	FormatCSV  Format = "csv"
	FormatText Format = "text"
	FormatTOON Format = "toon"
)

// Formats lists the supported export formats for help text and
// validation messages.
var Formats = []Format{FormatJSON, FormatCSV, FormatText, FormatTOON}

// exportRow is one per-base line of the csv and toon encodings.
type exportRow struct {
	Command    string  `json:"command"`
	Count      int     `json:"count"`
	Percentage float64 `json:"percentage"`
	LastUsed   string  `json:"last_used"`
}

// Export serializes a Summary to the given format and returns it as a
// string. now stamps the json export date. Export has no side effects;
// writing the result anywhere is the caller's concern.
func Export(s Summary, format Format, now time.Time) (string, error) {
	switch format {
	case FormatJSON:
		return exportJSON(s, now)
	case FormatCSV:
		return exportCSV(s)
	case FormatText:
		return exportText(s), nil
	case FormatTOON:
		return exportTOON(s)
	default:
		return "", fmt.Errorf("unknown export format %q (supported: %s)",
			format, strings.Join(Formats, ", "))
	}
}

func exportJSON(s Summary, now time.Time) (string, error) {
	payload := struct {
		Statistics Summary `json:"statistics"`
		ExportDate string  `json:"export_date"`
	}{
		Statistics: s,
		ExportDate: now.Format(time.RFC3339),
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetIndent("", "  ")
	if err := enc.Encode(payload); err != nil {
		return "", fmt.Errorf("encode json export: %w", err)
	}
	return buf.String(), nil
}

func exportCSV(s Summary) (string, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write([]string{"command", "count", "percentage", "last_used"}); err != nil {
		return "", fmt.Errorf("write csv header: %w", err)
	}
	for _, row := range exportRows(s) {
		record := []string{
			row.Command,
			strconv.Itoa(row.Count),
			fmt.Sprintf("%.2f", row.Percentage),
			row.LastUsed,
		}
		if err := w.Write(record); err != nil {
			return "", fmt.Errorf("write csv row: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return "", fmt.Errorf("flush csv: %w", err)
	}
	return buf.String(), nil
}

// exportText is a human-readable rendering; not stable or parseable.
func exportText(s Summary) string {
	var b strings.Builder
	b.WriteString("Command Usage Statistics\n")
	if s.WindowDays != nil {
		fmt.Fprintf(&b, "Period: last %d days\n", *s.WindowDays)
	} else {
		b.WriteString("Period: all time\n")
	}
	fmt.Fprintf(&b, "Total commands: %d\n", s.Total)
	fmt.Fprintf(&b, "Unique commands: %d\n\n", s.UniqueBases)

	for i, row := range exportRows(s) {
		last := row.LastUsed
		if last == "" {
			last = "never"
		}
		fmt.Fprintf(&b, "%3d. %-30s %6d times (%5.1f%%)  last: %s\n",
			i+1, row.Command, row.Count, row.Percentage, last)
	}
	return b.String()
}

func exportTOON(s Summary) (string, error) {
	output, err := gotoon.Encode(exportRows(s))
	if err != nil {
		return "", fmt.Errorf("failed to encode TOON: %w", err)
	}
	return output + "\n", nil
}

// exportRows flattens a Summary into ranked per-base rows, descending
// by count with ties ascending by base command.
func exportRows(s Summary) []exportRow {
	ranked := rankedBases(s)
	rows := make([]exportRow, len(ranked))
	for i, bc := range ranked {
		last := ""
		if ts, ok := s.LastUsed[bc.Base]; ok {
			last = ts.Format(time.RFC3339)
		}
		rows[i] = exportRow{
			Command:    bc.Base,
			Count:      bc.Count,
			Percentage: Percentage(bc.Count, s.Total),
			LastUsed:   last,
		}
	}
	return rows
}

// Percentage returns count/total*100, or 0 when total is 0 so empty
// summaries export cleanly.
func Percentage(count, total int) float64 {
	if total == 0 {
		return 0
	}
	return float64(count) / float64(total) * 100
}
