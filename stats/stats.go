package stats

import (
	"errors"
	"time"

	"github.com/yoanbernabeu/cmdstats/store"
)

// ErrInvalidWindow is returned when a window of zero or negative days is
// supplied. Omitting the window entirely is expressed by calling
// Summarize instead.
var ErrInvalidWindow = errors.New("window days must be a positive integer")

// Summary is the aggregated view of a set of command events.
// WindowDays is nil for an all-time summary.
type Summary struct {
	Total       int                  `json:"total_commands"`
	UniqueBases int                  `json:"unique_base_commands"`
	BaseCounts  map[string]int       `json:"base_command_counts"`
	FullCounts  map[string]int       `json:"full_command_counts"`
	LastUsed    map[string]time.Time `json:"last_used"`
	WindowDays  *int                 `json:"window_days"`
}

// Summarize aggregates all events with no time filter.
func Summarize(events []store.CommandEvent) Summary {
	return summarize(events, nil)
}

// SummarizeWindow aggregates the events whose timestamp falls within the
// trailing window of the given number of days, inclusive of the lower
// bound now-days. days must be positive.
func SummarizeWindow(events []store.CommandEvent, now time.Time, days int) (Summary, error) {
	if days <= 0 {
		return Summary{}, ErrInvalidWindow
	}
	cutoff := now.Add(-time.Duration(days) * 24 * time.Hour)

	filtered := make([]store.CommandEvent, 0, len(events))
	for _, e := range events {
		if !e.Timestamp.Before(cutoff) {
			filtered = append(filtered, e)
		}
	}
	return summarize(filtered, &days), nil
}

// summarize does the single counting pass. LastUsed is a true max over
// each base's timestamps, so the result is independent of event order.
func summarize(events []store.CommandEvent, windowDays *int) Summary {
	s := Summary{
		BaseCounts: make(map[string]int),
		FullCounts: make(map[string]int),
		LastUsed:   make(map[string]time.Time),
		WindowDays: windowDays,
	}

	for _, e := range events {
		s.Total++
		s.BaseCounts[e.BaseCommand]++
		s.FullCounts[e.Command]++
		if last, ok := s.LastUsed[e.BaseCommand]; !ok || e.Timestamp.After(last) {
			s.LastUsed[e.BaseCommand] = e.Timestamp
		}
	}
	s.UniqueBases = len(s.BaseCounts)
	return s
}
