package cli

import (
	"errors"
	"fmt"
	"time"

	"github.com/yoanbernabeu/cmdstats/config"
	"github.com/yoanbernabeu/cmdstats/stats"
	"github.com/yoanbernabeu/cmdstats/store"
)

// openStore resolves configuration and loads the event log. A corrupt
// log aborts with a message naming the file; it is never reset here.
func openStore() (*store.EventStore, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	if err := cfg.EnsureDataDir(); err != nil {
		return nil, err
	}

	s := store.NewEventStore(cfg.StorePath())
	if err := s.Load(); err != nil {
		if errors.Is(err, store.ErrCorruptState) {
			return nil, fmt.Errorf("command log %s cannot be parsed; repair or remove the file to continue: %w", s.Path(), err)
		}
		return nil, err
	}
	return s, nil
}

// summarizeForFlag aggregates all time when the --days flag was not
// given, otherwise over the trailing window. A non-positive value is a
// user error surfaced with the flag name.
func summarizeForFlag(events []store.CommandEvent, days int, daysSet bool) (stats.Summary, error) {
	if !daysSet {
		return stats.Summarize(events), nil
	}
	summary, err := stats.SummarizeWindow(events, time.Now(), days)
	if err != nil {
		return stats.Summary{}, fmt.Errorf("invalid --days value %d: %w", days, err)
	}
	return summary, nil
}

// formatLastUsed renders a recency timestamp for report output.
func formatLastUsed(s stats.Summary, base string) string {
	ts, ok := s.LastUsed[base]
	if !ok {
		return "never"
	}
	return ts.Local().Format("2006-01-02 15:04")
}
