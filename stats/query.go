package stats

import (
	"fmt"
	"sort"
	"strings"

	"github.com/yoanbernabeu/cmdstats/store"
)

// MaxGroupCommands is how many distinct full commands a search group
// lists before collapsing the rest into a remainder count.
const MaxGroupCommands = 5

// BaseCount is one (base command, occurrence count) ranking entry.
type BaseCount struct {
	Base  string `json:"base_command"`
	Count int    `json:"count"`
}

// TopN returns the n base commands with the highest counts, descending.
// Equal counts order ascending by base command so the ranking is
// deterministic. n = 0 yields an empty slice; negative n is an error.
func TopN(s Summary, n int) ([]BaseCount, error) {
	if n < 0 {
		return nil, fmt.Errorf("top count must not be negative, got %d", n)
	}

	ranked := rankedBases(s)
	if n < len(ranked) {
		ranked = ranked[:n]
	}
	return ranked, nil
}

// rankedBases returns every base command sorted by descending count,
// ties ascending by name.
func rankedBases(s Summary) []BaseCount {
	ranked := make([]BaseCount, 0, len(s.BaseCounts))
	for base, count := range s.BaseCounts {
		ranked = append(ranked, BaseCount{Base: base, Count: count})
	}
	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].Count != ranked[j].Count {
			return ranked[i].Count > ranked[j].Count
		}
		return ranked[i].Base < ranked[j].Base
	})
	return ranked
}

// SearchGroup is the set of matches for one base command.
type SearchGroup struct {
	Base     string   `json:"base_command"`
	Count    int      `json:"count"`          // total matching events
	Commands []string `json:"commands"`       // distinct full commands, sorted, capped
	More     int      `json:"more,omitempty"` // distinct commands beyond the cap
}

// Search returns events whose command or base command contains query,
// case-insensitively, grouped by base command. Groups are sorted by
// descending match count, ties ascending by base. Within a group the
// distinct full commands are sorted ascending and capped at
// MaxGroupCommands; More holds how many were cut. An empty result is a
// normal outcome, not an error.
func Search(events []store.CommandEvent, query string) []SearchGroup {
	q := strings.ToLower(query)

	counts := make(map[string]int)
	distinct := make(map[string]map[string]bool)
	for _, e := range events {
		if !strings.Contains(strings.ToLower(e.Command), q) &&
			!strings.Contains(strings.ToLower(e.BaseCommand), q) {
			continue
		}
		counts[e.BaseCommand]++
		if distinct[e.BaseCommand] == nil {
			distinct[e.BaseCommand] = make(map[string]bool)
		}
		distinct[e.BaseCommand][e.Command] = true
	}

	groups := make([]SearchGroup, 0, len(counts))
	for base, count := range counts {
		commands := make([]string, 0, len(distinct[base]))
		for cmd := range distinct[base] {
			commands = append(commands, cmd)
		}
		sort.Strings(commands)

		more := 0
		if len(commands) > MaxGroupCommands {
			more = len(commands) - MaxGroupCommands
			commands = commands[:MaxGroupCommands]
		}
		groups = append(groups, SearchGroup{
			Base:     base,
			Count:    count,
			Commands: commands,
			More:     more,
		})
	}
	sort.Slice(groups, func(i, j int) bool {
		if groups[i].Count != groups[j].Count {
			return groups[i].Count > groups[j].Count
		}
		return groups[i].Base < groups[j].Base
	})
	return groups
}
