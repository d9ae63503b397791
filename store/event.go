package store

import (
	"regexp"
	"strings"
	"time"
)

// CommandEvent is a single recorded shell command invocation.
type CommandEvent struct {
	Command     string    `json:"command"`      // normalized command line
	BaseCommand string    `json:"base_command"` // first token of Command
	Timestamp   time.Time `json:"timestamp"`    // assigned at log time
	FullLine    string    `json:"full_line"`    // raw input, untouched
}

// historyOrdinal matches the leading entry number emitted by `history`,
// e.g. "  123  git status".
var historyOrdinal = regexp.MustCompile(`^\d+\s+`)

// NormalizeLine turns a raw input line into a CommandEvent.
// A leading history ordinal (digits followed by whitespace) is stripped,
// then surrounding whitespace. Lines that are empty after stripping
// produce no event; the second return value is false. This is the normal
// outcome for blank input, not an error.
//
// FullLine keeps the input exactly as received. Timestamp is the
// caller-supplied clock value so tests can pin it.
func NormalizeLine(raw string, now time.Time) (CommandEvent, bool) {
	command := strings.TrimSpace(raw)
	command = historyOrdinal.ReplaceAllString(command, "")
	command = strings.TrimSpace(command)
	if command == "" {
		return CommandEvent{}, false
	}

	base := command
	if fields := strings.Fields(command); len(fields) > 0 {
		base = fields[0]
	}

	return CommandEvent{
		Command:     command,
		BaseCommand: base,
		Timestamp:   now,
		FullLine:    raw,
	}, true
}
