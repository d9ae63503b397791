// Package store persists the command event log as a single local JSON
// file and keeps it bounded to a retention cap. One EventStore owns one
// file; no ambient state.
package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// RetentionCap is the maximum number of events kept. When an append
// exceeds it, the oldest events are dropped silently.
const RetentionCap = 10000

// StoreFileName is the name of the JSON event log inside the data dir.
const StoreFileName = "commands.json"

// ErrCorruptState is wrapped by Load when the persisted file cannot be
// parsed. The store never resets a corrupt file on its own; callers
// decide whether to abort or start over.
var ErrCorruptState = errors.New("corrupt state")

// EventStore holds the in-memory event sequence backed by a JSON file.
// It assumes a single writer at a time; concurrent processes race with
// last-writer-wins at the file level. Append takes a best-effort flock
// to narrow that window but does not close it.
type EventStore struct {
	path   string
	events []CommandEvent
}

// NewEventStore creates a store backed by the given file path.
// Call Load before reading or appending.
func NewEventStore(path string) *EventStore {
	return &EventStore{path: path}
}

// Path returns the backing file path.
func (s *EventStore) Path() string {
	return s.path
}

// Load reads the persisted event sequence. A missing file yields an
// empty sequence and nil error. An unparseable file yields an error
// wrapping ErrCorruptState.
func (s *EventStore) Load() error {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			s.events = nil
			return nil
		}
		return fmt.Errorf("store: read %s: %w", s.path, err)
	}

	var events []CommandEvent
	if err := json.Unmarshal(data, &events); err != nil {
		return fmt.Errorf("store: parse %s: %w: %w", s.path, ErrCorruptState, err)
	}
	s.events = events
	return nil
}

// Append adds one event to the end of the sequence, enforces the
// retention cap, and persists the full sequence atomically. The event
// must have a non-empty Command; NormalizeLine guarantees this.
func (s *EventStore) Append(e CommandEvent) error {
	if e.Command == "" {
		return fmt.Errorf("store: refusing to append event with empty command")
	}

	s.events = append(s.events, e)
	if len(s.events) > RetentionCap {
		trimmed := make([]CommandEvent, RetentionCap)
		copy(trimmed, s.events[len(s.events)-RetentionCap:])
		s.events = trimmed
	}
	return s.save()
}

// Events returns the current in-memory sequence in append order.
// Callers must treat the returned slice as read-only.
func (s *EventStore) Events() []CommandEvent {
	return s.events
}

// save writes the whole sequence to a temp file in the same directory
// and renames it over the store file, so readers never observe a
// partial write. The write is wrapped in a best-effort file lock.
func (s *EventStore) save() error {
	data, err := json.MarshalIndent(s.events, "", "  ")
	if err != nil {
		return fmt.Errorf("store: marshal events: %w", err)
	}
	if s.events == nil {
		data = []byte("[]")
	}
	data = append(data, '\n')

	unlock := s.lock()
	defer unlock()

	dir := filepath.Dir(s.path)
	tmp, err := os.CreateTemp(dir, ".commands-*.json")
	if err != nil {
		return fmt.Errorf("store: create temp file: %w", err)
	}
	tmpPath := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return fmt.Errorf("store: write temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("store: close temp file: %w", err)
	}
	if err := os.Chmod(tmpPath, 0o644); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("store: chmod temp file: %w", err)
	}
	if err := os.Rename(tmpPath, s.path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("store: replace %s: %w", s.path, err)
	}
	return nil
}

// lock acquires a best-effort exclusive flock on a sibling lock file and
// returns the release func. If the lock cannot be acquired the write
// proceeds without it rather than failing the caller.
func (s *EventStore) lock() func() {
	lockFile, err := os.OpenFile(s.path+".lock", os.O_CREATE|os.O_RDWR, 0o644)
	if err != nil {
		return func() {}
	}
	if err := flockExclusive(lockFile); err != nil {
		lockFile.Close()
		return func() {}
	}
	return func() {
		_ = funlock(lockFile)
		lockFile.Close()
	}
}
