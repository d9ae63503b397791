package cli

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"

	"github.com/yoanbernabeu/cmdstats/store"
)

func newWatchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "watch <history-file>",
		Short: "Follow a history file and record appended lines",
		Long: `Watch a shell history file and record every line appended to it until
interrupted. Lines are normalized the same way as the log command; a
truncated file (e.g. a rewritten history) restarts from the beginning.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runWatch(args[0])
		},
	}
}

func runWatch(path string) error {
	s, err := openStore()
	if err != nil {
		return err
	}

	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open history file: %w", err)
	}
	defer f.Close()

	// Start at the end; only lines appended from now on are recorded.
	offset, err := f.Seek(0, io.SeekEnd)
	if err != nil {
		return fmt.Errorf("seek history file: %w", err)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer watcher.Close()
	if err := watcher.Add(path); err != nil {
		return fmt.Errorf("watch %s: %w", path, err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	log.Printf("watching %s (ctrl-c to stop)", path)
	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if !ev.Has(fsnotify.Write) {
				continue
			}
			offset, err = drainAppended(s, f, offset)
			if err != nil {
				return err
			}
		case werr, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			log.Printf("watch error: %v", werr)
		}
	}
}

// drainAppended records every complete line written past offset and
// returns the new offset. A partial trailing line stays unread until its
// newline arrives. When the file shrank below offset it was truncated
// and reading restarts from the top.
func drainAppended(s *store.EventStore, f *os.File, offset int64) (int64, error) {
	info, err := f.Stat()
	if err != nil {
		return offset, fmt.Errorf("stat history file: %w", err)
	}
	if info.Size() < offset {
		offset = 0
	}

	if _, err := f.Seek(offset, io.SeekStart); err != nil {
		return offset, fmt.Errorf("seek history file: %w", err)
	}
	buf, err := io.ReadAll(f)
	if err != nil {
		return offset, fmt.Errorf("read history file: %w", err)
	}

	chunk := string(buf)
	lastNewline := strings.LastIndexByte(chunk, '\n')
	if lastNewline < 0 {
		return offset, nil
	}
	complete := chunk[:lastNewline]
	offset += int64(lastNewline) + 1

	for _, line := range strings.Split(complete, "\n") {
		event, ok := store.NormalizeLine(line, time.Now())
		if !ok {
			continue
		}
		if err := s.Append(event); err != nil {
			return offset, err
		}
	}
	return offset, nil
}
