package cli

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/yoanbernabeu/cmdstats/store"
)

func newLogCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "log <line>",
		Short: "Record a command invocation",
		Long: `Record one command line in the local event log.

A leading history ordinal (digits followed by whitespace, as printed by
the shell history builtin) is stripped before recording. Input that is
empty after stripping is silently ignored. Prints nothing on success.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			event, ok := store.NormalizeLine(args[0], time.Now())
			if !ok {
				// Blank or ordinal-only input: a valid no-op.
				return nil
			}

			s, err := openStore()
			if err != nil {
				return err
			}
			return s.Append(event)
		},
	}
}
