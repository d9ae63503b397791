// Package cli wires the cmdstats core to its cobra command tree. All
// statistics logic lives in the stats and store packages; commands only
// parse flags, call the core, and render.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var Version = "dev"

// NewRootCmd builds the full command tree. A fresh tree per call keeps
// flag state isolated, which matters for tests.
func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "cmdstats",
		Short: "Track shell command usage over time",
		Long: `cmdstats records invoked shell commands with timestamps in a local
JSON file and derives usage statistics from them: frequency counts,
recency, filtered search, and export to interchange formats.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	root.AddCommand(
		newLogCmd(),
		newStatsCmd(),
		newTopCmd(),
		newSearchCmd(),
		newExportCmd(),
		newWatchCmd(),
	)

	root.Version = Version
	root.SetVersionTemplate(fmt.Sprintf("cmdstats %s\n", Version))

	return root
}

// GetRootCmd exposes the command tree for documentation generation.
func GetRootCmd() *cobra.Command {
	return NewRootCmd()
}

func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
