package cli

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/yoanbernabeu/cmdstats/stats"
)

func newExportCmd() *cobra.Command {
	var (
		format string
		output string
	)

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export statistics to an interchange format",
		Long: `Serialize all-time statistics to json, csv, text, or toon and print
them to stdout, or write them to a file with --output.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openStore()
			if err != nil {
				return err
			}

			summary := stats.Summarize(s.Events())
			rendered, err := stats.Export(summary, format, time.Now())
			if err != nil {
				return err
			}

			if output == "" {
				fmt.Print(rendered)
				return nil
			}
			if err := os.WriteFile(output, []byte(rendered), 0o644); err != nil {
				return fmt.Errorf("write %s: %w", output, err)
			}
			fmt.Printf("Statistics exported to: %s\n", output)
			return nil
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", stats.FormatJSON,
		fmt.Sprintf("Export format (%s)", strings.Join(stats.Formats, "|")))
	cmd.Flags().StringVarP(&output, "output", "o", "", "Write to this file instead of stdout")

	return cmd
}
