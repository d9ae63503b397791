package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/yoanbernabeu/cmdstats/stats"
)

const defaultTopCount = 10

func newTopCmd() *cobra.Command {
	var days int

	cmd := &cobra.Command{
		Use:   "top [N]",
		Short: "Show the most used commands",
		Long:  "Display the top N base commands by occurrence count (default 10).",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n := defaultTopCount
			if len(args) == 1 {
				parsed, err := strconv.Atoi(args[0])
				if err != nil {
					return fmt.Errorf("invalid count %q: expected an integer", args[0])
				}
				n = parsed
			}

			s, err := openStore()
			if err != nil {
				return err
			}
			summary, err := summarizeForFlag(s.Events(), days, cmd.Flags().Changed("days"))
			if err != nil {
				return err
			}
			top, err := stats.TopN(summary, n)
			if err != nil {
				return err
			}

			fmt.Printf("Top %d commands:\n", n)
			for i, bc := range top {
				fmt.Printf("%2d. %-30s %6d times (%5.1f%%)\n",
					i+1, bc.Base, bc.Count, stats.Percentage(bc.Count, summary.Total))
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&days, "days", 0, "Limit statistics to the last N days")

	return cmd
}
