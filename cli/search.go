package cli

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/yoanbernabeu/cmdstats/stats"
)

func newSearchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "search <query>",
		Short: "Search recorded commands",
		Long: `Find recorded commands whose command line or base command contains the
query, case-insensitively. Matches are grouped by base command with the
most frequent groups first.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			query := args[0]

			s, err := openStore()
			if err != nil {
				return err
			}

			groups := stats.Search(s.Events(), query)
			if len(groups) == 0 {
				fmt.Printf("No commands found matching %q.\n", query)
				return nil
			}

			baseStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205"))
			dimStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("240"))

			fmt.Printf("Commands matching %q:\n", query)
			for _, g := range groups {
				fmt.Printf("\n%s %s\n",
					baseStyle.Render(g.Base),
					dimStyle.Render(fmt.Sprintf("(%d occurrences)", g.Count)))
				for _, c := range g.Commands {
					fmt.Printf("  %s\n", c)
				}
				if g.More > 0 {
					fmt.Printf("  %s\n", dimStyle.Render(fmt.Sprintf("... and %d more", g.More)))
				}
			}
			return nil
		},
	}
}
