package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/yoanbernabeu/cmdstats/stats"
)

// reportListLimit caps how many bases the human stats report lists.
const reportListLimit = 20

func newStatsCmd() *cobra.Command {
	var (
		days   int
		asJSON bool
	)

	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Show command usage statistics",
		Long: `Display aggregate statistics over the recorded command log: total and
unique command counts and the most used commands with recency.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openStore()
			if err != nil {
				return err
			}

			summary, err := summarizeForFlag(s.Events(), days, cmd.Flags().Changed("days"))
			if err != nil {
				return err
			}

			if asJSON {
				enc := json.NewEncoder(os.Stdout)
				enc.SetIndent("", "  ")
				return enc.Encode(summary)
			}
			return outputStatsHuman(summary)
		},
	}

	cmd.Flags().IntVar(&days, "days", 0, "Limit statistics to the last N days")
	cmd.Flags().BoolVarP(&asJSON, "json", "j", false, "Output the summary as JSON")

	return cmd
}

// outputStatsHuman renders the summary using lipgloss styles.
func outputStatsHuman(summary stats.Summary) error {
	headerStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205"))
	labelStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("252")).Width(18)
	valueStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("229")).Bold(true)
	dimStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("62")).
		Padding(1, 2)

	period := "all time"
	if summary.WindowDays != nil {
		period = fmt.Sprintf("last %d days", *summary.WindowDays)
	}

	content := headerStyle.Render("cmdstats — Command Usage Report") + "\n\n"
	content += labelStyle.Render("Period") + valueStyle.Render(period) + "\n"
	content += labelStyle.Render("Total commands") + valueStyle.Render(fmt.Sprintf("%d", summary.Total)) + "\n"
	content += labelStyle.Render("Unique commands") + valueStyle.Render(fmt.Sprintf("%d", summary.UniqueBases)) + "\n"

	top, err := stats.TopN(summary, reportListLimit)
	if err != nil {
		return err
	}
	if len(top) > 0 {
		content += "\n" + dimStyle.Render("Most used:") + "\n"
		for i, bc := range top {
			line := fmt.Sprintf("%2d. %-24s %5d times (%5.1f%%)  last: %s",
				i+1, bc.Base, bc.Count,
				stats.Percentage(bc.Count, summary.Total),
				formatLastUsed(summary, bc.Base))
			content += line + "\n"
		}
	}

	fmt.Println(boxStyle.Render(content))
	return nil
}
