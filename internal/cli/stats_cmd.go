package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/alexanderramin/ganttflow/internal/cli/formatter"
)

func newStatsCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "stats <input>",
		Short: "Show aggregate chart figures for a task export",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			geo, err := buildChart(app, args[0])
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, formatter.Header("Project stats"))
			fmt.Fprint(out, formatter.RenderTable(
				[]string{"Tasks", "Milestones", "Span"},
				[][]string{{
					strconv.Itoa(geo.Stats.RegularCount),
					strconv.Itoa(geo.Stats.MilestoneCount),
					fmt.Sprintf("%d days", geo.Stats.SpanDays),
				}},
			))
			if len(geo.Milestones) > 0 {
				fmt.Fprintln(out, formatter.MilestoneBadge()+formatter.Dim(" markers included"))
			}
			return nil
		},
	}
}
