package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexanderramin/ganttflow/internal/render"
)

func newShowCmd(app *App) *cobra.Command {
	var width int

	cmd := &cobra.Command{
		Use:   "show <input>",
		Short: "Print the chart to the terminal",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			geo, err := buildChart(app, args[0])
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), render.Text(geo, width))
			return nil
		},
	}

	cmd.Flags().IntVar(&width, "width", 100, "chart width in columns")

	return cmd
}
