package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"

	"github.com/alexanderramin/ganttflow/internal/cli/formatter"
	"github.com/alexanderramin/ganttflow/internal/render"
)

func newGenerateCmd(app *App) *cobra.Command {
	var (
		output string
		force  bool
		title  string
	)

	cmd := &cobra.Command{
		Use:   "generate <input>",
		Short: "Build a chart file from a task export",
		Long:  "Reads a CSV or JSON task export, runs the layout pipeline, and writes an SVG or HTML chart. The output format follows the output file extension.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			input := args[0]
			if output == "" {
				base := strings.TrimSuffix(filepath.Base(input), filepath.Ext(input))
				output = base + ".html"
			}

			geo, err := buildChart(app, input)
			if err != nil {
				return err
			}

			var content string
			switch strings.ToLower(filepath.Ext(output)) {
			case ".svg":
				content = render.SVG(geo, render.DefaultSVGOptions())
			case ".html", ".htm":
				opts := render.DefaultHTMLOptions()
				if title != "" {
					opts.Title = title
				}
				content = render.HTML(geo, opts)
			default:
				return fmt.Errorf("unsupported output format %q (use .svg or .html)", filepath.Ext(output))
			}

			if err := confirmOverwrite(app, output, force); err != nil {
				return err
			}
			if err := os.WriteFile(output, []byte(content), 0o644); err != nil {
				return fmt.Errorf("writing %s: %w", output, err)
			}

			fmt.Fprintln(cmd.OutOrStdout(), formatter.Success(fmt.Sprintf(
				"wrote %s (%d tasks, %d milestones, %d days)",
				output, geo.Stats.RegularCount, geo.Stats.MilestoneCount, geo.Stats.SpanDays)))
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (.svg or .html; default <input>.html)")
	cmd.Flags().BoolVar(&force, "force", false, "overwrite the output file without asking")
	cmd.Flags().StringVar(&title, "title", "", "chart title for HTML output")

	return cmd
}

// confirmOverwrite guards an existing output file. Interactive runs get a
// huh confirm prompt; non-interactive runs require --force.
func confirmOverwrite(app *App, path string, force bool) error {
	if force {
		return nil
	}
	if _, err := os.Stat(path); err != nil {
		return nil
	}

	if app.IsInteractive == nil || !app.IsInteractive() {
		return fmt.Errorf("%s already exists (use --force to overwrite)", path)
	}

	var overwrite bool
	prompt := huh.NewConfirm().
		Title(fmt.Sprintf("Overwrite %s?", path)).
		Value(&overwrite)
	if err := prompt.Run(); err != nil {
		return err
	}
	if !overwrite {
		return fmt.Errorf("aborted: %s left unchanged", path)
	}
	return nil
}
