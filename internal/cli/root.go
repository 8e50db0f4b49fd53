package cli

import (
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/alexanderramin/ganttflow/internal/gantt"
)

// App holds what the CLI commands need: the chart configuration, the
// diagnostics logger, and a probe for interactive-terminal detection.
type App struct {
	Config gantt.Config
	Logger *log.Logger

	// IsInteractive reports whether stdin is attached to a terminal;
	// non-interactive runs never prompt.
	IsInteractive func() bool
}

// NewRootCmd creates the top-level "ganttflow" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	var (
		verbose    bool
		configPath string
	)

	root := &cobra.Command{
		Use:   "ganttflow",
		Short: "Gantt chart generator for hierarchical task exports",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if verbose && app.Logger != nil {
				app.Logger.SetLevel(log.DebugLevel)
			}
			if configPath != "" {
				cfg, err := gantt.LoadConfigFile(configPath, app.Config)
				if err != nil {
					return err
				}
				app.Config = cfg
			}
			return nil
		},
	}

	addGlobalFlags(root.PersistentFlags(), &verbose, &configPath)

	root.AddCommand(
		newGenerateCmd(app),
		newStatsCmd(app),
		newShowCmd(app),
		newViewCmd(app),
	)

	return root
}

func addGlobalFlags(fs *pflag.FlagSet, verbose *bool, configPath *string) {
	fs.BoolVarP(verbose, "verbose", "v", false, "enable debug logging")
	fs.StringVar(configPath, "config", "", "chart configuration file (YAML)")
}
