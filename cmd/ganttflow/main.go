package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"github.com/mattn/go-isatty"

	"github.com/alexanderramin/ganttflow/internal/cli"
	"github.com/alexanderramin/ganttflow/internal/gantt"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: false,
		Level:           log.WarnLevel,
	})
	// One id per invocation so interleaved runs can be told apart in logs.
	logger = logger.With("run", uuid.New().String()[:8])

	app := &cli.App{
		Config: gantt.LoadConfig(),
		Logger: logger,
	}

	// Detect interactive terminal; prompts and the pager need a tty.
	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	rootCmd := cli.NewRootCmd(app)
	return rootCmd.Execute()
}
