package commands

import (
	"context"
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"okc/internal/config"
	"okc/internal/execution"
	"okc/internal/ui"
)

// CheckCommand handles the check command
type CheckCommand struct {
	config    *config.Config
	loader    *fixtureLoader
	executor  execution.Executor
	formatter *ui.Formatter
}

// NewCheckCommand creates a new CheckCommand
func NewCheckCommand(
	cfg *config.Config,
	loader *fixtureLoader,
	executor execution.Executor,
	formatter *ui.Formatter,
) *CheckCommand {
	return &CheckCommand{
		config:    cfg,
		loader:    loader,
		executor:  executor,
		formatter: formatter,
	}
}

// Execute runs the command
func (cc *CheckCommand) Execute(cmd *cobra.Command, args []string) error {
	files, err := cc.loader.Files()
	if err != nil {
		return err
	}

	if len(files) == 0 {
		color.Yellow("No fixture files to check")
		return nil
	}

	// Create and set progress bar
	if pool, ok := cc.executor.(*execution.WorkerPool); ok {
		pool.SetProgress(ui.NewProgressBar(len(files)))
	}

	results, duration, err := cc.executor.Check(commandContext(cmd), files)
	if err != nil {
		return err
	}

	cc.formatter.PrintCheckSummary(results, duration, cc.config.Workers)

	for _, r := range results {
		if !r.Success() {
			return fmt.Errorf("fixture check failed")
		}
	}
	return nil
}

func commandContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}
