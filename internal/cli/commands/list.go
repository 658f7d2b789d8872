package commands

import (
	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"okc/internal/config"
	"okc/internal/discovery"
	"okc/internal/ui"
)

// ListCommand handles the list command
type ListCommand struct {
	config    *config.Config
	loader    *fixtureLoader
	filter    *discovery.Filter
	formatter *ui.Formatter
}

// NewListCommand creates a new ListCommand
func NewListCommand(
	cfg *config.Config,
	loader *fixtureLoader,
	filter *discovery.Filter,
	formatter *ui.Formatter,
) *ListCommand {
	return &ListCommand{
		config:    cfg,
		loader:    loader,
		filter:    filter,
		formatter: formatter,
	}
}

// Execute runs the command
func (lc *ListCommand) Execute(cmd *cobra.Command, args []string) error {
	files, err := lc.loader.Files()
	if err != nil {
		return err
	}

	if len(files) == 0 {
		color.Yellow("No fixture files found")
		return nil
	}

	color.Green("Found %d fixture file(s):\n", len(files))
	for _, path := range files {
		assignment, _, err := lc.loader.Load(path)
		if err != nil {
			return err
		}
		tests := lc.filter.FilterTests(assignment.Tests, lc.config.Flags.TestFilter)
		lc.formatter.PrintTests(path, assignment, tests, lc.config.Flags.ShowCases)
	}
	return nil
}
