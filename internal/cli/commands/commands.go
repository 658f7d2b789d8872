package commands

import (
	"okc/internal/cases"
	"okc/internal/catalog"
	"okc/internal/cli"
	"okc/internal/config"
	"okc/internal/discovery"
	"okc/internal/domain"
	"okc/internal/execution"
	"okc/internal/ui"

	"github.com/spf13/cobra"
)

// Commands holds all CLI commands
type Commands struct {
	List    *ListCommand
	Check   *CheckCommand
	Lock    *LockCommand
	Unlock  *LockCommand
	View    *ViewCommand
	Publish *PublishCommand
}

// NewCommands creates all commands with dependencies
func NewCommands(cfg *config.Config) *Commands {
	return NewCommandsWithRegistry(cfg, cases.DefaultRegistry())
}

// NewCommandsWithRegistry creates all commands decoding cases through registry
func NewCommandsWithRegistry(cfg *config.Config, registry *domain.Registry) *Commands {
	// Initialize dependencies
	scanner := discovery.NewScanner(cfg.PathsToIgnore)
	filter := discovery.NewFilter()
	loader := newFixtureLoader(cfg, scanner, filter, registry)
	checker := execution.NewChecker(registry)
	scheduler := execution.NewSizeBalancedScheduler()
	executor := execution.NewWorkerPool(cfg, checker, scheduler)
	formatter := ui.NewFormatter(cfg)
	publisher := catalog.NewPublisher(cfg)

	return &Commands{
		List:    NewListCommand(cfg, loader, filter, formatter),
		Check:   NewCheckCommand(cfg, loader, executor, formatter),
		Lock:    NewLockCommand(cfg, filter, registry, true),
		Unlock:  NewLockCommand(cfg, filter, registry, false),
		View:    NewViewCommand(cfg, registry),
		Publish: NewPublishCommand(cfg, loader, filter, publisher),
	}
}

// Register registers all commands with cobra
func (c *Commands) Register(rootCmd *cobra.Command, flags *cli.Flags, cfg *config.Config) {
	// Update config with flags after parsing
	applyFlags := func(cmd *cobra.Command, args []string) error {
		cfg.ApplyFlags(flags.ToConfigFlags())
		return nil
	}

	// List command
	listCmd := &cobra.Command{
		Use:     "list",
		Short:   "List tests in fixture files",
		Long:    "Scan fixture files and list their tests with points, case counts and lock state",
		RunE:    c.List.Execute,
		PreRunE: applyFlags,
	}
	listCmd.Flags().StringVarP(&flags.FixturePath, "fixture-path", "t", "", "Fixture file or folder where fixture detection should start")
	listCmd.Flags().StringVarP(&flags.NameFilter, "filter", "f", "", "Filter fixture files by name pattern (supports wildcards, e.g., '*hw01.json' or '*lab*')")
	listCmd.Flags().StringVarP(&flags.TestFilter, "test", "n", "", "Filter tests by name or alias pattern")
	listCmd.Flags().BoolVarP(&flags.ShowCases, "cases", "c", false, "List suites and test cases of each test")
	rootCmd.AddCommand(listCmd)

	// Check command
	checkCmd := &cobra.Command{
		Use:     "check",
		Short:   "Validate fixture files in parallel",
		Long:    "Load every fixture file and verify that each test survives a serialization round trip",
		RunE:    c.Check.Execute,
		PreRunE: applyFlags,
	}
	checkCmd.Flags().IntVarP(&flags.Workers, "workers", "p", config.DefaultWorkers, "Number of workers to use")
	checkCmd.Flags().StringVarP(&flags.FixturePath, "fixture-path", "t", "", "Fixture file or folder where fixture detection should start")
	checkCmd.Flags().StringVarP(&flags.NameFilter, "filter", "f", "", "Filter fixture files by name pattern (supports wildcards, e.g., '*hw01.json' or '*lab*')")
	checkCmd.Flags().BoolVar(&flags.FailFast, "fail-fast", false, "Stop on first invalid fixture file")
	rootCmd.AddCommand(checkCmd)

	// Lock and unlock commands
	for _, lc := range []*LockCommand{c.Lock, c.Unlock} {
		verb := lc.Verb()
		lockCmd := &cobra.Command{
			Use:     verb + " <fixture-file>...",
			Short:   "Mark test cases as " + lc.Past(),
			Long:    "Set the lock state of every case of the matching tests and save the fixture files",
			Args:    cobra.MinimumNArgs(1),
			RunE:    lc.Execute,
			PreRunE: applyFlags,
		}
		lockCmd.Flags().StringVarP(&flags.TestFilter, "test", "n", "", "Only change tests whose name or alias matches this pattern")
		rootCmd.AddCommand(lockCmd)
	}

	// View command
	viewCmd := &cobra.Command{
		Use:   "view <fixture-file>",
		Short: "Browse test cases interactively",
		Long:  "Display the test cases of a fixture file in an interactive viewer",
		Args:  cobra.ExactArgs(1),
		RunE:  c.View.Execute,
	}
	rootCmd.AddCommand(viewCmd)

	// Publish command
	publishCmd := &cobra.Command{
		Use:     "publish",
		Short:   "Publish test summaries to the catalog database",
		Long:    "Write points, case counts and lock counts of every test to the MySQL catalog table",
		RunE:    c.Publish.Execute,
		PreRunE: applyFlags,
	}
	publishCmd.Flags().StringVarP(&flags.FixturePath, "fixture-path", "t", "", "Fixture file or folder where fixture detection should start")
	publishCmd.Flags().StringVarP(&flags.NameFilter, "filter", "f", "", "Filter fixture files by name pattern (supports wildcards, e.g., '*hw01.json' or '*lab*')")
	publishCmd.Flags().StringVarP(&flags.TestFilter, "test", "n", "", "Filter tests by name or alias pattern")
	rootCmd.AddCommand(publishCmd)
}
