package commands

import (
	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"okc/internal/config"
	"okc/internal/discovery"
	"okc/internal/domain"
	"okc/internal/storage"
)

// LockCommand handles the lock and unlock commands
type LockCommand struct {
	config   *config.Config
	filter   *discovery.Filter
	registry *domain.Registry
	locked   bool
}

// NewLockCommand creates a LockCommand setting cases to locked
func NewLockCommand(cfg *config.Config, filter *discovery.Filter, registry *domain.Registry, locked bool) *LockCommand {
	return &LockCommand{
		config:   cfg,
		filter:   filter,
		registry: registry,
		locked:   locked,
	}
}

// Verb returns the command name
func (lc *LockCommand) Verb() string {
	if lc.locked {
		return "lock"
	}
	return "unlock"
}

// Past returns the state the command sets
func (lc *LockCommand) Past() string {
	return lc.Verb() + "ed"
}

// Execute runs the command
func (lc *LockCommand) Execute(cmd *cobra.Command, args []string) error {
	for _, path := range args {
		changed, err := lc.apply(path)
		if err != nil {
			return err
		}
		color.Green("✓ %s: %d case(s) %s", path, changed, lc.Past())
	}
	return nil
}

// apply updates the cases of the matching tests in path and saves the file
// when anything changed
func (lc *LockCommand) apply(path string) (int, error) {
	st, err := storage.ForPath(path, lc.registry)
	if err != nil {
		return 0, err
	}
	assignment, err := st.Load(path)
	if err != nil {
		return 0, err
	}

	changed := 0
	for _, test := range lc.filter.FilterTests(assignment.Tests, lc.config.Flags.TestFilter) {
		for _, suite := range test.Suites() {
			for _, c := range suite {
				if c.IsLocked() != lc.locked {
					c.SetLocked(lc.locked)
					changed++
				}
			}
		}
	}
	if changed == 0 {
		return 0, nil
	}
	return changed, st.Save(path, assignment)
}
