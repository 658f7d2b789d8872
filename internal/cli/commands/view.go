package commands

import (
	"github.com/spf13/cobra"
	"okc/internal/config"
	"okc/internal/domain"
	"okc/internal/storage"
	"okc/internal/ui"
)

// ViewCommand handles the view command
type ViewCommand struct {
	config    *config.Config
	registry  *domain.Registry
	newViewer func(st storage.Storage) ui.Viewer
}

// NewViewCommand creates a new ViewCommand
func NewViewCommand(cfg *config.Config, registry *domain.Registry) *ViewCommand {
	return &ViewCommand{
		config:   cfg,
		registry: registry,
		newViewer: func(st storage.Storage) ui.Viewer {
			return ui.NewCaseViewer(cfg, st)
		},
	}
}

// Execute runs the command
func (vc *ViewCommand) Execute(cmd *cobra.Command, args []string) error {
	path := args[0]
	st, err := storage.ForPath(path, vc.registry)
	if err != nil {
		return err
	}
	assignment, err := st.Load(path)
	if err != nil {
		return err
	}

	return vc.newViewer(st).View(path, assignment)
}
