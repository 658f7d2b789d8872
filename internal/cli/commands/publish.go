package commands

import (
	"context"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"okc/internal/catalog"
	"okc/internal/config"
	"okc/internal/discovery"
	"okc/internal/domain"
)

// catalogPublisher is the part of catalog.Publisher used by the publish command
type catalogPublisher interface {
	Open(ctx context.Context) error
	Publish(ctx context.Context, entries []catalog.Entry) error
	Close() error
}

// PublishCommand handles the publish command
type PublishCommand struct {
	config    *config.Config
	loader    *fixtureLoader
	filter    *discovery.Filter
	publisher catalogPublisher
}

// NewPublishCommand creates a new PublishCommand
func NewPublishCommand(
	cfg *config.Config,
	loader *fixtureLoader,
	filter *discovery.Filter,
	publisher catalogPublisher,
) *PublishCommand {
	return &PublishCommand{
		config:    cfg,
		loader:    loader,
		filter:    filter,
		publisher: publisher,
	}
}

// Execute runs the command
func (pc *PublishCommand) Execute(cmd *cobra.Command, args []string) error {
	files, err := pc.loader.Files()
	if err != nil {
		return err
	}

	if len(files) == 0 {
		color.Yellow("No fixture files to publish")
		return nil
	}

	// Load everything first so a malformed fixture publishes nothing
	var entries []catalog.Entry
	for _, path := range files {
		assignment, _, err := pc.loader.Load(path)
		if err != nil {
			return err
		}
		if assignment.Name == "" {
			assignment.Name = assignmentNameFromPath(path)
		}
		selected := &domain.Assignment{
			Name:  assignment.Name,
			Info:  assignment.Info,
			Tests: pc.filter.FilterTests(assignment.Tests, pc.config.Flags.TestFilter),
		}
		entries = append(entries, catalog.Entries(selected)...)
	}

	ctx := commandContext(cmd)
	if err := pc.publisher.Open(ctx); err != nil {
		return err
	}
	defer pc.publisher.Close()

	if err := pc.publisher.Publish(ctx, entries); err != nil {
		return err
	}
	color.Green("✓ Published %d test(s) from %d fixture file(s)", len(entries), len(files))
	return nil
}
