package main

import (
	"fmt"
	"os"

	"okc/internal/cli"
	"okc/internal/cli/commands"
	"okc/internal/config"

	"github.com/spf13/cobra"
)

var version = "dev"

func main() {
	rootCmd := &cobra.Command{
		Use:           "okc",
		Short:         "Autograder test fixture toolkit",
		Long:          `Inspect, validate, lock and publish autograder test fixtures. Fixture files hold assignments made of tests, suites and typed test cases.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Defaults, then the project's .env file
	cfg := config.New()
	cfg.LoadEnv()

	// Populated by command flags
	var flags cli.Flags

	cmds := commands.NewCommands(cfg)
	cmds.Register(rootCmd, &flags, cfg)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
