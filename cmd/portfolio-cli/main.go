// Package main is the entry point for the portfolio-cli application.
// It registers the maintenance commands (migrate, publish-scheduled, version)
// and executes the command-line interface.
package main

import (
	"fmt"
	"log"
	"os"

	"github.com/MGTheTrain/portfolio-api/cmd/portfolio-cli/internal/commands"

	"github.com/spf13/cobra"
)

func main() {
	if err := run(); err != nil {
		log.Fatalf("Error: %v", err)
	}
}

func run() error {
	rootCmd := &cobra.Command{
		Use:   "portfolio-cli",
		Short: "Maintenance CLI for the portfolio API",
		Long: `portfolio-cli runs maintenance tasks against the portfolio API database.

The configuration is read from --config, CONFIG_PATH or configs/rest-app.yaml,
in that order. Environment variables prefixed with PORTFOLIO_ override file values.`,
		SilenceUsage: true,
	}

	commands.RegisterFlags(rootCmd)

	// Initialize all commands BEFORE executing
	commands.InitMigrateCommand(rootCmd)
	commands.InitPublishCommand(rootCmd)
	commands.InitVersionCommand(rootCmd)

	if err := rootCmd.Execute(); err != nil {
		return fmt.Errorf("command execution failed: %w", err)
	}

	return nil
}

// init sets up any necessary initialization before main runs.
func init() {
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)
	log.SetOutput(os.Stderr)
}
