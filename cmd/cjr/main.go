package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"cjr/internal/cli"
	"cjr/internal/cli/commands"
	"cjr/internal/config"
)

var version = "dev"

func main() {
	// Create root command
	rootCmd := &cobra.Command{
		Use:     "cjr <junit-xml>",
		Short:   "CTest JUnit report generator",
		Long:    `Converts a CTest --output-junit XML report into a CI step summary and inline annotations. Run ctest --output-junit ctest.xml and point cjr at the result.`,
		Version: version,
	}

	// Create initial config with defaults
	cfg := config.New()

	// Create flags struct (will be populated by command flags)
	var flags cli.Flags

	// Create commands with dependencies
	cmds := commands.NewCommands(cfg)

	// Register all commands
	cmds.Register(rootCmd, &flags, cfg)

	// Execute root command
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
