package commands

import (
	"os"

	"github.com/spf13/cobra"

	"cjr/internal/annotate"
	"cjr/internal/cli"
	"cjr/internal/config"
	"cjr/internal/parser"
	"cjr/internal/ui"
)

// Commands holds all CLI commands
type Commands struct {
	Report *ReportCommand
	List   *ListCommand
	View   *ViewCommand
}

// NewCommands creates all commands with dependencies
func NewCommands(cfg *config.Config) *Commands {
	ctestParser := parser.NewCTestParser(cfg)
	formatter := ui.NewFormatter(cfg)
	summary := ui.NewStepSummary(cfg, os.Stdout)
	builder := annotate.NewBuilder()
	writer := annotate.NewWriter(os.Stdout)
	viewer := ui.NewErrorViewer(cfg)

	return &Commands{
		Report: NewReportCommand(cfg, ctestParser, formatter, summary, builder, writer),
		List:   NewListCommand(cfg, ctestParser, formatter),
		View:   NewViewCommand(cfg, ctestParser, viewer),
	}
}

// Register registers all commands with cobra
func (c *Commands) Register(rootCmd *cobra.Command, flags *cli.Flags, cfg *config.Config) {
	// The root command itself generates the report
	rootCmd.Args = cobra.ExactArgs(1)
	rootCmd.RunE = c.Report.Execute
	rootCmd.PreRunE = func(cmd *cobra.Command, args []string) error {
		cfg.Flags = flags.ToConfigFlags()
		return nil
	}
	rootCmd.Flags().BoolVarP(&flags.IncludeSkipped, "include-skipped-warnings", "i", false,
		"Also emit warning annotations for skipped tests")
	rootCmd.Flags().BoolVar(&flags.NoProgress, "no-progress", false,
		"Disable the classification progress bar")

	// List command
	listCmd := &cobra.Command{
		Use:   "list <junit-xml>",
		Short: "List test cases grouped by outcome",
		Long:  "Parse a CTest JUnit XML report and list case names grouped by outcome",
		Args:  cobra.ExactArgs(1),
		RunE:  c.List.Execute,
		PreRunE: func(cmd *cobra.Command, args []string) error {
			cfg.Flags = flags.ToConfigFlags()
			return nil
		},
	}
	listCmd.Flags().BoolVar(&flags.SkipPassed, "skip-passed", false, "Skip printing the passed test names")
	listCmd.Flags().BoolVar(&flags.SkipFailed, "skip-failed", false, "Skip printing the failed test names")
	listCmd.Flags().BoolVar(&flags.SkipSkipped, "skip-skipped", false, "Skip printing the skipped test names")
	rootCmd.AddCommand(listCmd)

	// View command
	viewCmd := &cobra.Command{
		Use:   "view <junit-xml>",
		Short: "View test failures interactively",
		Long:  "Display test failures from a CTest JUnit XML report in an interactive viewer",
		Args:  cobra.ExactArgs(1),
		RunE:  c.View.Execute,
	}
	rootCmd.AddCommand(viewCmd)
}
