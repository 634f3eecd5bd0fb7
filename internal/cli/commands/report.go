package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"cjr/internal/annotate"
	"cjr/internal/config"
	"cjr/internal/parser"
	"cjr/internal/ui"
)

// ReportCommand handles the default report generation
type ReportCommand struct {
	config    *config.Config
	parser    *parser.CTestParser
	formatter *ui.Formatter
	summary   *ui.StepSummary
	builder   *annotate.Builder
	writer    *annotate.Writer
}

// NewReportCommand creates a new ReportCommand
func NewReportCommand(
	cfg *config.Config,
	ctestParser *parser.CTestParser,
	formatter *ui.Formatter,
	summary *ui.StepSummary,
	builder *annotate.Builder,
	writer *annotate.Writer,
) *ReportCommand {
	return &ReportCommand{
		config:    cfg,
		parser:    ctestParser,
		formatter: formatter,
		summary:   summary,
		builder:   builder,
		writer:    writer,
	}
}

// Execute runs the command
func (rc *ReportCommand) Execute(cmd *cobra.Command, args []string) error {
	rc.parser.SetShowProgress(!rc.config.Flags.NoProgress)

	report, err := rc.parser.ParseFile(args[0])
	if err != nil {
		return err
	}

	rc.formatter.PrintSummary(report)

	if err := rc.summary.Write(report); err != nil {
		return fmt.Errorf("write step summary: %w", err)
	}

	annotations := rc.builder.Build(report, rc.config.Flags.IncludeSkipped)
	return rc.writer.Write(annotations)
}
