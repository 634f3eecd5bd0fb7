package commands

import (
	"github.com/spf13/cobra"

	"cjr/internal/config"
	"cjr/internal/parser"
	"cjr/internal/ui"
)

// ListCommand handles the list command
type ListCommand struct {
	config    *config.Config
	parser    *parser.CTestParser
	formatter *ui.Formatter
}

// NewListCommand creates a new ListCommand
func NewListCommand(
	cfg *config.Config,
	ctestParser *parser.CTestParser,
	formatter *ui.Formatter,
) *ListCommand {
	return &ListCommand{
		config:    cfg,
		parser:    ctestParser,
		formatter: formatter,
	}
}

// Execute runs the command
func (lc *ListCommand) Execute(cmd *cobra.Command, args []string) error {
	report, err := lc.parser.ParseFile(args[0])
	if err != nil {
		return err
	}

	lc.formatter.PrintCaseList(report)
	return nil
}
