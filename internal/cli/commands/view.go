package commands

import (
	"github.com/spf13/cobra"

	"cjr/internal/config"
	"cjr/internal/parser"
	"cjr/internal/ui"
)

// ViewCommand handles the view command
type ViewCommand struct {
	config *config.Config
	parser *parser.CTestParser
	viewer ui.Viewer
}

// NewViewCommand creates a new ViewCommand
func NewViewCommand(cfg *config.Config, ctestParser *parser.CTestParser, viewer ui.Viewer) *ViewCommand {
	return &ViewCommand{
		config: cfg,
		parser: ctestParser,
		viewer: viewer,
	}
}

// Execute runs the command
func (vc *ViewCommand) Execute(cmd *cobra.Command, args []string) error {
	report, err := vc.parser.ParseFile(args[0])
	if err != nil {
		return err
	}

	return vc.viewer.View(report.FailedCases())
}
