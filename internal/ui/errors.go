package ui

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"cjr/internal/config"
	"cjr/internal/domain"
)

// ErrorViewer displays failed test cases in an interactive TUI
type ErrorViewer struct {
	config *config.Config
}

// NewErrorViewer creates a new ErrorViewer
func NewErrorViewer(cfg *config.Config) *ErrorViewer {
	return &ErrorViewer{config: cfg}
}

// View displays the failed cases in a list/details layout
func (ev *ErrorViewer) View(failures []domain.TestCase) error {
	if len(failures) == 0 {
		color.Green("✓ No test failures found!")
		return nil
	}

	app := tview.NewApplication()

	list := tview.NewList().
		ShowSecondaryText(false).
		SetHighlightFullLine(true)

	for i, tc := range failures {
		list.AddItem(fmt.Sprintf("[yellow]%d.[white] %s", i+1, tc.Name), "", 0, nil)
	}

	list.SetMainTextColor(tview.Styles.PrimaryTextColor).
		SetSelectedTextColor(tcell.ColorWhite).
		SetSelectedBackgroundColor(tcell.ColorDarkCyan)

	statsView := tview.NewTextView().
		SetDynamicColors(true).
		SetWrap(false)

	detailsView := tview.NewTextView().
		SetDynamicColors(true).
		SetWrap(true).
		SetWordWrap(true)

	detailsContainer := tview.NewFlex().
		SetDirection(tview.FlexColumn).
		AddItem(detailsView, 0, 1, false).
		AddItem(tview.NewBox(), 2, 0, false)

	rightSide := tview.NewFlex().
		SetDirection(tview.FlexRow).
		AddItem(statsView, 3, 0, false).
		AddItem(detailsContainer, 0, 1, false)

	flex := tview.NewFlex().
		SetDirection(tview.FlexColumn).
		AddItem(list, 0, 1, true).
		AddItem(rightSide, 0, 2, false)

	headerView := tview.NewTextView().
		SetTextAlign(tview.AlignCenter).
		SetDynamicColors(true)
	headerView.SetText(fmt.Sprintf(
		" Test Failures (%d total) | Use ↑↓ to navigate, → to view details, ← to go back, Ctrl+C to exit ",
		len(failures)))

	updateDetails := func() {
		index := list.GetCurrentItem()
		if index >= 0 && index < len(failures) {
			tc := failures[index]
			statsView.SetText(fmt.Sprintf("[cyan]suite:[white] [yellow]%s[white]::[yellow]%s[white]\n",
				tc.SuiteName, tc.Name))
			detailsView.SetText(ev.formatFailureDetails(tc))
		}
	}

	list.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		switch event.Key() {
		case tcell.KeyUp, tcell.KeyDown:
			return event
		case tcell.KeyEnter, tcell.KeyRight:
			app.SetFocus(detailsView)
			return nil
		case tcell.KeyCtrlC:
			app.Stop()
			return nil
		}
		return event
	})

	detailsView.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		switch event.Key() {
		case tcell.KeyLeft, tcell.KeyEsc:
			app.SetFocus(list)
			return nil
		case tcell.KeyCtrlC:
			app.Stop()
			return nil
		}
		return event
	})

	list.SetChangedFunc(func(index int, mainText string, secondaryText string, shortcut rune) {
		updateDetails()
	})
	updateDetails()

	mainLayout := tview.NewFlex().
		SetDirection(tview.FlexRow).
		AddItem(headerView, 1, 0, false).
		AddItem(flex, 0, 1, true)

	if err := app.SetRoot(mainLayout, true).SetFocus(list).Run(); err != nil {
		return fmt.Errorf("failed to run TUI: %w", err)
	}

	return nil
}

// formatFailureDetails formats a failed case for display using tview color tags
func (ev *ErrorViewer) formatFailureDetails(tc domain.TestCase) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "[red]✗ Test: %s[white]\n\n", tc.Name)
	fmt.Fprintf(&sb, "[cyan]Suite: %s[white]\n", tc.SuiteName)
	if tc.Location != nil {
		fmt.Fprintf(&sb, "[yellow]Location: %s:%d[white]\n", tc.Location.File, tc.Location.Line)
	}
	fmt.Fprintf(&sb, "[cyan]Duration: %.3fs[white]\n\n", tc.Time)

	if tc.Reason != "" {
		fmt.Fprintf(&sb, "[yellow]Message:[white]\n%s\n\n", tview.Escape(tc.Reason))
	}

	if len(tc.Message) > 0 {
		fmt.Fprintf(&sb, "[yellow]Output:[white]\n")
		for i, line := range tc.Message {
			if i >= 40 {
				fmt.Fprintf(&sb, "[gray]... and %d more lines[white]\n", len(tc.Message)-i)
				break
			}
			fmt.Fprintf(&sb, "%s\n", tview.Escape(line))
		}
	}

	return sb.String()
}
