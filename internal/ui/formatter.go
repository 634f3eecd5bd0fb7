package ui

import (
	"fmt"
	"sort"
	"strings"

	"github.com/fatih/color"

	"cjr/internal/config"
	"cjr/internal/domain"
)

// Formatter formats and displays console output
type Formatter struct {
	config *config.Config
}

// NewFormatter creates a new Formatter
func NewFormatter(cfg *config.Config) *Formatter {
	if cfg.NoColor {
		color.NoColor = true
	}
	return &Formatter{config: cfg}
}

// PrintSummary displays the classified report as a colored console table
func (f *Formatter) PrintSummary(report *domain.Report) {
	totals := report.Totals

	fmt.Print("\n")
	color.Cyan("╔═══════════════════════════════════════════════════════════════╗")
	color.Cyan("║                       CTest Results                           ║")
	color.Cyan("╚═══════════════════════════════════════════════════════════════╝\n")

	rows := []struct {
		label string
		value string
		paint func(format string, a ...interface{})
	}{
		{"Total Tests", fmt.Sprintf("%d", totals.Total), color.White},
		{"Passed", fmt.Sprintf("%d", totals.Passed), color.Green},
		{"Failures", fmt.Sprintf("%d", totals.Failed), color.Red},
		{"Errors", fmt.Sprintf("%d", totals.Errors), color.Red},
		{"Skipped", fmt.Sprintf("%d", totals.Skipped), color.Yellow},
		{"Disabled", fmt.Sprintf("%d", totals.Disabled), color.Yellow},
		{"Success Rate", fmt.Sprintf("%.2f%%", report.SuccessRate()*100), color.White},
	}

	fmt.Println("┌─────────────────────────────────┬─────────────────────────────┐")
	for i, row := range rows {
		fmt.Printf("│ %-31s │ ", row.label)
		row.paint("%-27s │\n", row.value)
		if i < len(rows)-1 {
			fmt.Println("├─────────────────────────────────┼─────────────────────────────┤")
		}
	}
	fmt.Println("└─────────────────────────────────┴─────────────────────────────┘")

	fmt.Println()
	failed := totals.Failed + totals.Errors
	if failed == 0 {
		color.Green("✓ %d/%d passed (%d skipped, %d disabled)",
			totals.Passed, report.ActuallyRun(), totals.Skipped, totals.Disabled)
		return
	}

	color.Red("✗ %d of %d test case(s) failed", failed, report.ActuallyRun())
	fmt.Println()
	f.printFailedTree(report)
}

// printFailedTree prints failed cases grouped by suite
func (f *Formatter) printFailedTree(report *domain.Report) {
	failures := report.FailedCases()
	if len(failures) == 0 {
		return
	}

	suiteMap := make(map[string][]domain.TestCase)
	for _, tc := range failures {
		suiteMap[tc.SuiteName] = append(suiteMap[tc.SuiteName], tc)
	}

	var suites []string
	for name := range suiteMap {
		suites = append(suites, name)
	}
	sort.Strings(suites)

	for i, name := range suites {
		isLastSuite := i == len(suites)-1
		if isLastSuite {
			color.Cyan("└── %s", name)
		} else {
			color.Cyan("├── %s", name)
		}

		cases := suiteMap[name]
		for j, tc := range cases {
			var prefix string
			if isLastSuite {
				if j == len(cases)-1 {
					prefix = "    └── "
				} else {
					prefix = "    ├── "
				}
			} else {
				if j == len(cases)-1 {
					prefix = "│   └── "
				} else {
					prefix = "│   ├── "
				}
			}

			label := tc.Name
			if tc.Reason != "" {
				label += " (" + firstLine(tc.Reason) + ")"
			}
			fmt.Printf("%s%s\n", prefix, color.RedString("%s", label))
		}
	}
}

// PrintCaseList prints case names grouped by outcome, honoring the skip flags
func (f *Formatter) PrintCaseList(report *domain.Report) {
	passed := report.CasesWithStatus(domain.StatusPassed)
	skipped := append(
		report.CasesWithStatus(domain.StatusSkipped),
		report.CasesWithStatus(domain.StatusDisabled)...,
	)
	failed := report.FailedCases()

	if !f.config.Flags.SkipPassed {
		color.Green("\nPassed tests (%d):", len(passed))
		for _, tc := range passed {
			fmt.Println(tc.Name)
		}
	}
	if !f.config.Flags.SkipFailed {
		color.Red("\nFailed tests (%d):", len(failed))
		for _, tc := range failed {
			fmt.Println(tc.Name)
		}
	}
	if !f.config.Flags.SkipSkipped {
		color.Yellow("\nSkipped tests (%d):", len(skipped))
		for _, tc := range skipped {
			if tc.Status == domain.StatusDisabled {
				fmt.Printf("%s (disabled)\n", tc.Name)
				continue
			}
			fmt.Println(tc.Name)
		}
	}
}

func firstLine(s string) string {
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		return s[:i]
	}
	return s
}
