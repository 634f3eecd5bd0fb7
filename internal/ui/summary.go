package ui

import (
	"fmt"
	"io"
	"os"
	"strings"

	"cjr/internal/config"
	"cjr/internal/domain"
)

// StepSummary renders the markdown run summary. When the CI host designates a
// step summary file the markdown is appended there, otherwise it is printed
// to the writer.
type StepSummary struct {
	config *config.Config
	out    io.Writer
}

// NewStepSummary creates a new StepSummary printing to out as fallback
func NewStepSummary(cfg *config.Config, out io.Writer) *StepSummary {
	return &StepSummary{config: cfg, out: out}
}

// Write emits the full markdown summary for the report
func (s *StepSummary) Write(report *domain.Report) error {
	md := s.render(report)

	if s.config.StepSummaryPath == "" {
		_, err := fmt.Fprintln(s.out, md)
		return err
	}

	f, err := os.OpenFile(s.config.StepSummaryPath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("open step summary: %w", err)
	}
	defer f.Close()

	if _, err := fmt.Fprintln(f, md); err != nil {
		return fmt.Errorf("write step summary: %w", err)
	}
	return nil
}

func (s *StepSummary) render(report *domain.Report) string {
	totals := report.Totals
	var sb strings.Builder

	sb.WriteString("## CTest Results\n\n")
	fmt.Fprintf(&sb, "%d/%d (%d Skipped)\n\n",
		totals.Passed, report.ActuallyRun(), totals.Skipped+totals.Disabled)

	sb.WriteString(markdownTable(
		[]string{"Metric", "Value"},
		[][]string{
			{"Total Tests", fmt.Sprintf("%d", totals.Total)},
			{"Passed", fmt.Sprintf("%d", totals.Passed)},
			{"Failures", fmt.Sprintf("%d", totals.Failed)},
			{"Errors", fmt.Sprintf("%d", totals.Errors)},
			{"Skipped", fmt.Sprintf("%d", totals.Skipped)},
			{"Disabled", fmt.Sprintf("%d", totals.Disabled)},
			{"Success Rate", fmt.Sprintf("%.2f%%", report.SuccessRate()*100)},
		},
	))
	sb.WriteString("\n")

	sb.WriteString("\n")
	sb.WriteString(suiteTable(report))
	sb.WriteString("\n")

	failed := report.FailedCases()
	skipped := report.CasesWithStatus(domain.StatusSkipped)

	if len(failed) > 0 {
		sb.WriteString("\n")
		sb.WriteString(detailsBlock(":boom: <strong>Failed Tests</strong> (Click to expand)", failed))
	}
	if len(skipped) > 0 {
		sb.WriteString("\n")
		sb.WriteString(detailsBlock(":warning: <strong>Skipped Tests</strong> (Click to expand)", skipped))
	}

	return strings.TrimRight(sb.String(), "\n")
}

// suiteTable renders per-suite counts with a total row
func suiteTable(report *domain.Report) string {
	headers := []string{"Suite", "Tests", "Passed", "Failed", "Errors", "Skipped", "Disabled"}

	var rows [][]string
	appendRow := func(name string, c domain.Counts) {
		rows = append(rows, []string{
			name,
			fmt.Sprintf("%d", c.Total),
			fmt.Sprintf("%d", c.Passed),
			fmt.Sprintf("%d", c.Failed),
			fmt.Sprintf("%d", c.Errors),
			fmt.Sprintf("%d", c.Skipped),
			fmt.Sprintf("%d", c.Disabled),
		})
	}

	for _, suite := range report.Suites {
		appendRow(suite.Name, suite.Counts)
	}
	appendRow("Total", report.Totals)

	return markdownTable(headers, rows)
}

// markdownTable renders a padded GitHub-flavored markdown table
func markdownTable(headers []string, rows [][]string) string {
	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = len(h)
	}
	for _, row := range rows {
		for i, cell := range row {
			if len(cell) > widths[i] {
				widths[i] = len(cell)
			}
		}
	}

	var lines []string
	line := func(cells []string) string {
		parts := make([]string, len(cells))
		for i, cell := range cells {
			parts[i] = fmt.Sprintf("%-*s", widths[i], cell)
		}
		return "| " + strings.Join(parts, " | ") + " |"
	}

	lines = append(lines, line(headers))
	dashes := make([]string, len(headers))
	for i := range headers {
		dashes[i] = strings.Repeat("-", widths[i])
	}
	lines = append(lines, line(dashes))
	for _, row := range rows {
		lines = append(lines, line(row))
	}

	return strings.Join(lines, "\n") + "\n"
}

// detailsBlock renders a collapsible case list
func detailsBlock(summary string, cases []domain.TestCase) string {
	var sb strings.Builder

	sb.WriteString("<details>\n\n")
	fmt.Fprintf(&sb, "<summary>%s</summary>\n\n", summary)
	for _, tc := range cases {
		if tc.Reason != "" {
			fmt.Fprintf(&sb, "* %s (%s)\n", tc.Name, firstLine(tc.Reason))
			continue
		}
		fmt.Fprintf(&sb, "* %s\n", tc.Name)
	}
	sb.WriteString("\n</details>\n")

	return sb.String()
}
