package ui

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"cjr/internal/config"
	"cjr/internal/domain"
)

func summaryReport() *domain.Report {
	r := &domain.Report{
		Suites: []domain.TestSuite{
			{
				Name: "AllTests",
				Cases: []domain.TestCase{
					{Name: "test_ok", Status: domain.StatusPassed},
					{Name: "test_failure", Status: domain.StatusFailed, Reason: "Failed"},
					{Name: "test_skipped", Status: domain.StatusSkipped, Reason: "missing dependency"},
				},
			},
		},
	}
	for _, tc := range r.Suites[0].Cases {
		r.Suites[0].Counts.Add(tc.Status)
	}
	r.Totals = r.Suites[0].Counts
	return r
}

func TestStepSummary_WriteToStdout(t *testing.T) {
	var buf bytes.Buffer
	summary := NewStepSummary(&config.Config{}, &buf)

	if err := summary.Write(summaryReport()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	out := buf.String()
	for _, want := range []string{
		"## CTest Results",
		"1/2 (1 Skipped)",
		"| Total Tests",
		"| Success Rate | 50.00%",
		"Failed Tests",
		"* test_failure (Failed)",
		"Skipped Tests",
		"* test_skipped (missing dependency)",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("summary missing %q:\n%s", want, out)
		}
	}
}

func TestStepSummary_AppendsToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "step_summary")
	cfg := &config.Config{StepSummaryPath: path}

	var buf bytes.Buffer
	summary := NewStepSummary(cfg, &buf)

	if err := summary.Write(summaryReport()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := summary.Write(summaryReport()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if buf.Len() != 0 {
		t.Errorf("expected nothing on stdout when a summary file is set, got %q", buf.String())
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read summary file: %v", err)
	}
	if got := strings.Count(string(data), "## CTest Results"); got != 2 {
		t.Errorf("expected the summary to be appended twice, found %d headers", got)
	}
}

func TestStepSummary_SuiteTable(t *testing.T) {
	var buf bytes.Buffer
	summary := NewStepSummary(&config.Config{}, &buf)

	report := summaryReport()
	report.Suites = append(report.Suites, domain.TestSuite{Name: "second"})

	if err := summary.Write(report); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	out := buf.String()
	for _, want := range []string{"| Suite", "| AllTests", "| second", "| Total"} {
		if !strings.Contains(out, want) {
			t.Errorf("suite table missing %q:\n%s", want, out)
		}
	}
}

func TestMarkdownTable(t *testing.T) {
	got := markdownTable(
		[]string{"Metric", "Value"},
		[][]string{
			{"Total Tests", "1500"},
			{"Passed", "7"},
		},
	)

	expected := strings.Join([]string{
		"| Metric      | Value |",
		"| ----------- | ----- |",
		"| Total Tests | 1500  |",
		"| Passed      | 7     |",
		"",
	}, "\n")

	if got != expected {
		t.Errorf("unexpected table:\n%s\nexpected:\n%s", got, expected)
	}
}
