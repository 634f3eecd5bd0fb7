package parser

import (
	"encoding/xml"
	"fmt"
	"os"
	"strings"

	log "github.com/sirupsen/logrus"

	"cjr/internal/config"
	"cjr/internal/domain"
	"cjr/internal/ui"
)

// CTest testcase status attribute values (ctest --output-junit)
const (
	ctestStatusRun      = "run"
	ctestStatusFail     = "fail"
	ctestStatusNotRun   = "notrun"
	ctestStatusDisabled = "disabled"
)

// disabledTestMarker shows up in the output of GTest binaries that report a
// disabled test as passed
const disabledTestMarker = "YOU HAVE 1 DISABLED TEST"

// ParseError reports a missing, unreadable, or malformed report file
type ParseError struct {
	Path string
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse %s: %v", e.Path, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// CTestParser parses CTest JUnit XML reports into the domain model
type CTestParser struct {
	config       *config.Config
	showProgress bool
}

// NewCTestParser creates a new CTestParser
func NewCTestParser(cfg *config.Config) *CTestParser {
	return &CTestParser{config: cfg}
}

// SetShowProgress enables the progress bar shown while cases are classified
func (p *CTestParser) SetShowProgress(show bool) {
	p.showProgress = show
}

// ParseFile reads and classifies a JUnit XML report.
// CTest writes a bare <testsuite> root; a <testsuites> wrapper is accepted too.
func (p *CTestParser) ParseFile(path string) (*domain.Report, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &ParseError{Path: path, Err: err}
	}

	var suite junitSuite
	suiteErr := xml.Unmarshal(data, &suite)
	if suiteErr == nil {
		return p.buildReport([]junitSuite{suite}), nil
	}

	var doc junitDocument
	if err := xml.Unmarshal(data, &doc); err != nil {
		return nil, &ParseError{Path: path, Err: suiteErr}
	}
	log.Warnf("no <testsuite> root in %s, falling back to <testsuites> wrapper", path)

	return p.buildReport(doc.Suites), nil
}

func (p *CTestParser) buildReport(suites []junitSuite) *domain.Report {
	report := &domain.Report{}

	var progress *ui.ProgressBar
	if p.showProgress {
		total := 0
		for _, s := range suites {
			total += len(s.Cases)
		}
		if total > 0 {
			progress = ui.NewProgressBar(total)
		}
	}

	for _, s := range suites {
		suite := domain.TestSuite{
			Name: s.Name,
			Time: s.Time,
		}

		for _, c := range s.Cases {
			tc := p.convertCase(s.Name, c)
			suite.Counts.Add(tc.Status)
			suite.Cases = append(suite.Cases, tc)
			if progress != nil {
				done := report.Totals
				done.Merge(suite.Counts)
				progress.Update(done.Passed, done.Failed+done.Errors)
			}
		}

		report.Totals.Merge(suite.Counts)
		report.Suites = append(report.Suites, suite)
	}

	if progress != nil {
		progress.Finish()
	}

	return report
}

// convertCase classifies one testcase element
func (p *CTestParser) convertCase(suiteName string, c junitCase) domain.TestCase {
	tc := domain.TestCase{
		Name:      c.Name,
		ClassName: c.ClassName,
		SuiteName: suiteName,
		Time:      c.Time,
		SystemOut: decodeSystemOut(c.SystemOut),
	}

	switch c.Status {
	case ctestStatusRun:
		tc.Status = domain.StatusPassed
	case ctestStatusFail:
		tc.Status = domain.StatusFailed
	case ctestStatusNotRun:
		tc.Status = domain.StatusSkipped
	case ctestStatusDisabled:
		tc.Status = domain.StatusDisabled
	default:
		// Generic JUnit case without a CTest status attribute
		switch {
		case c.Failure != nil:
			tc.Status = domain.StatusFailed
		case c.Error != nil:
			tc.Status = domain.StatusError
		case c.Skipped != nil:
			tc.Status = domain.StatusSkipped
		default:
			tc.Status = domain.StatusPassed
		}
	}

	// GTest reports disabled tests as passed and only mentions them in the output
	if tc.Status == domain.StatusPassed && strings.Contains(tc.SystemOut, disabledTestMarker) {
		tc.Status = domain.StatusDisabled
	}

	switch tc.Status {
	case domain.StatusFailed:
		if c.Failure != nil {
			tc.Reason = failureReason(c.Failure)
		}
		tc.Location, tc.Message = scanFailureOutput(tc.SystemOut, p.config.SourceRoot, tc.Name)
	case domain.StatusError:
		if c.Error != nil {
			tc.Reason = failureReason(c.Error)
		}
		tc.Location, tc.Message = scanFailureOutput(tc.SystemOut, p.config.SourceRoot, tc.Name)
	case domain.StatusSkipped:
		if c.Skipped != nil {
			tc.Reason = c.Skipped.Message
		}
	}

	return tc
}

func failureReason(f *junitFailure) string {
	if f.Message != "" {
		return f.Message
	}
	return strings.TrimSpace(f.Value)
}
