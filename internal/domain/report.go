package domain

// Report is the classified result of one report file, alive for one invocation only
type Report struct {
	Suites []TestSuite
	Totals Counts
}

// ActuallyRun returns the number of cases that were neither skipped nor disabled
func (r *Report) ActuallyRun() int {
	return r.Totals.Total - r.Totals.Skipped - r.Totals.Disabled
}

// SuccessRate returns the passed fraction of the cases that actually ran
func (r *Report) SuccessRate() float64 {
	run := r.ActuallyRun()
	if run == 0 {
		return 0
	}
	return float64(r.Totals.Passed) / float64(run)
}

// CasesWithStatus returns all cases with the given status, in document order
func (r *Report) CasesWithStatus(status Status) []TestCase {
	var cases []TestCase
	for _, suite := range r.Suites {
		for _, tc := range suite.Cases {
			if tc.Status == status {
				cases = append(cases, tc)
			}
		}
	}
	return cases
}

// FailedCases returns all failed and errored cases, in document order
func (r *Report) FailedCases() []TestCase {
	var cases []TestCase
	for _, suite := range r.Suites {
		for _, tc := range suite.Cases {
			if tc.Status.IsFailure() {
				cases = append(cases, tc)
			}
		}
	}
	return cases
}
