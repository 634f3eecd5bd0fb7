package domain

// Status is the classified outcome of a single test case
type Status string

const (
	StatusPassed   Status = "passed"
	StatusFailed   Status = "failed"
	StatusError    Status = "error"
	StatusSkipped  Status = "skipped"
	StatusDisabled Status = "disabled"
)

// IsFailure reports whether the status represents a failed or errored case
func (s Status) IsFailure() bool {
	return s == StatusFailed || s == StatusError
}
