package domain

// Location points at the source position a failure was reported from
type Location struct {
	File string
	Line int
}

// TestCase represents a single test case parsed from the report.
// It is never mutated once the report is built.
type TestCase struct {
	Name      string
	ClassName string
	SuiteName string
	Status    Status
	Time      float64   // Duration in seconds
	Reason    string    // Failure or skip message from the XML
	SystemOut string    // Decoded system-out text
	Location  *Location // First failure location found in the test output, if any
	Message   []string  // Failure output lines collected for the annotation body
}
