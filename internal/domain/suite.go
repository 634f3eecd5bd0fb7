package domain

// Counts holds aggregate case counts for a suite or a whole report
type Counts struct {
	Total    int
	Passed   int
	Failed   int
	Errors   int
	Skipped  int
	Disabled int
}

// Add counts one case with the given status
func (c *Counts) Add(status Status) {
	c.Total++
	switch status {
	case StatusPassed:
		c.Passed++
	case StatusFailed:
		c.Failed++
	case StatusError:
		c.Errors++
	case StatusSkipped:
		c.Skipped++
	case StatusDisabled:
		c.Disabled++
	}
}

// Merge adds another set of counts to this one
func (c *Counts) Merge(other Counts) {
	c.Total += other.Total
	c.Passed += other.Passed
	c.Failed += other.Failed
	c.Errors += other.Errors
	c.Skipped += other.Skipped
	c.Disabled += other.Disabled
}

// TestSuite is an ordered collection of test cases with aggregate counts
type TestSuite struct {
	Name   string
	Time   float64
	Cases  []TestCase
	Counts Counts
}
