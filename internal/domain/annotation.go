package domain

// Level is the severity of a CI annotation
type Level string

const (
	LevelError   Level = "error"
	LevelWarning Level = "warning"
)

// Annotation is one inline CI message derived from a test case
type Annotation struct {
	Level        Level
	Title        string
	Reason       string
	File         string
	Line         int
	MessageLines []string
}
