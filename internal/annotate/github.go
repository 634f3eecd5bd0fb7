package annotate

import (
	"fmt"
	"io"
	"strings"

	"cjr/internal/domain"
)

// Workflow command values need %, CR and LF escaped; property values
// additionally need : and , escaped.
var (
	dataEscaper = strings.NewReplacer(
		"%", "%25",
		"\r", "%0D",
		"\n", "%0A",
	)
	propertyEscaper = strings.NewReplacer(
		"%", "%25",
		"\r", "%0D",
		"\n", "%0A",
		":", "%3A",
		",", "%2C",
	)
)

// Builder derives CI annotations from a classified report
type Builder struct{}

// NewBuilder creates a new Builder
func NewBuilder() *Builder {
	return &Builder{}
}

// Build returns exactly one error annotation per failed or errored case and,
// when includeSkipped is set, one warning per skipped case. Disabled cases
// are never annotated.
func (b *Builder) Build(report *domain.Report, includeSkipped bool) []domain.Annotation {
	var annotations []domain.Annotation

	for _, suite := range report.Suites {
		for _, tc := range suite.Cases {
			switch {
			case tc.Status.IsFailure():
				annotations = append(annotations, fromCase(domain.LevelError, tc))
			case tc.Status == domain.StatusSkipped && includeSkipped:
				annotations = append(annotations, fromCase(domain.LevelWarning, tc))
			}
		}
	}

	return annotations
}

func fromCase(level domain.Level, tc domain.TestCase) domain.Annotation {
	a := domain.Annotation{
		Level:        level,
		Title:        tc.Name,
		Reason:       tc.Reason,
		MessageLines: tc.Message,
	}
	if tc.Location != nil {
		a.File = tc.Location.File
		a.Line = tc.Location.Line
	}
	return a
}

// Render formats one annotation as a GitHub workflow command line
func Render(a domain.Annotation) string {
	var sb strings.Builder

	sb.WriteString("::")
	sb.WriteString(string(a.Level))
	sb.WriteString(" ")

	if a.File != "" {
		sb.WriteString("file=")
		sb.WriteString(propertyEscaper.Replace(a.File))
		sb.WriteString(",")
		if a.Line > 0 {
			fmt.Fprintf(&sb, "line=%d,", a.Line)
		}
	}

	title := a.Title
	if a.Reason != "" {
		title += " (" + a.Reason + ")"
	}
	sb.WriteString("title=")
	sb.WriteString(propertyEscaper.Replace(title))

	sb.WriteString("::")
	sb.WriteString(dataEscaper.Replace(strings.Join(a.MessageLines, "\n")))

	return sb.String()
}

// Writer prints annotations to the CI log stream
type Writer struct {
	out io.Writer
}

// NewWriter creates a Writer printing to out
func NewWriter(out io.Writer) *Writer {
	return &Writer{out: out}
}

// Write prints one workflow command line per annotation
func (w *Writer) Write(annotations []domain.Annotation) error {
	for _, a := range annotations {
		if _, err := fmt.Fprintln(w.out, Render(a)); err != nil {
			return fmt.Errorf("write annotation: %w", err)
		}
	}
	return nil
}
