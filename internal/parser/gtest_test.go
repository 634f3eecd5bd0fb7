package parser

import (
	"strings"
	"testing"
)

const failureOutput = `Note: Google Test filter = Suite.Case
[==========] Running 1 test from 1 test suite.
[ RUN      ] Suite.Case
/home/ci/work/MyProject/src/first.cc:10
first assertion text
/home/ci/work/MyProject/src/second.cc:20
second assertion text
[  FAILED  ] Suite.Case (2 ms)
[==========] 1 test from 1 test suite ran.`

func TestScanFailureOutput(t *testing.T) {
	t.Run("first location wins, all lines collected", func(t *testing.T) {
		location, lines := scanFailureOutput(failureOutput, "MyProject", "Suite.Case")

		if location == nil {
			t.Fatal("expected a location")
		}
		if location.File != "src/first.cc" || location.Line != 10 {
			t.Errorf("unexpected location: %+v", location)
		}
		if len(lines) != 2 {
			t.Fatalf("expected 2 message lines, got %d: %v", len(lines), lines)
		}
		if lines[0] != "first assertion text" || lines[1] != "second assertion text" {
			t.Errorf("unexpected lines: %v", lines)
		}
	})

	t.Run("no source root disables location extraction", func(t *testing.T) {
		location, lines := scanFailureOutput(failureOutput, "", "Suite.Case")

		if location != nil {
			t.Errorf("expected no location, got %+v", location)
		}
		// The path lines stay in the message when no root is configured
		if len(lines) != 4 {
			t.Errorf("expected 4 message lines, got %d: %v", len(lines), lines)
		}
	})

	t.Run("no gtest block", func(t *testing.T) {
		location, lines := scanFailureOutput("plain failure output\nno markers here", "MyProject", "t")

		if location != nil {
			t.Errorf("expected no location, got %+v", location)
		}
		if lines != nil {
			t.Errorf("expected no lines, got %v", lines)
		}
	})

	t.Run("lines outside the block are ignored", func(t *testing.T) {
		_, lines := scanFailureOutput(failureOutput, "MyProject", "Suite.Case")
		for _, line := range lines {
			if strings.Contains(line, "test suite ran") {
				t.Errorf("line after the FAILED marker leaked into the message: %q", line)
			}
		}
	})
}

func TestDecodeSystemOut(t *testing.T) {
	in := "before[NON-XML-CHAR-0x1B][0mafter"
	out := decodeSystemOut(in)
	if out != "before\x1b[0mafter" {
		t.Errorf("unexpected decode result: %q", out)
	}
}
