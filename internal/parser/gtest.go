package parser

import (
	"regexp"
	"strconv"
	"strings"

	log "github.com/sirupsen/logrus"

	"cjr/internal/domain"
)

// GTest output markers delimiting the failure block of one test
const (
	gtestRunMarker    = "[ RUN      ]"
	gtestFailedMarker = "[  FAILED  ]"
)

// nonXMLEscape is how CTest encodes the ESC byte in system-out
const nonXMLEscape = "[NON-XML-CHAR-0x1B]"

// decodeSystemOut restores the escape bytes CTest replaced in system-out
func decodeSystemOut(s string) string {
	return strings.ReplaceAll(s, nonXMLEscape, "\x1b")
}

// locationPattern matches source lines like ".../<root>/dir/file.cc:123"
func locationPattern(sourceRoot string) *regexp.Regexp {
	return regexp.MustCompile(`.+?` + regexp.QuoteMeta(sourceRoot) + `/(.*):(\d+)`)
}

// scanFailureOutput extracts the first source location and the message lines
// from the GTest failure block of a failed case's output. Location extraction
// needs a configured source root; without one only message lines are returned.
func scanFailureOutput(systemOut, sourceRoot, testName string) (*domain.Location, []string) {
	var re *regexp.Regexp
	if sourceRoot != "" {
		re = locationPattern(sourceRoot)
	}

	var location *domain.Location
	var lines []string
	inBlock := false

	for _, line := range strings.Split(systemOut, "\n") {
		if strings.Contains(line, gtestRunMarker) {
			inBlock = true
			continue
		}
		if inBlock && strings.Contains(line, gtestFailedMarker) {
			break
		}
		if !inBlock {
			continue
		}

		if re != nil {
			if m := re.FindStringSubmatch(line); m != nil {
				if location == nil {
					num, err := strconv.Atoi(m[2])
					if err != nil {
						log.Warnf("for %s, matched %s without a usable line number", testName, m[1])
						num = 1
					}
					location = &domain.Location{File: m[1], Line: num}
				}
				continue
			}
		}

		lines = append(lines, line)
	}

	if !inBlock && systemOut != "" {
		log.Debugf("no GTest output block found for %s", testName)
	}

	// Trim leading and trailing empty lines
	for len(lines) > 0 && strings.TrimSpace(lines[0]) == "" {
		lines = lines[1:]
	}
	for len(lines) > 0 && strings.TrimSpace(lines[len(lines)-1]) == "" {
		lines = lines[:len(lines)-1]
	}

	return location, lines
}
