package ui

import "cjr/internal/domain"

// Viewer displays failed test cases in an interactive TUI
type Viewer interface {
	View(failures []domain.TestCase) error
}
