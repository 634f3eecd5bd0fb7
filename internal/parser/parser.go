package parser

import "cjr/internal/domain"

// Parser turns a JUnit XML report file into a classified report
type Parser interface {
	ParseFile(path string) (*domain.Report, error)
}
