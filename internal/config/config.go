package config

import (
	"os"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application
type Config struct {
	// SourceRoot is the source tree marker for failure location extraction.
	// Empty means locations are not extracted.
	SourceRoot string

	// StepSummaryPath is the CI step summary file, empty outside CI
	StepSummaryPath string

	// NoColor disables colored console output
	NoColor bool

	// Command flags
	Flags Flags
}

// Flags holds command-line flags
type Flags struct {
	IncludeSkipped bool
	NoProgress     bool
	SkipPassed     bool
	SkipFailed     bool
	SkipSkipped    bool
}

// New creates a new Config from defaults and the environment.
// A .env file is loaded when present; real environment variables win over it.
func New() *Config {
	_ = godotenv.Load(DefaultEnvFile)

	return &Config{
		SourceRoot:      getEnv(EnvSourceRoot, DefaultSourceRoot),
		StepSummaryPath: os.Getenv(EnvStepSummary),
		NoColor:         os.Getenv(EnvNoColor) != "",
	}
}

// Load creates a config and applies flags
func Load(flags Flags) *Config {
	cfg := New()
	cfg.Flags = flags
	return cfg
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
