package cli

import "cjr/internal/config"

// Flags holds command-line flags
type Flags struct {
	IncludeSkipped bool
	NoProgress     bool
	SkipPassed     bool
	SkipFailed     bool
	SkipSkipped    bool
}

// ToConfigFlags converts CLI flags to config flags
func (f *Flags) ToConfigFlags() config.Flags {
	return config.Flags{
		IncludeSkipped: f.IncludeSkipped,
		NoProgress:     f.NoProgress,
		SkipPassed:     f.SkipPassed,
		SkipFailed:     f.SkipFailed,
		SkipSkipped:    f.SkipSkipped,
	}
}
