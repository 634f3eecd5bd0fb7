package config

const (
	// DefaultEnvFile is the optional dotenv file loaded on startup
	DefaultEnvFile = ".env"
	// DefaultSourceRoot disables failure location extraction when empty
	DefaultSourceRoot = ""

	// EnvSourceRoot names the source tree marker used to extract file:line
	// locations from test output (e.g. the repository directory name)
	EnvSourceRoot = "CJR_SOURCE_ROOT"
	// EnvNoColor disables colored console output when set
	EnvNoColor = "CJR_NO_COLOR"
	// EnvStepSummary is set by the CI host to the step summary file path
	EnvStepSummary = "GITHUB_STEP_SUMMARY"
)
