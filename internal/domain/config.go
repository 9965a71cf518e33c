package domain

// Config represents the aoc workspace configuration loaded from aoc.yaml.
type Config struct {
	Defaults DefaultsConfig
	Paths    PathsConfig
	Fetch    FetchConfig
	Tracing  TracingConfig
}

type DefaultsConfig struct {
	Year int
}

type PathsConfig struct {
	InputsDir   string
	RunsDir     string
	AnswersFile string
}

type FetchConfig struct {
	BaseURL    string
	SessionEnv string
}

type TracingConfig struct {
	Enabled  bool
	Exporter string
	FilePath string
}

// FirstYear is the first puzzle calendar.
const FirstYear = 2015

// DefaultConfig provides sane defaults if aoc.yaml is partially missing.
func DefaultConfig() Config {
	return Config{
		Defaults: DefaultsConfig{
			Year: 2021,
		},
		Paths: PathsConfig{
			InputsDir:   "inputs",
			RunsDir:     "runs",
			AnswersFile: "answers.yaml",
		},
		Fetch: FetchConfig{
			BaseURL:    "https://adventofcode.com",
			SessionEnv: "AOC_SESSION",
		},
		Tracing: TracingConfig{
			Enabled:  false,
			Exporter: "stdout",
		},
	}
}

// WorkspaceSpec describes where a workspace should be created.
type WorkspaceSpec struct {
	Root string
	// Year seeds defaults.year in the generated aoc.yaml; zero keeps the default.
	Year int
}
