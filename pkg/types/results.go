package types

// RunResult holds the result of the 'run' command
type RunResult struct {
	Branch       string   `json:"branch"`
	ConfigSource string   `json:"configSource"` // "defaults", "file" or "null"
	ConfigPath   string   `json:"configPath"`
	System       string   `json:"system"`
	Available    []string `json:"available"`
	Matched      []string `json:"matched"`
	Targets      []string `json:"targets"`
	// Command is nil when nothing matched
	Command     *Command     `json:"command,omitempty"`
	DryRun      bool         `json:"dryRun"`
	Incremental bool         `json:"incremental"`
	Servers     []string     `json:"servers,omitempty"`
	Build       BuildOutcome `json:"build"`
}

// BuildStatus is the state of the build step of a run
type BuildStatus string

const (
	BuildSkipped   BuildStatus = "skipped"   // nothing matched
	BuildPlanned   BuildStatus = "planned"   // dry run
	BuildSucceeded BuildStatus = "succeeded" // build exited 0
	BuildFailed    BuildStatus = "failed"
)

// BuildOutcome describes how the build step ended
type BuildOutcome struct {
	Status   BuildStatus `json:"status"`
	ExitCode int         `json:"exitCode,omitempty"`
	Error    string      `json:"error,omitempty"`
}

// AttributesResult holds the result of the 'attrs' command
type AttributesResult struct {
	FlakePath  string   `json:"flakePath"`
	System     string   `json:"system"`
	Attributes []string `json:"attributes"`
}

// RuleInfo describes one build rule for display
type RuleInfo struct {
	Include []string `json:"include"`
	Exclude []string `json:"exclude"`
	Branch  *string  `json:"branch,omitempty"`
	Applies bool     `json:"applies"`
}

// ConfigResult holds the result of the 'config' command
type ConfigResult struct {
	Path     string     `json:"path"`
	Source   string     `json:"source"`
	Branch   string     `json:"branch,omitempty"`
	Rules    []RuleInfo `json:"rules"`
	YAML     string     `json:"yaml"`
	Checked  bool       `json:"checked"`
	Problems []string   `json:"problems,omitempty"`
}

// Valid reports whether a checked config had no problems
func (r *ConfigResult) Valid() bool {
	return len(r.Problems) == 0
}
