package logger

// Output controls what categories of CLI output are shown at each verbosity level.
//
// Unlike log levels (which filter by severity), output categories control
// WHAT types of information are printed regardless of severity.
//
// Verbosity Levels:
//
//	0 (default) - Results, errors with hints, final status
//	1 (-v)      - + Per-project progress, change summaries
//	2 (-vv)     - + Unified diffs, effective config, timing
//	3 (-vvv)    - + Every side effect, including unchanged files

// OutputCategory defines a category of output that can be enabled/disabled
type OutputCategory int

const (
	// Level 0 (default) - Always shown
	OutputResults    OutputCategory = iota // Command output
	OutputErrors                           // Errors with hints and resolution steps
	OutputUserStatus                       // Final success/failure status

	// Level 1 (-v) - Informational
	OutputProgress // Per-project progress
	OutputSummary  // Created/updated/deleted counts

	// Level 2 (-vv) - Detailed
	OutputDiffs  // Unified diffs of generated files
	OutputConfig // Config values loaded/applied
	OutputTiming // Operation timing

	// Level 3 (-vvv) - Debug
	OutputUnchanged // Side effects that needed no work
)

// categoryLevels maps each output category to its minimum verbosity level
var categoryLevels = map[OutputCategory]int{
	OutputResults:    VerbosityUser,
	OutputErrors:     VerbosityUser,
	OutputUserStatus: VerbosityUser,

	OutputProgress: VerbosityInfo,
	OutputSummary:  VerbosityInfo,

	OutputDiffs:  VerbosityDebug,
	OutputConfig: VerbosityDebug,
	OutputTiming: VerbosityDebug,

	OutputUnchanged: VerbosityTrace,
}

// ShouldOutput returns true if the given category should be shown at the given verbosity
func ShouldOutput(verbosity int, category OutputCategory) bool {
	minLevel, ok := categoryLevels[category]
	if !ok {
		// Unknown category, default to highest verbosity required
		return verbosity >= VerbosityTrace
	}
	return verbosity >= minLevel
}

// categoryNames provides human-readable names for output categories
var categoryNames = map[OutputCategory]string{
	OutputResults:    "results",
	OutputErrors:     "errors",
	OutputUserStatus: "status",
	OutputProgress:   "progress",
	OutputSummary:    "summary",
	OutputDiffs:      "diffs",
	OutputConfig:     "config",
	OutputTiming:     "timing",
	OutputUnchanged:  "unchanged",
}

// CategoryName returns the human-readable name for an output category
func CategoryName(category OutputCategory) string {
	if name, ok := categoryNames[category]; ok {
		return name
	}
	return "unknown"
}

// VerbosityDescription returns a description of what's shown at each level
func VerbosityDescription(verbosity int) string {
	switch {
	case verbosity <= VerbosityUser:
		return "results and errors only"
	case verbosity == VerbosityInfo:
		return "results, errors, progress and summaries"
	case verbosity == VerbosityDebug:
		return "above + diffs, config and timing"
	default:
		return "above + unchanged side effects"
	}
}
