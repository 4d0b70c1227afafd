package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestShouldOutput(t *testing.T) {
	tests := []struct {
		category  OutputCategory
		verbosity int
		want      bool
	}{
		{OutputResults, VerbosityUser, true},
		{OutputErrors, VerbosityUser, true},
		{OutputSummary, VerbosityUser, false},
		{OutputSummary, VerbosityInfo, true},
		{OutputDiffs, VerbosityInfo, false},
		{OutputDiffs, VerbosityDebug, true},
		{OutputUnchanged, VerbosityDebug, false},
		{OutputUnchanged, VerbosityTrace, true},
		{OutputCategory(99), VerbosityDebug, false},
		{OutputCategory(99), VerbosityTrace, true},
	}

	for _, tt := range tests {
		t.Run(CategoryName(tt.category), func(t *testing.T) {
			assert.Equal(t, tt.want, ShouldOutput(tt.verbosity, tt.category))
		})
	}
}

func TestVerbosityDescription(t *testing.T) {
	assert.Equal(t, "results and errors only", VerbosityDescription(-1))
	assert.Contains(t, VerbosityDescription(VerbosityDebug), "diffs")
	assert.Contains(t, VerbosityDescription(9), "unchanged")
}
