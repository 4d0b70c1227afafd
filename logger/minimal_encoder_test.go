package logger

import (
	"regexp"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// stripANSI removes ANSI color codes from a string for testing
func stripANSI(str string) string {
	ansiRegex := regexp.MustCompile(`\x1b\[[0-9;]*m`)
	return ansiRegex.ReplaceAllString(str, "")
}

// The minimal encoder must never silently discard fields.
func TestMinimalEncoderNeverDiscardsFields(t *testing.T) {
	encoder := newMinimalEncoder()

	entry := zapcore.Entry{
		Level:      zapcore.InfoLevel,
		Time:       time.Date(2025, 6, 15, 13, 4, 35, 0, time.UTC),
		LoggerName: "mapper.resources",
		Message:    "Mapped target",
	}

	fields := []zapcore.Field{
		zap.String(FieldTarget, "Kit"),
		zap.String(FieldBundle, "App_Kit"),
		zap.Int(FieldCount, 2),
		zap.Bool("extracted", true),
		zap.Error(nil),
	}

	buf, err := encoder.EncodeEntry(entry, fields)
	require.NoError(t, err)
	out := stripANSI(buf.String())

	assert.True(t, strings.HasPrefix(out, "13:04:35  m.resources  Mapped target"), out)
	for _, want := range []string{"target=Kit", "bundle=App_Kit", "count=2", "extracted=true"} {
		assert.Contains(t, out, want)
	}
	assert.True(t, strings.HasSuffix(out, "\n"))
}

func TestMinimalEncoderIncludesContextFields(t *testing.T) {
	encoder := newMinimalEncoder()
	zap.String(FieldRunID, "run-1").AddTo(encoder)

	clone := encoder.Clone()
	buf, err := clone.EncodeEntry(zapcore.Entry{
		Level:   zapcore.WarnLevel,
		Time:    time.Now(),
		Message: "Stale accessor",
	}, []zapcore.Field{zap.String(FieldPath, "Derived/Sources/TuistBundle+Kit.swift")})
	require.NoError(t, err)

	out := stripANSI(buf.String())
	assert.Contains(t, out, "WARN")
	assert.Contains(t, out, "run_id=run-1")
	assert.Contains(t, out, "path=Derived/Sources/TuistBundle+Kit.swift")
	assert.Less(t, strings.Index(out, "run_id="), strings.Index(out, "path="))
}

func TestAbbreviateName(t *testing.T) {
	assert.Equal(t, "m.resources", abbreviateName("mapper.resources"))
	assert.Equal(t, "s.executor", abbreviateName("sideeffect.executor"))
	assert.Equal(t, "cli", abbreviateName("cli"))
}
