package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestInitialize(t *testing.T) {
	tests := []struct {
		name       string
		jsonOutput bool
	}{
		{name: "JSON output mode", jsonOutput: true},
		{name: "Console output mode", jsonOutput: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			Logger = nil
			JSONOutput = false

			require.NoError(t, Initialize(tt.jsonOutput, VerbosityInfo))
			assert.NotNil(t, Logger)
			assert.Equal(t, tt.jsonOutput, JSONOutput)

			Logger = zap.NewNop().Sugar()
		})
	}
}

func TestInitializeWriter_JSON(t *testing.T) {
	defer func() { Logger = zap.NewNop().Sugar() }()

	var buf bytes.Buffer
	require.NoError(t, InitializeWriter(&buf, true, VerbosityDebug))

	ComponentLogger("mapper.resources").Debugw("Mapped target", FieldTarget, "Kit")
	Cleanup()

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "Mapped target", entry["msg"])
	assert.Equal(t, "mapper.resources", entry["logger"])
	assert.Equal(t, "Kit", entry[FieldTarget])
}

func TestInitializeWriter_VerbosityFilters(t *testing.T) {
	defer func() { Logger = zap.NewNop().Sugar() }()

	var buf bytes.Buffer
	require.NoError(t, InitializeWriter(&buf, false, VerbosityUser))

	Infow("hidden at default verbosity")
	assert.Empty(t, buf.String())

	Warnw("shown at default verbosity")
	assert.Contains(t, stripANSI(buf.String()), "shown at default verbosity")
}

func TestVerbosityToLevel(t *testing.T) {
	assert.Equal(t, zapcore.WarnLevel, VerbosityToLevel(0))
	assert.Equal(t, zapcore.InfoLevel, VerbosityToLevel(1))
	assert.Equal(t, zapcore.DebugLevel, VerbosityToLevel(2))
	assert.Equal(t, zapcore.DebugLevel, VerbosityToLevel(7))
	assert.Equal(t, zapcore.WarnLevel, VerbosityToLevel(-1))
}

func TestLoggerFromContext(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	base := zap.New(core).Sugar()

	ctx := WithComponent(WithRunID(context.Background(), "run-42"), "cli.generate")
	LoggerFromContext(ctx, base).Infow("Generating")

	require.Equal(t, 1, logs.Len())
	fields := logs.All()[0].ContextMap()
	assert.Equal(t, "run-42", fields[FieldRunID])
	assert.Equal(t, "cli.generate", fields[FieldComponent])
}

func TestLoggerFromContext_NoFields(t *testing.T) {
	core, _ := observer.New(zap.DebugLevel)
	base := zap.New(core).Sugar()

	assert.Same(t, base, LoggerFromContext(context.Background(), base))
}
