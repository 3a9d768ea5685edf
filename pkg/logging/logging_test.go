package logging

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestParseLevel(t *testing.T) {
	cases := map[string]zapcore.Level{
		"debug":   zapcore.DebugLevel,
		"DEBUG":   zapcore.DebugLevel,
		"warning": zapcore.WarnLevel,
		" error ": zapcore.ErrorLevel,
		"":        zapcore.InfoLevel,
		"verbose": zapcore.InfoLevel,
	}
	for in, want := range cases {
		assert.Equal(t, want, ParseLevel(in), "level %q", in)
	}
}

func TestLoggerWritesKeyValues(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	log := FromZap(zap.New(core)).Named("hh").With("component", "gateway")

	log.Debug("request sent", "path", "/vacancies", "status", 200)

	entries := logs.All()
	require.Len(t, entries, 1)
	assert.Equal(t, "hh", entries[0].LoggerName)
	fields := entries[0].ContextMap()
	assert.Equal(t, "gateway", fields["component"])
	assert.Equal(t, "/vacancies", fields["path"])
	assert.EqualValues(t, 200, fields["status"])
}

func TestNilLoggerIsSafe(t *testing.T) {
	var log *Logger
	log.Info("ignored")
	log.With("k", "v").Warn("ignored")
	assert.NoError(t, log.Sync())
}
