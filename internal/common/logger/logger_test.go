// internal/common/logger/logger_test.go
package logger

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func observedLogger() (Logger, *observer.ObservedLogs) {
	core, logs := observer.New(zap.DebugLevel)
	return NewZapAdapter(zap.New(core)), logs
}

func TestZapAdapter_LevelsAndFields(t *testing.T) {
	log, logs := observedLogger()

	log.Debug("d", nil)
	log.Info("i", map[string]interface{}{"submission_id": "abc"})
	log.Warn("w", nil)
	log.Error("e", nil)

	entries := logs.All()
	require.Len(t, entries, 4)
	assert.Equal(t, zap.DebugLevel, entries[0].Level)
	assert.Equal(t, zap.InfoLevel, entries[1].Level)
	assert.Equal(t, "abc", entries[1].ContextMap()["submission_id"])
	assert.Equal(t, zap.WarnLevel, entries[2].Level)
	assert.Equal(t, zap.ErrorLevel, entries[3].Level)
}

func TestZapAdapter_WithFields(t *testing.T) {
	log, logs := observedLogger()

	scoped := log.WithFields(map[string]interface{}{"document": "tier_thresholds"})
	scoped.Info("installed", map[string]interface{}{"version": int64(2)})

	entries := logs.All()
	require.Len(t, entries, 1)
	ctx := entries[0].ContextMap()
	assert.Equal(t, "tier_thresholds", ctx["document"])
	assert.Equal(t, int64(2), ctx["version"])

	// the parent logger is unchanged
	log.Info("bare", nil)
	assert.NotContains(t, logs.All()[1].ContextMap(), "document")
}

func TestZapAdapter_WithError(t *testing.T) {
	log, logs := observedLogger()

	log.WithError(errors.New("boom")).Error("persist failed", nil)

	entries := logs.All()
	require.Len(t, entries, 1)
	assert.Equal(t, "boom", entries[0].ContextMap()["error"])
}

func TestNew_LevelSelection(t *testing.T) {
	debug := New("debug", "json")
	assert.True(t, debug.Core().Enabled(zap.DebugLevel))

	warn := New("warn", "console")
	assert.False(t, warn.Core().Enabled(zap.InfoLevel))
	assert.True(t, warn.Core().Enabled(zap.WarnLevel))

	fallback := New("nonsense", "json")
	assert.True(t, fallback.Core().Enabled(zap.InfoLevel))
	assert.False(t, fallback.Core().Enabled(zap.DebugLevel))
}

func TestNoOpLogger_SafeEverywhere(t *testing.T) {
	log := NewNoOpLogger()
	assert.NotPanics(t, func() {
		log.WithError(errors.New("x")).WithFields(map[string]interface{}{"k": "v"}).Error("ignored", nil)
	})
}
