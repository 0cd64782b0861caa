package logger

import (
	"testing"

	"exam-prep/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestGet_BeforeInitialize(t *testing.T) {
	log = nil
	l := Get()
	require.NotNil(t, l)
	assert.NotPanics(t, func() { l.Info("discarded") })
	assert.NoError(t, Sync())
}

func TestInitialize(t *testing.T) {
	t.Cleanup(func() { log = nil })

	require.NoError(t, Initialize(config.LoggerConfig{Level: "debug", Env: "development"}))
	assert.True(t, Get().Core().Enabled(zapcore.DebugLevel))

	require.NoError(t, Initialize(config.LoggerConfig{Level: "not-a-level", Env: "production"}))
	assert.False(t, Get().Core().Enabled(zapcore.DebugLevel))
	assert.True(t, Get().Core().Enabled(zapcore.InfoLevel))
}

func TestReplace(t *testing.T) {
	log = nil
	core, logs := observer.New(zapcore.InfoLevel)

	restore := Replace(zap.New(core))
	Get().Info("captured")
	restore()

	assert.Equal(t, 1, logs.FilterMessage("captured").Len())
	assert.Nil(t, log)
}
