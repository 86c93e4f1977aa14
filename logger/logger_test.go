package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultLoggerIsSafe(t *testing.T) {
	// Package-level helpers must not panic before Initialize is called.
	Info("info before init")
	Infow("structured before init", "key", "value")
	Errorw("error before init", "key", "value")
	Warnw("warn before init")
	Debugw("debug before init")
	Cleanup()
}

func TestInitializeConsole(t *testing.T) {
	require.NoError(t, Initialize(false))
	assert.False(t, JSONOutput)
	assert.NotNil(t, Logger)

	Infow("console logger works", "mode", "human")
	Cleanup()
}

func TestInitializeJSON(t *testing.T) {
	require.NoError(t, Initialize(true))
	assert.True(t, JSONOutput)
	assert.NotNil(t, Logger)

	Infow("json logger works", "mode", "machine")
	Cleanup()
}
