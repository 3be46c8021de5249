package logger

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestLevel(t *testing.T) {
	assert.Equal(t, zapcore.DebugLevel, Level(true))
	assert.Equal(t, zapcore.InfoLevel, Level(false))
}

func TestNew(t *testing.T) {
	for _, verbose := range []bool{false, true} {
		l, err := New(verbose)
		require.NoError(t, err)
		require.NotNil(t, l)
		assert.Equal(t, verbose, l.Desugar().Core().Enabled(zapcore.DebugLevel))
		_ = l.Sync()
	}
}

func TestNew_Outputs(t *testing.T) {
	path := filepath.Join(t.TempDir(), "drivergen.log")

	l, err := New(false, path)
	require.NoError(t, err)

	l.Debugw("hidden")
	l.Infow("shown", FieldClass, "MainWindowDriver")
	_ = l.Sync()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "shown")
	assert.Contains(t, string(data), "MainWindowDriver")
	assert.NotContains(t, string(data), "hidden")
}

func TestOrNop(t *testing.T) {
	assert.NotNil(t, OrNop(nil))

	l := zap.NewExample().Sugar()
	assert.Same(t, l, OrNop(l))
}

func TestNamed(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)

	Named(zap.New(core).Sugar(), "resolve").Debugw("hop", FieldSlot, "btn")

	require.Equal(t, 1, logs.Len())
	entry := logs.All()[0]
	assert.Equal(t, "resolve", entry.LoggerName)
	assert.Equal(t, "resolve", entry.ContextMap()[FieldComponent])
	assert.Equal(t, "btn", entry.ContextMap()[FieldSlot])

	// nil logger is safe
	Named(nil, "gen").Infow("discarded")
}
