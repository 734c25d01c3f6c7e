package app_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"

	"libprime/internal/app"
	"libprime/internal/domain"
)

func TestParseConfig_OverridesDefaults(t *testing.T) {
	cfg, err := app.ParseConfig([]byte(`
backend = "remote"
remote = "http://10.0.0.1:9000"
workers = 3
log_level = "debug"
`))
	require.NoError(t, err)
	assert.Equal(t, app.BackendRemote, cfg.Backend)
	assert.Equal(t, "http://10.0.0.1:9000", cfg.Remote)
	assert.Equal(t, 3, cfg.Workers)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, ":8089", cfg.Listen)
}

func TestParseConfig_Invalid(t *testing.T) {
	_, err := app.ParseConfig([]byte(`backend = "python"`))
	assert.Error(t, err)

	_, err = app.ParseConfig([]byte(`workers = -1`))
	assert.Error(t, err)

	_, err = app.ParseConfig([]byte(`workers = "eight"`))
	assert.Error(t, err)
}

func TestLoadConfig(t *testing.T) {
	cfg, err := app.LoadConfig("")
	require.NoError(t, err)
	assert.Equal(t, app.DefaultConfig(), cfg)

	path := filepath.Join(t.TempDir(), "libprime.toml")
	require.NoError(t, os.WriteFile(path, []byte("workers = 2\n"), 0o600))
	cfg, err = app.LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, 2, cfg.Workers)
	assert.Equal(t, app.BackendNative, cfg.Backend)

	_, err = app.LoadConfig(filepath.Join(t.TempDir(), "missing.toml"))
	assert.Error(t, err)
}

func TestNewLogger(t *testing.T) {
	logger, err := app.NewLogger("warn", false)
	require.NoError(t, err)
	assert.False(t, logger.Core().Enabled(zapcore.DebugLevel))

	logger, err = app.NewLogger("warn", true)
	require.NoError(t, err)
	assert.True(t, logger.Core().Enabled(zapcore.DebugLevel))

	_, err = app.NewLogger("loud", false)
	assert.Error(t, err)
}

func TestNewWire_Native(t *testing.T) {
	w, err := app.NewWire(app.DefaultConfig(), nil)
	require.NoError(t, err)
	defer w.Close()

	v, err := w.Boundary.CallString(context.Background(), "1234567")
	require.NoError(t, err)
	assert.Equal(t, domain.Verdict{N: 1234567, Prime: false}, v)

	_, err = w.Boundary.Call(context.Background(), "foo")
	assert.ErrorIs(t, err, domain.ErrTypeMismatch)
	assert.EqualValues(t, 1, w.Counter.Calls())
}

func TestNewWire_MissingLibrary(t *testing.T) {
	cfg := app.DefaultConfig()
	cfg.Backend = app.BackendFFI
	cfg.Library = filepath.Join(t.TempDir(), "libprime.so")
	_, err := app.NewWire(cfg, nil)
	assert.ErrorIs(t, err, domain.ErrLibrary)
}

func TestWire_CheckWide_Native(t *testing.T) {
	w, err := app.NewWire(app.DefaultConfig(), nil)
	require.NoError(t, err)
	defer w.Close()

	v, err := w.CheckWide(32, "4294967291")
	require.NoError(t, err)
	assert.Equal(t, domain.WideVerdict{N: 4294967291, Width: 32, Prime: true}, v)

	v, err = w.CheckWide(64, "18446744073709551557")
	require.NoError(t, err)
	assert.True(t, v.Prime)

	v, err = w.CheckWide(64, "18446744073709551615")
	require.NoError(t, err)
	assert.False(t, v.Prime)

	_, err = w.CheckWide(32, "4294967296")
	assert.ErrorIs(t, err, domain.ErrOutOfRange)

	_, err = w.CheckWide(64, "foo")
	assert.ErrorIs(t, err, domain.ErrTypeMismatch)

	_, err = w.CheckWide(16, "7")
	assert.ErrorIs(t, err, domain.ErrUnsupportedWidth)
}

func TestWire_CheckWide_RemoteUnsupported(t *testing.T) {
	cfg := app.DefaultConfig()
	cfg.Backend = app.BackendRemote
	w, err := app.NewWire(cfg, nil)
	require.NoError(t, err)

	_, err = w.CheckWide(64, "7")
	assert.ErrorIs(t, err, domain.ErrUnsupportedWidth)
}
