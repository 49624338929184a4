package app

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/talkincode/fudofusion/config"
	"github.com/talkincode/fudofusion/internal/menustore"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func TestApplicationInit(t *testing.T) {
	dir := t.TempDir()
	cfg := &config.AppConfig{
		System: config.SysConfig{Appid: "test", Workdir: dir, MenuFile: "menu.csv"},
		Logger: config.LogConfig{
			Mode:       "development",
			Level:      "debug",
			FileEnable: true,
			Filename:   filepath.Join(dir, "logs", "test.log"),
		},
	}
	a := NewApplication(cfg)
	require.NoError(t, a.Init())
	defer a.Release()

	require.Equal(t, filepath.Join(dir, "menu.csv"), a.MenuStore().Path())

	zap.L().Info("hello")
	_ = zap.L().Sync()
	data, err := os.ReadFile(cfg.Logger.Filename)
	require.NoError(t, err)
	require.Contains(t, string(data), "hello")
}

func TestApplicationOverrideStore(t *testing.T) {
	cfg := &config.AppConfig{Logger: config.LogConfig{Mode: "production"}}
	a := NewApplication(cfg)
	store := menustore.NewCSVStore(filepath.Join(t.TempDir(), "x.csv"))
	a.OverrideStore(store)
	require.NoError(t, a.Init())
	require.Same(t, store, a.MenuStore())
}

func TestLoggerWithoutFile(t *testing.T) {
	t.Run("only errors reach the terminal", func(t *testing.T) {
		logger, err := buildLogger(config.LogConfig{Mode: "development", Level: "debug"})
		require.NoError(t, err)
		require.False(t, logger.Core().Enabled(zapcore.DebugLevel))
		require.False(t, logger.Core().Enabled(zapcore.WarnLevel))
		require.True(t, logger.Core().Enabled(zapcore.ErrorLevel))
	})

	t.Run("a stricter level is honored", func(t *testing.T) {
		logger, err := buildLogger(config.LogConfig{Mode: "production", Level: "fatal"})
		require.NoError(t, err)
		require.False(t, logger.Core().Enabled(zapcore.ErrorLevel))
		require.True(t, logger.Core().Enabled(zapcore.FatalLevel))
	})
}

func TestLoggerWithFileKeepsConfiguredLevel(t *testing.T) {
	logger, err := buildLogger(config.LogConfig{
		Mode:       "production",
		Level:      "debug",
		FileEnable: true,
		Filename:   filepath.Join(t.TempDir(), "app.log"),
	})
	require.NoError(t, err)
	require.True(t, logger.Core().Enabled(zapcore.DebugLevel))
}

func TestApplicationBadLevel(t *testing.T) {
	cfg := &config.AppConfig{Logger: config.LogConfig{Level: "loud"}}
	require.Error(t, NewApplication(cfg).Init())
}
