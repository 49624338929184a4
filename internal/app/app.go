package app

import (
	"os"
	"path/filepath"
	"time"
	_ "time/tzdata"

	"github.com/talkincode/fudofusion/config"
	"github.com/talkincode/fudofusion/internal/menustore"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

type Application struct {
	appConfig *config.AppConfig
	store     menustore.MenuStore
}

// Ensure Application implements all interfaces
var (
	_ ConfigProvider = (*Application)(nil)
	_ StoreProvider  = (*Application)(nil)
	_ AppContext     = (*Application)(nil)
)

func NewApplication(appConfig *config.AppConfig) *Application {
	return &Application{appConfig: appConfig}
}

func (a *Application) Config() *config.AppConfig {
	return a.appConfig
}

func (a *Application) MenuStore() menustore.MenuStore {
	return a.store
}

// OverrideStore replaces the menu store (used in tests).
func (a *Application) OverrideStore(store menustore.MenuStore) {
	a.store = store
}

func (a *Application) Init() error {
	cfg := a.appConfig
	if cfg.System.Location != "" {
		loc, err := time.LoadLocation(cfg.System.Location)
		if err != nil {
			zap.S().Error("timezone config error")
		} else {
			time.Local = loc
		}
	}

	logger, err := buildLogger(cfg.Logger)
	if err != nil {
		return err
	}
	zap.ReplaceGlobals(logger)

	if a.store == nil {
		a.store = menustore.NewCSVStore(cfg.MenuPath())
	}
	zap.S().Infof("%s started, menu file: %s", cfg.System.Appid, a.store.Path())
	return nil
}

// buildLogger keeps the terminal for the user: stderr only ever gets errors
// (and only when the configured level lets them through), everything at the
// configured level goes to the rotating file when enabled.
func buildLogger(lc config.LogConfig) (*zap.Logger, error) {
	var zapConfig zap.Config
	if lc.Mode == "production" {
		zapConfig = zap.NewProductionConfig()
	} else {
		zapConfig = zap.NewDevelopmentConfig()
	}
	if lc.Level != "" {
		level, err := zap.ParseAtomicLevel(lc.Level)
		if err != nil {
			return nil, err
		}
		zapConfig.Level = level
	}

	stderrCore := zapcore.NewCore(
		zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig()),
		zapcore.Lock(os.Stderr),
		zap.LevelEnablerFunc(func(lvl zapcore.Level) bool {
			return lvl >= zapcore.ErrorLevel && zapConfig.Level.Enabled(lvl)
		}),
	)
	if !lc.FileEnable {
		return zap.New(stderrCore, zap.AddCaller()), nil
	}

	if err := os.MkdirAll(filepath.Dir(lc.Filename), 0o755); err != nil {
		return nil, err
	}
	lumberJackLogger := &lumberjack.Logger{
		Filename:   lc.Filename,
		MaxSize:    64,
		MaxBackups: 7,
		MaxAge:     7,
		Compress:   false,
	}

	core := zapcore.NewTee(
		zapcore.NewCore(
			zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig()),
			zapcore.AddSync(lumberJackLogger),
			zapConfig.Level,
		),
		stderrCore,
	)
	return zap.New(core, zap.AddCaller()), nil
}

// Release releases application resources
func (a *Application) Release() {
	_ = zap.L().Sync()
}
