package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/cast"
	"gopkg.in/yaml.v3"
)

// SysConfig system configuration
type SysConfig struct {
	Appid      string `yaml:"appid"`
	Location   string `yaml:"location"`
	Workdir    string `yaml:"workdir"`
	MenuFile   string `yaml:"menu_file"`
	TicketNode int64  `yaml:"ticket_node"`
}

// LogConfig logging configuration. Level applies to the log file; the
// terminal only ever shows errors, so without a file lower levels are dropped.
type LogConfig struct {
	Mode       string `yaml:"mode"`
	Level      string `yaml:"level"`
	FileEnable bool   `yaml:"file_enable"`
	Filename   string `yaml:"filename"`
}

type AppConfig struct {
	System SysConfig `yaml:"system"`
	Logger LogConfig `yaml:"logger"`
}

// MenuPath resolves the backing menu file against the workdir
func (c *AppConfig) MenuPath() string {
	if filepath.IsAbs(c.System.MenuFile) || c.System.Workdir == "" {
		return c.System.MenuFile
	}
	return filepath.Join(c.System.Workdir, c.System.MenuFile)
}

// GetLogDir log directory under the workdir
func (c *AppConfig) GetLogDir() string {
	return filepath.Join(c.System.Workdir, "logs")
}

var DefaultAppConfig = &AppConfig{
	System: SysConfig{
		Appid:      "FudoFusion",
		Location:   "Local",
		Workdir:    ".",
		MenuFile:   "menu_items.csv",
		TicketNode: 1,
	},
	Logger: LogConfig{
		Mode:       "production",
		Level:      "info",
		FileEnable: true,
		Filename:   "logs/fudofusion.log",
	},
}

// LoadConfig builds the configuration from defaults, the YAML file (if any),
// a .env file in the working directory and FUDO_* environment variables,
// in that order. An empty cfile falls back to $FUDO_CONFIG; a missing file
// is not an error.
func LoadConfig(cfile string) (*AppConfig, error) {
	_ = godotenv.Load()

	cfg := *DefaultAppConfig
	if cfile == "" {
		cfile = os.Getenv("FUDO_CONFIG")
	}
	if cfile != "" {
		data, err := os.ReadFile(cfile)
		switch {
		case errors.Is(err, os.ErrNotExist):
		case err != nil:
			return nil, err
		default:
			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return nil, err
			}
		}
	}

	setEnvValue("FUDO_WORKDIR", &cfg.System.Workdir)
	setEnvValue("FUDO_MENU_FILE", &cfg.System.MenuFile)
	setEnvValue("FUDO_LOCATION", &cfg.System.Location)
	setEnvInt64Value("FUDO_TICKET_NODE", &cfg.System.TicketNode)
	setEnvValue("FUDO_LOGGER_MODE", &cfg.Logger.Mode)
	setEnvValue("FUDO_LOGGER_LEVEL", &cfg.Logger.Level)
	setEnvValue("FUDO_LOGGER_FILENAME", &cfg.Logger.Filename)
	setEnvBoolValue("FUDO_LOGGER_FILE_ENABLE", &cfg.Logger.FileEnable)

	switch {
	case cfg.Logger.Filename == "":
		cfg.Logger.Filename = filepath.Join(cfg.GetLogDir(), "fudofusion.log")
	case !filepath.IsAbs(cfg.Logger.Filename):
		cfg.Logger.Filename = filepath.Join(cfg.System.Workdir, cfg.Logger.Filename)
	}
	return &cfg, nil
}

func setEnvValue(name string, val *string) {
	if v := strings.TrimSpace(os.Getenv(name)); v != "" {
		*val = v
	}
}

func setEnvBoolValue(name string, val *bool) {
	if v := strings.TrimSpace(os.Getenv(name)); v != "" {
		if b, err := cast.ToBoolE(v); err == nil {
			*val = b
		}
	}
}

func setEnvInt64Value(name string, val *int64) {
	if v := strings.TrimSpace(os.Getenv(name)); v != "" {
		if i, err := cast.ToInt64E(v); err == nil {
			*val = i
		}
	}
}
