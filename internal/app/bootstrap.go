package app

import (
	"github.com/talkincode/fudofusion/config"
)

// Bootstrap loads the configuration, applies the command line menu override
// and initializes the application. Callers must Release it.
func Bootstrap(cfile, menuFile string) (*Application, error) {
	cfg, err := config.LoadConfig(cfile)
	if err != nil {
		return nil, err
	}
	if menuFile != "" {
		cfg.System.MenuFile = menuFile
	}
	a := NewApplication(cfg)
	if err := a.Init(); err != nil {
		return nil, err
	}
	return a, nil
}
