package app

import (
	"github.com/talkincode/fudofusion/config"
	"github.com/talkincode/fudofusion/internal/menustore"
)

// ConfigProvider provides application configuration
type ConfigProvider interface {
	Config() *config.AppConfig
}

// StoreProvider provides access to the menu backing file
type StoreProvider interface {
	MenuStore() menustore.MenuStore
}

// AppContext combines all provider interfaces for full application context
type AppContext interface {
	ConfigProvider
	StoreProvider

	// Init configures logging and opens the menu store
	Init() error
	// Release flushes logs
	Release()
}
