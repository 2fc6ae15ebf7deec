package main

import (
	"fmt"

	"github.com/DjordjeVuckovic/linked-calc/internal/history/factory"
)

type AppConfig struct {
	StorageConfig *factory.StorageConfig
}

type AppSettings struct{}

func NewAppConfig() *AppSettings {
	return &AppSettings{}
}

// Load reads the application configuration. The server configuration must be
// loaded first so the .env file is already applied.
func (a *AppSettings) Load() (*AppConfig, error) {
	storageCfg, err := factory.LoadEnv()
	if err != nil {
		return nil, fmt.Errorf("failed to load storage config: %w", err)
	}

	return &AppConfig{StorageConfig: storageCfg}, nil
}
