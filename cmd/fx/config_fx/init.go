package config_fx

import (
	"os"

	"go.uber.org/fx"

	"sportapp/internal/config"
)

const defaultConfigPath = "config.yaml"

var Module = fx.Provide(provideConfig)

func provideConfig() (*config.Config, error) {
	path := os.Getenv("SPORTAPP_CONFIG")
	if path == "" {
		path = defaultConfigPath
	}
	return config.Load(path)
}
