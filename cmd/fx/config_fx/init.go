package config_fx

import (
	"go.uber.org/fx"

	"holiday-api/internal/config"
	"holiday-api/internal/infra"
)

var Module = fx.Provide(provideConfig)

func provideConfig() (*config.Config, error) {
	cfg, err := config.LoadFromEnv()
	if err != nil {
		return nil, err
	}
	infra.SetupLogger(cfg.Log)
	return cfg, nil
}
