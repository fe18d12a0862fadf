package config_fx

import (
	"time"

	"go.uber.org/fx"

	"weddy/internal/config"
	"weddy/pkg/utils"
)

// Module supplies the already loaded configuration to the graph.
func Module(cfg *config.Config) fx.Option {
	return fx.Options(
		fx.Supply(cfg),
		fx.Provide(provideTokenIssuer),
	)
}

func provideTokenIssuer(cfg *config.Config) *utils.TokenIssuer {
	return utils.NewTokenIssuer(cfg.Auth.JWTSecret, time.Hour)
}
