package bootstrap

import (
	"retreat-api/internal/pkg/clock"
	"retreat-api/internal/pkg/config"
	"retreat-api/internal/pkg/jwt"

	"go.uber.org/fx"
)

var JWTModule = fx.Module("jwt",
	fx.Provide(
		NewJWTService,
	),
)

func NewJWTService(cfg config.Config, clk clock.Clock) *jwt.Service {
	return jwt.NewService(cfg.Session.Secret, cfg.Session.Duration, clk)
}
