package bootstrap

import (
	"firm-digest/internal/pkg/config"
	"firm-digest/internal/pkg/jwt"

	"go.uber.org/fx"
)

var JWTModule = fx.Module("jwt",
	fx.Provide(
		NewJWTService,
	),
)

func NewJWTService(cfg config.Config) *jwt.Service {
	return jwt.NewService(cfg.Admin.JWTSecret, cfg.Admin.TokenDuration)
}
