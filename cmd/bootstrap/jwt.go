package bootstrap

import (
	"fmt"
	"time"

	"cozycup/internal/pkg/clock"
	"cozycup/internal/pkg/config"
	"cozycup/internal/pkg/jwt"
	"cozycup/internal/pkg/qrtoken"

	"go.uber.org/fx"
)

var JWTModule = fx.Module("jwt",
	fx.Provide(
		clock.NewRealClock,
		NewJWTService,
		NewQRTokenService,
	),
)

func NewJWTService(cfg config.Config) (*jwt.Service, error) {
	accessDuration, err := time.ParseDuration(cfg.JWT.AccessDuration)
	if err != nil {
		return nil, fmt.Errorf("invalid JWT_ACCESS_DURATION: %w", err)
	}

	refreshDuration, err := time.ParseDuration(cfg.JWT.RefreshDuration)
	if err != nil {
		return nil, fmt.Errorf("invalid JWT_REFRESH_DURATION: %w", err)
	}

	return jwt.NewService(cfg.JWT.Secret, accessDuration, refreshDuration), nil
}

// NewQRTokenService boots without keys; mint and verify report SERVER_CONFIG until they are set.
func NewQRTokenService(cfg config.Config, clk clock.Clock) (*qrtoken.Service, error) {
	return qrtoken.NewService(cfg.QR, clk)
}
