package bootstrap

import (
	"context"
	"log/slog"
	"time"

	"cozycup/internal/handler/middleware"
	"cozycup/internal/pkg/config"

	"github.com/redis/go-redis/v9"
	"github.com/ulule/limiter/v3"
	"go.uber.org/fx"
)

var CacheModule = fx.Module("cache",
	fx.Provide(
		NewRedisClient,
		NewLimiterStore,
	),
)

// NewRedisClient returns nil when REDIS_ADDR is unset or the server does not
// answer; rate limiting then falls back to an in-process store.
func NewRedisClient(lc fx.Lifecycle, cfg config.Config, logger *slog.Logger) *redis.Client {
	if cfg.Redis.Addr == "" {
		return nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		logger.Warn("redis unavailable, using in-memory rate limit store", "addr", cfg.Redis.Addr, "error", err.Error())
		_ = client.Close()
		return nil
	}

	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return client.Close()
		},
	})
	return client
}

func NewLimiterStore(cfg config.Config, client *redis.Client) (limiter.Store, error) {
	return middleware.NewLimiterStore(cfg.RateLimit, client)
}
