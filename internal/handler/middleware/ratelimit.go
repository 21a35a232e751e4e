package middleware

import (
	"log/slog"
	"net/http"

	"cozycup/internal/handler/httperr"
	"cozycup/internal/pkg/config"
	"cozycup/internal/pkg/errs"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/ulule/limiter/v3"
	mgin "github.com/ulule/limiter/v3/drivers/middleware/gin"
	"github.com/ulule/limiter/v3/drivers/store/memory"
	sredis "github.com/ulule/limiter/v3/drivers/store/redis"
)

// NewLimiterStore shares counters through redis when a client is given and
// falls back to per-process memory otherwise.
func NewLimiterStore(cfg config.RateLimitConfig, client *redis.Client) (limiter.Store, error) {
	opts := limiter.StoreOptions{
		Prefix:          cfg.Prefix,
		MaxRetry:        3,
		CleanUpInterval: limiter.DefaultCleanUpInterval,
	}
	if client == nil {
		return memory.NewStoreWithOptions(opts), nil
	}
	store, err := sredis.NewStoreWithOptions(client, opts)
	if err != nil {
		return nil, errs.Wrap(err, "create redis limiter store")
	}
	return store, nil
}

// NewRateLimitMiddleware limits each client IP to cfg.Rate, e.g. "100-M".
func NewRateLimitMiddleware(cfg config.RateLimitConfig, store limiter.Store) (gin.HandlerFunc, error) {
	if !cfg.Enabled {
		return func(c *gin.Context) { c.Next() }, nil
	}
	rate, err := limiter.NewRateFromFormatted(cfg.Rate)
	if err != nil {
		return nil, errs.Wrapf(err, "parse rate limit %q", cfg.Rate)
	}

	return mgin.NewMiddleware(limiter.New(store, rate),
		mgin.WithLimitReachedHandler(func(c *gin.Context) {
			httperr.AbortWithError(c, http.StatusTooManyRequests, nil, string(errs.KindRateLimited), "Too many requests", nil)
		}),
		mgin.WithErrorHandler(func(c *gin.Context, err error) {
			// fail open
			slog.Error("rate limiter store failed", "error", err)
			c.Next()
		}),
	), nil
}
