package components

import (
	"cozycup/internal/handler"
	"cozycup/internal/handler/api"
	"cozycup/internal/handler/middleware"
	"cozycup/internal/pkg/config"

	"github.com/gin-gonic/gin"
	"github.com/ulule/limiter/v3"
	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewAuthHandler,
		api.NewMenuHandler,
		api.NewPoolHandler,
		api.NewOrderHandler,
		api.NewBookingHandler,
		api.NewCheckInHandler,
		api.NewWalletHandler,
		api.NewReportHandler,
		middleware.NewAuthMiddleware,
	),
	fx.Invoke(registerRoutes),
)

type routerParams struct {
	fx.In

	Engine       *gin.Engine
	Config       config.Config
	Logger       *middleware.Logger
	LimiterStore limiter.Store
	Auth         *middleware.AuthMiddleware

	AuthHandler    *api.AuthHandler
	MenuHandler    *api.MenuHandler
	PoolHandler    *api.PoolHandler
	OrderHandler   *api.OrderHandler
	BookingHandler *api.BookingHandler
	CheckInHandler *api.CheckInHandler
	WalletHandler  *api.WalletHandler
	ReportHandler  *api.ReportHandler
}

func registerRoutes(p routerParams) error {
	rateLimit, err := middleware.NewRateLimitMiddleware(p.Config.RateLimit, p.LimiterStore)
	if err != nil {
		return err
	}

	handler.NewRouter(p.Engine, p.Config,
		handler.Middlewares{
			Auth:      p.Auth,
			Logger:    p.Logger,
			RateLimit: rateLimit,
		},
		handler.Handlers{
			Auth:    p.AuthHandler,
			Menu:    p.MenuHandler,
			Pool:    p.PoolHandler,
			Order:   p.OrderHandler,
			Booking: p.BookingHandler,
			CheckIn: p.CheckInHandler,
			Wallet:  p.WalletHandler,
			Report:  p.ReportHandler,
		},
	)
	return nil
}
