package handler

import (
	"net/http"
	"time"

	"cozycup/internal/domain/pool"
	"cozycup/internal/domain/user"
	"cozycup/internal/handler/api"
	"cozycup/internal/handler/httperr"
	"cozycup/internal/handler/middleware"
	"cozycup/internal/pkg/config"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

type Handlers struct {
	Auth    *api.AuthHandler
	Menu    *api.MenuHandler
	Pool    *api.PoolHandler
	Order   *api.OrderHandler
	Booking *api.BookingHandler
	CheckIn *api.CheckInHandler
	Wallet  *api.WalletHandler
	Report  *api.ReportHandler
}

type Middlewares struct {
	Auth      *middleware.AuthMiddleware
	Logger    *middleware.Logger
	RateLimit gin.HandlerFunc
}

func NewRouter(engine *gin.Engine, cfg config.Config, mw Middlewares, h Handlers) {
	httperr.UseJSONFieldNames()
	setupMiddleware(engine, cfg, mw)
	setupRoutes(engine, mw.Auth, h)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config, mw Middlewares) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(mw.Logger.LoggingMiddleware())
	if mw.RateLimit != nil {
		engine.Use(mw.RateLimit)
	}
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, authMiddleware *middleware.AuthMiddleware, h Handlers) {
	engine.GET("/health", healthCheck)
	engine.NoRoute(httperr.NotFound)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	hostOnly := []gin.HandlerFunc{authMiddleware.RequireAuth(), authMiddleware.RequireRole(user.RoleHost)}

	apiGroup := engine.Group("/api")
	apiGroup.GET("", welcome)
	{
		auth := apiGroup.Group("/auth")
		{
			addRoutes(auth, []route{
				{Method: http.MethodPost, Path: "/register", Handler: h.Auth.Register},
				{Method: http.MethodPost, Path: "/login", Handler: h.Auth.Login},
				{Method: http.MethodPost, Path: "/refresh", Handler: h.Auth.Refresh},
			})

			authRequired := auth.Group("")
			authRequired.Use(authMiddleware.RequireAuth())
			addRoutes(authRequired, []route{
				{Method: http.MethodPost, Path: "/logout", Handler: h.Auth.Logout},
				{Method: http.MethodGet, Path: "/me", Handler: h.Auth.Me},
			})
		}

		addRoutes(apiGroup.Group("/menu"), []route{
			{Method: http.MethodGet, Path: "", Handler: h.Menu.List},
			{Method: http.MethodPost, Path: "", Handler: h.Menu.Create, Mw: hostOnly},
			{Method: http.MethodPatch, Path: "/:id", Handler: h.Menu.Patch, Mw: hostOnly},
		})

		for path, kind := range map[string]pool.Kind{
			"/pickup-windows": pool.KindPickupWindow,
			"/slots":          pool.KindSlot,
		} {
			addRoutes(apiGroup.Group(path), []route{
				{Method: http.MethodGet, Path: "", Handler: h.Pool.List(kind)},
				{Method: http.MethodPost, Path: "", Handler: h.Pool.Create(kind), Mw: hostOnly},
				{Method: http.MethodPatch, Path: "/:id", Handler: h.Pool.Patch(kind), Mw: hostOnly},
			})
		}

		orders := apiGroup.Group("/orders")
		orders.Use(authMiddleware.RequireAuth())
		{
			addRoutes(orders, []route{
				{Method: http.MethodPost, Path: "", Handler: h.Order.Create},
				{Method: http.MethodGet, Path: "/me", Handler: h.Order.ListMine},
				{Method: http.MethodPatch, Path: "/:id/status", Handler: h.Order.UpdateStatus},
			})
		}

		bookings := apiGroup.Group("/bookings")
		bookings.Use(authMiddleware.RequireAuth())
		{
			addRoutes(bookings, []route{
				{Method: http.MethodPost, Path: "", Handler: h.Booking.Create},
				{Method: http.MethodGet, Path: "/me", Handler: h.Booking.ListMine},
				{Method: http.MethodPatch, Path: "/:id/cancel", Handler: h.Booking.Cancel},
				{Method: http.MethodPost, Path: "/:id/qr-token", Handler: h.Booking.MintQRToken},
			})
		}

		// kiosk scans are unauthenticated; the token is the credential
		apiGroup.POST("/checkin/:token", h.CheckIn.CheckIn)

		addRoutes(apiGroup.Group("/packages"), []route{
			{Method: http.MethodGet, Path: "", Handler: h.Wallet.ListPackages},
			{Method: http.MethodPost, Path: "", Handler: h.Wallet.CreatePackage, Mw: hostOnly},
		})

		purchases := apiGroup.Group("/purchases")
		purchases.Use(authMiddleware.RequireAuth())
		{
			addRoutes(purchases, []route{
				{Method: http.MethodPost, Path: "", Handler: h.Wallet.Purchase},
				{Method: http.MethodGet, Path: "/me/wallet", Handler: h.Wallet.MyWallet},
			})
		}

		redeem := apiGroup.Group("/redeem")
		redeem.Use(authMiddleware.RequireAuth())
		{
			addRoutes(redeem, []route{
				{Method: http.MethodPost, Path: "", Handler: h.Wallet.Redeem},
				{Method: http.MethodPost, Path: "/qr-token", Handler: h.Wallet.MintRedeemToken},
			})
		}

		addRoutes(apiGroup.Group("/reports"), []route{
			{Method: http.MethodGet, Path: "/day-summary", Handler: h.Report.DaySummary, Mw: hostOnly},
		})
	}
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "ok",
		"service":   "cozycup",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}

// @Summary Welcome
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /api [get]
func welcome(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"name":    "CozyCup API",
		"message": "Welcome to CozyCup backend",
		"docs":    "/health",
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		h := r.Handler
		if len(r.Mw) > 0 {
			chain := append(append([]gin.HandlerFunc{}, r.Mw...), r.Handler)
			h = chainHandlers(chain...)
		}
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, h)
		case http.MethodPost:
			g.POST(r.Path, h)
		case http.MethodPut:
			g.PUT(r.Path, h)
		case http.MethodPatch:
			g.PATCH(r.Path, h)
		case http.MethodDelete:
			g.DELETE(r.Path, h)
		default:
			g.Any(r.Path, h)
		}
	}
}

func chainHandlers(hs ...gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, h := range hs {
			h(c)
			if c.IsAborted() {
				return
			}
		}
	}
}
