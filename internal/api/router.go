package api

import (
	"time"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"
	"golang.org/x/time/rate"

	_ "github.com/maizul/restaurant-api/docs"
	"github.com/maizul/restaurant-api/internal/api/handler"
	"github.com/maizul/restaurant-api/internal/api/middleware"
	"github.com/maizul/restaurant-api/internal/core/domain"
	"github.com/maizul/restaurant-api/internal/core/ports"
)

const metricsSubsystem = "maizul"

// Dependencies carries everything NewRouter wires into handlers.
type Dependencies struct {
	Auth   ports.AuthService
	Users  ports.UserService
	Menu   ports.MenuService
	Seeder ports.Seeder

	Database handler.StatusReporter
	// Cache is nil when the listing cache is disabled.
	Cache handler.StatusReporter

	Logger         zerolog.Logger
	CORSOrigins    []string
	LoginRateLimit float64
	LoginRateBurst int

	// Registerer and Gatherer default to the prometheus globals.
	Registerer prometheus.Registerer
	Gatherer   prometheus.Gatherer
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(deps Dependencies) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(deps.Logger)

	registerer, gatherer := deps.Registerer, deps.Gatherer
	if registerer == nil {
		registerer = prometheus.DefaultRegisterer
	}
	if gatherer == nil {
		gatherer = prometheus.DefaultGatherer
	}

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(requestLogger(deps.Logger))
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins: deps.CORSOrigins,
		AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, echo.HeaderAuthorization},
	}))
	e.Use(echomiddleware.BodyLimit("1M"))
	e.Use(echoprometheus.NewMiddlewareWithConfig(echoprometheus.MiddlewareConfig{
		Subsystem:  metricsSubsystem,
		Registerer: registerer,
		Skipper: func(c echo.Context) bool {
			return c.Path() == "/metrics"
		},
	}))

	// --- Handlers ---
	authHandler := handler.NewAuthHandler(deps.Auth)
	userHandler := handler.NewUserHandler(deps.Users)
	menuHandler := handler.NewMenuHandler(deps.Menu)
	seedHandler := handler.NewSeedHandler(deps.Seeder)
	healthHandler := handler.NewHealthHandler(deps.Database, deps.Cache)

	authenticated := middleware.Authenticate(deps.Auth)
	adminOnly := middleware.RequireRole(deps.Auth, domain.RoleAdmin)

	// --- Operational routes ---
	e.GET("/", healthHandler.Root)
	e.GET("/metrics", echoprometheus.NewHandlerWithConfig(echoprometheus.HandlerConfig{Gatherer: gatherer}))
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	api := e.Group("/api")
	api.GET("/health", healthHandler.Health)
	api.POST("/seed", seedHandler.Seed)

	// --- Auth routes ---
	api.POST("/auth/login", authHandler.Login, loginLimiter(deps.LoginRateLimit, deps.LoginRateBurst)...)
	api.GET("/auth/me", authHandler.Me, authenticated)

	// --- User management (admin only) ---
	users := api.Group("/users", authenticated, adminOnly)
	users.GET("", userHandler.List)
	users.POST("", userHandler.Create)
	users.PUT("/:id", userHandler.Update)
	users.DELETE("/:id", userHandler.Delete)

	// --- Menu: public reads, authenticated writes ---
	api.GET("/menu", menuHandler.List)
	api.GET("/menu/:id", menuHandler.Get)
	api.POST("/menu", menuHandler.Create, authenticated)
	api.PUT("/menu/reorder", menuHandler.Reorder, authenticated)
	api.PUT("/menu/:id", menuHandler.Update, authenticated)
	api.DELETE("/menu/:id", menuHandler.Delete, authenticated)

	return e
}

// loginLimiter throttles login attempts per client IP. A non-positive limit
// disables it.
func loginLimiter(limit float64, burst int) []echo.MiddlewareFunc {
	if limit <= 0 {
		return nil
	}
	store := echomiddleware.NewRateLimiterMemoryStoreWithConfig(echomiddleware.RateLimiterMemoryStoreConfig{
		Rate:      rate.Limit(limit),
		Burst:     burst,
		ExpiresIn: 3 * time.Minute,
	})
	return []echo.MiddlewareFunc{echomiddleware.RateLimiter(store)}
}

func requestLogger(log zerolog.Logger) echo.MiddlewareFunc {
	return echomiddleware.RequestLoggerWithConfig(echomiddleware.RequestLoggerConfig{
		LogMethod:    true,
		LogURI:       true,
		LogStatus:    true,
		LogLatency:   true,
		LogRequestID: true,
		LogRemoteIP:  true,

		// Resolve domain errors before logging so the status is the one sent.
		HandleError: true,

		LogValuesFunc: func(_ echo.Context, v echomiddleware.RequestLoggerValues) error {
			ev := log.Info()
			if v.Status >= 500 {
				ev = log.Error()
			}
			ev.Str("method", v.Method).
				Str("uri", v.URI).
				Int("status", v.Status).
				Dur("latency", v.Latency).
				Str("request_id", v.RequestID).
				Str("remote_ip", v.RemoteIP).
				Msg("request")
			return nil
		},
	})
}
