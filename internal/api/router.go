package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoswagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	_ "github.com/heshamadeldwedar/Flapkap/docs"
	"github.com/heshamadeldwedar/Flapkap/internal/api/handler"
	"github.com/heshamadeldwedar/Flapkap/internal/api/middleware"
	"github.com/heshamadeldwedar/Flapkap/internal/core/domain"
	"github.com/heshamadeldwedar/Flapkap/internal/core/ports"
)

// Deps carries everything the router needs. Mongo and Redis are only used
// by the readiness probe and may be nil (e.g. in tests); Throttle may be nil
// to disable login throttling.
type Deps struct {
	AuthService ports.AuthService
	Tokens      ports.TokenService
	Throttle    ports.LoginThrottle
	Mongo       *mongo.Database
	Redis       *redis.Client
	Log         zerolog.Logger
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(deps Deps) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(deps.Log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("vending"))

	// --- Handlers ---
	authHandler := handler.NewAuthHandler(deps.AuthService, deps.Throttle)
	userHandler := handler.NewUserHandler(deps.AuthService)
	authn := middleware.Authenticate(deps.Tokens)

	// --- Auth routes ---
	e.POST("/auth/register", authHandler.Register)
	e.POST("/auth/login", authHandler.Login)
	e.GET("/auth/profile", authHandler.Profile,
		authn, middleware.Authorize(domain.OpReadProfile))

	// --- User management (role-gated) ---
	users := e.Group("/users", authn)
	users.GET("", userHandler.List, middleware.Authorize(domain.OpListUsers))
	users.GET("/:id", userHandler.Get, middleware.Authorize(domain.OpReadUser))
	users.PUT("/:id", userHandler.Update, middleware.Authorize(domain.OpUpdateUser))
	users.DELETE("/:id", userHandler.Delete, middleware.Authorize(domain.OpDeleteUser))

	// --- Observability ---
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoswagger.WrapHandler)

	// --- Health probes (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	e.GET("/health", healthHandler.Liveness) // liveness  – is the process alive?
	if deps.Mongo != nil {
		readiness := handler.NewReadinessHandler(deps.Mongo, deps.Redis)
		e.GET("/health/ready", readiness.Readiness) // readiness – are dependencies up?
	}

	return e
}
