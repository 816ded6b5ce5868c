package api

import (
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/assetbridge/investment-platform/internal/api/handler"
	"github.com/assetbridge/investment-platform/internal/api/middleware"
	"github.com/assetbridge/investment-platform/internal/core/domain"
	"github.com/assetbridge/investment-platform/internal/core/ports"
)

// Deps carries everything the router wires into handlers and middleware.
type Deps struct {
	Auth          ports.AuthService
	Sessions      ports.SessionService
	Investments   ports.InvestmentService
	Notifications ports.NotificationService
	Mongo         *mongo.Database
	Redis         *redis.Client
	JWTSecret     string
	Log           zerolog.Logger
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

	// --- Handlers ---
	authHandler := handler.NewAuthHandler(deps.Auth, deps.Sessions)
	investmentHandler := handler.NewInvestmentHandler(deps.Investments)
	notificationHandler := handler.NewNotificationHandler(deps.Notifications)
	userHandler := handler.NewUserHandler(deps.Auth)

	authRequired := middleware.Auth(deps.JWTSecret, deps.Sessions)

	// --- Auth routes ---
	e.POST("/auth/register", authHandler.Register)
	e.POST("/auth/login", authHandler.Login)
	e.POST("/auth/password-reset", authHandler.RequestPasswordReset)
	e.POST("/auth/password-reset/confirm", authHandler.ConfirmPasswordReset)
	e.POST("/auth/logout", authHandler.Logout, authRequired)
	e.GET("/auth/me", authHandler.Me, authRequired)

	// --- Investor / issuer routes ---
	v1 := e.Group("/v1", authRequired)
	v1.GET("/investments", investmentHandler.List)
	v1.POST("/investments", investmentHandler.Create)
	v1.PATCH("/investments/:id/status", investmentHandler.UpdateStatus,
		middleware.RBAC(domain.RoleAdmin, domain.RoleIssuer))
	v1.GET("/notifications", notificationHandler.List)
	v1.PATCH("/notifications/:id/read", notificationHandler.MarkRead)
	v1.PUT("/branding", userHandler.UpdateBranding, middleware.RBAC(domain.RoleIssuer))

	// --- Admin console ---
	v1.GET("/users", userHandler.List, middleware.RBAC(domain.RoleAdmin))
	v1.PATCH("/users/:id", userHandler.Update, middleware.RBAC(domain.RoleAdmin))

	// --- Health probes and metrics (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	healthDepsHandler := handler.NewHealthDependenciesHandler(deps.Mongo, deps.Redis)

	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – are dependencies up?
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	return e
}
