package api

import (
	"database/sql"
	"net/http"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"

	"github.com/fitplanner/fitness-api/internal/api/handler"
	"github.com/fitplanner/fitness-api/internal/api/middleware"
	"github.com/fitplanner/fitness-api/internal/core/service"
	"github.com/fitplanner/fitness-api/internal/infrastructure/config"
	"github.com/fitplanner/fitness-api/internal/infrastructure/db/postgres"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(db *sql.DB, cfg *config.Config, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// Trailing slashes are stripped before route matching.
	e.Pre(echomiddleware.RemoveTrailingSlash())

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins: []string{"*"},
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowHeaders: []string{echo.HeaderContentType, echo.HeaderAuthorization},
	}))
	e.Use(echoprometheus.NewMiddleware("fitplanner"))
	e.Use(middleware.OptionalAuth(cfg.JWTSecret))

	// --- Dependencies ---
	authRepo := postgres.NewAuthRepository(db)
	authService := service.NewAuthService(authRepo, cfg.JWTSecret, cfg.TokenTTL)
	authHandler := handler.NewAuthHandler(authService)

	exerciseRepo := postgres.NewExerciseRepository(db)
	exerciseHandler := handler.NewExerciseHandler(service.NewExerciseService(exerciseRepo))

	planRepo := postgres.NewPlanRepository(db)
	planHandler := handler.NewPlanHandler(service.NewPlanService(planRepo, log))

	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(db)

	// --- Routes ---
	e.GET("/api/health", healthHandler.Liveness)
	e.GET("/api/health/ready", readinessHandler.Readiness)

	e.GET("/api/exercises", exerciseHandler.List)

	e.POST("/api/register", authHandler.Register)
	e.POST("/api/login", authHandler.Login)

	e.POST("/api/plans", planHandler.Create)
	e.GET("/api/plans", planHandler.List)
	e.DELETE("/api/plans/:id", planHandler.Delete)

	e.GET("/metrics", echoprometheus.NewHandler())

	return e
}
