package handlers

import (
	"log/slog"
	"net/http"

	"github.com/SscSPs/bizdash/cmd/docs"
	portssvc "github.com/SscSPs/bizdash/internal/core/ports/services"
	"github.com/SscSPs/bizdash/internal/middleware"
	"github.com/SscSPs/bizdash/internal/platform/config"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

const defaultLoginRate = "5-M"

// RegisterRoutes sets up all application routes, injecting dependencies using interfaces
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
	feed NotificationFeed,
) {
	r.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "OK")
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := r.Group("/api/v1")
	RegisterAuthRoutes(api, NewAuthHandler(services.User, services.TokenService, services.GoogleOAuth), loginLimiter(cfg))

	setupAPIV1Routes(api, cfg, services, feed)
	setupSwaggerRoutes(r, cfg)

	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "Not found"})
	})
}

// setupAPIV1Routes configures the authenticated part of /api/v1.
// Data routes answer 503 until the store has loaded.
func setupAPIV1Routes(
	api *gin.RouterGroup,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
	feed NotificationFeed,
) {
	v1 := api.Group("", middleware.AuthMiddleware(cfg.JWTSecret))
	RegisterAdminRoutes(v1, services.Store, services.User, feed)

	data := v1.Group("", middleware.RequireReady(services.Store))
	RegisterLedgerRoutes(data, services.Carts, services.Sales, services.Expenses, services.Payments)
	RegisterInventoryRoutes(data, services.Inventory, services.Dashboard)
	RegisterWorkforceRoutes(data, WorkforceServices{
		Workers:   services.Workers,
		Payments:  services.WorkerPayments,
		Leaves:    services.WorkerLeaves,
		Absences:  services.Absences,
		Dashboard: services.Dashboard,
	})
	RegisterReportingRoutes(data, services.Dashboard)
}

func loginLimiter(cfg *config.Config) gin.HandlerFunc {
	rate := cfg.LoginRateLimit
	if rate == "" {
		rate = defaultLoginRate
	}
	l, err := middleware.NewLimiter(rate)
	if err != nil {
		slog.Warn("Invalid LOGIN_RATE_LIMIT, using default", slog.String("rate", rate), slog.String("error", err.Error()))
		l, _ = middleware.NewLimiter(defaultLoginRate)
	}
	return middleware.RateLimit(l)
}

// setupSwaggerRoutes configures the swagger documentation routes
func setupSwaggerRoutes(r *gin.Engine, cfg *config.Config) {
	if cfg.IsProduction {
		//no swagger in prod
		return
	}
	docs.SwaggerInfo.BasePath = "/api/v1"
	swagger := r.Group("/swagger")
	swagger.GET("/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}
