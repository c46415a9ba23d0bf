// Package router sets up HTTP routes for the API.
package router

import (
	"net/http"

	_ "ecobin-portal/swagger" // Import generated swagger docs

	"ecobin-portal/internal/authz"
	"ecobin-portal/internal/cache"
	"ecobin-portal/internal/handler"
	"ecobin-portal/internal/metrics"
	"ecobin-portal/internal/middleware"
	"ecobin-portal/pkg/auth"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// Config holds all dependencies needed to set up routes.
type Config struct {
	AuthHandler      *handler.AuthHandler
	ProfileHandler   *handler.ProfileHandler
	DisposalHandler  *handler.DisposalHandler
	DashboardHandler *handler.DashboardHandler
	UserAdminHandler *handler.UserAdminHandler
	BinAdminHandler  *handler.BinAdminHandler
	Tokens           auth.TokenManager
	Sessions         cache.SessionStore
	Authorizer       authz.Authorizer
	// Metrics and MetricsHandler are optional.
	Metrics        *metrics.Metrics
	MetricsHandler http.Handler
	// HealthChecks are pinged by /health, keyed by dependency name.
	HealthChecks map[string]Pinger
}

// Setup creates and configures the Gin router.
func Setup(cfg *Config) *gin.Engine {
	r := gin.Default()

	// Global middleware
	r.Use(middleware.CORS())
	if cfg.Metrics != nil {
		r.Use(cfg.Metrics.Middleware())
	}

	// Swagger docs at /docs
	r.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	r.GET("/health", health(cfg.HealthChecks))

	if cfg.MetricsHandler != nil {
		r.GET("/metrics", gin.WrapH(cfg.MetricsHandler))
	}

	requireAuth := middleware.Auth(cfg.Tokens, cfg.Sessions)
	can := func(action string) gin.HandlerFunc {
		return middleware.RequireAction(cfg.Authorizer, action)
	}

	// API v1
	v1 := r.Group("/api/v1")
	{
		// Landing page (public, session aware)
		v1.GET("/home", middleware.OptionalAuth(cfg.Tokens, cfg.Sessions), cfg.ProfileHandler.GetHome)

		// Auth routes (public)
		authRoutes := v1.Group("/auth")
		{
			authRoutes.POST("/register", cfg.AuthHandler.Register)
			authRoutes.POST("/login", cfg.AuthHandler.Login)
		}

		// Auth routes (protected)
		authProtected := v1.Group("/auth")
		authProtected.Use(requireAuth)
		{
			authProtected.POST("/logout", cfg.AuthHandler.Logout)
		}

		v1.GET("/profile", requireAuth, can(authz.ActionProfileView), cfg.ProfileHandler.GetProfile)

		// Disposal workflow
		disposals := v1.Group("/disposals")
		disposals.Use(requireAuth, can(authz.ActionDisposalUse))
		{
			disposals.POST("", cfg.DisposalHandler.Create)
			disposals.GET("/:id", cfg.DisposalHandler.Get)
			disposals.PUT("/:id/image", cfg.DisposalHandler.ReplaceImage)
			disposals.POST("/:id/bins", cfg.DisposalHandler.OpenBins)
			disposals.GET("/:id/bins", cfg.DisposalHandler.SearchBins)
			disposals.DELETE("/:id/bins", cfg.DisposalHandler.CloseBins)
			disposals.POST("/:id/select", cfg.DisposalHandler.SelectBin)
		}

		// Admin console
		admin := v1.Group("/admin")
		admin.Use(requireAuth)
		{
			admin.GET("/dashboard", can(authz.ActionDashboardView), cfg.DashboardHandler.GetDashboard)

			users := admin.Group("/users")
			users.Use(can(authz.ActionUsersManage))
			{
				users.GET("", cfg.UserAdminHandler.ListUsers)
				users.GET("/:id", cfg.UserAdminHandler.GetUser)
				users.DELETE("/:id", cfg.UserAdminHandler.DeleteUser)
			}

			bins := admin.Group("/bins")
			bins.Use(can(authz.ActionBinsManage))
			{
				bins.GET("", cfg.BinAdminHandler.ListBins)
				bins.POST("", cfg.BinAdminHandler.CreateBin)
				bins.GET("/:id", cfg.BinAdminHandler.GetBin)
				bins.DELETE("/:id", cfg.BinAdminHandler.DeleteBin)
			}
		}
	}

	return r
}
