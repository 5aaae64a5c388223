package router

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/everestwc/everest-backend/internal/config"
	"github.com/everestwc/everest-backend/internal/handler"
	"github.com/everestwc/everest-backend/internal/middleware"
	"github.com/everestwc/everest-backend/internal/response"
)

// ContentResource binds one content handler instantiation to its URL path.
type ContentResource struct {
	Path   string
	Routes handler.ContentRoutes
}

// Handlers groups all handler instances for route setup.
type Handlers struct {
	Auth         *handler.AuthHandler
	Settings     *handler.SettingsHandler
	Appointments *handler.AppointmentHandler
	// Content holds the seven uniform resources: sliders, universities,
	// courses, destinations, classes, blogs, reviews.
	Content []ContentResource
}

// SetupRouter configures all Gin routes with appropriate middlewares.
func SetupRouter(handlers *Handlers, sessions middleware.SessionChecker, cfg *config.Config) *gin.Engine {
	gin.SetMode(cfg.GinMode)
	router := gin.Default()

	// ─── CORS ──────────────────────────────────────────────────────────
	// The admin frontend authenticates with a cookie, so CORS must be
	// credentialed against an explicit origin list. With no list configured
	// (dev default) all origins are allowed, necessarily without credentials.
	corsConfig := cors.DefaultConfig()
	if len(cfg.AllowedOrigins) > 0 {
		corsConfig.AllowOrigins = cfg.AllowedOrigins
		corsConfig.AllowCredentials = true
	} else {
		corsConfig.AllowAllOrigins = true
	}
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "X-Request-ID"}
	corsConfig.ExposeHeaders = []string{"X-Request-ID"}
	corsConfig.MaxAge = 12 * time.Hour
	router.Use(cors.New(corsConfig))

	// Apply request ID middleware globally.
	router.Use(response.RequestIDMiddleware())

	requireAdmin := middleware.RequireAdmin(sessions)

	// Health check; also the keepalive pinger's default target.
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "Server is running"})
	})

	// ─── Auth ──────────────────────────────────────────────────────────
	auth := router.Group("/auth")
	{
		auth.POST("/login", handlers.Auth.Login)
		auth.POST("/logout", handlers.Auth.Logout)
		auth.GET("/check", handlers.Auth.Check)
	}

	// ─── Settings singleton ────────────────────────────────────────────
	router.GET("/settings", handlers.Settings.Get)
	router.PUT("/settings", requireAdmin, handlers.Settings.Put)

	// ─── Content resources (public read, admin write) ──────────────────
	for _, res := range handlers.Content {
		router.GET("/"+res.Path, res.Routes.List)
		router.POST("/"+res.Path, requireAdmin, res.Routes.Create)
		router.PUT("/"+res.Path+"/:id", requireAdmin, res.Routes.Update)
		router.DELETE("/"+res.Path+"/:id", requireAdmin, res.Routes.Delete)
	}

	// ─── Appointments (public intake, admin management) ────────────────
	router.GET("/appointments", requireAdmin, handlers.Appointments.List)
	router.POST("/appointments", handlers.Appointments.Create)
	router.PUT("/appointments/:id", requireAdmin, handlers.Appointments.Update)
	router.DELETE("/appointments/:id", requireAdmin, handlers.Appointments.Delete)

	return router
}
