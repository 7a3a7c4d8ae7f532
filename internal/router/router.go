package router

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/volunteerhub-dev/volunteerhub/internal/handlers"
	"github.com/volunteerhub-dev/volunteerhub/internal/metrics"
	"github.com/volunteerhub-dev/volunteerhub/internal/middleware"
	"github.com/volunteerhub-dev/volunteerhub/internal/utils"
)

type Config struct {
	Handler         *handlers.Handler
	Authenticator   middleware.Authenticator
	AllowedOrigins  []string
	UploadDir       string
	UploadURLPrefix string

	// RateLimiter throttles the API per client IP. Nil disables it.
	RateLimiter *middleware.RateLimiter
}

func NewRouter(cfg Config) (*gin.Engine, error) {
	if err := utils.RegisterValidators(); err != nil {
		return nil, err
	}

	r := gin.New()
	r.Use(gin.Recovery(), middleware.RequestLogger(), middleware.Metrics())

	r.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "HEAD", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Length", "Content-Type", "Authorization", "Accept", "X-Requested-With", middleware.RequestIDHeader},
		ExposeHeaders:    []string{"Content-Length", middleware.RequestIDHeader},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/metrics", gin.WrapH(metrics.Handler()))

	if cfg.UploadDir != "" && cfg.UploadURLPrefix != "" {
		r.Static(cfg.UploadURLPrefix, cfg.UploadDir)
	}

	h := cfg.Handler
	requireAuth := middleware.AuthMiddleware(cfg.Authenticator)

	api := r.Group("/api")
	if cfg.RateLimiter != nil {
		api.Use(cfg.RateLimiter.Handler())
	}
	{
		api.GET("/health", h.HealthCheck)
		api.GET("/ws/:project_id", requireAuth, h.WebSocket)

		auth := api.Group("/auth")
		{
			auth.POST("/register", h.CreateUser)
			auth.POST("/login", h.LoginUser)
			auth.POST("/logout", h.LogoutUser)
			auth.GET("/me", requireAuth, h.Me)
			auth.PUT("/me", requireAuth, h.UpdateUser)
		}

		api.GET("/users", requireAuth, h.ListUsers)

		projects := api.Group("/projects", requireAuth)
		{
			projects.POST("", h.CreateProject)
			projects.GET("", h.ListProjects)
			projects.GET("/:project_id", h.GetProject)
			projects.PATCH("/:project_id", h.UpdateProject)

			projects.POST("/:project_id/events", h.CreateEvent)
			projects.GET("/:project_id/events", h.ListEvents)

			projects.POST("/:project_id/applications", h.ApplyToProject)
			projects.GET("/:project_id/applications", h.ListApplications)
			projects.PUT("/:project_id/applications/:application_id/status", h.UpdateApplicationStatus)
			projects.PATCH("/:project_id/applications/:application_id/status", h.UpdateApplicationStatus)

			projects.GET("/:project_id/volunteers", h.ListVolunteers)
		}

		applications := api.Group("/applications", requireAuth)
		{
			applications.GET("/mine", h.MyApplications)
			applications.PUT("/:application_id/status", h.UpdateApplicationStatus)
			applications.PATCH("/:application_id/status", h.UpdateApplicationStatus)
		}

		analytics := api.Group("/analytics", requireAuth)
		{
			analytics.GET("/overview", h.AnalyticsOverview())
			analytics.GET("/projects-by-category", h.ProjectsByCategory())
			analytics.GET("/skills-distribution", h.SkillsDistribution())
			analytics.GET("/monthly-hours", h.MonthlyHours())
			analytics.GET("/application-stats", h.ApplicationStats())
		}

		api.POST("/uploads/images", requireAuth, h.UploadImage)
	}

	return r, nil
}
