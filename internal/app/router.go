package app

import (
	"edu_resources_backend/internal/config"
	"edu_resources_backend/internal/middleware"
	"edu_resources_backend/internal/model"
	"edu_resources_backend/pkg/monitoring"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func (a *App) registerRoutes(router *gin.Engine, c *controllers, cfg *config.Config) {
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	router.GET("/metrics", monitoring.PrometheusHandler())
	router.GET("/api/health", c.health.Check)

	router.POST("/api/login", c.auth.Login)

	// Public resource API. Gated per request on the enable_rest_api setting;
	// auth is optional so events can be attributed to logged-in users.
	public := router.Group("/api/resources")
	public.Use(middleware.RESTEnabled(a.services.settings), middleware.TryAuthMiddleware(cfg))
	{
		public.GET("", c.resource.GetResources)
		public.GET("/:id", c.resource.GetResource)
		public.POST("/:id/download", c.resource.RecordDownload)
	}

	// Admin API. Editors manage content and resource meta; settings stay
	// admin-only.
	admin := router.Group("/api/admin")
	admin.Use(middleware.AuthMiddleware(cfg), middleware.RoleMiddleware(model.Editor))
	{
		admin.GET("/stats", c.stats.GetStats)

		admin.PUT("/resources/:id", c.adminResource.UpsertMeta)
		admin.DELETE("/resources/:id", c.adminResource.DeleteMeta)
		admin.POST("/resources/upload", c.adminResource.Upload)

		admin.POST("/contents", c.content.CreateContent)
		admin.PUT("/contents/:id", c.content.UpdateContent)
		admin.DELETE("/contents/:id", c.content.DeleteContent)

		settings := admin.Group("/settings")
		settings.Use(middleware.RoleMiddleware(model.Admin))
		{
			settings.GET("", c.settings.GetSettings)
			settings.PUT("", c.settings.UpdateSettings)
		}
	}
}
