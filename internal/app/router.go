package app

import (
	"lingua_edu_backend/docs"
	"lingua_edu_backend/internal/config"
	"lingua_edu_backend/internal/middleware"
	"lingua_edu_backend/internal/model"
	"lingua_edu_backend/pkg/monitoring"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func (a *App) registerRoutes(router *gin.Engine, c *controllers, cfg *config.Config) {
	docs.SwaggerInfo.BasePath = "/api"
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL("/swagger/doc.json")))

	router.GET("/metrics", monitoring.PrometheusHandler())

	a.registerPublicRoutes(router, c)
	a.registerProgramRoutes(router, c, cfg)
	a.registerAdminRoutes(router, c, cfg)

	profile := router.Group("/api")
	profile.Use(middleware.AuthMiddleware(cfg))
	{
		profile.GET("/profile", c.auth.GetProfile)
	}
}

func (a *App) registerPublicRoutes(router *gin.Engine, c *controllers) {
	public := router.Group("/api")
	{
		public.GET("/health", c.health.HealthCheck)
		public.POST("/register", c.auth.Register)
		public.POST("/login", c.auth.Login)
		public.GET("/csrf-token", c.content.GetCSRFToken)

		public.GET("/content/home", c.content.GetHomeContent)
		public.GET("/content/programs", c.content.GetPrograms)
		public.GET("/content/programs/:slug", c.content.GetProgramBySlug)
	}
}

func (a *App) registerProgramRoutes(router *gin.Engine, c *controllers, cfg *config.Config) {
	programs := router.Group("/api/programs")
	{
		programs.GET("", c.program.List)
		programs.GET("/:id", c.program.Get)

		// Writes need an editor token plus a CSRF token.
		authorized := programs.Group("")
		authorized.Use(
			middleware.AuthMiddleware(cfg),
			middleware.RoleMiddleware(model.Editor),
			middleware.CSRFMiddleware(cfg),
		)
		{
			authorized.POST("", c.program.Create)
			authorized.PATCH("/:id", c.program.Update)
			authorized.DELETE("/:id", c.program.Delete)
		}
	}
}

func (a *App) registerAdminRoutes(router *gin.Engine, c *controllers, cfg *config.Config) {
	admin := router.Group("/api/admin")
	admin.Use(
		middleware.AuthMiddleware(cfg),
		middleware.RoleMiddleware(model.Editor),
		middleware.CSRFMiddleware(cfg),
	)
	{
		admin.GET("/hero", c.site.GetHero)
		admin.PUT("/hero", c.site.UpsertHero)

		admin.GET("/stats", c.site.ListStats)
		admin.POST("/stats", c.site.CreateStat)
		admin.PUT("/stats/:id", c.site.UpdateStat)
		admin.DELETE("/stats/:id", c.site.DeleteStat)

		admin.PUT("/why-choose-us", c.site.UpsertWhyChooseUs)

		admin.GET("/facilities", c.site.ListFacilities)
		admin.POST("/facilities", c.site.CreateFacility)
		admin.PUT("/facilities/:id", c.site.UpdateFacility)
		admin.DELETE("/facilities/:id", c.site.DeleteFacility)

		admin.GET("/events", c.site.ListEvents)
		admin.POST("/events", c.site.CreateEvent)
		admin.PUT("/events/:id", c.site.UpdateEvent)
		admin.DELETE("/events/:id", c.site.DeleteEvent)

		admin.PUT("/term-banner", c.site.UpsertTermBanner)
		admin.PUT("/footer", c.site.UpsertFooter)

		admin.GET("/sections", c.site.ListSectionSettings)
		admin.PUT("/sections", c.site.UpsertSectionSetting)

		admin.POST("/upload/image", c.media.UploadImage)
		admin.POST("/upload/video", c.media.UploadVideo)
	}
}
