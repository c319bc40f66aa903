package app

import (
	"scholarship_portal_backend/docs"
	"scholarship_portal_backend/internal/config"
	"scholarship_portal_backend/internal/middleware"
	"scholarship_portal_backend/pkg/monitoring"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func (a *App) registerRoutes(router *gin.Engine, c *controllers, cfg *config.Config) {
	docs.SwaggerInfo.BasePath = "/api"
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.GET("/metrics", monitoring.PrometheusHandler())

	public := router.Group("/api")
	{
		public.GET("/health", c.health.HealthCheck)

		auth := public.Group("/auth")
		{
			auth.POST("/register", c.auth.Register)
			auth.POST("/login", c.auth.Login)
			auth.GET("/google", c.auth.GoogleAuth)
			auth.GET("/google/callback", c.auth.GoogleCallback)
		}

		quiz := public.Group("/quiz")
		{
			quiz.GET("/questions", c.quiz.GetQuestions)
			quiz.POST("/submit", c.quiz.SubmitQuiz)
		}

		// Submission is open to the public; a logged-in applicant gets the
		// record linked to their account.
		public.POST("/applications", middleware.TryAuthMiddleware(cfg), c.application.CreateApplication)
	}

	authed := router.Group("/api")
	authed.Use(middleware.AuthMiddleware(cfg))
	{
		authed.GET("/profile", c.auth.GetProfile)

		apps := authed.Group("/applications")
		{
			apps.GET("", middleware.RequireAction(middleware.ActionViewApplications), c.application.ListApplications)
			apps.GET("/:id", c.application.GetApplication)
			apps.PATCH("/:id", c.application.UpdateApplication)
			apps.PATCH("/:id/status", middleware.RequireAction(middleware.ActionReviewApplications), c.application.UpdateApplicationStatus)
			apps.POST("/:id/documents", c.application.UploadDocument)
			apps.DELETE("/:id", middleware.RequireAction(middleware.ActionDeleteApplications), c.application.DeleteApplication)
		}

		profiles := authed.Group("/profiles")
		profiles.Use(middleware.RequireAction(middleware.ActionViewProfiles))
		{
			profiles.GET("/students", c.profile.ListStudentProfiles)
			profiles.GET("/students/:id", c.profile.GetStudentProfile)
		}

		admin := authed.Group("/admin")
		{
			users := admin.Group("/users")
			{
				users.GET("", middleware.RequireAction(middleware.ActionViewUsers), c.user.GetUsers)
				users.GET("/:id", middleware.RequireAction(middleware.ActionViewUsers), c.user.GetUser)
				users.PATCH("/:id", middleware.RequireAction(middleware.ActionManageUsers), c.user.UpdateUser)
				users.DELETE("/:id", middleware.RequireAction(middleware.ActionManageUsers), c.user.DeleteUser)
			}

			grants := admin.Group("")
			grants.Use(middleware.RequireAction(middleware.ActionManageDisbursements))
			{
				grants.PATCH("/applications/:id/award", c.profile.AwardScholarship)
				grants.POST("/applications/:id/disbursements", c.profile.AddDisbursement)
				grants.PATCH("/disbursements/:id/status", c.profile.UpdateDisbursementStatus)
			}
		}
	}
}
