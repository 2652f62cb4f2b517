package app

import (
	"eduquest_backend/internal/middleware"
	"eduquest_backend/internal/model"
	"eduquest_backend/pkg/monitoring"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func (a *App) registerRoutes(router *gin.Engine, c *controllers, s *services) {
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.GET("/metrics", monitoring.PrometheusHandler())
	router.GET("/health", c.health.HealthCheck)

	a.registerPublicRoutes(router, c)

	authGroup := router.Group("/api")
	authGroup.Use(middleware.AuthMiddleware(s.auth))
	{
		authGroup.POST("/logout", c.auth.Logout)
		authGroup.GET("/profile", c.auth.GetProfile)

		a.registerTeacherRoutes(authGroup, c)
		a.registerReviewRoutes(authGroup, c)
	}
}

// Learner-facing routes. Learners have no accounts; the class join code is
// the only credential, so none of this sits behind the auth middleware.
func (a *App) registerPublicRoutes(router *gin.Engine, c *controllers) {
	public := router.Group("/api")
	{
		public.POST("/register", c.auth.Register)
		public.POST("/login", c.auth.Login)
	}

	publicAPI := router.Group("/api/public")
	{
		publicAPI.POST("/attempts", c.attempt.Submit)
		publicAPI.GET("/classes/:code/content", c.share.SharedContent)
	}
}

func (a *App) registerTeacherRoutes(rg *gin.RouterGroup, c *controllers) {
	teacher := rg.Group("/teacher")
	teacher.Use(middleware.RoleMiddleware(model.Teacher))
	{
		teacher.POST("/classes", c.class.CreateClass)
		teacher.GET("/classes", c.class.ListClasses)
		teacher.GET("/classes/:id", c.class.GetClass)
		teacher.PUT("/classes/:id", c.class.UpdateClass)
		teacher.DELETE("/classes/:id", c.class.DeleteClass)
		teacher.GET("/classes/:id/students", c.class.ListRoster)
		teacher.POST("/classes/:id/students", c.class.AddStudent)
		teacher.DELETE("/classes/:id/students/:studentId", c.class.RemoveStudent)
		teacher.GET("/classes/:id/students/:studentId/plan", c.report.StudentPlan)
		teacher.GET("/classes/:id/students/:studentId/mastery", c.report.StudentMastery)

		teacher.GET("/content", c.content.ListOwn)
		teacher.POST("/quizzes", c.content.CreateQuiz)
		teacher.PUT("/quizzes/:id", c.content.UpdateQuiz)
		teacher.DELETE("/quizzes/:id", c.content.DeleteQuiz)
		teacher.POST("/games", c.content.CreateGame)
		teacher.PUT("/games/:id", c.content.UpdateGame)
		teacher.DELETE("/games/:id", c.content.DeleteGame)
		teacher.POST("/activities", c.content.CreateActivity)
		teacher.PUT("/activities/:id", c.content.UpdateActivity)
		teacher.DELETE("/activities/:id", c.content.DeleteActivity)

		teacher.POST("/shares", c.share.Share)
		teacher.GET("/shares", c.share.ListShares)
		teacher.PUT("/shares/visibility", c.share.SetVisibility)
		teacher.DELETE("/shares", c.share.Unshare)

		teacher.GET("/overview", c.report.TeacherOverview)
		teacher.POST("/plans/preview", c.report.PlanPreview)
	}
}

// Review routes serve both teachers and visitor reviewers: aggregate,
// read-only views with no per-student drill-down.
func (a *App) registerReviewRoutes(rg *gin.RouterGroup, c *controllers) {
	review := rg.Group("/review")
	review.Use(middleware.RoleMiddleware(model.Teacher, model.Visitor))
	{
		review.GET("/content", c.content.Overview)
		review.GET("/classes/:id/stats", c.report.ClassStats)
		review.GET("/classes/:id/attempts", c.report.ClassAttempts)
	}
}
