package app

import (
	"time"

	"rudasumbwa_backend/internal/middleware"
	"rudasumbwa_backend/internal/model"
	"rudasumbwa_backend/pkg/monitoring"
	"rudasumbwa_backend/pkg/security"
	"rudasumbwa_backend/pkg/tracing"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func (a *App) setupRouter() {
	r := gin.New()
	r.Use(gin.Recovery())

	r.Use(security.CORS(a.Config.CORS.AllowedOrigins))
	r.Use(security.Secure())
	if a.Config.RateLimit.MaxRequests > 0 {
		r.Use(security.RateLimiter(
			a.Config.RateLimit.MaxRequests,
			time.Duration(a.Config.RateLimit.WindowMinutes)*time.Minute,
		))
	}
	if a.Config.Tracing.Enabled {
		r.Use(tracing.GinMiddleware())
	}
	r.Use(monitoring.MetricsMiddleware())

	r.GET("/health", a.Controllers.Health.Live)
	r.GET("/ready", a.Controllers.Health.Ready)
	r.GET("/metrics", monitoring.PrometheusHandler())
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	if a.Config.Storage.Type == "local" || a.Config.Storage.Type == "" {
		r.Static("/uploads", a.Config.Storage.LocalPath)
	}

	api := r.Group("/api")

	auth := api.Group("/auth")
	{
		auth.POST("/register", a.Controllers.Auth.Register)
		auth.POST("/login", a.Controllers.Auth.Login)
	}

	authed := api.Group("")
	authed.Use(a.authMiddleware())
	authed.Use(middleware.ActivityMiddleware(a.Repositories.User))
	{
		authed.GET("/users/me", a.Controllers.User.GetMe)
		authed.PUT("/users/me", a.Controllers.User.UpdateMe)

		authed.GET("/quizzes", a.Controllers.Quiz.List)
		authed.GET("/quizzes/:id", a.Controllers.Quiz.Get)

		authed.GET("/quizzes/:id/leaderboard", a.Controllers.Leaderboard.QuizTop)
		authed.GET("/leaderboard", a.Controllers.Leaderboard.OverallTop)

		authed.GET("/notes", a.Controllers.Note.List)
		authed.GET("/notes/:id", a.Controllers.Note.Get)

		authed.GET("/clubs", a.Controllers.Club.List)
		authed.GET("/clubs/:id", a.Controllers.Club.Get)
		authed.GET("/clubs/:id/members", a.Controllers.Club.Members)

		authed.GET("/announcements", a.Controllers.Announcement.List)
		authed.GET("/events", a.Controllers.Announcement.ListEvents)

		authed.POST("/uploads", a.Controllers.Storage.UploadFile)
	}

	students := api.Group("")
	students.Use(a.authMiddleware())
	students.Use(middleware.RoleMiddleware(model.Student))
	{
		students.POST("/quizzes/:id/start", a.Controllers.Attempt.Start)
		students.POST("/quizzes/attempts/:id/submit", a.Controllers.Attempt.Submit)
		students.GET("/quizzes/attempts/mine", a.Controllers.Attempt.ListMine)

		students.POST("/clubs/:id/join", a.Controllers.Club.Join)
		students.POST("/clubs/:id/leave", a.Controllers.Club.Leave)

		students.POST("/tutor/ask", a.Controllers.Tutor.Ask)
		students.GET("/tutor/history", a.Controllers.Tutor.History)
		students.DELETE("/tutor/history", a.Controllers.Tutor.ClearHistory)
	}

	// Attempt details are role-aware inside the handler; students, the quiz
	// creator and admins each get their own slice of it.
	attemptDetail := api.Group("")
	attemptDetail.Use(a.authMiddleware())
	{
		attemptDetail.GET("/quizzes/attempts/:id", a.Controllers.Attempt.Detail)
		attemptDetail.GET("/quizzes/attempts/:id/details", a.Controllers.Attempt.Detail)
	}

	teachers := api.Group("")
	teachers.Use(a.authMiddleware())
	teachers.Use(middleware.RoleMiddleware(model.Teacher))
	{
		teachers.POST("/quizzes", a.Controllers.Quiz.Create)
		teachers.PUT("/quizzes/:id", a.Controllers.Quiz.Update)
		teachers.DELETE("/quizzes/:id", a.Controllers.Quiz.Delete)
		teachers.GET("/quizzes/mine", a.Controllers.Quiz.ListMine)
		teachers.POST("/quizzes/:id/questions", a.Controllers.Quiz.AddQuestion)
		teachers.PUT("/quizzes/questions/:id", a.Controllers.Quiz.UpdateQuestion)
		teachers.DELETE("/quizzes/questions/:id", a.Controllers.Quiz.DeleteQuestion)

		teachers.GET("/quizzes/:id/attempts", a.Controllers.Attempt.ListByQuiz)
		teachers.GET("/quizzes/:id/pending-review", a.Controllers.Attempt.PendingReview)
		teachers.PATCH("/quizzes/attempts/answers/:id/grade", a.Controllers.Attempt.GradeAnswer)

		teachers.POST("/notes", a.Controllers.Note.Create)
		teachers.PUT("/notes/:id", a.Controllers.Note.Update)
		teachers.DELETE("/notes/:id", a.Controllers.Note.Delete)

		teachers.POST("/announcements", a.Controllers.Announcement.Create)
		teachers.PUT("/announcements/:id", a.Controllers.Announcement.Update)
		teachers.DELETE("/announcements/:id", a.Controllers.Announcement.Delete)

		teachers.POST("/events", a.Controllers.Announcement.CreateEvent)
		teachers.PUT("/events/:id", a.Controllers.Announcement.UpdateEvent)
		teachers.DELETE("/events/:id", a.Controllers.Announcement.DeleteEvent)

		teachers.POST("/uploads/media", a.Controllers.Storage.UploadMedia)
	}

	admins := api.Group("/admin")
	admins.Use(a.authMiddleware())
	admins.Use(middleware.RoleMiddleware(model.Admin))
	{
		admins.GET("/users", a.Controllers.User.List)
		admins.GET("/users/pending", a.Controllers.User.PendingApprovals)
		admins.POST("/users/:id/approve", a.Controllers.User.Approve)
		admins.POST("/users/:id/reject", a.Controllers.User.Reject)
		admins.PATCH("/users/:id/disabled", a.Controllers.User.SetDisabled)
		admins.DELETE("/users/:id", a.Controllers.User.Delete)

		admins.POST("/clubs", a.Controllers.Club.Create)
		admins.PUT("/clubs/:id", a.Controllers.Club.Update)
		admins.DELETE("/clubs/:id", a.Controllers.Club.Delete)
	}

	a.Router = r
}
