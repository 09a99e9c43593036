package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/nctu-sis/portal-api/internal/middleware"
	"github.com/nctu-sis/portal-api/internal/models"
	"github.com/nctu-sis/portal-api/internal/service"
)

// Services bundles everything the router mounts.
type Services struct {
	Auth      *service.AuthService
	Students  *service.StudentService
	Exports   *service.ExportService
	Admin     *service.AdminService
	Finance   *service.FinanceService
	Prof      *service.ProfessorService
	News      *service.NewsService
	Assistant *service.AssistantService
	Metrics   *service.MetricsService
}

// Register mounts every portal route under the API prefix. RBAC mirrors the
// role-conditional sidebar of the legacy portal: each dashboard is reachable
// only by its role, the news feed by every authenticated role, and the
// assistant only by students and professors.
func Register(r *gin.Engine, prefix string, svcs Services) {
	authHandler := NewAuthHandler(svcs.Auth)
	studentHandler := NewStudentHandler(svcs.Students, svcs.Exports)
	adminHandler := NewAdminHandler(svcs.Admin)
	financeHandler := NewFinanceHandler(svcs.Finance)
	profHandler := NewProfessorHandler(svcs.Prof)
	newsHandler := NewNewsHandler(svcs.News)
	assistantHandler := NewAssistantHandler(svcs.Assistant)

	api := r.Group(prefix)
	api.POST("/auth/login", authHandler.Login)

	authed := api.Group("")
	authed.Use(middleware.JWT(svcs.Auth))

	authed.GET("/news", newsHandler.Feed)
	authed.POST("/news", middleware.RequireRoles(models.RoleAdmin), newsHandler.Post)

	students := authed.Group("/students", middleware.RequireRoles(models.RoleStudent))
	students.GET("/me", studentHandler.Profile)
	students.GET("/me/transcript", studentHandler.Transcript)
	students.GET("/me/transcript/export", studentHandler.ExportTranscript)

	admin := authed.Group("/admin", middleware.RequireRoles(models.RoleAdmin))
	admin.POST("/students", adminHandler.RegisterStudent)
	admin.POST("/professors", adminHandler.AddProfessor)
	admin.GET("/users", adminHandler.Users)

	finance := authed.Group("/finance", middleware.RequireRoles(models.RoleFinance))
	finance.GET("/fees/:studentID", financeHandler.Lookup)
	finance.PUT("/fees/:studentID", financeHandler.SetStatus)

	professors := authed.Group("/professors", middleware.RequireRoles(models.RoleProfessor))
	professors.GET("/me/courses", profHandler.Courses)
	professors.GET("/me/courses/:code/roster", profHandler.Roster)
	professors.PUT("/attendance", profHandler.SetAttendance)

	assistant := authed.Group("/assistant", middleware.RequireRoles(models.RoleStudent, models.RoleProfessor))
	assistant.POST("/chat", assistantHandler.Chat)

	if svcs.Metrics != nil {
		r.GET("/metrics", NewMetricsHandler(svcs.Metrics).Scrape)
	}
}
