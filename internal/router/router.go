package router

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/scholara/campus-backend/internal/config"
	"github.com/scholara/campus-backend/internal/handler"
	"github.com/scholara/campus-backend/internal/middleware"
	"github.com/scholara/campus-backend/internal/response"
	"github.com/scholara/campus-backend/internal/service"
)

// Handlers groups all handler instances for route setup.
type Handlers struct {
	Auth              *handler.AuthHandler
	Section           *handler.SectionHandler
	Subject           *handler.SubjectHandler
	Building          *handler.BuildingHandler
	TeacherAssignment *handler.TeacherAssignmentHandler
	Schedule          *handler.ScheduleHandler
	StudyLoad         *handler.StudyLoadHandler
	Dashboard         *handler.DashboardHandler
	System            *handler.SystemHandler
	WS                *handler.WSHandler
}

// SetupRouter configures all Gin route groups with appropriate middlewares.
func SetupRouter(
	authService *service.AuthService,
	handlers *Handlers,
	cfg *config.Config,
) *gin.Engine {
	gin.SetMode(cfg.GinMode)
	router := gin.Default()

	// ─── CORS ──────────────────────────────────────────────────────────
	// If AllowedOrigins is set in config, restrict to that list;
	// otherwise allow all (*) so dev works without extra config.
	corsConfig := cors.DefaultConfig()
	if len(cfg.AllowedOrigins) > 0 {
		corsConfig.AllowOrigins = cfg.AllowedOrigins
	} else {
		corsConfig.AllowAllOrigins = true
	}
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "Authorization", "X-Request-ID"}
	corsConfig.ExposeHeaders = []string{"X-Request-ID"}
	corsConfig.MaxAge = 12 * time.Hour
	router.Use(cors.New(corsConfig))

	// Apply request ID middleware globally so every response includes metadata.
	router.Use(response.RequestIDMiddleware())

	// Apply brotli middleware globally.
	router.Use(middleware.Brotli())

	// Health check.
	router.GET("/health", func(c *gin.Context) {
		response.Success(c, http.StatusOK, gin.H{"status": "ok"})
	})

	// Rate limiter for auth routes (30 requests per minute per IP).
	authLimiter := middleware.NewRateLimiter(30, time.Minute)

	// ─── 1. Auth Group (Public, Rate Limited) ──────────────────────────
	auth := router.Group("/api/v1/auth")
	auth.Use(authLimiter.Middleware())
	{
		auth.POST("/login", handlers.Auth.Login)
		auth.GET("/me", middleware.RequireAdminJWT(authService), handlers.Auth.Me)
	}

	// ─── 2. WebSocket Group (Admin WS Auth) ────────────────────────────
	ws := router.Group("/ws/v1")
	ws.Use(middleware.RequireAdminWSAuth(authService))
	{
		ws.GET("/dashboard/stream", handlers.WS.DashboardStream)
	}

	// ─── 3. Admin Group (JWT) ──────────────────────────────────────────
	adminAPI := router.Group("/api/v1/admin")
	adminAPI.Use(middleware.RequireAdminJWT(authService))
	{
		// Sections (rooms and bulk study-load deletion ride the section path)
		sectionsGroup := adminAPI.Group("/sections")
		{
			sectionsGroup.GET("", handlers.Section.List)
			sectionsGroup.POST("", handlers.Section.Create)
			sectionsGroup.GET("/:id", handlers.Section.Get)
			sectionsGroup.PUT("/:id", handlers.Section.Update)
			sectionsGroup.DELETE("/:id", handlers.Section.Delete)
			sectionsGroup.GET("/:id/roster", handlers.Section.Roster)
			sectionsGroup.POST("/:id/room", handlers.Section.AssignRoom)
			sectionsGroup.GET("/:id/room", handlers.Section.CurrentRoom)
			sectionsGroup.GET("/:id/room/history", handlers.Section.RoomHistory)
			sectionsGroup.DELETE("/:id/study-loads", handlers.Section.DeleteStudyLoads)
		}
		adminAPI.GET("/sections-with-load", handlers.Section.ListWithLoad)

		// Subjects
		subjectsGroup := adminAPI.Group("/subjects")
		{
			subjectsGroup.GET("", handlers.Subject.List)
			subjectsGroup.POST("", handlers.Subject.Create)
			subjectsGroup.GET("/:id", handlers.Subject.Get)
			subjectsGroup.PUT("/:id", handlers.Subject.Update)
			subjectsGroup.DELETE("/:id", handlers.Subject.Delete)
		}

		// Buildings
		buildingsGroup := adminAPI.Group("/buildings")
		{
			buildingsGroup.GET("", handlers.Building.List)
			buildingsGroup.POST("", handlers.Building.Create)
			buildingsGroup.PUT("/:id", handlers.Building.Update)
			buildingsGroup.DELETE("/:id", handlers.Building.Delete)
		}

		// Teachers and teaching assignments
		adminAPI.GET("/teachers", handlers.TeacherAssignment.ListTeachers)
		assignmentsGroup := adminAPI.Group("/teacher-assignments")
		{
			assignmentsGroup.GET("", handlers.TeacherAssignment.List)
			assignmentsGroup.POST("", handlers.TeacherAssignment.Create)
			assignmentsGroup.POST("/:id/deactivate", handlers.TeacherAssignment.Deactivate)
		}

		// Schedules (full creation pipeline + cached resolved view)
		adminAPI.GET("/schedules", handlers.Schedule.List)
		adminAPI.POST("/schedules", handlers.Schedule.Create)

		// Study loads
		studyLoadsGroup := adminAPI.Group("/study-loads")
		{
			studyLoadsGroup.GET("", handlers.StudyLoad.List)
			studyLoadsGroup.PATCH("/:id", handlers.StudyLoad.UpdateStatus)
			studyLoadsGroup.DELETE("/:id", handlers.StudyLoad.Delete)
		}

		// Dashboard
		adminAPI.GET("/dashboard/stats", handlers.Dashboard.Stats)
		adminAPI.GET("/dashboard/rankings", handlers.Dashboard.Rankings)

		// System monitoring
		adminAPI.GET("/system/metrics", handlers.System.MetricsSSE)
	}

	return router
}
