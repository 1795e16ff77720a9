package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/scholara/campus-backend/internal/cache"
	"github.com/scholara/campus-backend/internal/config"
	"github.com/scholara/campus-backend/internal/database"
	"github.com/scholara/campus-backend/internal/handler"
	"github.com/scholara/campus-backend/internal/logger"
	"github.com/scholara/campus-backend/internal/repository"
	"github.com/scholara/campus-backend/internal/router"
	"github.com/scholara/campus-backend/internal/service"
	"github.com/scholara/campus-backend/internal/validator"
)

func main() {
	// ─── Load Configuration ────────────────────────────────────────────
	cfg := config.Load()

	// ─── Initialize Logger ─────────────────────────────────────────────
	log := logger.Setup(cfg.LogLevel, cfg.LogFormat)
	log.Info().
		Str("port", cfg.ServerPort).
		Str("mode", cfg.GinMode).
		Str("log_level", cfg.LogLevel).
		Msg("Starting Campus Backend")

	// ─── Initialize Validator ──────────────────────────────────────────
	validator.Setup()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// ─── Connect to PostgreSQL ─────────────────────────────────────────
	pool, err := database.NewPostgresPool(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to PostgreSQL")
	}
	defer pool.Close()

	// ─── Connect to Redis ──────────────────────────────────────────────
	rdb, err := database.NewRedisClient(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to Redis")
	}
	defer rdb.Close()

	// ─── Initialize Repositories ───────────────────────────────────────
	adminRepo := repository.NewAdminRepository(pool)
	sectionRepo := repository.NewSectionRepository(pool)
	subjectRepo := repository.NewSubjectRepository(pool)
	buildingRepo := repository.NewBuildingRepository(pool)
	teacherRepo := repository.NewTeacherRepository(pool)
	assignmentRepo := repository.NewTeacherAssignmentRepository(pool)
	scheduleRepo := repository.NewScheduleRepository(pool)
	roomRepo := repository.NewRoomAssignmentRepository(pool)
	studyLoadRepo := repository.NewStudyLoadRepository(pool)
	dashboardRepo := repository.NewDashboardRepository(pool)

	// ─── Initialize Cache Coordinator ─────────────────────────────────
	cacheCoord := cache.NewCoordinator(rdb, log)

	// ─── Initialize Services ──────────────────────────────────────────
	authService := service.NewAuthService(cfg, adminRepo, log)
	sectionService := service.NewSectionService(pool, sectionRepo, studyLoadRepo, cacheCoord, cfg.CacheTTL, log)
	subjectService := service.NewSubjectService(subjectRepo, cacheCoord, log)
	buildingService := service.NewBuildingService(buildingRepo, cacheCoord, log)
	assignmentService := service.NewTeacherAssignmentService(assignmentRepo, teacherRepo, subjectRepo, sectionRepo, cacheCoord, log)
	roomService := service.NewRoomAssignmentService(pool, roomRepo, buildingRepo, sectionRepo, cacheCoord, log)
	studyLoadService := service.NewStudyLoadService(studyLoadRepo, cacheCoord, cfg.CacheTTL, log)
	scheduleService := service.NewScheduleService(pool, scheduleRepo, assignmentRepo, teacherRepo, sectionRepo, subjectRepo, roomService, studyLoadService, cacheCoord, cfg.CacheTTL, log)
	dashboardService := service.NewDashboardService(dashboardRepo, cacheCoord, cfg.CacheTTL, log)

	// ─── Initialize Handlers ──────────────────────────────────────────
	handlers := &router.Handlers{
		Auth:              handler.NewAuthHandler(authService),
		Section:           handler.NewSectionHandler(sectionService, roomService, studyLoadService),
		Subject:           handler.NewSubjectHandler(subjectService),
		Building:          handler.NewBuildingHandler(buildingService),
		TeacherAssignment: handler.NewTeacherAssignmentHandler(assignmentService),
		Schedule:          handler.NewScheduleHandler(scheduleService),
		StudyLoad:         handler.NewStudyLoadHandler(studyLoadService),
		Dashboard:         handler.NewDashboardHandler(dashboardService),
		System:            handler.NewSystemHandler(pool, rdb, log),
		WS:                handler.NewWSHandler(dashboardService, log, cfg.AllowedOrigins),
	}

	// ─── Prewarm Redis Caches ─────────────────────────────────────────
	// Dashboard aggregates are the hottest reads; load them BEFORE
	// accepting traffic so the first burst does not stampede Postgres.
	if err := dashboardService.Prewarm(ctx); err != nil {
		log.Warn().Err(err).Msg("Cache prewarm failed")
	}

	// ─── Setup Router ──────────────────────────────────────────────────
	r := router.SetupRouter(authService, handlers, cfg)

	// ─── Create HTTP Server ────────────────────────────────────────────
	srv := &http.Server{
		Addr:    ":" + cfg.ServerPort,
		Handler: r,
	}

	// ─── Start Server in Goroutine ─────────────────────────────────────
	go func() {
		log.Info().Str("addr", ":"+cfg.ServerPort).Msg("Server listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("Server error")
		}
	}()

	// ─── Graceful Shutdown ─────────────────────────────────────────────
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit

	log.Info().Str("signal", sig.String()).Msg("Shutting down gracefully...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("HTTP server shutdown error")
	}

	log.Info().Msg("Shutdown complete")
}

// init sets zerolog global defaults before main runs.
func init() {
	zerolog.TimeFieldFormat = time.RFC3339
}
