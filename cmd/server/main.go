package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"

	"github.com/everestwc/everest-backend/internal/config"
	"github.com/everestwc/everest-backend/internal/database"
	"github.com/everestwc/everest-backend/internal/handler"
	"github.com/everestwc/everest-backend/internal/logger"
	"github.com/everestwc/everest-backend/internal/model"
	"github.com/everestwc/everest-backend/internal/repository"
	"github.com/everestwc/everest-backend/internal/router"
	"github.com/everestwc/everest-backend/internal/service"
	"github.com/everestwc/everest-backend/internal/validator"
	"github.com/everestwc/everest-backend/internal/worker"
)

func main() {
	// ─── Load Configuration ────────────────────────────────────────────
	cfg := config.Load()

	// ─── Initialize Logger ─────────────────────────────────────────────
	log := logger.Setup(cfg.LogLevel, cfg.LogFormat)
	log.Info().
		Str("port", cfg.ServerPort).
		Str("mode", cfg.GinMode).
		Bool("production", cfg.Production).
		Msg("Starting Everest CMS Backend")

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

	// ─── Connect to Redis (session store) ──────────────────────────────
	rdb, err := database.NewRedisClient(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to Redis")
	}
	defer rdb.Close()

	// ─── Initialize Repositories ───────────────────────────────────────
	adminRepo := repository.NewAdminRepository(pool)
	settingsRepo := repository.NewSettingsRepository(pool)
	sliderRepo := repository.NewSliderRepository(pool)
	universityRepo := repository.NewUniversityRepository(pool)
	courseRepo := repository.NewCourseRepository(pool)
	destinationRepo := repository.NewDestinationRepository(pool)
	classRepo := repository.NewClassRepository(pool)
	blogRepo := repository.NewBlogRepository(pool)
	reviewRepo := repository.NewReviewRepository(pool)
	appointmentRepo := repository.NewAppointmentRepository(pool)

	// ─── Initialize Services ──────────────────────────────────────────
	authService := service.NewAuthService(cfg, rdb)

	// ─── Initialize Handlers ──────────────────────────────────────────
	cookie := handler.CookieSettings{
		MaxAge:   int(cfg.SessionTTL / time.Second),
		Secure:   cfg.Production,
		SameSite: http.SameSiteLaxMode,
	}
	if cfg.Production {
		// The deployed frontend lives on another origin; the cookie has to
		// ride cross-site requests.
		cookie.SameSite = http.SameSiteNoneMode
	}

	handlers := &router.Handlers{
		Auth:         handler.NewAuthHandler(adminRepo, authService, cookie, log),
		Settings:     handler.NewSettingsHandler(settingsRepo, log),
		Appointments: handler.NewAppointmentHandler(appointmentRepo, log),
		Content: []router.ContentResource{
			{Path: "sliders", Routes: handler.NewContentHandler[model.Slider, model.CreateSliderRequest, model.SliderPatch](
				sliderRepo, model.NewSlider, "slider", "sliders", log)},
			{Path: "universities", Routes: handler.NewContentHandler[model.University, model.CreateUniversityRequest, model.UniversityPatch](
				universityRepo, model.NewUniversity, "university", "universities", log)},
			{Path: "courses", Routes: handler.NewContentHandler[model.Course, model.CreateCourseRequest, model.CoursePatch](
				courseRepo, model.NewCourse, "course", "courses", log)},
			{Path: "destinations", Routes: handler.NewContentHandler[model.Destination, model.CreateDestinationRequest, model.DestinationPatch](
				destinationRepo, model.NewDestination, "destination", "destinations", log)},
			{Path: "classes", Routes: handler.NewContentHandler[model.Class, model.CreateClassRequest, model.ClassPatch](
				classRepo, model.NewClass, "class", "classes", log)},
			{Path: "blogs", Routes: handler.NewContentHandler[model.Blog, model.CreateBlogRequest, model.BlogPatch](
				blogRepo, model.NewBlog, "blog", "blogs", log)},
			{Path: "reviews", Routes: handler.NewContentHandler[model.Review, model.CreateReviewRequest, model.ReviewPatch](
				reviewRepo, model.NewReview, "review", "reviews", log)},
		},
	}

	// ─── Start Keepalive Worker ───────────────────────────────────────
	workerCtx, workerCancel := context.WithCancel(context.Background())

	keepalive := worker.NewKeepaliveWorker(cfg.KeepaliveURL, cfg.KeepaliveInterval, log)
	go keepalive.Start(workerCtx)

	// ─── Setup Router ──────────────────────────────────────────────────
	r := router.SetupRouter(handlers, authService, cfg)

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

	workerCancel()

	log.Info().Msg("Shutdown complete")
}

// init sets zerolog global defaults before main runs.
func init() {
	zerolog.TimeFieldFormat = time.RFC3339
}
