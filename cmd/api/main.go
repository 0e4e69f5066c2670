package main

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/abcmusiclibrary/backend/docs"
	"github.com/abcmusiclibrary/backend/internal/auth"
	"github.com/abcmusiclibrary/backend/internal/config"
	"github.com/abcmusiclibrary/backend/internal/handlers"
	"github.com/abcmusiclibrary/backend/internal/logger"
	"github.com/abcmusiclibrary/backend/internal/middlewares"
	"github.com/abcmusiclibrary/backend/internal/repositories"
	"github.com/abcmusiclibrary/backend/internal/services"
	"github.com/abcmusiclibrary/backend/internal/storage"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/httprate"
	_ "github.com/go-sql-driver/mysql"
	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/mysql"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	httpSwagger "github.com/swaggo/http-swagger"
	"go.uber.org/zap"
)

// @title ABC Music Library API
// @version 1.0
// @description Role-gated content API for sheet music, lessons, and student progress

// @host localhost:8080
// @BasePath /api
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and the access token.
func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v\n", err)
	}

	// Initialize logger
	if err := logger.Init(cfg.Logging.Level); err != nil {
		log.Fatalf("Failed to initialize logger: %v\n", err)
	}
	defer logger.Sync()

	logger.Logger.Info("Starting ABC Music Library API")

	// Connect to database
	db, err := connectDB(cfg.DSN())
	if err != nil {
		logger.Logger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	// Run migrations
	if err := runMigrations(db); err != nil {
		logger.Logger.Fatal("Failed to run migrations", zap.Error(err))
	}

	// Initialize token service and object store
	tokenService := auth.NewTokenService(cfg.JWT.Secret, cfg.JWT.TokenExpiry)
	signer := storage.NewURLSigner(cfg.Media.SigningSecret)
	store := storage.NewLocalStore(cfg.Media.BasePath, cfg.Media.BaseURL, signer)

	// Initialize repositories
	userRepo := repositories.NewUserRepository(db, logger.Logger)
	sheetRepo := repositories.NewSheetMusicRepository(db)
	lessonRepo := repositories.NewLessonRepository(db)
	progressRepo := repositories.NewProgressRepository(db)

	// Initialize services
	authService := services.NewAuthService(userRepo, tokenService, logger.Logger)
	profileService := services.NewProfileService(userRepo)
	sheetService := services.NewSheetMusicService(sheetRepo)
	lessonService := services.NewLessonService(lessonRepo)
	progressService := services.NewProgressService(progressRepo, lessonRepo)
	uploadService := services.NewUploadService(store, logger.Logger)
	dashboardService := services.NewDashboardService(lessonRepo, sheetRepo, progressRepo)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(authService, logger.Logger)
	profileHandler := handlers.NewProfileHandler(profileService, logger.Logger)
	sheetHandler := handlers.NewSheetMusicHandler(sheetService, logger.Logger)
	lessonHandler := handlers.NewLessonHandler(lessonService, logger.Logger)
	progressHandler := handlers.NewProgressHandler(progressService, logger.Logger)
	uploadHandler := handlers.NewUploadHandler(uploadService, logger.Logger)
	dashboardHandler := handlers.NewDashboardHandler(dashboardService, logger.Logger)
	mediaHandler := handlers.NewMediaHandler(store, signer, logger.Logger)

	// Initialize auth middleware
	authMiddleware := auth.Middleware(tokenService, userRepo)

	// Setup router
	r := chi.NewRouter()

	// Apply middleware
	r.Use(middlewares.RequestIDMiddleware)
	r.Use(middlewares.LoggerMiddleware(logger.Logger))
	r.Use(middlewares.RecoveryMiddleware(logger.Logger))
	r.Use(middlewares.CORSMiddleware(cfg.CORS.AllowedOrigins))
	r.Use(httprate.LimitByIP(100, time.Minute))
	r.Use(middlewares.RequestSizeLimitMiddleware(20 * 1024 * 1024)) // 20MB, uploads included

	// Swagger documentation
	docs.SwaggerInfo.Host = fmt.Sprintf("localhost:%d", cfg.Server.Port)
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL(fmt.Sprintf("http://localhost:%d/swagger/doc.json", cfg.Server.Port)),
	))

	// Service banner
	r.Get("/", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"message":"ABC Music Library API"}`))
	})

	// Scope router to /api
	r.Route("/api", func(r chi.Router) {
		// Public routes
		authHandler.RegisterRoutes(r)
		mediaHandler.RegisterRoutes(r)

		// Authenticated routes
		r.Group(func(r chi.Router) {
			r.Use(authMiddleware)
			profileHandler.RegisterRoutes(r)
			sheetHandler.RegisterRoutes(r)
			lessonHandler.RegisterRoutes(r)
			progressHandler.RegisterRoutes(r)
			uploadHandler.RegisterRoutes(r)
			dashboardHandler.RegisterRoutes(r)
		})
	})

	// Start server
	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in goroutine
	go func() {
		logger.Logger.Info("Server starting", zap.Int("port", cfg.Server.Port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Logger.Fatal("Server failed to start", zap.Error(err))
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Logger.Info("Shutting down server...")

	// Graceful shutdown
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Logger.Error("Server forced to shutdown", zap.Error(err))
	}

	logger.Logger.Info("Server exited")
}

// connectDB connects to the database
func connectDB(dsn string) (*sql.DB, error) {
	db, err := sql.Open("mysql", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(5 * time.Minute)

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return db, nil
}

// runMigrations runs database migrations
func runMigrations(db *sql.DB) error {
	driver, err := mysql.WithInstance(db, &mysql.Config{
		MigrationsTable: "schema_migrations",
	})
	if err != nil {
		return fmt.Errorf("failed to create migration driver: %w", err)
	}

	// Get the working directory or use migrations folder relative to the binary
	migrationPath := "file://migrations"
	if _, err := os.Stat("migrations"); os.IsNotExist(err) {
		// Try parent directory if running from cmd
		if _, err := os.Stat("../migrations"); err == nil {
			migrationPath = "file://../migrations"
		}
	}

	m, err := migrate.NewWithDatabaseInstance(
		migrationPath,
		"mysql",
		driver,
	)
	if err != nil {
		return fmt.Errorf("failed to create migrate instance: %w", err)
	}

	if err := m.Up(); err != nil && err != migrate.ErrNoChange {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	return nil
}
