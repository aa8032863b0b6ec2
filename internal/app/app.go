package app

import (
	"context"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"notake_backend/database"
	"notake_backend/internal/config"
	"notake_backend/internal/handlers"
	"notake_backend/internal/logger"
	"notake_backend/internal/middleware"
	"notake_backend/internal/repositories"
	"notake_backend/internal/routes"
	"notake_backend/internal/services"
	"notake_backend/internal/storage"
	"notake_backend/internal/validator"
	"notake_backend/internal/workers"

	"github.com/gin-gonic/gin"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

const orphanSweepInterval = 6 * time.Hour

// SetupRouter wires repositories, services and handlers onto a gin engine.
// Tests call it directly with their own db handle and storage.
func SetupRouter(db *gorm.DB, store storage.Storage, cfg *config.Config) *gin.Engine {
	userRepo := repositories.NewUserRepository()
	noteRepo := repositories.NewNoteRepository()
	linkRepo := repositories.NewNoteLinkRepository()
	fileRepo := repositories.NewFileMetadataRepository()
	profileRepo := repositories.NewProfileRepository()

	fileService := services.NewFileService(store, fileRepo, cfg.Upload.MaxFileSize, cfg.Upload.MaxProfileImageSize)
	authService := services.NewAuthService(userRepo)
	noteService := services.NewNoteService(noteRepo, linkRepo)
	linkService := services.NewNoteLinkService(noteRepo, linkRepo)
	profileService := services.NewProfileService(profileRepo, userRepo, noteRepo, linkRepo, fileRepo, fileService)

	base := handlers.NewBaseHandler(validator.New())
	appHandlers := &handlers.AppHandlers{
		Auth:     handlers.NewAuthHandler(base, authService),
		Note:     handlers.NewNoteHandler(base, noteService),
		NoteLink: handlers.NewNoteLinkHandler(base, linkService),
		File:     handlers.NewFileHandler(base, fileService),
		Profile:  handlers.NewProfileHandler(base, profileService),
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestIDMiddleware())
	r.Use(middleware.LoggingMiddleware())
	r.Use(middleware.DBMiddleware(db))

	routes.RegisterRoutes(r, appHandlers)
	return r
}

// Run starts the HTTP server and blocks until SIGINT/SIGTERM.
func Run() error {
	config.LoadConfig()
	cfg := config.GetConfig()

	logger.Init(cfg.Server.Env)
	if cfg.Server.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	db, err := gorm.Open(postgres.Open(cfg.Database.DSN), &gorm.Config{
		TranslateError: true,
	})
	if err != nil {
		return fmt.Errorf("connect database: %w", err)
	}
	if err := database.Migrate(db); err != nil {
		return fmt.Errorf("migrate: %w", err)
	}

	store, err := storage.NewStorage(storage.Config{
		Type:      cfg.Storage.Type,
		BasePath:  cfg.Storage.BasePath,
		BaseURL:   cfg.Storage.BaseURL,
		Bucket:    cfg.Storage.Bucket,
		Region:    cfg.Storage.Region,
		AccessKey: cfg.Storage.AccessKey,
		SecretKey: cfg.Storage.SecretKey,
		Endpoint:  cfg.Storage.Endpoint,
	})
	if err != nil {
		return fmt.Errorf("init storage: %w", err)
	}

	r := SetupRouter(db, store, cfg)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	sweeper := workers.NewOrphanWorker(db, store, repositories.NewFileMetadataRepository(), orphanSweepInterval)
	go sweeper.Start(ctx)

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{Addr: addr, Handler: r}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Error("server shutdown", "error", err)
		}
	}()

	logger.Info("server listening", "addr", addr, "storage", cfg.Storage.Type)
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}
