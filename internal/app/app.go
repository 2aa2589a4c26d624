package app

import (
	"context"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"jobportal_backend/database"
	"jobportal_backend/internal/auth"
	"jobportal_backend/internal/config"
	"jobportal_backend/internal/email"
	"jobportal_backend/internal/handlers"
	"jobportal_backend/internal/logger"
	"jobportal_backend/internal/middleware"
	"jobportal_backend/internal/models"
	"jobportal_backend/internal/repositories"
	"jobportal_backend/internal/routes"
	"jobportal_backend/internal/services"
	"jobportal_backend/internal/storage"
	"jobportal_backend/internal/validator"
	"jobportal_backend/internal/workers"

	"github.com/gin-gonic/gin"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// Run loads configuration, connects to the database, wires the application
// and serves until SIGINT/SIGTERM.
func Run() error {
	config.LoadConfig()
	cfg := config.GetConfig()

	logger.Init(cfg.Server.Env)

	gormDB, err := gorm.Open(postgres.Open(cfg.Database.DSN), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		return fmt.Errorf("connect database: %w", err)
	}

	if err := database.Migrate(gormDB); err != nil {
		return fmt.Errorf("migrate database: %w", err)
	}

	if err := seedAdminUser(gormDB, cfg); err != nil {
		return fmt.Errorf("seed admin user: %w", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	router, worker := SetupRouter(cfg, gormDB)
	worker.Start(ctx)

	cleaner := workers.NewTokenCleaner(gormDB, repositories.NewUserRepository(), time.Hour)
	cleaner.Start(ctx)

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	server := &http.Server{
		Addr:    addr,
		Handler: router,
	}

	go func() {
		logger.Info("Server listening", "addr", addr, "env", cfg.Server.Env)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Server failed", "error", err)
		}
	}()

	<-ctx.Done()
	logger.Info("Shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("Server shutdown failed", "error", err)
	}

	worker.Wait()
	return nil
}

// SetupRouter builds the full gin engine with every dependency wired. The
// returned worker still needs Start; tests can leave it stopped and swap in
// their own transaction via DBMiddleware.
func SetupRouter(cfg *config.Config, db *gorm.DB) (*gin.Engine, *workers.EmailWorker) {
	if cfg.Server.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	storageInstance, err := storage.NewStorage(storage.Config{
		BasePath: cfg.Storage.BasePath,
		BaseURL:  cfg.Storage.BaseURL,
	})
	if err != nil {
		logger.Fatal("Failed to initialize storage", "error", err)
	}

	var sender email.Sender
	if cfg.Email.Enabled {
		sender = email.NewSMTPSender(cfg)
	} else {
		logger.Warn("Email sending disabled, using mock sender")
		sender = email.NewMockSender()
	}
	emailWorker := workers.NewEmailWorker(sender, cfg.Email.QueueSize, cfg.Email.Workers)

	userRepo := repositories.NewUserRepository()
	jobRepo := repositories.NewJobRepository()
	applicationRepo := repositories.NewApplicationRepository()

	notificationService := services.NewNotificationService(userRepo, emailWorker, cfg)
	svc := &services.ServiceContainer{
		AuthService:         services.NewAuthService(userRepo),
		UserService:         services.NewUserService(userRepo, jobRepo, applicationRepo),
		JobService:          services.NewJobService(jobRepo, notificationService),
		ApplicationService:  services.NewApplicationService(applicationRepo),
		ProfileService:      services.NewProfileService(userRepo, applicationRepo, jobRepo, storageInstance, cfg),
		NotificationService: notificationService,
	}

	base := handlers.NewBaseHandler(validator.New())
	appHandlers := &handlers.AppHandlers{
		Auth:    handlers.NewAuthHandler(base, svc.AuthService, userRepo),
		Job:     handlers.NewJobHandler(base, svc.JobService, svc.ApplicationService),
		Profile: handlers.NewProfileHandler(base, svc.ProfileService),
		Admin:   handlers.NewAdminHandler(base, svc.UserService),
	}

	router := gin.New()
	router.Use(
		gin.Recovery(),
		middleware.RequestIDMiddleware(),
		middleware.LoggingMiddleware(),
		middleware.CORSMiddleware(),
		middleware.DBMiddleware(db),
	)

	routes.RegisterRoutes(router, appHandlers)
	return router, emailWorker
}

// seedAdminUser creates the bootstrap admin account on first start. Keyed by
// username, so restarts are no-ops. Exactly one admin must exist before the
// server accepts requests, so a missing password is a startup error rather
// than a skipped seed.
func seedAdminUser(db *gorm.DB, cfg *config.Config) error {
	if cfg.AdminPassword == "" {
		return fmt.Errorf("admin password is not configured; set admin_password (or ADMIN_PASSWORD)")
	}

	return db.Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&models.User{}).Where("username = ?", cfg.AdminUsername).Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return nil
		}

		hash, err := auth.HashPassword(cfg.AdminPassword)
		if err != nil {
			return err
		}

		admin := &models.User{
			Username:     cfg.AdminUsername,
			PasswordHash: hash,
			Role:         models.UserRoleAdmin,
		}
		if err := tx.Create(admin).Error; err != nil {
			return err
		}

		logger.Info("Admin account created", "username", cfg.AdminUsername)
		return nil
	})
}
