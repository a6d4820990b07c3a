package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	gcs "cloud.google.com/go/storage"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	_ "machinehub/docs" // swagger docs

	"machinehub/internal/auth"
	"machinehub/internal/cache"
	"machinehub/internal/config"
	"machinehub/internal/db"
	"machinehub/internal/handler"
	applog "machinehub/internal/logger"
	access "machinehub/internal/middleware"
	"machinehub/internal/notify"
	"machinehub/internal/repository"
	"machinehub/internal/router"
	"machinehub/internal/service"
	"machinehub/internal/storage"
)

const shutdownTimeout = 10 * time.Second

// @title MachineHub API
// @version 1.0
// @description B2B machinery marketplace: suppliers list machines, buyers send enquiries.
// @host localhost:8080
// @BasePath /api
// @schemes http
func main() {
	cfg := config.Load()

	logger, err := applog.New(cfg.IsDevelopment())
	if err != nil {
		log.Fatalf("logger init: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	if err := run(cfg, logger); err != nil {
		logger.Fatal("server stopped", zap.Error(err))
	}
}

func run(cfg *config.Config, logger *zap.Logger) error {
	ctx := context.Background()

	if err := cfg.Validate(); err != nil {
		return err
	}
	if cfg.UsesDefaultSecret() {
		logger.Warn("SESSION_SECRET not set, signing sessions with the development placeholder")
	}

	gormDB, err := db.Open(cfg.DBDriver, cfg.DatabaseDSN, db.Options{
		MaxOpenConns:    cfg.DBMaxOpenConns,
		MaxIdleConns:    cfg.DBMaxIdleConns,
		ConnMaxLifetime: cfg.DBConnLifetime,
		Debug:           cfg.IsDevelopment(),
	})
	if err != nil {
		return err
	}
	sqlDB, err := gormDB.DB()
	if err != nil {
		return err
	}
	defer sqlDB.Close()

	if cfg.ResetDB {
		logger.Warn("RESET_DB=true detected, dropping all tables")
		if err := db.Reset(gormDB); err != nil {
			return err
		}
	} else if err := db.Migrate(gormDB); err != nil {
		return err
	}

	cacheClient := cache.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)
	defer cacheClient.Close()
	if err := cacheClient.Ping(ctx); err != nil {
		logger.Warn("redis unreachable, running without cache and session revocation", zap.Error(err))
	}

	images, closeImages, err := newImageStore(ctx, cfg)
	if err != nil {
		return err
	}
	defer closeImages()

	var notifier notify.EnquiryNotifier = notify.Noop{}
	if cfg.SendGridAPIKey != "" {
		notifier = notify.NewSendGridNotifier(cfg.SendGridAPIKey, cfg.NotifyFromEmail)
	}

	// Repositories
	repos := repository.NewRepositories(gormDB)
	tx := repository.NewTxManager(gormDB)

	// Sessions
	sessions := auth.NewSessionManager(cfg.SessionSecret, cfg.SessionTTL)
	sessionStore := auth.NewSessionStore(cacheClient)

	// Services
	authService := service.NewAuthService(repos.Users, sessions, sessionStore, service.AuthOptions{
		AllowAdminRegistration: cfg.AllowAdminRegistration,
	})
	machineService := service.NewMachineService(repos, tx, cacheClient, logger)
	enquiryService := service.NewEnquiryService(repos, tx, notifier, logger)
	dashboardService := service.NewDashboardService(repos, enquiryService)
	profileService := service.NewProfileService(repos, tx, images, logger)

	// Handlers
	cookie := handler.SessionCookie{Name: cfg.SessionCookie, Secure: cfg.CookieSecure}
	handlers := router.Handlers{
		Auth:      handler.NewAuthHandler(authService, cookie),
		Profile:   handler.NewProfileHandler(profileService, authService, cookie, logger),
		Machine:   handler.NewMachineHandler(machineService),
		Enquiry:   handler.NewEnquiryHandler(enquiryService),
		Dashboard: handler.NewDashboardHandler(dashboardService),
	}

	e := echo.New()
	e.HideBanner = true
	router.Register(e, cfg, logger, access.NewGate(authService, sessions, cfg.SessionCookie), handlers, map[string]router.Check{
		"database": sqlDB.PingContext,
		"redis":    cacheClient.Ping,
	})

	errCh := make(chan error, 1)
	go func() {
		logger.Info("starting server", zap.String("addr", ":"+cfg.ServerPort), zap.String("environment", cfg.Environment))
		if err := e.Start(":" + cfg.ServerPort); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	select {
	case err := <-errCh:
		return err
	case sig := <-quit:
		logger.Info("shutting down", zap.String("signal", sig.String()))
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return e.Shutdown(shutdownCtx)
}

func newImageStore(ctx context.Context, cfg *config.Config) (storage.ImageStore, func(), error) {
	switch cfg.ImageStore {
	case "gcs":
		if cfg.GCSBucket == "" {
			return nil, nil, errors.New("GCS_BUCKET is required when IMAGE_STORE=gcs")
		}
		client, err := gcs.NewClient(ctx)
		if err != nil {
			return nil, nil, err
		}
		return storage.NewGCSStore(client, cfg.GCSBucket), func() { _ = client.Close() }, nil
	case "local", "":
		return storage.NewLocalStore(cfg.UploadDir, "uploads"), func() {}, nil
	default:
		return nil, nil, errors.New("unsupported IMAGE_STORE " + cfg.ImageStore)
	}
}
