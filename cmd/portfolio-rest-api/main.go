// cmd/portfolio-rest-api/main.go
package main

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	v1 "github.com/MGTheTrain/portfolio-api/internal/api/rest/v1"
	"github.com/MGTheTrain/portfolio-api/internal/bootstrap"
	"github.com/MGTheTrain/portfolio-api/internal/infrastructure/scheduler"
	"github.com/MGTheTrain/portfolio-api/internal/pkg/config"
	"github.com/MGTheTrain/portfolio-api/internal/pkg/logger"

	"github.com/gin-gonic/gin"
)

const shutdownTimeout = 15 * time.Second

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Application error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Parse configuration
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "configs/rest-app.yaml"
	}

	restConfig, err := config.InitializeRestConfig(configPath)
	if err != nil {
		return fmt.Errorf("failed to initialize config: %w", err)
	}

	// Initialize logger
	if err := logger.InitLogger(&restConfig.Logger); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	log, err := logger.GetLogger()
	if err != nil {
		return fmt.Errorf("failed to get logger: %w", err)
	}
	defer func() { _ = log.Sync() }()

	// Initialize application dependencies
	ctx := context.Background()
	container, err := bootstrap.NewContainer(ctx, restConfig, log)
	if err != nil {
		return fmt.Errorf("failed to initialize dependencies: %w", err)
	}
	defer container.Close()

	if err := container.EnsureAdmin(ctx, restConfig.Auth); err != nil {
		return err
	}

	publishScheduler, err := startScheduler(restConfig.Scheduler, container, log)
	if err != nil {
		return err
	}

	// Setup and start server with graceful shutdown
	return startServerWithGracefulShutdown(restConfig, container, publishScheduler, log)
}

// startScheduler starts the in-process scheduled publishing job when enabled
func startScheduler(settings config.SchedulerSettings, container *bootstrap.Container, log logger.Logger) (*scheduler.PublishScheduler, error) {
	if !settings.Enabled {
		log.Info("Scheduled publishing is disabled")
		return nil, nil
	}

	publishScheduler, err := scheduler.NewPublishScheduler(settings.Spec, container.Services.Posts, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create publish scheduler: %w", err)
	}
	publishScheduler.Start()
	return publishScheduler, nil
}

// newRouter maps the container onto the HTTP API
func newRouter(cfg *config.RestConfig, container *bootstrap.Container, log logger.Logger) *gin.Engine {
	if !cfg.IsDevelopment() {
		gin.SetMode(gin.ReleaseMode)
	}

	services := container.Services
	return v1.NewRouter(&v1.Services{
		Auth:          services.Auth,
		Posts:         services.Posts,
		Projects:      services.Projects,
		Leads:         services.Leads,
		Comments:      services.Comments,
		Uploads:       services.Uploads,
		Notifications: services.Notifications,
		AuditLogs:     services.AuditLogs,
		Analytics:     services.Analytics,
	}, v1.RouterConfig{
		Development:   cfg.IsDevelopment(),
		CORSOrigins:   cfg.CORS.AllowOrigins,
		UploadDir:     cfg.Uploads.Dir,
		UploadPath:    cfg.Uploads.PublicPath,
		MaxUploadSize: cfg.Uploads.MaxSizeBytes,
		PingInterval:  v1.DefaultPingInterval,
		Metrics:       container.Metrics,
		DBPing:        container.Ping,
	}, log)
}

// startServerWithGracefulShutdown starts the HTTP server and handles graceful shutdown
func startServerWithGracefulShutdown(cfg *config.RestConfig, container *bootstrap.Container, publishScheduler *scheduler.PublishScheduler, log logger.Logger) error {
	// Request contexts end on shutdown so notification streams let go
	baseCtx, cancelBase := context.WithCancel(context.Background())
	defer cancelBase()

	// Create HTTP server
	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           newRouter(cfg, container, log),
		ReadHeaderTimeout: 10 * time.Second, // Prevent Slowloris attack
		BaseContext:       func(net.Listener) context.Context { return baseCtx },
	}
	srv.RegisterOnShutdown(cancelBase)

	// Channel to listen for errors from the server
	serverErrors := make(chan error, 1)

	// Start server in goroutine
	go func() {
		log.Info("Starting server on port ", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErrors <- fmt.Errorf("server failed to start: %w", err)
		}
	}()

	// Channel to listen for interrupt signals
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	// Block until we receive a signal or server error
	select {
	case err := <-serverErrors:
		return err
	case sig := <-quit:
		log.Info("Received signal ", sig, ", initiating graceful shutdown")
	}

	// Graceful shutdown with timeout
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if publishScheduler != nil {
		if err := publishScheduler.Stop(ctx); err != nil {
			log.Warn("Scheduler did not stop in time: ", err)
		}
	}

	log.Info("Shutting down server...")
	if err := srv.Shutdown(ctx); err != nil {
		return fmt.Errorf("server forced to shutdown: %w", err)
	}

	log.Info("Server stopped gracefully")
	return nil
}
