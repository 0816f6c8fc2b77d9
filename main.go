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

	"go.uber.org/zap"

	"github.com/blogem/boxee-legacy-api/config"
	"github.com/blogem/boxee-legacy-api/controllers"
	"github.com/blogem/boxee-legacy-api/database"
	"github.com/blogem/boxee-legacy-api/logging"
	"github.com/blogem/boxee-legacy-api/metrics"
	"github.com/blogem/boxee-legacy-api/repositories"
	"github.com/blogem/boxee-legacy-api/server"
	"github.com/blogem/boxee-legacy-api/services"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logger, err := logging.New(cfg.Environment, cfg.Logging.Level, cfg.Logging.Format)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	// The ledger is only opened when tracking is on; a disabled tracker never reads it
	repos := &repositories.Repositories{}
	if cfg.Features.Tracking {
		db, err := database.InitializeDatabase(cfg.Database.URL)
		if err != nil {
			logger.Fatal("Failed to initialize database", zap.Error(err))
		}
		defer db.Close()

		repos = repositories.NewRepositories(db)
		logger.Info("Request ledger ready", zap.String("database", cfg.Database.URL))
	}

	// Initialize services
	srvs := services.NewServices(repos, cfg.Features.Tracking)

	// Initialize controllers
	ctrl := controllers.NewControllers(srvs, cfg, logger)

	httpServer := &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           server.NewRouter(cfg, ctrl, srvs, logger),
		ReadHeaderTimeout: 10 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	var metricsServer *metrics.Server
	if cfg.Server.MetricsPort != "" {
		metricsServer = metrics.NewServer(":"+cfg.Server.MetricsPort, logger)
		metricsServer.Start()
	}

	go func() {
		logger.Info("Boxee legacy API starting",
			zap.String("environment", cfg.Environment),
			zap.String("server_name", cfg.Server.Name),
			zap.String("port", cfg.Server.Port),
			zap.Bool("tracking", cfg.Features.Tracking),
			zap.Bool("upgrade_image", cfg.Features.UpgradeImage),
			zap.Bool("stats_routes", cfg.Features.StatsRoutes),
		)
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("Server failed", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := httpServer.Shutdown(ctx); err != nil {
		logger.Error("Server shutdown failed", zap.Error(err))
	}
	if metricsServer != nil {
		if err := metricsServer.Shutdown(ctx); err != nil {
			logger.Error("Metrics server shutdown failed", zap.Error(err))
		}
	}
}
