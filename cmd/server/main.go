package main

import (
	"context"
	"database/sql"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"salesdash/internal/commons"
	"salesdash/internal/config"
	"salesdash/internal/infrastructure/logger"
	"salesdash/internal/infrastructure/metrics"
	"salesdash/internal/infrastructure/mysql"
	"salesdash/internal/insight"
	"salesdash/internal/sales"
	"salesdash/internal/scheduler"
	"salesdash/internal/server"
)

const defaultConfigPath = "internal/config/config.yaml"

func main() {
	configPath := os.Getenv("SALESDASH_CONFIG")
	if configPath == "" {
		configPath = defaultConfigPath
	}

	cfg, err := commons.LoadConfig(configPath)
	if err != nil {
		log.Fatalf("loading config: %v", err)
	}

	zapLogger, err := logger.New(cfg.Log)
	if err != nil {
		log.Fatalf("creating logger: %v", err)
	}
	defer zapLogger.Sync()

	var db *sql.DB
	if cfg.Dataset.Source == config.DatasetSourceMySQL {
		db, err = mysql.NewConnection(context.Background(), cfg.Database)
		if err != nil {
			zapLogger.Fatal("connecting to database", zap.Error(err))
		}
		defer db.Close()
		zapLogger.Info("database connected")
	}

	source, err := sales.NewDatasetSource(cfg.Dataset, db)
	if err != nil {
		zapLogger.Fatal("creating dataset source", zap.Error(err))
	}

	reg := metrics.NewRegistry()
	dashboard, salesCtrl := sales.NewModule(source, reg, zapLogger)
	insightCtrl := insight.NewModule(cfg.Insight, dashboard, reg, zapLogger)

	// The server still starts on a failed initial load; the dashboard routes
	// answer 503 until a reload succeeds.
	loadCtx, cancelLoad := context.WithTimeout(context.Background(), 30*time.Second)
	if _, err := dashboard.Reload(loadCtx); err != nil {
		zapLogger.Warn("initial dataset load failed", zap.Error(err))
	}
	cancelLoad()

	reloads, err := scheduler.NewReloadScheduler(cfg.Dataset.ReloadSchedule, dashboard, 30*time.Second, zapLogger)
	if err != nil {
		zapLogger.Fatal("creating reload scheduler", zap.Error(err))
	}
	reloads.Start()

	router := server.NewRouter(salesCtrl, insightCtrl, reg.Handler(), zapLogger)
	srv := server.New(cfg.Server, router, zapLogger)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		if err := srv.Start(); err != nil {
			zapLogger.Fatal("server error", zap.Error(err))
		}
	}()

	<-quit
	zapLogger.Info("received shutdown signal")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	reloads.Stop(ctx)
	if err := srv.Shutdown(ctx); err != nil {
		zapLogger.Fatal("server shutdown failed", zap.Error(err))
	}

	zapLogger.Info("server stopped gracefully")
}
