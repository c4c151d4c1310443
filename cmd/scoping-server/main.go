// cmd/scoping-server/main.go
package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/Navashanmugam888/engagement-scoping-tool/internal/common/config"
	"github.com/Navashanmugam888/engagement-scoping-tool/internal/common/database"
	"github.com/Navashanmugam888/engagement-scoping-tool/internal/common/logger"
	"github.com/Navashanmugam888/engagement-scoping-tool/internal/common/observability"
	"github.com/Navashanmugam888/engagement-scoping-tool/internal/engine"
	"github.com/Navashanmugam888/engagement-scoping-tool/internal/reportcache"
	"github.com/Navashanmugam888/engagement-scoping-tool/internal/server"
	"github.com/Navashanmugam888/engagement-scoping-tool/internal/store"
)

// retryWithBackoff attempts to execute a function with exponential backoff
func retryWithBackoff(operation func() error, maxRetries int, initialDelay time.Duration, log *zap.Logger, operationName string) error {
	var err error
	delay := initialDelay

	for i := 0; i < maxRetries; i++ {
		err = operation()
		if err == nil {
			return nil
		}

		if i < maxRetries-1 {
			log.Warn(fmt.Sprintf("%s failed, retrying...", operationName),
				zap.Error(err),
				zap.Int("attempt", i+1),
				zap.Int("maxRetries", maxRetries),
				zap.Duration("nextRetryIn", delay),
			)
			time.Sleep(delay)
			delay *= 2
		}
	}

	return fmt.Errorf("%s failed after %d attempts: %w", operationName, maxRetries, err)
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config load failed: %v\n", err)
		os.Exit(1)
	}

	zapLog := logger.New(cfg.Logging.Level, cfg.Logging.Format)
	defer zapLog.Sync()
	log := logger.NewZapAdapter(zapLog)

	zapLog.Info("starting scoping server",
		zap.String("app", cfg.App.Name),
		zap.String("env", cfg.App.Environment),
	)

	obs := observability.New("scoping-server")
	defer obs.Shutdown()

	ctx := context.Background()

	// --- Postgres with retry ---
	var pg *database.PostgresClient
	err = retryWithBackoff(func() error {
		var err error
		pg, err = database.NewPostgres(cfg.Database.Postgres)
		if err != nil {
			return err
		}
		pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
		defer cancel()
		return pg.Ping(pingCtx)
	}, 10, 2*time.Second, zapLog, "Postgres connection")
	if err != nil {
		zapLog.Fatal("postgres unavailable", zap.Error(err))
	}
	defer pg.Close()

	// --- Redis (optional; reports just re-render without it) ---
	var redis *database.RedisClient
	if cfg.Database.Redis.Address != "" {
		redis, err = database.NewRedis(cfg.Database.Redis)
		if err != nil {
			zapLog.Warn("redis init failed, report cache disabled", zap.Error(err))
			redis = nil
		} else if err := redis.Ping(ctx); err != nil {
			zapLog.Warn("redis unreachable, report cache disabled", zap.Error(err))
			redis.Close()
			redis = nil
		} else {
			defer redis.Close()
		}
	}

	configs := store.NewConfigStore(pg, log)
	submissions := store.NewSubmissionStore(pg, log)
	if err := configs.EnsureSchema(ctx); err != nil {
		zapLog.Fatal("config schema setup failed", zap.Error(err))
	}
	if err := submissions.EnsureSchema(ctx); err != nil {
		zapLog.Fatal("submission schema setup failed", zap.Error(err))
	}
	if err := configs.Load(ctx); err != nil {
		zapLog.Fatal("configuration load failed", zap.Error(err))
	}

	cache := reportcache.New(redis, time.Duration(cfg.Report.CacheTTL)*time.Second, log)
	svc := engine.NewService(configs, submissions, obs, log)

	router := server.NewRouter(server.RouterConfig{
		Service:        svc,
		Configs:        configs,
		ReportCache:    cache,
		Postgres:       pg,
		Redis:          redis,
		Log:            log,
		AllowedOrigins: cfg.Server.AllowedOrigins,
	})

	srv := &http.Server{
		Addr:         cfg.Server.Address,
		Handler:      router,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
	}

	go func() {
		zapLog.Info("http server listening", zap.String("address", cfg.Server.Address))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			zapLog.Fatal("http server failed", zap.Error(err))
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	zapLog.Info("shutting down...")
	shutdownCtx, cancel := context.WithTimeout(ctx, 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		zapLog.Error("graceful shutdown failed", zap.Error(err))
	}
	zapLog.Info("server stopped")
}
