package main

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"log"
	"net/http"
	"time"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"emotion-classifier/internal/config"
	"emotion-classifier/internal/db"
	apihttp "emotion-classifier/internal/http"
	"emotion-classifier/internal/repository"
	"emotion-classifier/internal/service"
)

func main() {
	ctx := context.Background()

	if err := godotenv.Load(); err != nil {
		log.Printf("warning: loading .env: %v", err)
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		panic(err)
	}

	zapCfg := zap.NewProductionConfig()
	if level, err := zapcore.ParseLevel(cfg.LogLevel); err == nil {
		zapCfg.Level = zap.NewAtomicLevelAt(level)
	}
	logger, err := zapCfg.Build()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	checks := map[string]apihttp.HealthCheck{}
	var (
		resultStore service.ResultStore
		limiter     service.ClassifyRateLimiter
	)

	if cfg.DatabaseURL != "" {
		pool, err := db.NewPool(ctx, cfg)
		if err != nil {
			logger.Fatal("db connect", zap.Error(err))
		}
		defer pool.Close()

		repo := repository.NewPgSessionResultRepository(pool, cfg.ResultTTL())
		if err := repo.EnsureSchema(ctx); err != nil {
			logger.Fatal("db schema", zap.Error(err))
		}
		resultStore = repo
		checks["postgres"] = func(ctx context.Context) error { return db.Ping(ctx, pool) }
		go purgeExpiredResults(ctx, logger, repo, time.Hour)
	}

	if cfg.RedisAddr != "" {
		redisClient := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		defer redisClient.Close()
		ctxPing, cancel := context.WithTimeout(ctx, 2*time.Second)
		if err := redisClient.Ping(ctxPing).Err(); err != nil {
			logger.Warn("redis ping failed", zap.Error(err))
		} else {
			if resultStore == nil {
				resultStore = service.NewRedisResultStore(redisClient, cfg.ResultTTL())
			}
			limiter = service.NewRedisRateLimiter(redisClient, cfg.ClassifyRateWindow(), cfg.ClassifyRateLimit)
			checks["redis"] = func(ctx context.Context) error { return redisClient.Ping(ctx).Err() }
		}
		cancel()
	}

	if resultStore == nil {
		resultStore = service.NewMemoryResultStore(cfg.ResultTTL())
	}
	if limiter == nil {
		limiter = service.NewMemoryRateLimiter(cfg.ClassifyRateWindow(), cfg.ClassifyRateLimit)
	}

	secret := cfg.SessionSecret
	if secret == "" {
		logger.Warn("session secret not configured, using an ephemeral one")
		secret = ephemeralSecret()
	}
	tokens := service.NewSessionTokenService(secret, cfg.SessionTTL())

	classificationSvc := service.NewClassificationService(logger, resultStore)
	router := apihttp.NewRouter(
		logger,
		apihttp.NewSessionHandler(logger, tokens),
		apihttp.NewClassifyHandler(logger, classificationSvc, limiter),
		apihttp.NewAnalyticsHandler(service.AnalyticsService{}),
		apihttp.NewHealthHandler(logger, checks),
	)

	server := &http.Server{
		Addr:              ":" + cfg.HTTPPort,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	logger.Info("starting server", zap.String("port", cfg.HTTPPort))

	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Fatal("server error", zap.Error(err))
	}
}

func ephemeralSecret() string {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		panic(err)
	}
	return hex.EncodeToString(buf)
}

func purgeExpiredResults(ctx context.Context, logger *zap.Logger, repo *repository.PgSessionResultRepository, every time.Duration) {
	ticker := time.NewTicker(every)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			n, err := repo.DeleteExpired(ctx)
			if err != nil {
				logger.Warn("purge expired results failed", zap.Error(err))
				continue
			}
			if n > 0 {
				logger.Info("purged expired results", zap.Int64("rows", n))
			}
		}
	}
}
