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

	"go-jobsearch-backend/config"
	"go-jobsearch-backend/internal/delivery/http/middleware"
	v1 "go-jobsearch-backend/internal/delivery/http/v1"
	"go-jobsearch-backend/internal/repository/mongodb"
	"go-jobsearch-backend/internal/usecase"
	"go-jobsearch-backend/pkg/auth"
	"go-jobsearch-backend/pkg/database"
	"go-jobsearch-backend/pkg/logger"
	"go-jobsearch-backend/pkg/redis"
	"go-jobsearch-backend/pkg/security"

	goredis "github.com/redis/go-redis/v9"
)

func main() {
	// 1. Load Config
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// 2. Setup Loggers
	appLog := logger.Init(cfg.IsProduction())
	appLog.Info("Starting job search backend", "port", cfg.Port, "env", cfg.AppEnv)

	audit := security.NewSecurityLogger("jobsearch-api", cfg.AppEnv)
	defer func() { _ = audit.Sync() }()

	// 3. Setup Database
	ctx := context.Background()
	mongoClient, db, err := database.NewMongoConnection(ctx, database.MongoConfig{
		URI:            cfg.MongoURI,
		Database:       cfg.MongoDatabase,
		ConnectTimeout: cfg.MongoConnectTimeout,
		MaxPoolSize:    cfg.MongoMaxPoolSize,
		MinPoolSize:    cfg.MongoMinPoolSize,
	})
	if err != nil {
		appLog.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer func() {
		disconnectCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = mongoClient.Disconnect(disconnectCtx)
	}()

	store := mongodb.NewGateway(db, appLog, cfg.PaginationMaxLimit)
	if err := mongodb.EnsureIndexes(ctx, store); err != nil {
		appLog.Error("Failed to create indexes", "error", err)
		os.Exit(1)
	}

	// 4. Setup Redis (optional)
	var redisClient *goredis.Client
	redisClient, err = redis.NewClient(ctx, redis.Config{URL: cfg.RedisURL, Password: cfg.RedisPassword})
	switch {
	case errors.Is(err, redis.ErrNotConfigured):
		appLog.Warn("Redis not configured - login throttling disabled, rate limits kept in memory")
	case err != nil:
		appLog.Warn("Redis unavailable - login throttling disabled, rate limits kept in memory", "error", err)
		redisClient = nil
	default:
		defer func() { _ = redisClient.Close() }()
	}

	// 5. Setup Auth Services
	hasher := auth.NewBcryptHasher(cfg.BcryptCost)
	tokens := auth.NewTokenService(cfg.JWTSecretKey, cfg.JWTAccessTokenTTL)
	blockWindow := time.Duration(cfg.FailedLoginBlockMinutes) * time.Minute
	tracker := security.NewLoginTracker(redisClient, security.LoginTrackerConfig{
		MaxAttempts:   cfg.FailedLoginMaxAttempts,
		AttemptWindow: blockWindow,
		BlockDuration: blockWindow,
	}, audit)

	// 6. Setup Repositories
	userRepo := mongodb.NewUserRepository(store, hasher)
	companyRepo := mongodb.NewCompanyRepository(store, hasher)
	jobRepo := mongodb.NewJobRepository(store)
	applicationRepo := mongodb.NewApplicationRepository(store)

	// 7. Setup UseCases
	authUC := usecase.NewAuthUsecase(userRepo, companyRepo, tokens, tracker, audit, appLog)
	userUC := usecase.NewUserUsecase(userRepo, companyRepo, jobRepo, applicationRepo)
	companyUC := usecase.NewCompanyUsecase(companyRepo, jobRepo)
	jobUC := usecase.NewJobUsecase(jobRepo, companyRepo, userRepo, applicationRepo, audit, appLog)
	applicationUC := usecase.NewApplicationUsecase(applicationRepo, jobRepo, companyRepo, userRepo, audit)

	checks := map[string]usecase.HealthCheck{
		"mongodb": func(ctx context.Context) error { return database.HealthCheck(ctx, mongoClient) },
		"redis":   nil,
	}
	if redisClient != nil {
		checks["redis"] = func(ctx context.Context) error { return redis.HealthCheck(ctx, redisClient) }
	}
	healthUC := usecase.NewHealthUsecase(checks)

	// 8. Setup Router
	limiter := middleware.NewRateLimiter(redisClient, audit)
	defer limiter.Close()

	router := v1.NewRouter(v1.RouterDeps{
		AuthUC:        authUC,
		UserUC:        userUC,
		CompanyUC:     companyUC,
		JobUC:         jobUC,
		ApplicationUC: applicationUC,
		HealthUC:      healthUC,
		Tokens:        tokens,
		RateLimiter:   limiter,
		Audit:         audit,
		Logger:        appLog,
		Config:        cfg,
	})

	// 9. Start Server
	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			appLog.Error("Listen failed", "error", err)
			os.Exit(1)
		}
	}()

	// Graceful Shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	appLog.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		appLog.Error("Server forced to shutdown", "error", err)
	}

	appLog.Info("Server exiting")
}
