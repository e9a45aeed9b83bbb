package main

import (
	"context"
	"errors"
	"go-jobboard-backend/config"
	_ "go-jobboard-backend/docs"
	"go-jobboard-backend/internal/delivery/http/middleware"
	v1 "go-jobboard-backend/internal/delivery/http/v1"
	"go-jobboard-backend/internal/usecase"
	"go-jobboard-backend/pkg/auth"
	"go-jobboard-backend/pkg/email"
	"go-jobboard-backend/pkg/logger"
	redisclient "go-jobboard-backend/pkg/redis"
	"go-jobboard-backend/pkg/security"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	goredis "github.com/redis/go-redis/v9"
	"golang.org/x/sync/errgroup"
)

// @title           Job Board API
// @version         1.0
// @description     Job seekers browse and apply to postings; employers publish postings and manage applicants.
// @host            localhost:5000
// @BasePath        /api
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger.Init(cfg.LogLevel)
	if err := run(cfg); err != nil {
		logger.Log.Error("Server stopped with error", "error", err)
		os.Exit(1)
	}
	logger.Log.Info("Server exiting")
}

func run(cfg *config.Config) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	logger.Log.Info("Starting job board backend", "port", cfg.Port, "store", cfg.StoreDriver, "env", cfg.Environment)

	st, err := openStore(ctx, cfg)
	if err != nil {
		return err
	}
	defer st.close()

	// Redis is optional; without it rate limiting is per process and the
	// login guard fails open.
	var rdb goredis.UniversalClient
	if cfg.UpstashRedisURL != "" {
		client, err := redisclient.New(ctx, redisclient.Config{URL: cfg.UpstashRedisURL, Password: cfg.UpstashRedisPassword})
		if err != nil {
			logger.Log.Warn("Redis unavailable, using in-memory fallbacks", "error", err)
		} else {
			rdb = client
			defer client.Close()
		}
	}

	secLog := security.NewSecurityLogger("jobboard-api", cfg.Environment)
	defer func() { _ = secLog.Sync() }()

	loginTracker := security.NewLoginTracker(rdb, security.LoginTrackerConfig{
		MaxAttempts:   cfg.FailedLoginMaxAttempts,
		AttemptWindow: time.Duration(cfg.FailedLoginBlockMinutes) * time.Minute,
		BlockDuration: time.Duration(cfg.FailedLoginBlockMinutes) * time.Minute,
		UseIPTracking: true,
	}, secLog)

	emailService := email.NewEmailService(cfg)
	if !emailService.IsConfigured() {
		logger.Log.Warn("Email service not configured - password reset links will not be delivered")
	}

	tokens := auth.NewTokenManager(cfg.JWTSecret, cfg.JWTExpiresIn)

	authUC := usecase.NewAuthUsecase(st.users, tokens, emailService, loginTracker, cfg.FrontendURL)
	jobUC := usecase.NewJobUsecase(st.jobs)
	applicationUC := usecase.NewApplicationUsecase(st.applications, st.jobs, st.users)
	userUC := usecase.NewUserUsecase(st.users)

	checks := map[string]usecase.Pinger{}
	if st.ping != nil {
		checks["database"] = st.ping
	}
	if rdb != nil {
		checks["redis"] = func(ctx context.Context) error { return redisclient.HealthCheck(ctx, rdb) }
	}
	healthUC := usecase.NewHealthUsecase(checks)

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	router := v1.NewRouter(v1.RouterDeps{
		AuthUC:         authUC,
		JobUC:          jobUC,
		ApplicationUC:  applicationUC,
		UserUC:         userUC,
		HealthUC:       healthUC,
		Tokens:         tokens,
		RateLimiter:    middleware.NewRateLimiter(rdb, secLog),
		SecurityLogger: secLog,
		Config:         cfg,
	})

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Log.Info("HTTP server listening", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		logger.Log.Info("Shutting down server...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	return g.Wait()
}
