package main

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"founder-net.backend/internal/config"
	"founder-net.backend/internal/infrastructure/jobs"
	"founder-net.backend/internal/infrastructure/repositories"
	"founder-net.backend/internal/interfaces/http/handlers"
	"founder-net.backend/internal/interfaces/http/middleware"
	"founder-net.backend/internal/usecases"
	"founder-net.backend/pkg/jwt"
	"founder-net.backend/pkg/logger"
	"founder-net.backend/pkg/redis"
)

var (
	loadDotenv = godotenv.Load
	loadCfg    = config.Load
	initLog    = logger.Init
	initRedis  = redis.Init
	openDB     = func(dsn string) (*gorm.DB, error) {
		return gorm.Open(postgres.New(postgres.Config{
			DSN:                  dsn,
			PreferSimpleProtocol: true,
		}), &gorm.Config{
			PrepareStmt: false,
		})
	}
	newSessionStore = redis.NewSessionStore
	getStdDB        = func(db *gorm.DB) (*sql.DB, error) { return db.DB() }
	runServer       = func(ctx context.Context, r *gin.Engine, port string) error {
		srv := &http.Server{Addr: ":" + port, Handler: r}

		errCh := make(chan error, 1)
		go func() { errCh <- srv.ListenAndServe() }()

		select {
		case err := <-errCh:
			return err
		case <-ctx.Done():
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			return srv.Shutdown(shutdownCtx)
		}
	}
)

func main() {
	if err := runMainProcess(); err != nil {
		log.Fatal(err)
	}
}

func runMainProcess() error {
	if err := loadDotenv(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg := loadCfg()

	initLog(cfg.Server.Env)
	logger.Info(context.Background(), "logger initialized", zap.String("env", cfg.Server.Env))

	if err := initRedis(cfg.Redis.URL, cfg.Redis.Password); err != nil {
		logger.Error(context.Background(), "failed to initialize redis", zap.Error(err))
		return fmt.Errorf("failed to initialize redis: %w", err)
	}
	defer func() { _ = redis.Close() }()

	if cfg.Server.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	db, err := openDB(cfg.Database.URL())
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := getStdDB(db)
	if err != nil {
		return fmt.Errorf("failed to get generic database object: %w", err)
	}
	defer sqlDB.Close()

	if err := sqlDB.Ping(); err != nil {
		logger.Warn(context.Background(), "database not reachable, endpoints will return errors", zap.Error(err))
	}

	jwtService := jwt.NewJWTService(
		cfg.JWT.Secret,
		cfg.JWT.AccessExpiry,
		cfg.JWT.RefreshExpiry,
	)

	userRepo := repositories.NewUserRepository(db)
	followRepo := repositories.NewFollowRepository(db)
	startupRepo := repositories.NewStartupRepository(db)
	investorRepo := repositories.NewInvestorRepository(db)
	micropostRepo := repositories.NewMicroPostRepository(db)
	commentRepo := repositories.NewCommentRepository(db)
	uow := repositories.NewUnitOfWork(db)

	sessionStore, err := newSessionStore(cfg.Security.SessionEncryptionKey)
	if err != nil {
		return fmt.Errorf("failed to initialize session store: %w", err)
	}

	authUsecase := usecases.NewAuthUsecase(userRepo, jwtService, sessionStore, cfg.Security.SessionTTL)
	userUsecase := usecases.NewUserUsecase(userRepo, startupRepo, investorRepo, followRepo, micropostRepo)
	socialUsecase := usecases.NewSocialUsecase(followRepo, userRepo, startupRepo)
	feedUsecase := usecases.NewFeedUsecase(micropostRepo)
	micropostUsecase := usecases.NewMicroPostUsecase(micropostRepo, userRepo)
	startupUsecase := usecases.NewStartupUsecase(startupRepo, userRepo, uow)
	investorUsecase := usecases.NewInvestorUsecase(investorRepo, userRepo)
	commentUsecase := usecases.NewCommentUsecase(commentRepo, startupRepo, micropostRepo)

	authHandler := handlers.NewAuthHandler(authUsecase, userUsecase)
	userHandler := handlers.NewUserHandler(userUsecase)
	startupHandler := handlers.NewStartupHandler(startupUsecase)
	investorHandler := handlers.NewInvestorHandler(investorUsecase)
	followHandler := handlers.NewFollowHandler(socialUsecase)
	micropostHandler := handlers.NewMicroPostHandler(micropostUsecase, feedUsecase)
	commentHandler := handlers.NewCommentHandler(commentUsecase)
	adminHandler := handlers.NewAdminHandler(userUsecase)

	authMiddleware := middleware.AuthMiddleware(jwtService, sessionStore)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	statsJob := jobs.NewActivityStatsJob(micropostRepo, followRepo)
	go statsJob.Start(ctx)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestIDMiddleware())
	r.Use(middleware.LoggerMiddleware())
	r.Use(middleware.MetricsMiddleware())

	applyCORSMiddleware(r)
	registerHealthRoute(r)
	registerMetricsRoute(r)
	registerAPIV1Routes(r, routeDeps{
		authHandler:      authHandler,
		userHandler:      userHandler,
		startupHandler:   startupHandler,
		investorHandler:  investorHandler,
		followHandler:    followHandler,
		micropostHandler: micropostHandler,
		commentHandler:   commentHandler,
		adminHandler:     adminHandler,
		authMiddleware:   authMiddleware,
	})

	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		<-quit
		logger.Info(context.Background(), "shutting down server")
		statsJob.Stop()
		cancel()
	}()

	logger.Info(context.Background(), "server starting",
		zap.String("port", cfg.Server.Port),
		zap.String("env", cfg.Server.Env),
	)

	if err := runServer(ctx, r, cfg.Server.Port); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("failed to start server: %w", err)
	}
	return nil
}
