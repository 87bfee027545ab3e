package main

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"campus-hub.backend/internal/config"
	"campus-hub.backend/internal/infrastructure/jobs"
	"campus-hub.backend/internal/infrastructure/repositories"
	"campus-hub.backend/internal/interfaces/http/handlers"
	"campus-hub.backend/internal/interfaces/http/middleware"
	"campus-hub.backend/internal/usecases"
	"campus-hub.backend/pkg/jwt"
	"campus-hub.backend/pkg/logger"
	"campus-hub.backend/pkg/redis"
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
		}), &gorm.Config{})
	}
	runServer = func(r *gin.Engine, port string) error { return r.Run(":" + port) }
	getStdDB  = func(db *gorm.DB) (*sql.DB, error) { return db.DB() }
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
	logger.Info(context.Background(), "Logger initialized", zap.String("env", cfg.Server.Env))

	// Redis only backs the roster cache; run without it if unreachable.
	if err := initRedis(cfg.Redis.URL, cfg.Redis.Password); err != nil {
		logger.Warn(context.Background(), "Redis unavailable, roster cache disabled", zap.Error(err))
	}

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
		logger.Warn(context.Background(), "Database not available, endpoints will return errors", zap.Error(err))
	} else {
		logger.Info(context.Background(), "Connected to PostgreSQL")
	}

	jwtService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiry)

	// Repositories
	eventRepo := repositories.NewEventRepository(db)
	teamRepo := repositories.NewTeamRepository(db)
	studentRepo := repositories.NewStudentRepository(db)
	collegeRepo := repositories.NewCollegeRepository(db)

	// Usecases
	registrationUsecase := usecases.NewRegistrationUsecase(eventRepo, teamRepo, cfg.Registration)
	rosterUsecase := usecases.NewRosterUsecase(eventRepo, teamRepo, studentRepo, collegeRepo, cfg.Registration.RosterCacheTTL)

	// Handlers
	eventHandler := handlers.NewEventHandler(eventRepo, registrationUsecase, rosterUsecase)
	teamHandler := handlers.NewTeamHandler(teamRepo, registrationUsecase)
	studentHandler := handlers.NewStudentHandler(studentRepo, collegeRepo)

	authMiddleware := middleware.AuthMiddleware(jwtService)

	// Background jobs
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	closeJob := jobs.NewEventCloseJob(eventRepo, cfg.Registration.CloseInterval)
	go closeJob.Start(ctx)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestIDMiddleware())
	r.Use(middleware.LoggerMiddleware())

	applyCORSMiddleware(r)
	registerHealthRoute(r)
	registerAPIV1Routes(r, routeDeps{
		eventHandler:   eventHandler,
		teamHandler:    teamHandler,
		studentHandler: studentHandler,
		authMiddleware: authMiddleware,
	})

	// Graceful shutdown
	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		<-quit
		logger.Info(context.Background(), "Shutting down server")
		closeJob.Stop()
		cancel()
	}()

	logger.Info(context.Background(), "Campus Hub backend starting",
		zap.String("port", cfg.Server.Port))

	if err := runServer(r, cfg.Server.Port); err != nil {
		return fmt.Errorf("failed to start server: %w", err)
	}
	return nil
}
