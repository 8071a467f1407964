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

	"motor-kita.backend/internal/config"
	domainrepos "motor-kita.backend/internal/domain/repositories"
	"motor-kita.backend/internal/infrastructure/gateways"
	"motor-kita.backend/internal/infrastructure/jobs"
	"motor-kita.backend/internal/infrastructure/repositories"
	"motor-kita.backend/internal/interfaces/http/handlers"
	"motor-kita.backend/internal/interfaces/http/middleware"
	"motor-kita.backend/internal/usecases"
	"motor-kita.backend/pkg/logger"
	"motor-kita.backend/pkg/metrics"
	"motor-kita.backend/pkg/redis"
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
	runServer       = func(r *gin.Engine, port string) error { return r.Run(":" + port) }
	getStdDB        = func(db *gorm.DB) (*sql.DB, error) { return db.DB() }
)

func main() {
	if err := runMainProcess(); err != nil {
		log.Fatal(err)
	}
}

func runMainProcess() error {
	// Load .env file
	if err := loadDotenv(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	// Load configuration
	cfg := loadCfg()

	// Initialize Logger
	initLog(cfg.Server.Env)
	logger.Info(context.Background(), "Logger initialized", zap.String("env", cfg.Server.Env))

	// Initialize Redis
	if err := initRedis(cfg.Redis.URL, cfg.Redis.PASSWORD); err != nil {
		logger.Error(context.Background(), "Failed to initialize Redis", zap.Error(err))
		return fmt.Errorf("failed to initialize redis: %w", err)
	}
	logger.Info(context.Background(), "Redis initialized")

	// Set Gin mode
	if cfg.Server.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Connect to database using GORM
	dsn := cfg.Database.URL()
	db, err := openDB(dsn)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := getStdDB(db)
	if err != nil {
		return fmt.Errorf("failed to get generic database object: %w", err)
	}
	defer sqlDB.Close()

	if err := sqlDB.Ping(); err != nil {
		log.Printf("⚠️ Database not available: %v (endpoints will return errors)", err)
	} else {
		log.Println("✅ Connected to PostgreSQL via GORM")
		if err := repositories.Migrate(db); err != nil {
			log.Printf("⚠️ Database migration failed: %v (endpoints will return errors)", err)
		} else if cfg.Processor.SeedDemo {
			if err := repositories.SeedDemoData(context.Background(), db); err != nil {
				return fmt.Errorf("failed to seed demo data: %w", err)
			}
			log.Println("🌱 Demo vehicle records and catalog seeded")
		}
	}

	// Initialize Session Store
	sessionStore, err := newSessionStore(cfg.Session.EncryptionKey)
	if err != nil {
		return fmt.Errorf("failed to initialize session store: %w", err)
	}

	// Initialize repositories
	sessionRepo := repositories.NewSessionRepository(sessionStore, cfg.Session.TTL)
	vehicleRepo := repositories.NewVehicleRecordRepository(db)
	catalogRepo := repositories.NewCachedCatalogRepository(repositories.NewCatalogRepository(db))

	// Initialize downstream processor gateway
	var processor domainrepos.SubmissionGateway
	if cfg.Processor.DemoMode {
		processor = gateways.NewProcessorStub()
	} else {
		processor = gateways.NewProcessorClient(cfg.Processor.BaseURL, cfg.Processor.Timeout)
	}

	// Initialize metrics
	m := metrics.New()

	// Initialize usecases
	onboardingUsecase := usecases.NewOnboardingUsecase(sessionRepo)
	lookupUsecase := usecases.NewLookupUsecase(sessionRepo, vehicleRepo, m)
	submissionUsecase := usecases.NewSubmissionUsecase(sessionRepo, processor, m)

	// Initialize handlers
	onboardingHandler := handlers.NewOnboardingHandler(onboardingUsecase, lookupUsecase, submissionUsecase)
	catalogHandler := handlers.NewCatalogHandler(catalogRepo)

	// Start background jobs
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	warmJob := jobs.NewCatalogWarmJob(catalogRepo)
	go warmJob.Start(ctx)

	// Initialize router
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestIDMiddleware())
	r.Use(middleware.LoggerMiddleware())

	applyCORSMiddleware(r)
	registerHealthRoute(r)
	registerMetricsRoute(r)
	registerAPIV1Routes(r, routeDeps{
		onboardingHandler: onboardingHandler,
		catalogHandler:    catalogHandler,
		submitLock:        middleware.SubmitLockMiddleware(),
	})

	// Print all registered routes for debugging
	log.Println("📋 Registered Routes:")
	for _, route := range r.Routes() {
		log.Printf("   %s %s", route.Method, route.Path)
	}

	// Graceful shutdown
	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		<-quit
		log.Println("🛑 Shutting down server...")
		warmJob.Stop()
		cancel()
	}()

	// Start server
	log.Printf("🚀 Motor-Kita Backend starting on port %s", cfg.Server.Port)
	log.Printf("📚 API: http://localhost:%s/api/v1", cfg.Server.Port)
	log.Printf("❤️ Health: http://localhost:%s/health", cfg.Server.Port)

	if err := runServer(r, cfg.Server.Port); err != nil {
		return fmt.Errorf("failed to start server: %w", err)
	}
	return nil
}
