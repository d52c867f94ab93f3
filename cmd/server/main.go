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

	"scheme-sense.backend/internal/config"
	"scheme-sense.backend/internal/infrastructure/advisory"
	"scheme-sense.backend/internal/infrastructure/jobs"
	"scheme-sense.backend/internal/infrastructure/models"
	"scheme-sense.backend/internal/infrastructure/repositories"
	"scheme-sense.backend/internal/interfaces/http/handlers"
	"scheme-sense.backend/internal/interfaces/http/middleware"
	"scheme-sense.backend/internal/usecases"
	"scheme-sense.backend/pkg/jwt"
	"scheme-sense.backend/pkg/logger"
	"scheme-sense.backend/pkg/redis"
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
	newAdvisoryClient = func(ctx context.Context, apiKey, model string) (usecases.AdvisoryClient, error) {
		return advisory.NewGeminiClient(ctx, apiKey, model)
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
		if err := db.AutoMigrate(&models.User{}, &models.Scheme{}, &models.Application{}); err != nil {
			return fmt.Errorf("failed to migrate database: %w", err)
		}
	}

	// Initialize JWT service
	jwtService := jwt.NewJWTService(
		cfg.JWT.Secret,
		cfg.JWT.AccessExpiry,
		cfg.JWT.RefreshExpiry,
	)

	// Initialize repositories
	userRepo := repositories.NewUserRepository(db)
	schemeRepo := repositories.NewSchemeRepository(db)
	applicationRepo := repositories.NewApplicationRepository(db)

	// Initialize advisory client
	advisoryClient, err := newAdvisoryClient(context.Background(), cfg.Advisory.APIKey, cfg.Advisory.Model)
	if err != nil {
		return fmt.Errorf("failed to initialize advisory client: %w", err)
	}

	// Initialize usecases
	matchCache := redis.NewMatchCache(cfg.Catalog.MatchCacheTTL)
	authUsecase := usecases.NewAuthUsecase(userRepo, jwtService, matchCache)
	catalogUsecase := usecases.NewCatalogUsecase(schemeRepo, userRepo, matchCache, cfg.Catalog.Seed, cfg.Catalog.GeneratedCount)
	applicationUsecase := usecases.NewApplicationUsecase(applicationRepo, schemeRepo)
	advisoryUsecase := usecases.NewAdvisoryUsecase(advisoryClient, cfg.Advisory.SessionTTL)

	// Seed the scheme catalog (no-op when already populated)
	if err := catalogUsecase.Seed(context.Background()); err != nil {
		log.Printf("⚠️ Catalog seeding failed: %v (scheme endpoints may be empty)", err)
	}

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(authUsecase)
	schemeHandler := handlers.NewSchemeHandler(catalogUsecase)
	applicationHandler := handlers.NewApplicationHandler(applicationUsecase)
	advisoryHandler := handlers.NewAdvisoryHandler(advisoryUsecase, authUsecase, catalogUsecase)

	// Create auth middleware
	authMiddleware := middleware.AuthMiddleware(jwtService)
	adminMiddleware := middleware.AdminMiddleware(cfg.Server.AdminToken)

	// Start background jobs
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	janitor := jobs.NewAdvisorySessionJanitor(advisoryUsecase)
	go janitor.Start(ctx)

	// Initialize router
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestIDMiddleware())
	r.Use(middleware.LoggerMiddleware())

	applyCORSMiddleware(r)
	registerHealthRoute(r)
	registerMetricsRoute(r)
	registerAPIV1Routes(r, routeDeps{
		authHandler:        authHandler,
		schemeHandler:      schemeHandler,
		applicationHandler: applicationHandler,
		advisoryHandler:    advisoryHandler,
		authMiddleware:     authMiddleware,
		adminMiddleware:    adminMiddleware,
	})

	// Graceful shutdown
	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		<-quit
		log.Println("🛑 Shutting down server...")
		janitor.Stop()
		cancel()
	}()

	// Start server
	log.Printf("🚀 SchemeSense Backend starting on port %s", cfg.Server.Port)
	log.Printf("📚 API: http://localhost:%s/api/v1", cfg.Server.Port)
	log.Printf("❤️ Health: http://localhost:%s/health", cfg.Server.Port)

	if err := runServer(r, cfg.Server.Port); err != nil {
		return fmt.Errorf("failed to start server: %w", err)
	}
	return nil
}
