package main

import (
	"context"
	"log"
	"net/http"
	"os"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"

	_ "rfqdesk/docs" // swagger docs

	"rfqdesk/internal/auth"
	"rfqdesk/internal/cache"
	"rfqdesk/internal/config"
	"rfqdesk/internal/db"
	"rfqdesk/internal/handler"
	"rfqdesk/internal/model"
	"rfqdesk/internal/repository"
	"rfqdesk/internal/router"
	"rfqdesk/internal/service"
	"rfqdesk/internal/upload"
)

// @title RFQ Desk API
// @version 1.0
// @description Business-operations API: RFQ submission and review, role-based accounts, JWT authentication.
// @host localhost:8080
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
func main() {
	// .env is optional; real deployments configure through the environment.
	_ = godotenv.Load()

	cfg := config.Load()

	if cfg.AccessID == "" {
		log.Println("Warning: ACCESS_ID is not set; admin and employee sign-in will be refused")
	}

	e := echo.New()
	e.Use(echomw.RequestID())

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("database init: %v", err)
	}

	// Drop tables if RESET_DB environment variable is set
	if os.Getenv("RESET_DB") == "true" {
		log.Println("RESET_DB=true detected, dropping all tables...")
		tables := []interface{}{
			&model.Activity{},
			&model.RFQ{},
			&model.User{},
		}
		for _, table := range tables {
			if err := gormDB.Migrator().DropTable(table); err != nil {
				log.Printf("Warning: Failed to drop table (may not exist): %v", err)
			}
		}
		log.Println("Tables dropped")
	}

	// Run migrations for all models
	if err := gormDB.AutoMigrate(
		&model.User{},
		&model.RFQ{},
		&model.Activity{},
	); err != nil {
		log.Fatalf("auto-migrate: %v", err)
	}

	cacheClient := cache.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)
	if err := cacheClient.Ping(context.Background()); err != nil {
		log.Printf("Warning: redis unreachable, caching and sign-out revocation degraded: %v", err)
	}

	uploadStore, err := upload.NewStore(cfg.UploadDir)
	if err != nil {
		log.Fatalf("upload store init: %v", err)
	}

	// Initialize repositories
	userRepo := repository.NewUserRepository(gormDB)
	rfqRepo := repository.NewRFQRepository(gormDB)
	activityRepo := repository.NewActivityRepository(gormDB)

	// Initialize auth components
	jwtService := auth.NewJWTService(cfg.JWTSecret)
	tokenStore := auth.NewTokenStore(cacheClient)

	// Initialize services
	authService := service.NewAuthService(userRepo, jwtService, tokenStore, cfg.AccessID)
	userService := service.NewUserService(userRepo, cacheClient)
	rfqService := service.NewRFQService(rfqRepo, activityRepo)
	activityService := service.NewActivityService(activityRepo)

	// Initialize handlers
	authHandler := handler.NewAuthHandler(authService)
	userHandler := handler.NewUserHandler(userService, uploadStore)
	rfqHandler := handler.NewRFQHandler(rfqService, jwtService)
	activityHandler := handler.NewActivityHandler(activityService)

	// Register routes
	router.Register(
		e,
		cfg,
		tokenStore,
		authHandler,
		userHandler,
		rfqHandler,
		activityHandler,
	)

	addr := ":" + cfg.ServerPort
	if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
		log.Fatalf("server start: %v", err)
	}
}
