package main

import (
	"log"
	"net/http"
	"os"

	_ "userhub/docs" // swagger docs

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"userhub/internal/auth"
	"userhub/internal/cache"
	"userhub/internal/config"
	"userhub/internal/db"
	"userhub/internal/handler"
	"userhub/internal/mail"
	"userhub/internal/model"
	"userhub/internal/repository"
	"userhub/internal/router"
	"userhub/internal/service"
)

// @title User Service API
// @version 1.0
// @description User CRUD with JWT authentication and transactional email.
// @host localhost:5000
// @BasePath /api
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
func main() {
	cfg := config.Load()

	e := echo.New()
	e.Use(middleware.RequestID())

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("database init: %v", err)
	}

	// Drop tables if RESET_DB environment variable is set
	if os.Getenv("RESET_DB") == "true" {
		log.Println("RESET_DB=true detected, dropping all tables...")
		if err := gormDB.Migrator().DropTable(&model.User{}); err != nil {
			log.Printf("Warning: Failed to drop table (may not exist): %v", err)
		}
		log.Println("Tables dropped")
	}

	if err := gormDB.AutoMigrate(&model.User{}); err != nil {
		log.Fatalf("auto-migrate: %v", err)
	}

	cacheClient := cache.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)

	mailer, err := mail.NewSMTPMailer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUsername, cfg.SMTPPassword, cfg.MailFrom)
	if err != nil {
		log.Fatalf("mailer init: %v", err)
	}

	// Initialize repositories and auth components
	userRepo := repository.NewUserRepository(gormDB)
	hasher := auth.NewPasswordHasher()
	jwtService := auth.NewJWTService(cfg.JWTSecret)

	// Initialize services
	userService := service.NewUserService(userRepo, hasher, cacheClient)
	authService := service.NewAuthService(userRepo, hasher, jwtService, cacheClient)
	emailService := service.NewEmailService(mailer)

	// Initialize handlers
	userHandler := handler.NewUserHandler(userService)
	authHandler := handler.NewAuthHandler(authService)
	emailHandler := handler.NewEmailHandler(emailService)

	// Register routes
	router.Register(e, cfg, userHandler, authHandler, emailHandler)

	addr := ":" + cfg.ServerPort
	if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
		log.Fatalf("server start: %v", err)
	}
}
