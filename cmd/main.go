package main

import (
	"fmt"
	"os"

	"github.com/sumitk238/shopping-cart/internal/app"
	"github.com/sumitk238/shopping-cart/internal/data/db"
	"github.com/sumitk238/shopping-cart/internal/data/repos"
	httpServer "github.com/sumitk238/shopping-cart/internal/http"
	httpH "github.com/sumitk238/shopping-cart/internal/http/handlers"
	httpMW "github.com/sumitk238/shopping-cart/internal/http/middleware"
	"github.com/sumitk238/shopping-cart/internal/pkg/logger"
	"github.com/sumitk238/shopping-cart/internal/services"
)

func main() {
	// Logger
	logMode := os.Getenv("LOG_MODE")
	if logMode == "" {
		logMode = "development"
	}
	log, err := logger.New(logMode)
	if err != nil {
		fmt.Printf("Failed to init logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	// Config
	cfg := app.LoadConfig(log)

	// Database
	gdb, err := db.Open(cfg, log)
	if err != nil {
		log.Fatal("Database init failed", "error", err)
	}
	if err := db.Seed(gdb, log); err != nil {
		log.Fatal("Database seed failed", "error", err)
	}

	// Repos
	log.Info("Setting up repos...")
	cartRepo := repos.NewCartRepo(gdb, log)
	productRepo := repos.NewProductRepo(gdb, log)
	userRepo := repos.NewUserRepo(gdb, log)

	// Services
	log.Info("Setting up services...")
	cartService := services.NewCartService(log, cartRepo, productRepo, cfg.ItemMaxAllowed)
	productService := services.NewProductService(log, productRepo)
	userService := services.NewUserService(log, userRepo)

	// Handlers
	cartHandler := httpH.NewCartHandler(log, cartService, userService, productService, cfg.ItemMaxAllowed)
	healthHandler := httpH.NewHealthHandler()
	authMiddleware := httpMW.NewAuthMiddleware(log, cfg.BasicAuthUser, cfg.BasicAuthPassword)

	// Server
	server := httpServer.NewServer(httpServer.RouterConfig{
		Log:            log,
		AuthMiddleware: authMiddleware,
		CartHandler:    cartHandler,
		HealthHandler:  healthHandler,
	})

	log.Info("Starting HTTP server", "addr", cfg.HTTPAddr)
	if err := server.Run(cfg.HTTPAddr); err != nil {
		log.Fatal("HTTP server exited", "error", err)
	}
}
