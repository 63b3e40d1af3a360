package main

import (
	"context"
	"log"

	"github.com/gin-gonic/gin"
	"github.com/hallmarkbd/hallmark-api/internal/application/service"
	"github.com/hallmarkbd/hallmark-api/internal/config"
	"github.com/hallmarkbd/hallmark-api/internal/infrastructure/database"
	"github.com/hallmarkbd/hallmark-api/internal/infrastructure/repository"
	"github.com/hallmarkbd/hallmark-api/internal/presentation/http/handler"
	"github.com/hallmarkbd/hallmark-api/internal/presentation/http/routes"
	"github.com/hallmarkbd/hallmark-api/pkg/upload"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Set Gin mode based on environment
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Connect to database
	db, err := database.NewPostgresDB(&cfg.Database)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	// Run auto-migrations
	if err := database.AutoMigrate(db); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	// Initialize repositories
	customerRepo := repository.NewCustomerRepository(db)
	orderRepo := repository.NewOrderRepository(db)
	itemRepo := repository.NewItemNameRepository(db)

	// Initialize services
	customerService := service.NewCustomerService(customerRepo)
	orderService := service.NewOrderService(orderRepo)
	itemService := service.NewItemService(itemRepo)
	dashboardService := service.NewDashboardService(orderRepo, customerRepo)

	// Seed the default item catalog
	if err := itemService.EnsureDefaults(context.Background()); err != nil {
		log.Printf("Warning: Failed to seed default item names: %v", err)
	} else {
		log.Println("Default item names are synced")
	}

	// Initialize the image upload saver
	saver, err := upload.NewSaver(cfg.Storage.UploadDir, cfg.Storage.UploadMaxSize)
	if err != nil {
		log.Fatalf("Failed to initialize upload directory: %v", err)
	}

	// Initialize handlers
	handlers := &routes.Handlers{
		Customer:  handler.NewCustomerHandler(customerService, saver),
		Order:     handler.NewOrderHandler(orderService, saver),
		Item:      handler.NewItemHandler(itemService),
		Dashboard: handler.NewDashboardHandler(dashboardService),
	}

	// Setup routes
	router := routes.Setup(handlers, &routes.Deps{Cfg: cfg})

	port := cfg.App.Port
	if port == "" {
		port = "5000"
	}

	log.Printf("Starting %s server on port %s...", cfg.App.Name, port)
	log.Printf("Environment: %s", cfg.App.Env)

	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
