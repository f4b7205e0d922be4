package main

import (
	"log"

	"github.com/gin-gonic/gin"
	"github.com/sangkips/billing-api/internal/application/service"
	"github.com/sangkips/billing-api/internal/config"
	"github.com/sangkips/billing-api/internal/infrastructure/database"
	"github.com/sangkips/billing-api/internal/infrastructure/repository"
	"github.com/sangkips/billing-api/internal/presentation/http/handler"
	"github.com/sangkips/billing-api/internal/presentation/http/routes"
	"github.com/sangkips/billing-api/pkg/printer"
	"github.com/sangkips/billing-api/pkg/utils"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Set Gin mode based on environment
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Connect to database
	db, err := database.New(&cfg.Database)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	// Run auto-migrations
	if err := database.AutoMigrate(db); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	// Seed the default price list
	if err := database.SeedMenu(db); err != nil {
		log.Printf("Warning: Failed to seed menu: %v", err)
	}

	// Initialize JWT manager
	jwtManager := utils.NewJWTManager(
		cfg.JWT.Secret,
		cfg.JWT.ExpiryHours,
		cfg.JWT.RefreshExpiryHours,
	)

	// Initialize repositories
	menuRepo := repository.NewMenuRepository(db)
	orderRepo := repository.NewOrderRepository(db)
	analyticsRepo := repository.NewAnalyticsRepository(db)
	idempotencyRepo := repository.NewIdempotencyRepository(db)

	// Initialize thermal printer
	thermalPrinter, err := printer.NewFromConfig(
		cfg.Printer.Type,
		cfg.Printer.USBPath,
		cfg.Printer.Address,
	)
	if err != nil {
		log.Printf("Warning: Failed to initialize printer: %v", err)
		thermalPrinter = printer.NewNopPrinter()
	}

	// Initialize services
	authService := service.NewAuthService(jwtManager, cfg.Operator)
	menuService := service.NewMenuService(menuRepo)
	ledgerService := service.NewLedgerService(menuRepo, cfg.Store.BillPrefix)
	orderService := service.NewOrderService(orderRepo, ledgerService)
	dashboardService := service.NewDashboardService(analyticsRepo)
	printerService := service.NewPrinterService(thermalPrinter, orderRepo, cfg.Store, cfg.Printer.Type, cfg.Printer.Width)

	// Initialize handlers
	handlers := &routes.Handlers{
		Auth:      handler.NewAuthHandler(authService),
		Menu:      handler.NewMenuHandler(menuService),
		Ledger:    handler.NewLedgerHandler(ledgerService),
		Order:     handler.NewOrderHandler(orderService),
		Dashboard: handler.NewDashboardHandler(dashboardService),
		Printer:   handler.NewPrinterHandler(printerService),
	}

	// Setup routes
	router := routes.Setup(handlers, &routes.Deps{
		JWTManager:      jwtManager,
		Cfg:             cfg,
		IdempotencyRepo: idempotencyRepo,
	})

	port := cfg.App.Port
	if port == "" {
		port = "8080"
	}

	log.Printf("Starting %s server on port %s...", cfg.App.Name, port)
	log.Printf("Environment: %s", cfg.App.Env)

	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
