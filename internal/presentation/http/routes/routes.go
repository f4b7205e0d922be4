package routes

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sangkips/billing-api/internal/config"
	domainRepo "github.com/sangkips/billing-api/internal/domain/repository"
	"github.com/sangkips/billing-api/internal/presentation/http/handler"
	"github.com/sangkips/billing-api/internal/presentation/http/middleware"
	"github.com/sangkips/billing-api/pkg/utils"
)

// Handlers holds all the HTTP handlers used for route registration.
type Handlers struct {
	Auth      *handler.AuthHandler
	Menu      *handler.MenuHandler
	Ledger    *handler.LedgerHandler
	Order     *handler.OrderHandler
	Dashboard *handler.DashboardHandler
	Printer   *handler.PrinterHandler
}

// Deps holds shared dependencies needed by the routes.
type Deps struct {
	JWTManager      *utils.JWTManager
	Cfg             *config.Config
	IdempotencyRepo domainRepo.IdempotencyRepository
}

// Setup creates the Gin router and registers all routes.
func Setup(h *Handlers, deps *Deps) *gin.Engine {
	router := gin.New()

	// Global middleware
	router.Use(gin.Recovery())
	router.Use(middleware.LoggerMiddleware())
	router.Use(middleware.CORSMiddleware(&deps.Cfg.CORS))

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"service": deps.Cfg.App.Name,
		})
	})

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		// Public routes (no authentication required)
		registerAuthRoutes(v1, h)

		// Protected routes (authentication required)
		protected := v1.Group("")
		protected.Use(middleware.AuthMiddleware(deps.JWTManager))

		// Per-client rate limiter
		rateLimiter := middleware.NewClientRateLimiter(middleware.RateLimiterConfig{
			RequestsPerSecond: float64(deps.Cfg.RateLimit.Requests) / float64(deps.Cfg.RateLimit.Duration),
			BurstSize:         deps.Cfg.RateLimit.Requests,
			CleanupInterval:   5 * time.Minute,
			EntryTTL:          10 * time.Minute,
		})
		protected.Use(rateLimiter.Middleware())

		registerProtectedRoutes(protected, h, deps)
	}

	return router
}

func registerAuthRoutes(v1 *gin.RouterGroup, h *Handlers) {
	auth := v1.Group("/auth")
	{
		auth.POST("/login", h.Auth.Login)
		auth.POST("/refresh", h.Auth.RefreshToken)
	}
}

func registerProtectedRoutes(protected *gin.RouterGroup, h *Handlers, deps *Deps) {
	protected.POST("/auth/logout", h.Auth.Logout)

	// Menu (price list)
	menu := protected.Group("/menu")
	{
		menu.GET("", h.Menu.List)
		menu.POST("", h.Menu.Create)
		menu.GET("/quote", h.Menu.Quote)
		menu.PUT("/:id", h.Menu.Update)
		menu.DELETE("/:id", h.Menu.Delete)
	}

	// Ledger (the bill currently being built)
	ledgerGroup := protected.Group("/ledger")
	{
		ledgerGroup.GET("", h.Ledger.Get)
		ledgerGroup.POST("/lines", h.Ledger.AddLine)
		ledgerGroup.PUT("/lines/:id", h.Ledger.UpdateLine)
		ledgerGroup.DELETE("/lines", h.Ledger.RemoveLines)
		ledgerGroup.POST("/clear", h.Ledger.Clear)
	}

	// Orders (append-only sales store)
	orders := protected.Group("/orders")
	{
		orders.GET("", h.Order.List)
		// Commit replays the stored response on a repeated Idempotency-Key
		orders.POST("", middleware.Idempotency(middleware.IdempotencyConfig{
			Repo: deps.IdempotencyRepo,
		}), h.Order.Commit)
		orders.GET("/:bill_number", h.Order.Get)
		orders.POST("/:bill_number/print", h.Printer.PrintBill)
	}

	// Dashboard
	dashboard := protected.Group("/dashboard")
	{
		dashboard.GET("", h.Dashboard.GetStats)
		dashboard.GET("/sales-by-item", h.Dashboard.SalesByItem)
		dashboard.GET("/daily-sales", h.Dashboard.DailySales)
	}

	// Printer
	printerGroup := protected.Group("/printer")
	{
		printerGroup.GET("/status", h.Printer.GetStatus)
		printerGroup.POST("/test", h.Printer.TestPrint)
	}
}
