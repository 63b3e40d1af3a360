package routes

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/hallmarkbd/hallmark-api/internal/config"
	"github.com/hallmarkbd/hallmark-api/internal/presentation/http/handler"
	"github.com/hallmarkbd/hallmark-api/internal/presentation/http/middleware"
	"github.com/hallmarkbd/hallmark-api/pkg/upload"
)

// Handlers holds all the HTTP handlers used for route registration.
type Handlers struct {
	Customer  *handler.CustomerHandler
	Order     *handler.OrderHandler
	Item      *handler.ItemHandler
	Dashboard *handler.DashboardHandler
}

// Deps holds shared dependencies needed by the routes.
type Deps struct {
	Cfg *config.Config
}

// Setup creates the Gin router and registers all routes. The paths match
// what the React client already calls, so there is no version prefix.
func Setup(h *Handlers, deps *Deps) *gin.Engine {
	router := gin.New()

	// Global middleware
	router.Use(gin.Recovery())
	router.Use(middleware.LoggerMiddleware())
	router.Use(middleware.CORSMiddleware(&deps.Cfg.CORS))

	rateLimiter := middleware.NewClientRateLimiter(middleware.RateLimiterConfig{
		RequestsPerSecond: float64(deps.Cfg.RateLimit.Requests) / float64(deps.Cfg.RateLimit.Duration),
		BurstSize:         deps.Cfg.RateLimit.Requests,
		CleanupInterval:   5 * time.Minute,
		EntryTTL:          10 * time.Minute,
	})
	router.Use(rateLimiter.Middleware())

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"service": deps.Cfg.App.Name,
		})
	})

	// Uploaded images are served directly from disk
	router.Static(upload.PublicPrefix, deps.Cfg.Storage.UploadDir)

	registerCustomerRoutes(router, h)
	registerOrderRoutes(router, h)
	registerItemRoutes(router, h)

	router.GET("/dashboard", h.Dashboard.GetStats)

	return router
}

func registerCustomerRoutes(router *gin.Engine, h *Handlers) {
	users := router.Group("/users")
	{
		users.GET("", h.Customer.List)
		users.POST("/create", h.Customer.Create)
		users.PUT("/update/:id", h.Customer.Update)
		users.DELETE("/delete/:id", h.Customer.Delete)
		users.GET("/lastCustomerID", h.Customer.LastCustomerID)
	}
}

func registerOrderRoutes(router *gin.Engine, h *Handlers) {
	orders := router.Group("/orders")
	{
		orders.GET("", h.Order.List)
		orders.POST("", h.Order.Create)
		orders.GET("/:id", h.Order.Get)
		orders.DELETE("/:id", h.Order.Delete)
	}
}

func registerItemRoutes(router *gin.Engine, h *Handlers) {
	items := router.Group("/items")
	{
		items.GET("/:type", h.Item.ListByType)
		items.POST("", h.Item.Create)
	}
}
