package api

import (
	"github.com/gin-gonic/gin"

	"github.com/primeestate/primeestate/internal/api/admin"
	"github.com/primeestate/primeestate/internal/api/catalog"
	"github.com/primeestate/primeestate/internal/api/chat"
	"github.com/primeestate/primeestate/internal/api/middleware"
	"github.com/primeestate/primeestate/internal/api/widget"
	"github.com/primeestate/primeestate/internal/service"
)

// RouterConfig holds configuration for the router
type RouterConfig struct {
	APIKey       string
	AllowOrigins []string
}

// SetupRouter sets up the Gin router
func SetupRouter(
	catalogService *service.CatalogService,
	leadService *service.LeadService,
	widgetService *service.WidgetService,
	adminService *service.AdminService,
	cfg RouterConfig,
) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())

	// CORS middleware
	r.Use(middleware.CORS(cfg.AllowOrigins))

	// Health check
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	apiGroup := r.Group("/api")

	// Catalog API (public)
	catalogHandler := catalog.NewHandler(catalogService)
	catalogHandler.RegisterRoutes(apiGroup)

	// Chat user / lead API (public, used by the widget frontend)
	chatHandler := chat.NewHandler(leadService)
	chatHandler.RegisterRoutes(apiGroup)

	// Widget session API (public)
	widgetHandler := widget.NewHandler(widgetService)
	widgetHandler.RegisterRoutes(apiGroup.Group("/widget"))

	// Admin API (requires API key)
	adminHandler := admin.NewHandler(adminService)
	adminGroup := apiGroup.Group("/admin")
	adminGroup.Use(middleware.Auth(cfg.APIKey))
	adminHandler.RegisterRoutes(adminGroup)

	return r
}
