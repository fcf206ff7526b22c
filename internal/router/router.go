package router

import (
	"github.com/gin-gonic/gin"

	"facturo/internal/config"
	"facturo/internal/handler"
	"facturo/internal/middleware"
)

// Setup configures the Gin engine with all routes and middleware.
func Setup(
	cfg *config.Config,
	sessionH *handler.SessionHandler,
	documentH *handler.DocumentHandler,
	recordH *handler.RecordHandler,
	catalogH *handler.CatalogHandler,
	healthH *handler.HealthHandler,
) *gin.Engine {
	if cfg.Server.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()

	// Global middleware
	r.Use(middleware.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.CORS(cfg.CORS.AllowedOrigins))

	// Health checks
	r.GET("/healthz", healthH.Liveness)
	r.GET("/readyz", healthH.Readiness)

	v1 := r.Group("/api/v1")

	// Chat sessions and messages
	sessions := v1.Group("/sessions")
	sessions.POST("", sessionH.Create)
	sessions.GET("", sessionH.List)
	sessions.GET("/:id", sessionH.GetByID)
	sessions.DELETE("/:id", sessionH.Delete)
	sessions.POST("/:id/messages", sessionH.SendMessage)
	sessions.POST("/:id/files", documentH.Upload)

	// Uploaded attachments
	v1.GET("/attachments/:id", documentH.Download)

	// Extracted records and exports
	records := v1.Group("/records")
	records.GET("/:id", recordH.GetByID)
	records.GET("/:id/export", recordH.Export)

	// Product catalog
	cat := v1.Group("/catalog")
	cat.POST("/match", catalogH.Match)
	cat.GET("/brands", catalogH.ListBrands)
	cat.POST("/brands", catalogH.AddBrand)

	return r
}
