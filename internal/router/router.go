package router

import (
	"github.com/gin-gonic/gin"

	"github.com/maximvlah/ntf/internal/config"
	"github.com/maximvlah/ntf/internal/handler"
	"github.com/maximvlah/ntf/internal/middleware"
)

// Setup configures the Gin engine with all routes and middleware.
func Setup(
	cfg *config.Config,
	batchH *handler.BatchHandler,
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

	// Health check
	r.GET("/healthz", healthH.Liveness)

	// Batch routes
	r.POST("/upload", batchH.Upload)
	r.GET("/export/excel/:id", batchH.Export)

	return r
}
