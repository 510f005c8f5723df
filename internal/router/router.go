package router

import (
	"github.com/gin-gonic/gin"

	"paxscan/internal/config"
	"paxscan/internal/handler"
	"paxscan/internal/middleware"
)

// Setup configures the Gin engine with all routes and middleware.
func Setup(
	cfg *config.Config,
	extractH *handler.ExtractHandler,
	statsH *handler.StatsHandler,
	healthH *handler.HealthHandler,
) *gin.Engine {
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

	// Extraction routes
	extract := v1.Group("/extract")
	extract.POST("", extractH.Extract)
	extract.POST("/s3", extractH.ExtractFromStorage)

	// Usage statistics routes
	stats := v1.Group("/stats")
	stats.GET("", statsH.GetStats)
	stats.GET("/report", statsH.GetStatsReport)

	return r
}
