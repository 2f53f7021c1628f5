package api

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/vendora/importd/api/handler"
	"github.com/vendora/importd/api/middleware"
	"github.com/vendora/importd/config"
	"github.com/vendora/importd/extractor"
)

// NewRouter creates a configured Gin engine with all routes and middleware.
//
// Middleware chain:
//
//	Global:  Recovery → Logger → CORS
//	Import:  RateLimit
//
// Health endpoint is intentionally outside rate limiting so monitoring
// probes always work.
func NewRouter(f handler.PageFetcher, ex *extractor.Extractor, en handler.Enricher, cfg *config.Config, startTime time.Time) *gin.Engine {
	gin.SetMode(cfg.Server.Mode)

	r := gin.New()
	r.Use(gin.CustomRecovery(handler.Recovered))
	r.Use(gin.Logger())
	r.Use(middleware.CORS())

	v1 := r.Group("/api/v1")

	v1.GET("/health", handler.Health(startTime))

	limited := v1.Group("")
	limited.Use(middleware.RateLimit(cfg.RateLimit))
	limited.POST("/import", handler.Import(f, ex, en))

	return r
}
