// internal/server/router.go
package server

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/Navashanmugam888/engagement-scoping-tool/internal/common/database"
	"github.com/Navashanmugam888/engagement-scoping-tool/internal/common/logger"
	"github.com/Navashanmugam888/engagement-scoping-tool/internal/engine"
	"github.com/Navashanmugam888/engagement-scoping-tool/internal/reportcache"
	"github.com/Navashanmugam888/engagement-scoping-tool/internal/store"
)

// RouterConfig carries everything the HTTP layer depends on.
type RouterConfig struct {
	Service        *engine.Service
	Configs        *store.ConfigStore
	ReportCache    *reportcache.Cache
	Postgres       *database.PostgresClient
	Redis          *database.RedisClient
	Log            logger.Logger
	AllowedOrigins []string
}

// NewRouter builds the gin engine with all routes registered.
func NewRouter(cfg RouterConfig) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(requestLogger(cfg.Log))

	corsCfg := cors.Config{
		AllowMethods:     []string{"GET", "POST", "PUT", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}
	if len(cfg.AllowedOrigins) == 0 {
		corsCfg.AllowAllOrigins = true
		corsCfg.AllowCredentials = false
	} else {
		corsCfg.AllowOrigins = cfg.AllowedOrigins
	}
	r.Use(cors.New(corsCfg))

	h := &handlers{
		service: cfg.Service,
		configs: cfg.Configs,
		reports: cfg.ReportCache,
		pg:      cfg.Postgres,
		redis:   cfg.Redis,
		log:     cfg.Log.WithFields(map[string]interface{}{"component": "http"}),
	}

	r.GET("/health", h.health)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := r.Group("/api/scoping")
	{
		api.POST("/submit", h.submit)
		api.GET("/result/:id", h.result)
		api.GET("/history", h.history)
		api.GET("/download/:id", h.download)
		api.GET("/roles", h.roles)
	}

	admin := r.Group("/api/admin")
	{
		for slug, doc := range adminDocuments {
			path := "/" + slug
			admin.GET(path, h.getConfigDocument(doc))
			admin.PUT(path, h.putConfigDocument(doc))
		}
	}

	return r
}

func requestLogger(log logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		log.Debug("request", map[string]interface{}{
			"method":   c.Request.Method,
			"path":     c.Request.URL.Path,
			"status":   c.Writer.Status(),
			"duration": time.Since(start).String(),
		})
	}
}
