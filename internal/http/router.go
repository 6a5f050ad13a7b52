package http

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// NewRouter creates and configures the HTTP router with all endpoints.
func NewRouter(cfg RouterConfig) *gin.Engine {
	log := cfg.Logger
	if log == nil {
		log = zap.NewNop()
	}

	router := gin.New()
	router.Use(RequestLogger(log))
	router.Use(gin.Recovery())

	health := NewHealthController(cfg.Database, cfg.Version)

	// Health endpoints
	router.GET("/health", health.Status)
	router.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"message": "pong",
		})
	})

	// Import endpoints
	imports := NewImportsController(cfg.Importer, cfg.TaskQueue, cfg.ImportDir, log)
	if cfg.Importer != nil {
		router.POST("/api/imports/:entity", imports.Upload)
	}

	// Task management endpoints
	if cfg.TaskQueue != nil {
		tasksController := NewTasksController(cfg.TaskQueue, log)
		router.POST("/api/imports/run", imports.RunDirectory)
		router.GET("/api/tasks/:id", tasksController.GetTaskStatus)
	}

	// Export endpoints
	if cfg.Exporter != nil {
		exports := NewExportsController(cfg.Exporter, log)
		router.GET("/api/exports/shipping.csv", exports.Shipping)
	}

	return router
}
