package main

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// registerRoutes sets up all API endpoints
func (app *App) registerRoutes() {
	// Health check endpoint
	app.router.GET("/ping", app.handlePing)

	// Prometheus metrics
	app.router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Analysis endpoints
	api := app.router.Group("/api")
	api.POST("/analyze", app.handleAnalyze)
	api.GET("/points", app.handleGetPoints)
	api.POST("/explain", app.handleExplain)

	// Assistant endpoints
	api.POST("/chat", app.handleChat)
	api.POST("/chat/save", app.handleSaveChat)
	api.GET("/chat/download/:chat_id", app.handleDownloadChat)
	api.DELETE("/chat/delete/:chat_id", app.handleDeleteChat)

	// Swagger documentation
	app.router.GET("/swagger/*any", func(c *gin.Context) {
		path := c.Param("any")
		if path == "/" {
			c.Redirect(301, "/swagger/index.html")
			return
		}
		ginSwagger.WrapHandler(swaggerFiles.Handler)(c)
	})
}
