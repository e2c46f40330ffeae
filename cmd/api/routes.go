package main

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"weather-mcp/internal/metrics"
)

// registerRoutes sets up all API endpoints
func (app *App) registerRoutes() {
	// Health check endpoint
	app.router.GET("/ping", app.handlePing)

	// Prometheus metrics
	app.router.GET("/metrics", gin.WrapH(metrics.Handler()))

	// MCP streamable HTTP transport
	app.router.Any(app.cfg.Server.McpPath, gin.WrapH(app.mcpServer.HTTPHandler()))

	// REST mirrors of the weather tools
	v1 := app.router.Group("/api/v1")
	v1.GET("/tools", app.handleListTools)
	v1.GET("/weather/current", app.handleGetCurrentWeather)
	v1.GET("/weather/weekly", app.handleGetWeeklyForecast)
	v1.GET("/weather/hourly", app.handleGetTodayHourlyWeather)

	// Swagger documentation
	app.router.GET("/swagger/*any", func(c *gin.Context) {
		path := c.Param("any")
		if path == "/" {
			c.Redirect(http.StatusMovedPermanently, "/swagger/index.html")
			return
		}
		ginSwagger.WrapHandler(swaggerFiles.Handler)(c)
	})
}
