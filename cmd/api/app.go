package main

import (
	"fmt"
	"log/slog"

	"github.com/gin-gonic/gin"

	_ "weather-mcp/docs" // Ensure docs are imported
	"weather-mcp/internal/config"
	"weather-mcp/internal/mcpserver"
	"weather-mcp/internal/tools"
	"weather-mcp/internal/weather"
)

const serverDescription = "天気予報情報を提供するMCPサーバー"

// App encapsulates application dependencies
type App struct {
	router    *gin.Engine
	logger    *slog.Logger
	registry  *tools.Registry
	mcpServer *mcpserver.Server
	cfg       *config.Config
}

// NewApp creates a new application with injected dependencies
func NewApp(cfg *config.Config, logger *slog.Logger) (*App, error) {
	weatherSvc, err := weather.NewWeatherService(cfg, logger)
	if err != nil {
		return nil, err
	}
	return newAppWithService(cfg, weatherSvc, logger)
}

func newAppWithService(cfg *config.Config, weatherSvc weather.Service, logger *slog.Logger) (*App, error) {
	// Set Gin mode from configuration
	gin.SetMode(cfg.Server.GinMode)

	router := gin.New()
	router.Use(gin.Recovery(), requestLogger(logger))

	info := tools.ServerInfo{
		Name:        cfg.App.Name,
		Version:     cfg.App.Version,
		Description: serverDescription,
	}

	registry, err := tools.NewDefaultRegistry(weatherSvc, info, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to register tools: %w", err)
	}

	app := &App{
		router:    router,
		logger:    logger,
		registry:  registry,
		mcpServer: mcpserver.NewServer(registry, info, logger),
		cfg:       cfg,
	}

	app.registerRoutes()

	return app, nil
}

// Run serves MCP over the configured transport. Over HTTP the REST routes are served too.
func (app *App) Run() error {
	if app.cfg.Server.Transport == config.TransportStdio {
		return app.mcpServer.ServeStdio()
	}

	app.logger.Info("starting server",
		"addr", app.cfg.GetServerAddr(),
		"mcp_path", app.cfg.Server.McpPath,
	)
	return app.router.Run(app.cfg.GetServerAddr())
}
