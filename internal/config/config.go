package config

import (
	"errors"
	"fmt"
	"log"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Transport names accepted by server.transport
const (
	TransportHTTP  = "http"
	TransportStdio = "stdio"
)

// Provider timezone modes besides a literal IANA zone name
const (
	TimezoneAuto        = "auto"
	TimezoneCoordinates = "coordinates"
)

// Config holds all configuration for the application
type Config struct {
	Server   ServerConfig
	Log      LogConfig
	Provider ProviderConfig
	App      AppConfig
}

// ServerConfig holds server-specific configuration
type ServerConfig struct {
	Port      int
	GinMode   string // debug, release, test
	Transport string // http, stdio
	McpPath   string
}

// LogConfig holds logging configuration
type LogConfig struct {
	Level  string // debug, info, warn, error
	Format string // json, text
}

// ProviderConfig holds the forecast provider settings
type ProviderConfig struct {
	BaseURL      string
	Timezone     string // IANA name, "auto" or "coordinates"
	ForecastDays int
	Timeout      time.Duration // 0 keeps the transport default
}

// AppConfig holds application-specific configuration
type AppConfig struct {
	Name     string
	Version  string
	Language string // ja, en
}

// Load reads configuration from .env, the config file and environment variables
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Printf("INFO: no .env file loaded: %v", err)
	}

	v := viper.New()

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	v.AddConfigPath("$HOME/.weather-mcp")

	v.SetDefault("server.port", 8000)
	v.SetDefault("server.ginmode", "release")
	v.SetDefault("server.transport", TransportHTTP)
	v.SetDefault("server.mcppath", "/mcp")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")
	v.SetDefault("provider.baseurl", "https://api.open-meteo.com/v1/forecast")
	v.SetDefault("provider.timezone", "Asia/Tokyo")
	v.SetDefault("provider.forecastdays", 7)
	v.SetDefault("provider.timeout", 0*time.Second)
	v.SetDefault("app.name", "Weather MCP Server")
	v.SetDefault("app.version", "1.0.0")
	v.SetDefault("app.language", "ja")

	// WEATHER_MCP_PROVIDER_TIMEZONE -> provider.timezone
	v.SetEnvPrefix("WEATHER_MCP")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		// It's okay if config file doesn't exist, we have defaults
		var configFileNotFoundError viper.ConfigFileNotFoundError
		if !errors.As(err, &configFileNotFoundError) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (c *Config) validate() error {
	switch c.Server.Transport {
	case TransportHTTP, TransportStdio:
	default:
		return fmt.Errorf("invalid server.transport %q: must be %q or %q", c.Server.Transport, TransportHTTP, TransportStdio)
	}
	if !strings.HasPrefix(c.Server.McpPath, "/") {
		return fmt.Errorf("invalid server.mcpPath %q: must start with /", c.Server.McpPath)
	}
	if c.Provider.ForecastDays < 1 {
		return fmt.Errorf("invalid provider.forecastDays %d: must be at least 1", c.Provider.ForecastDays)
	}
	if c.Provider.Timeout < 0 {
		return fmt.Errorf("invalid provider.timeout %s: must not be negative", c.Provider.Timeout)
	}
	return nil
}

// GetServerAddr returns the server address in the format ":port"
func (c *Config) GetServerAddr() string {
	return fmt.Sprintf(":%d", c.Server.Port)
}

// NewLogger creates a new slog.Logger based on the configuration.
// The stdio transport owns stdout, so logs go to stderr in that mode.
func (c *Config) NewLogger() *slog.Logger {
	var level slog.Level
	switch strings.ToLower(c.Log.Level) {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "warn", "warning":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{
		Level: level,
	}

	out := os.Stdout
	if c.Server.Transport == TransportStdio {
		out = os.Stderr
	}

	var handler slog.Handler
	switch strings.ToLower(c.Log.Format) {
	case "json":
		handler = slog.NewJSONHandler(out, opts)
	default: // "text" or anything else
		handler = slog.NewTextHandler(out, opts)
	}

	return slog.New(handler)
}
