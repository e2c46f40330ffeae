package config

import (
	"context"
	"log/slog"
	"testing"
	"time"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Server.Port != 8000 {
		t.Errorf("Server.Port = %d, want 8000", cfg.Server.Port)
	}
	if cfg.Server.Transport != TransportHTTP {
		t.Errorf("Server.Transport = %q, want %q", cfg.Server.Transport, TransportHTTP)
	}
	if cfg.Server.McpPath != "/mcp" {
		t.Errorf("Server.McpPath = %q, want /mcp", cfg.Server.McpPath)
	}
	if cfg.Provider.Timezone != "Asia/Tokyo" {
		t.Errorf("Provider.Timezone = %q, want Asia/Tokyo", cfg.Provider.Timezone)
	}
	if cfg.Provider.ForecastDays != 7 {
		t.Errorf("Provider.ForecastDays = %d, want 7", cfg.Provider.ForecastDays)
	}
	if cfg.Provider.Timeout != 0 {
		t.Errorf("Provider.Timeout = %s, want 0", cfg.Provider.Timeout)
	}
	if cfg.App.Language != "ja" {
		t.Errorf("App.Language = %q, want ja", cfg.App.Language)
	}
}

func TestLoad_EnvironmentOverrides(t *testing.T) {
	t.Setenv("WEATHER_MCP_SERVER_PORT", "9090")
	t.Setenv("WEATHER_MCP_PROVIDER_TIMEZONE", "Europe/Berlin")
	t.Setenv("WEATHER_MCP_PROVIDER_TIMEOUT", "5s")
	t.Setenv("WEATHER_MCP_APP_LANGUAGE", "en")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Server.Port != 9090 {
		t.Errorf("Server.Port = %d, want 9090", cfg.Server.Port)
	}
	if cfg.Provider.Timezone != "Europe/Berlin" {
		t.Errorf("Provider.Timezone = %q, want Europe/Berlin", cfg.Provider.Timezone)
	}
	if cfg.Provider.Timeout != 5*time.Second {
		t.Errorf("Provider.Timeout = %s, want 5s", cfg.Provider.Timeout)
	}
	if cfg.App.Language != "en" {
		t.Errorf("App.Language = %q, want en", cfg.App.Language)
	}
}

func TestLoad_InvalidTransport(t *testing.T) {
	t.Setenv("WEATHER_MCP_SERVER_TRANSPORT", "carrier-pigeon")

	if _, err := Load(); err == nil {
		t.Fatal("Load() expected error for unknown transport, got nil")
	}
}

func TestLoad_InvalidMcpPath(t *testing.T) {
	t.Setenv("WEATHER_MCP_SERVER_MCPPATH", "mcp")

	if _, err := Load(); err == nil {
		t.Fatal("Load() expected error for relative mcp path, got nil")
	}
}

func TestGetServerAddr(t *testing.T) {
	cfg := &Config{Server: ServerConfig{Port: 8123}}
	if got := cfg.GetServerAddr(); got != ":8123" {
		t.Errorf("GetServerAddr() = %q, want :8123", got)
	}
}

func TestNewLogger_Level(t *testing.T) {
	tests := []struct {
		level string
		want  slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"info", slog.LevelInfo},
		{"WARN", slog.LevelWarn},
		{"warning", slog.LevelWarn},
		{"error", slog.LevelError},
		{"bogus", slog.LevelInfo},
	}

	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			cfg := &Config{Log: LogConfig{Level: tt.level}}
			logger := cfg.NewLogger()
			if !logger.Enabled(context.Background(), tt.want) {
				t.Errorf("logger should be enabled at %v", tt.want)
			}
			if tt.want > slog.LevelDebug && logger.Enabled(context.Background(), tt.want-1) {
				t.Errorf("logger should not be enabled below %v", tt.want)
			}
		})
	}
}
