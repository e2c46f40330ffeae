package tools

import (
	"context"
	"log/slog"

	"weather-mcp/internal/weather"
)

// Tool names
const (
	ToolCurrentWeather     = "get_current_weather"
	ToolWeeklyForecast     = "get_weekly_forecast"
	ToolTodayHourlyWeather = "get_today_hourly_weather"
	ToolHelloWeather       = "hello_weather"
	ToolServerInfo         = "server_info"
)

// Argument names shared by the weather tools
const (
	ArgLatitude     = "latitude"
	ArgLongitude    = "longitude"
	ArgLocationName = "location_name"
	ArgName         = "name"
)

// ServerInfo describes this server to tool callers
type ServerInfo struct {
	Name        string `json:"name"`
	Version     string `json:"version"`
	Description string `json:"description"`
}

// NewDefaultRegistry builds the registry with every tool this server offers
func NewDefaultRegistry(svc weather.Service, info ServerInfo, logger *slog.Logger) (*Registry, error) {
	registry := NewRegistry(logger)
	if err := RegisterWeatherTools(registry, svc); err != nil {
		return nil, err
	}
	if err := RegisterInfoTools(registry, info); err != nil {
		return nil, err
	}
	return registry, nil
}

func coordinateParams() []Param {
	return []Param{
		{Name: ArgLatitude, Type: ParamNumber, Description: "Latitude in decimal degrees", Required: true},
		{Name: ArgLongitude, Type: ParamNumber, Description: "Longitude in decimal degrees", Required: true},
		{Name: ArgLocationName, Type: ParamString, Description: "Display name for the location", Default: weather.DefaultLocationName},
	}
}

// RegisterWeatherTools adds the current, weekly and hourly weather tools
func RegisterWeatherTools(r *Registry, svc weather.Service) error {
	tools := []Tool{
		{
			Name:        ToolCurrentWeather,
			Description: "Get the current weather conditions for a latitude/longitude.",
			Params:      coordinateParams(),
			Handler: weatherHandler(func(ctx context.Context, q weather.Query) (any, error) {
				return svc.GetCurrentWeather(ctx, q)
			}),
		},
		{
			Name:        ToolWeeklyForecast,
			Description: "Get the 7-day daily forecast for a latitude/longitude.",
			Params:      coordinateParams(),
			Handler: weatherHandler(func(ctx context.Context, q weather.Query) (any, error) {
				return svc.GetWeeklyForecast(ctx, q)
			}),
		},
		{
			Name:        ToolTodayHourlyWeather,
			Description: "Get today's hourly forecast for a latitude/longitude.",
			Params:      coordinateParams(),
			Handler: weatherHandler(func(ctx context.Context, q weather.Query) (any, error) {
				return svc.GetTodayHourlyWeather(ctx, q)
			}),
		},
	}

	for _, tool := range tools {
		if err := r.Register(tool); err != nil {
			return err
		}
	}
	return nil
}

// weatherHandler parses the coordinate arguments and turns any failure of
// the weather service into an ErrorResult, so callers see {error} and nothing else.
func weatherHandler(run func(ctx context.Context, q weather.Query) (any, error)) HandlerFunc {
	return func(ctx context.Context, args Arguments) (any, error) {
		latitude, err := args.RequireFloat(ArgLatitude)
		if err != nil {
			return nil, err
		}
		longitude, err := args.RequireFloat(ArgLongitude)
		if err != nil {
			return nil, err
		}
		query := weather.NewQuery(latitude, longitude, args.String(ArgLocationName, weather.DefaultLocationName))

		report, err := run(ctx, query)
		if err != nil {
			return ErrorResult{Error: err.Error()}, nil
		}
		return report, nil
	}
}

// RegisterInfoTools adds hello_weather and server_info
func RegisterInfoTools(r *Registry, info ServerInfo) error {
	tools := []Tool{
		{
			Name:        ToolHelloWeather,
			Description: "Return a simple greeting.",
			Params: []Param{
				{Name: ArgName, Type: ParamString, Description: "Who to greet", Default: "World"},
			},
			Handler: func(ctx context.Context, args Arguments) (any, error) {
				return "Hello, " + args.String(ArgName, "World") + "! Welcome to " + info.Name + "!", nil
			},
		},
		{
			Name:        ToolServerInfo,
			Description: "Return server name, version and description.",
			Handler: func(ctx context.Context, args Arguments) (any, error) {
				return info, nil
			},
		},
	}

	for _, tool := range tools {
		if err := r.Register(tool); err != nil {
			return err
		}
	}
	return nil
}
