package tools

import (
	"context"
	"encoding/json"
	"errors"
	"reflect"
	"strings"
	"testing"
	"time"

	"weather-mcp/internal/config"
	"weather-mcp/internal/providers/openmeteo"
	"weather-mcp/internal/weather"
)

type stubProvider struct {
	body string
	err  error
}

func (s *stubProvider) GetForecast(ctx context.Context, latitude, longitude float64, timezone string) (*openmeteo.ForecastAPIResponse, error) {
	if s.err != nil {
		return nil, s.err
	}
	var resp openmeteo.ForecastAPIResponse
	if err := json.Unmarshal([]byte(s.body), &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func newTestRegistry(t *testing.T, provider weather.ForecastProvider, now time.Time) *Registry {
	t.Helper()
	cfg := &config.Config{
		Provider: config.ProviderConfig{Timezone: "Asia/Tokyo", ForecastDays: 7},
		App:      config.AppConfig{Language: "ja"},
	}
	svc := weather.NewWeatherServiceWithProvider(provider, nil, cfg, discardLogger(),
		weather.WithClock(func() time.Time { return now }))

	registry, err := NewDefaultRegistry(svc, ServerInfo{
		Name:        "Weather MCP Server",
		Version:     "1.0.0",
		Description: "天気予報情報を提供するMCPサーバー",
	}, discardLogger())
	if err != nil {
		t.Fatalf("NewDefaultRegistry() error = %v", err)
	}
	return registry
}

// toMap renders a tool result the way transports serialize it
func toMap(t *testing.T, result any) map[string]any {
	t.Helper()
	raw, err := json.Marshal(result)
	if err != nil {
		t.Fatalf("failed to marshal result: %v", err)
	}
	var m map[string]any
	if err := json.Unmarshal(raw, &m); err != nil {
		t.Fatalf("failed to unmarshal result: %v", err)
	}
	return m
}

func coordinateArgs() map[string]any {
	return map[string]any{"latitude": 35.6762, "longitude": 139.6503, "location_name": "東京"}
}

func TestWeatherTools_UpstreamFailure(t *testing.T) {
	provider := &stubProvider{err: errors.New("failed to fetch: dial tcp: lookup api.open-meteo.com: no such host")}
	registry := newTestRegistry(t, provider, time.Now())

	for _, name := range []string{ToolCurrentWeather, ToolWeeklyForecast, ToolTodayHourlyWeather} {
		t.Run(name, func(t *testing.T) {
			result, err := registry.Call(context.Background(), name, coordinateArgs())
			if err != nil {
				t.Fatalf("Call() error = %v", err)
			}

			m := toMap(t, result)
			if len(m) != 1 {
				t.Errorf("result = %v, want only the error key", m)
			}
			message, ok := m["error"].(string)
			if !ok || !strings.Contains(message, "no such host") {
				t.Errorf("error = %v, want it to contain the failure", m["error"])
			}
		})
	}
}

func TestWeatherTools_WeeklyForecast(t *testing.T) {
	provider := &stubProvider{body: `{
		"timezone": "Asia/Tokyo",
		"daily": {
			"time": ["2024-06-01", "2024-06-02"],
			"weather_code": [0, 61],
			"temperature_2m_max": [25.0, 22.0],
			"temperature_2m_min": [18.0, 16.0],
			"precipitation_sum": [0.0, 5.0]
		}
	}`}
	registry := newTestRegistry(t, provider, time.Now())

	result, err := registry.Call(context.Background(), ToolWeeklyForecast, coordinateArgs())
	if err != nil {
		t.Fatalf("Call() error = %v", err)
	}

	m := toMap(t, result)
	if m["location"] != "東京" || m["forecast_period"] != "7 days" {
		t.Errorf("result = %v", m)
	}
	coords, _ := m["coordinates"].(map[string]any)
	if coords["latitude"] != 35.6762 || coords["longitude"] != 139.6503 {
		t.Errorf("coordinates = %v", m["coordinates"])
	}

	forecast, ok := m["forecast"].([]any)
	if !ok || len(forecast) != 2 {
		t.Fatalf("forecast = %v, want 2 entries", m["forecast"])
	}
	want := map[string]any{
		"date":            "2024-06-01",
		"weather":         "快晴",
		"temperature_max": "25.0°C",
		"temperature_min": "18.0°C",
		"precipitation":   "0.0mm",
	}
	if !reflect.DeepEqual(forecast[0], want) {
		t.Errorf("forecast[0] = %v, want %v", forecast[0], want)
	}
}

func TestWeatherTools_TodayHourlyWeather(t *testing.T) {
	provider := &stubProvider{body: `{
		"timezone": "Asia/Tokyo",
		"current": {"time": "2024-06-01T09:00"},
		"hourly": {
			"time": ["2024-06-01T00:00", "2024-06-01T01:00"],
			"temperature_2m": [18.0, 17.5],
			"weather_code": [0, 1],
			"precipitation": [0.0, 0.0]
		}
	}`}
	// 2024-06-01 12:00 in Tokyo
	registry := newTestRegistry(t, provider, time.Date(2024, 6, 1, 3, 0, 0, 0, time.UTC))

	result, err := registry.Call(context.Background(), ToolTodayHourlyWeather, coordinateArgs())
	if err != nil {
		t.Fatalf("Call() error = %v", err)
	}

	m := toMap(t, result)
	if m["date"] != "2024-06-01" {
		t.Errorf("date = %v, want 2024-06-01", m["date"])
	}
	hours, ok := m["hours"].([]any)
	if !ok || len(hours) != 2 {
		t.Fatalf("hours = %v, want 2 entries", m["hours"])
	}
	first := hours[0].(map[string]any)
	if first["time"] != "2024-06-01T00:00" || first["temperature"] != "18.0°C" || first["weather"] != "快晴" || first["weather_code"] != 0.0 {
		t.Errorf("hours[0] = %v", first)
	}
}

func TestWeatherTools_NoHourlyData(t *testing.T) {
	registry := newTestRegistry(t, &stubProvider{body: `{"timezone": "Asia/Tokyo"}`}, time.Now())

	result, err := registry.Call(context.Background(), ToolTodayHourlyWeather, coordinateArgs())
	if err != nil {
		t.Fatalf("Call() error = %v", err)
	}

	m := toMap(t, result)
	if !reflect.DeepEqual(m, map[string]any{"error": "no hourly data found"}) {
		t.Errorf("result = %v", m)
	}
}

func TestWeatherTools_CurrentWeather(t *testing.T) {
	provider := &stubProvider{body: `{
		"timezone": "Asia/Tokyo",
		"current": {"time": "2024-06-01T10:00", "temperature_2m": 22.4, "relative_humidity_2m": 65, "weather_code": 95, "wind_speed_10m": 7.9}
	}`}
	registry := newTestRegistry(t, provider, time.Now())

	args := map[string]any{"latitude": 35.6762, "longitude": 139.6503}
	result, err := registry.Call(context.Background(), ToolCurrentWeather, args)
	if err != nil {
		t.Fatalf("Call() error = %v", err)
	}

	m := toMap(t, result)
	want := map[string]any{
		"location":     weather.DefaultLocationName,
		"coordinates":  map[string]any{"latitude": 35.6762, "longitude": 139.6503},
		"current_time": "2024-06-01T10:00",
		"temperature":  "22.4°C",
		"humidity":     "65%",
		"wind_speed":   "7.9km/h",
		"weather":      "雷雨",
		"weather_code": 95.0,
	}
	if !reflect.DeepEqual(m, want) {
		t.Errorf("result = %v, want %v", m, want)
	}
}

func TestWeatherTools_MissingCoordinates(t *testing.T) {
	registry := newTestRegistry(t, &stubProvider{body: `{}`}, time.Now())

	_, err := registry.Call(context.Background(), ToolCurrentWeather, map[string]any{"longitude": 139.69})
	if !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("Call() error = %v, want ErrInvalidArgument", err)
	}
}

func TestInfoTools(t *testing.T) {
	registry := newTestRegistry(t, &stubProvider{body: `{}`}, time.Now())
	ctx := context.Background()

	greeting, err := registry.Call(ctx, ToolHelloWeather, map[string]any{"name": "Taro"})
	if err != nil || greeting != "Hello, Taro! Welcome to Weather MCP Server!" {
		t.Errorf("hello_weather = (%v, %v)", greeting, err)
	}

	greeting, err = registry.Call(ctx, ToolHelloWeather, nil)
	if err != nil || greeting != "Hello, World! Welcome to Weather MCP Server!" {
		t.Errorf("hello_weather default = (%v, %v)", greeting, err)
	}

	info, err := registry.Call(ctx, ToolServerInfo, nil)
	if err != nil {
		t.Fatalf("server_info error = %v", err)
	}
	m := toMap(t, info)
	if m["name"] != "Weather MCP Server" || m["version"] != "1.0.0" {
		t.Errorf("server_info = %v", m)
	}
}

func TestNewDefaultRegistry_Tools(t *testing.T) {
	registry := newTestRegistry(t, &stubProvider{body: `{}`}, time.Now())

	var names []string
	for _, tool := range registry.Tools() {
		names = append(names, tool.Name)
	}
	want := []string{ToolCurrentWeather, ToolTodayHourlyWeather, ToolWeeklyForecast, ToolHelloWeather, ToolServerInfo}
	if len(names) != len(want) {
		t.Fatalf("tools = %v, want %d tools", names, len(want))
	}
	for _, name := range want {
		if _, ok := registry.Lookup(name); !ok {
			t.Errorf("tool %s not registered", name)
		}
	}
}
