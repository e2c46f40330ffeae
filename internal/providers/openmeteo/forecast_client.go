package openmeteo

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"weather-mcp/internal/metrics"
)

// API Docs: https://open-meteo.com/en/docs
// Sample request: https://api.open-meteo.com/v1/forecast?latitude=35.68&longitude=139.69&current=temperature_2m,relative_humidity_2m,weather_code,wind_speed_10m&daily=weather_code,temperature_2m_max,temperature_2m_min,precipitation_sum&hourly=temperature_2m,weather_code,precipitation&timezone=Asia%2FTokyo&forecast_days=7
const (
	baseForecastURL     = "https://api.open-meteo.com/v1/forecast"
	DefaultTimezone     = "Asia/Tokyo"
	DefaultForecastDays = 7
)

// Field names requested from the forecast endpoint
const (
	FieldTime             = "time"
	FieldTemperature      = "temperature_2m"
	FieldRelativeHumidity = "relative_humidity_2m"
	FieldWeatherCode      = "weather_code"
	FieldWindSpeed        = "wind_speed_10m"
	FieldTemperatureMax   = "temperature_2m_max"
	FieldTemperatureMin   = "temperature_2m_min"
	FieldPrecipitationSum = "precipitation_sum"
	FieldPrecipitation    = "precipitation"
)

var (
	currentVars = []string{
		FieldTemperature,
		FieldRelativeHumidity,
		FieldWeatherCode,
		FieldWindSpeed,
	}

	dailyVars = []string{
		FieldWeatherCode,
		FieldTemperatureMax,
		FieldTemperatureMin,
		FieldPrecipitationSum,
	}

	hourlyVars = []string{
		FieldTemperature,
		FieldWeatherCode,
		FieldPrecipitation,
	}
)

// ForecastClientConfig configures a ForecastClient. Zero values take the defaults.
type ForecastClientConfig struct {
	BaseURL      string
	ForecastDays int
	Timeout      time.Duration
}

type ForecastClient struct {
	httpClient   *http.Client
	baseURL      string
	forecastDays int
	logger       *slog.Logger
}

func NewForecastClient(cfg ForecastClientConfig, logger *slog.Logger) *ForecastClient {
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = baseForecastURL
	}
	forecastDays := cfg.ForecastDays
	if forecastDays <= 0 {
		forecastDays = DefaultForecastDays
	}

	return &ForecastClient{
		httpClient:   &http.Client{Timeout: cfg.Timeout},
		baseURL:      baseURL,
		forecastDays: forecastDays,
		logger:       logger.With("component", "openmeteo-client"),
	}
}

// ForecastDays is the forecast horizon sent with every request
func (c *ForecastClient) ForecastDays() int {
	return c.forecastDays
}

// GetForecast fetches current conditions, the daily forecast and the hourly
// forecast for the given coordinates in a single request. An empty timezone
// requests DefaultTimezone.
func (c *ForecastClient) GetForecast(ctx context.Context, latitude, longitude float64, timezone string) (*ForecastAPIResponse, error) {
	u, err := c.forecastURL(latitude, longitude, timezone)
	if err != nil {
		return nil, err
	}

	c.logger.Debug("fetching Open-Meteo forecast",
		"latitude", latitude,
		"longitude", longitude,
		"url", u,
	)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}

	started := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		metrics.ObserveUpstream(metrics.UpstreamNetworkError, started)
		c.logger.Error("failed to fetch Open-Meteo forecast",
			"latitude", latitude,
			"longitude", longitude,
			"error", err,
		)
		return nil, fmt.Errorf("failed to fetch: %w", err)
	}
	defer func(Body io.ReadCloser) {
		_ = Body.Close()
	}(resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		metrics.ObserveUpstream(metrics.UpstreamBadStatus, started)
		body, _ := io.ReadAll(resp.Body)
		c.logger.Error("Open-Meteo API returned error",
			"status_code", resp.StatusCode,
			"latitude", latitude,
			"longitude", longitude,
			"response_body", string(body),
		)
		return nil, fmt.Errorf("fetch returned status %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	var apiResp ForecastAPIResponse
	if err := json.NewDecoder(resp.Body).Decode(&apiResp); err != nil {
		metrics.ObserveUpstream(metrics.UpstreamDecodeError, started)
		c.logger.Error("failed to decode Open-Meteo response",
			"latitude", latitude,
			"longitude", longitude,
			"error", err,
		)
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}
	metrics.ObserveUpstream(metrics.UpstreamOK, started)

	c.logger.Debug("successfully fetched Open-Meteo forecast",
		"latitude", latitude,
		"longitude", longitude,
		"timezone", apiResp.Timezone,
	)

	return &apiResp, nil
}

func (c *ForecastClient) forecastURL(latitude, longitude float64, timezone string) (string, error) {
	u, err := url.Parse(c.baseURL)
	if err != nil {
		return "", fmt.Errorf("failed to parse base URL: %w", err)
	}

	if timezone == "" {
		timezone = DefaultTimezone
	}

	q := u.Query()
	q.Set("latitude", strconv.FormatFloat(latitude, 'f', -1, 64))
	q.Set("longitude", strconv.FormatFloat(longitude, 'f', -1, 64))
	q.Set("current", strings.Join(currentVars, ","))
	q.Set("daily", strings.Join(dailyVars, ","))
	q.Set("hourly", strings.Join(hourlyVars, ","))
	q.Set("timezone", timezone)
	q.Set("forecast_days", strconv.Itoa(c.forecastDays))
	u.RawQuery = q.Encode()

	return u.String(), nil
}
