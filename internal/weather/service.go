package weather

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"weather-mcp/internal/config"
	"weather-mcp/internal/providers/openmeteo"
	"weather-mcp/internal/timezone"
	"weather-mcp/internal/types"
)

type ForecastProvider interface {
	// GetForecast fetches current, daily and hourly data for the given coordinates and timezone
	GetForecast(ctx context.Context, latitude, longitude float64, timezone string) (*openmeteo.ForecastAPIResponse, error)
}

type Service interface {
	GetCurrentWeather(ctx context.Context, query Query) (*CurrentReport, error)
	GetWeeklyForecast(ctx context.Context, query Query) (*WeeklyReport, error)
	GetTodayHourlyWeather(ctx context.Context, query Query) (*HourlyReport, error)
}

// Option customizes a weather service
type Option func(*weatherService)

// WithClock replaces the clock used to decide what "today" is
func WithClock(now func() time.Time) Option {
	return func(s *weatherService) {
		s.now = now
	}
}

type weatherService struct {
	forecastProvider ForecastProvider
	timezoneLocator  timezone.Locator
	catalog          types.WeatherCatalog
	builder          recordBuilder
	providerTimezone string
	forecastDays     int
	now              func() time.Time
	logger           *slog.Logger
}

func NewWeatherService(cfg *config.Config, logger *slog.Logger) (Service, error) {
	client := openmeteo.NewForecastClient(openmeteo.ForecastClientConfig{
		BaseURL:      cfg.Provider.BaseURL,
		ForecastDays: cfg.Provider.ForecastDays,
		Timeout:      cfg.Provider.Timeout,
	}, logger)

	var locator timezone.Locator
	if cfg.Provider.Timezone == config.TimezoneCoordinates {
		l, err := timezone.NewLocator()
		if err != nil {
			return nil, fmt.Errorf("failed to create timezone locator: %w", err)
		}
		locator = l
	}

	return NewWeatherServiceWithProvider(client, locator, cfg, logger), nil
}

// NewWeatherServiceWithProvider creates a weather service with a custom provider.
// timezoneLocator is only consulted when the provider timezone is "coordinates" and may be nil.
func NewWeatherServiceWithProvider(
	forecastProvider ForecastProvider,
	timezoneLocator timezone.Locator,
	cfg *config.Config,
	logger *slog.Logger,
	opts ...Option,
) Service {
	catalog := types.NewWeatherCatalog(cfg.App.Language)

	forecastDays := cfg.Provider.ForecastDays
	if forecastDays <= 0 {
		forecastDays = openmeteo.DefaultForecastDays
	}

	s := &weatherService{
		forecastProvider: forecastProvider,
		timezoneLocator:  timezoneLocator,
		catalog:          catalog,
		builder:          newRecordBuilder(catalog),
		providerTimezone: cfg.Provider.Timezone,
		forecastDays:     forecastDays,
		now:              time.Now,
		logger:           logger.With("component", "weather-service"),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *weatherService) GetCurrentWeather(ctx context.Context, query Query) (*CurrentReport, error) {
	apiResponse, err := s.fetch(ctx, query)
	if err != nil {
		return nil, err
	}

	current := apiResponse.Current
	code := weatherCode(current.Get(openmeteo.FieldWeatherCode))

	// The label falls back to code 0 while the reported code stays null
	describedCode := 0
	if code != nil {
		describedCode = *code
	}

	return &CurrentReport{
		Location:    query.LocationName,
		Coordinates: query.Coordinates,
		CurrentTime: s.builder.text(current.Get(openmeteo.FieldTime)),
		Temperature: s.builder.quantity(UnitCelsius)(current.Get(openmeteo.FieldTemperature)),
		Humidity:    s.builder.quantity(UnitPercent)(current.Get(openmeteo.FieldRelativeHumidity)),
		WindSpeed:   s.builder.quantity(UnitKph)(current.Get(openmeteo.FieldWindSpeed)),
		Weather:     s.catalog.Describe(describedCode),
		WeatherCode: code,
	}, nil
}

func (s *weatherService) GetWeeklyForecast(ctx context.Context, query Query) (*WeeklyReport, error) {
	apiResponse, err := s.fetch(ctx, query)
	if err != nil {
		return nil, err
	}

	return &WeeklyReport{
		Location:       query.LocationName,
		Coordinates:    query.Coordinates,
		ForecastPeriod: fmt.Sprintf("%d days", s.forecastDays),
		Forecast:       s.builder.buildDaily(apiResponse.Daily),
	}, nil
}

func (s *weatherService) GetTodayHourlyWeather(ctx context.Context, query Query) (*HourlyReport, error) {
	apiResponse, err := s.fetch(ctx, query)
	if err != nil {
		return nil, err
	}

	if apiResponse.Hourly == nil {
		s.logger.Warn("provider response has no hourly section",
			"latitude", query.Coordinates.Latitude,
			"longitude", query.Coordinates.Longitude,
		)
		return nil, ErrNoHourlyData
	}

	var currentTime string
	if raw, ok := apiResponse.Current.Get(openmeteo.FieldTime); ok {
		currentTime, _ = scalarText(raw)
	}

	records := s.builder.buildHourly(apiResponse.Hourly)
	hours, date := FilterToday(records, apiResponse.Timezone, currentTime, s.now())

	s.logger.Debug("filtered hourly forecast",
		"timezone", apiResponse.Timezone,
		"date", date,
		"hours", len(hours),
		"available", len(records),
	)

	return &HourlyReport{
		Location:    query.LocationName,
		Coordinates: query.Coordinates,
		Date:        date,
		Hours:       hours,
	}, nil
}

func (s *weatherService) fetch(ctx context.Context, query Query) (*openmeteo.ForecastAPIResponse, error) {
	tz := s.requestTimezone(query.Coordinates)

	apiResponse, err := s.forecastProvider.GetForecast(
		ctx,
		query.Coordinates.Latitude,
		query.Coordinates.Longitude,
		tz,
	)
	if err != nil {
		s.logger.Error("failed to get forecast from provider",
			"latitude", query.Coordinates.Latitude,
			"longitude", query.Coordinates.Longitude,
			"timezone", tz,
			"error", err,
		)
		return nil, fmt.Errorf("failed to get forecast: %w", err)
	}

	return apiResponse, nil
}

// requestTimezone picks the timezone sent to the provider. In "coordinates"
// mode the zone is looked up locally; a failed lookup lets the provider decide.
func (s *weatherService) requestTimezone(coords types.Coords) string {
	if s.providerTimezone != config.TimezoneCoordinates {
		return s.providerTimezone
	}
	if s.timezoneLocator == nil {
		return config.TimezoneAuto
	}

	tz, err := s.timezoneLocator.TimezoneFor(coords)
	if err != nil {
		s.logger.Warn("failed to determine timezone, letting provider resolve it",
			"latitude", coords.Latitude,
			"longitude", coords.Longitude,
			"error", err,
		)
		return config.TimezoneAuto
	}

	s.logger.Debug("determined timezone for location",
		"latitude", coords.Latitude,
		"longitude", coords.Longitude,
		"timezone", tz,
	)
	return tz
}
