package weather

import (
	"errors"

	"weather-mcp/internal/types"
)

// DefaultLocationName labels results when the caller gives no location name
const DefaultLocationName = "specified location"

// ErrNoHourlyData is returned when the provider response has no hourly section
var ErrNoHourlyData = errors.New("no hourly data found")

// Query identifies the point a report is built for
type Query struct {
	Coordinates  types.Coords
	LocationName string
}

// NewQuery builds a query, substituting DefaultLocationName for an empty name
func NewQuery(latitude, longitude float64, locationName string) Query {
	if locationName == "" {
		locationName = DefaultLocationName
	}
	return Query{
		Coordinates:  types.NewCoords(latitude, longitude),
		LocationName: locationName,
	}
}

type CurrentReport struct {
	Location    string       `json:"location"`
	Coordinates types.Coords `json:"coordinates"`
	CurrentTime string       `json:"current_time"`
	Temperature string       `json:"temperature"`
	Humidity    string       `json:"humidity"`
	WindSpeed   string       `json:"wind_speed"`
	Weather     string       `json:"weather"`
	WeatherCode *int         `json:"weather_code"`
}

type WeeklyReport struct {
	Location       string        `json:"location"`
	Coordinates    types.Coords  `json:"coordinates"`
	ForecastPeriod string        `json:"forecast_period"`
	Forecast       []DailyRecord `json:"forecast"`
}

type HourlyReport struct {
	Location    string          `json:"location"`
	Coordinates types.Coords    `json:"coordinates"`
	Date        string          `json:"date"`
	Hours       []WeatherRecord `json:"hours"`
}

// DailyRecord is one day of the daily forecast
type DailyRecord struct {
	Date           string `json:"date"`
	Weather        string `json:"weather"`
	TemperatureMax string `json:"temperature_max"`
	TemperatureMin string `json:"temperature_min"`
	Precipitation  string `json:"precipitation"`
}

// WeatherRecord is one hour of the hourly forecast
type WeatherRecord struct {
	Time          string `json:"time"`
	Temperature   string `json:"temperature"`
	Weather       string `json:"weather"`
	WeatherCode   *int   `json:"weather_code"`
	Precipitation string `json:"precipitation"`
}
