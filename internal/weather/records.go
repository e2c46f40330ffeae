package weather

import (
	"encoding/json"
	"math"

	"weather-mcp/internal/providers/openmeteo"
	"weather-mcp/internal/types"
)

// Unit suffixes appended to physical quantities
const (
	UnitCelsius     = "°C"
	UnitPercent     = "%"
	UnitKph         = "km/h"
	UnitMillimeters = "mm"
)

// Unavailable replaces a quantity or timestamp that has no data
const Unavailable = "N/A"

// Sentinels are the values substituted for absent data, per field kind.
// A missing weather code has no sentinel string; it is encoded as JSON null.
type Sentinels struct {
	Quantity    string
	Text        string
	Description string
}

func sentinelsFor(catalog types.WeatherCatalog) Sentinels {
	return Sentinels{
		Quantity:    Unavailable,
		Text:        Unavailable,
		Description: catalog.UnknownLabel(),
	}
}

// recordBuilder turns co-indexed columns into per-index records.
// The time column sets the length; every other column is read bounds-checked.
type recordBuilder struct {
	catalog   types.WeatherCatalog
	sentinels Sentinels
}

func newRecordBuilder(catalog types.WeatherCatalog) recordBuilder {
	return recordBuilder{
		catalog:   catalog,
		sentinels: sentinelsFor(catalog),
	}
}

func (b recordBuilder) buildDaily(section openmeteo.Series) []DailyRecord {
	times := section.Column(openmeteo.FieldTime)
	codes := section.Column(openmeteo.FieldWeatherCode)
	maxTemps := section.Column(openmeteo.FieldTemperatureMax)
	minTemps := section.Column(openmeteo.FieldTemperatureMin)
	precipitation := section.Column(openmeteo.FieldPrecipitationSum)

	records := make([]DailyRecord, 0, len(times))
	for i := range times {
		code := weatherCode(openmeteo.At(codes, i))
		records = append(records, DailyRecord{
			Date:           b.text(openmeteo.At(times, i)),
			Weather:        b.describe(code),
			TemperatureMax: b.quantity(UnitCelsius)(openmeteo.At(maxTemps, i)),
			TemperatureMin: b.quantity(UnitCelsius)(openmeteo.At(minTemps, i)),
			Precipitation:  b.quantity(UnitMillimeters)(openmeteo.At(precipitation, i)),
		})
	}
	return records
}

func (b recordBuilder) buildHourly(section openmeteo.Series) []WeatherRecord {
	times := section.Column(openmeteo.FieldTime)
	temps := section.Column(openmeteo.FieldTemperature)
	codes := section.Column(openmeteo.FieldWeatherCode)
	precipitation := section.Column(openmeteo.FieldPrecipitation)

	records := make([]WeatherRecord, 0, len(times))
	for i := range times {
		code := weatherCode(openmeteo.At(codes, i))
		records = append(records, WeatherRecord{
			Time:          b.text(openmeteo.At(times, i)),
			Temperature:   b.quantity(UnitCelsius)(openmeteo.At(temps, i)),
			Weather:       b.describe(code),
			WeatherCode:   code,
			Precipitation: b.quantity(UnitMillimeters)(openmeteo.At(precipitation, i)),
		})
	}
	return records
}

// quantity returns a formatter for one unit: the raw value followed by the
// unit, or the bare sentinel when there is no value.
func (b recordBuilder) quantity(unit string) func(json.RawMessage, bool) string {
	return func(raw json.RawMessage, ok bool) string {
		if !ok {
			return b.sentinels.Quantity
		}
		text, ok := scalarText(raw)
		if !ok {
			return b.sentinels.Quantity
		}
		return text + unit
	}
}

func (b recordBuilder) text(raw json.RawMessage, ok bool) string {
	if !ok {
		return b.sentinels.Text
	}
	text, ok := scalarText(raw)
	if !ok {
		return b.sentinels.Text
	}
	return text
}

func (b recordBuilder) describe(code *int) string {
	if code == nil {
		return b.sentinels.Description
	}
	return b.catalog.Describe(*code)
}

// scalarText renders a JSON string or number the way the provider wrote it,
// so 25.0 stays "25.0".
func scalarText(raw json.RawMessage) (string, bool) {
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s, true
	}
	var n json.Number
	if err := json.Unmarshal(raw, &n); err == nil {
		return n.String(), true
	}
	return "", false
}

func weatherCode(raw json.RawMessage, ok bool) *int {
	if !ok {
		return nil
	}
	var value float64
	if err := json.Unmarshal(raw, &value); err != nil {
		return nil
	}
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return nil
	}
	code := int(value)
	return &code
}
