package openmeteo

import (
	"bytes"
	"encoding/json"
)

// ForecastAPIResponse is the forecast body as returned by Open-Meteo.
// Sections are kept loosely typed; callers read them through Values and Series.
type ForecastAPIResponse struct {
	Latitude             float64           `json:"latitude"`
	Longitude            float64           `json:"longitude"`
	GenerationtimeMs     float64           `json:"generationtime_ms"`
	UtcOffsetSeconds     int               `json:"utc_offset_seconds"`
	Timezone             string            `json:"timezone"`
	TimezoneAbbreviation string            `json:"timezone_abbreviation"`
	Elevation            float64           `json:"elevation"`
	CurrentUnits         map[string]string `json:"current_units,omitempty"`
	Current              Values            `json:"current,omitempty"`
	DailyUnits           map[string]string `json:"daily_units,omitempty"`
	Daily                Series            `json:"daily,omitempty"`
	HourlyUnits          map[string]string `json:"hourly_units,omitempty"`
	Hourly               Series            `json:"hourly,omitempty"`
}

// Values is a section of scalar fields, e.g. "current"
type Values map[string]json.RawMessage

// Get returns the raw value of a field. Absent fields and JSON null report false.
func (v Values) Get(field string) (json.RawMessage, bool) {
	raw, ok := v[field]
	if !ok || isNull(raw) {
		return nil, false
	}
	return raw, true
}

// Series is a section of co-indexed columns, e.g. "daily" or "hourly".
// Columns are decoded on access so one malformed column does not affect the rest.
type Series map[string]json.RawMessage

// Column returns the elements of a column. A missing column, or one that is
// not a JSON array, is empty.
func (s Series) Column(field string) []json.RawMessage {
	raw, ok := s[field]
	if !ok {
		return nil
	}
	var column []json.RawMessage
	if err := json.Unmarshal(raw, &column); err != nil {
		return nil
	}
	return column
}

// At returns element i of a column, bounds-checked. Out of range and JSON null report false.
func At(column []json.RawMessage, i int) (json.RawMessage, bool) {
	if i < 0 || i >= len(column) {
		return nil, false
	}
	if isNull(column[i]) {
		return nil, false
	}
	return column[i], true
}

func isNull(raw json.RawMessage) bool {
	trimmed := bytes.TrimSpace(raw)
	return len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null"))
}
