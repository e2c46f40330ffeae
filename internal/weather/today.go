package weather

import (
	"strings"
	"time"
	_ "time/tzdata" // zone names must resolve on hosts without a zoneinfo database
)

const dateLayout = "2006-01-02"

// FilterToday keeps the hourly records that fall on "today" in the reported
// timezone and returns them with the date that was matched.
//
// Dates are compared as string prefixes of the record timestamps, so a
// timestamp in an unexpected shape simply never matches. When nothing matches
// today's date, the date portion of currentTime is tried instead; the
// provider's first hour can lag the wall clock around midnight.
func FilterToday(records []WeatherRecord, reportedTimezone, currentTime string, now time.Time) ([]WeatherRecord, string) {
	today := resolveToday(reportedTimezone, now)
	if matched := filterByDatePrefix(records, today); len(matched) > 0 {
		return matched, today
	}

	if len(currentTime) >= len(dateLayout) {
		fallback := currentTime[:len(dateLayout)]
		if matched := filterByDatePrefix(records, fallback); len(matched) > 0 {
			return matched, fallback
		}
	}

	return []WeatherRecord{}, today
}

// resolveToday formats now as a calendar date in the named zone, falling back
// to the host's local zone when the name is empty or unknown.
func resolveToday(timezone string, now time.Time) string {
	if timezone != "" {
		if location, err := time.LoadLocation(timezone); err == nil {
			return now.In(location).Format(dateLayout)
		}
	}
	return now.In(time.Local).Format(dateLayout)
}

func filterByDatePrefix(records []WeatherRecord, date string) []WeatherRecord {
	var matched []WeatherRecord
	for _, record := range records {
		if strings.HasPrefix(record.Time, date) {
			matched = append(matched, record)
		}
	}
	return matched
}
