package weather

import (
	"reflect"
	"testing"
	"time"
)

func hourlyRecords(times ...string) []WeatherRecord {
	records := make([]WeatherRecord, 0, len(times))
	for _, ts := range times {
		records = append(records, WeatherRecord{Time: ts, Temperature: "20.0°C"})
	}
	return records
}

func recordTimes(records []WeatherRecord) []string {
	times := make([]string, 0, len(records))
	for _, record := range records {
		times = append(times, record.Time)
	}
	return times
}

func TestFilterToday(t *testing.T) {
	// 2024-06-01T15:30Z is 2024-06-02 00:30 in Tokyo
	lateUTC := time.Date(2024, 6, 1, 15, 30, 0, 0, time.UTC)

	tests := []struct {
		name        string
		records     []WeatherRecord
		timezone    string
		currentTime string
		now         time.Time
		wantTimes   []string
		wantDate    string
	}{
		{
			name:      "matches today in reported zone",
			records:   hourlyRecords("2024-06-01T00:00", "2024-06-01T01:00"),
			timezone:  "Asia/Tokyo",
			now:       time.Date(2024, 6, 1, 3, 0, 0, 0, time.UTC),
			wantTimes: []string{"2024-06-01T00:00", "2024-06-01T01:00"},
			wantDate:  "2024-06-01",
		},
		{
			name:      "zone decides the date",
			records:   hourlyRecords("2024-06-01T23:00", "2024-06-02T00:00", "2024-06-02T01:00"),
			timezone:  "Asia/Tokyo",
			now:       lateUTC,
			wantTimes: []string{"2024-06-02T00:00", "2024-06-02T01:00"},
			wantDate:  "2024-06-02",
		},
		{
			name:        "falls back to current timestamp date",
			records:     hourlyRecords("2024-01-02T00:00", "2024-01-02T01:00"),
			timezone:    "UTC",
			currentTime: "2024-01-02T10:00",
			now:         time.Date(2024, 1, 3, 12, 0, 0, 0, time.UTC),
			wantTimes:   []string{"2024-01-02T00:00", "2024-01-02T01:00"},
			wantDate:    "2024-01-02",
		},
		{
			name:        "short current timestamp gives no fallback",
			records:     hourlyRecords("2024-01-02T00:00"),
			timezone:    "UTC",
			currentTime: "2024-01",
			now:         time.Date(2024, 1, 3, 12, 0, 0, 0, time.UTC),
			wantTimes:   []string{},
			wantDate:    "2024-01-03",
		},
		{
			name:        "no match at all",
			records:     hourlyRecords("2023-12-31T00:00"),
			timezone:    "UTC",
			currentTime: "2024-01-02T10:00",
			now:         time.Date(2024, 1, 3, 12, 0, 0, 0, time.UTC),
			wantTimes:   []string{},
			wantDate:    "2024-01-03",
		},
		{
			name:      "malformed timestamps silently do not match",
			records:   hourlyRecords("01/06/2024 00:00", "N/A"),
			timezone:  "UTC",
			now:       time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC),
			wantTimes: []string{},
			wantDate:  "2024-06-01",
		},
		{
			name:      "empty records",
			records:   nil,
			timezone:  "UTC",
			now:       time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC),
			wantTimes: []string{},
			wantDate:  "2024-06-01",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, date := FilterToday(tt.records, tt.timezone, tt.currentTime, tt.now)
			if got == nil {
				t.Fatal("FilterToday() returned nil, want empty slice")
			}
			if !reflect.DeepEqual(recordTimes(got), tt.wantTimes) {
				t.Errorf("FilterToday() times = %v, want %v", recordTimes(got), tt.wantTimes)
			}
			if date != tt.wantDate {
				t.Errorf("FilterToday() date = %q, want %q", date, tt.wantDate)
			}
		})
	}
}

func TestFilterToday_UnknownZoneUsesLocalDate(t *testing.T) {
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	localDate := now.In(time.Local).Format(dateLayout)
	records := hourlyRecords(localDate+"T00:00", "1999-01-01T00:00")

	for _, tz := range []string{"", "Mars/Olympus_Mons"} {
		got, date := FilterToday(records, tz, "", now)
		if date != localDate {
			t.Errorf("timezone %q: date = %q, want local date %q", tz, date, localDate)
		}
		if len(got) != 1 || got[0].Time != localDate+"T00:00" {
			t.Errorf("timezone %q: got %v, want the local-date record", tz, recordTimes(got))
		}
	}
}

func TestFilterToday_Idempotent(t *testing.T) {
	records := hourlyRecords("2024-01-02T00:00", "2024-01-02T01:00", "2024-01-03T00:00")
	now := time.Date(2024, 1, 4, 0, 0, 0, 0, time.UTC)

	first, firstDate := FilterToday(records, "Asia/Tokyo", "2024-01-02T10:00", now)
	second, secondDate := FilterToday(records, "Asia/Tokyo", "2024-01-02T10:00", now)

	if !reflect.DeepEqual(first, second) || firstDate != secondDate {
		t.Errorf("FilterToday() not idempotent: (%v, %q) vs (%v, %q)", first, firstDate, second, secondDate)
	}
	if len(records) != 3 {
		t.Errorf("FilterToday() modified its input: %v", records)
	}
}
