package types

import "fmt"

// WeatherCode represents a WMO weather code
type WeatherCode int

// Weather code constants
const (
	ClearSky                     WeatherCode = 0
	MainlyClear                  WeatherCode = 1
	PartlyCloudy                 WeatherCode = 2
	Overcast                     WeatherCode = 3
	Fog                          WeatherCode = 45
	DepositingRimeFog            WeatherCode = 48
	DrizzleLight                 WeatherCode = 51
	DrizzleModerate              WeatherCode = 53
	DrizzleDense                 WeatherCode = 55
	FreezingDrizzleLight         WeatherCode = 56
	FreezingDrizzleDense         WeatherCode = 57
	RainSlight                   WeatherCode = 61
	RainModerate                 WeatherCode = 63
	RainHeavy                    WeatherCode = 65
	FreezingRainLight            WeatherCode = 66
	FreezingRainHeavy            WeatherCode = 67
	SnowFallSlight               WeatherCode = 71
	SnowFallModerate             WeatherCode = 73
	SnowFallHeavy                WeatherCode = 75
	SnowGrains                   WeatherCode = 77
	RainShowersSlight            WeatherCode = 80
	RainShowersModerate          WeatherCode = 81
	RainShowersViolent           WeatherCode = 82
	SnowShowersSlight            WeatherCode = 85
	SnowShowersHeavy             WeatherCode = 86
	ThunderstormSlightOrModerate WeatherCode = 95
	ThunderstormWithSlightHail   WeatherCode = 96
	ThunderstormWithHeavyHail    WeatherCode = 99
)

// Supported catalog languages
const (
	LanguageJapanese = "ja"
	LanguageEnglish  = "en"
)

var japaneseDescriptions = map[WeatherCode]string{
	ClearSky:                     "快晴",
	MainlyClear:                  "晴れ",
	PartlyCloudy:                 "一部曇り",
	Overcast:                     "曇り",
	Fog:                          "霧",
	DepositingRimeFog:            "着氷性の霧",
	DrizzleLight:                 "弱い霧雨",
	DrizzleModerate:              "霧雨",
	DrizzleDense:                 "強い霧雨",
	FreezingDrizzleLight:         "弱い着氷性の霧雨",
	FreezingDrizzleDense:         "強い着氷性の霧雨",
	RainSlight:                   "小雨",
	RainModerate:                 "雨",
	RainHeavy:                    "大雨",
	FreezingRainLight:            "弱い着氷性の雨",
	FreezingRainHeavy:            "強い着氷性の雨",
	SnowFallSlight:               "小雪",
	SnowFallModerate:             "雪",
	SnowFallHeavy:                "大雪",
	SnowGrains:                   "霧雪",
	RainShowersSlight:            "弱いにわか雨",
	RainShowersModerate:          "にわか雨",
	RainShowersViolent:           "激しいにわか雨",
	SnowShowersSlight:            "弱いにわか雪",
	SnowShowersHeavy:             "強いにわか雪",
	ThunderstormSlightOrModerate: "雷雨",
	ThunderstormWithSlightHail:   "弱い雹を伴う雷雨",
	ThunderstormWithHeavyHail:    "強い雹を伴う雷雨",
}

var englishDescriptions = map[WeatherCode]string{
	ClearSky:                     "Clear sky",
	MainlyClear:                  "Mainly clear",
	PartlyCloudy:                 "Partly cloudy",
	Overcast:                     "Overcast",
	Fog:                          "Fog",
	DepositingRimeFog:            "Depositing rime fog",
	DrizzleLight:                 "Drizzle: Light intensity",
	DrizzleModerate:              "Drizzle: Moderate intensity",
	DrizzleDense:                 "Drizzle: Dense intensity",
	FreezingDrizzleLight:         "Freezing Drizzle: Light intensity",
	FreezingDrizzleDense:         "Freezing Drizzle: Dense intensity",
	RainSlight:                   "Rainfall: Slight intensity",
	RainModerate:                 "Rainfall: Moderate intensity",
	RainHeavy:                    "Rainfall: Heavy intensity",
	FreezingRainLight:            "Freezing Rainfall: Light intensity",
	FreezingRainHeavy:            "Freezing Rainfall: Heavy intensity",
	SnowFallSlight:               "Snow fall: Slight intensity",
	SnowFallModerate:             "Snow fall: Moderate intensity",
	SnowFallHeavy:                "Snow fall: Heavy intensity",
	SnowGrains:                   "Snow grains",
	RainShowersSlight:            "Rainfall showers: Slight",
	RainShowersModerate:          "Rainfall showers: Moderate",
	RainShowersViolent:           "Rainfall showers: Violent",
	SnowShowersSlight:            "Snow showers: Slight",
	SnowShowersHeavy:             "Snow showers: Heavy",
	ThunderstormSlightOrModerate: "Thunderstorm: Slight or moderate",
	ThunderstormWithSlightHail:   "Thunderstorm with slight hail",
	ThunderstormWithHeavyHail:    "Thunderstorm with heavy hail",
}

// WeatherCatalog translates WMO weather codes into labels for one language.
// The zero value is not usable; use NewWeatherCatalog.
type WeatherCatalog struct {
	descriptions  map[WeatherCode]string
	unknownLabel  string
	unknownFormat string
}

// NewWeatherCatalog returns the catalog for the given language.
// Unsupported languages get the Japanese catalog.
func NewWeatherCatalog(language string) WeatherCatalog {
	if language == LanguageEnglish {
		return WeatherCatalog{
			descriptions:  englishDescriptions,
			unknownLabel:  "unknown",
			unknownFormat: "unknown code: %d",
		}
	}
	return WeatherCatalog{
		descriptions:  japaneseDescriptions,
		unknownLabel:  "不明",
		unknownFormat: "不明なコード: %d",
	}
}

// Describe returns the label for a weather code. Codes outside the WMO
// table produce an "unknown code" label that includes the code.
func (c WeatherCatalog) Describe(code int) string {
	if desc, ok := c.descriptions[WeatherCode(code)]; ok {
		return desc
	}
	return fmt.Sprintf(c.unknownFormat, code)
}

// UnknownLabel is the description used when no code is available at all
func (c WeatherCatalog) UnknownLabel() string {
	return c.unknownLabel
}

// Codes returns every code the catalog knows about
func (c WeatherCatalog) Codes() []WeatherCode {
	codes := make([]WeatherCode, 0, len(c.descriptions))
	for code := range c.descriptions {
		codes = append(codes, code)
	}
	return codes
}
