package weather

import (
	"fmt"
	"strings"
)

const (
	// UnknownLocation is shown when neither the payload nor geocoding yields a name
	UnknownLocation = "Unknown location"

	// DefaultVisibility in meters, used when the provider omits it
	DefaultVisibility = 10000

	// MaxForecastDays caps the daily forecast
	MaxForecastDays = 7

	// MaxSearchResults caps city search
	MaxSearchResults = 5
)

// AirQuality is an estimated air quality reading
type AirQuality struct {
	Index    int    `json:"index"`
	Tier     string `json:"tier"`
	ColorHex string `json:"colorHex"`
}

// WeatherInfo represents current weather for a coordinate, ready for display
type WeatherInfo struct {
	LocationName     string     `json:"locationName"`
	Icon             string     `json:"icon"`
	IconCode         string     `json:"iconCode"`
	Condition        string     `json:"condition"`
	Description      string     `json:"description"`
	Temperature      int        `json:"temperature"`
	FeelsLike        float64    `json:"feelsLike"`
	FeelsLikeDisplay int        `json:"feelsLikeDisplay"`
	DayOfWeek        string     `json:"dayOfWeek"`
	IsDay            bool       `json:"isDay"`
	Humidity         int        `json:"humidity"`
	HumidityLabel    string     `json:"humidityDescription"`
	WindSpeed        float64    `json:"windSpeed"`
	Pressure         int        `json:"pressure"`
	Visibility       int        `json:"visibility"`
	Clouds           int        `json:"clouds"`
	RainProbability  int        `json:"rainProbability"`
	UVIndex          int        `json:"uvIndex"`
	AirQuality       AirQuality `json:"airQuality"`
}

// DailyForecastEntry is one calendar day of the aggregated forecast
type DailyForecastEntry struct {
	Icon      string `json:"icon"`
	DayOfWeek string `json:"dayOfWeek"`
	Date      string `json:"date"`
	MinTemp   string `json:"minTemp"`
	MaxTemp   string `json:"maxTemp"`
	Selected  bool   `json:"selected"`
}

// CitySearchResult is a search candidate. ID only reflects result order.
type CitySearchResult struct {
	ID          int     `json:"id"`
	Name        string  `json:"name"`
	Country     string  `json:"country"`
	State       string  `json:"state,omitempty"`
	DisplayName string  `json:"displayName"`
	Latitude    float64 `json:"lat"`
	Longitude   float64 `json:"lon"`
}

// Overview bundles current weather with the daily forecast
type Overview struct {
	Current  *WeatherInfo         `json:"current"`
	Forecast []DailyForecastEntry `json:"forecast"`
}

// HumidityDescription provides a human-readable description of a humidity level
func HumidityDescription(humidity int) string {
	switch {
	case humidity < 30:
		if humidity < 20 {
			return "Very dry"
		}
		return "Dry"
	case humidity < 60:
		return "Comfortable"
	case humidity < 80:
		return "Humid"
	default:
		return "Very humid"
	}
}

// String returns a string representation of the weather
func (w *WeatherInfo) String() string {
	return fmt.Sprintf("%s: %d°C, %d%% humidity, %s",
		w.LocationName, w.Temperature, w.Humidity, w.Condition)
}

// displayName joins name, state and country, skipping empty parts
func displayName(name, state, country string) string {
	parts := make([]string, 0, 3)
	for _, part := range []string{name, state, country} {
		if strings.TrimSpace(part) != "" {
			parts = append(parts, part)
		}
	}
	return strings.Join(parts, ", ")
}
