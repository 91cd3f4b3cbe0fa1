package ports

import (
	"context"
	"encoding/json"
)

const (
	// DefaultPressure is used when the provider omits main.pressure (hPa)
	DefaultPressure = 1013
)

// Coordinate is a caller supplied position. Range is not enforced here,
// out-of-range values are sent to the provider as-is.
type Coordinate struct {
	Latitude  float64 `json:"lat"`
	Longitude float64 `json:"lon"`
}

// FailureKind tells how a payload was produced when the fetch did not succeed
type FailureKind int

const (
	FailureNone FailureKind = iota
	FailureTransport
	FailureProvider
	FailureDecode
)

// String returns the string representation of the failure kind
func (f FailureKind) String() string {
	switch f {
	case FailureTransport:
		return "transport"
	case FailureProvider:
		return "provider"
	case FailureDecode:
		return "decode"
	default:
		return "none"
	}
}

// GeoPoint is the provider's {lon, lat} object
type GeoPoint struct {
	Lon float64 `json:"lon"`
	Lat float64 `json:"lat"`
}

// Condition is one entry of the provider's weather list
type Condition struct {
	ID          int    `json:"id"`
	Main        string `json:"main"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
}

// MainMetrics is the main block of the current-weather payload
type MainMetrics struct {
	Temp        float64 `json:"temp"`
	FeelsLike   float64 `json:"feels_like"`
	TempMin     float64 `json:"temp_min"`
	TempMax     float64 `json:"temp_max"`
	Pressure    int     `json:"pressure"`
	Humidity    int     `json:"humidity"`
	SeaLevel    *int    `json:"sea_level,omitempty"`
	GroundLevel *int    `json:"grnd_level,omitempty"`
}

// UnmarshalJSON applies documented defaults for fields the provider may omit
func (m *MainMetrics) UnmarshalJSON(data []byte) error {
	type alias MainMetrics
	decoded := alias{Pressure: DefaultPressure}
	if err := json.Unmarshal(data, &decoded); err != nil {
		return err
	}
	*m = MainMetrics(decoded)
	return nil
}

// Wind holds wind speed (m/s) and direction
type Wind struct {
	Speed float64  `json:"speed"`
	Deg   int      `json:"deg"`
	Gust  *float64 `json:"gust,omitempty"`
}

// Clouds holds cloudiness in percent
type Clouds struct {
	All int `json:"all"`
}

// Precipitation holds rain or snow volume for the last 1h / 3h (mm)
type Precipitation struct {
	OneHour    float64 `json:"1h,omitempty"`
	ThreeHours float64 `json:"3h,omitempty"`
}

// Sys holds country and sun times of the current-weather payload
type Sys struct {
	Type    *int   `json:"type,omitempty"`
	ID      *int   `json:"id,omitempty"`
	Country string `json:"country"`
	Sunrise int64  `json:"sunrise"`
	Sunset  int64  `json:"sunset"`
}

// CurrentWeatherPayload is the /weather response. Everything except Cod is
// optional because error responses only carry {cod, message}.
type CurrentWeatherPayload struct {
	Cod        StatusCode     `json:"cod"`
	Message    FlexString     `json:"message,omitempty"`
	Coord      *GeoPoint      `json:"coord,omitempty"`
	Weather    []Condition    `json:"weather"`
	Base       string         `json:"base,omitempty"`
	Main       *MainMetrics   `json:"main,omitempty"`
	Visibility *int           `json:"visibility,omitempty"`
	Wind       *Wind          `json:"wind,omitempty"`
	Rain       *Precipitation `json:"rain,omitempty"`
	Snow       *Precipitation `json:"snow,omitempty"`
	Clouds     *Clouds        `json:"clouds,omitempty"`
	Dt         int64          `json:"dt,omitempty"`
	Sys        *Sys           `json:"sys,omitempty"`
	Timezone   int            `json:"timezone,omitempty"`
	ID         int64          `json:"id,omitempty"`
	Name       string         `json:"name"`

	Failure FailureKind `json:"-"`
}

// Succeeded reports whether the provider marked the payload as successful
func (p *CurrentWeatherPayload) Succeeded() bool {
	return p != nil && p.Cod == 200
}

// ForecastMain is the main block of a forecast sample
type ForecastMain struct {
	Temp        float64 `json:"temp"`
	FeelsLike   float64 `json:"feels_like"`
	TempMin     float64 `json:"temp_min"`
	TempMax     float64 `json:"temp_max"`
	Pressure    int     `json:"pressure"`
	SeaLevel    int     `json:"sea_level"`
	GroundLevel int     `json:"grnd_level"`
	Humidity    int     `json:"humidity"`
	TempKf      float64 `json:"temp_kf"`
}

// ForecastSys carries the part of day ("d" or "n") of a sample
type ForecastSys struct {
	Pod string `json:"pod"`
}

// ForecastEntry is one 3-hour forecast sample
type ForecastEntry struct {
	Dt         int64          `json:"dt"`
	Main       ForecastMain   `json:"main"`
	Weather    []Condition    `json:"weather"`
	Clouds     Clouds         `json:"clouds"`
	Wind       Wind           `json:"wind"`
	Visibility int            `json:"visibility"`
	Pop        float64        `json:"pop"`
	Rain       *Precipitation `json:"rain,omitempty"`
	Snow       *Precipitation `json:"snow,omitempty"`
	Sys        ForecastSys    `json:"sys"`
	DtText     string         `json:"dt_txt"`
}

// City is the forecast's city metadata
type City struct {
	ID         int64    `json:"id"`
	Name       string   `json:"name"`
	Coord      GeoPoint `json:"coord"`
	Country    string   `json:"country"`
	Population int      `json:"population"`
	Timezone   int      `json:"timezone"`
	Sunrise    int64    `json:"sunrise"`
	Sunset     int64    `json:"sunset"`
}

// ForecastPayload is the /forecast response. Cod is a numeric string here,
// unlike the integer cod of the /weather endpoint.
type ForecastPayload struct {
	Cod     FlexString      `json:"cod"`
	Message FlexString      `json:"message"`
	Count   int             `json:"cnt"`
	List    []ForecastEntry `json:"list"`
	City    City            `json:"city"`

	Failure FailureKind `json:"-"`
}

// Succeeded reports whether the provider marked the payload as successful
func (p *ForecastPayload) Succeeded() bool {
	return p != nil && p.Cod == "200"
}

// GeoPlace is one geocoding API result
type GeoPlace struct {
	Name       string            `json:"name"`
	LocalNames map[string]string `json:"local_names,omitempty"`
	Country    string            `json:"country"`
	State      string            `json:"state,omitempty"`
	Lat        float64           `json:"lat"`
	Lon        float64           `json:"lon"`
}

// WeatherProvider defines the contract for the remote weather data source.
// Implementations never return errors: every failure is encoded in the
// payload's Cod, Message and Failure fields.
type WeatherProvider interface {
	FetchCurrentWeather(ctx context.Context, coord Coordinate) *CurrentWeatherPayload
	FetchForecast(ctx context.Context, coord Coordinate) *ForecastPayload
	GetProviderName() string
}

// Geocoder defines the contract for place name lookups.
// ReverseLookup returns (nil, nil) when the provider knows no place.
type Geocoder interface {
	ReverseLookup(ctx context.Context, coord Coordinate) (*GeoPlace, error)
	Search(ctx context.Context, query string, limit int) ([]GeoPlace, error)
}
