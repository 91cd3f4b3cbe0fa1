package weather

import (
	"math"
	"time"
)

const maxUVIndex = 11

// uvProfile holds the percentage applied to the cloud-based UV base and the
// ceiling for a condition family
type uvProfile struct {
	percent int
	cap     int
}

var uvProfiles = map[ConditionFamily]uvProfile{
	FamilyClear:                   {percent: 100, cap: 11},
	FamilyFewClouds:               {percent: 100, cap: 11},
	FamilyScatteredClouds:         {percent: 70, cap: 8},
	FamilyBrokenClouds:            {percent: 70, cap: 8},
	FamilyOvercast:                {percent: 50, cap: 6},
	FamilyAtmosphere:              {percent: 40, cap: 4},
	FamilyDrizzle:                 {percent: 30, cap: 3},
	FamilyRain:                    {percent: 30, cap: 3},
	FamilyUnassignedPrecipitation: {percent: 30, cap: 3},
	FamilySnow:                    {percent: 60, cap: 5},
	FamilyThunderstorm:            {percent: 20, cap: 2},
}

var unknownUVProfile = uvProfile{percent: 100, cap: 5}

var rainWeights = map[ConditionFamily]float64{
	FamilyClear:           0.1,
	FamilyFewClouds:       0.2,
	FamilyScatteredClouds: 0.3,
	FamilyBrokenClouds:    0.4,
	FamilyOvercast:        0.5,
	FamilyAtmosphere:      0.6,
	FamilyDrizzle:         0.8,
	FamilyRain:            0.9,
	FamilyThunderstorm:    0.95,
	FamilySnow:            0.7,
}

const unknownRainWeight = 0.4

// EstimateUVIndex approximates the UV index from cloud cover and condition.
// The result is always 0 at night and never above 11.
func EstimateUVIndex(code, clouds int, isDay bool) int {
	if !isDay {
		return 0
	}

	clouds = clamp(clouds, 0, 100)
	base := roundHalfUp(float64(maxUVIndex) * float64(100-clouds) / 100)

	profile, ok := uvProfiles[Classify(code)]
	if !ok {
		profile = unknownUVProfile
	}

	scaled := base * profile.percent / 100
	if scaled > profile.cap {
		return profile.cap
	}
	return scaled
}

// EstimateRainProbability approximates the chance of rain in percent
func EstimateRainProbability(code, humidity, clouds int) int {
	humidity = clamp(humidity, 0, 100)
	clouds = clamp(clouds, 0, 100)

	weight, ok := rainWeights[Classify(code)]
	if !ok {
		weight = unknownRainWeight
	}

	base := (float64(humidity)*0.5 + float64(clouds)*0.5) / 100
	return clamp(roundHalfUp(base*weight*100), 0, 100)
}

// Air quality tiers and their display colors
const (
	AirQualityGood      = "Good"
	AirQualityModerate  = "Moderate"
	AirQualityUnhealthy = "Unhealthy"
)

// EstimateAirQuality derives a rough air quality index from temperature and season.
// Cold winters mean more heating emissions, warm days better dispersion.
func EstimateAirQuality(tempC, latitude float64, month time.Month) AirQuality {
	winter := isWinter(latitude, month)

	var index int
	switch {
	case winter && tempC < -10:
		index = 180
	case winter && tempC < 0:
		index = 150
	case tempC > 25:
		index = 50
	default:
		index = 80
	}

	return airQualityForIndex(index)
}

func airQualityForIndex(index int) AirQuality {
	switch {
	case index <= 50:
		return AirQuality{Index: index, Tier: AirQualityGood, ColorHex: "#2dbe8d"}
	case index <= 100:
		return AirQuality{Index: index, Tier: AirQualityModerate, ColorHex: "#f9cf5f"}
	default:
		return AirQuality{Index: index, Tier: AirQualityUnhealthy, ColorHex: "#ff7676"}
	}
}

// isWinter uses meteorological winter: Dec-Feb north of the equator, Jun-Aug south of it
func isWinter(latitude float64, month time.Month) bool {
	if latitude < 0 {
		return month == time.June || month == time.July || month == time.August
	}
	return month == time.December || month == time.January || month == time.February
}

// roundHalfUp rounds to the nearest integer with .5 going towards +Inf
func roundHalfUp(x float64) int {
	return int(math.Floor(x + 0.5))
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
