package weather

// ConditionFamily is the coarse bucket a provider condition code falls into
type ConditionFamily int

const (
	FamilyUnknown ConditionFamily = iota
	FamilyThunderstorm
	FamilyDrizzle
	FamilyRain
	FamilySnow
	FamilyAtmosphere
	FamilyClear
	FamilyFewClouds
	FamilyScatteredClouds
	FamilyBrokenClouds
	FamilyOvercast
	// FamilyUnassignedPrecipitation covers the 4xx block the provider never issues.
	// It reads as precipitation for icon and UV but carries no rain weight of its own.
	FamilyUnassignedPrecipitation
)

// Condition code used when a forecast day carries no conditions at all
const ClearSkyCode = 800

// Icon codes rendered by callers
const (
	IconClearDay          = "clear_day"
	IconClearNight        = "clear_night"
	IconPartlyCloudyDay   = "partly_cloudy_day"
	IconPartlyCloudyNight = "partly_cloudy_night"
	IconCloudy            = "cloudy"
	IconRainy             = "rainy"
	IconThunderstorm      = "thunderstorm"
	IconSnowy             = "snowy"
	IconFoggy             = "foggy"
)

// Classify maps a provider condition code to its family.
// Both the mapper and the aggregator go through here so range boundaries stay identical.
func Classify(code int) ConditionFamily {
	switch {
	case code >= 200 && code < 300:
		return FamilyThunderstorm
	case code >= 300 && code < 400:
		return FamilyDrizzle
	case code >= 400 && code < 500:
		return FamilyUnassignedPrecipitation
	case code >= 500 && code < 600:
		return FamilyRain
	case code >= 600 && code < 700:
		return FamilySnow
	case code >= 700 && code < 800:
		return FamilyAtmosphere
	case code == 800:
		return FamilyClear
	case code == 801:
		return FamilyFewClouds
	case code == 802:
		return FamilyScatteredClouds
	case code == 803:
		return FamilyBrokenClouds
	case code == 804:
		return FamilyOvercast
	default:
		return FamilyUnknown
	}
}

// String returns the string representation of the family
func (f ConditionFamily) String() string {
	switch f {
	case FamilyThunderstorm:
		return "thunderstorm"
	case FamilyDrizzle:
		return "drizzle"
	case FamilyRain:
		return "rain"
	case FamilySnow:
		return "snow"
	case FamilyAtmosphere:
		return "atmosphere"
	case FamilyClear:
		return "clear"
	case FamilyFewClouds:
		return "few_clouds"
	case FamilyScatteredClouds:
		return "scattered_clouds"
	case FamilyBrokenClouds:
		return "broken_clouds"
	case FamilyOvercast:
		return "overcast"
	case FamilyUnassignedPrecipitation:
		return "unassigned_precipitation"
	default:
		return "unknown"
	}
}

// Icon returns the icon code for the family. Unmapped codes render as clear sky.
func (f ConditionFamily) Icon(isDay bool) string {
	switch f {
	case FamilyFewClouds, FamilyScatteredClouds:
		if isDay {
			return IconPartlyCloudyDay
		}
		return IconPartlyCloudyNight
	case FamilyBrokenClouds, FamilyOvercast:
		return IconCloudy
	case FamilyDrizzle, FamilyRain, FamilyUnassignedPrecipitation:
		return IconRainy
	case FamilyThunderstorm:
		return IconThunderstorm
	case FamilySnow:
		return IconSnowy
	case FamilyAtmosphere:
		return IconFoggy
	default:
		if isDay {
			return IconClearDay
		}
		return IconClearNight
	}
}

// IconForCode is shorthand for Classify(code).Icon(isDay)
func IconForCode(code int, isDay bool) string {
	return Classify(code).Icon(isDay)
}

// isDayIcon reports whether a provider icon code ("01d", "10n") marks daytime
func isDayIcon(icon string) bool {
	return len(icon) > 0 && icon[len(icon)-1] == 'd'
}
