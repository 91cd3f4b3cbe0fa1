package ports

// ApplicationPorts aggregates all ports for dependency injection
type ApplicationPorts struct {
	// Weather
	WeatherProvider WeatherProvider
	Geocoder        Geocoder

	// Infrastructure
	ConfigProvider ConfigProvider
	Metrics        MetricsCollector
	Logger         Logger
}
