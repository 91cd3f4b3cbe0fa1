package ports

import (
	"context"
	"time"
)

// ProviderConfig represents weather provider configuration
type ProviderConfig struct {
	APIKey         string
	BaseURL        string
	GeoBaseURL     string
	RequestTimeout time.Duration
	EnableLogging  bool
	EnableMetrics  bool
	LogFilePath    string
}

// ServerConfig represents server configuration
type ServerConfig struct {
	Port    int
	GinMode string
}

// ConfigProvider defines the contract for configuration management
type ConfigProvider interface {
	GetProviderConfig() ProviderConfig
	GetServerConfig() ServerConfig
}

// Logger defines the contract for structured logging
type Logger interface {
	Debug(msg string, fields ...Field)
	Info(msg string, fields ...Field)
	Warn(msg string, fields ...Field)
	Error(msg string, fields ...Field)
}

// Field represents a log field
type Field struct {
	Key   string
	Value interface{}
}

// F creates a log field
func F(key string, value interface{}) Field {
	return Field{Key: key, Value: value}
}

// MetricsCollector defines the contract for metrics collection.
// outcome is a FailureKind string ("none" on success).
type MetricsCollector interface {
	RecordProviderCall(ctx context.Context, provider, endpoint, outcome string, duration time.Duration)
}
