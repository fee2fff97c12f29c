package observability

import "time"

// Config configures trace and metric export over OTLP/HTTP.
type Config struct {
	ServiceName    string `mapstructure:"service_name"`
	ServiceVersion string `mapstructure:"service_version"`
	Environment    string `mapstructure:"environment"`

	// Endpoint is the collector host:port, e.g. "localhost:4318".
	Endpoint string `mapstructure:"endpoint"`
	Insecure bool   `mapstructure:"insecure"`

	// SampleRate is the fraction of traces kept, 0.0 to 1.0.
	SampleRate float64 `mapstructure:"sample_rate"`
	// Interval is the metric export period. Zero uses the SDK default.
	Interval time.Duration `mapstructure:"interval"`
}

// DefaultConfig returns settings for a local collector.
func DefaultConfig(serviceName string) Config {
	return Config{
		ServiceName:    serviceName,
		ServiceVersion: "dev",
		Environment:    "development",
		Endpoint:       "localhost:4318",
		Insecure:       true,
		SampleRate:     1.0,
		Interval:       15 * time.Second,
	}
}
