package config

import (
	"fmt"
	"time"

	"github.com/kbukum/untappd/logger"
	"github.com/kbukum/untappd/security"
	"github.com/kbukum/untappd/validation"
)

const (
	defaultConnectTimeout = 60 * time.Second
	defaultReadTimeout    = 60 * time.Second
)

// ClientSettings configures the API client.
type ClientSettings struct {
	APIKey         string        `yaml:"api_key" mapstructure:"api_key"`
	Username       string        `yaml:"username" mapstructure:"username" validate:"required_with=PasswordSHA"`
	PasswordSHA    string        `yaml:"password_sha" mapstructure:"password_sha" validate:"required_with=Username"`
	ConnectTimeout time.Duration `yaml:"connect_timeout" mapstructure:"connect_timeout" validate:"gte=0"`
	ReadTimeout    time.Duration `yaml:"read_timeout" mapstructure:"read_timeout" validate:"gte=0"`
	BaseURL        string        `yaml:"base_url" mapstructure:"base_url" validate:"omitempty,http_url"`

	TLS security.TLSConfig `yaml:"tls" mapstructure:"tls"`
}

// HasCredentials reports whether basic authentication is configured.
func (c ClientSettings) HasCredentials() bool {
	return c.Username != "" && c.PasswordSHA != ""
}

// TracingSettings configures OpenTelemetry export.
type TracingSettings struct {
	Enabled    bool    `yaml:"enabled" mapstructure:"enabled"`
	Endpoint   string  `yaml:"endpoint" mapstructure:"endpoint" validate:"required_if=Enabled true"`
	Insecure   bool    `yaml:"insecure" mapstructure:"insecure"`
	SampleRate float64 `yaml:"sample_rate" mapstructure:"sample_rate" validate:"gte=0,lte=1"`
}

// Settings is the full configuration of the untappd CLI.
//
//	untappd:
//	  api_key: ...
//	  username: jake
//	  password_sha: 5baa61e4...
//	  connect_timeout: 10s
//	logging:
//	  level: debug
type Settings struct {
	Environment string          `yaml:"environment" mapstructure:"environment" validate:"oneof=development staging production"`
	Client      ClientSettings  `yaml:"untappd" mapstructure:"untappd"`
	Logging     logger.Config   `yaml:"logging" mapstructure:"logging"`
	Tracing     TracingSettings `yaml:"tracing" mapstructure:"tracing"`
}

// ApplyDefaults fills in zero-value fields.
func (s *Settings) ApplyDefaults() {
	if s.Environment == "" {
		s.Environment = "development"
	}
	if s.Client.ConnectTimeout == 0 {
		s.Client.ConnectTimeout = defaultConnectTimeout
	}
	if s.Client.ReadTimeout == 0 {
		s.Client.ReadTimeout = defaultReadTimeout
	}
	if s.Tracing.Endpoint == "" {
		s.Tracing.Endpoint = "localhost:4318"
	}
	if s.Tracing.SampleRate == 0 {
		s.Tracing.SampleRate = 1.0
	}
	s.Logging.ApplyDefaults()
}

// Validate checks the settings after defaults are applied.
func (s *Settings) Validate() error {
	if err := validation.Validate(s); err != nil {
		return err
	}
	if err := s.Logging.Validate(); err != nil {
		return fmt.Errorf("config.%w", err)
	}
	if err := s.Client.TLS.Validate(); err != nil {
		return fmt.Errorf("config.untappd.%w", err)
	}
	return nil
}

// Load resolves, reads, defaults and validates the settings for appName.
func Load(appName string, opts ...LoaderOption) (*Settings, error) {
	var s Settings
	if err := LoadConfig(appName, &s, opts...); err != nil {
		return nil, err
	}
	s.ApplyDefaults()
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return &s, nil
}
