package httpclient

import (
	"fmt"
	"time"

	"golang.org/x/net/http/httpproxy"

	"github.com/kbukum/untappd/security"
)

const (
	defaultConnectTimeout = 60 * time.Second
	defaultReadTimeout    = 60 * time.Second
)

// Config configures the HTTP transport.
type Config struct {
	// ConnectTimeout bounds dialing and the TLS handshake. Defaults to 60s.
	ConnectTimeout time.Duration `yaml:"connect_timeout" mapstructure:"connect_timeout"`

	// ReadTimeout bounds waiting for and reading the response. Defaults to 60s.
	ReadTimeout time.Duration `yaml:"read_timeout" mapstructure:"read_timeout"`

	// UserAgent is sent with every request when non-empty.
	UserAgent string `yaml:"user_agent" mapstructure:"user_agent"`

	// Headers are default headers applied to all requests.
	Headers map[string]string `yaml:"headers" mapstructure:"headers"`

	// Proxy overrides the proxy settings read from HTTP_PROXY, HTTPS_PROXY
	// and NO_PROXY.
	Proxy *httpproxy.Config `yaml:"-" mapstructure:"-"`

	// TLS customizes certificate verification. Nil keeps the system roots.
	TLS *security.TLSConfig `yaml:"tls" mapstructure:"tls"`
}

// ApplyDefaults fills in zero-value fields with sensible defaults.
func (c *Config) ApplyDefaults() {
	if c.ConnectTimeout <= 0 {
		c.ConnectTimeout = defaultConnectTimeout
	}
	if c.ReadTimeout <= 0 {
		c.ReadTimeout = defaultReadTimeout
	}
}

// Validate checks that the configuration is valid.
func (c *Config) Validate() error {
	if c.ConnectTimeout <= 0 {
		return fmt.Errorf("httpclient: connect timeout must be positive")
	}
	if c.ReadTimeout <= 0 {
		return fmt.Errorf("httpclient: read timeout must be positive")
	}
	return c.TLS.Validate()
}
