package security

import (
	"crypto/tls"
	"crypto/x509"
	"fmt"
	"os"
)

// TLSConfig describes how the client verifies and authenticates to the API
// host. The zero value means the system defaults.
type TLSConfig struct {
	// CAFile is a PEM bundle that replaces the system roots.
	CAFile string `yaml:"ca_file" mapstructure:"ca_file"`

	// CertFile and KeyFile hold a client certificate. Both or neither.
	CertFile string `yaml:"cert_file" mapstructure:"cert_file"`
	KeyFile  string `yaml:"key_file" mapstructure:"key_file"`

	// ServerName overrides the name checked against the server certificate.
	ServerName string `yaml:"server_name" mapstructure:"server_name"`

	// SkipVerify disables certificate verification. Development only.
	SkipVerify bool `yaml:"skip_verify" mapstructure:"skip_verify"`
}

// Enabled reports whether any setting differs from the system defaults.
func (c *TLSConfig) Enabled() bool {
	return c != nil && (c.SkipVerify || c.CAFile != "" || c.CertFile != "" || c.KeyFile != "" || c.ServerName != "")
}

// Validate checks that the certificate and key are configured together.
func (c *TLSConfig) Validate() error {
	if c == nil {
		return nil
	}
	if (c.CertFile == "") != (c.KeyFile == "") {
		return fmt.Errorf("tls: cert_file and key_file must be set together")
	}
	return nil
}

// Build returns the *tls.Config for the transport, or nil when c is not
// Enabled. TLS 1.2 is the minimum version.
func (c *TLSConfig) Build() (*tls.Config, error) {
	if !c.Enabled() {
		return nil, nil
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}

	cfg := &tls.Config{
		MinVersion:         tls.VersionTLS12,
		ServerName:         c.ServerName,
		InsecureSkipVerify: c.SkipVerify, //nolint:gosec // opt-in for development hosts
	}
	if c.CAFile != "" {
		pool, err := loadCertPool(c.CAFile)
		if err != nil {
			return nil, err
		}
		cfg.RootCAs = pool
	}
	if c.CertFile != "" {
		cert, err := tls.LoadX509KeyPair(c.CertFile, c.KeyFile)
		if err != nil {
			return nil, fmt.Errorf("tls: load client certificate: %w", err)
		}
		cfg.Certificates = []tls.Certificate{cert}
	}
	return cfg, nil
}

func loadCertPool(path string) (*x509.CertPool, error) {
	pem, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("tls: read CA bundle: %w", err)
	}
	pool := x509.NewCertPool()
	if !pool.AppendCertsFromPEM(pem) {
		return nil, fmt.Errorf("tls: no certificates found in %s", path)
	}
	return pool, nil
}
