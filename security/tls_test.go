package security

import (
	"crypto/tls"
	"strings"
	"testing"

	"github.com/kbukum/untappd/security/tlstest"
)

func TestTLSConfig_DisabledBuildsNil(t *testing.T) {
	for name, cfg := range map[string]*TLSConfig{"nil": nil, "zero": {}} {
		t.Run(name, func(t *testing.T) {
			if cfg.Enabled() {
				t.Error("Enabled() = true")
			}
			got, err := cfg.Build()
			if err != nil || got != nil {
				t.Errorf("Build() = %v, %v; want nil, nil", got, err)
			}
		})
	}
}

func TestTLSConfig_Build(t *testing.T) {
	certs := tlstest.Issue(t)

	cfg := &TLSConfig{
		CAFile:     certs.CAFile,
		CertFile:   certs.CertFile,
		KeyFile:    certs.KeyFile,
		ServerName: "api.example.com",
	}
	got, err := cfg.Build()
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	if got.MinVersion != tls.VersionTLS12 {
		t.Errorf("MinVersion = %x", got.MinVersion)
	}
	if got.RootCAs == nil || len(got.Certificates) != 1 {
		t.Errorf("RootCAs=%v certificates=%d", got.RootCAs, len(got.Certificates))
	}
	if got.ServerName != "api.example.com" || got.InsecureSkipVerify {
		t.Errorf("ServerName=%q skip=%v", got.ServerName, got.InsecureSkipVerify)
	}
}

func TestTLSConfig_Errors(t *testing.T) {
	certs := tlstest.Issue(t)
	tests := []struct {
		name    string
		cfg     TLSConfig
		wantErr string
	}{
		{"cert without key", TLSConfig{CertFile: certs.CertFile}, "set together"},
		{"key without cert", TLSConfig{KeyFile: certs.KeyFile}, "set together"},
		{"missing CA", TLSConfig{CAFile: "/nonexistent/ca.pem"}, "read CA bundle"},
		{"garbage CA", TLSConfig{CAFile: tlstest.WriteFile(t, "ca.pem", "not a certificate")}, "no certificates"},
		{"swapped pair", TLSConfig{CertFile: certs.KeyFile, KeyFile: certs.CertFile}, "load client certificate"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.cfg.Build()
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("Build() error = %v, want %q", err, tt.wantErr)
			}
		})
	}
}
