package untappd

import (
	"time"

	"github.com/kbukum/untappd/api"
	"github.com/kbukum/untappd/config"
)

// Manager stamps shared connection settings onto every service it creates.
// Zero values leave the service defaults untouched.
type Manager struct {
	apiKey         string
	username       string
	passwordSHA    string
	connectTimeout time.Duration
	readTimeout    time.Duration
	opts           []api.ServiceOption
}

// NewManager returns a manager with no defaults; opts are passed to every
// service.
func NewManager(opts ...api.ServiceOption) *Manager {
	return &Manager{opts: opts}
}

// NewManagerFromSettings builds a manager from loaded settings.
func NewManagerFromSettings(s config.Settings, opts ...api.ServiceOption) *Manager {
	c := s.Client
	if c.BaseURL != "" {
		opts = append(opts, api.WithBaseURL(c.BaseURL))
	}
	if c.TLS.Enabled() {
		tls := c.TLS
		opts = append(opts, api.WithTLS(&tls))
	}
	return NewManager(opts...).
		WithAPIKey(c.APIKey).
		WithAuthentication(c.Username, c.PasswordSHA).
		WithConnectTimeout(c.ConnectTimeout).
		WithReadTimeout(c.ReadTimeout)
}

// WithAPIKey sets the key given to new services.
func (m *Manager) WithAPIKey(key string) *Manager {
	m.apiKey = key
	return m
}

// WithAuthentication sets the credentials given to new services.
func (m *Manager) WithAuthentication(username, passwordSHA string) *Manager {
	m.username, m.passwordSHA = username, passwordSHA
	return m
}

// WithConnectTimeout sets the connect timeout given to new services.
func (m *Manager) WithConnectTimeout(d time.Duration) *Manager {
	m.connectTimeout = d
	return m
}

// WithReadTimeout sets the read timeout given to new services.
func (m *Manager) WithReadTimeout(d time.Duration) *Manager {
	m.readTimeout = d
	return m
}

// SearchService returns a configured search service. It fails when only one
// of username and password hash is set.
func (m *Manager) SearchService() (*SearchService, error) {
	s := NewSearchService(m.opts...)
	if err := m.apply(s.Service); err != nil {
		return nil, err
	}
	return s, nil
}

func (m *Manager) apply(s *api.Service) error {
	if m.apiKey != "" {
		s.SetAPIKey(m.apiKey)
	}
	if m.username != "" || m.passwordSHA != "" {
		if err := s.SetAuthentication(m.username, m.passwordSHA); err != nil {
			return err
		}
	}
	if m.connectTimeout > 0 {
		s.SetConnectTimeout(m.connectTimeout)
	}
	if m.readTimeout > 0 {
		s.SetReadTimeout(m.readTimeout)
	}
	return nil
}
