package api

import (
	"context"
	"net/http"
	"net/url"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/samber/lo"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/net/http/httpproxy"

	apperrors "github.com/kbukum/untappd/errors"
	"github.com/kbukum/untappd/httpclient"
	"github.com/kbukum/untappd/logger"
	"github.com/kbukum/untappd/observability"
	"github.com/kbukum/untappd/security"
	"github.com/kbukum/untappd/util"
	"github.com/kbukum/untappd/version"
)

const (
	// DefaultConnectTimeout bounds dialing and the TLS handshake.
	DefaultConnectTimeout = 60 * time.Second
	// DefaultReadTimeout bounds waiting for and reading the response.
	DefaultReadTimeout = 60 * time.Second

	// HeaderRequestID carries the per-exchange request id.
	HeaderRequestID = "X-Request-ID"
	headerContentType = "Content-Type"
	contentTypeJSON   = "application/json"
)

// Service owns the connection configuration for one API family and performs
// the GET/POST exchanges. Configure it before sharing; Get, Post and Decode
// are safe for concurrent use.
type Service struct {
	mu             sync.RWMutex
	baseURL        string
	apiKey         string
	headers        map[string]string
	connectTimeout time.Duration
	readTimeout    time.Duration
	userAgent      string
	proxy          *httpproxy.Config
	tls            *security.TLSConfig

	// transport is rebuilt lazily after a timeout change unless injected.
	transport httpclient.Doer
	injected  bool

	codec   *Codec
	log     *logger.Logger
	metrics *observability.Metrics
}

// ServiceOption configures a Service at construction.
type ServiceOption func(*Service)

// WithBaseURL sets the scheme and host prepended to every URL template.
func WithBaseURL(baseURL string) ServiceOption {
	return func(s *Service) { s.baseURL = baseURL }
}

// WithCodec replaces the default codec.
func WithCodec(c *Codec) ServiceOption {
	return func(s *Service) { s.codec = c }
}

// WithTransport injects the collaborator performing the HTTP exchange.
// Timeout setters have no effect on an injected transport.
func WithTransport(d httpclient.Doer) ServiceOption {
	return func(s *Service) {
		s.transport = d
		s.injected = d != nil
	}
}

// WithLogger sets the service logger.
func WithLogger(l *logger.Logger) ServiceOption {
	return func(s *Service) { s.log = l }
}

// WithMetrics records call metrics on m.
func WithMetrics(m *observability.Metrics) ServiceOption {
	return func(s *Service) { s.metrics = m }
}

// WithUserAgent sets the User-Agent sent with every request.
func WithUserAgent(ua string) ServiceOption {
	return func(s *Service) { s.userAgent = ua }
}

// WithProxy overrides the proxy settings read from the environment.
func WithProxy(cfg *httpproxy.Config) ServiceOption {
	return func(s *Service) { s.proxy = cfg }
}

// WithTLS customizes certificate verification for the default transport.
func WithTLS(cfg *security.TLSConfig) ServiceOption {
	return func(s *Service) { s.tls = cfg }
}

// NewService creates a service with 60s connect and read timeouts and the
// build's User-Agent.
func NewService(opts ...ServiceOption) *Service {
	s := &Service{
		headers:        make(map[string]string),
		connectTimeout: DefaultConnectTimeout,
		readTimeout:    DefaultReadTimeout,
		codec:          DefaultCodec,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.log == nil {
		s.log = logger.Get("api")
	}
	if s.userAgent == "" {
		s.userAgent = version.UserAgent()
	}
	return s
}

// BaseURL returns the scheme and host prepended to URL templates.
func (s *Service) BaseURL() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.baseURL
}

// SetAPIKey sets the key attached to every request. An empty key is still
// sent as key=.
func (s *Service) SetAPIKey(key string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.apiKey = key
}

// APIKey returns the configured API key.
func (s *Service) APIKey() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.apiKey
}

// SetAuthentication stores a Basic Authorization header built from username
// and the SHA-1 of the user's password. Both must be non-empty; on error the
// headers are left untouched.
func (s *Service) SetAuthentication(username, passwordSHA string) error {
	if username == "" {
		return apperrors.InvalidArgument("username", "Username must not be empty.")
	}
	if passwordSHA == "" {
		return apperrors.InvalidArgument("password_sha", "Password SHA must not be empty.")
	}
	s.SetHeader(httpclient.HeaderAuthorization, httpclient.BasicAuthorization(username, passwordSHA))
	return nil
}

// SetConnectTimeout sets the dial and TLS handshake timeout.
func (s *Service) SetConnectTimeout(d time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.connectTimeout = d
	s.resetTransportLocked()
}

// SetReadTimeout sets the response timeout.
func (s *Service) SetReadTimeout(d time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.readTimeout = d
	s.resetTransportLocked()
}

// Timeouts returns the connect and read timeouts.
func (s *Service) Timeouts() (connect, read time.Duration) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.connectTimeout, s.readTimeout
}

// SetHeader stores an outgoing header, replacing any prior value. An empty
// value removes the header.
func (s *Service) SetHeader(name, value string) {
	name = http.CanonicalHeaderKey(name)
	s.mu.Lock()
	defer s.mu.Unlock()
	if value == "" {
		delete(s.headers, name)
		return
	}
	s.headers[name] = value
}

// Header returns the value of an outgoing header.
func (s *Service) Header(name string) (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.headers[http.CanonicalHeaderKey(name)]
	return v, ok
}

// HeaderNames returns the outgoing header names in sorted order.
func (s *Service) HeaderNames() []string {
	s.mu.RLock()
	names := lo.Keys(s.headers)
	s.mu.RUnlock()
	sort.Strings(names)
	return names
}

// Headers returns a copy of the outgoing headers.
func (s *Service) Headers() map[string]string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return lo.Assign(s.headers)
}

// Codec returns the codec used for requests and responses.
func (s *Service) Codec() *Codec { return s.codec }

// Get performs a GET against an absolute URL and parses the response.
func (s *Service) Get(ctx context.Context, rawURL string) (Element, error) {
	return s.exchange(ctx, http.MethodGet, rawURL, nil)
}

// Post performs a POST carrying body as JSON and parses the response.
func (s *Service) Post(ctx context.Context, rawURL, body string) (Element, error) {
	return s.exchange(ctx, http.MethodPost, rawURL, []byte(body))
}

// Decode maps a parsed element onto v.
func (s *Service) Decode(e Element, v any) error {
	return s.codec.Decode(e, v)
}

// DecodeString maps JSON text onto v.
func (s *Service) DecodeString(text string, v any) error {
	return s.codec.DecodeString(text, v)
}

func (s *Service) exchange(ctx context.Context, method, rawURL string, body []byte) (Element, error) {
	doer, err := s.doer()
	if err != nil {
		return Element{}, err
	}

	requestID := uuid.NewString()
	headers := s.Headers()
	headers[HeaderRequestID] = requestID
	if body != nil {
		headers[headerContentType] = contentTypeJSON
	}

	masked := util.MaskQueryParam(rawURL, paramAPIKey, 4)
	ctx, span := observability.StartSpan(ctx, observability.SpanHTTPRequest, trace.WithSpanKind(trace.SpanKindClient))
	defer span.End()
	span.SetAttributes(
		attribute.String(observability.AttrMethod, method),
		attribute.String(observability.AttrURL, masked),
		attribute.String(observability.AttrRequestID, requestID),
	)

	start := time.Now()
	resp, err := doer.Do(ctx, httpclient.Request{
		Method:  method,
		URL:     rawURL,
		Headers: headers,
		Body:    body,
	})
	fields := logger.Fields(
		logger.FieldRequestID, requestID,
		logger.FieldMethod, method,
		logger.FieldURL, masked,
	)
	if sc := span.SpanContext(); sc.IsValid() {
		fields[logger.FieldTraceID] = sc.TraceID().String()
		fields[logger.FieldSpanID] = sc.SpanID().String()
	}
	if resp != nil {
		fields[logger.FieldStatus] = resp.StatusCode
		span.SetAttributes(attribute.Int(observability.AttrHTTPStatus, resp.StatusCode))
	}
	fields = logger.MergeWithDuration(fields, time.Since(start))

	if err != nil {
		fields[logger.FieldError] = err.Error()
		s.log.Warn("api request failed", fields)
		observability.SetSpanError(ctx, err)
		return Element{}, transportError(method, rawURL, err)
	}
	s.log.Debug("api request completed", fields)

	return s.codec.Parse(resp.Body)
}

// doer returns the transport, building the default adapter on first use
// after a configuration change.
func (s *Service) doer() (httpclient.Doer, error) {
	s.mu.RLock()
	d := s.transport
	s.mu.RUnlock()
	if d != nil {
		return d, nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.transport != nil {
		return s.transport, nil
	}
	adapter, err := httpclient.New(httpclient.Config{
		ConnectTimeout: s.connectTimeout,
		ReadTimeout:    s.readTimeout,
		UserAgent:      s.userAgent,
		Proxy:          s.proxy,
		TLS:            s.tls,
	})
	if err != nil {
		return nil, apperrors.InvalidArgument("transport", err.Error()).WithCause(err)
	}
	s.transport = adapter
	return adapter, nil
}

func (s *Service) resetTransportLocked() {
	if !s.injected {
		s.transport = nil
	}
}

// parseErrorResponse decodes the server payload carried by a failed
// exchange. Only payloads with a non-empty message are returned.
func (s *Service) parseErrorResponse(err error) *ErrorResponse {
	httpErr, ok := httpclient.AsError(err)
	if !ok || len(httpErr.Body) == 0 {
		return nil
	}
	var resp ErrorResponse
	if s.codec.Unmarshal(httpErr.Body, &resp) != nil || resp.Message == "" {
		return nil
	}
	if resp.HTTPCode == 0 {
		resp.HTTPCode = httpErr.StatusCode
	}
	return &resp
}

func transportError(method, rawURL string, err error) error {
	host := rawURL
	if u, perr := url.Parse(rawURL); perr == nil && u.Host != "" {
		host = u.Host
	}
	switch {
	case httpclient.IsTimeout(err):
		return apperrors.Timeout(method+" "+host, err)
	case httpclient.IsStatus(err):
		return apperrors.ExternalServiceError(host, err)
	default:
		return apperrors.ConnectionFailed(host, err)
	}
}
