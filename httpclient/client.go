package httpclient

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"

	"golang.org/x/net/http/httpproxy"
)

// Adapter is the HTTP transport with connect/read timeouts and proxy support.
type Adapter struct {
	httpClient *http.Client
	config     Config
	proxy      func(*url.URL) (*url.URL, error)
}

var _ Doer = (*Adapter)(nil)

// New creates a new HTTP adapter with the given configuration.
func New(cfg Config) (*Adapter, error) {
	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	proxyCfg := cfg.Proxy
	if proxyCfg == nil {
		proxyCfg = httpproxy.FromEnvironment()
	}

	a := &Adapter{
		config: cfg,
		proxy:  proxyCfg.ProxyFunc(),
	}

	dialer := &net.Dialer{Timeout: cfg.ConnectTimeout}
	transport := http.DefaultTransport.(*http.Transport).Clone()
	transport.DialContext = dialer.DialContext
	transport.TLSHandshakeTimeout = cfg.ConnectTimeout
	transport.ResponseHeaderTimeout = cfg.ReadTimeout
	transport.Proxy = func(req *http.Request) (*url.URL, error) {
		return a.proxy(req.URL)
	}
	if cfg.TLS.Enabled() {
		tlsCfg, err := cfg.TLS.Build()
		if err != nil {
			return nil, err
		}
		transport.TLSClientConfig = tlsCfg
	}

	a.httpClient = &http.Client{
		Transport: transport,
		Timeout:   cfg.ConnectTimeout + cfg.ReadTimeout,
	}
	return a, nil
}

// Config returns the effective configuration, defaults applied.
func (a *Adapter) Config() Config {
	return a.config
}

// ProxyURL reports the proxy the adapter would use for target, or nil.
func (a *Adapter) ProxyURL(target *url.URL) (*url.URL, error) {
	return a.proxy(target)
}

// Unwrap returns the underlying *http.Client for advanced use cases.
func (a *Adapter) Unwrap() *http.Client {
	return a.httpClient
}

// Do executes an HTTP request and returns the complete response. A non-2xx
// status yields both the response and a classified *Error.
func (a *Adapter) Do(ctx context.Context, req Request) (*Response, error) {
	httpReq, err := a.buildRequest(ctx, req)
	if err != nil {
		return nil, err
	}

	resp, err := a.httpClient.Do(httpReq)
	if err != nil {
		return nil, classifyTransportError(ctx, err)
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, classifyTransportError(ctx, fmt.Errorf("read response body: %w", err))
	}

	result := &Response{
		StatusCode: resp.StatusCode,
		Headers:    flattenHeaders(resp.Header),
		Body:       body,
	}

	if classErr := ClassifyStatusCode(resp.StatusCode, body); classErr != nil {
		return result, classErr
	}

	return result, nil
}

// buildRequest constructs an *http.Request from the adapter config and request.
func (a *Adapter) buildRequest(ctx context.Context, req Request) (*http.Request, error) {
	var body io.Reader
	if req.Body != nil {
		body = bytes.NewReader(req.Body)
	}

	httpReq, err := http.NewRequestWithContext(ctx, req.Method, req.URL, body)
	if err != nil {
		return nil, NewRequestError(fmt.Errorf("create request: %w", err))
	}

	for k, v := range a.config.Headers {
		httpReq.Header.Set(k, v)
	}
	for k, v := range req.Headers {
		httpReq.Header.Set(k, v)
	}
	if a.config.UserAgent != "" && httpReq.Header.Get("User-Agent") == "" {
		httpReq.Header.Set("User-Agent", a.config.UserAgent)
	}

	return httpReq, nil
}

// classifyTransportError maps a failed exchange onto a timeout or connection error.
func classifyTransportError(ctx context.Context, err error) *Error {
	if errors.Is(ctx.Err(), context.DeadlineExceeded) {
		return NewTimeoutError(err)
	}
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return NewTimeoutError(err)
	}
	return NewConnectionError(err)
}

// flattenHeaders converts multi-value headers to single-value.
func flattenHeaders(h http.Header) map[string]string {
	result := make(map[string]string, len(h))
	for k, v := range h {
		if len(v) > 0 {
			result[k] = v[0]
		}
	}
	return result
}
