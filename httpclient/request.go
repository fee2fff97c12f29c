package httpclient

import "context"

// Request describes an outbound HTTP request.
type Request struct {
	// Method is the HTTP method (GET or POST).
	Method string
	// URL is the absolute request URL, query string included.
	URL string
	// Headers are request-specific headers (merged over the defaults).
	Headers map[string]string
	// Body is the raw request body. Nil sends no body.
	Body []byte
}

// Response is the result of an HTTP request.
type Response struct {
	// StatusCode is the HTTP status code.
	StatusCode int
	// Headers are the response headers.
	Headers map[string]string
	// Body is the raw response body.
	Body []byte
}

// IsSuccess returns true if the status code is 2xx.
func (r *Response) IsSuccess() bool {
	return r.StatusCode >= 200 && r.StatusCode < 300
}

// Doer performs a single HTTP exchange. *Adapter implements it; tests swap in
// stubs.
type Doer interface {
	Do(ctx context.Context, req Request) (*Response, error)
}
