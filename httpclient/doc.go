// Package httpclient is the low-level HTTP transport used by the api package.
//
// It opens connections with separate connect and read timeouts, honours the
// proxy environment variables, sends a prepared request and returns the
// complete response body. Non-2xx statuses are classified into *Error values
// that keep the response body so callers can parse server error payloads.
//
// # Basic Usage
//
//	adapter, err := httpclient.New(httpclient.Config{
//	    ConnectTimeout: 10 * time.Second,
//	    ReadTimeout:    30 * time.Second,
//	})
//
//	resp, err := adapter.Do(ctx, httpclient.Request{
//	    Method: http.MethodGet,
//	    URL:    "http://api.untappd.com/v3/brewery_search?key=...&q=stone",
//	})
package httpclient
