// Package api provides a declarative client for JSON/HTTP APIs.
//
// A Service owns connection configuration (API key, basic authentication,
// timeouts, extra headers) and performs GET/POST exchanges. A Builder
// describes a single call: URL template, query parameters, path fields and
// POST body. Firing a builder dispatches the call and decodes the JSON payload
// into the builder's result type.
//
//	svc := api.NewService(api.WithBaseURL("http://api.untappd.com"))
//	svc.SetAPIKey(key)
//
//	b := api.NewBuilder[api.Response[Brewery]](svc, "/v3/brewery_search")
//	b.Parameter("q", "stone")
//	resp, err := b.Fire(ctx)
//
// Every failure returned by Fire is an *Error carrying the request URL, the
// POST body (if any) and the underlying cause.
package api
