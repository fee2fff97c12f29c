// Package apitest runs a fake JSON API on a local httptest server for tests.
//
//	srv := apitest.NewServer(t)
//	srv.Handle(http.MethodGet, "/v3/brewery_search", http.StatusOK, `{"http_code":200,...}`)
//
//	svc := api.NewService(api.WithBaseURL(srv.URL))
//
// Every request is recorded and can be inspected with Requests and Hits.
package apitest
