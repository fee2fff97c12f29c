package api

import (
	"context"
	"sync"

	"github.com/kbukum/untappd/httpclient"
	"github.com/kbukum/untappd/logger"
)

// stubDoer replays a canned reply and counts calls.
type stubDoer struct {
	mu     sync.Mutex
	calls  []httpclient.Request
	status int
	body   string
	err    error
}

func (s *stubDoer) Do(_ context.Context, req httpclient.Request) (*httpclient.Response, error) {
	s.mu.Lock()
	s.calls = append(s.calls, req)
	s.mu.Unlock()
	if s.err != nil {
		return nil, s.err
	}
	status := s.status
	if status == 0 {
		status = 200
	}
	resp := &httpclient.Response{StatusCode: status, Body: []byte(s.body)}
	if classErr := httpclient.ClassifyStatusCode(status, resp.Body); classErr != nil {
		return resp, classErr
	}
	return resp, nil
}

func (s *stubDoer) Calls() []httpclient.Request {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]httpclient.Request(nil), s.calls...)
}

func newStubService(stub *stubDoer, key string) *Service {
	svc := NewService(
		WithBaseURL("http://api.example.com"),
		WithTransport(stub),
		WithLogger(logger.Nop()),
	)
	svc.SetAPIKey(key)
	return svc
}

type sortOrder string

func (s sortOrder) Value() (string, bool) {
	if s == "" {
		return "", false
	}
	return string(s), true
}

// venue dereferences its receiver, so a nil *venue panics if Value is called.
type venue struct{ id string }

func (v *venue) Value() (string, bool) { return v.id, v.id != "" }

type brewery struct {
	ID   int    `json:"brewery_id"`
	Name string `json:"brewery_name"`
}

const twoBreweries = `{"http_code":200,"returned_results":2,"results":[` +
	`{"brewery_id":1,"brewery_name":"Stone Brewing Co."},` +
	`{"brewery_id":2,"brewery_name":"Stone Cellar"}]}`
