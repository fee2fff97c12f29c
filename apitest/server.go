package apitest

import (
	"bytes"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sync"
	"testing"

	"github.com/gin-gonic/gin"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// Request is a recorded inbound request.
type Request struct {
	Method string
	Path   string
	Query  url.Values
	Header http.Header
	Body   []byte
}

type reply struct {
	status int
	body   []byte
}

// Server is a fake API backed by a gin engine.
type Server struct {
	*httptest.Server

	engine   *gin.Engine
	mu       sync.Mutex
	replies  map[string]reply
	requests []Request
}

// NewServer starts a fake API and closes it when the test ends.
func NewServer(t testing.TB) *Server {
	t.Helper()
	s := &Server{
		engine:  gin.New(),
		replies: make(map[string]reply),
	}
	s.engine.Use(s.record)
	s.engine.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"http_code": http.StatusNotFound, "error": "Invalid API method."})
	})
	s.Server = httptest.NewServer(s.engine)
	t.Cleanup(s.Close)
	return s
}

// Handle answers method requests for path with status and a JSON body.
// Calling it again for the same route replaces the reply.
func (s *Server) Handle(method, path string, status int, body string) {
	key := method + " " + path
	s.mu.Lock()
	_, registered := s.replies[key]
	s.replies[key] = reply{status: status, body: []byte(body)}
	s.mu.Unlock()

	if registered {
		return
	}
	s.engine.Handle(method, path, func(c *gin.Context) {
		s.mu.Lock()
		r := s.replies[key]
		s.mu.Unlock()
		c.Data(r.status, "application/json; charset=utf-8", r.body)
	})
}

// Requests returns every request received so far.
func (s *Server) Requests() []Request {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Request, len(s.requests))
	copy(out, s.requests)
	return out
}

// LastRequest returns the most recent request.
func (s *Server) LastRequest() (Request, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.requests) == 0 {
		return Request{}, false
	}
	return s.requests[len(s.requests)-1], true
}

// Hits counts the requests received for path.
func (s *Server) Hits(path string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := 0
	for _, r := range s.requests {
		if r.Path == path {
			n++
		}
	}
	return n
}

func (s *Server) record(c *gin.Context) {
	body, _ := io.ReadAll(c.Request.Body)
	c.Request.Body = io.NopCloser(bytes.NewReader(body))

	s.mu.Lock()
	s.requests = append(s.requests, Request{
		Method: c.Request.Method,
		Path:   c.Request.URL.Path,
		Query:  c.Request.URL.Query(),
		Header: c.Request.Header.Clone(),
		Body:   body,
	})
	s.mu.Unlock()

	c.Next()
}
