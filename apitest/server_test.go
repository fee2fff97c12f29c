package apitest

import (
	"io"
	"net/http"
	"strings"
	"testing"
)

func TestServer_Handle(t *testing.T) {
	srv := NewServer(t)
	srv.Handle(http.MethodGet, "/v3/brewery_search", http.StatusOK, `{"http_code":200}`)

	resp, err := http.Get(srv.URL + "/v3/brewery_search?key=k&q=stone")
	if err != nil {
		t.Fatal(err)
	}
	body, _ := io.ReadAll(resp.Body)
	_ = resp.Body.Close()

	if resp.StatusCode != http.StatusOK || string(body) != `{"http_code":200}` {
		t.Errorf("got %d %q", resp.StatusCode, body)
	}
	if srv.Hits("/v3/brewery_search") != 1 {
		t.Errorf("Hits = %d", srv.Hits("/v3/brewery_search"))
	}
	last, ok := srv.LastRequest()
	if !ok || last.Query.Get("q") != "stone" || last.Query.Get("key") != "k" {
		t.Errorf("last request = %+v", last)
	}
}

func TestServer_HandleReplaces(t *testing.T) {
	srv := NewServer(t)
	srv.Handle(http.MethodGet, "/x", http.StatusOK, `{}`)
	srv.Handle(http.MethodGet, "/x", http.StatusInternalServerError, `{"error":"down"}`)

	resp, err := http.Get(srv.URL + "/x")
	if err != nil {
		t.Fatal(err)
	}
	_ = resp.Body.Close()
	if resp.StatusCode != http.StatusInternalServerError {
		t.Errorf("status = %d", resp.StatusCode)
	}
}

func TestServer_RecordsBody(t *testing.T) {
	srv := NewServer(t)
	srv.Handle(http.MethodPost, "/v3/checkin", http.StatusOK, `{}`)

	resp, err := http.Post(srv.URL+"/v3/checkin", "application/json", strings.NewReader(`{"bid":1}`))
	if err != nil {
		t.Fatal(err)
	}
	_ = resp.Body.Close()

	reqs := srv.Requests()
	if len(reqs) != 1 || string(reqs[0].Body) != `{"bid":1}` || reqs[0].Method != http.MethodPost {
		t.Errorf("requests = %+v", reqs)
	}
	if reqs[0].Header.Get("Content-Type") != "application/json" {
		t.Errorf("content type = %q", reqs[0].Header.Get("Content-Type"))
	}
}

func TestServer_NoRoute(t *testing.T) {
	srv := NewServer(t)

	resp, err := http.Get(srv.URL + "/missing")
	if err != nil {
		t.Fatal(err)
	}
	body, _ := io.ReadAll(resp.Body)
	_ = resp.Body.Close()

	if resp.StatusCode != http.StatusNotFound || !strings.Contains(string(body), "Invalid API method.") {
		t.Errorf("got %d %q", resp.StatusCode, body)
	}
	if srv.Hits("/missing") != 1 {
		t.Error("unmatched requests should be recorded")
	}
}
