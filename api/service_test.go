package api

import (
	"context"
	"errors"
	"net/http"
	"sync"
	"testing"
	"time"

	"github.com/kbukum/untappd/apitest"
	apperrors "github.com/kbukum/untappd/errors"
	"github.com/kbukum/untappd/httpclient"
	"github.com/kbukum/untappd/logger"
)

func TestNewService_Defaults(t *testing.T) {
	svc := NewService()
	connect, read := svc.Timeouts()
	if connect != 60*time.Second || read != 60*time.Second {
		t.Errorf("timeouts = %v/%v, want 60s/60s", connect, read)
	}
	if svc.APIKey() != "" {
		t.Errorf("APIKey() = %q, want empty", svc.APIKey())
	}
	if len(svc.HeaderNames()) != 0 {
		t.Errorf("expected no headers, got %v", svc.HeaderNames())
	}
}

func TestService_SetAuthentication(t *testing.T) {
	svc := NewService()
	if err := svc.SetAuthentication("user", "5baa61e4c9b93f3f0682250b6cf8331b7ee68fd8"); err != nil {
		t.Fatal(err)
	}
	got, ok := svc.Header("Authorization")
	if !ok || got != "Basic dXNlcjo1YmFhNjFlNGM5YjkzZjNmMDY4MjI1MGI2Y2Y4MzMxYjdlZTY4ZmQ4" {
		t.Errorf("Authorization = %q", got)
	}

	if err := svc.SetAuthentication("other", "abc"); err != nil {
		t.Fatal(err)
	}
	if got2, _ := svc.Header("Authorization"); got2 == got {
		t.Error("authentication should replace the prior header")
	}
	if len(svc.HeaderNames()) != 1 {
		t.Errorf("headers = %v", svc.HeaderNames())
	}
}

func TestService_SetAuthenticationInvalid(t *testing.T) {
	tests := []struct {
		name, username, passwordSHA string
	}{
		{"empty password", "user", ""},
		{"empty username", "", "abc"},
		{"both empty", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewService()
			svc.SetHeader("X-Client", "cli")
			before := svc.Headers()

			err := svc.SetAuthentication(tt.username, tt.passwordSHA)
			if !IsArgument(err) {
				t.Fatalf("expected argument error, got %v", err)
			}
			after := svc.Headers()
			if len(after) != len(before) || after["X-Client"] != "cli" {
				t.Errorf("headers mutated: %v", after)
			}
			if _, ok := svc.Header("Authorization"); ok {
				t.Error("Authorization must not be set")
			}
		})
	}
}

func TestService_Headers(t *testing.T) {
	svc := NewService()
	svc.SetHeader("x-b", "2")
	svc.SetHeader("X-A", "1")

	names := svc.HeaderNames()
	if len(names) != 2 || names[0] != "X-A" || names[1] != "X-B" {
		t.Errorf("HeaderNames() = %v", names)
	}

	h := svc.Headers()
	h["X-A"] = "changed"
	if v, _ := svc.Header("x-a"); v != "1" {
		t.Error("Headers() must return a copy")
	}

	svc.SetHeader("X-A", "")
	if _, ok := svc.Header("X-A"); ok {
		t.Error("empty value should remove the header")
	}
}

func TestService_TimeoutsRebuildTransport(t *testing.T) {
	svc := NewService()
	first, err := svc.doer()
	if err != nil {
		t.Fatal(err)
	}
	again, _ := svc.doer()
	if first != again {
		t.Error("transport should be reused while configuration is unchanged")
	}

	svc.SetConnectTimeout(5 * time.Second)
	svc.SetReadTimeout(7 * time.Second)
	rebuilt, _ := svc.doer()
	adapter, ok := rebuilt.(*httpclient.Adapter)
	if !ok || rebuilt == first {
		t.Fatal("expected a rebuilt adapter")
	}
	if cfg := adapter.Config(); cfg.ConnectTimeout != 5*time.Second || cfg.ReadTimeout != 7*time.Second {
		t.Errorf("adapter timeouts = %v/%v", cfg.ConnectTimeout, cfg.ReadTimeout)
	}
}

func TestService_InjectedTransportKept(t *testing.T) {
	stub := &stubDoer{}
	svc := NewService(WithTransport(stub))
	svc.SetReadTimeout(time.Second)
	d, _ := svc.doer()
	if d != stub {
		t.Error("injected transport must survive timeout changes")
	}
}

func TestService_GetAgainstServer(t *testing.T) {
	srv := apitest.NewServer(t)
	srv.Handle(http.MethodGet, "/v3/brewery_search", http.StatusOK, twoBreweries)

	svc := NewService(WithBaseURL(srv.URL), WithLogger(logger.Nop()), WithUserAgent("untappd-test"))
	if err := svc.SetAuthentication("user", "sha"); err != nil {
		t.Fatal(err)
	}

	el, err := svc.Get(context.Background(), srv.URL+"/v3/brewery_search?key=k&q=stone")
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if !el.IsObject() {
		t.Errorf("Kind() = %v, want object", el.Kind())
	}
	if got := el.Get("results", 0, "brewery_name").ToString(); got != "Stone Brewing Co." {
		t.Errorf("first name = %q", got)
	}

	req, _ := srv.LastRequest()
	if req.Header.Get("Authorization") != httpclient.BasicAuthorization("user", "sha") {
		t.Errorf("Authorization = %q", req.Header.Get("Authorization"))
	}
	if req.Header.Get(HeaderRequestID) == "" {
		t.Error("missing request id")
	}
	if req.Header.Get("User-Agent") != "untappd-test" {
		t.Errorf("User-Agent = %q", req.Header.Get("User-Agent"))
	}
	if req.Query.Get("q") != "stone" {
		t.Errorf("q = %q", req.Query.Get("q"))
	}
}

func TestService_PostAgainstServer(t *testing.T) {
	srv := apitest.NewServer(t)
	srv.Handle(http.MethodPost, "/v3/checkin", http.StatusOK, `[1,2]`)
	srv.Handle(http.MethodPost, "/v3/broken", http.StatusInternalServerError, `{"http_code":500,"error":"Down."}`)

	svc := NewService(WithBaseURL(srv.URL), WithLogger(logger.Nop()))

	el, err := svc.Post(context.Background(), srv.URL+"/v3/checkin?key=", `{"bid":1}`)
	if err != nil {
		t.Fatal(err)
	}
	if !el.IsArray() {
		t.Errorf("Kind() = %v, want array", el.Kind())
	}
	req, _ := srv.LastRequest()
	if string(req.Body) != `{"bid":1}` || req.Header.Get("Content-Type") != "application/json" {
		t.Errorf("request = %s %q", req.Body, req.Header.Get("Content-Type"))
	}

	_, err = svc.Post(context.Background(), srv.URL+"/v3/broken?key=", `{}`)
	if !apperrors.HasCode(err, apperrors.ErrCodeExternalService) {
		t.Fatalf("expected external service error, got %v", err)
	}
	if resp := svc.parseErrorResponse(err); resp == nil || resp.Message != "Down." {
		t.Errorf("parsed response = %+v", resp)
	}
}

func TestService_GetContentFormat(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"bare string", `"hello"`},
		{"number", `42`},
		{"null", `null`},
		{"boolean", `true`},
		{"malformed", `{"http_code":`},
		{"trailing bytes", `{"http_code":200,"results":[]} trailing`},
		{"second value", `{"http_code":200}[]`},
		{"empty", ``},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := newStubService(&stubDoer{body: tt.body}, "k")
			el, err := svc.Get(context.Background(), "http://api.example.com/v3/x?key=k")
			if !IsContentFormat(err) {
				t.Errorf("expected content format error, got %v (element %q)", err, el.String())
			}
		})
	}
}

func TestService_TransportErrors(t *testing.T) {
	tests := []struct {
		name string
		err  error
		code apperrors.ErrorCode
	}{
		{"timeout", httpclient.NewTimeoutError(errors.New("deadline")), apperrors.ErrCodeTimeout},
		{"connection", httpclient.NewConnectionError(errors.New("refused")), apperrors.ErrCodeConnectionFailed},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := newStubService(&stubDoer{err: tt.err}, "k")
			_, err := svc.Get(context.Background(), "http://api.example.com/v3/x?key=k")
			if !apperrors.HasCode(err, tt.code) {
				t.Errorf("error = %v, want code %s", err, tt.code)
			}
			if !IsTransport(err) {
				t.Error("expected transport error")
			}
			if svc.parseErrorResponse(err) != nil {
				t.Error("no payload to parse")
			}
		})
	}
}

func TestService_Decode(t *testing.T) {
	svc := NewService()

	var resp Response[brewery]
	if err := svc.DecodeString(twoBreweries, &resp); err != nil {
		t.Fatal(err)
	}
	if resp.HTTPCode != 200 || resp.ReturnedResults != 2 || len(resp.Results) != 2 {
		t.Errorf("decoded %+v", resp)
	}
	if resp.Results[0].ID != 1 || resp.Results[1].ID != 2 {
		t.Errorf("ids = %d, %d", resp.Results[0].ID, resp.Results[1].ID)
	}

	var wrong []brewery
	if err := svc.DecodeString(`{"brewery_id":1}`, &wrong); !IsContentFormat(err) {
		t.Errorf("expected content format error, got %v", err)
	}
	if err := svc.Decode(Element{}, &resp); !IsContentFormat(err) {
		t.Errorf("expected content format error for empty element, got %v", err)
	}
}

func TestService_ConcurrentFire(t *testing.T) {
	stub := &stubDoer{body: twoBreweries}
	svc := newStubService(stub, "k")

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			b := NewBuilder[Response[brewery]](svc, "/v3/brewery_search").Parameter("q", "stone")
			if _, err := b.Fire(context.Background()); err != nil {
				t.Error(err)
			}
		}()
	}
	wg.Wait()
	if len(stub.Calls()) != 16 {
		t.Errorf("expected 16 calls, got %d", len(stub.Calls()))
	}
}
