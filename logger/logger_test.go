package logger

import (
	"bytes"
	"errors"
	"strings"
	"testing"
	"time"
)

func TestNewDefault(t *testing.T) {
	l := NewDefault("test-svc")
	if l == nil {
		t.Fatal("expected non-nil logger")
	}
	if l.service != "test-svc" {
		t.Errorf("expected service 'test-svc', got %q", l.service)
	}
}

func TestNewWithWriter_JSON(t *testing.T) {
	var buf bytes.Buffer
	l := NewWithWriter(&Config{Level: "debug", Format: "json"}, "untappd", &buf)

	l.WithComponent("api").Debug("exchange", Fields(FieldStatus, 200))

	out := buf.String()
	for _, want := range []string{`"component":"api"`, `"status":200`, `"message":"exchange"`, `"service":"untappd"`} {
		if !strings.Contains(out, want) {
			t.Errorf("expected output to contain %s, got %s", want, out)
		}
	}
}

func TestNewWithWriter_LevelFilters(t *testing.T) {
	var buf bytes.Buffer
	l := NewWithWriter(&Config{Level: "warn", Format: "json"}, "untappd", &buf)

	l.Debug("hidden")
	l.Info("hidden")
	if buf.Len() != 0 {
		t.Fatalf("expected nothing below warn, got %s", buf.String())
	}
	l.Warn("shown")
	if !strings.Contains(buf.String(), "shown") {
		t.Errorf("expected warn message, got %s", buf.String())
	}
}

func TestNewInvalidLevel(t *testing.T) {
	var buf bytes.Buffer
	l := NewWithWriter(&Config{Level: "invalid-level", Format: "json"}, "test", &buf)
	l.Debug("hidden")
	l.Info("visible")
	if strings.Contains(buf.String(), "hidden") {
		t.Error("expected invalid level to fall back to info")
	}
	if !strings.Contains(buf.String(), "visible") {
		t.Error("expected info message to be written")
	}
}

func TestWithError(t *testing.T) {
	var buf bytes.Buffer
	l := NewWithWriter(&Config{Level: "info", Format: "json"}, "untappd", &buf)
	l.WithError(errors.New("boom")).Error("failed")
	if !strings.Contains(buf.String(), `"error":"boom"`) {
		t.Errorf("expected error field, got %s", buf.String())
	}
}

func TestNop(t *testing.T) {
	l := Nop()
	l.Info("nothing") // must not panic
	l.WithFields(Fields("a", 1)).Error("nothing")
}

func TestConfigApplyDefaults(t *testing.T) {
	cfg := Config{}
	cfg.ApplyDefaults()
	if cfg.Level != "info" {
		t.Errorf("expected level info, got %q", cfg.Level)
	}
	if cfg.Format != "console" {
		t.Errorf("expected format console, got %q", cfg.Format)
	}
	if cfg.Output != "stderr" {
		t.Errorf("expected output stderr, got %q", cfg.Output)
	}
	if !cfg.Timestamp {
		t.Error("expected timestamp=true")
	}
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{"valid", Config{Level: "debug", Format: "json"}, false},
		{"disabled", Config{Level: "disabled", Format: "console"}, false},
		{"bad level", Config{Level: "loud", Format: "json"}, true},
		{"bad format", Config{Level: "info", Format: "xml"}, true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.cfg.Validate()
			if (err != nil) != tc.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tc.wantErr)
			}
		})
	}
}

func TestRegisterAndGet(t *testing.T) {
	l := Nop()
	Register("registered", l)
	if Get("registered") != l {
		t.Error("expected registered logger to be returned")
	}
	if Get("unregistered") == nil {
		t.Error("expected fallback logger for unregistered name")
	}
}

func TestGet_FollowsGlobalLogger(t *testing.T) {
	prev := globalLogger
	defer SetGlobalLogger(prev)

	SetGlobalLogger(Nop())
	first := Get("search")
	if Get("search") != first {
		t.Error("expected the component logger to be reused")
	}

	pinned := Nop()
	Register("pinned", pinned)

	Init(Config{Level: "debug", Format: "json", Output: "discard"}, "reinit")
	second := Get("search")
	if second == first {
		t.Error("expected a new component logger after the global logger changed")
	}
	if second.service != "reinit" {
		t.Errorf("component logger service = %q, want reinit", second.service)
	}
	if Get("pinned") != pinned {
		t.Error("registered loggers must survive a global logger change")
	}
}

func TestInit(t *testing.T) {
	prev := globalLogger
	defer SetGlobalLogger(prev)

	Init(Config{Level: "debug", Format: "json", Output: "discard"}, "init-test")
	if GetGlobalLogger().service != "init-test" {
		t.Errorf("expected global service init-test, got %q", GetGlobalLogger().service)
	}
	Debug("package level")
	Info("package level")
	Warn("package level")
	Error("package level")
}

func TestFields(t *testing.T) {
	f := Fields("a", 1, "b", "two", 3, "skipped", "dangling")
	if f["a"] != 1 || f["b"] != "two" {
		t.Errorf("unexpected fields: %v", f)
	}
	if len(f) != 2 {
		t.Errorf("expected 2 fields, got %d", len(f))
	}
}

func TestErrorFields(t *testing.T) {
	f := ErrorFields("/v3/brewery_search", errors.New("boom"))
	if f[FieldEndpoint] != "/v3/brewery_search" || f[FieldError] != "boom" {
		t.Errorf("unexpected fields: %v", f)
	}
}

func TestMergeWithDuration(t *testing.T) {
	f := MergeWithDuration(nil, 1500*time.Millisecond)
	if f[FieldDuration] != int64(1500) {
		t.Errorf("expected 1500, got %v", f[FieldDuration])
	}
}

func TestConsoleFormat(t *testing.T) {
	var buf bytes.Buffer
	l := NewWithWriter(&Config{Level: "info", Format: "console", NoColor: true}, "untappd", &buf)
	l.Info("hello")
	if !strings.Contains(buf.String(), "[UNT][INF]") {
		t.Errorf("expected console level tag, got %q", buf.String())
	}
}
