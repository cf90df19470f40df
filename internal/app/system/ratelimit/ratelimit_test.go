package ratelimit

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"go.uber.org/zap"
)

func TestAllowWithinLimit(t *testing.T) {
	l := New(3, time.Minute)
	for i := 0; i < 3; i++ {
		if !l.Allow("1.2.3.4") {
			t.Fatalf("request %d should be allowed", i+1)
		}
	}
	if l.Allow("1.2.3.4") {
		t.Error("request over the limit should be blocked")
	}
	// Other keys are unaffected.
	if !l.Allow("5.6.7.8") {
		t.Error("different key must have its own window")
	}
}

func TestReset(t *testing.T) {
	l := New(1, time.Minute)
	l.Allow("1.2.3.4")
	if l.Allow("1.2.3.4") {
		t.Fatal("second request should be blocked")
	}
	l.Reset("1.2.3.4")
	if !l.Allow("1.2.3.4") {
		t.Error("reset key should be allowed again")
	}
}

func TestWindowExpiry(t *testing.T) {
	l := New(1, 20*time.Millisecond)
	l.Allow("1.2.3.4")
	if l.Allow("1.2.3.4") {
		t.Fatal("second request should be blocked")
	}
	time.Sleep(30 * time.Millisecond)
	if !l.Allow("1.2.3.4") {
		t.Error("expired window should allow requests again")
	}
}

func TestMiddleware(t *testing.T) {
	l := New(1, time.Minute)
	handler := l.Middleware(zap.NewNop())(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest(http.MethodPost, "/login", nil)
	req.RemoteAddr = "1.2.3.4:5678"

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("first request: got %d, want 200", rec.Code)
	}

	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	if rec.Code != http.StatusTooManyRequests {
		t.Errorf("second request: got %d, want 429", rec.Code)
	}
}

func TestClientIP(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.RemoteAddr = "9.9.9.9:1234"
	if got := ClientIP(req); got != "9.9.9.9" {
		t.Errorf("remote addr: got %q, want 9.9.9.9", got)
	}

	req.Header.Set("X-Real-IP", "2.2.2.2")
	if got := ClientIP(req); got != "2.2.2.2" {
		t.Errorf("x-real-ip: got %q, want 2.2.2.2", got)
	}

	req.Header.Set("X-Forwarded-For", "1.1.1.1, 2.2.2.2")
	if got := ClientIP(req); got != "1.1.1.1" {
		t.Errorf("x-forwarded-for: got %q, want 1.1.1.1", got)
	}
}
