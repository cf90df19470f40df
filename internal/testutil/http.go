package testutil

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/amayorga/partnerbase/internal/app/system/session"
	"github.com/amayorga/partnerbase/internal/domain/models"
)

// NewJSONRequest creates an HTTP request with a JSON-encoded body.
func NewJSONRequest(t *testing.T, method, target string, body any) *http.Request {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encoding request body: %v", err)
		}
	}
	req := httptest.NewRequest(method, target, &buf)
	req.Header.Set("Content-Type", "application/json")
	return req
}

// WithAccount injects an account into the request context, bypassing the
// session middleware.
func WithAccount(r *http.Request, acct *models.Account) *http.Request {
	return session.WithTestAccount(r, acct)
}

// DecodeJSON parses a JSON response body into dst.
func DecodeJSON(t *testing.T, rec *httptest.ResponseRecorder, dst any) {
	t.Helper()
	if err := json.Unmarshal(rec.Body.Bytes(), dst); err != nil {
		t.Fatalf("decoding response body %q: %v", rec.Body.String(), err)
	}
}

// ErrorCode extracts the code from a `{"error": code}` response body.
func ErrorCode(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	var body map[string]string
	DecodeJSON(t, rec, &body)
	return body["error"]
}

// AssertStatus checks the response status code.
func AssertStatus(t *testing.T, rec *httptest.ResponseRecorder, expected int) {
	t.Helper()
	if rec.Code != expected {
		t.Errorf("status code: got %d, want %d (body %s)", rec.Code, expected, rec.Body.String())
	}
}

// AssertBodyContains checks if the response body contains the expected string.
func AssertBodyContains(t *testing.T, rec *httptest.ResponseRecorder, expected string) {
	t.Helper()
	if !strings.Contains(rec.Body.String(), expected) {
		t.Errorf("response body does not contain %q: %s", expected, rec.Body.String())
	}
}
