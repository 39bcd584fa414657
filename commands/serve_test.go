package commands

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"url-risk-checker/config"
)

func testConfig() *config.Config {
	return &config.Config{
		Port:           "0",
		TLSTimeout:     time.Second,
		WhoisTimeout:   time.Second,
		AnalyzeTimeout: 2 * time.Second,
	}
}

func TestNewRouter_Health(t *testing.T) {
	r := NewRouter(testConfig())

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), `"ok"`) {
		t.Errorf("body = %s", rec.Body.String())
	}
}

func TestNewRouter_ExplainDisabledWithoutKey(t *testing.T) {
	r := NewRouter(testConfig())

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/explain", strings.NewReader(`{"url":"example.com"}`))
	r.ServeHTTP(rec, req)
	if rec.Code != http.StatusServiceUnavailable {
		t.Fatalf("status = %d, want 503", rec.Code)
	}
}

func TestNewRouter_AnalyzeRejectsEmptyURL(t *testing.T) {
	r := NewRouter(testConfig())

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/analyze", strings.NewReader(`{"url":"   "}`))
	r.ServeHTTP(rec, req)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "No URL provided") {
		t.Errorf("body = %s", rec.Body.String())
	}
}
