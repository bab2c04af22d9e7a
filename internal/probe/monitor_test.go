package probe

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/vietddude/supafetch/internal/infra/fetch"
)

// =============================================================================
// Mocks
// =============================================================================

type mockExecutor struct {
	status int
	err    error
	got    []string
}

func (m *mockExecutor) Execute(ctx context.Context, req fetch.Request) (*http.Response, error) {
	m.got = append(m.got, req.Target())
	if m.err != nil {
		return nil, m.err
	}
	return &http.Response{StatusCode: m.status, Body: http.NoBody}, nil
}

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// =============================================================================
// Tests
// =============================================================================

func TestMonitor_Check(t *testing.T) {
	tests := []struct {
		name   string
		exec   *mockExecutor
		expect SystemStatus
	}{
		{"ok", &mockExecutor{status: http.StatusOK}, StatusHealthy},
		{"unauthorized still reachable", &mockExecutor{status: http.StatusUnauthorized}, StatusHealthy},
		{"server error", &mockExecutor{status: http.StatusBadGateway}, StatusDegraded},
		{"transport error", &mockExecutor{err: errors.New("Failed to fetch")}, StatusCritical},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewMonitor(tt.exec, "https://api.example.com/auth/v1/health", nil, quietLogger())

			report := m.Check(context.Background())

			if report.Status != tt.expect {
				t.Errorf("Expected status %s, got %s", tt.expect, report.Status)
			}
			if m.LastReport().Status != tt.expect {
				t.Errorf("Expected stored status %s, got %s", tt.expect, m.LastReport().Status)
			}
			if len(tt.exec.got) != 1 || tt.exec.got[0] != "https://api.example.com/auth/v1/health" {
				t.Errorf("Unexpected probe targets %v", tt.exec.got)
			}
		})
	}
}

func TestServer_Health(t *testing.T) {
	exec := &mockExecutor{err: errors.New("Failed to fetch")}
	m := NewMonitor(exec, "https://api.example.com/auth/v1/health", nil, quietLogger())
	srv := NewServer(m, 0)

	// Before the first probe
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))
	if rec.Code != http.StatusOK {
		t.Errorf("Expected 200 before first probe, got %d", rec.Code)
	}

	m.Check(context.Background())

	rec = httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))
	if rec.Code != http.StatusServiceUnavailable {
		t.Errorf("Expected 503 after failed probe, got %d", rec.Code)
	}

	rec = httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health/detailed", nil))
	var report Report
	if err := json.NewDecoder(rec.Body).Decode(&report); err != nil {
		t.Fatalf("Failed to decode report: %v", err)
	}
	if report.Error != "Failed to fetch" {
		t.Errorf("Expected error in detailed report, got %q", report.Error)
	}

	rec = httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	if rec.Code != http.StatusOK {
		t.Errorf("Expected metrics endpoint, got %d", rec.Code)
	}
}

func TestServer_HealthBody(t *testing.T) {
	m := NewMonitor(&mockExecutor{status: http.StatusOK}, "https://api.example.com/auth/v1/health", nil, quietLogger())
	m.Check(context.Background())
	srv := NewServer(m, 0)

	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	if rec.Code != http.StatusOK {
		t.Errorf("Expected 200, got %d", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("Expected JSON content type, got %q", ct)
	}
	var body map[string]string
	if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
		t.Fatalf("Failed to decode body: %v", err)
	}
	if body["status"] != string(StatusHealthy) {
		t.Errorf("Expected healthy, got %q", body["status"])
	}
}
