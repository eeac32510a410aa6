package health

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func check(status Status) CheckFunc {
	return func(ctx context.Context) CheckResult {
		return CheckResult{Status: status}
	}
}

func TestRegistry_Check(t *testing.T) {
	tests := []struct {
		name     string
		statuses map[string]Status
		expected Status
	}{
		{"empty", nil, StatusHealthy},
		{"all healthy", map[string]Status{"a": StatusHealthy, "b": StatusHealthy}, StatusHealthy},
		{"degraded", map[string]Status{"a": StatusHealthy, "b": StatusDegraded}, StatusDegraded},
		{"unhealthy wins", map[string]Status{"a": StatusDegraded, "b": StatusUnhealthy}, StatusUnhealthy},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			registry := NewRegistry("test-service", "1.0.0")
			for name, status := range tt.statuses {
				registry.RegisterFunc(name, check(status))
			}

			report := registry.Check(context.Background())

			if report.Status != tt.expected {
				t.Errorf("Status = %v, want %v", report.Status, tt.expected)
			}
			if len(report.Checks) != len(tt.statuses) {
				t.Errorf("len(Checks) = %d, want %d", len(report.Checks), len(tt.statuses))
			}
		})
	}
}

func TestRegistry_ChecksSortedAndNamed(t *testing.T) {
	registry := NewRegistry("svc", "1.0.0")
	registry.RegisterFunc("zeta", check(StatusHealthy))
	registry.RegisterFunc("alpha", check(StatusHealthy))

	report := registry.Check(context.Background())

	if report.Checks[0].Name != "alpha" || report.Checks[1].Name != "zeta" {
		t.Errorf("Checks = %+v, want alpha before zeta", report.Checks)
	}
	if report.Service != "svc" || report.Version != "1.0.0" {
		t.Errorf("Service/Version = %s/%s", report.Service, report.Version)
	}
}

func TestRegistry_Handler(t *testing.T) {
	registry := NewRegistry("svc", "1.0.0")
	registry.RegisterFunc("sessions", func(ctx context.Context) CheckResult {
		return CheckResult{Status: StatusHealthy, Details: map[string]interface{}{"active": 2}}
	})

	rec := httptest.NewRecorder()
	registry.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))

	if rec.Code != http.StatusOK {
		t.Errorf("status code = %d, want 200", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("Content-Type = %q", ct)
	}

	var report Report
	if err := json.NewDecoder(rec.Body).Decode(&report); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if report.Status != StatusHealthy || len(report.Checks) != 1 {
		t.Errorf("report = %+v", report)
	}

	registry.RegisterFunc("listener", check(StatusUnhealthy))
	rec = httptest.NewRecorder()
	registry.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))

	if rec.Code != http.StatusServiceUnavailable {
		t.Errorf("status code = %d, want 503", rec.Code)
	}
}
