package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"loglens/internal/hub"
	"loglens/internal/report"
)

func TestReportEndpointBeforeFirstAnalysis(t *testing.T) {
	s := New(hub.New(), "0")

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/report", nil)
	s.engine.ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Errorf("expected 404 before first analysis, got %d", w.Code)
	}
}

func TestReportEndpointServesLatest(t *testing.T) {
	h := hub.New()
	s := New(h, "0")

	h.Publish(report.Report{
		TotalParsed:   3,
		TotalErrors:   1,
		ErrorRate:     33.3,
		HighErrorRate: true,
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/report", nil)
	s.engine.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	var got report.Report
	if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
		t.Fatalf("invalid JSON: %v\nraw: %s", err, w.Body.String())
	}
	if got.TotalErrors != 1 || !got.HighErrorRate {
		t.Errorf("unexpected report: %+v", got)
	}
}

func TestHealthz(t *testing.T) {
	h := hub.New()
	s := New(h, "0")

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	s.engine.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	var body map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatal(err)
	}
	if body["status"] != "ok" {
		t.Errorf("expected status ok, got %v", body["status"])
	}
	if body["has_report"] != false {
		t.Errorf("expected has_report false before publish, got %v", body["has_report"])
	}
}
