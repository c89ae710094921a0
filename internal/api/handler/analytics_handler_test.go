package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/clinicalcanvas/practice-api/internal/core/ports"
)

type stubAnalyticsService struct {
	summary *ports.DashboardSummary
	err     error
}

func (s *stubAnalyticsService) Dashboard(_ context.Context, _ string) (*ports.DashboardSummary, error) {
	return s.summary, s.err
}

func TestAnalyticsHandler_Dashboard(t *testing.T) {
	stub := &stubAnalyticsService{
		summary: &ports.DashboardSummary{
			TotalClients:       3,
			PeriodAppointments: 7,
			PeriodRevenue:      350.5,
			OutstandingBalance: 120,
		},
	}
	h := NewAnalyticsHandler(stub)

	c, rec := authedContext(t, http.MethodGet, "/api/analytics/dashboard", "", "t1")
	if err := h.Dashboard(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	// The dashboard contract uses camelCase keys.
	for _, key := range []string{"totalClients", "periodAppointments", "periodRevenue", "outstandingBalance"} {
		if _, ok := resp[key]; !ok {
			t.Fatalf("missing key %q in %v", key, resp)
		}
	}
	if resp["periodRevenue"] != 350.5 {
		t.Fatalf("unexpected revenue: %v", resp["periodRevenue"])
	}
}
