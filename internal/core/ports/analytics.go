package ports

import (
	"context"
	"time"
)

// AnalyticsRepository runs the scoped aggregate queries behind the dashboard.
type AnalyticsRepository interface {
	CountClients(ctx context.Context, therapistID string) (int64, error)
	CountAppointmentsSince(ctx context.Context, therapistID string, since time.Time) (int64, error)
	// SumInvoiceAmounts totals invoice amounts for the given status. A nil
	// since leaves the window unbounded. No matching rows yields 0, not an error.
	SumInvoiceAmounts(ctx context.Context, therapistID, status string, since *time.Time) (float64, error)
}

// DashboardSummary is the composed result of the four dashboard queries.
// Field names follow the public API contract.
type DashboardSummary struct {
	TotalClients       int64   `json:"totalClients"`
	PeriodAppointments int64   `json:"periodAppointments"`
	PeriodRevenue      float64 `json:"periodRevenue"`
	OutstandingBalance float64 `json:"outstandingBalance"`
}

type AnalyticsService interface {
	Dashboard(ctx context.Context, therapistID string) (*DashboardSummary, error)
}
