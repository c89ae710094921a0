package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/clinicalcanvas/practice-api/internal/core/domain"
	"github.com/clinicalcanvas/practice-api/internal/core/ports"
)

// AnalyticsService composes the dashboard summary from four independent
// scoped queries. Nothing is cached — every call recomputes.
type AnalyticsService struct {
	repo   ports.AnalyticsRepository
	now    func() time.Time
	logger zerolog.Logger
}

func NewAnalyticsService(repo ports.AnalyticsRepository, logger zerolog.Logger) *AnalyticsService {
	return &AnalyticsService{repo: repo, now: time.Now, logger: logger}
}

func (s *AnalyticsService) Dashboard(ctx context.Context, therapistID string) (*ports.DashboardSummary, error) {
	monthStart := startOfMonth(s.now().UTC())

	totalClients, err := s.repo.CountClients(ctx, therapistID)
	if err != nil {
		return nil, err
	}

	periodAppointments, err := s.repo.CountAppointmentsSince(ctx, therapistID, monthStart)
	if err != nil {
		return nil, err
	}

	periodRevenue, err := s.repo.SumInvoiceAmounts(ctx, therapistID, domain.InvoiceStatusPaid, &monthStart)
	if err != nil {
		return nil, err
	}

	outstanding, err := s.repo.SumInvoiceAmounts(ctx, therapistID, domain.InvoiceStatusPending, nil)
	if err != nil {
		return nil, err
	}

	return &ports.DashboardSummary{
		TotalClients:       totalClients,
		PeriodAppointments: periodAppointments,
		PeriodRevenue:      periodRevenue,
		OutstandingBalance: outstanding,
	}, nil
}

func startOfMonth(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC)
}
