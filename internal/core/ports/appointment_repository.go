package ports

import (
	"context"

	"github.com/clinicalcanvas/practice-api/internal/core/domain"
)

// AppointmentRepository persists appointments, tenant-scoped on every call.
// List returns rows ordered by start time, newest first.
type AppointmentRepository interface {
	List(ctx context.Context, therapistID string) ([]domain.Appointment, error)
	Get(ctx context.Context, therapistID, id string) (*domain.Appointment, error)
	Create(ctx context.Context, appt *domain.Appointment) (*domain.Appointment, error)
	Update(ctx context.Context, therapistID, id string, fields *domain.Appointment) (*domain.Appointment, error)
	Delete(ctx context.Context, therapistID, id string) error
}
