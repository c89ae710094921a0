package ports

import (
	"context"
	"time"

	"github.com/clinicalcanvas/practice-api/internal/core/domain"
)

// AppointmentInput carries the caller-editable fields of an appointment.
type AppointmentInput struct {
	ClientID  string
	StartTime time.Time
	EndTime   time.Time
	Type      string
	Status    string
	Location  string
	Notes     string
}

type AppointmentService interface {
	// List returns the therapist's appointments with the client display name
	// attached where a client reference exists.
	List(ctx context.Context, therapistID string) ([]domain.AppointmentWithClient, error)
	Create(ctx context.Context, therapistID string, in AppointmentInput) (*domain.Appointment, error)
	Update(ctx context.Context, therapistID, id string, in AppointmentInput) (*domain.Appointment, error)
	Delete(ctx context.Context, therapistID, id string) error
}
