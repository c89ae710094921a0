package ports

import (
	"context"
	"time"

	"github.com/clinicalcanvas/practice-api/internal/core/domain"
)

// NoteInput carries the caller-editable fields of a clinical note.
type NoteInput struct {
	ClientID      string
	AppointmentID string
	Type          string
	Content       string
	SessionDate   *time.Time
}

type NoteService interface {
	List(ctx context.Context, therapistID, clientID string) ([]domain.NoteWithClient, error)
	Create(ctx context.Context, therapistID string, in NoteInput) (*domain.Note, error)
}
