package ports

import (
	"context"

	"github.com/clinicalcanvas/practice-api/internal/core/domain"
)

// NoteRepository persists clinical notes, tenant-scoped on every call.
// When clientID is non-empty, List narrows to that client's notes.
type NoteRepository interface {
	List(ctx context.Context, therapistID, clientID string) ([]domain.Note, error)
	Create(ctx context.Context, note *domain.Note) (*domain.Note, error)
}
