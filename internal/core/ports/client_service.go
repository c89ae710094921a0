package ports

import (
	"context"

	"github.com/clinicalcanvas/practice-api/internal/core/domain"
)

// ClientInput carries the caller-editable fields of a client. Owner and id
// are never part of the input — the service stamps them.
type ClientInput struct {
	Name      string
	Email     string
	Phone     string
	DOB       string
	Address   string
	Insurance string
	Notes     string
	Status    string
}

type ClientService interface {
	List(ctx context.Context, therapistID string) ([]domain.Client, error)
	Get(ctx context.Context, therapistID, id string) (*domain.Client, error)
	Create(ctx context.Context, therapistID string, in ClientInput) (*domain.Client, error)
	Update(ctx context.Context, therapistID, id string, in ClientInput) (*domain.Client, error)
	Delete(ctx context.Context, therapistID, id string) error
}
