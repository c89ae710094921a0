package ports

import (
	"context"

	"github.com/clinicalcanvas/practice-api/internal/core/domain"
)

// ClientRepository persists clients. Every method is tenant-scoped: reads,
// updates, and deletes are filtered by therapistID, and rows belonging to a
// different therapist behave exactly like missing rows.
type ClientRepository interface {
	List(ctx context.Context, therapistID string) ([]domain.Client, error)
	Get(ctx context.Context, therapistID, id string) (*domain.Client, error)
	Create(ctx context.Context, client *domain.Client) (*domain.Client, error)
	Update(ctx context.Context, therapistID, id string, fields *domain.Client) (*domain.Client, error)
	Delete(ctx context.Context, therapistID, id string) error
	// NamesByIDs resolves client display names for the given ids, restricted
	// to the therapist's own clients. Unknown or foreign ids are absent from
	// the result rather than an error.
	NamesByIDs(ctx context.Context, therapistID string, ids []string) (map[string]string, error)
}
