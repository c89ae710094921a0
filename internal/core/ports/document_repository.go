package ports

import (
	"context"

	"github.com/clinicalcanvas/practice-api/internal/core/domain"
)

// DocumentRepository persists document references, tenant-scoped on every call.
type DocumentRepository interface {
	List(ctx context.Context, therapistID string) ([]domain.Document, error)
	Create(ctx context.Context, doc *domain.Document) (*domain.Document, error)
}
