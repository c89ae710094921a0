package ports

import (
	"context"

	"github.com/clinicalcanvas/practice-api/internal/core/domain"
)

// DocumentInput carries the caller-editable fields of a document reference.
type DocumentInput struct {
	Title    string
	Category string
	FileURL  string
	FileType string
}

type DocumentService interface {
	List(ctx context.Context, therapistID string) ([]domain.Document, error)
	Create(ctx context.Context, therapistID string, in DocumentInput) (*domain.Document, error)
}
