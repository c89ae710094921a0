package ports

import (
	"context"

	"github.com/clinicalcanvas/practice-api/internal/core/domain"
)

// InvoiceRepository persists invoices, tenant-scoped on every call.
type InvoiceRepository interface {
	List(ctx context.Context, therapistID string) ([]domain.Invoice, error)
	Create(ctx context.Context, inv *domain.Invoice) (*domain.Invoice, error)
	Update(ctx context.Context, therapistID, id string, fields *domain.Invoice) (*domain.Invoice, error)
}
