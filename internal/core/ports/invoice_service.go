package ports

import (
	"context"
	"time"

	"github.com/clinicalcanvas/practice-api/internal/core/domain"
)

// InvoiceInput carries the caller-editable fields of an invoice.
// Status defaults to pending when empty.
type InvoiceInput struct {
	ClientID      string
	Amount        float64
	Status        string
	Description   string
	DueDate       *time.Time
	ServiceDate   *time.Time
	ServiceType   string
	PaymentMethod string
	Notes         string
}

type InvoiceService interface {
	List(ctx context.Context, therapistID string) ([]domain.InvoiceWithClient, error)
	Create(ctx context.Context, therapistID string, in InvoiceInput) (*domain.Invoice, error)
	Update(ctx context.Context, therapistID, id string, in InvoiceInput) (*domain.Invoice, error)
}
