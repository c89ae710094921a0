package domain

import "time"

const (
	InvoiceStatusPending   = "pending"
	InvoiceStatusPaid      = "paid"
	InvoiceStatusOverdue   = "overdue"
	InvoiceStatusCancelled = "cancelled"
)

// Invoice bills a client for services rendered.
type Invoice struct {
	ID            string     `json:"id"`
	TherapistID   string     `json:"therapist_id"`
	ClientID      string     `json:"client_id"`
	Amount        float64    `json:"amount"`
	Status        string     `json:"status"`
	Description   string     `json:"description,omitempty"`
	DueDate       *time.Time `json:"due_date,omitempty"`
	ServiceDate   *time.Time `json:"service_date,omitempty"`
	ServiceType   string     `json:"service_type,omitempty"`
	PaymentMethod string     `json:"payment_method,omitempty"`
	Notes         string     `json:"notes,omitempty"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
}

// InvoiceWithClient carries the client display name for list views.
type InvoiceWithClient struct {
	Invoice
	ClientName string `json:"client_name,omitempty"`
}
