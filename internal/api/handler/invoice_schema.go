package handler

import (
	"time"

	"github.com/clinicalcanvas/practice-api/internal/core/ports"
)

type invoiceRequest struct {
	ClientID      string     `json:"client_id"    validate:"required"`
	Amount        float64    `json:"amount"       validate:"required,gt=0"`
	Status        string     `json:"status"       validate:"omitempty,oneof=pending paid overdue cancelled"`
	Description   string     `json:"description"`
	DueDate       *time.Time `json:"due_date"`
	ServiceDate   *time.Time `json:"service_date"`
	ServiceType   string     `json:"service_type"`
	PaymentMethod string     `json:"payment_method"`
	Notes         string     `json:"notes"`
}

func (r invoiceRequest) toInput() ports.InvoiceInput {
	return ports.InvoiceInput{
		ClientID:      r.ClientID,
		Amount:        r.Amount,
		Status:        r.Status,
		Description:   r.Description,
		DueDate:       r.DueDate,
		ServiceDate:   r.ServiceDate,
		ServiceType:   r.ServiceType,
		PaymentMethod: r.PaymentMethod,
		Notes:         r.Notes,
	}
}
