package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/clinicalcanvas/practice-api/internal/core/domain"
	"github.com/clinicalcanvas/practice-api/internal/core/ports"
)

// InvoiceService handles billing rows. Invoices always reference a client and
// the reference must resolve inside the caller's tenant.
type InvoiceService struct {
	repo    ports.InvoiceRepository
	clients ports.ClientRepository
	logger  zerolog.Logger
}

func NewInvoiceService(repo ports.InvoiceRepository, clients ports.ClientRepository, logger zerolog.Logger) *InvoiceService {
	return &InvoiceService{repo: repo, clients: clients, logger: logger}
}

func (s *InvoiceService) List(ctx context.Context, therapistID string) ([]domain.InvoiceWithClient, error) {
	invoices, err := s.repo.List(ctx, therapistID)
	if err != nil {
		return nil, err
	}

	ids := make([]string, 0, len(invoices))
	seen := make(map[string]struct{}, len(invoices))
	for _, inv := range invoices {
		if _, ok := seen[inv.ClientID]; ok || inv.ClientID == "" {
			continue
		}
		seen[inv.ClientID] = struct{}{}
		ids = append(ids, inv.ClientID)
	}

	names := map[string]string{}
	if len(ids) > 0 {
		if names, err = s.clients.NamesByIDs(ctx, therapistID, ids); err != nil {
			return nil, err
		}
	}

	out := make([]domain.InvoiceWithClient, len(invoices))
	for i, inv := range invoices {
		out[i] = domain.InvoiceWithClient{Invoice: inv, ClientName: names[inv.ClientID]}
	}
	return out, nil
}

func (s *InvoiceService) Create(ctx context.Context, therapistID string, in ports.InvoiceInput) (*domain.Invoice, error) {
	if _, err := s.clients.Get(ctx, therapistID, in.ClientID); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	inv := &domain.Invoice{
		TherapistID:   therapistID,
		ClientID:      in.ClientID,
		Amount:        in.Amount,
		Status:        defaultString(in.Status, domain.InvoiceStatusPending),
		Description:   in.Description,
		DueDate:       in.DueDate,
		ServiceDate:   in.ServiceDate,
		ServiceType:   in.ServiceType,
		PaymentMethod: in.PaymentMethod,
		Notes:         in.Notes,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	created, err := s.repo.Create(ctx, inv)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to create invoice")
		return nil, err
	}

	s.logger.Info().Str("invoice_id", created.ID).Str("therapist_id", therapistID).Msg("invoice created")
	return created, nil
}

func (s *InvoiceService) Update(ctx context.Context, therapistID, id string, in ports.InvoiceInput) (*domain.Invoice, error) {
	if _, err := s.clients.Get(ctx, therapistID, in.ClientID); err != nil {
		return nil, err
	}

	fields := &domain.Invoice{
		ClientID:      in.ClientID,
		Amount:        in.Amount,
		Status:        defaultString(in.Status, domain.InvoiceStatusPending),
		Description:   in.Description,
		DueDate:       in.DueDate,
		ServiceDate:   in.ServiceDate,
		ServiceType:   in.ServiceType,
		PaymentMethod: in.PaymentMethod,
		Notes:         in.Notes,
		UpdatedAt:     time.Now().UTC(),
	}
	return s.repo.Update(ctx, therapistID, id, fields)
}
