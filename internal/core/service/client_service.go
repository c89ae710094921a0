package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/clinicalcanvas/practice-api/internal/core/domain"
	"github.com/clinicalcanvas/practice-api/internal/core/ports"
)

// ClientService handles caseload CRUD. Tenant scoping is delegated to the
// repository; this layer stamps ownership on create and applies defaults.
type ClientService struct {
	repo   ports.ClientRepository
	logger zerolog.Logger
}

func NewClientService(repo ports.ClientRepository, logger zerolog.Logger) *ClientService {
	return &ClientService{repo: repo, logger: logger}
}

func (s *ClientService) List(ctx context.Context, therapistID string) ([]domain.Client, error) {
	return s.repo.List(ctx, therapistID)
}

func (s *ClientService) Get(ctx context.Context, therapistID, id string) (*domain.Client, error) {
	return s.repo.Get(ctx, therapistID, id)
}

func (s *ClientService) Create(ctx context.Context, therapistID string, in ports.ClientInput) (*domain.Client, error) {
	now := time.Now().UTC()
	client := &domain.Client{
		TherapistID: therapistID,
		Name:        in.Name,
		Email:       in.Email,
		Phone:       in.Phone,
		DOB:         in.DOB,
		Address:     in.Address,
		Insurance:   in.Insurance,
		Notes:       in.Notes,
		Status:      defaultString(in.Status, domain.ClientStatusActive),
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	created, err := s.repo.Create(ctx, client)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to create client")
		return nil, err
	}

	s.logger.Info().Str("client_id", created.ID).Str("therapist_id", therapistID).Msg("client created")
	return created, nil
}

func (s *ClientService) Update(ctx context.Context, therapistID, id string, in ports.ClientInput) (*domain.Client, error) {
	fields := &domain.Client{
		Name:      in.Name,
		Email:     in.Email,
		Phone:     in.Phone,
		DOB:       in.DOB,
		Address:   in.Address,
		Insurance: in.Insurance,
		Notes:     in.Notes,
		Status:    defaultString(in.Status, domain.ClientStatusActive),
		UpdatedAt: time.Now().UTC(),
	}
	return s.repo.Update(ctx, therapistID, id, fields)
}

func (s *ClientService) Delete(ctx context.Context, therapistID, id string) error {
	if err := s.repo.Delete(ctx, therapistID, id); err != nil {
		return err
	}
	s.logger.Info().Str("client_id", id).Str("therapist_id", therapistID).Msg("client deleted")
	return nil
}

func defaultString(v, fallback string) string {
	if v == "" {
		return fallback
	}
	return v
}
