package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/clinicalcanvas/practice-api/internal/core/domain"
	"github.com/clinicalcanvas/practice-api/internal/core/ports"
)

// DocumentService handles document references. File contents live elsewhere;
// only the URL and metadata are stored.
type DocumentService struct {
	repo   ports.DocumentRepository
	logger zerolog.Logger
}

func NewDocumentService(repo ports.DocumentRepository, logger zerolog.Logger) *DocumentService {
	return &DocumentService{repo: repo, logger: logger}
}

func (s *DocumentService) List(ctx context.Context, therapistID string) ([]domain.Document, error) {
	return s.repo.List(ctx, therapistID)
}

func (s *DocumentService) Create(ctx context.Context, therapistID string, in ports.DocumentInput) (*domain.Document, error) {
	doc := &domain.Document{
		TherapistID: therapistID,
		Title:       in.Title,
		Category:    in.Category,
		FileURL:     in.FileURL,
		FileType:    in.FileType,
		CreatedAt:   time.Now().UTC(),
	}

	created, err := s.repo.Create(ctx, doc)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to create document")
		return nil, err
	}

	s.logger.Info().Str("document_id", created.ID).Str("therapist_id", therapistID).Msg("document created")
	return created, nil
}
