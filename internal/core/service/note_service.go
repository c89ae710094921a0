package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/clinicalcanvas/practice-api/internal/core/domain"
	"github.com/clinicalcanvas/practice-api/internal/core/ports"
)

// NoteService handles clinical notes. Both the client reference and the
// optional appointment reference must resolve inside the caller's tenant.
type NoteService struct {
	repo    ports.NoteRepository
	clients ports.ClientRepository
	appts   ports.AppointmentRepository
	logger  zerolog.Logger
}

func NewNoteService(repo ports.NoteRepository, clients ports.ClientRepository, appts ports.AppointmentRepository, logger zerolog.Logger) *NoteService {
	return &NoteService{repo: repo, clients: clients, appts: appts, logger: logger}
}

func (s *NoteService) List(ctx context.Context, therapistID, clientID string) ([]domain.NoteWithClient, error) {
	notes, err := s.repo.List(ctx, therapistID, clientID)
	if err != nil {
		return nil, err
	}

	ids := make([]string, 0, len(notes))
	seen := make(map[string]struct{}, len(notes))
	for _, n := range notes {
		if _, ok := seen[n.ClientID]; ok || n.ClientID == "" {
			continue
		}
		seen[n.ClientID] = struct{}{}
		ids = append(ids, n.ClientID)
	}

	names := map[string]string{}
	if len(ids) > 0 {
		if names, err = s.clients.NamesByIDs(ctx, therapistID, ids); err != nil {
			return nil, err
		}
	}

	out := make([]domain.NoteWithClient, len(notes))
	for i, n := range notes {
		out[i] = domain.NoteWithClient{Note: n, ClientName: names[n.ClientID]}
	}
	return out, nil
}

func (s *NoteService) Create(ctx context.Context, therapistID string, in ports.NoteInput) (*domain.Note, error) {
	if _, err := s.clients.Get(ctx, therapistID, in.ClientID); err != nil {
		return nil, err
	}
	if in.AppointmentID != "" {
		if _, err := s.appts.Get(ctx, therapistID, in.AppointmentID); err != nil {
			return nil, err
		}
	}

	note := &domain.Note{
		TherapistID:   therapistID,
		ClientID:      in.ClientID,
		AppointmentID: in.AppointmentID,
		Type:          defaultString(in.Type, domain.NoteTypeSession),
		Content:       in.Content,
		SessionDate:   in.SessionDate,
		CreatedAt:     time.Now().UTC(),
	}

	created, err := s.repo.Create(ctx, note)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to create note")
		return nil, err
	}

	s.logger.Info().Str("note_id", created.ID).Str("therapist_id", therapistID).Msg("note created")
	return created, nil
}
