package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/clinicalcanvas/practice-api/internal/core/domain"
	"github.com/clinicalcanvas/practice-api/internal/core/ports"
)

// AppointmentService handles schedule CRUD. A client reference supplied on
// create or update must resolve inside the caller's tenant; a foreign client
// id fails the same way a missing one does.
type AppointmentService struct {
	repo    ports.AppointmentRepository
	clients ports.ClientRepository
	logger  zerolog.Logger
}

func NewAppointmentService(repo ports.AppointmentRepository, clients ports.ClientRepository, logger zerolog.Logger) *AppointmentService {
	return &AppointmentService{repo: repo, clients: clients, logger: logger}
}

func (s *AppointmentService) List(ctx context.Context, therapistID string) ([]domain.AppointmentWithClient, error) {
	appts, err := s.repo.List(ctx, therapistID)
	if err != nil {
		return nil, err
	}

	names, err := s.clientNames(ctx, therapistID, clientIDs(appts))
	if err != nil {
		return nil, err
	}

	out := make([]domain.AppointmentWithClient, len(appts))
	for i, a := range appts {
		out[i] = domain.AppointmentWithClient{Appointment: a, ClientName: names[a.ClientID]}
	}
	return out, nil
}

func (s *AppointmentService) Create(ctx context.Context, therapistID string, in ports.AppointmentInput) (*domain.Appointment, error) {
	if err := s.checkClientRef(ctx, therapistID, in.ClientID); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	appt := &domain.Appointment{
		TherapistID: therapistID,
		ClientID:    in.ClientID,
		StartTime:   in.StartTime,
		EndTime:     in.EndTime,
		Type:        in.Type,
		Status:      defaultString(in.Status, domain.AppointmentStatusScheduled),
		Location:    in.Location,
		Notes:       in.Notes,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	created, err := s.repo.Create(ctx, appt)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to create appointment")
		return nil, err
	}

	s.logger.Info().Str("appointment_id", created.ID).Str("therapist_id", therapistID).Msg("appointment created")
	return created, nil
}

func (s *AppointmentService) Update(ctx context.Context, therapistID, id string, in ports.AppointmentInput) (*domain.Appointment, error) {
	if err := s.checkClientRef(ctx, therapistID, in.ClientID); err != nil {
		return nil, err
	}

	fields := &domain.Appointment{
		ClientID:  in.ClientID,
		StartTime: in.StartTime,
		EndTime:   in.EndTime,
		Type:      in.Type,
		Status:    defaultString(in.Status, domain.AppointmentStatusScheduled),
		Location:  in.Location,
		Notes:     in.Notes,
		UpdatedAt: time.Now().UTC(),
	}
	return s.repo.Update(ctx, therapistID, id, fields)
}

func (s *AppointmentService) Delete(ctx context.Context, therapistID, id string) error {
	return s.repo.Delete(ctx, therapistID, id)
}

// checkClientRef verifies the referenced client belongs to the therapist.
// An empty id is allowed — appointments may exist without a client.
func (s *AppointmentService) checkClientRef(ctx context.Context, therapistID, clientID string) error {
	if clientID == "" {
		return nil
	}
	_, err := s.clients.Get(ctx, therapistID, clientID)
	return err
}

func (s *AppointmentService) clientNames(ctx context.Context, therapistID string, ids []string) (map[string]string, error) {
	if len(ids) == 0 {
		return map[string]string{}, nil
	}
	return s.clients.NamesByIDs(ctx, therapistID, ids)
}

func clientIDs(appts []domain.Appointment) []string {
	seen := make(map[string]struct{}, len(appts))
	ids := make([]string, 0, len(appts))
	for _, a := range appts {
		if a.ClientID == "" {
			continue
		}
		if _, ok := seen[a.ClientID]; ok {
			continue
		}
		seen[a.ClientID] = struct{}{}
		ids = append(ids, a.ClientID)
	}
	return ids
}
