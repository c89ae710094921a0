package service

import (
	"context"
	"strconv"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/clinicalcanvas/practice-api/internal/core/domain"
	"github.com/clinicalcanvas/practice-api/internal/core/ports"
)

type stubAppointmentRepo struct {
	appts  map[string]*domain.Appointment
	nextID int
}

func newStubAppointmentRepo() *stubAppointmentRepo {
	return &stubAppointmentRepo{appts: make(map[string]*domain.Appointment)}
}

func (r *stubAppointmentRepo) List(_ context.Context, therapistID string) ([]domain.Appointment, error) {
	var out []domain.Appointment
	for _, a := range r.appts {
		if a.TherapistID == therapistID {
			out = append(out, *a)
		}
	}
	return out, nil
}

func (r *stubAppointmentRepo) Get(_ context.Context, therapistID, id string) (*domain.Appointment, error) {
	a, ok := r.appts[id]
	if !ok || a.TherapistID != therapistID {
		return nil, domain.ErrAppointmentNotFound
	}
	clone := *a
	return &clone, nil
}

func (r *stubAppointmentRepo) Create(_ context.Context, appt *domain.Appointment) (*domain.Appointment, error) {
	r.nextID++
	clone := *appt
	clone.ID = "a" + strconv.Itoa(r.nextID)
	r.appts[clone.ID] = &clone
	out := clone
	return &out, nil
}

func (r *stubAppointmentRepo) Update(_ context.Context, therapistID, id string, fields *domain.Appointment) (*domain.Appointment, error) {
	existing, ok := r.appts[id]
	if !ok || existing.TherapistID != therapistID {
		return nil, domain.ErrAppointmentNotFound
	}
	updated := *fields
	updated.ID = existing.ID
	updated.TherapistID = existing.TherapistID
	updated.CreatedAt = existing.CreatedAt
	r.appts[id] = &updated
	out := updated
	return &out, nil
}

func (r *stubAppointmentRepo) Delete(_ context.Context, therapistID, id string) error {
	a, ok := r.appts[id]
	if !ok || a.TherapistID != therapistID {
		return domain.ErrAppointmentNotFound
	}
	delete(r.appts, id)
	return nil
}

func apptInput(clientID string) ports.AppointmentInput {
	start := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	return ports.AppointmentInput{
		ClientID:  clientID,
		StartTime: start,
		EndTime:   start.Add(time.Hour),
		Type:      "therapy",
	}
}

func TestAppointmentService_Create_DefaultsAndOwner(t *testing.T) {
	clients := newStubClientRepo()
	repo := newStubAppointmentRepo()
	svc := NewAppointmentService(repo, clients, zerolog.Nop())

	created, err := svc.Create(context.Background(), "t1", apptInput(""))
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if created.TherapistID != "t1" {
		t.Fatalf("expected owner t1, got %q", created.TherapistID)
	}
	if created.Status != domain.AppointmentStatusScheduled {
		t.Fatalf("expected default status scheduled, got %q", created.Status)
	}
}

func TestAppointmentService_Create_ForeignClientRef(t *testing.T) {
	clients := newStubClientRepo()
	repo := newStubAppointmentRepo()
	svc := NewAppointmentService(repo, clients, zerolog.Nop())

	other, _ := clients.Create(context.Background(), &domain.Client{TherapistID: "t2", Name: "Bob"})

	if _, err := svc.Create(context.Background(), "t1", apptInput(other.ID)); err != domain.ErrClientNotFound {
		t.Fatalf("expected ErrClientNotFound for foreign client, got %v", err)
	}
}

func TestAppointmentService_List_JoinsClientNames(t *testing.T) {
	clients := newStubClientRepo()
	repo := newStubAppointmentRepo()
	svc := NewAppointmentService(repo, clients, zerolog.Nop())

	ana, _ := clients.Create(context.Background(), &domain.Client{TherapistID: "t1", Name: "Ana"})

	if _, err := svc.Create(context.Background(), "t1", apptInput(ana.ID)); err != nil {
		t.Fatalf("create with client failed: %v", err)
	}
	if _, err := svc.Create(context.Background(), "t1", apptInput("")); err != nil {
		t.Fatalf("create without client failed: %v", err)
	}

	list, err := svc.List(context.Background(), "t1")
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(list) != 2 {
		t.Fatalf("expected 2 appointments, got %d", len(list))
	}
	for _, a := range list {
		if a.ClientID == ana.ID && a.ClientName != "Ana" {
			t.Fatalf("expected joined name Ana, got %q", a.ClientName)
		}
		if a.ClientID == "" && a.ClientName != "" {
			t.Fatalf("expected empty name for unassigned appointment, got %q", a.ClientName)
		}
	}
}

func TestAppointmentService_Update_CrossTenant(t *testing.T) {
	clients := newStubClientRepo()
	repo := newStubAppointmentRepo()
	svc := NewAppointmentService(repo, clients, zerolog.Nop())

	created, _ := svc.Create(context.Background(), "t1", apptInput(""))

	if _, err := svc.Update(context.Background(), "t2", created.ID, apptInput("")); err != domain.ErrAppointmentNotFound {
		t.Fatalf("expected ErrAppointmentNotFound, got %v", err)
	}
	if err := svc.Delete(context.Background(), "t2", created.ID); err != domain.ErrAppointmentNotFound {
		t.Fatalf("expected ErrAppointmentNotFound on delete, got %v", err)
	}
}
