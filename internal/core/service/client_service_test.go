package service

import (
	"context"
	"strconv"
	"testing"

	"github.com/rs/zerolog"

	"github.com/clinicalcanvas/practice-api/internal/core/domain"
	"github.com/clinicalcanvas/practice-api/internal/core/ports"
)

func portsClientInput(name string) ports.ClientInput {
	return ports.ClientInput{Name: name, Email: "x@example.com"}
}

// stubClientRepo keeps clients in memory and enforces the same tenant
// scoping contract as the Mongo implementation.
type stubClientRepo struct {
	clients map[string]*domain.Client
	nextID  int
}

func newStubClientRepo() *stubClientRepo {
	return &stubClientRepo{clients: make(map[string]*domain.Client)}
}

func (r *stubClientRepo) List(_ context.Context, therapistID string) ([]domain.Client, error) {
	var out []domain.Client
	for _, c := range r.clients {
		if c.TherapistID == therapistID {
			out = append(out, *c)
		}
	}
	return out, nil
}

func (r *stubClientRepo) Get(_ context.Context, therapistID, id string) (*domain.Client, error) {
	c, ok := r.clients[id]
	if !ok || c.TherapistID != therapistID {
		return nil, domain.ErrClientNotFound
	}
	clone := *c
	return &clone, nil
}

func (r *stubClientRepo) Create(_ context.Context, client *domain.Client) (*domain.Client, error) {
	r.nextID++
	clone := *client
	clone.ID = "c" + strconv.Itoa(r.nextID)
	r.clients[clone.ID] = &clone
	out := clone
	return &out, nil
}

func (r *stubClientRepo) Update(_ context.Context, therapistID, id string, fields *domain.Client) (*domain.Client, error) {
	existing, ok := r.clients[id]
	if !ok || existing.TherapistID != therapistID {
		return nil, domain.ErrClientNotFound
	}
	updated := *fields
	updated.ID = existing.ID
	updated.TherapistID = existing.TherapistID
	updated.CreatedAt = existing.CreatedAt
	r.clients[id] = &updated
	out := updated
	return &out, nil
}

func (r *stubClientRepo) Delete(_ context.Context, therapistID, id string) error {
	c, ok := r.clients[id]
	if !ok || c.TherapistID != therapistID {
		return domain.ErrClientNotFound
	}
	delete(r.clients, id)
	return nil
}

func (r *stubClientRepo) NamesByIDs(_ context.Context, therapistID string, ids []string) (map[string]string, error) {
	names := make(map[string]string)
	for _, id := range ids {
		if c, ok := r.clients[id]; ok && c.TherapistID == therapistID {
			names[id] = c.Name
		}
	}
	return names, nil
}

func TestClientService_Create_StampsOwnerAndDefaults(t *testing.T) {
	repo := newStubClientRepo()
	svc := NewClientService(repo, zerolog.Nop())

	created, err := svc.Create(context.Background(), "t1", portsClientInput("Ana"))
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if created.TherapistID != "t1" {
		t.Fatalf("expected owner t1, got %q", created.TherapistID)
	}
	if created.Status != domain.ClientStatusActive {
		t.Fatalf("expected default status active, got %q", created.Status)
	}
	if created.CreatedAt.IsZero() || created.UpdatedAt.IsZero() {
		t.Fatalf("expected timestamps to be set")
	}
}

func TestClientService_Get_CrossTenant(t *testing.T) {
	repo := newStubClientRepo()
	svc := NewClientService(repo, zerolog.Nop())

	created, err := svc.Create(context.Background(), "t1", portsClientInput("Ana"))
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	// Another therapist sees the row as missing, not forbidden.
	if _, err := svc.Get(context.Background(), "t2", created.ID); err != domain.ErrClientNotFound {
		t.Fatalf("expected ErrClientNotFound, got %v", err)
	}

	if _, err := svc.Get(context.Background(), "t1", created.ID); err != nil {
		t.Fatalf("owner lookup failed: %v", err)
	}
}

func TestClientService_Update_ReplacesFields(t *testing.T) {
	repo := newStubClientRepo()
	svc := NewClientService(repo, zerolog.Nop())

	created, _ := svc.Create(context.Background(), "t1", portsClientInput("Ana"))

	in := portsClientInput("Ana Maria")
	in.Status = domain.ClientStatusArchived
	updated, err := svc.Update(context.Background(), "t1", created.ID, in)
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if updated.Name != "Ana Maria" || updated.Status != domain.ClientStatusArchived {
		t.Fatalf("unexpected update result: %+v", updated)
	}
	if updated.TherapistID != "t1" {
		t.Fatalf("owner must survive update, got %q", updated.TherapistID)
	}
}

func TestClientService_Delete_CrossTenant(t *testing.T) {
	repo := newStubClientRepo()
	svc := NewClientService(repo, zerolog.Nop())

	created, _ := svc.Create(context.Background(), "t1", portsClientInput("Ana"))

	if err := svc.Delete(context.Background(), "t2", created.ID); err != domain.ErrClientNotFound {
		t.Fatalf("expected ErrClientNotFound, got %v", err)
	}
	if err := svc.Delete(context.Background(), "t1", created.ID); err != nil {
		t.Fatalf("owner delete failed: %v", err)
	}
}
