package service

import (
	"context"
	"strconv"
	"testing"

	"github.com/rs/zerolog"

	"github.com/clinicalcanvas/practice-api/internal/core/domain"
	"github.com/clinicalcanvas/practice-api/internal/core/ports"
)

type stubInvoiceRepo struct {
	invoices map[string]*domain.Invoice
	nextID   int
}

func newStubInvoiceRepo() *stubInvoiceRepo {
	return &stubInvoiceRepo{invoices: make(map[string]*domain.Invoice)}
}

func (r *stubInvoiceRepo) List(_ context.Context, therapistID string) ([]domain.Invoice, error) {
	var out []domain.Invoice
	for _, inv := range r.invoices {
		if inv.TherapistID == therapistID {
			out = append(out, *inv)
		}
	}
	return out, nil
}

func (r *stubInvoiceRepo) Create(_ context.Context, inv *domain.Invoice) (*domain.Invoice, error) {
	r.nextID++
	clone := *inv
	clone.ID = "i" + strconv.Itoa(r.nextID)
	r.invoices[clone.ID] = &clone
	out := clone
	return &out, nil
}

func (r *stubInvoiceRepo) Update(_ context.Context, therapistID, id string, fields *domain.Invoice) (*domain.Invoice, error) {
	existing, ok := r.invoices[id]
	if !ok || existing.TherapistID != therapistID {
		return nil, domain.ErrInvoiceNotFound
	}
	updated := *fields
	updated.ID = existing.ID
	updated.TherapistID = existing.TherapistID
	updated.CreatedAt = existing.CreatedAt
	r.invoices[id] = &updated
	out := updated
	return &out, nil
}

func TestInvoiceService_Create_RequiresOwnClient(t *testing.T) {
	clients := newStubClientRepo()
	repo := newStubInvoiceRepo()
	svc := NewInvoiceService(repo, clients, zerolog.Nop())

	foreign, _ := clients.Create(context.Background(), &domain.Client{TherapistID: "t2", Name: "Bob"})

	in := ports.InvoiceInput{ClientID: foreign.ID, Amount: 120}
	if _, err := svc.Create(context.Background(), "t1", in); err != domain.ErrClientNotFound {
		t.Fatalf("expected ErrClientNotFound, got %v", err)
	}
}

func TestInvoiceService_Create_DefaultsPending(t *testing.T) {
	clients := newStubClientRepo()
	repo := newStubInvoiceRepo()
	svc := NewInvoiceService(repo, clients, zerolog.Nop())

	ana, _ := clients.Create(context.Background(), &domain.Client{TherapistID: "t1", Name: "Ana"})

	created, err := svc.Create(context.Background(), "t1", ports.InvoiceInput{ClientID: ana.ID, Amount: 150})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if created.Status != domain.InvoiceStatusPending {
		t.Fatalf("expected default status pending, got %q", created.Status)
	}
	if created.TherapistID != "t1" {
		t.Fatalf("expected owner t1, got %q", created.TherapistID)
	}
}

func TestInvoiceService_List_JoinsClientNames(t *testing.T) {
	clients := newStubClientRepo()
	repo := newStubInvoiceRepo()
	svc := NewInvoiceService(repo, clients, zerolog.Nop())

	ana, _ := clients.Create(context.Background(), &domain.Client{TherapistID: "t1", Name: "Ana"})
	if _, err := svc.Create(context.Background(), "t1", ports.InvoiceInput{ClientID: ana.ID, Amount: 90}); err != nil {
		t.Fatalf("create failed: %v", err)
	}

	list, err := svc.List(context.Background(), "t1")
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(list) != 1 {
		t.Fatalf("expected 1 invoice, got %d", len(list))
	}
	if list[0].ClientName != "Ana" {
		t.Fatalf("expected joined name Ana, got %q", list[0].ClientName)
	}
}

func TestInvoiceService_Update_CrossTenant(t *testing.T) {
	clients := newStubClientRepo()
	repo := newStubInvoiceRepo()
	svc := NewInvoiceService(repo, clients, zerolog.Nop())

	ana, _ := clients.Create(context.Background(), &domain.Client{TherapistID: "t1", Name: "Ana"})
	created, _ := svc.Create(context.Background(), "t1", ports.InvoiceInput{ClientID: ana.ID, Amount: 90})

	// t2 has no such client, so the reference check fires before the row lookup.
	if _, err := svc.Update(context.Background(), "t2", created.ID, ports.InvoiceInput{ClientID: ana.ID, Amount: 90}); err != domain.ErrClientNotFound {
		t.Fatalf("expected ErrClientNotFound, got %v", err)
	}
}
