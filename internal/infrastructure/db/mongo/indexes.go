package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/mongo"
)

// EnsureIndexes creates every collection index the repositories rely on.
// Called once at startup; index creation is idempotent.
func EnsureIndexes(ctx context.Context, db *mongo.Database) error {
	type indexer interface {
		EnsureIndexes(ctx context.Context) error
	}

	repos := map[string]indexer{
		"users":        NewAuthRepository(db),
		"clients":      NewClientRepository(db),
		"appointments": NewAppointmentRepository(db),
		"invoices":     NewInvoiceRepository(db),
		"notes":        NewNoteRepository(db),
		"documents":    NewDocumentRepository(db),
	}

	for name, r := range repos {
		if err := r.EnsureIndexes(ctx); err != nil {
			return fmt.Errorf("ensure indexes for %s: %w", name, err)
		}
	}
	return nil
}
