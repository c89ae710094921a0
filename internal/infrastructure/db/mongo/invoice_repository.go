package mongo

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/clinicalcanvas/practice-api/internal/core/domain"
)

const invoicesCollection = "invoices"

// InvoiceRepository is the tenant-scoped gateway for invoices.
type InvoiceRepository struct {
	coll *mongo.Collection
}

func NewInvoiceRepository(db *mongo.Database) *InvoiceRepository {
	return &InvoiceRepository{coll: db.Collection(invoicesCollection)}
}

type invoiceDoc struct {
	ID            primitive.ObjectID `bson:"_id,omitempty"`
	TherapistID   string             `bson:"therapist_id"`
	ClientID      string             `bson:"client_id"`
	Amount        float64            `bson:"amount"`
	Status        string             `bson:"status"`
	Description   string             `bson:"description,omitempty"`
	DueDate       *time.Time         `bson:"due_date,omitempty"`
	ServiceDate   *time.Time         `bson:"service_date,omitempty"`
	ServiceType   string             `bson:"service_type,omitempty"`
	PaymentMethod string             `bson:"payment_method,omitempty"`
	Notes         string             `bson:"notes,omitempty"`
	CreatedAt     time.Time          `bson:"created_at"`
	UpdatedAt     time.Time          `bson:"updated_at"`
}

func (d invoiceDoc) toDomain() domain.Invoice {
	return domain.Invoice{
		ID:            d.ID.Hex(),
		TherapistID:   d.TherapistID,
		ClientID:      d.ClientID,
		Amount:        d.Amount,
		Status:        d.Status,
		Description:   d.Description,
		DueDate:       d.DueDate,
		ServiceDate:   d.ServiceDate,
		ServiceType:   d.ServiceType,
		PaymentMethod: d.PaymentMethod,
		Notes:         d.Notes,
		CreatedAt:     d.CreatedAt,
		UpdatedAt:     d.UpdatedAt,
	}
}

func (r *InvoiceRepository) List(ctx context.Context, therapistID string) ([]domain.Invoice, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cur, err := r.coll.Find(ctx, bson.M{"therapist_id": therapistID}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	invoices := []domain.Invoice{}
	for cur.Next(ctx) {
		var doc invoiceDoc
		if err := cur.Decode(&doc); err != nil {
			return nil, err
		}
		invoices = append(invoices, doc.toDomain())
	}
	return invoices, cur.Err()
}

func (r *InvoiceRepository) Create(ctx context.Context, inv *domain.Invoice) (*domain.Invoice, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := invoiceDoc{
		TherapistID:   inv.TherapistID,
		ClientID:      inv.ClientID,
		Amount:        inv.Amount,
		Status:        inv.Status,
		Description:   inv.Description,
		DueDate:       inv.DueDate,
		ServiceDate:   inv.ServiceDate,
		ServiceType:   inv.ServiceType,
		PaymentMethod: inv.PaymentMethod,
		Notes:         inv.Notes,
		CreatedAt:     inv.CreatedAt,
		UpdatedAt:     inv.UpdatedAt,
	}

	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		return nil, err
	}

	doc.ID = res.InsertedID.(primitive.ObjectID)
	created := doc.toDomain()
	return &created, nil
}

func (r *InvoiceRepository) Update(ctx context.Context, therapistID, id string, fields *domain.Invoice) (*domain.Invoice, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrInvoiceNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	update := bson.M{"$set": bson.M{
		"client_id":      fields.ClientID,
		"amount":         fields.Amount,
		"status":         fields.Status,
		"description":    fields.Description,
		"due_date":       fields.DueDate,
		"service_date":   fields.ServiceDate,
		"service_type":   fields.ServiceType,
		"payment_method": fields.PaymentMethod,
		"notes":          fields.Notes,
		"updated_at":     fields.UpdatedAt,
	}}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var doc invoiceDoc
	err = r.coll.FindOneAndUpdate(ctx, bson.M{"_id": oid, "therapist_id": therapistID}, update, opts).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrInvoiceNotFound
		}
		return nil, err
	}
	inv := doc.toDomain()
	return &inv, nil
}

// EnsureIndexes creates the ownership index used by every scoped query.
func (r *InvoiceRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	_, err := r.coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "therapist_id", Value: 1}, {Key: "created_at", Value: -1}},
	})
	return err
}
