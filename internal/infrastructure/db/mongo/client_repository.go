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

const clientsCollection = "clients"

// ClientRepository is the tenant-scoped gateway for clients. Every filter it
// builds includes therapist_id, so rows owned by another therapist are
// indistinguishable from rows that do not exist.
type ClientRepository struct {
	coll *mongo.Collection
}

func NewClientRepository(db *mongo.Database) *ClientRepository {
	return &ClientRepository{coll: db.Collection(clientsCollection)}
}

type clientDoc struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	TherapistID string             `bson:"therapist_id"`
	Name        string             `bson:"name"`
	Email       string             `bson:"email,omitempty"`
	Phone       string             `bson:"phone,omitempty"`
	DOB         string             `bson:"dob,omitempty"`
	Address     string             `bson:"address,omitempty"`
	Insurance   string             `bson:"insurance,omitempty"`
	Notes       string             `bson:"notes,omitempty"`
	Status      string             `bson:"status"`
	CreatedAt   time.Time          `bson:"created_at"`
	UpdatedAt   time.Time          `bson:"updated_at"`
}

func (d clientDoc) toDomain() domain.Client {
	return domain.Client{
		ID:          d.ID.Hex(),
		TherapistID: d.TherapistID,
		Name:        d.Name,
		Email:       d.Email,
		Phone:       d.Phone,
		DOB:         d.DOB,
		Address:     d.Address,
		Insurance:   d.Insurance,
		Notes:       d.Notes,
		Status:      d.Status,
		CreatedAt:   d.CreatedAt,
		UpdatedAt:   d.UpdatedAt,
	}
}

func (r *ClientRepository) List(ctx context.Context, therapistID string) ([]domain.Client, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cur, err := r.coll.Find(ctx, bson.M{"therapist_id": therapistID}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	clients := []domain.Client{}
	for cur.Next(ctx) {
		var doc clientDoc
		if err := cur.Decode(&doc); err != nil {
			return nil, err
		}
		clients = append(clients, doc.toDomain())
	}
	return clients, cur.Err()
}

func (r *ClientRepository) Get(ctx context.Context, therapistID, id string) (*domain.Client, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrClientNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var doc clientDoc
	err = r.coll.FindOne(ctx, bson.M{"_id": oid, "therapist_id": therapistID}).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrClientNotFound
		}
		return nil, err
	}
	c := doc.toDomain()
	return &c, nil
}

func (r *ClientRepository) Create(ctx context.Context, client *domain.Client) (*domain.Client, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := clientDoc{
		TherapistID: client.TherapistID,
		Name:        client.Name,
		Email:       client.Email,
		Phone:       client.Phone,
		DOB:         client.DOB,
		Address:     client.Address,
		Insurance:   client.Insurance,
		Notes:       client.Notes,
		Status:      client.Status,
		CreatedAt:   client.CreatedAt,
		UpdatedAt:   client.UpdatedAt,
	}

	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		return nil, err
	}

	doc.ID = res.InsertedID.(primitive.ObjectID)
	created := doc.toDomain()
	return &created, nil
}

func (r *ClientRepository) Update(ctx context.Context, therapistID, id string, fields *domain.Client) (*domain.Client, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrClientNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	update := bson.M{"$set": bson.M{
		"name":       fields.Name,
		"email":      fields.Email,
		"phone":      fields.Phone,
		"dob":        fields.DOB,
		"address":    fields.Address,
		"insurance":  fields.Insurance,
		"notes":      fields.Notes,
		"status":     fields.Status,
		"updated_at": fields.UpdatedAt,
	}}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var doc clientDoc
	err = r.coll.FindOneAndUpdate(ctx, bson.M{"_id": oid, "therapist_id": therapistID}, update, opts).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrClientNotFound
		}
		return nil, err
	}
	c := doc.toDomain()
	return &c, nil
}

func (r *ClientRepository) Delete(ctx context.Context, therapistID, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrClientNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid, "therapist_id": therapistID})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return domain.ErrClientNotFound
	}
	return nil
}

func (r *ClientRepository) NamesByIDs(ctx context.Context, therapistID string, ids []string) (map[string]string, error) {
	oids := make([]primitive.ObjectID, 0, len(ids))
	for _, id := range ids {
		oid, err := primitive.ObjectIDFromHex(id)
		if err != nil {
			continue
		}
		oids = append(oids, oid)
	}
	if len(oids) == 0 {
		return map[string]string{}, nil
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	filter := bson.M{"therapist_id": therapistID, "_id": bson.M{"$in": oids}}
	opts := options.Find().SetProjection(bson.M{"name": 1})
	cur, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	names := make(map[string]string, len(oids))
	for cur.Next(ctx) {
		var doc struct {
			ID   primitive.ObjectID `bson:"_id"`
			Name string             `bson:"name"`
		}
		if err := cur.Decode(&doc); err != nil {
			return nil, err
		}
		names[doc.ID.Hex()] = doc.Name
	}
	return names, cur.Err()
}

// EnsureIndexes creates the ownership index used by every scoped query.
func (r *ClientRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	_, err := r.coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "therapist_id", Value: 1}, {Key: "created_at", Value: -1}},
	})
	return err
}
