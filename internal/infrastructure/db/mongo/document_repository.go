package mongo

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/clinicalcanvas/practice-api/internal/core/domain"
)

const documentsCollection = "documents"

// DocumentRepository is the tenant-scoped gateway for document references.
type DocumentRepository struct {
	coll *mongo.Collection
}

func NewDocumentRepository(db *mongo.Database) *DocumentRepository {
	return &DocumentRepository{coll: db.Collection(documentsCollection)}
}

type documentDoc struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	TherapistID string             `bson:"therapist_id"`
	Title       string             `bson:"title"`
	Category    string             `bson:"category,omitempty"`
	FileURL     string             `bson:"file_url"`
	FileType    string             `bson:"file_type,omitempty"`
	CreatedAt   time.Time          `bson:"created_at"`
}

func (d documentDoc) toDomain() domain.Document {
	return domain.Document{
		ID:          d.ID.Hex(),
		TherapistID: d.TherapistID,
		Title:       d.Title,
		Category:    d.Category,
		FileURL:     d.FileURL,
		FileType:    d.FileType,
		CreatedAt:   d.CreatedAt,
	}
}

func (r *DocumentRepository) List(ctx context.Context, therapistID string) ([]domain.Document, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cur, err := r.coll.Find(ctx, bson.M{"therapist_id": therapistID}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	docs := []domain.Document{}
	for cur.Next(ctx) {
		var doc documentDoc
		if err := cur.Decode(&doc); err != nil {
			return nil, err
		}
		docs = append(docs, doc.toDomain())
	}
	return docs, cur.Err()
}

func (r *DocumentRepository) Create(ctx context.Context, d *domain.Document) (*domain.Document, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := documentDoc{
		TherapistID: d.TherapistID,
		Title:       d.Title,
		Category:    d.Category,
		FileURL:     d.FileURL,
		FileType:    d.FileType,
		CreatedAt:   d.CreatedAt,
	}

	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		return nil, err
	}

	doc.ID = res.InsertedID.(primitive.ObjectID)
	created := doc.toDomain()
	return &created, nil
}

// EnsureIndexes creates the ownership index used by every scoped query.
func (r *DocumentRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	_, err := r.coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "therapist_id", Value: 1}, {Key: "created_at", Value: -1}},
	})
	return err
}
