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

const notesCollection = "notes"

// NoteRepository is the tenant-scoped gateway for clinical notes.
type NoteRepository struct {
	coll *mongo.Collection
}

func NewNoteRepository(db *mongo.Database) *NoteRepository {
	return &NoteRepository{coll: db.Collection(notesCollection)}
}

type noteDoc struct {
	ID            primitive.ObjectID `bson:"_id,omitempty"`
	TherapistID   string             `bson:"therapist_id"`
	ClientID      string             `bson:"client_id"`
	AppointmentID string             `bson:"appointment_id,omitempty"`
	Type          string             `bson:"type"`
	Content       string             `bson:"content"`
	SessionDate   *time.Time         `bson:"session_date,omitempty"`
	CreatedAt     time.Time          `bson:"created_at"`
}

func (d noteDoc) toDomain() domain.Note {
	return domain.Note{
		ID:            d.ID.Hex(),
		TherapistID:   d.TherapistID,
		ClientID:      d.ClientID,
		AppointmentID: d.AppointmentID,
		Type:          d.Type,
		Content:       d.Content,
		SessionDate:   d.SessionDate,
		CreatedAt:     d.CreatedAt,
	}
}

func (r *NoteRepository) List(ctx context.Context, therapistID, clientID string) ([]domain.Note, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	filter := bson.M{"therapist_id": therapistID}
	if clientID != "" {
		filter["client_id"] = clientID
	}

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cur, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	notes := []domain.Note{}
	for cur.Next(ctx) {
		var doc noteDoc
		if err := cur.Decode(&doc); err != nil {
			return nil, err
		}
		notes = append(notes, doc.toDomain())
	}
	return notes, cur.Err()
}

func (r *NoteRepository) Create(ctx context.Context, note *domain.Note) (*domain.Note, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := noteDoc{
		TherapistID:   note.TherapistID,
		ClientID:      note.ClientID,
		AppointmentID: note.AppointmentID,
		Type:          note.Type,
		Content:       note.Content,
		SessionDate:   note.SessionDate,
		CreatedAt:     note.CreatedAt,
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
func (r *NoteRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	_, err := r.coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "therapist_id", Value: 1}, {Key: "client_id", Value: 1}, {Key: "created_at", Value: -1}},
	})
	return err
}
