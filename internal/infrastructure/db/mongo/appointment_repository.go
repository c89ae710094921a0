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

const appointmentsCollection = "appointments"

// AppointmentRepository is the tenant-scoped gateway for appointments.
type AppointmentRepository struct {
	coll *mongo.Collection
}

func NewAppointmentRepository(db *mongo.Database) *AppointmentRepository {
	return &AppointmentRepository{coll: db.Collection(appointmentsCollection)}
}

type appointmentDoc struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	TherapistID string             `bson:"therapist_id"`
	ClientID    string             `bson:"client_id,omitempty"`
	StartTime   time.Time          `bson:"start_time"`
	EndTime     time.Time          `bson:"end_time"`
	Type        string             `bson:"type,omitempty"`
	Status      string             `bson:"status"`
	Location    string             `bson:"location,omitempty"`
	Notes       string             `bson:"notes,omitempty"`
	CreatedAt   time.Time          `bson:"created_at"`
	UpdatedAt   time.Time          `bson:"updated_at"`
}

func (d appointmentDoc) toDomain() domain.Appointment {
	return domain.Appointment{
		ID:          d.ID.Hex(),
		TherapistID: d.TherapistID,
		ClientID:    d.ClientID,
		StartTime:   d.StartTime,
		EndTime:     d.EndTime,
		Type:        d.Type,
		Status:      d.Status,
		Location:    d.Location,
		Notes:       d.Notes,
		CreatedAt:   d.CreatedAt,
		UpdatedAt:   d.UpdatedAt,
	}
}

func (r *AppointmentRepository) List(ctx context.Context, therapistID string) ([]domain.Appointment, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "start_time", Value: -1}})
	cur, err := r.coll.Find(ctx, bson.M{"therapist_id": therapistID}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	appts := []domain.Appointment{}
	for cur.Next(ctx) {
		var doc appointmentDoc
		if err := cur.Decode(&doc); err != nil {
			return nil, err
		}
		appts = append(appts, doc.toDomain())
	}
	return appts, cur.Err()
}

func (r *AppointmentRepository) Get(ctx context.Context, therapistID, id string) (*domain.Appointment, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrAppointmentNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var doc appointmentDoc
	err = r.coll.FindOne(ctx, bson.M{"_id": oid, "therapist_id": therapistID}).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrAppointmentNotFound
		}
		return nil, err
	}
	a := doc.toDomain()
	return &a, nil
}

func (r *AppointmentRepository) Create(ctx context.Context, appt *domain.Appointment) (*domain.Appointment, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := appointmentDoc{
		TherapistID: appt.TherapistID,
		ClientID:    appt.ClientID,
		StartTime:   appt.StartTime,
		EndTime:     appt.EndTime,
		Type:        appt.Type,
		Status:      appt.Status,
		Location:    appt.Location,
		Notes:       appt.Notes,
		CreatedAt:   appt.CreatedAt,
		UpdatedAt:   appt.UpdatedAt,
	}

	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		return nil, err
	}

	doc.ID = res.InsertedID.(primitive.ObjectID)
	created := doc.toDomain()
	return &created, nil
}

func (r *AppointmentRepository) Update(ctx context.Context, therapistID, id string, fields *domain.Appointment) (*domain.Appointment, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrAppointmentNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	update := bson.M{"$set": bson.M{
		"client_id":  fields.ClientID,
		"start_time": fields.StartTime,
		"end_time":   fields.EndTime,
		"type":       fields.Type,
		"status":     fields.Status,
		"location":   fields.Location,
		"notes":      fields.Notes,
		"updated_at": fields.UpdatedAt,
	}}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var doc appointmentDoc
	err = r.coll.FindOneAndUpdate(ctx, bson.M{"_id": oid, "therapist_id": therapistID}, update, opts).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrAppointmentNotFound
		}
		return nil, err
	}
	a := doc.toDomain()
	return &a, nil
}

func (r *AppointmentRepository) Delete(ctx context.Context, therapistID, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrAppointmentNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid, "therapist_id": therapistID})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return domain.ErrAppointmentNotFound
	}
	return nil
}

// EnsureIndexes creates the ownership index used by every scoped query.
func (r *AppointmentRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	_, err := r.coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "therapist_id", Value: 1}, {Key: "start_time", Value: -1}},
	})
	return err
}
