package mongo

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// AnalyticsRepository runs the dashboard's scoped aggregate queries. Each
// query carries the therapist_id filter like every other gateway call.
type AnalyticsRepository struct {
	clients      *mongo.Collection
	appointments *mongo.Collection
	invoices     *mongo.Collection
}

func NewAnalyticsRepository(db *mongo.Database) *AnalyticsRepository {
	return &AnalyticsRepository{
		clients:      db.Collection(clientsCollection),
		appointments: db.Collection(appointmentsCollection),
		invoices:     db.Collection(invoicesCollection),
	}
}

func (r *AnalyticsRepository) CountClients(ctx context.Context, therapistID string) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	return r.clients.CountDocuments(ctx, bson.M{"therapist_id": therapistID})
}

func (r *AnalyticsRepository) CountAppointmentsSince(ctx context.Context, therapistID string, since time.Time) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	filter := bson.M{
		"therapist_id": therapistID,
		"start_time":   bson.M{"$gte": since},
	}
	return r.appointments.CountDocuments(ctx, filter)
}

func (r *AnalyticsRepository) SumInvoiceAmounts(ctx context.Context, therapistID, status string, since *time.Time) (float64, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	match := bson.M{
		"therapist_id": therapistID,
		"status":       status,
	}
	if since != nil {
		match["service_date"] = bson.M{"$gte": *since}
	}

	pipeline := []bson.M{
		{"$match": match},
		{"$group": bson.M{"_id": nil, "total": bson.M{"$sum": "$amount"}}},
	}

	cur, err := r.invoices.Aggregate(ctx, pipeline)
	if err != nil {
		return 0, err
	}
	defer cur.Close(ctx)

	// No matching invoices yields an empty cursor; report zero, not an error.
	if !cur.Next(ctx) {
		return 0, cur.Err()
	}

	var result struct {
		Total float64 `bson:"total"`
	}
	if err := cur.Decode(&result); err != nil {
		return 0, err
	}
	return result.Total, nil
}
