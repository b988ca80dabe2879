package bookingRepo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoBookingRepo implements BookingRepository using MongoDB.
type MongoBookingRepo struct {
	coll *mongo.Collection
}

// NewMongoBookingRepo creates a BookingRepository bound to the given database.
func NewMongoBookingRepo(db *mongo.Database) BookingRepository {
	repo := &MongoBookingRepo{coll: db.Collection("bookings")}

	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create indexes: %v\n", err)
	}
	return repo
}

// newContext creates a context with the given timeout.
func newContext(parent context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(parent, timeout)
}

// ensureIndexes creates indexes for fields frequently used in queries.
func (r *MongoBookingRepo) ensureIndexes() error {
	ctx, cancel := newContext(context.Background(), 10*time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "doctorUsername", Value: 1}}},
		{Keys: bson.D{{Key: "bookedServices.customerPhoneNumber", Value: 1}}},
		{Keys: bson.D{{Key: "bookedServices.meetingStartTime", Value: 1}}},
	}

	if _, err := r.coll.Indexes().CreateMany(ctx, indexModels); err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

// CountDistinctDoctors counts distinct doctorUsername values.
func (r *MongoBookingRepo) CountDistinctDoctors(ctx context.Context) (int, error) {
	ctx, cancel := newContext(ctx, 5*time.Second)
	defer cancel()

	doctors, err := r.coll.Distinct(ctx, "doctorUsername", bson.M{})
	if err != nil {
		return 0, fmt.Errorf("distinct doctors query failed: %w", err)
	}
	return len(doctors), nil
}

// aggregate runs a pipeline and decodes all result documents into out.
func (r *MongoBookingRepo) aggregate(ctx context.Context, pipeline mongo.Pipeline, out interface{}) error {
	ctx, cancel := newContext(ctx, 10*time.Second)
	defer cancel()

	cursor, err := r.coll.Aggregate(ctx, pipeline)
	if err != nil {
		return fmt.Errorf("aggregation query failed: %w", err)
	}
	defer cursor.Close(ctx)

	if err := cursor.All(ctx, out); err != nil {
		return fmt.Errorf("failed to decode aggregation results: %w", err)
	}
	return nil
}

// find runs a filter query with the given options and decodes all matches.
func (r *MongoBookingRepo) find(ctx context.Context, filter bson.M, opts *options.FindOptions, out interface{}) error {
	ctx, cancel := newContext(ctx, 10*time.Second)
	defer cancel()

	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return fmt.Errorf("find query failed: %w", err)
	}
	defer cursor.Close(ctx)

	if err := cursor.All(ctx, out); err != nil {
		return fmt.Errorf("failed to decode bookings: %w", err)
	}
	return nil
}
