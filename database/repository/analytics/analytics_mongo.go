package analyticsRepo

import (
	"context"
	"fmt"
	"time"

	"astrodesk/database"
	"astrodesk/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoAnalyticsRepo implements AnalyticsRepository using MongoDB. It reads the
// bookings and queries collections for dashboard totals; counter documents of
// shape {type, date, page?, count} live in the analytics collection.
type MongoAnalyticsRepo struct {
	analytics *mongo.Collection
	bookings  *mongo.Collection
	queries   *mongo.Collection
}

// NewMongoAnalyticsRepo creates a new instance of AnalyticsRepository using MongoDB.
func NewMongoAnalyticsRepo() AnalyticsRepository {
	return &MongoAnalyticsRepo{
		analytics: database.Collection("analytics"),
		bookings:  database.Collection("bookings"),
		queries:   database.Collection("queries"),
	}
}

func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

// IncrementDaily bumps the per-day counter for the given event type.
func (r *MongoAnalyticsRepo) IncrementDaily(counterType, date string) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	filter := bson.M{"type": counterType, "date": date}
	update := bson.M{"$inc": bson.M{"count": 1}}
	_, err := r.analytics.UpdateOne(ctx, filter, update, options.Update().SetUpsert(true))
	if err != nil {
		return fmt.Errorf("failed to increment %s counter: %w", counterType, err)
	}
	return nil
}

// IncrementPageView bumps the per-day counter for a page.
func (r *MongoAnalyticsRepo) IncrementPageView(page, date string) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	filter := bson.M{"type": models.AnalyticsTypePageViews, "page": page, "date": date}
	update := bson.M{"$inc": bson.M{"count": 1}}
	_, err := r.analytics.UpdateOne(ctx, filter, update, options.Update().SetUpsert(true))
	if err != nil {
		return fmt.Errorf("failed to increment page view counter: %w", err)
	}
	return nil
}

// TrendsSince returns counter rows of a type from the given date onward.
func (r *MongoAnalyticsRepo) TrendsSince(counterType, fromDate string) ([]models.AnalyticsCounter, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	filter := bson.M{"type": counterType, "date": bson.M{"$gte": fromDate}}
	opts := options.Find().SetSort(bson.D{{Key: "date", Value: 1}}).SetProjection(bson.M{"_id": 0})
	cursor, err := r.analytics.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch %s trends: %w", counterType, err)
	}
	defer cursor.Close(ctx)

	var rows []models.AnalyticsCounter
	if err := cursor.All(ctx, &rows); err != nil {
		return nil, fmt.Errorf("failed to decode %s trends: %w", counterType, err)
	}
	return rows, nil
}

// CountBookings counts bookings, optionally restricted to a status.
func (r *MongoAnalyticsRepo) CountBookings(status string) (int64, error) {
	return r.count(r.bookings, status)
}

// CountQueries counts queries, optionally restricted to a status.
func (r *MongoAnalyticsRepo) CountQueries(status string) (int64, error) {
	return r.count(r.queries, status)
}

func (r *MongoAnalyticsRepo) count(coll *mongo.Collection, status string) (int64, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	filter := bson.M{}
	if status != "" {
		filter["status"] = status
	}
	count, err := coll.CountDocuments(ctx, filter)
	if err != nil {
		return 0, fmt.Errorf("failed to count documents: %w", err)
	}
	return count, nil
}
