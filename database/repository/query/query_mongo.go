package queryRepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"astrodesk/database"
	"astrodesk/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoQueryRepo implements QueryRepository using MongoDB.
type MongoQueryRepo struct {
	coll *mongo.Collection
}

// NewMongoQueryRepo creates a new instance of QueryRepository using MongoDB.
func NewMongoQueryRepo() QueryRepository {
	coll := database.Collection("queries")
	repo := &MongoQueryRepo{coll: coll}

	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create query indexes: %v\n", err)
	}
	return repo
}

func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

func (r *MongoQueryRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "status", Value: 1}}, Options: options.Index().SetName("status_idx")},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexModels)
	if err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

// Create inserts a new query document.
func (r *MongoQueryRepo) Create(query *models.Query) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	_, err := r.coll.InsertOne(ctx, query)
	if err != nil {
		return fmt.Errorf("failed to create query: %w", err)
	}
	return nil
}

// GetByID retrieves a query by its unique ID.
func (r *MongoQueryRepo) GetByID(id string) (*models.Query, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var query models.Query
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&query); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to fetch query with id %s: %w", id, err)
	}
	return &query, nil
}

// GetAll retrieves all queries, newest first.
func (r *MongoQueryRepo) GetAll() ([]models.Query, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := r.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch queries: %w", err)
	}
	defer cursor.Close(ctx)

	var queries []models.Query
	if err := cursor.All(ctx, &queries); err != nil {
		return nil, fmt.Errorf("failed to decode queries: %w", err)
	}
	return queries, nil
}

// UpdateStatus sets the status of a query.
func (r *MongoQueryRepo) UpdateStatus(id, status string) error {
	return r.updateSet(id, bson.M{"status": status})
}

// UpdateAdminNotes sets the admin notes of a query.
func (r *MongoQueryRepo) UpdateAdminNotes(id, notes string) error {
	return r.updateSet(id, bson.M{"admin_notes": notes})
}

func (r *MongoQueryRepo) updateSet(id string, updateDoc bson.M) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	result, err := r.coll.UpdateOne(ctx, bson.M{"id": id}, bson.M{"$set": updateDoc})
	if err != nil {
		return fmt.Errorf("failed to update query with id %s: %w", id, err)
	}
	if result.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete removes a query document by its ID.
func (r *MongoQueryRepo) Delete(id string) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	result, err := r.coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return fmt.Errorf("failed to delete query with id %s: %w", id, err)
	}
	if result.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}
