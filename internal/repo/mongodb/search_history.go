package mongodb

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/opty-app/opty-search/internal/models"
)

type SearchHistoryRepository interface {
	Record(ctx context.Context, record models.SearchRecord) error
	Recent(ctx context.Context, limit int) ([]models.SearchRecord, error)
}

type searchHistoryRepo struct {
	collection *mongo.Collection
}

func NewSearchHistoryRepository(db *DB) SearchHistoryRepository {
	return &searchHistoryRepo{
		collection: db.Database.Collection("search_history"),
	}
}

func (r *searchHistoryRepo) Record(ctx context.Context, record models.SearchRecord) error {
	_, err := r.collection.InsertOne(ctx, record)
	if err != nil {
		return fmt.Errorf("failed to record search: %w", err)
	}
	return nil
}

func (r *searchHistoryRepo) Recent(ctx context.Context, limit int) ([]models.SearchRecord, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetLimit(int64(limit))

	cursor, err := r.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list recent searches: %w", err)
	}
	defer cursor.Close(ctx)

	var records []models.SearchRecord
	for cursor.Next(ctx) {
		var record models.SearchRecord
		if err := cursor.Decode(&record); err != nil {
			return nil, fmt.Errorf("failed to decode search record: %w", err)
		}
		records = append(records, record)
	}

	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("cursor error: %w", err)
	}

	return records, nil
}

// NoopSearchHistory is used when MongoDB is disabled.
type NoopSearchHistory struct{}

func (NoopSearchHistory) Record(ctx context.Context, record models.SearchRecord) error {
	return nil
}

func (NoopSearchHistory) Recent(ctx context.Context, limit int) ([]models.SearchRecord, error) {
	return nil, nil
}
