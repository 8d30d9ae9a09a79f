package app

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/fx"

	"github.com/opty-app/opty-search/internal/config"
	"github.com/opty-app/opty-search/internal/repo/mongodb"
	"github.com/opty-app/opty-search/internal/usecase"
)

// newMongoDB connects to MongoDB, or returns nil when it is disabled so
// that downstream providers fall back to their noop implementations.
func newMongoDB(lc fx.Lifecycle, cfg *config.Config) (*mongodb.DB, error) {
	if !cfg.Mongo.Enabled {
		return nil, nil
	}

	opts := options.Client().
		SetAppName("opty-search").
		ApplyURI(cfg.Mongo.URI).
		SetMaxPoolSize(10).
		SetMaxConnIdleTime(30 * time.Second)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	mongoClient, err := mongo.Connect(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("init mongo client: %w", err)
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			return mongoClient.Ping(ctx, nil)
		},
		OnStop: func(ctx context.Context) error {
			return mongoClient.Disconnect(ctx)
		},
	})

	return &mongodb.DB{
		Client:   mongoClient,
		Database: mongoClient.Database(cfg.Mongo.Database),
	}, nil
}

func newSearchHistory(db *mongodb.DB) mongodb.SearchHistoryRepository {
	if db == nil {
		return mongodb.NoopSearchHistory{}
	}
	return mongodb.NewSearchHistoryRepository(db)
}

func asSearchHistoryPort(repo mongodb.SearchHistoryRepository) usecase.SearchHistory {
	return repo
}
