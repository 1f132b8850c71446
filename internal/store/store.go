package store

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"github.com/hddy2000/steam-reviews/internal/config"
	"github.com/hddy2000/steam-reviews/internal/logger"
)

// Collection names.
const (
	colReviews    = "reviews"
	colReports    = "sentiment_reports"
	colGames      = "games"
	colDailyStats = "daily_stats"
)

// Store wraps the MongoDB collections backing the service.
type Store struct {
	client *mongo.Client
	db     *mongo.Database
	log    *logger.Logger
}

func New(ctx context.Context, cfg config.MongoConfig, log *logger.Logger) (*Store, error) {
	ctx, cancel := context.WithTimeout(ctx, cfg.ConnectTimeout)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.URI))
	if err != nil {
		return nil, fmt.Errorf("connect mongodb: %w", err)
	}
	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		return nil, fmt.Errorf("ping mongodb: %w", err)
	}

	return &Store{
		client: client,
		db:     client.Database(cfg.Database),
		log:    log.WithComponent("store"),
	}, nil
}

func (s *Store) Close(ctx context.Context) error {
	return s.client.Disconnect(ctx)
}
