package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/hddy2000/steam-reviews/internal/types"
)

var (
	// ErrGameExists is returned when registering an appid twice.
	ErrGameExists = errors.New("game already registered")
	// ErrGameLimit is returned when the registration cap is reached.
	ErrGameLimit = errors.New("game limit reached")
)

// ListGames returns all registered games, newest registration first.
func (s *Store) ListGames(ctx context.Context) ([]types.Game, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cur, err := s.db.Collection(colGames).Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("list games: %w", err)
	}
	defer cur.Close(ctx)

	var games []types.Game
	if err := cur.All(ctx, &games); err != nil {
		return nil, fmt.Errorf("decode games: %w", err)
	}
	return games, nil
}

// AddGame registers an app for tracking, enforcing uniqueness and the
// registration cap.
func (s *Store) AddGame(ctx context.Context, appID int, name string, limit int) (types.Game, error) {
	col := s.db.Collection(colGames)

	err := col.FindOne(ctx, bson.M{"appid": appID}).Err()
	if err == nil {
		return types.Game{}, ErrGameExists
	}
	if !errors.Is(err, mongo.ErrNoDocuments) {
		return types.Game{}, fmt.Errorf("check existing game: %w", err)
	}

	count, err := col.CountDocuments(ctx, bson.M{})
	if err != nil {
		return types.Game{}, fmt.Errorf("count games: %w", err)
	}
	if count >= int64(limit) {
		return types.Game{}, ErrGameLimit
	}

	game := types.Game{
		AppID:     appID,
		Name:      name,
		Enabled:   true,
		CreatedAt: time.Now(),
	}
	if _, err := col.InsertOne(ctx, game); err != nil {
		return types.Game{}, fmt.Errorf("insert game: %w", err)
	}
	s.log.WithField("appid", appID).WithField("name", name).Info("game registered")
	return game, nil
}

// DeleteGame removes a registration and everything derived from it.
func (s *Store) DeleteGame(ctx context.Context, appID int) error {
	if _, err := s.db.Collection(colGames).DeleteOne(ctx, bson.M{"appid": appID}); err != nil {
		return fmt.Errorf("delete game: %w", err)
	}
	if _, err := s.db.Collection(colReviews).DeleteMany(ctx, bson.M{"appid": appID}); err != nil {
		return fmt.Errorf("delete game reviews: %w", err)
	}
	if _, err := s.db.Collection(colDailyStats).DeleteMany(ctx, bson.M{"appid": appID}); err != nil {
		return fmt.Errorf("delete game stats: %w", err)
	}
	if _, err := s.db.Collection(colReports).DeleteMany(ctx, bson.M{"appid": appID}); err != nil {
		return fmt.Errorf("delete game reports: %w", err)
	}
	s.log.WithField("appid", appID).Info("game deleted")
	return nil
}
