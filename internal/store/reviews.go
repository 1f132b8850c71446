package store

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/hddy2000/steam-reviews/internal/types"
)

// UpsertReviews writes a batch of classified reviews, keyed by review id so
// refetching the same page is idempotent.
func (s *Store) UpsertReviews(ctx context.Context, reviews []types.Review) error {
	if len(reviews) == 0 {
		return nil
	}
	models := make([]mongo.WriteModel, 0, len(reviews))
	for _, r := range reviews {
		models = append(models, mongo.NewUpdateOneModel().
			SetFilter(bson.M{"reviewId": r.ReviewID}).
			SetUpdate(bson.M{"$set": r}).
			SetUpsert(true))
	}
	if _, err := s.db.Collection(colReviews).BulkWrite(ctx, models); err != nil {
		return fmt.Errorf("upsert reviews: %w", err)
	}
	return nil
}

// ListReviews returns the newest reviews for an app, most recent first.
func (s *Store) ListReviews(ctx context.Context, appID, limit int) ([]types.Review, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "date", Value: -1}}).
		SetLimit(int64(limit))
	cur, err := s.db.Collection(colReviews).Find(ctx, bson.M{"appid": appID}, opts)
	if err != nil {
		return nil, fmt.Errorf("list reviews: %w", err)
	}
	defer cur.Close(ctx)

	var reviews []types.Review
	if err := cur.All(ctx, &reviews); err != nil {
		return nil, fmt.Errorf("decode reviews: %w", err)
	}
	return reviews, nil
}

// TrimReviews deletes everything older than the newest keep reviews so the
// working set per app stays bounded.
func (s *Store) TrimReviews(ctx context.Context, appID, keep int) error {
	opts := options.Find().
		SetSort(bson.D{{Key: "date", Value: -1}}).
		SetSkip(int64(keep)).
		SetProjection(bson.M{"reviewId": 1})
	cur, err := s.db.Collection(colReviews).Find(ctx, bson.M{"appid": appID}, opts)
	if err != nil {
		return fmt.Errorf("find stale reviews: %w", err)
	}
	defer cur.Close(ctx)

	var stale []struct {
		ReviewID string `bson:"reviewId"`
	}
	if err := cur.All(ctx, &stale); err != nil {
		return fmt.Errorf("decode stale reviews: %w", err)
	}
	if len(stale) == 0 {
		return nil
	}

	ids := make([]string, 0, len(stale))
	for _, r := range stale {
		ids = append(ids, r.ReviewID)
	}
	if _, err := s.db.Collection(colReviews).DeleteMany(ctx, bson.M{
		"appid":    appID,
		"reviewId": bson.M{"$in": ids},
	}); err != nil {
		return fmt.Errorf("delete stale reviews: %w", err)
	}
	s.log.WithField("appid", appID).WithField("deleted", len(ids)).Debug("trimmed reviews")
	return nil
}
