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

// FreshReport returns the cached report for an app when it is younger than
// maxAge, or nil when there is none worth serving.
func (s *Store) FreshReport(ctx context.Context, appID int, maxAge time.Duration) (*types.Report, error) {
	cutoff := time.Now().Add(-maxAge)
	var rep types.Report
	err := s.db.Collection(colReports).FindOne(ctx, bson.M{
		"appid":     appID,
		"updatedAt": bson.M{"$gte": cutoff},
	}).Decode(&rep)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find cached report: %w", err)
	}
	return &rep, nil
}

// SaveReport upserts the report keyed by app id.
func (s *Store) SaveReport(ctx context.Context, rep types.Report) error {
	opts := options.Update().SetUpsert(true)
	if _, err := s.db.Collection(colReports).UpdateOne(ctx,
		bson.M{"appid": rep.AppID},
		bson.M{"$set": rep},
		opts,
	); err != nil {
		return fmt.Errorf("save report: %w", err)
	}
	return nil
}

// PruneReports drops reports older than the retention window.
func (s *Store) PruneReports(ctx context.Context, appID int, retention time.Duration) error {
	cutoff := time.Now().Add(-retention)
	res, err := s.db.Collection(colReports).DeleteMany(ctx, bson.M{
		"appid":     appID,
		"updatedAt": bson.M{"$lt": cutoff},
	})
	if err != nil {
		return fmt.Errorf("prune reports: %w", err)
	}
	if res.DeletedCount > 0 {
		s.log.WithField("appid", appID).WithField("deleted", res.DeletedCount).Debug("pruned reports")
	}
	return nil
}

// SaveStatsSnapshot upserts one stats snapshot per app and day; the snapshot
// history feeds the trend comparison.
func (s *Store) SaveStatsSnapshot(ctx context.Context, appID int, stats types.Stats) error {
	day := time.Now().UTC().Truncate(24 * time.Hour)
	opts := options.Update().SetUpsert(true)
	if _, err := s.db.Collection(colDailyStats).UpdateOne(ctx,
		bson.M{"appid": appID, "date": day},
		bson.M{"$set": types.StatsSnapshot{AppID: appID, Date: day, Stats: stats}},
		opts,
	); err != nil {
		return fmt.Errorf("save stats snapshot: %w", err)
	}
	return nil
}

// PreviousStats returns the snapshot before the most recent one, which is
// what the trend comparator measures against. Nil when history is too short.
func (s *Store) PreviousStats(ctx context.Context, appID int) (*types.Stats, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "date", Value: -1}}).
		SetSkip(1).
		SetLimit(1)
	cur, err := s.db.Collection(colDailyStats).Find(ctx, bson.M{"appid": appID}, opts)
	if err != nil {
		return nil, fmt.Errorf("find previous stats: %w", err)
	}
	defer cur.Close(ctx)

	var snapshots []types.StatsSnapshot
	if err := cur.All(ctx, &snapshots); err != nil {
		return nil, fmt.Errorf("decode previous stats: %w", err)
	}
	if len(snapshots) == 0 {
		return nil, nil
	}
	return &snapshots[0].Stats, nil
}
