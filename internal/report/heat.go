package report

import (
	"math"

	"github.com/hddy2000/steam-reviews/internal/types"
)

// HeatScore derives a 0-100 engagement score from helpful votes and comment
// counts, with volume bonuses for larger batches. Requires a non-empty batch.
func HeatScore(reviews []types.Review) int {
	interactions := 0
	for _, r := range reviews {
		interactions += r.Helpful + r.CommentCount
	}
	avg := float64(interactions) / float64(len(reviews))

	score := int(math.Round(avg * 10))
	if score > 100 {
		score = 100
	}
	if len(reviews) > 50 {
		score += 10
	}
	if len(reviews) > 100 {
		score += 10
	}
	if score > 100 {
		score = 100
	}
	return score
}

// Trend compares the current positive rate with a previous snapshot. A swing
// of more than five points in either direction counts as a real trend; with
// no snapshot the report is stable by definition.
func Trend(currentRate int, previous *types.Stats) (string, int) {
	if previous == nil {
		return types.TrendStable, 0
	}
	change := currentRate - previous.PositiveRate
	switch {
	case change > 5:
		return types.TrendImproving, change
	case change < -5:
		return types.TrendDeclining, change
	default:
		return types.TrendStable, change
	}
}
