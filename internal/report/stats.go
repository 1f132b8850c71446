package report

import (
	"math"

	"github.com/hddy2000/steam-reviews/internal/types"
)

// ComputeStats aggregates one review batch. The batch must be non-empty;
// the assembler guards the empty case with a stub report before this runs.
func ComputeStats(reviews []types.Review) types.Stats {
	total := len(reviews)
	positive := 0
	playtimeSum := 0
	var dist types.SentimentDist

	for _, r := range reviews {
		if r.Recommended {
			positive++
		}
		playtimeSum += r.Playtime
		switch r.Sentiment {
		case types.SentimentPositive:
			dist.Positive++
		case types.SentimentNegative:
			dist.Negative++
		default:
			dist.Neutral++
		}
	}

	return types.Stats{
		Total:         total,
		Positive:      positive,
		Negative:      total - positive,
		PositiveRate:  int(math.Round(float64(positive) / float64(total) * 100)),
		SentimentDist: dist,
		AvgPlaytime:   int(math.Round(float64(playtimeSum) / float64(total))),
	}
}
