package report

import "github.com/hddy2000/steam-reviews/internal/types"

// Rate buckets the positive rate into a rating tier. The distribution is
// accepted for future refinement of the neutral/positive split but does not
// move the bucket thresholds.
func Rate(positiveRate int, _ types.SentimentDist) types.SentimentRating {
	switch {
	case positiveRate >= 80:
		return types.SentimentRating{Rating: types.SentimentPositive, Score: 85, Label: "overwhelmingly positive"}
	case positiveRate >= 60:
		return types.SentimentRating{Rating: types.SentimentPositive, Score: 70, Label: "mostly positive"}
	case positiveRate >= 40:
		return types.SentimentRating{Rating: types.SentimentNeutral, Score: 50, Label: "mixed"}
	case positiveRate >= 20:
		return types.SentimentRating{Rating: types.SentimentNegative, Score: 35, Label: "mostly negative"}
	default:
		return types.SentimentRating{Rating: types.SentimentNegative, Score: 20, Label: "overwhelmingly negative"}
	}
}
