package report

import (
	"sort"

	"github.com/hddy2000/steam-reviews/internal/types"
)

const excerptLimit = 100

// SelectKeyPoints picks the most-helpful recommended and not-recommended
// reviews as supporting evidence: up to three of each, ordered by descending
// helpful votes. Reviews nobody found helpful are skipped.
func SelectKeyPoints(reviews []types.Review) []types.KeyPoint {
	var points []types.KeyPoint
	points = append(points, pickSide(reviews, true)...)
	points = append(points, pickSide(reviews, false)...)
	return points
}

func pickSide(reviews []types.Review, recommended bool) []types.KeyPoint {
	var side []types.Review
	for _, r := range reviews {
		if r.Recommended == recommended && r.Helpful > 0 {
			side = append(side, r)
		}
	}
	sort.SliceStable(side, func(i, j int) bool { return side[i].Helpful > side[j].Helpful })
	if len(side) > 3 {
		side = side[:3]
	}

	kind := types.SentimentPositive
	if !recommended {
		kind = types.SentimentNegative
	}
	points := make([]types.KeyPoint, 0, len(side))
	for _, r := range side {
		points = append(points, types.KeyPoint{
			Type:     kind,
			Content:  Excerpt(r.Content, excerptLimit),
			Helpful:  r.Helpful,
			Playtime: r.Playtime,
		})
	}
	return points
}

// Excerpt truncates text to limit runes, marking the cut with an ellipsis.
func Excerpt(text string, limit int) string {
	runes := []rune(text)
	if len(runes) <= limit {
		return text
	}
	return string(runes[:limit]) + "..."
}
