package report

import (
	"fmt"
	"strings"

	"github.com/hddy2000/steam-reviews/internal/types"
)

// Summarize renders the rule-based summary text. Sections with no source
// data are omitted rather than emitted empty; the remaining parts join with
// blank lines.
func Summarize(stats types.Stats, keywords []types.KeywordCount, keyPoints []types.KeyPoint) string {
	var parts []string

	rate := stats.PositiveRate
	switch {
	case rate >= 80:
		parts = append(parts, fmt.Sprintf("Player reception is overwhelmingly positive (%d%% recommended); overall word of mouth is excellent.", rate))
	case rate >= 60:
		parts = append(parts, fmt.Sprintf("Player reception is largely positive (%d%% recommended); overall word of mouth is good.", rate))
	case rate >= 40:
		parts = append(parts, fmt.Sprintf("Player reception is mixed (%d%% recommended); opinions are divided.", rate))
	default:
		parts = append(parts, fmt.Sprintf("Player reception leans negative (%d%% recommended); the situation needs attention.", rate))
	}

	if len(keywords) > 0 {
		top := keywords
		if len(top) > 5 {
			top = top[:5]
		}
		words := make([]string, 0, len(top))
		for _, k := range top {
			words = append(words, k.Word)
		}
		parts = append(parts, fmt.Sprintf("Trending topics among players: %s.", strings.Join(words, ", ")))
	}

	for _, p := range keyPoints {
		if p.Type == types.SentimentPositive {
			parts = append(parts, fmt.Sprintf("Positive reviewers note: %s", p.Content))
			break
		}
	}
	for _, p := range keyPoints {
		if p.Type == types.SentimentNegative {
			parts = append(parts, fmt.Sprintf("Negative reviewers point out: %s", p.Content))
			break
		}
	}

	return strings.Join(parts, "\n\n")
}
