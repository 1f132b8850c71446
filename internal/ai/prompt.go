package ai

import (
	"fmt"
	"sort"
	"strings"

	"github.com/hddy2000/steam-reviews/internal/types"
)

const (
	promptReviewLimit  = 20
	promptContentLimit = 200
)

const systemPrompt = `You are a game community opinion analyst. You receive aggregate review statistics and a sample of recent player reviews for one game. Analyze them and answer with ONE JSON object only, no commentary, no markdown fences, exactly this schema:
{
  "summary": "3-5 sentence overall assessment",
  "keyPoints": ["short representative player opinions"],
  "strengths": ["what players praise"],
  "weaknesses": ["what players criticize"],
  "risks": ["reputation or product risks you see"],
  "suggestions": ["concrete actions for the developer"],
  "sentiment": "positive|neutral|negative|critical"
}
Ground every statement in the provided reviews. Do not invent numbers.`

// BuildPrompt renders the user prompt: the aggregate stats plus the most
// helpful reviews, bounded in count and per-review length so the request
// stays small regardless of batch shape.
func BuildPrompt(stats types.Stats, reviews []types.Review) string {
	sample := make([]types.Review, len(reviews))
	copy(sample, reviews)
	sort.SliceStable(sample, func(i, j int) bool { return sample[i].Helpful > sample[j].Helpful })
	if len(sample) > promptReviewLimit {
		sample = sample[:promptReviewLimit]
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Review statistics: %d reviews total, %d recommended, %d not recommended, %d%% positive rate, average playtime %d hours.\n",
		stats.Total, stats.Positive, stats.Negative, stats.PositiveRate, stats.AvgPlaytime)
	fmt.Fprintf(&b, "Sentiment distribution: %d positive, %d neutral, %d negative.\n\n",
		stats.SentimentDist.Positive, stats.SentimentDist.Neutral, stats.SentimentDist.Negative)
	b.WriteString("Most helpful reviews:\n")
	for _, r := range sample {
		verdict := "recommended"
		if !r.Recommended {
			verdict = "not recommended"
		}
		fmt.Fprintf(&b, "- [%s, %dh played, %d found helpful] %s\n",
			verdict, r.Playtime, r.Helpful, truncate(r.Content, promptContentLimit))
	}
	return b.String()
}

func truncate(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit])
}
