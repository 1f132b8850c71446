package analyzer

import (
	"strings"

	"github.com/hddy2000/steam-reviews/internal/types"
)

// Classifier scores a single review text against the lexicon. It is
// stateless after construction and safe for concurrent use.
type Classifier struct {
	lex Lexicon
}

func NewClassifier(lex Lexicon) *Classifier {
	return &Classifier{lex: lex}
}

// Sentiment is the per-review classification result.
type Sentiment struct {
	Label string
	Score float64
	// Keywords are the first matched lexicon terms, positive list first,
	// capped at 5.
	Keywords []string
}

// Classify scores text against the positive and negative lexicons. Negative
// terms weigh more than positive ones: a missed complaint costs more than a
// missed compliment. Empty text classifies as neutral, never as an error.
func (c *Classifier) Classify(text string) Sentiment {
	if text == "" {
		return Sentiment{Label: types.SentimentNeutral}
	}

	lower := strings.ToLower(text)
	score := 0.0
	var matched []string

	for _, word := range c.lex.Positive {
		if strings.Contains(lower, word) {
			score += 0.5
			matched = append(matched, word)
		}
	}
	for _, word := range c.lex.Negative {
		if strings.Contains(lower, word) {
			score -= 0.8
			matched = append(matched, word)
		}
	}

	label := types.SentimentNeutral
	if score > 0.3 {
		label = types.SentimentPositive
	}
	if score < -0.3 {
		label = types.SentimentNegative
	}

	if score > 1 {
		score = 1
	}
	if score < -1 {
		score = -1
	}

	if len(matched) > 5 {
		matched = matched[:5]
	}

	return Sentiment{Label: label, Score: score, Keywords: matched}
}

// Topics returns the subset of topic terms appearing in the raw text. Topic
// terms match with their own casing; "BUG" only matches uppercase mentions.
func (c *Classifier) Topics(text string) []string {
	if text == "" {
		return nil
	}
	var topics []string
	for _, word := range c.lex.Topics {
		if strings.Contains(text, word) {
			topics = append(topics, word)
		}
	}
	return topics
}

// KeywordLexicon exposes the broad frequency-ranking lexicon.
func (c *Classifier) KeywordLexicon() []string {
	return c.lex.Keywords
}

// Annotate attaches the classification results to a freshly ingested review.
func (c *Classifier) Annotate(r *types.Review) {
	s := c.Classify(r.Content)
	r.Sentiment = s.Label
	r.SentimentScore = s.Score
	r.Keywords = s.Keywords
	r.Topics = c.Topics(r.Content)
}
