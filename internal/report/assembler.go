package report

import (
	"context"
	"time"

	"github.com/hddy2000/steam-reviews/internal/ai"
	"github.com/hddy2000/steam-reviews/internal/analyzer"
	"github.com/hddy2000/steam-reviews/internal/logger"
	"github.com/hddy2000/steam-reviews/internal/types"
)

// Augmenter is the optional external summarizer. Implementations must
// degrade to an outcome value instead of returning errors.
type Augmenter interface {
	Augment(ctx context.Context, stats types.Stats, reviews []types.Review) ai.Outcome
}

// Assembler builds reports from classified review batches. It holds no state
// between generations; a report is a pure function of the batch, the previous
// snapshot and the AI outcome.
type Assembler struct {
	classifier *analyzer.Classifier
	augmenter  Augmenter
	log        *logger.Logger
}

func NewAssembler(classifier *analyzer.Classifier, augmenter Augmenter, log *logger.Logger) *Assembler {
	return &Assembler{
		classifier: classifier,
		augmenter:  augmenter,
		log:        log.WithComponent("assembler"),
	}
}

// Generate produces one report for the batch. An empty batch yields the
// fixed stub report; it never reaches the aggregation math.
func (a *Assembler) Generate(ctx context.Context, appID int, reviews []types.Review, previous *types.Stats) types.Report {
	if len(reviews) == 0 {
		return stubReport(appID)
	}

	stats := ComputeStats(reviews)
	keywords := TopKeywords(reviews, a.classifier.KeywordLexicon())
	keyPoints := SelectKeyPoints(reviews)
	summary := Summarize(stats, keywords, keyPoints)
	rating := Rate(stats.PositiveRate, stats.SentimentDist)

	// The heuristic pipeline never depends on the AI outcome.
	risks := DetectRisks(reviews, stats)
	suggestions := Suggest(risks, stats.PositiveRate)
	heat := HeatScore(reviews)
	trend, change := Trend(stats.PositiveRate, previous)

	rep := types.Report{
		AppID:       appID,
		Summary:     summary,
		KeyPoints:   keyPoints,
		Sentiment:   rating,
		Stats:       stats,
		Keywords:    keywords,
		Risks:       risks,
		Suggestions: suggestions,
		ReviewCount: len(reviews),
		UpdatedAt:   time.Now(),
	}

	if a.augmenter != nil {
		a.merge(&rep, a.augmenter.Augment(ctx, stats, reviews))
	}

	rep.Overall = types.Overall{
		Rating: rep.Sentiment.Rating,
		Score:  rep.Sentiment.Score,
		Trend:  trend,
		Change: change,
		Heat:   heat,
	}
	return rep
}

// merge applies an AI outcome to the rule-based report. Only the summary and
// the rating tier may be overridden; score and label stay on the rater's
// numeric scale, and risks/suggestions/heat/trend are always rule-based.
func (a *Assembler) merge(rep *types.Report, outcome ai.Outcome) {
	switch outcome.Kind {
	case ai.KindStructured:
		analysis := outcome.Analysis
		if analysis.Summary != "" {
			rep.Summary = analysis.Summary
		}
		if validRating(analysis.Sentiment) {
			rep.Sentiment.Rating = analysis.Sentiment
		}
		if len(analysis.KeyPoints) > 0 {
			rep.KeyPoints = a.classifyKeyPoints(analysis.KeyPoints)
		}
		rep.AIAnalysis = &types.AIAnalysis{
			Strengths:   analysis.Strengths,
			Weaknesses:  analysis.Weaknesses,
			Risks:       analysis.Risks,
			Suggestions: analysis.Suggestions,
		}
		rep.AIGenerated = true
	case ai.KindUnstructured:
		rep.Summary = outcome.Raw
		rep.AIGenerated = true
	case ai.KindUnavailable:
		// rule-based report stands as-is
	}
}

// classifyKeyPoints types each AI key point by running it through the
// sentiment classifier instead of trusting its position in the list. The AI
// excerpts carry no engagement metadata, so helpful and playtime stay zero.
func (a *Assembler) classifyKeyPoints(points []string) []types.KeyPoint {
	out := make([]types.KeyPoint, 0, len(points))
	for _, p := range points {
		kind := types.SentimentPositive
		if a.classifier.Classify(p).Label == types.SentimentNegative {
			kind = types.SentimentNegative
		}
		out = append(out, types.KeyPoint{
			Type:    kind,
			Content: Excerpt(p, excerptLimit),
		})
	}
	return out
}

func validRating(s string) bool {
	switch s {
	case types.SentimentPositive, types.SentimentNeutral, types.SentimentNegative, types.SentimentCritical:
		return true
	}
	return false
}

func stubReport(appID int) types.Report {
	return types.Report{
		AppID:       appID,
		Summary:     "no data",
		KeyPoints:   []types.KeyPoint{},
		Sentiment:   types.SentimentRating{Rating: types.SentimentNeutral, Score: 50, Label: "mixed"},
		Keywords:    []types.KeywordCount{},
		Risks:       []types.Risk{},
		Suggestions: []string{},
		Overall: types.Overall{
			Rating: types.SentimentNeutral,
			Score:  50,
			Trend:  types.TrendStable,
		},
		UpdatedAt: time.Now(),
	}
}
