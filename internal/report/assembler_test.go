package report

import (
	"context"
	"reflect"
	"testing"

	"github.com/hddy2000/steam-reviews/internal/ai"
	"github.com/hddy2000/steam-reviews/internal/analyzer"
	"github.com/hddy2000/steam-reviews/internal/logger"
	"github.com/hddy2000/steam-reviews/internal/types"
)

type stubAugmenter struct {
	outcome ai.Outcome
}

func (s stubAugmenter) Augment(context.Context, types.Stats, []types.Review) ai.Outcome {
	return s.outcome
}

func newAssembler(outcome ai.Outcome) *Assembler {
	classifier := analyzer.NewClassifier(analyzer.DefaultLexicon())
	return NewAssembler(classifier, stubAugmenter{outcome: outcome}, logger.New())
}

func TestGenerateEmptyBatch(t *testing.T) {
	rep := newAssembler(ai.Outcome{Kind: ai.KindUnavailable}).Generate(context.Background(), 10, nil, nil)

	if rep.Summary != "no data" {
		t.Errorf("Generate() summary = %q, want stub", rep.Summary)
	}
	if len(rep.KeyPoints) != 0 || len(rep.Keywords) != 0 || len(rep.Risks) != 0 {
		t.Errorf("Generate() stub not empty: %+v", rep)
	}
	if rep.Sentiment.Rating != types.SentimentNeutral {
		t.Errorf("Generate() stub rating = %q, want neutral", rep.Sentiment.Rating)
	}
	if rep.Overall.Trend != types.TrendStable {
		t.Errorf("Generate() stub trend = %q, want stable", rep.Overall.Trend)
	}
}

func TestGenerateRatingFromPositiveRate(t *testing.T) {
	rep := newAssembler(ai.Outcome{Kind: ai.KindUnavailable}).
		Generate(context.Background(), 10, batch(8, 2), nil)

	if rep.Stats.PositiveRate != 80 {
		t.Fatalf("Generate() positiveRate = %d, want 80", rep.Stats.PositiveRate)
	}
	want := types.SentimentRating{Rating: types.SentimentPositive, Score: 85, Label: "overwhelmingly positive"}
	if rep.Sentiment != want {
		t.Errorf("Generate() sentiment = %+v, want %+v", rep.Sentiment, want)
	}
	if rep.Overall.Rating != types.SentimentPositive || rep.Overall.Score != 85 {
		t.Errorf("Generate() overall = %+v", rep.Overall)
	}
	if rep.AIGenerated {
		t.Error("Generate() aiGenerated = true on unavailable outcome")
	}
	if rep.AIAnalysis != nil {
		t.Error("Generate() aiAnalysis set on unavailable outcome")
	}
}

func TestGenerateIdempotent(t *testing.T) {
	reviews := []types.Review{
		review("剧情不错 很推荐", true, 12),
		review("画面好 好玩", true, 5),
		review("优化差 闪退", false, 8),
		review("无聊", false, 0),
	}
	a := newAssembler(ai.Outcome{Kind: ai.KindUnavailable})

	first := a.Generate(context.Background(), 10, reviews, nil)
	second := a.Generate(context.Background(), 10, reviews, nil)

	// updatedAt differs between runs, everything derived must not
	first.UpdatedAt = second.UpdatedAt
	if !reflect.DeepEqual(first, second) {
		t.Errorf("Generate() not idempotent:\n%+v\n%+v", first, second)
	}
}

func TestGenerateStructuredOverride(t *testing.T) {
	outcome := ai.Outcome{
		Kind: ai.KindStructured,
		Analysis: ai.Analysis{
			Summary:     "ai summary",
			KeyPoints:   []string{"画面很棒 非常推荐", "闪退 优化差 退款"},
			Strengths:   []string{"visuals"},
			Weaknesses:  []string{"stability"},
			Risks:       []string{"refund wave"},
			Suggestions: []string{"patch crashes"},
			Sentiment:   types.SentimentCritical,
		},
	}
	rep := newAssembler(outcome).Generate(context.Background(), 10, batch(8, 2), nil)

	if rep.Summary != "ai summary" {
		t.Errorf("Generate() summary = %q, want AI override", rep.Summary)
	}
	if rep.Sentiment.Rating != types.SentimentCritical {
		t.Errorf("Generate() rating = %q, want AI override", rep.Sentiment.Rating)
	}
	// score and label stay on the rater's scale
	if rep.Sentiment.Score != 85 || rep.Sentiment.Label != "overwhelmingly positive" {
		t.Errorf("Generate() score/label overridden: %+v", rep.Sentiment)
	}
	if !rep.AIGenerated {
		t.Error("Generate() aiGenerated = false on structured outcome")
	}
	if rep.AIAnalysis == nil || rep.AIAnalysis.Strengths[0] != "visuals" {
		t.Errorf("Generate() aiAnalysis = %+v", rep.AIAnalysis)
	}
	// AI key points are re-classified, not split by index
	if len(rep.KeyPoints) != 2 {
		t.Fatalf("Generate() keyPoints = %+v", rep.KeyPoints)
	}
	if rep.KeyPoints[0].Type != types.SentimentPositive {
		t.Errorf("keyPoint 0 = %+v, want positive", rep.KeyPoints[0])
	}
	if rep.KeyPoints[1].Type != types.SentimentNegative {
		t.Errorf("keyPoint 1 = %+v, want negative", rep.KeyPoints[1])
	}
	// the heuristic pipeline stays rule-based
	if len(rep.Suggestions) == 0 || rep.Suggestions[0] == "patch crashes" {
		t.Errorf("Generate() suggestions = %v, want rule-based", rep.Suggestions)
	}
}

func TestGenerateUnstructuredFallback(t *testing.T) {
	outcome := ai.Outcome{Kind: ai.KindUnstructured, Raw: "plain prose answer"}
	rep := newAssembler(outcome).Generate(context.Background(), 10, batch(5, 5), nil)

	if rep.Summary != "plain prose answer" {
		t.Errorf("Generate() summary = %q, want raw AI text", rep.Summary)
	}
	if !rep.AIGenerated {
		t.Error("Generate() aiGenerated = false on unstructured outcome")
	}
	if rep.AIAnalysis != nil {
		t.Error("Generate() aiAnalysis set on unstructured outcome")
	}
	// the rating is never taken from unstructured output
	if rep.Sentiment.Rating != types.SentimentNeutral {
		t.Errorf("Generate() rating = %q, want rater's neutral", rep.Sentiment.Rating)
	}
}

func TestGenerateInvalidAIRatingIgnored(t *testing.T) {
	outcome := ai.Outcome{
		Kind:     ai.KindStructured,
		Analysis: ai.Analysis{Summary: "s", Sentiment: "enthusiastic"},
	}
	rep := newAssembler(outcome).Generate(context.Background(), 10, batch(8, 2), nil)
	if rep.Sentiment.Rating != types.SentimentPositive {
		t.Errorf("Generate() rating = %q, want rater's value for invalid AI rating", rep.Sentiment.Rating)
	}
}

func TestGenerateNilAugmenter(t *testing.T) {
	classifier := analyzer.NewClassifier(analyzer.DefaultLexicon())
	a := NewAssembler(classifier, nil, logger.New())
	rep := a.Generate(context.Background(), 10, batch(3, 1), nil)
	if rep.AIGenerated {
		t.Error("Generate() aiGenerated = true with no augmenter")
	}
}

func TestGenerateTrendAgainstPrevious(t *testing.T) {
	previous := &types.Stats{PositiveRate: 60}
	rep := newAssembler(ai.Outcome{Kind: ai.KindUnavailable}).
		Generate(context.Background(), 10, batch(8, 2), previous)

	if rep.Overall.Trend != types.TrendImproving || rep.Overall.Change != 20 {
		t.Errorf("Generate() overall = %+v, want improving by 20", rep.Overall)
	}
}
