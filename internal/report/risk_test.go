package report

import (
	"strings"
	"testing"

	"github.com/hddy2000/steam-reviews/internal/types"
)

func TestDetectRisksHighNegativeRate(t *testing.T) {
	reviews := batch(2, 8)
	risks := DetectRisks(reviews, ComputeStats(reviews))

	if !hasRisk(risks, types.RiskHighNegativeRate) {
		t.Errorf("DetectRisks() = %v, want high_negative_rate", risks)
	}
	for _, r := range risks {
		if r.Type == types.RiskHighNegativeRate && r.Level != types.RiskLevelHigh {
			t.Errorf("high_negative_rate level = %q, want high", r.Level)
		}
	}
}

func TestDetectRisksSpikeAndTechnical(t *testing.T) {
	// 40% of a 50-review batch repeats the same complaint; that crosses
	// both the 0.3 spike threshold and the 0.2 technical threshold.
	var reviews []types.Review
	for i := 0; i < 20; i++ {
		reviews = append(reviews, review("闪退 优化差 退款", false, 0))
	}
	for i := 0; i < 30; i++ {
		reviews = append(reviews, review("挺好的", true, 0))
	}

	risks := DetectRisks(reviews, ComputeStats(reviews))
	if !hasRisk(risks, types.RiskNegativeSentimentSpike) {
		t.Errorf("DetectRisks() = %v, want negative_sentiment_spike", risks)
	}
	if !hasRisk(risks, types.RiskTechnicalIssues) {
		t.Errorf("DetectRisks() = %v, want technical_issues", risks)
	}
	if hasRisk(risks, types.RiskHighNegativeRate) {
		t.Errorf("DetectRisks() = %v, 60%% positive should not flag high_negative_rate", risks)
	}
}

func TestDetectRisksClean(t *testing.T) {
	reviews := batch(9, 1)
	if risks := DetectRisks(reviews, ComputeStats(reviews)); len(risks) != 0 {
		t.Errorf("DetectRisks() = %v, want none", risks)
	}
}

func TestSuggestMapsRisks(t *testing.T) {
	risks := []types.Risk{
		{Type: types.RiskHighNegativeRate},
		{Type: types.RiskNegativeSentimentSpike},
		{Type: types.RiskTechnicalIssues},
	}
	suggestions := Suggest(risks, 30)
	if len(suggestions) != 3 {
		t.Errorf("Suggest() = %v, want one suggestion per risk", suggestions)
	}
}

func TestSuggestUnknownRiskIgnored(t *testing.T) {
	if suggestions := Suggest([]types.Risk{{Type: "mystery"}}, 30); len(suggestions) != 0 {
		t.Errorf("Suggest() = %v, want unknown risk ignored", suggestions)
	}
}

func TestSuggestGoodStanding(t *testing.T) {
	suggestions := Suggest(nil, 60)
	if len(suggestions) != 1 || !strings.Contains(suggestions[0], "good standing") {
		t.Errorf("Suggest() = %v, want single good-standing suggestion", suggestions)
	}
}

func TestSuggestPromotionIsIndependent(t *testing.T) {
	// a promotion hint appears above 70% regardless of risk state
	if suggestions := Suggest(nil, 75); len(suggestions) != 2 {
		t.Errorf("Suggest() = %v, want good standing plus promotion", suggestions)
	}
	risks := []types.Risk{{Type: types.RiskTechnicalIssues}}
	if suggestions := Suggest(risks, 75); len(suggestions) != 2 {
		t.Errorf("Suggest() = %v, want risk suggestion plus promotion", suggestions)
	}
}

func TestHeatScore(t *testing.T) {
	// total=120, avg interactions 4 -> min(100, 40) + 10 + 10 = 60
	var reviews []types.Review
	for i := 0; i < 120; i++ {
		reviews = append(reviews, types.Review{Helpful: 3, CommentCount: 1})
	}
	if got := HeatScore(reviews); got != 60 {
		t.Errorf("HeatScore() = %d, want 60", got)
	}
}

func TestHeatScoreClamp(t *testing.T) {
	var reviews []types.Review
	for i := 0; i < 200; i++ {
		reviews = append(reviews, types.Review{Helpful: 50})
	}
	if got := HeatScore(reviews); got != 100 {
		t.Errorf("HeatScore() = %d, want clamp at 100", got)
	}
}

func TestHeatScoreSmallBatch(t *testing.T) {
	reviews := []types.Review{{Helpful: 1}, {Helpful: 1}}
	if got := HeatScore(reviews); got != 10 {
		t.Errorf("HeatScore() = %d, want 10 with no volume bonus", got)
	}
}

func TestTrend(t *testing.T) {
	cases := []struct {
		current    int
		previous   *types.Stats
		wantTrend  string
		wantChange int
	}{
		{50, nil, types.TrendStable, 0},
		{70, &types.Stats{PositiveRate: 60}, types.TrendImproving, 10},
		{50, &types.Stats{PositiveRate: 60}, types.TrendDeclining, -10},
		{65, &types.Stats{PositiveRate: 60}, types.TrendStable, 5},
		{55, &types.Stats{PositiveRate: 60}, types.TrendStable, -5},
	}
	for _, c := range cases {
		trend, change := Trend(c.current, c.previous)
		if trend != c.wantTrend || change != c.wantChange {
			t.Errorf("Trend(%d, %+v) = (%s, %d), want (%s, %d)",
				c.current, c.previous, trend, change, c.wantTrend, c.wantChange)
		}
	}
}

func hasRisk(risks []types.Risk, riskType string) bool {
	for _, r := range risks {
		if r.Type == riskType {
			return true
		}
	}
	return false
}
