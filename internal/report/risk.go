package report

import (
	"regexp"
	"strings"

	"github.com/hddy2000/steam-reviews/internal/types"
)

// spikeWords is the fixed list driving the negative-sentiment-spike check.
var spikeWords = []string{"退款", "垃圾", "骗钱", "坑", "失望"}

// techIssuePattern flags reviews mentioning technical problems.
var techIssuePattern = regexp.MustCompile(`(?i)(bug|闪退|卡顿|优化|服务器)`)

// DetectRisks runs three independent checks over the batch. Each check
// appends at most one risk, so the result holds between zero and three
// entries in a fixed order.
func DetectRisks(reviews []types.Review, stats types.Stats) []types.Risk {
	var risks []types.Risk

	if stats.PositiveRate < 50 {
		risks = append(risks, types.Risk{
			Type:    types.RiskHighNegativeRate,
			Level:   types.RiskLevelHigh,
			Message: "negative review rate is critically high and needs urgent attention",
		})
	}

	spikes := 0
	for _, r := range reviews {
		for _, word := range spikeWords {
			if strings.Contains(r.Content, word) {
				spikes++
				break
			}
		}
	}
	if float64(spikes) > float64(len(reviews))*0.3 {
		risks = append(risks, types.Risk{
			Type:    types.RiskNegativeSentimentSpike,
			Level:   types.RiskLevelMedium,
			Message: "a large share of reviews carry negative sentiment; investigate recent problems",
		})
	}

	tech := 0
	for _, r := range reviews {
		if techIssuePattern.MatchString(r.Content) {
			tech++
		}
	}
	if float64(tech) > float64(len(reviews))*0.2 {
		risks = append(risks, types.Risk{
			Type:    types.RiskTechnicalIssues,
			Level:   types.RiskLevelMedium,
			Message: "many players report technical issues; prioritize fixes",
		})
	}

	return risks
}

// Suggest maps risks to action suggestions. Unknown risk types are skipped.
// A clean risk list yields a single good-standing suggestion, and a high
// positive rate adds a promotion suggestion on top of either outcome.
func Suggest(risks []types.Risk, positiveRate int) []string {
	var suggestions []string

	if len(risks) == 0 {
		suggestions = append(suggestions, "Community sentiment is in good standing; keep it up.")
	} else {
		for _, risk := range risks {
			switch risk.Type {
			case types.RiskHighNegativeRate:
				suggestions = append(suggestions, "Respond to player concerns directly and publish an improvement plan.")
			case types.RiskNegativeSentimentSpike:
				suggestions = append(suggestions, "Watch community feedback closely and fix experience-breaking problems quickly.")
			case types.RiskTechnicalIssues:
				suggestions = append(suggestions, "Prioritize technical fixes and ship an optimization patch.")
			}
		}
	}

	if positiveRate > 70 {
		suggestions = append(suggestions, "Word of mouth is strong; consider increasing promotion.")
	}

	return suggestions
}
