package report

import (
	"sort"
	"strings"

	"github.com/hddy2000/steam-reviews/internal/types"
)

// TopKeywords counts occurrences of the lexicon terms across the batch and
// returns the ten most frequent. Ties break on first-seen order during the
// counting pass, which makes the ranking deterministic for a fixed batch.
func TopKeywords(reviews []types.Review, lexicon []string) []types.KeywordCount {
	counts := map[string]int{}
	firstSeen := map[string]int{}
	seen := 0

	for _, r := range reviews {
		lower := strings.ToLower(r.Content)
		for _, word := range lexicon {
			if strings.Contains(lower, strings.ToLower(word)) {
				if _, ok := counts[word]; !ok {
					firstSeen[word] = seen
					seen++
				}
				counts[word]++
			}
		}
	}

	ranked := make([]types.KeywordCount, 0, len(counts))
	for word, count := range counts {
		ranked = append(ranked, types.KeywordCount{Word: word, Count: count})
	}
	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].Count != ranked[j].Count {
			return ranked[i].Count > ranked[j].Count
		}
		return firstSeen[ranked[i].Word] < firstSeen[ranked[j].Word]
	})

	if len(ranked) > 10 {
		ranked = ranked[:10]
	}
	return ranked
}
