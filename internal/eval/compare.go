package eval

import (
	"strings"

	"github.com/agenthands/parity/internal/core/model"
)

// Compare measures two answers the naive way: token counts plus Jaccard
// overlap of the lowercased token sets. Two empty answers score 0.0.
func Compare(a, b string) model.Comparison {
	tokensA := strings.Fields(a)
	tokensB := strings.Fields(b)

	setA := tokenSet(tokensA)
	setB := tokenSet(tokensB)

	inter := 0
	for tok := range setA {
		if _, ok := setB[tok]; ok {
			inter++
		}
	}
	union := len(setA) + len(setB) - inter

	jaccard := 0.0
	if union > 0 {
		jaccard = float64(inter) / float64(union)
	}

	return model.Comparison{
		LenA:           len(tokensA),
		LenB:           len(tokensB),
		JaccardOverlap: jaccard,
	}
}

func tokenSet(tokens []string) map[string]struct{} {
	set := make(map[string]struct{}, len(tokens))
	for _, tok := range tokens {
		set[strings.ToLower(tok)] = struct{}{}
	}
	return set
}
