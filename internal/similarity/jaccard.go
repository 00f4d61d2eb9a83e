// Package similarity computes bounded [0,1] similarities between text
// blobs using interchangeable strategies: lexical set overlap, TF-IDF
// cosine, and dense-embedding cosine.
package similarity

import "github.com/jonathan/resume-analyzer/internal/textproc"

// Jaccard computes lexical set-overlap similarity between two texts:
// |intersection| / |union| over lowercase whitespace tokens. It returns 0
// when either side has no tokens and is symmetric in its arguments. This is
// the cheapest strategy and the baseline fallback; it needs no external
// resources.
func Jaccard(a, b string) float64 {
	setA := tokenSet(a)
	setB := tokenSet(b)
	if len(setA) == 0 || len(setB) == 0 {
		return 0.0
	}

	intersection := 0
	for tok := range setA {
		if _, ok := setB[tok]; ok {
			intersection++
		}
	}
	union := len(setA) + len(setB) - intersection

	return float64(intersection) / float64(union)
}

func tokenSet(text string) map[string]struct{} {
	tokens := textproc.Tokenize(text)
	set := make(map[string]struct{}, len(tokens))
	for _, tok := range tokens {
		set[tok] = struct{}{}
	}
	return set
}

// Clamp bounds a score to [0,1], mapping NaN to 0.
func Clamp(score float64) float64 {
	if score != score { // NaN
		return 0.0
	}
	if score < 0.0 {
		return 0.0
	}
	if score > 1.0 {
		return 1.0
	}
	return score
}
