package similarity

import (
	"math"

	"github.com/jonathan/resume-analyzer/internal/textproc"
)

// TFIDFCorpus is a term-frequency–inverse-document-frequency vector space
// fitted jointly over a set of documents. Two documents are enough for a
// valid comparison; larger corpora improve IDF quality. Features are
// unigrams and bigrams over stop-word-filtered tokens, weighted with
// smoothed IDF and L2-normalized, matching the common vectorizer defaults.
type TFIDFCorpus struct {
	vectors []map[string]float64
}

// NewTFIDFCorpus fits a vector space over docs.
func NewTFIDFCorpus(docs []string) *TFIDFCorpus {
	n := len(docs)
	termDocs := make([][]string, n)
	df := make(map[string]int)

	for i, doc := range docs {
		terms := ngrams(textproc.ContentTokens(doc))
		termDocs[i] = terms

		unique := make(map[string]struct{}, len(terms))
		for _, t := range terms {
			unique[t] = struct{}{}
		}
		for t := range unique {
			df[t]++
		}
	}

	// Smoothed IDF: ln((1+n)/(1+df)) + 1.
	idf := make(map[string]float64, len(df))
	for t, d := range df {
		idf[t] = math.Log(float64(1+n)/float64(1+d)) + 1.0
	}

	vectors := make([]map[string]float64, n)
	for i, terms := range termDocs {
		tf := make(map[string]float64, len(terms))
		for _, t := range terms {
			tf[t]++
		}
		vec := make(map[string]float64, len(tf))
		var norm float64
		for t, count := range tf {
			w := count * idf[t]
			vec[t] = w
			norm += w * w
		}
		if norm > 0 {
			inv := 1.0 / math.Sqrt(norm)
			for t := range vec {
				vec[t] *= inv
			}
		}
		vectors[i] = vec
	}

	return &TFIDFCorpus{vectors: vectors}
}

// Similarity returns the cosine similarity between documents i and j,
// clamped to [0,1]. Out-of-range indices score 0.
func (c *TFIDFCorpus) Similarity(i, j int) float64 {
	if i < 0 || j < 0 || i >= len(c.vectors) || j >= len(c.vectors) {
		return 0.0
	}

	a, b := c.vectors[i], c.vectors[j]
	// Iterate the smaller vector.
	if len(b) < len(a) {
		a, b = b, a
	}

	var dot float64
	for t, w := range a {
		if w2, ok := b[t]; ok {
			dot += w * w2
		}
	}

	// Vectors are unit length, so the dot product is the cosine.
	return Clamp(dot)
}

// Len returns the number of documents in the corpus.
func (c *TFIDFCorpus) Len() int {
	return len(c.vectors)
}

// TFIDFCosine computes TF-IDF cosine similarity between two texts using a
// two-document corpus.
func TFIDFCosine(a, b string) float64 {
	corpus := NewTFIDFCorpus([]string{a, b})
	return corpus.Similarity(0, 1)
}

// ngrams expands tokens into unigram and bigram features.
func ngrams(tokens []string) []string {
	if len(tokens) == 0 {
		return nil
	}
	out := make([]string, 0, 2*len(tokens)-1)
	out = append(out, tokens...)
	for i := 0; i+1 < len(tokens); i++ {
		out = append(out, tokens[i]+" "+tokens[i+1])
	}
	return out
}
