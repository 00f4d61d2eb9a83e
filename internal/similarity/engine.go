package similarity

import (
	"context"

	"go.uber.org/zap"
)

// Embedder produces fixed-length dense vectors for texts. The embeddings
// package provides the cached Gemini-backed implementation.
type Embedder interface {
	Embed(ctx context.Context, text string) ([]float32, error)
	EmbedBatch(ctx context.Context, texts []string) ([][]float32, error)
}

// Engine bundles the similarity strategies behind one object. The embedder
// is optional: when nil (backend disabled or failed to initialize at
// startup), embedding-based strategies report unavailable and callers fall
// back to the lexical or TF-IDF strategy. The engine holds no per-request
// state and is safe for concurrent use.
type Engine struct {
	embedder Embedder
	logger   *zap.Logger
}

// NewEngine creates a similarity engine. Pass a nil embedder to run with
// lexical strategies only.
func NewEngine(embedder Embedder, logger *zap.Logger) *Engine {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Engine{embedder: embedder, logger: logger}
}

// EmbeddingsAvailable reports whether the dense-embedding strategy can be
// used. Resolved once at construction; callers branch on this instead of
// checking for nil results.
func (e *Engine) EmbeddingsAvailable() bool {
	return e.embedder != nil
}

// Jaccard computes lexical overlap similarity.
func (e *Engine) Jaccard(a, b string) float64 {
	return Jaccard(a, b)
}

// TFIDFCosine computes frequency-weighted cosine similarity.
func (e *Engine) TFIDFCosine(a, b string) float64 {
	return TFIDFCosine(a, b)
}

// EmbeddingCosine computes dense-embedding cosine similarity between two
// texts. The boolean is false when the strategy is unavailable or the
// backend call failed; the caller must fall back rather than treat the
// score as zero.
func (e *Engine) EmbeddingCosine(ctx context.Context, a, b string) (float64, bool) {
	if e.embedder == nil {
		return 0.0, false
	}

	vectors, err := e.embedder.EmbedBatch(ctx, []string{a, b})
	if err != nil {
		e.logger.Warn("embedding similarity unavailable, falling back", zap.Error(err))
		return 0.0, false
	}
	if len(vectors) != 2 || isZero(vectors[0]) || isZero(vectors[1]) {
		return 0.0, false
	}

	return Clamp(Cosine(vectors[0], vectors[1])), true
}

// EmbeddingCosineBatch scores one query text against many documents in a
// single backend round trip, preserving document order. The boolean is
// false when the strategy is unavailable or the whole batch failed.
func (e *Engine) EmbeddingCosineBatch(ctx context.Context, query string, docs []string) ([]float64, bool) {
	if e.embedder == nil || len(docs) == 0 {
		return nil, false
	}

	texts := append([]string{query}, docs...)
	vectors, err := e.embedder.EmbedBatch(ctx, texts)
	if err != nil {
		e.logger.Warn("batch embedding similarity unavailable, falling back", zap.Error(err))
		return nil, false
	}
	if len(vectors) != len(texts) || isZero(vectors[0]) {
		return nil, false
	}

	scores := make([]float64, len(docs))
	for i := range docs {
		scores[i] = Clamp(Cosine(vectors[0], vectors[i+1]))
	}
	return scores, true
}

func isZero(v []float32) bool {
	for _, x := range v {
		if x != 0 {
			return false
		}
	}
	return true
}
