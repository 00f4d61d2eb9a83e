// Package embeddings provides the dense-embedding backend used by the
// similarity engine, wrapped with a content-hash cache. Backend inference
// is the most expensive operation in the service, so cache reuse and
// batching are the primary performance lever.
package embeddings

import "context"

// DefaultDim is the vector dimensionality assumed before the backend has
// reported its own (text-embedding-004 produces 768-dimensional vectors).
const DefaultDim = 768

// Provider embeds text into fixed-length float vectors.
//
// Implementations must be deterministic for the same input text and model.
type Provider interface {
	ModelID() string
	Dim() int
	Embed(ctx context.Context, text string) ([]float32, error)
	// EmbedBatch embeds several texts in one backend call, preserving
	// input order.
	EmbedBatch(ctx context.Context, texts []string) ([][]float32, error)
}

// ZeroVector returns an all-zero vector of the given dimension, the
// degraded fallback when the backend cannot produce a real embedding.
func ZeroVector(dim int) []float32 {
	if dim <= 0 {
		dim = DefaultDim
	}
	return make([]float32, dim)
}
