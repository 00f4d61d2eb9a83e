package similarity

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubEmbedder returns canned vectors per text, or an error for every call.
type stubEmbedder struct {
	vectors map[string][]float32
	err     error
	calls   int
}

func (s *stubEmbedder) Embed(_ context.Context, text string) ([]float32, error) {
	s.calls++
	if s.err != nil {
		return nil, s.err
	}
	return s.vectors[text], nil
}

func (s *stubEmbedder) EmbedBatch(_ context.Context, texts []string) ([][]float32, error) {
	s.calls++
	if s.err != nil {
		return nil, s.err
	}
	out := make([][]float32, len(texts))
	for i, t := range texts {
		out[i] = s.vectors[t]
	}
	return out, nil
}

func TestCosine(t *testing.T) {
	assert.InDelta(t, 1.0, Cosine([]float32{1, 2, 3}, []float32{1, 2, 3}), 1e-6)
	assert.InDelta(t, 0.0, Cosine([]float32{1, 0}, []float32{0, 1}), 1e-6)
	assert.Equal(t, 0.0, Cosine([]float32{1, 2}, []float32{1, 2, 3}))
	assert.Equal(t, 0.0, Cosine([]float32{0, 0}, []float32{1, 1}))
	assert.Equal(t, 0.0, Cosine(nil, nil))
}

func TestEngineEmbeddingCosine(t *testing.T) {
	t.Run("available", func(t *testing.T) {
		stub := &stubEmbedder{vectors: map[string][]float32{
			"a": {1, 0},
			"b": {1, 0},
		}}
		engine := NewEngine(stub, nil)

		require.True(t, engine.EmbeddingsAvailable())
		score, ok := engine.EmbeddingCosine(context.Background(), "a", "b")
		require.True(t, ok)
		assert.InDelta(t, 1.0, score, 1e-6)
	})

	t.Run("nil embedder reports unavailable", func(t *testing.T) {
		engine := NewEngine(nil, nil)
		assert.False(t, engine.EmbeddingsAvailable())
		_, ok := engine.EmbeddingCosine(context.Background(), "a", "b")
		assert.False(t, ok)
	})

	t.Run("backend error reports unavailable", func(t *testing.T) {
		engine := NewEngine(&stubEmbedder{err: errors.New("boom")}, nil)
		_, ok := engine.EmbeddingCosine(context.Background(), "a", "b")
		assert.False(t, ok)
	})

	t.Run("zero vectors report unavailable", func(t *testing.T) {
		stub := &stubEmbedder{vectors: map[string][]float32{
			"a": {0, 0},
			"b": {1, 0},
		}}
		engine := NewEngine(stub, nil)
		_, ok := engine.EmbeddingCosine(context.Background(), "a", "b")
		assert.False(t, ok)
	})
}

func TestEngineEmbeddingCosineBatch(t *testing.T) {
	stub := &stubEmbedder{vectors: map[string][]float32{
		"query": {1, 0},
		"same":  {1, 0},
		"ortho": {0, 1},
	}}
	engine := NewEngine(stub, nil)

	scores, ok := engine.EmbeddingCosineBatch(context.Background(), "query", []string{"same", "ortho"})
	require.True(t, ok)
	require.Len(t, scores, 2)
	assert.InDelta(t, 1.0, scores[0], 1e-6)
	assert.InDelta(t, 0.0, scores[1], 1e-6)
	assert.Equal(t, 1, stub.calls, "one backend round trip for the whole batch")

	t.Run("empty docs", func(t *testing.T) {
		_, ok := engine.EmbeddingCosineBatch(context.Background(), "query", nil)
		assert.False(t, ok)
	})

	t.Run("failed batch", func(t *testing.T) {
		broken := NewEngine(&stubEmbedder{err: errors.New("down")}, nil)
		_, ok := broken.EmbeddingCosineBatch(context.Background(), "query", []string{"same"})
		assert.False(t, ok)
	})
}
