package similarity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTFIDFCosine(t *testing.T) {
	t.Run("identical documents", func(t *testing.T) {
		text := "python developer building django services"
		assert.InDelta(t, 1.0, TFIDFCosine(text, text), 1e-9)
	})

	t.Run("disjoint documents", func(t *testing.T) {
		assert.Equal(t, 0.0, TFIDFCosine("alpha beta gamma", "delta epsilon zeta"))
	})

	t.Run("related documents score between", func(t *testing.T) {
		a := "python developer with django experience"
		b := "looking for python developer familiar with django"
		score := TFIDFCosine(a, b)
		assert.Greater(t, score, 0.0)
		assert.Less(t, score, 1.0)
	})

	t.Run("empty documents", func(t *testing.T) {
		assert.Equal(t, 0.0, TFIDFCosine("", ""))
		assert.Equal(t, 0.0, TFIDFCosine("something here", ""))
	})

	t.Run("stopwords carry no signal", func(t *testing.T) {
		assert.Equal(t, 0.0, TFIDFCosine("the and of", "the and of too"))
	})
}

func TestTFIDFCorpus(t *testing.T) {
	docs := []string{
		"python backend services",
		"python backend engineer",
		"frontend react developer",
	}
	corpus := NewTFIDFCorpus(docs)

	assert.Equal(t, 3, corpus.Len())

	t.Run("similar docs outrank dissimilar", func(t *testing.T) {
		near := corpus.Similarity(0, 1)
		far := corpus.Similarity(0, 2)
		assert.Greater(t, near, far)
	})

	t.Run("bounded", func(t *testing.T) {
		for i := 0; i < 3; i++ {
			for j := 0; j < 3; j++ {
				s := corpus.Similarity(i, j)
				assert.GreaterOrEqual(t, s, 0.0)
				assert.LessOrEqual(t, s, 1.0)
			}
		}
	})

	t.Run("out of range indices score zero", func(t *testing.T) {
		assert.Equal(t, 0.0, corpus.Similarity(-1, 0))
		assert.Equal(t, 0.0, corpus.Similarity(0, 99))
	})
}
