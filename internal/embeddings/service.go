package embeddings

import (
	"context"
	"crypto/sha256"
	"encoding/binary"
	"encoding/hex"
	"fmt"
	"math"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"

	"github.com/jonathan/resume-analyzer/internal/cache"
)

const keyPrefix = "embedding:"

// Service wraps a Provider with a read-through cache keyed on the SHA-256
// of the input text. Concurrent requests for the same text are collapsed
// into a single backend call.
type Service struct {
	provider Provider
	store    cache.Store
	ttl      time.Duration
	timeout  time.Duration
	logger   *zap.Logger
	group    singleflight.Group
}

// NewService creates a cached embedding service. A nil store disables
// caching; every call hits the backend.
func NewService(provider Provider, store cache.Store, ttl, timeout time.Duration, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{
		provider: provider,
		store:    store,
		ttl:      ttl,
		timeout:  timeout,
		logger:   logger,
	}
}

// ModelID identifies the backing model.
func (s *Service) ModelID() string { return s.provider.ModelID() }

// Dim returns the backend vector dimensionality.
func (s *Service) Dim() int { return s.provider.Dim() }

// Embed returns the embedding for text, from cache when possible. A
// backend failure is returned as an error so the caller can fall back to
// a lexical strategy.
func (s *Service) Embed(ctx context.Context, text string) ([]float32, error) {
	key := cacheKey(text)

	if vec, ok := s.lookup(ctx, key); ok {
		return vec, nil
	}

	v, err, _ := s.group.Do(key, func() (interface{}, error) {
		// Re-check under the flight: a concurrent caller may have
		// populated the cache while we waited.
		if vec, ok := s.lookup(ctx, key); ok {
			return vec, nil
		}

		callCtx, cancel := s.callContext(ctx)
		defer cancel()

		vec, err := s.provider.Embed(callCtx, text)
		if err != nil {
			return nil, err
		}
		s.save(ctx, key, vec)
		return vec, nil
	})
	if err != nil {
		return nil, fmt.Errorf("embedding backend call failed: %w", err)
	}
	return v.([]float32), nil
}

// EmbedBatch returns embeddings for texts in input order. Cached entries
// are served locally and the misses go to the backend in one call. When
// that call fails the missing slots are zero-filled and the batch still
// succeeds; the caller detects the degradation through the zero vectors.
func (s *Service) EmbedBatch(ctx context.Context, texts []string) ([][]float32, error) {
	if len(texts) == 0 {
		return nil, nil
	}

	out := make([][]float32, len(texts))
	var missIdx []int
	var missTexts []string

	for i, text := range texts {
		if vec, ok := s.lookup(ctx, cacheKey(text)); ok {
			out[i] = vec
		} else {
			missIdx = append(missIdx, i)
			missTexts = append(missTexts, text)
		}
	}

	if len(missTexts) == 0 {
		return out, nil
	}

	callCtx, cancel := s.callContext(ctx)
	defer cancel()

	vectors, err := s.provider.EmbedBatch(callCtx, missTexts)
	if err != nil {
		s.logger.Warn("batch embedding failed, zero-filling misses",
			zap.Int("misses", len(missTexts)),
			zap.Error(err))
		for _, i := range missIdx {
			out[i] = ZeroVector(s.provider.Dim())
		}
		return out, nil
	}

	for n, i := range missIdx {
		out[i] = vectors[n]
		s.save(ctx, cacheKey(texts[i]), vectors[n])
	}
	return out, nil
}

func (s *Service) callContext(ctx context.Context) (context.Context, context.CancelFunc) {
	if s.timeout <= 0 {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, s.timeout)
}

func (s *Service) lookup(ctx context.Context, key string) ([]float32, bool) {
	if s.store == nil {
		return nil, false
	}
	raw, found, err := s.store.Get(ctx, key)
	if err != nil {
		s.logger.Warn("embedding cache read failed", zap.Error(err))
		return nil, false
	}
	if !found {
		return nil, false
	}
	vec, err := decodeVector(raw)
	if err != nil {
		s.logger.Warn("discarding corrupt cached embedding", zap.Error(err))
		return nil, false
	}
	return vec, true
}

func (s *Service) save(ctx context.Context, key string, vec []float32) {
	if s.store == nil {
		return
	}
	if err := s.store.Set(ctx, key, encodeVector(vec), s.ttl); err != nil {
		s.logger.Warn("embedding cache write failed", zap.Error(err))
	}
}

// cacheKey derives a stable cache key from text content, so identical
// inputs share an entry regardless of which request produced them.
func cacheKey(text string) string {
	sum := sha256.Sum256([]byte(text))
	return keyPrefix + hex.EncodeToString(sum[:])
}

func encodeVector(vec []float32) []byte {
	buf := make([]byte, 4*len(vec))
	for i, x := range vec {
		binary.LittleEndian.PutUint32(buf[4*i:], math.Float32bits(x))
	}
	return buf
}

func decodeVector(raw []byte) ([]float32, error) {
	if len(raw)%4 != 0 {
		return nil, fmt.Errorf("cached vector has %d bytes, not a multiple of 4", len(raw))
	}
	vec := make([]float32, len(raw)/4)
	for i := range vec {
		vec[i] = math.Float32frombits(binary.LittleEndian.Uint32(raw[4*i:]))
	}
	return vec, nil
}
