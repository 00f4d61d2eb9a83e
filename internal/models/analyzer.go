package models

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"go.uber.org/zap"

	"github.com/jonathan/resume-analyzer/internal/cache"
	"github.com/jonathan/resume-analyzer/internal/config"
	"github.com/jonathan/resume-analyzer/internal/similarity"
	"github.com/jonathan/resume-analyzer/internal/textproc"
	"github.com/jonathan/resume-analyzer/internal/types"
)

// Analyzer owns the five models and the shared collaborators. It is
// constructed once at startup and safe for concurrent use.
type Analyzer struct {
	Match     *MatchModel
	Recommend *RecommendModel
	Interview *InterviewModel
	Feedback  *FeedbackModel
	ATS       *ATSModel

	store       cache.Store
	ttl         time.Duration
	cacheEnable bool
	logger      *zap.Logger
}

// NewAnalyzer wires the models with a shared vocabulary and similarity
// engine. The store memoizes match and recommend predictions; pass nil to
// disable memoization.
func NewAnalyzer(cfg *config.Config, vocab *textproc.Vocabulary, engine *similarity.Engine, store cache.Store, log *zap.Logger) *Analyzer {
	if log == nil {
		log = zap.NewNop()
	}
	return &Analyzer{
		Match:       NewMatchModel(cfg.MatchVersion, vocab, engine, log),
		Recommend:   NewRecommendModel(cfg.RecommendVersion, vocab, engine, log),
		Interview:   NewInterviewModel(cfg.InterviewVersion, log),
		Feedback:    NewFeedbackModel(cfg.FeedbackVersion, vocab, engine, log),
		ATS:         NewATSModel(cfg.ATSVersion, vocab, log),
		store:       store,
		ttl:         cfg.CacheTTL,
		cacheEnable: cfg.EnableCache,
		logger:      log,
	}
}

// Versions returns the version label of every model by name.
func (a *Analyzer) Versions() map[string]string {
	return map[string]string{
		"match":     a.Match.Version(),
		"recommend": a.Recommend.Version(),
		"interview": a.Interview.Version(),
		"feedback":  a.Feedback.Version(),
		"ats":       a.ATS.Version(),
	}
}

// PredictMatch runs the match model with prediction memoization, honoring
// the request's use_cache flag.
func (a *Analyzer) PredictMatch(ctx context.Context, req types.MatchRequest) types.MatchResult {
	key, ok := a.predictionKey("match", a.Match.Version(), req)
	if ok && req.CacheEnabled() {
		var cached types.MatchResult
		if a.loadPrediction(ctx, key, &cached) {
			return cached
		}
	}

	res := a.Match.Predict(ctx, req)
	res.Explanations = a.Match.Explain(res)
	if ok && req.CacheEnabled() && res.Error == "" {
		a.storePrediction(ctx, key, res)
	}
	return res
}

// PredictRecommend runs the recommend model with prediction memoization.
func (a *Analyzer) PredictRecommend(ctx context.Context, req types.RecommendRequest) types.RecommendResult {
	key, ok := a.predictionKey("recommend", a.Recommend.Version(), req)
	if ok {
		var cached types.RecommendResult
		if a.loadPrediction(ctx, key, &cached) {
			return cached
		}
	}

	res := a.Recommend.Predict(ctx, req)
	res.Explanations = a.Recommend.Explain(res)
	if ok && res.Error == "" {
		a.storePrediction(ctx, key, res)
	}
	return res
}

// PredictInterview runs the interview model. Its input is a handful of
// numbers, so there is nothing worth memoizing.
func (a *Analyzer) PredictInterview(ctx context.Context, req types.InterviewRequest) types.InterviewResult {
	res := a.Interview.Predict(ctx, req)
	res.Explanations = a.Interview.Explain(res)
	return res
}

// PredictFeedback runs the feedback model.
func (a *Analyzer) PredictFeedback(ctx context.Context, req types.FeedbackRequest) types.FeedbackResult {
	res := a.Feedback.Predict(ctx, req)
	res.Explanations = a.Feedback.Explain(res)
	return res
}

// PredictATS runs the ATS compatibility model.
func (a *Analyzer) PredictATS(ctx context.Context, req types.ATSRequest) types.ATSResult {
	res := a.ATS.Predict(ctx, req)
	res.Explanations = a.ATS.Explain(res)
	return res
}

// metadataRecord is the on-disk model descriptor. Informational only;
// nothing reads it at request time.
type metadataRecord struct {
	Model     string    `json:"model"`
	Version   string    `json:"version"`
	CreatedAt time.Time `json:"created_at"`
}

// SaveMetadata writes one JSON descriptor per model into dir.
func (a *Analyzer) SaveMetadata(dir string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create metadata dir %s: %w", dir, err)
	}
	now := time.Now().UTC()
	for name, version := range a.Versions() {
		record := metadataRecord{Model: name, Version: version, CreatedAt: now}
		data, err := json.MarshalIndent(record, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to encode metadata for %s: %w", name, err)
		}
		path := filepath.Join(dir, fmt.Sprintf("%s-%s.json", name, version))
		if err := os.WriteFile(path, data, 0o644); err != nil {
			return fmt.Errorf("failed to write metadata %s: %w", path, err)
		}
	}
	return nil
}

// predictionKey derives a cache key from the model identity and the
// canonical JSON encoding of the request. The second result is false when
// memoization is off or the request cannot be encoded.
func (a *Analyzer) predictionKey(model, version string, req any) (string, bool) {
	if a.store == nil || !a.cacheEnable {
		return "", false
	}
	payload, err := json.Marshal(req)
	if err != nil {
		return "", false
	}
	h := sha256.New()
	h.Write([]byte(model))
	h.Write([]byte(version))
	h.Write(payload)
	return "prediction:" + model + ":" + hex.EncodeToString(h.Sum(nil)), true
}

func (a *Analyzer) loadPrediction(ctx context.Context, key string, out any) bool {
	raw, found, err := a.store.Get(ctx, key)
	if err != nil {
		a.logger.Warn("prediction cache read failed", zap.Error(err))
		return false
	}
	if !found {
		return false
	}
	if err := json.Unmarshal(raw, out); err != nil {
		a.logger.Warn("discarding corrupt cached prediction", zap.String("key", key), zap.Error(err))
		return false
	}
	return true
}

func (a *Analyzer) storePrediction(ctx context.Context, key string, res any) {
	data, err := json.Marshal(res)
	if err != nil {
		return
	}
	if err := a.store.Set(ctx, key, data, a.ttl); err != nil {
		a.logger.Warn("prediction cache write failed", zap.Error(err))
	}
}
