package main

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/jonathan/resume-analyzer/internal/cache"
	"github.com/jonathan/resume-analyzer/internal/config"
	"github.com/jonathan/resume-analyzer/internal/embeddings"
	"github.com/jonathan/resume-analyzer/internal/logger"
	"github.com/jonathan/resume-analyzer/internal/models"
	"github.com/jonathan/resume-analyzer/internal/similarity"
	"github.com/jonathan/resume-analyzer/internal/textproc"
)

// app bundles everything a command needs after startup wiring.
type app struct {
	cfg      *config.Config
	log      *zap.Logger
	analyzer *models.Analyzer
	closers  []func() error
}

// close releases resources in reverse construction order.
func (a *app) close() {
	for i := len(a.closers) - 1; i >= 0; i-- {
		if err := a.closers[i](); err != nil {
			a.log.Warn("shutdown cleanup failed", zap.Error(err))
		}
	}
	_ = a.log.Sync()
}

// newApp builds the shared dependency graph: config, logger, vocabulary,
// cache store, embedding backend, similarity engine, and the analyzer.
func newApp(ctx context.Context) (*app, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	log, err := logger.New(cfg.LogJSON, cfg.LogDebug)
	if err != nil {
		return nil, fmt.Errorf("failed to build logger: %w", err)
	}

	a := &app{cfg: cfg, log: log}

	vocab := textproc.DefaultVocabulary()
	if cfg.SkillsPath != "" {
		loaded, err := textproc.LoadVocabulary(cfg.SkillsPath)
		if err != nil {
			log.Warn("falling back to built-in skill vocabulary", zap.Error(err))
		} else {
			vocab = loaded
		}
	}
	log.Info("skill vocabulary loaded", zap.Int("terms", vocab.Size()))

	var store cache.Store
	if cfg.RedisURL != "" {
		redisStore, err := cache.NewRedis(ctx, cfg.RedisURL)
		if err != nil {
			log.Warn("redis unavailable, using in-memory cache", zap.Error(err))
			store = cache.NewMemory()
		} else {
			store = redisStore
			a.closers = append(a.closers, redisStore.Close)
		}
	} else {
		store = cache.NewMemory()
	}

	var embedder similarity.Embedder
	if cfg.EnableEmbeddings {
		provider, err := embeddings.NewGemini(ctx, cfg.GeminiAPIKey, cfg.EmbeddingModel)
		if err != nil {
			log.Warn("embedding backend unavailable, using lexical strategies only", zap.Error(err))
		} else {
			a.closers = append(a.closers, provider.Close)
			embedder = embeddings.NewService(provider, store, cfg.CacheTTL, cfg.EmbedTimeout, log)
			log.Info("embedding backend ready", zap.String("model", provider.ModelID()))
		}
	}

	engine := similarity.NewEngine(embedder, log)
	a.analyzer = models.NewAnalyzer(cfg, vocab, engine, store, log)

	if cfg.MetadataDir != "" {
		if err := a.analyzer.SaveMetadata(cfg.MetadataDir); err != nil {
			log.Warn("failed to write model metadata", zap.Error(err))
		}
	}
	return a, nil
}
