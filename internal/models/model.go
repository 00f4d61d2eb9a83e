// Package models implements the five analysis models. Each model composes
// the text processing and similarity packages into a weighted score plus
// human-readable explanations. Predict never returns an error: blank input
// and internal failures both produce a structurally valid zero-score result
// with the reason in the error field.
package models

import (
	"fmt"
	"math"

	"go.uber.org/zap"

	"github.com/jonathan/resume-analyzer/internal/logger"
	"github.com/jonathan/resume-analyzer/internal/similarity"
	"github.com/jonathan/resume-analyzer/internal/textproc"
)

const (
	errBlankInput = "invalid input data"

	topSkillLimit   = 5
	maxFactors      = 3
	maxFeedback     = 6
	maxATSRecs      = 5
	logInputPreview = 120
)

// deps are the shared collaborators every model draws on.
type deps struct {
	vocab  *textproc.Vocabulary
	engine *similarity.Engine
	logger *zap.Logger
}

func newDeps(vocab *textproc.Vocabulary, engine *similarity.Engine, log *zap.Logger) deps {
	if vocab == nil {
		vocab = textproc.DefaultVocabulary()
	}
	if engine == nil {
		engine = similarity.NewEngine(nil, log)
	}
	if log == nil {
		log = zap.NewNop()
	}
	return deps{vocab: vocab, engine: engine, logger: log}
}

// recoverPrediction converts a panic inside a model's predict path into the
// model's zero-score fallback. The caller passes the raw input so the log
// line carries enough context to reproduce without dumping full content.
func (d deps) recoverPrediction(model, input string, errOut *string) {
	if r := recover(); r != nil {
		msg := fmt.Sprintf("unexpected computation error: %v", r)
		*errOut = msg
		d.logger.Error("prediction failed",
			zap.String("model", model),
			zap.String("input", logger.TruncateForLog(input, logInputPreview)),
			zap.Any("panic", r))
	}
}

// clamp01 bounds a score to [0,1], mapping NaN to 0.
func clamp01(x float64) float64 {
	if math.IsNaN(x) || x < 0 {
		return 0.0
	}
	if x > 1 {
		return 1.0
	}
	return x
}

// round4 matches the four-decimal precision of the reported scores.
func round4(x float64) float64 {
	return math.Round(x*10000) / 10000
}
