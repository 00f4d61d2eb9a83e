package models

import (
	"context"
	"fmt"
	"sort"

	"go.uber.org/zap"

	"github.com/jonathan/resume-analyzer/internal/similarity"
	"github.com/jonathan/resume-analyzer/internal/textproc"
	"github.com/jonathan/resume-analyzer/internal/types"
)

const (
	contentWeight  = 0.6
	semanticWeight = 0.4

	defaultMaxRecommendations = 10
	minRecommendations        = 1
	maxRecommendations        = 50
)

// RecommendModel ranks a pool of jobs against a resume.
type RecommendModel struct {
	deps
	version string
}

// NewRecommendModel creates a recommend model.
func NewRecommendModel(version string, vocab *textproc.Vocabulary, engine *similarity.Engine, log *zap.Logger) *RecommendModel {
	return &RecommendModel{deps: newDeps(vocab, engine, log), version: version}
}

// Version returns the model version label.
func (m *RecommendModel) Version() string { return m.version }

// Predict ranks the job pool by hybrid similarity to the resume. The sort
// is stable: jobs with equal scores keep their pool order.
func (m *RecommendModel) Predict(ctx context.Context, req types.RecommendRequest) (res types.RecommendResult) {
	res = types.RecommendResult{
		RecommendedJobs: []types.RecommendedJob{},
		ModelVersion:    m.version,
	}
	defer m.recoverPrediction("recommend", req.ResumeText, &res.Error)

	resume := textproc.Clean(req.ResumeText)
	if resume == "" || len(req.JobPool) == 0 {
		res.Error = errBlankInput
		return res
	}
	res.TotalJobsConsidered = len(req.JobPool)

	descriptions := make([]string, len(req.JobPool))
	for i, job := range req.JobPool {
		descriptions[i] = textproc.Clean(job.Description)
	}

	// One corpus over the resume plus every description, so IDF reflects
	// the whole pool.
	corpus := similarity.NewTFIDFCorpus(append([]string{resume}, descriptions...))

	embScores, embOK := m.engine.EmbeddingCosineBatch(ctx, resume, descriptions)
	reason := "content-based similarity"
	if embOK {
		reason = "hybrid similarity"
	}

	ranked := make([]types.RecommendedJob, len(req.JobPool))
	for i, job := range req.JobPool {
		score := corpus.Similarity(0, i+1)
		if embOK {
			score = contentWeight*score + semanticWeight*embScores[i]
		}
		ranked[i] = types.RecommendedJob{
			JobPosting:      job,
			SimilarityScore: round4(clamp01(score)),
			MatchReason:     reason,
		}
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].SimilarityScore > ranked[j].SimilarityScore
	})

	limit := req.MaxRecommendations
	if limit == 0 {
		limit = defaultMaxRecommendations
	}
	if limit < minRecommendations {
		limit = minRecommendations
	}
	if limit > maxRecommendations {
		limit = maxRecommendations
	}
	if limit > len(ranked) {
		limit = len(ranked)
	}
	res.RecommendedJobs = ranked[:limit]
	return res
}

// Explain summarizes how the recommendations were produced.
func (m *RecommendModel) Explain(res types.RecommendResult) []string {
	if len(res.RecommendedJobs) == 0 {
		return nil
	}
	top := res.RecommendedJobs[0]
	return []string{
		fmt.Sprintf("Top recommendation has a similarity score of %.2f.", top.SimilarityScore),
		fmt.Sprintf("Recommendations generated using %s.", top.MatchReason),
		fmt.Sprintf("Ranked %d jobs against your resume.", res.TotalJobsConsidered),
	}
}
