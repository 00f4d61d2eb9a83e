package models

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/jonathan/resume-analyzer/internal/similarity"
	"github.com/jonathan/resume-analyzer/internal/textproc"
	"github.com/jonathan/resume-analyzer/internal/types"
)

// Weighting of the match formula. Similarity carries the semantic signal,
// skill overlap the explicit-requirements signal.
const (
	matchSimilarityWeight = 0.7
	matchSkillWeight      = 0.3

	embeddingWeight = 0.7
	tfidfWeight     = 0.3
)

// MatchModel scores how well a resume fits a job description.
type MatchModel struct {
	deps
	version string
}

// NewMatchModel creates a match model.
func NewMatchModel(version string, vocab *textproc.Vocabulary, engine *similarity.Engine, log *zap.Logger) *MatchModel {
	return &MatchModel{deps: newDeps(vocab, engine, log), version: version}
}

// Version returns the model version label.
func (m *MatchModel) Version() string { return m.version }

// Predict computes the match score. Blank inputs and internal failures
// produce a zero-score result, never an error.
func (m *MatchModel) Predict(ctx context.Context, req types.MatchRequest) (res types.MatchResult) {
	res = types.MatchResult{
		TopSkillsMatched: []string{},
		MissingSkills:    []string{},
		ModelVersion:     m.version,
	}
	defer m.recoverPrediction("match", req.ResumeText, &res.Error)

	resume := textproc.Clean(req.ResumeText)
	job := textproc.Clean(req.JobDescription)
	if resume == "" || job == "" {
		res.Error = errBlankInput
		return res
	}

	tfidf := m.engine.TFIDFCosine(resume, job)
	sim := tfidf
	if emb, ok := m.engine.EmbeddingCosine(ctx, resume, job); ok {
		sim = embeddingWeight*emb + tfidfWeight*tfidf
	}

	resumeSkills := textproc.ExtractSkills(resume, m.vocab)
	jobSkills := textproc.ExtractSkills(job, m.vocab)
	matched, missing := partitionSkills(resumeSkills, jobSkills)

	skillMatch := 0.0
	if len(jobSkills) > 0 {
		skillMatch = float64(len(matched)) / float64(len(jobSkills))
	}

	res.SimilarityScore = round4(clamp01(sim))
	res.SkillMatch = round4(clamp01(skillMatch))
	res.MatchScore = round4(clamp01(matchSimilarityWeight*res.SimilarityScore + matchSkillWeight*res.SkillMatch))
	res.TopSkillsMatched = capList(matched, topSkillLimit)
	res.MissingSkills = capList(missing, topSkillLimit)
	return res
}

// Explain maps a match result to banded natural-language lines.
func (m *MatchModel) Explain(res types.MatchResult) []string {
	var out []string
	switch {
	case res.MatchScore >= 0.8:
		out = append(out, "Excellent match! Strong alignment on key skills and requirements.")
	case res.MatchScore >= 0.6:
		out = append(out, "Good match. Solid foundation with some areas for improvement.")
	case res.MatchScore >= 0.4:
		out = append(out, "Moderate match. Consider developing missing skills to improve fit.")
	default:
		out = append(out, "Low match. Focus on the missing skills before applying.")
	}
	if len(res.TopSkillsMatched) > 0 {
		out = append(out, fmt.Sprintf("Strong in: %s", strings.Join(capList(res.TopSkillsMatched, maxFactors), ", ")))
	}
	if len(res.MissingSkills) > 0 {
		out = append(out, fmt.Sprintf("Develop: %s", strings.Join(capList(res.MissingSkills, maxFactors), ", ")))
	}
	return out
}

// partitionSkills splits the job's skills into those the resume covers and
// those it lacks, preserving the job's discovery order.
func partitionSkills(resumeSkills, jobSkills []string) (matched, missing []string) {
	inResume := make(map[string]struct{}, len(resumeSkills))
	for _, s := range resumeSkills {
		inResume[s] = struct{}{}
	}
	for _, s := range jobSkills {
		if _, ok := inResume[s]; ok {
			matched = append(matched, s)
		} else {
			missing = append(missing, s)
		}
	}
	return matched, missing
}

func capList(list []string, n int) []string {
	if list == nil {
		return []string{}
	}
	if len(list) > n {
		return list[:n]
	}
	return list
}
