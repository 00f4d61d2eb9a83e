package models

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/jonathan/resume-analyzer/internal/types"
)

// Feature caps applied before scaling. Values above these contribute no
// additional signal.
const (
	capAppliedJobs     = 100
	capInterviewsGiven = 50
	capPrepHours       = 100
	capYearsExperience = 30
)

// InterviewModel predicts interview success with a deterministic weighted
// sum over normalized candidate metrics. There is no trained classifier
// behind it; the weights are hand-tuned.
type InterviewModel struct {
	deps
	version string
}

// NewInterviewModel creates an interview model.
func NewInterviewModel(version string, log *zap.Logger) *InterviewModel {
	return &InterviewModel{deps: newDeps(nil, nil, log), version: version}
}

// Version returns the model version label.
func (m *InterviewModel) Version() string { return m.version }

// Predict computes the success probability and the factor lists.
func (m *InterviewModel) Predict(ctx context.Context, req types.InterviewRequest) (res types.InterviewResult) {
	res = types.InterviewResult{
		Confidence:      "very low",
		PositiveFactors: []string{},
		NegativeFactors: []string{},
		ModelVersion:    m.version,
	}
	defer m.recoverPrediction("interview", fmt.Sprintf("%+v", req), &res.Error)

	f := normalizeFeatures(req)

	probability := minf(float64(f.AppliedJobs)/10.0, 1.0)*0.1 +
		minf(float64(f.InterviewsGiven)/5.0, 1.0)*0.2 +
		f.SkillsStrength*0.3 +
		minf(float64(f.PrepHours)/20.0, 1.0)*0.2 +
		f.MatchScoreAvg*0.1 +
		f.ResumeScore*0.1 +
		minf(float64(f.YearsExperience)/10.0, 1.0)*0.1

	res.Probability = round4(clamp01(probability))
	res.Confidence = confidenceLabel(res.Probability)
	res.PositiveFactors, res.NegativeFactors = interviewFactors(f)
	return res
}

// Explain maps a result to banded lines plus the key improvement areas.
func (m *InterviewModel) Explain(res types.InterviewResult) []string {
	var out []string
	switch {
	case res.Probability >= 0.7:
		out = append(out, "High likelihood of interview success based on your profile.")
	case res.Probability >= 0.4:
		out = append(out, "Moderate likelihood of interview success. Consider addressing some factors.")
	default:
		out = append(out, "Lower likelihood of interview success. Focus on improving key areas.")
	}
	if len(res.NegativeFactors) > 0 {
		out = append(out, fmt.Sprintf("Key areas to improve: %s", strings.Join(res.NegativeFactors, ", ")))
	}
	return out
}

func normalizeFeatures(req types.InterviewRequest) types.InterviewRequest {
	f := req
	if f.AppliedJobs > capAppliedJobs {
		f.AppliedJobs = capAppliedJobs
	}
	if f.InterviewsGiven > capInterviewsGiven {
		f.InterviewsGiven = capInterviewsGiven
	}
	if f.PrepHours > capPrepHours {
		f.PrepHours = capPrepHours
	}
	if f.YearsExperience > capYearsExperience {
		f.YearsExperience = capYearsExperience
	}
	f.SkillsStrength = clamp01(f.SkillsStrength)
	f.MatchScoreAvg = clamp01(f.MatchScoreAvg)
	f.ResumeScore = clamp01(f.ResumeScore)
	return f
}

func confidenceLabel(probability float64) string {
	switch {
	case probability >= 0.8:
		return "high"
	case probability >= 0.6:
		return "medium"
	case probability >= 0.4:
		return "low"
	default:
		return "very low"
	}
}

// interviewFactors classifies each feature against a fixed threshold into
// a positive or negative factor, keeping at most three of each.
func interviewFactors(f types.InterviewRequest) (positive, negative []string) {
	positive = []string{}
	negative = []string{}
	add := func(ok bool, pos, neg string) {
		if ok {
			positive = append(positive, pos)
		} else {
			negative = append(negative, neg)
		}
	}

	add(f.AppliedJobs >= 5, "Good number of job applications", "Low number of job applications")
	add(f.InterviewsGiven >= 2, "Reasonable interview experience", "Limited interview experience")
	add(f.SkillsStrength >= 0.6, "Strong skills alignment", "Skills could be stronger for target roles")
	add(f.PrepHours >= 10, "Adequate interview preparation", "Low interview preparation time")
	add(f.MatchScoreAvg >= 0.7, "Good resume-job match", "Low resume-job match scores")
	add(f.ResumeScore >= 0.7, "Strong resume quality", "Resume could be improved")
	add(f.YearsExperience >= 2, "Relevant professional experience", "Limited professional experience")

	if len(positive) > maxFactors {
		positive = positive[:maxFactors]
	}
	if len(negative) > maxFactors {
		negative = negative[:maxFactors]
	}
	return positive, negative
}

func minf(a, b float64) float64 {
	if a < b {
		return a
	}
	return b
}
