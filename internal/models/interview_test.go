package models

import (
	"context"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-analyzer/internal/types"
)

func newTestInterviewModel() *InterviewModel {
	return NewInterviewModel("interview-v1", nil)
}

func TestInterviewPredictMaxFeatures(t *testing.T) {
	model := newTestInterviewModel()
	res := model.Predict(context.Background(), types.InterviewRequest{
		AppliedJobs:     100,
		InterviewsGiven: 50,
		SkillsStrength:  1.0,
		PrepHours:       100,
		MatchScoreAvg:   1.0,
		ResumeScore:     1.0,
		YearsExperience: 30,
	})

	require.Empty(t, res.Error)
	assert.GreaterOrEqual(t, res.Probability, 0.8)
	assert.Equal(t, "high", res.Confidence)
	assert.NotEmpty(t, res.PositiveFactors)
	assert.Empty(t, res.NegativeFactors)
}

func TestInterviewPredictMinFeatures(t *testing.T) {
	model := newTestInterviewModel()
	res := model.Predict(context.Background(), types.InterviewRequest{})

	assert.LessOrEqual(t, res.Probability, 0.2)
	assert.Equal(t, "very low", res.Confidence)
	assert.Empty(t, res.PositiveFactors)
	assert.NotEmpty(t, res.NegativeFactors)
}

func TestInterviewPredictBoundedRandomized(t *testing.T) {
	model := newTestInterviewModel()
	rng := rand.New(rand.NewSource(42))

	for i := 0; i < 200; i++ {
		res := model.Predict(context.Background(), types.InterviewRequest{
			AppliedJobs:     rng.Intn(2000),
			InterviewsGiven: rng.Intn(500),
			SkillsStrength:  rng.Float64() * 2,
			PrepHours:       rng.Intn(2000),
			MatchScoreAvg:   rng.Float64() * 2,
			ResumeScore:     rng.Float64() * 2,
			YearsExperience: rng.Intn(100),
		})
		assert.GreaterOrEqual(t, res.Probability, 0.0)
		assert.LessOrEqual(t, res.Probability, 1.0)
		assert.LessOrEqual(t, len(res.PositiveFactors), 3)
		assert.LessOrEqual(t, len(res.NegativeFactors), 3)
		assert.NotEmpty(t, res.Confidence)
	}
}

func TestInterviewFactorThresholds(t *testing.T) {
	model := newTestInterviewModel()
	res := model.Predict(context.Background(), types.InterviewRequest{
		AppliedJobs:     20,
		InterviewsGiven: 0,
		SkillsStrength:  0.9,
		PrepHours:       2,
		MatchScoreAvg:   0.8,
		ResumeScore:     0.3,
		YearsExperience: 5,
	})

	assert.Contains(t, res.PositiveFactors, "Good number of job applications")
	assert.Contains(t, res.NegativeFactors, "Limited interview experience")
	assert.Contains(t, res.NegativeFactors, "Low interview preparation time")
}

func TestInterviewExplain(t *testing.T) {
	model := newTestInterviewModel()

	lines := model.Explain(types.InterviewResult{
		Probability:     0.2,
		NegativeFactors: []string{"Limited interview experience"},
	})
	require.Len(t, lines, 2)
	assert.Contains(t, lines[0], "Lower likelihood")
	assert.Contains(t, lines[1], "Limited interview experience")
}
