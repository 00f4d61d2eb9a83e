package models

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-analyzer/internal/types"
)

func newTestFeedbackModel() *FeedbackModel {
	return NewFeedbackModel("feedback-v1", nil, nil, nil)
}

const feedbackResume = `Summary
Backend engineer focused on Python services.

Experience
Developed Django APIs and improved deployment pipelines.
Led a team that reduced infrastructure costs.

Education
BS Computer Science

Skills
Python, Django, PostgreSQL, Docker, Git, SQL
`

func TestFeedbackPredict(t *testing.T) {
	model := newTestFeedbackModel()
	res := model.Predict(context.Background(), types.FeedbackRequest{
		ResumeText: feedbackResume,
		TargetRole: "python developer",
	})

	require.Empty(t, res.Error)
	assert.Greater(t, res.OverallScore, 0.0)
	assert.LessOrEqual(t, res.OverallScore, 1.0)
	assert.Contains(t, res.SectionsFound, "experience")
	assert.Contains(t, res.SectionsFound, "education")
	assert.Contains(t, res.SectionsFound, "skills")
	assert.Contains(t, res.SkillsFound, "python")
	assert.Greater(t, res.Metrics.ImpactVerbs, 0)
	assert.Equal(t, "feedback-v1", res.ModelVersion)
}

func TestFeedbackPredictBlankInput(t *testing.T) {
	model := newTestFeedbackModel()
	res := model.Predict(context.Background(), types.FeedbackRequest{})

	assert.Equal(t, 0.0, res.OverallScore)
	assert.NotEmpty(t, res.Error)
	assert.NotEmpty(t, res.Feedback, "blank input still explains itself")
}

func TestFeedbackDefaultRole(t *testing.T) {
	model := newTestFeedbackModel()
	res := model.Predict(context.Background(), types.FeedbackRequest{
		ResumeText: "Short resume mentioning python and django only once each",
	})

	require.Empty(t, res.Error)
	assert.Greater(t, res.KeywordScore, 0.0, "default role keywords must apply")
}

func TestFeedbackMissingSectionsFlagged(t *testing.T) {
	model := newTestFeedbackModel()
	res := model.Predict(context.Background(), types.FeedbackRequest{
		ResumeText: "Just a paragraph about me with python and no structure at all",
	})

	require.Empty(t, res.Error)
	found := false
	for _, line := range res.Feedback {
		if strings.Contains(line, "Add missing sections") {
			found = true
		}
	}
	assert.True(t, found, "missing essential sections must be called out")
}

func TestFeedbackScoresBounded(t *testing.T) {
	model := newTestFeedbackModel()
	inputs := []string{
		"tiny",
		strings.Repeat("python django flask pandas numpy tensorflow pytorch fastapi ", 100),
		feedbackResume,
	}
	for _, text := range inputs {
		res := model.Predict(context.Background(), types.FeedbackRequest{ResumeText: text})
		for name, score := range map[string]float64{
			"overall":   res.OverallScore,
			"structure": res.StructureScore,
			"keyword":   res.KeywordScore,
			"skill":     res.SkillScore,
		} {
			assert.GreaterOrEqual(t, score, 0.0, name)
			assert.LessOrEqual(t, score, 1.0, name)
		}
	}
}

func TestFeedbackCapped(t *testing.T) {
	model := newTestFeedbackModel()
	res := model.Predict(context.Background(), types.FeedbackRequest{
		ResumeText: "A short unstructured resume without any relevant keywords at all",
		TargetRole: "devops",
	})

	assert.LessOrEqual(t, len(res.Feedback), 6)
	assert.LessOrEqual(t, len(res.SkillsFound), 15)
}

func TestFeedbackExplain(t *testing.T) {
	model := newTestFeedbackModel()

	lines := model.Explain(types.FeedbackResult{
		OverallScore: 0.85,
		Metrics:      types.FeedbackMetrics{ImpactVerbs: 5},
	})
	require.Len(t, lines, 1)
	assert.Contains(t, lines[0], "Excellent")

	lines = model.Explain(types.FeedbackResult{OverallScore: 0.3})
	require.Len(t, lines, 2)
	assert.Contains(t, lines[1], "quantifiable")
}
