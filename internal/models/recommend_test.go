package models

import (
	"context"
	"fmt"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-analyzer/internal/types"
)

func newTestRecommendModel() *RecommendModel {
	return NewRecommendModel("recommend-v1", nil, nil, nil)
}

func testJobPool() []types.JobPosting {
	return []types.JobPosting{
		{ID: "1", Title: "Python Backend Engineer", Company: "Acme", Description: "Python Django backend services and SQL databases"},
		{ID: "2", Title: "Frontend Developer", Company: "Beta", Description: "React TypeScript frontend components and CSS"},
		{ID: "3", Title: "Data Engineer", Company: "Gamma", Description: "Python pandas data pipelines and SQL warehouses"},
	}
}

func TestRecommendPredictRanking(t *testing.T) {
	model := newTestRecommendModel()
	res := model.Predict(context.Background(), types.RecommendRequest{
		ResumeText: "Python developer building Django services with SQL",
		JobPool:    testJobPool(),
	})

	require.Empty(t, res.Error)
	assert.Equal(t, 3, res.TotalJobsConsidered)
	require.Len(t, res.RecommendedJobs, 3)

	assert.True(t, sort.SliceIsSorted(res.RecommendedJobs, func(i, j int) bool {
		return res.RecommendedJobs[i].SimilarityScore > res.RecommendedJobs[j].SimilarityScore
	}), "jobs must be sorted descending by score")

	assert.Equal(t, "1", res.RecommendedJobs[0].ID, "the python backend job should rank first")
}

func TestRecommendPredictTruncation(t *testing.T) {
	model := newTestRecommendModel()
	res := model.Predict(context.Background(), types.RecommendRequest{
		ResumeText:         "Python developer with experience in many things",
		JobPool:            testJobPool(),
		MaxRecommendations: 2,
	})

	require.Empty(t, res.Error)
	assert.Equal(t, 3, res.TotalJobsConsidered)
	assert.Len(t, res.RecommendedJobs, 2)
}

func TestRecommendPredictStableOrderOnTies(t *testing.T) {
	model := newTestRecommendModel()

	// Identical descriptions force identical scores.
	pool := make([]types.JobPosting, 5)
	for i := range pool {
		pool[i] = types.JobPosting{
			ID:          fmt.Sprintf("job-%d", i),
			Title:       "Engineer",
			Description: "Python services with Django and SQL",
		}
	}

	res := model.Predict(context.Background(), types.RecommendRequest{
		ResumeText: "Python engineer who knows Django and SQL",
		JobPool:    pool,
	})

	require.Empty(t, res.Error)
	require.Len(t, res.RecommendedJobs, 5)
	for i, job := range res.RecommendedJobs {
		assert.Equal(t, fmt.Sprintf("job-%d", i), job.ID, "ties keep pool order")
	}
}

func TestRecommendPredictEmptyInput(t *testing.T) {
	model := newTestRecommendModel()

	res := model.Predict(context.Background(), types.RecommendRequest{})
	assert.NotEmpty(t, res.Error)
	assert.Empty(t, res.RecommendedJobs)
	assert.Zero(t, res.TotalJobsConsidered)
}

func TestRecommendScoresBounded(t *testing.T) {
	model := newTestRecommendModel()
	res := model.Predict(context.Background(), types.RecommendRequest{
		ResumeText: "Go developer who likes distributed systems",
		JobPool:    testJobPool(),
	})

	for _, job := range res.RecommendedJobs {
		assert.GreaterOrEqual(t, job.SimilarityScore, 0.0)
		assert.LessOrEqual(t, job.SimilarityScore, 1.0)
	}
}

func TestRecommendExplain(t *testing.T) {
	model := newTestRecommendModel()

	assert.Empty(t, model.Explain(types.RecommendResult{}))

	lines := model.Explain(types.RecommendResult{
		RecommendedJobs: []types.RecommendedJob{
			{SimilarityScore: 0.73, MatchReason: "content-based similarity"},
		},
		TotalJobsConsidered: 12,
	})
	require.Len(t, lines, 3)
	assert.Contains(t, lines[0], "0.73")
	assert.Contains(t, lines[2], "12")
}
