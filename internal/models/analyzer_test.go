package models

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-analyzer/internal/cache"
	"github.com/jonathan/resume-analyzer/internal/config"
	"github.com/jonathan/resume-analyzer/internal/types"
)

func testConfig() *config.Config {
	return &config.Config{
		CacheTTL:         time.Minute,
		EnableCache:      true,
		MatchVersion:     "match-v1",
		RecommendVersion: "recommend-v1",
		InterviewVersion: "interview-v1",
		FeedbackVersion:  "feedback-v1",
		ATSVersion:       "ats-v1",
	}
}

func TestAnalyzerVersions(t *testing.T) {
	a := NewAnalyzer(testConfig(), nil, nil, nil, nil)
	versions := a.Versions()
	assert.Len(t, versions, 5)
	assert.Equal(t, "match-v1", versions["match"])
	assert.Equal(t, "ats-v1", versions["ats"])
}

func TestAnalyzerMatchMemoization(t *testing.T) {
	store := cache.NewMemory()
	a := NewAnalyzer(testConfig(), nil, nil, store, nil)
	ctx := context.Background()

	req := types.MatchRequest{
		ResumeText:     "Python developer with Django experience",
		JobDescription: "Looking for a Python developer",
	}

	first := a.PredictMatch(ctx, req)
	require.Empty(t, first.Error)
	assert.Equal(t, 1, store.Len(), "successful prediction is memoized")

	second := a.PredictMatch(ctx, req)
	assert.Equal(t, first, second)
}

func TestAnalyzerMatchUseCacheOptOut(t *testing.T) {
	store := cache.NewMemory()
	a := NewAnalyzer(testConfig(), nil, nil, store, nil)

	noCache := false
	a.PredictMatch(context.Background(), types.MatchRequest{
		ResumeText:     "Python developer with Django experience",
		JobDescription: "Looking for a Python developer",
		UseCache:       &noCache,
	})
	assert.Zero(t, store.Len(), "use_cache=false skips memoization")
}

func TestAnalyzerErrorResultsNotMemoized(t *testing.T) {
	store := cache.NewMemory()
	a := NewAnalyzer(testConfig(), nil, nil, store, nil)

	res := a.PredictMatch(context.Background(), types.MatchRequest{})
	require.NotEmpty(t, res.Error)
	assert.Zero(t, store.Len())
}

func TestAnalyzerRecommendMemoization(t *testing.T) {
	store := cache.NewMemory()
	a := NewAnalyzer(testConfig(), nil, nil, store, nil)
	ctx := context.Background()

	req := types.RecommendRequest{
		ResumeText: "Python developer with Django experience",
		JobPool:    []types.JobPosting{{ID: "1", Description: "Python Django role"}},
	}

	first := a.PredictRecommend(ctx, req)
	require.Empty(t, first.Error)
	second := a.PredictRecommend(ctx, req)
	assert.Equal(t, first, second)
	assert.Equal(t, 1, store.Len())
}

func TestAnalyzerPredictionsCarryExplanations(t *testing.T) {
	a := NewAnalyzer(testConfig(), nil, nil, nil, nil)
	ctx := context.Background()

	match := a.PredictMatch(ctx, types.MatchRequest{
		ResumeText:     "Python developer with Django experience",
		JobDescription: "Looking for a Python developer",
	})
	assert.NotEmpty(t, match.Explanations)

	interview := a.PredictInterview(ctx, types.InterviewRequest{SkillsStrength: 0.9})
	assert.NotEmpty(t, interview.Explanations)

	ats := a.PredictATS(ctx, types.ATSRequest{ResumeText: "Experience\nBuilt things"})
	assert.NotEmpty(t, ats.Explanations)
}

func TestAnalyzerSaveMetadata(t *testing.T) {
	a := NewAnalyzer(testConfig(), nil, nil, nil, nil)
	dir := filepath.Join(t.TempDir(), "models")

	require.NoError(t, a.SaveMetadata(dir))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 5)

	data, err := os.ReadFile(filepath.Join(dir, "match-match-v1.json"))
	require.NoError(t, err)

	var record struct {
		Model     string    `json:"model"`
		Version   string    `json:"version"`
		CreatedAt time.Time `json:"created_at"`
	}
	require.NoError(t, json.Unmarshal(data, &record))
	assert.Equal(t, "match", record.Model)
	assert.Equal(t, "match-v1", record.Version)
	assert.False(t, record.CreatedAt.IsZero())
}
