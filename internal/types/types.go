// Package types defines the request and response shapes for the five
// analysis operations. Request structs carry validation tags enforced at
// the transport boundary; the scoring core itself never rejects input.
package types

import "github.com/go-playground/validator/v10"

var validate = validator.New(validator.WithRequiredStructEnabled())

// ValidateRequest runs struct-tag validation on a request value.
func ValidateRequest(req any) error {
	return validate.Struct(req)
}

// MatchRequest asks for a resume-to-job match score.
type MatchRequest struct {
	ResumeText     string `json:"resume_text" validate:"required,min=10,max=10000"`
	JobDescription string `json:"job_description" validate:"required,min=10,max=10000"`
	UseCache       *bool  `json:"use_cache,omitempty"`
}

// CacheEnabled reports whether this request opted into prediction
// memoization. Unset means yes.
func (r *MatchRequest) CacheEnabled() bool {
	return r.UseCache == nil || *r.UseCache
}

// MatchResult is the output of the match model.
type MatchResult struct {
	MatchScore       float64  `json:"match_score"`
	SimilarityScore  float64  `json:"similarity_score"`
	SkillMatch       float64  `json:"skill_match"`
	TopSkillsMatched []string `json:"top_skills_matched"`
	MissingSkills    []string `json:"missing_skills"`
	ModelVersion     string   `json:"model_version"`
	Explanations     []string `json:"explanations,omitempty"`
	Error            string   `json:"error,omitempty"`
}

// JobPosting is one entry of the recommendation pool.
type JobPosting struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Company     string `json:"company"`
	Description string `json:"description"`
}

// RecommendRequest asks for a ranked slice of a job pool.
type RecommendRequest struct {
	ResumeText         string       `json:"resume_text" validate:"required,min=10,max=10000"`
	JobPool            []JobPosting `json:"job_pool" validate:"required,min=1,max=1000"`
	UserHistory        []JobPosting `json:"user_history,omitempty"`
	MaxRecommendations int          `json:"max_recommendations,omitempty" validate:"omitempty,min=1,max=50"`
}

// RecommendedJob is a pool entry annotated with its ranking score.
type RecommendedJob struct {
	JobPosting
	SimilarityScore float64 `json:"similarity_score"`
	MatchReason     string  `json:"match_reason"`
}

// RecommendResult is the output of the recommend model.
type RecommendResult struct {
	RecommendedJobs     []RecommendedJob `json:"recommended_jobs"`
	TotalJobsConsidered int              `json:"total_jobs_considered"`
	ModelVersion        string           `json:"model_version"`
	Explanations        []string         `json:"explanations,omitempty"`
	Error               string           `json:"error,omitempty"`
}

// InterviewRequest carries the candidate metrics for the interview
// success heuristic.
type InterviewRequest struct {
	AppliedJobs     int     `json:"applied_jobs" validate:"min=0,max=1000"`
	InterviewsGiven int     `json:"interviews_given" validate:"min=0,max=100"`
	SkillsStrength  float64 `json:"skills_strength" validate:"min=0,max=1"`
	PrepHours       int     `json:"prep_hours" validate:"min=0,max=1000"`
	MatchScoreAvg   float64 `json:"match_score_avg" validate:"min=0,max=1"`
	ResumeScore     float64 `json:"resume_score" validate:"min=0,max=1"`
	YearsExperience int     `json:"years_experience" validate:"min=0,max=50"`
}

// InterviewResult is the output of the interview model.
type InterviewResult struct {
	Probability     float64  `json:"probability"`
	Confidence      string   `json:"confidence"`
	PositiveFactors []string `json:"positive_factors"`
	NegativeFactors []string `json:"negative_factors"`
	ModelVersion    string   `json:"model_version"`
	Explanations    []string `json:"explanations,omitempty"`
	Error           string   `json:"error,omitempty"`
}

// FeedbackRequest asks for qualitative resume feedback against a role.
type FeedbackRequest struct {
	ResumeText string `json:"resume_text" validate:"required,min=10,max=10000"`
	TargetRole string `json:"target_role,omitempty" validate:"omitempty,min=2,max=100"`
}

// FeedbackMetrics are the raw counts behind the feedback scores.
type FeedbackMetrics struct {
	WordCount      int `json:"word_count"`
	CharacterCount int `json:"character_count"`
	SkillsFound    int `json:"skills_found"`
	SectionsFound  int `json:"sections_found"`
	ImpactVerbs    int `json:"impact_verbs"`
}

// FeedbackResult is the output of the feedback model.
type FeedbackResult struct {
	OverallScore   float64         `json:"overall_score"`
	StructureScore float64         `json:"structure_score"`
	KeywordScore   float64         `json:"keyword_score"`
	SkillScore     float64         `json:"skill_score"`
	Metrics        FeedbackMetrics `json:"metrics"`
	SkillsFound    []string        `json:"skills_found"`
	SectionsFound  []string        `json:"sections_found"`
	Feedback       []string        `json:"feedback"`
	ModelVersion   string          `json:"model_version"`
	Explanations   []string        `json:"explanations,omitempty"`
	Error          string          `json:"error,omitempty"`
}

// ATSRequest asks for an applicant-tracking-system compatibility check.
type ATSRequest struct {
	ResumeText string `json:"resume_text" validate:"required,min=10,max=10000"`
}

// ATSKeywordStatus summarizes keyword usage found during the ATS check.
type ATSKeywordStatus struct {
	FoundSkills                []string `json:"found_skills"`
	FoundActionVerbs           []string `json:"found_action_verbs"`
	HasQuantifiableAchievement bool     `json:"has_quantifiable_achievements"`
	TotalSkillsFound           int      `json:"total_skills_found"`
	SkillDiversity             string   `json:"skill_diversity"`
}

// ATSResult is the output of the ATS model. The score is an integer on a
// 0-100 scale, unlike the other models.
type ATSResult struct {
	ATSScore         int              `json:"ats_score"`
	FormatIssues     []string         `json:"format_issues"`
	StructuralIssues []string         `json:"structural_issues"`
	KeywordStatus    ATSKeywordStatus `json:"keyword_status"`
	Recommendations  []string         `json:"recommendations"`
	ModelVersion     string           `json:"model_version"`
	Explanations     []string         `json:"explanations,omitempty"`
	Error            string           `json:"error,omitempty"`
}
