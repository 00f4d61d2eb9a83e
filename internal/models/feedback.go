package models

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"go.uber.org/zap"

	"github.com/jonathan/resume-analyzer/internal/similarity"
	"github.com/jonathan/resume-analyzer/internal/textproc"
	"github.com/jonathan/resume-analyzer/internal/types"
)

const defaultTargetRole = "software engineer"

// Component weights of the overall feedback score.
const (
	structureWeight = 0.4
	keywordWeight   = 0.4
	skillWeight     = 0.2
)

// roleKeywords maps role name fragments to the keywords a strong resume
// for that role is expected to carry. Lookup is by substring match against
// the requested target role; unmatched roles fall back to the python list.
var roleKeywords = map[string][]string{
	"python":         {"python", "django", "flask", "fastapi", "pandas", "numpy", "tensorflow", "pytorch"},
	"java":           {"java", "spring", "hibernate", "j2ee", "maven", "microservices"},
	"javascript":     {"javascript", "react", "vue", "angular", "node.js", "typescript", "express"},
	"data scientist": {"python", "machine learning", "statistics", "pandas", "numpy", "sql", "tensorflow"},
	"devops":         {"docker", "kubernetes", "aws", "jenkins", "terraform", "linux", "ci/cd"},
}

// impactVerbs signal achievement-oriented writing in experience sections.
var impactVerbs = []string{
	"increased", "decreased", "improved", "reduced", "saved",
	"achieved", "developed", "managed", "led", "implemented",
}

var essentialSections = []string{"experience", "education", "skills"}

// FeedbackModel produces qualitative resume feedback for a target role.
type FeedbackModel struct {
	deps
	version string
}

// NewFeedbackModel creates a feedback model.
func NewFeedbackModel(version string, vocab *textproc.Vocabulary, engine *similarity.Engine, log *zap.Logger) *FeedbackModel {
	return &FeedbackModel{deps: newDeps(vocab, engine, log), version: version}
}

// Version returns the model version label.
func (m *FeedbackModel) Version() string { return m.version }

// Predict analyzes structure, keyword coverage, and skills, and combines
// them into an overall score with actionable feedback lines.
func (m *FeedbackModel) Predict(ctx context.Context, req types.FeedbackRequest) (res types.FeedbackResult) {
	res = types.FeedbackResult{
		SkillsFound:   []string{},
		SectionsFound: []string{},
		Feedback:      []string{},
		ModelVersion:  m.version,
	}
	defer m.recoverPrediction("feedback", req.ResumeText, &res.Error)

	resume := textproc.Clean(req.ResumeText)
	if resume == "" {
		res.Error = errBlankInput
		res.Feedback = []string{"No resume text provided for analysis."}
		return res
	}

	role := strings.ToLower(strings.TrimSpace(req.TargetRole))
	if role == "" {
		role = defaultTargetRole
	}

	skills := textproc.ExtractSkills(resume, m.vocab)
	sections := textproc.ExtractSections(req.ResumeText)

	structureScore := structureScore(sections, resume)
	keywordScore := keywordScore(resume, role)
	skillScore := skillScore(skills)

	res.StructureScore = round4(clamp01(structureScore))
	res.KeywordScore = round4(clamp01(keywordScore))
	res.SkillScore = round4(clamp01(skillScore))
	res.OverallScore = round4(clamp01(
		structureScore*structureWeight + keywordScore*keywordWeight + skillScore*skillWeight))

	res.Metrics = types.FeedbackMetrics{
		WordCount:      textproc.WordCount(resume),
		CharacterCount: len(resume),
		SkillsFound:    len(skills),
		SectionsFound:  len(sections),
		ImpactVerbs:    countImpactVerbs(resume),
	}
	res.SkillsFound = capList(skills, 15)
	res.SectionsFound = sectionNames(sections)
	res.Feedback = buildFeedback(res, sections, skills, role)
	return res
}

// Explain maps the overall score to a banded summary.
func (m *FeedbackModel) Explain(res types.FeedbackResult) []string {
	var out []string
	switch {
	case res.OverallScore >= 0.8:
		out = append(out, "Excellent resume! Strong structure, keyword coverage, and skill presentation.")
	case res.OverallScore >= 0.6:
		out = append(out, "Good resume foundation. Follow the specific suggestions to make it outstanding.")
	case res.OverallScore >= 0.4:
		out = append(out, "Resume needs improvements in multiple areas. Focus on structure and role-specific content.")
	default:
		out = append(out, "Significant improvements needed. Consider restructuring the resume.")
	}
	if res.Metrics.ImpactVerbs < 2 {
		out = append(out, "Add more achievement-oriented language with quantifiable results.")
	}
	return out
}

func structureScore(sections map[string]string, resume string) float64 {
	score := 0.0

	found := 0
	for _, name := range essentialSections {
		if _, ok := sections[name]; ok {
			found++
		}
	}
	score += float64(found) / float64(len(essentialSections)) * 0.4

	switch wc := textproc.WordCount(resume); {
	case wc >= 300 && wc <= 1000:
		score += 0.3
	case wc >= 200 && wc <= 1500:
		score += 0.2
	default:
		score += 0.1
	}

	for _, content := range sections {
		if textproc.WordCount(content) > 50 {
			score += 0.3
			break
		}
	}
	return minf(score, 1.0)
}

func keywordScore(resume, role string) float64 {
	var keywords []string
	for fragment, list := range roleKeywords {
		if strings.Contains(role, fragment) {
			keywords = append(keywords, list...)
		}
	}
	if len(keywords) == 0 {
		keywords = roleKeywords["python"]
	}

	found := 0
	for _, kw := range keywords {
		if strings.Contains(resume, kw) {
			found++
		}
	}

	coverage := float64(found) / float64(len(keywords))
	density := float64(found) / maxf(float64(textproc.WordCount(resume))/100.0, 1.0)
	return minf(coverage*0.8+minf(density*0.2, 0.2), 1.0)
}

// skillScore buckets the skill count into a monotonic step function, then
// blends with a flat relevance term.
func skillScore(skills []string) float64 {
	if len(skills) == 0 {
		return 0.0
	}
	var quantity float64
	switch n := len(skills); {
	case n >= 12:
		quantity = 1.0
	case n >= 8:
		quantity = 0.8
	case n >= 5:
		quantity = 0.6
	case n >= 3:
		quantity = 0.4
	default:
		quantity = 0.2
	}
	return quantity*0.6 + 0.7*0.4
}

func countImpactVerbs(text string) int {
	lowered := strings.ToLower(text)
	count := 0
	for _, verb := range impactVerbs {
		count += countWholeWord(lowered, verb)
	}
	return count
}

// countWholeWord counts whole-token occurrences of term. Section content
// arrives unnormalized, so adjacent punctuation is trimmed before comparing.
func countWholeWord(text, term string) int {
	count := 0
	for _, token := range textproc.Tokenize(text) {
		if strings.Trim(token, ".,!?;:()") == term {
			count++
		}
	}
	return count
}

func sectionNames(sections map[string]string) []string {
	names := make([]string, 0, len(sections))
	for name := range sections {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func buildFeedback(res types.FeedbackResult, sections map[string]string, skills []string, role string) []string {
	var feedback []string

	if res.StructureScore < 0.6 {
		feedback = append(feedback, "Improve resume structure: ensure Experience, Education, and Skills sections are clearly defined.")
	}

	var missing []string
	for _, name := range essentialSections {
		if _, ok := sections[name]; !ok {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		feedback = append(feedback, fmt.Sprintf("Add missing sections: %s", strings.Join(missing, ", ")))
	}

	switch {
	case res.KeywordScore < 0.6:
		feedback = append(feedback, fmt.Sprintf("Add more %s-specific keywords to improve ATS compatibility and relevance.", role))
	case res.KeywordScore < 0.8:
		feedback = append(feedback, "Good keyword coverage. Consider adding more technical terms specific to your target role.")
	}

	if res.SkillScore < 0.5 {
		feedback = append(feedback, "Include more technical skills relevant to your target role.")
	} else if len(skills) > 15 {
		feedback = append(feedback, "Consider focusing on your most relevant skills (quality over quantity).")
	}

	if countImpactVerbs(sections["experience"]) < 3 {
		feedback = append(feedback, "Use more action verbs and quantify achievements in your Experience section.")
	}

	if res.StructureScore > 0.7 {
		feedback = append(feedback, "Well-structured resume with clear sections.")
	}
	if res.KeywordScore > 0.8 {
		feedback = append(feedback, "Excellent use of role-specific keywords.")
	}

	if len(feedback) > maxFeedback {
		feedback = feedback[:maxFeedback]
	}
	return feedback
}

func maxf(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}
