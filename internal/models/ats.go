package models

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"go.uber.org/zap"

	"github.com/jonathan/resume-analyzer/internal/textproc"
	"github.com/jonathan/resume-analyzer/internal/types"
)

// ATS score deductions. The score starts at 100 and every detected problem
// subtracts a fixed amount; this calibration keeps a reasonable resume with
// a couple of issues in the 70-90 range.
const (
	deductFormatIssue     = 8
	deductStructuralIssue = 10
	deductFewSkills       = 15
	deductSomeSkills      = 5
	deductNoQuantified    = 10
	deductFewActionVerbs  = 10
)

var (
	reTable       = regexp.MustCompile(`\|\s*.+\s*\|`)
	reImage       = regexp.MustCompile(`(?i)\[img\]|\[image\]|graphic`)
	reHeaderWord  = regexp.MustCompile(`(?i)header|footer`)
	reColumns     = regexp.MustCompile(`(?i)column|multicolumn`)
	reFileFormat  = regexp.MustCompile(`(?i)\.docx?|\.pdf|\.pages`)
	reSpecialChar = regexp.MustCompile(`[※§¶†‡•]`)

	reContactEmail = regexp.MustCompile(`\b[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}\b`)
	reContactPhone = regexp.MustCompile(`\(\d{3}\)\s*\d{3}-\d{4}|\d{3}-\d{3}-\d{4}`)
	reContactLink  = regexp.MustCompile(`linkedin\.com/in/|github\.com/`)

	quantPatterns = []*regexp.Regexp{
		regexp.MustCompile(`\d+%`),
		regexp.MustCompile(`\$\d+`),
		regexp.MustCompile(`\d+\+`),
		regexp.MustCompile(`increased by`),
		regexp.MustCompile(`reduced by`),
		regexp.MustCompile(`saved \$?\d+`),
		regexp.MustCompile(`improved by \d+`),
	}
)

// actionVerbs signal bullet points written as accomplishments rather than
// duties; ATS-side recruiters screen for them.
var actionVerbs = []string{
	"managed", "developed", "created", "implemented", "led",
	"improved", "increased", "reduced", "optimized", "built",
}

// ATSModel estimates how well a resume parses under applicant tracking
// systems. All checks are deliberately simple pattern matching.
type ATSModel struct {
	deps
	version string
}

// NewATSModel creates an ATS compatibility model.
func NewATSModel(version string, vocab *textproc.Vocabulary, log *zap.Logger) *ATSModel {
	return &ATSModel{deps: newDeps(vocab, nil, log), version: version}
}

// Version returns the model version label.
func (m *ATSModel) Version() string { return m.version }

// Predict runs the format, structure, and keyword checks and converts the
// findings into a 0-100 score.
func (m *ATSModel) Predict(ctx context.Context, req types.ATSRequest) (res types.ATSResult) {
	res = types.ATSResult{
		FormatIssues:     []string{},
		StructuralIssues: []string{},
		Recommendations:  []string{},
		ModelVersion:     m.version,
	}
	defer m.recoverPrediction("ats", req.ResumeText, &res.Error)

	raw := req.ResumeText
	if strings.TrimSpace(raw) == "" {
		res.Error = errBlankInput
		return res
	}

	res.FormatIssues = checkFormatIssues(raw)
	res.StructuralIssues = checkStructuralIssues(raw)
	res.KeywordStatus = m.analyzeKeywords(raw)
	res.ATSScore = calculateATSScore(res.FormatIssues, res.StructuralIssues, res.KeywordStatus)
	res.Recommendations = atsRecommendations(res.FormatIssues, res.StructuralIssues, res.KeywordStatus)
	return res
}

// Explain maps the score to a banded summary plus the leading issues.
func (m *ATSModel) Explain(res types.ATSResult) []string {
	var out []string
	switch {
	case res.ATSScore >= 80:
		out = append(out, "Your resume has good ATS compatibility with minimal issues.")
	case res.ATSScore >= 60:
		out = append(out, "Your resume has acceptable ATS compatibility but could be improved.")
	default:
		out = append(out, "Your resume has significant ATS compatibility issues that need attention.")
	}
	if len(res.FormatIssues) > 0 {
		out = append(out, fmt.Sprintf("Format issues: %s", strings.Join(capList(res.FormatIssues, 2), ", ")))
	}
	if len(res.StructuralIssues) > 0 {
		out = append(out, fmt.Sprintf("Structural issues: %s", strings.Join(capList(res.StructuralIssues, 2), ", ")))
	}
	return out
}

func checkFormatIssues(text string) []string {
	issues := []string{}
	if reTable.MatchString(text) {
		issues = append(issues, "Tables detected - ATS may have trouble parsing")
	}
	if reImage.MatchString(text) {
		issues = append(issues, "Images or graphics mentioned - ATS cannot read images")
	}
	if reHeaderWord.MatchString(text) {
		issues = append(issues, "Headers/footers may cause parsing issues")
	}
	if reColumns.MatchString(text) {
		issues = append(issues, "Multiple columns may not parse correctly")
	}
	if reFileFormat.MatchString(text) {
		issues = append(issues, "File format references should be removed")
	}
	if chars := reSpecialChar.FindAllString(text, -1); len(chars) > 0 {
		issues = append(issues, fmt.Sprintf("Uncommon special characters detected: %s", uniqueJoin(chars)))
	}
	return issues
}

// checkStructuralIssues orders findings by priority: missing sections
// first, then contact information, then length.
func checkStructuralIssues(text string) []string {
	issues := []string{}

	sections := textproc.ExtractSections(text)
	if _, ok := sections["experience"]; !ok {
		issues = append(issues, "Missing Experience section")
	}
	if _, ok := sections["education"]; !ok {
		issues = append(issues, "Missing Education section")
	}
	if _, ok := sections["skills"]; !ok {
		issues = append(issues, "Missing Skills section")
	}

	hasContact := reContactEmail.MatchString(text) ||
		reContactPhone.MatchString(text) ||
		reContactLink.MatchString(text)
	if !hasContact {
		issues = append(issues, "Contact information may be missing or hard to parse")
	}

	switch wc := textproc.WordCount(text); {
	case wc < 200:
		issues = append(issues, "Resume may be too short - consider adding more detail")
	case wc > 1500:
		issues = append(issues, "Resume may be too long - ATS prefers concise resumes")
	}
	return issues
}

func (m *ATSModel) analyzeKeywords(raw string) types.ATSKeywordStatus {
	clean := textproc.Clean(raw)
	skills := textproc.ExtractSkills(clean, m.vocab)
	lowered := strings.ToLower(raw)

	foundVerbs := []string{}
	for _, verb := range actionVerbs {
		if strings.Contains(lowered, verb) {
			foundVerbs = append(foundVerbs, verb)
		}
	}

	quantified := false
	for _, re := range quantPatterns {
		if re.MatchString(lowered) {
			quantified = true
			break
		}
	}

	diversity := "needs improvement"
	if len(skills) >= 8 {
		diversity = "good"
	}

	return types.ATSKeywordStatus{
		FoundSkills:                capList(skills, 10),
		FoundActionVerbs:           foundVerbs,
		HasQuantifiableAchievement: quantified,
		TotalSkillsFound:           len(skills),
		SkillDiversity:             diversity,
	}
}

func calculateATSScore(formatIssues, structuralIssues []string, kw types.ATSKeywordStatus) int {
	score := 100
	score -= len(formatIssues) * deductFormatIssue
	score -= len(structuralIssues) * deductStructuralIssue

	switch {
	case kw.TotalSkillsFound < 5:
		score -= deductFewSkills
	case kw.TotalSkillsFound < 8:
		score -= deductSomeSkills
	}
	if !kw.HasQuantifiableAchievement {
		score -= deductNoQuantified
	}
	if len(kw.FoundActionVerbs) < 3 {
		score -= deductFewActionVerbs
	}

	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}

func atsRecommendations(formatIssues, structuralIssues []string, kw types.ATSKeywordStatus) []string {
	recs := []string{}

	if len(formatIssues) > 0 {
		recs = append(recs, "Remove tables, images, and complex formatting for better ATS parsing.")
	}
	for _, issue := range structuralIssues {
		switch issue {
		case "Missing Experience section":
			recs = append(recs, "Add a clear Experience section with detailed work history.")
		case "Missing Education section":
			recs = append(recs, "Include an Education section with degrees and institutions.")
		case "Missing Skills section":
			recs = append(recs, "Create a dedicated Skills section for technical abilities.")
		}
	}
	if kw.TotalSkillsFound < 8 {
		recs = append(recs, "Add more specific technical skills relevant to your target roles.")
	}
	if !kw.HasQuantifiableAchievement {
		recs = append(recs, "Include quantifiable achievements (numbers, percentages, $ amounts) to demonstrate impact.")
	}
	if len(kw.FoundActionVerbs) < 3 {
		recs = append(recs, "Use more action verbs (managed, developed, implemented) to start bullet points.")
	}
	recs = append(recs,
		"Use standard section headings (Experience, Education, Skills) for better ATS parsing.",
		"Save your resume as a .docx or .pdf file for optimal ATS compatibility.")

	if len(recs) > maxATSRecs {
		recs = recs[:maxATSRecs]
	}
	return recs
}

func uniqueJoin(chars []string) string {
	seen := make(map[string]struct{}, len(chars))
	var out []string
	for _, c := range chars {
		if _, dup := seen[c]; !dup {
			seen[c] = struct{}{}
			out = append(out, c)
		}
	}
	return strings.Join(out, " ")
}
