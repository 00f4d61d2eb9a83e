// Package observability provides formatted output utilities for the
// one-shot analyze command.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/resume-analyzer/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for the analyze command.
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer.
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	for _, line := range strings.Split(content, "\n") {
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintMatch outputs a human-readable summary of a match result.
func (p *Printer) PrintMatch(res *types.MatchResult) {
	if res == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Match score:      %.2f\n", res.MatchScore))
	sb.WriteString(fmt.Sprintf("Similarity:       %.2f\n", res.SimilarityScore))
	sb.WriteString(fmt.Sprintf("Skill match:      %.2f\n", res.SkillMatch))

	if len(res.TopSkillsMatched) > 0 {
		sb.WriteString("\nMatched skills:\n")
		writeBullets(&sb, res.TopSkillsMatched)
	}
	if len(res.MissingSkills) > 0 {
		sb.WriteString("\nMissing skills:\n")
		writeBullets(&sb, res.MissingSkills)
	}
	writeExplanations(&sb, res.Explanations)

	p.printBox("JOB MATCH", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintFeedback outputs a human-readable summary of a feedback result.
func (p *Printer) PrintFeedback(res *types.FeedbackResult) {
	if res == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Overall score:    %.2f\n", res.OverallScore))
	sb.WriteString(fmt.Sprintf("Structure:        %.2f\n", res.StructureScore))
	sb.WriteString(fmt.Sprintf("Keywords:         %.2f\n", res.KeywordScore))
	sb.WriteString(fmt.Sprintf("Skills:           %.2f\n", res.SkillScore))
	sb.WriteString(fmt.Sprintf("\nWords: %d  Skills found: %d  Sections: %d\n",
		res.Metrics.WordCount, res.Metrics.SkillsFound, res.Metrics.SectionsFound))

	if len(res.Feedback) > 0 {
		sb.WriteString("\nFeedback:\n")
		writeBullets(&sb, res.Feedback)
	}

	p.printBox("RESUME FEEDBACK", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintATS outputs a human-readable summary of an ATS result.
func (p *Printer) PrintATS(res *types.ATSResult) {
	if res == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("ATS score:        %d / 100\n", res.ATSScore))

	issues := append(append([]string{}, res.StructuralIssues...), res.FormatIssues...)
	if len(issues) > 0 {
		sb.WriteString("\nIssues:\n")
		writeBullets(&sb, issues)
	}
	if len(res.Recommendations) > 0 {
		sb.WriteString("\nRecommendations:\n")
		writeBullets(&sb, res.Recommendations)
	}

	p.printBox("ATS COMPATIBILITY", strings.TrimSuffix(sb.String(), "\n"))
}

func writeBullets(sb *strings.Builder, items []string) {
	count := len(items)
	if count > maxItemsToShow {
		count = maxItemsToShow
	}
	for i := 0; i < count; i++ {
		sb.WriteString(fmt.Sprintf("  • %s\n", items[i]))
	}
	if len(items) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(items)-maxItemsToShow))
	}
}

func writeExplanations(sb *strings.Builder, explanations []string) {
	if len(explanations) == 0 {
		return
	}
	sb.WriteString("\n")
	for _, line := range explanations {
		sb.WriteString(fmt.Sprintf("%s\n", line))
	}
}
