// Package textproc implements the text preprocessing pipeline: cleaning raw
// resume/job text, extracting recognized skills against a controlled
// vocabulary, and segmenting resumes into labeled sections.
package textproc

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

var (
	reURL   = regexp.MustCompile(`(?i)https?\S+|www\S+`)
	reEmail = regexp.MustCompile(`\S+@\S+`)
	// Anything outside word characters, whitespace and basic punctuation
	// becomes a space.
	rePunct = regexp.MustCompile(`[^\w\s.,!?;:]`)
	// Phone-like digit runs: 10+ characters of digits and separators,
	// starting with a non-zero digit. Applied after punctuation stripping,
	// so separators are reduced to whitespace and dots by then.
	rePhone = regexp.MustCompile(`[1-9][0-9\s.]{8,}[0-9]`)
	reSpace = regexp.MustCompile(`\s+`)

	reHTMLTag = regexp.MustCompile(`(?s)<[a-zA-Z!/][^>]*>`)
)

// Normalize cleans arbitrary text for analysis: lowercases it, strips URLs,
// email addresses and phone-number-like digit runs, replaces characters
// outside the whitelist with spaces, and collapses whitespace. It never
// fails; empty input yields an empty string. The function is idempotent:
// Normalize(Normalize(s)) == Normalize(s).
func Normalize(text string) string {
	if text == "" {
		return ""
	}

	text = strings.ToLower(text)
	text = reURL.ReplaceAllString(text, " ")
	text = reEmail.ReplaceAllString(text, " ")
	text = rePunct.ReplaceAllString(text, " ")
	text = rePhone.ReplaceAllString(text, " ")
	text = reSpace.ReplaceAllString(text, " ")

	return strings.TrimSpace(text)
}

// StripHTML extracts the visible text from HTML input. Job descriptions
// scraped from postings arrive as markup; plain text passes through
// unchanged. Parse failures fall back to the raw input.
func StripHTML(text string) string {
	if !reHTMLTag.MatchString(text) {
		return text
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(text))
	if err != nil {
		return text
	}
	doc.Find("script,style").Remove()
	return doc.Text()
}

// Clean is the full preprocessing step applied to incoming documents:
// markup removal followed by normalization.
func Clean(text string) string {
	return Normalize(StripHTML(text))
}

// Tokenize splits normalized text into lowercase whitespace-delimited
// tokens.
func Tokenize(text string) []string {
	return strings.Fields(strings.ToLower(text))
}

// WordCount reports the number of whitespace-delimited words in text.
func WordCount(text string) int {
	return len(strings.Fields(text))
}
