package textproc

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

func toLowerTrim(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// ExtractSkills returns the deduplicated skill terms from the vocabulary
// that occur in text. Matching is case-insensitive and whole-word: a term
// only matches when the adjacent runes are not letters or digits, so "go"
// never matches inside "django" or "good". Output preserves discovery order
// (sorted category order, then vocabulary order) and is deterministic for
// identical input and vocabulary.
func ExtractSkills(text string, vocab *Vocabulary) []string {
	if text == "" || vocab == nil {
		return nil
	}

	lowered := strings.ToLower(text)
	seen := make(map[string]struct{})
	var found []string

	for _, category := range vocab.Categories() {
		for _, skill := range vocab.Skills(category) {
			if skill == "" {
				continue
			}
			if _, dup := seen[skill]; dup {
				continue
			}
			if containsWholeWord(lowered, skill) {
				seen[skill] = struct{}{}
				found = append(found, skill)
			}
		}
	}

	return found
}

// containsWholeWord reports whether term occurs in text with non-word
// boundaries on both sides. Terms may contain punctuation ("c++",
// "node.js") or spaces ("problem solving"); only letter/digit adjacency
// breaks a match.
func containsWholeWord(text, term string) bool {
	for offset := 0; offset <= len(text)-len(term); {
		i := strings.Index(text[offset:], term)
		if i < 0 {
			return false
		}
		start := offset + i
		end := start + len(term)
		if boundaryBefore(text, start) && boundaryAfter(text, end) {
			return true
		}
		offset = start + 1
	}
	return false
}

func boundaryBefore(text string, start int) bool {
	if start == 0 {
		return true
	}
	r, _ := utf8.DecodeLastRuneInString(text[:start])
	return !unicode.IsLetter(r) && !unicode.IsDigit(r)
}

func boundaryAfter(text string, end int) bool {
	if end >= len(text) {
		return true
	}
	r, _ := utf8.DecodeRuneInString(text[end:])
	return !unicode.IsLetter(r) && !unicode.IsDigit(r)
}
