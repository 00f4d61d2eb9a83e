package textproc

import "strings"

// sectionHeaders are the recognized resume section keywords. A line counts
// as a header only when it contains one of these AND is at most three words
// long, so keywords inside body prose do not split sections.
var sectionHeaders = []string{
	"experience", "education", "skills", "projects",
	"certifications", "awards", "summary", "objective",
}

const maxHeaderWords = 3

// OtherSection is the bucket for lines that appear before any recognized
// header.
const OtherSection = "other"

// ExtractSections segments resume text into labeled sections. Every
// non-empty line belongs to exactly one section: header lines switch the
// current section to the matched keyword, other lines accumulate under the
// current section, and lines before the first header land in "other".
// Section values are right-trimmed. Empty input yields an empty map.
func ExtractSections(text string) map[string]string {
	sections := make(map[string]string)
	current := OtherSection

	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		if header, ok := matchHeader(line); ok {
			current = header
			if _, exists := sections[current]; !exists {
				sections[current] = ""
			}
			continue
		}

		sections[current] += line + " "
	}

	for key, value := range sections {
		sections[key] = strings.TrimRight(value, " ")
	}

	return sections
}

// matchHeader returns the section keyword a header line maps to. Headers
// are short lines containing a known keyword; the first keyword in
// declaration order wins when a line names several.
func matchHeader(line string) (string, bool) {
	if len(strings.Fields(line)) > maxHeaderWords {
		return "", false
	}
	lowered := strings.ToLower(line)
	for _, header := range sectionHeaders {
		if strings.Contains(lowered, header) {
			return header, true
		}
	}
	return "", false
}
