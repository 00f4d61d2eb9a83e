package textproc

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"

	"github.com/xeipuuv/gojsonschema"
)

// vocabularySchema validates user-supplied skill vocabulary files: a JSON
// object mapping category names to non-empty arrays of skill strings.
const vocabularySchema = `{
	"type": "object",
	"minProperties": 1,
	"additionalProperties": {
		"type": "array",
		"minItems": 1,
		"items": {"type": "string", "minLength": 1}
	}
}`

// Vocabulary is the controlled list of recognized skill terms, grouped by
// category. It is loaded once at startup and read-only afterwards, so it is
// safe to share across concurrent requests.
type Vocabulary struct {
	categories map[string][]string
	names      []string // category names, sorted for deterministic iteration
}

// NewVocabulary builds a vocabulary from a category map. Skill terms are
// lowercased; category iteration order is sorted by name.
func NewVocabulary(categories map[string][]string) *Vocabulary {
	v := &Vocabulary{
		categories: make(map[string][]string, len(categories)),
		names:      make([]string, 0, len(categories)),
	}
	for name, skills := range categories {
		lowered := make([]string, 0, len(skills))
		for _, s := range skills {
			lowered = append(lowered, toLowerTrim(s))
		}
		v.categories[name] = lowered
		v.names = append(v.names, name)
	}
	sort.Strings(v.names)
	return v
}

// DefaultVocabulary returns the built-in skill table used when no vocabulary
// file is configured or the configured one fails validation.
func DefaultVocabulary() *Vocabulary {
	return NewVocabulary(map[string][]string{
		"programming":  {"python", "javascript", "java", "c++", "c#", "go", "rust", "swift", "kotlin"},
		"web":          {"html", "css", "react", "vue", "angular", "django", "flask", "node.js", "express"},
		"databases":    {"mysql", "postgresql", "mongodb", "redis", "sqlite", "oracle"},
		"devops":       {"docker", "kubernetes", "aws", "azure", "gcp", "jenkins", "git", "ci/cd"},
		"data_science": {"pandas", "numpy", "scikit-learn", "tensorflow", "pytorch", "r", "matplotlib"},
		"mobile":       {"android", "ios", "react native", "flutter", "swift", "kotlin"},
		"soft_skills":  {"communication", "leadership", "teamwork", "problem solving", "agile", "scrum"},
	})
}

// LoadVocabulary reads and validates a vocabulary JSON file.
func LoadVocabulary(path string) (*Vocabulary, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read vocabulary file %s: %w", path, err)
	}

	result, err := gojsonschema.Validate(
		gojsonschema.NewStringLoader(vocabularySchema),
		gojsonschema.NewBytesLoader(data),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to validate vocabulary file %s: %w", path, err)
	}
	if !result.Valid() {
		first := result.Errors()[0]
		return nil, fmt.Errorf("invalid vocabulary file %s: %s: %s", path, first.Field(), first.Description())
	}

	var categories map[string][]string
	if err := json.Unmarshal(data, &categories); err != nil {
		return nil, fmt.Errorf("failed to parse vocabulary file %s: %w", path, err)
	}

	return NewVocabulary(categories), nil
}

// Categories returns category names in sorted order.
func (v *Vocabulary) Categories() []string {
	return v.names
}

// Skills returns the skill terms for a category, in file order.
func (v *Vocabulary) Skills(category string) []string {
	return v.categories[category]
}

// Size returns the total number of skill terms across categories.
func (v *Vocabulary) Size() int {
	n := 0
	for _, skills := range v.categories {
		n += len(skills)
	}
	return n
}
