package textproc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractSkills(t *testing.T) {
	vocab := NewVocabulary(map[string][]string{
		"programming": {"python", "go", "java", "sql"},
		"web":         {"django"},
	})

	t.Run("matches case insensitively", func(t *testing.T) {
		got := ExtractSkills("Skilled in Python, Django and SQL.", vocab)
		assert.ElementsMatch(t, []string{"python", "django", "sql"}, got)
	})

	t.Run("no partial word false positives", func(t *testing.T) {
		got := ExtractSkills("django is good", vocab)
		assert.NotContains(t, got, "go")
		assert.Contains(t, got, "django")
	})

	t.Run("matches at text boundaries", func(t *testing.T) {
		assert.Contains(t, ExtractSkills("go", vocab), "go")
		assert.Contains(t, ExtractSkills("we use go.", vocab), "go")
	})

	t.Run("empty text", func(t *testing.T) {
		assert.Empty(t, ExtractSkills("", vocab))
	})

	t.Run("deterministic across calls", func(t *testing.T) {
		text := "python and java and sql and django"
		first := ExtractSkills(text, vocab)
		for i := 0; i < 10; i++ {
			require.Equal(t, first, ExtractSkills(text, vocab))
		}
	})
}

func TestExtractSkillsMultiWordTerms(t *testing.T) {
	vocab := NewVocabulary(map[string][]string{
		"soft_skills": {"problem solving", "communication"},
		"programming": {"c++", "node.js"},
	})

	got := ExtractSkills("strong problem solving, c++ and node.js experience", vocab)
	assert.Contains(t, got, "problem solving")
	assert.Contains(t, got, "c++")
	assert.Contains(t, got, "node.js")
	assert.NotContains(t, got, "communication")
}

func TestDefaultVocabulary(t *testing.T) {
	vocab := DefaultVocabulary()
	assert.Greater(t, vocab.Size(), 40)
	assert.Contains(t, vocab.Categories(), "programming")
	assert.Contains(t, vocab.Skills("programming"), "python")
}
