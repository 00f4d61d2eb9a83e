package textproc

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractSections(t *testing.T) {
	t.Run("basic segmentation", func(t *testing.T) {
		got := ExtractSections("Experience\nBuilt APIs\nEducation\nBS CS")
		assert.Equal(t, map[string]string{
			"experience": "Built APIs",
			"education":  "BS CS",
		}, got)
	})

	t.Run("pre-header lines go to other", func(t *testing.T) {
		got := ExtractSections("Jane Doe\nBackend engineer\nSkills\nGo, SQL")
		assert.Equal(t, "Jane Doe Backend engineer", got[OtherSection])
		assert.Equal(t, "Go, SQL", got["skills"])
	})

	t.Run("long lines with keywords are not headers", func(t *testing.T) {
		got := ExtractSections("Summary\nI have experience building large distributed systems")
		assert.Equal(t, "I have experience building large distributed systems", got["summary"])
		assert.NotContains(t, got, "experience")
	})

	t.Run("repeated headers append", func(t *testing.T) {
		got := ExtractSections("Skills\nGo\nEducation\nBS\nSkills\nSQL")
		assert.Equal(t, "Go SQL", got["skills"])
	})

	t.Run("header casing ignored", func(t *testing.T) {
		got := ExtractSections("WORK EXPERIENCE\nShipped things")
		assert.Equal(t, "Shipped things", got["experience"])
	})

	t.Run("empty input", func(t *testing.T) {
		assert.Empty(t, ExtractSections(""))
		assert.Empty(t, ExtractSections("\n\n  \n"))
	})

	t.Run("deterministic", func(t *testing.T) {
		text := "Summary\nSeasoned engineer\nExperience\nDid things\nSkills\nGo"
		first := ExtractSections(text)
		for i := 0; i < 5; i++ {
			assert.Equal(t, first, ExtractSections(text))
		}
	})
}
