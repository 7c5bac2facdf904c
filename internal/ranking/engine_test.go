package ranking

import (
	"testing"

	"github.com/jonathan/candidate-matcher/internal/parsing"
	"github.com/stretchr/testify/assert"
)

const sampleResume = `Jane Doe
jane@example.com

Backend engineer with 6 years of experience building Go services,
Postgres schemas and Docker deployments.`

func TestScore(t *testing.T) {
	n := parsing.DefaultNormalizer()
	description := "Looking for a Go backend engineer comfortable with Postgres."
	skillList := []string{"Go", "Postgres", "Kubernetes"}

	result := Score(n, sampleResume, description, skillList)

	assert.Equal(t, []string{"Go", "Postgres"}, result.Skills)
	assert.InDelta(t, 200.0/3, result.SkillMatch, 1e-9)
	assert.Equal(t, 60.0, result.ExperienceScore)
	assert.Greater(t, result.TextSimilarity, 0.0)
	assert.Equal(t, Composite(result.TextSimilarity, result.SkillMatch, result.ExperienceScore), result.CompositeScore)
	assert.Contains(t, result.Notes, "Moderate skill match (Go, Postgres)")
	assert.Contains(t, result.Notes, "Missing Kubernetes")
	assert.Contains(t, result.Notes, "About 6 years of experience")
}

func TestScore_EmptyResume(t *testing.T) {
	result := Score(parsing.DefaultNormalizer(), "", "Go engineer", []string{"Go"})

	assert.Empty(t, result.Skills)
	assert.Zero(t, result.TextSimilarity)
	assert.Zero(t, result.SkillMatch)
	assert.Zero(t, result.ExperienceScore)
	assert.Zero(t, result.CompositeScore)
	assert.Contains(t, result.Notes, "No skill matches")
}

func TestScore_NoRequiredSkills(t *testing.T) {
	result := Score(parsing.DefaultNormalizer(), sampleResume, "Go engineer", nil)
	assert.Zero(t, result.SkillMatch)
	assert.Empty(t, result.Skills)
}

func TestScore_Idempotent(t *testing.T) {
	n := parsing.DefaultNormalizer()
	skillList := []string{"Go", "Docker"}
	first := Score(n, sampleResume, "Go and Docker engineer", skillList)
	second := Score(n, sampleResume, "Go and Docker engineer", skillList)
	assert.Equal(t, first, second)
}

func TestScore_Bounds(t *testing.T) {
	n := parsing.DefaultNormalizer()
	resumes := []string{"", "x", sampleResume, "999 years go go go go go go"}
	for _, r := range resumes {
		result := Score(n, r, "go go go engineer", []string{"Go", "", "the"})
		for _, v := range []float64{result.TextSimilarity, result.SkillMatch, result.ExperienceScore, float64(result.CompositeScore)} {
			assert.GreaterOrEqual(t, v, 0.0)
			assert.LessOrEqual(t, v, 100.0)
		}
	}
}
