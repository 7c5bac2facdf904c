package ranking

import (
	"fmt"
	"strings"

	"github.com/jonathan/candidate-matcher/internal/parsing"
	"github.com/jonathan/candidate-matcher/internal/skills"
	"github.com/jonathan/candidate-matcher/internal/types"
)

// Score evaluates one resume against one job.
func Score(n *parsing.Normalizer, resumeText, description string, requiredSkills []string) types.MatchResult {
	matched := skills.ExtractSkills(n, resumeText, requiredSkills)
	result := types.MatchResult{
		Skills:          matched,
		TextSimilarity:  TextSimilarity(n, resumeText, description),
		SkillMatch:      SkillMatch(n, resumeText, requiredSkills),
		ExperienceScore: ExperienceScore(resumeText),
	}
	result.CompositeScore = Composite(result.TextSimilarity, result.SkillMatch, result.ExperienceScore)
	result.Notes = generateNotes(result, skills.MissingSkills(requiredSkills, matched))
	return result
}

// generateNotes creates a brief explanation of the score.
func generateNotes(result types.MatchResult, missing []string) string {
	var parts []string

	switch {
	case len(result.Skills) == 0:
		parts = append(parts, "No skill matches")
	case result.SkillMatch >= 70:
		parts = append(parts, fmt.Sprintf("Strong skill match (%s)", strings.Join(result.Skills, ", ")))
	case result.SkillMatch >= 40:
		parts = append(parts, fmt.Sprintf("Moderate skill match (%s)", strings.Join(result.Skills, ", ")))
	default:
		parts = append(parts, fmt.Sprintf("Weak skill match (%s)", strings.Join(result.Skills, ", ")))
	}

	if len(missing) > 0 {
		parts = append(parts, fmt.Sprintf("Missing %s", strings.Join(missing, ", ")))
	}

	if result.TextSimilarity >= 50 {
		parts = append(parts, "Good description overlap")
	} else if result.TextSimilarity > 0 {
		parts = append(parts, "Some description overlap")
	}

	if result.ExperienceScore > 0 {
		parts = append(parts, fmt.Sprintf("About %d years of experience", int(result.ExperienceScore)/pointsPerYear))
	} else {
		parts = append(parts, "No stated experience")
	}

	return strings.Join(parts, ". ")
}
