// Package ranking scores resumes against job postings.
package ranking

import (
	"math"
	"regexp"
	"strconv"

	"github.com/jonathan/candidate-matcher/internal/parsing"
)

// Composite weights
const (
	textSimilarityWeight  = 0.5
	skillMatchWeight      = 0.3
	experienceScoreWeight = 0.2
)

// pointsPerYear converts years of experience into experience score points.
const pointsPerYear = 10

var yearsRegex = regexp.MustCompile(`(?i)(\d+)\s*(years?|yrs?)`)

// SkillMatch returns the percentage of required skills with at least one
// token present in the resume. An empty skill list scores 0.
func SkillMatch(n *parsing.Normalizer, resumeText string, requiredSkills []string) float64 {
	if len(requiredSkills) == 0 {
		return 0
	}

	resumeTokens := n.TokenSet(resumeText)
	matched := 0
	for _, skill := range requiredSkills {
		for _, token := range n.Tokenize(skill) {
			if _, ok := resumeTokens[token]; ok {
				matched++
				break
			}
		}
	}

	return clampPercent(float64(matched) / float64(len(requiredSkills)) * 100)
}

// ExperienceScore reads the first "N years" (or "N yrs") mention in the
// resume and awards ten points per year, capped at 100.
func ExperienceScore(resumeText string) float64 {
	m := yearsRegex.FindStringSubmatch(resumeText)
	if m == nil {
		return 0
	}
	years, err := strconv.Atoi(m[1])
	if err != nil {
		// Only a digit run too large for int gets here.
		return 100
	}
	return clampPercent(float64(years) * pointsPerYear)
}

// Composite blends the three sub-scores into a whole percentage.
func Composite(textSimilarity, skillMatch, experienceScore float64) int {
	total := clampPercent(textSimilarity)*textSimilarityWeight +
		clampPercent(skillMatch)*skillMatchWeight +
		clampPercent(experienceScore)*experienceScoreWeight
	return int(clampPercent(math.Round(total)))
}

// clampPercent bounds v to [0, 100]. NaN becomes 0.
func clampPercent(v float64) float64 {
	switch {
	case math.IsNaN(v) || v < 0:
		return 0
	case v > 100:
		return 100
	default:
		return v
	}
}
