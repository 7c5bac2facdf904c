package ranking

import (
	"math"
	"testing"

	"github.com/jonathan/candidate-matcher/internal/parsing"
	"github.com/stretchr/testify/assert"
)

func TestSkillMatch(t *testing.T) {
	n := parsing.DefaultNormalizer()
	resume := "Go and Docker developer"

	tests := []struct {
		name     string
		skills   []string
		expected float64
	}{
		{"empty skills", nil, 0},
		{"all matched", []string{"Go", "docker"}, 100},
		{"none matched", []string{"Rust", "Kafka"}, 0},
		{"any token of a phrase", []string{"Docker Swarm", "Rust"}, 50},
		{"stopword-only skill never matches", []string{"the", "Go"}, 50},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.expected, SkillMatch(n, resume, tt.skills), 1e-9)
		})
	}

	assert.InDelta(t, 200.0/3, SkillMatch(n, resume, []string{"Go", "Kubernetes", "Docker Swarm"}), 1e-9)
}

func TestSkillMatch_Monotonic(t *testing.T) {
	n := parsing.DefaultNormalizer()
	resume := "Go developer with Postgres experience"
	base := []string{"Rust", "Kafka", "Go"}

	before := SkillMatch(n, resume, base)
	after := SkillMatch(n, resume, append(base, "Postgres"))
	assert.GreaterOrEqual(t, after, before)
}

func TestExperienceScore(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected float64
	}{
		{"years", "5 years of experience", 50},
		{"yrs capped", "12 yrs", 100},
		{"singular", "1 year", 10},
		{"no space", "3years", 30},
		{"case insensitive", "7 YEARS", 70},
		{"first match only", "Worked 2 yrs, then 9 years", 20},
		{"zero", "0 years", 0},
		{"no match", "no experience listed", 0},
		{"number without unit", "built 40 services", 0},
		{"overflow saturates", "99999999999999999999999 years", 100},
		{"empty", "", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ExperienceScore(tt.input))
		})
	}
}

func TestComposite(t *testing.T) {
	tests := []struct {
		name                    string
		text, skill, experience float64
		expected                int
	}{
		{"weighted blend", 80, 60, 50, 68},
		{"all max", 100, 100, 100, 100},
		{"all zero", 0, 0, 0, 0},
		{"rounds half up", 1, 0, 0, 1},
		{"inputs clamped", 150, -10, math.NaN(), 50},
		{"infinite input clamped", math.Inf(1), math.Inf(-1), 0, 50},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Composite(tt.text, tt.skill, tt.experience))
		})
	}
}

func TestClampPercent(t *testing.T) {
	assert.Equal(t, 0.0, clampPercent(-1))
	assert.Equal(t, 0.0, clampPercent(math.NaN()))
	assert.Equal(t, 100.0, clampPercent(101))
	assert.Equal(t, 42.5, clampPercent(42.5))
}
