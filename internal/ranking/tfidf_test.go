package ranking

import (
	"testing"

	"github.com/jonathan/candidate-matcher/internal/parsing"
	"github.com/stretchr/testify/assert"
)

func TestTextSimilarity(t *testing.T) {
	n := parsing.DefaultNormalizer()

	tests := []struct {
		name        string
		resume      string
		description string
		expected    float64
	}{
		{"empty resume", "", "Go developer", 0},
		{"empty description", "Go developer", "", 0},
		{"stopwords only", "the and of", "the and of", 0},
		{"no shared terms", "Python data science", "Rust embedded firmware", 0},
		{"one shared term", "Python engineer", "We need a Rust engineer", 35},
		{"two shared terms", "Go developer", "go developers", 71},
		{"repeated shared terms saturate", "go go go", "go go", 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, TextSimilarity(n, tt.resume, tt.description))
		})
	}
}

func TestTextSimilarity_Bounds(t *testing.T) {
	n := parsing.DefaultNormalizer()
	inputs := []string{
		"",
		"Go",
		"Senior Go engineer, 8 years building distributed systems with Kafka and Postgres.",
		"go go go go go go go go go go go go go go go go",
		"日本語のテキスト",
	}
	for _, a := range inputs {
		for _, b := range inputs {
			score := TextSimilarity(n, a, b)
			assert.GreaterOrEqual(t, score, 0.0)
			assert.LessOrEqual(t, score, 100.0)
		}
	}
}

func TestInverseDocumentFrequency(t *testing.T) {
	assert.InDelta(t, 0.594535, inverseDocumentFrequency(2), 1e-6)
	assert.InDelta(t, 1.0, inverseDocumentFrequency(1), 1e-9)
}
