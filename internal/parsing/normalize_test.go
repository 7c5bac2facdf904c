package parsing

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizer_Tokenize(t *testing.T) {
	n := DefaultNormalizer()

	tests := []struct {
		name     string
		input    string
		expected []string
	}{
		{"empty input", "", []string{}},
		{"whitespace only", "   \n\t ", []string{}},
		{"stopwords only", "the and of with", []string{}},
		{"lowercases and stems", "Running Skills", []string{"run", "skill"}},
		{"splits on punctuation", "go,sql;docker", []string{"go", "sql", "docker"}},
		{"keeps digits", "5 years", []string{"5", "year"}},
		{"drops non-ascii", "développeur", []string{"d", PorterStem("veloppeur")}},
		{"non-ascii only", "日本語", []string{}},
		{"preserves order and duplicates", "Go and Go", []string{"go", "go"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, n.Tokenize(tt.input))
		})
	}
}

func TestNormalizer_TokenSet(t *testing.T) {
	set := DefaultNormalizer().TokenSet("Go developer, Go engineer")
	assert.Len(t, set, 3)
	assert.Contains(t, set, "go")
	assert.Contains(t, set, PorterStem("developer"))
	assert.Contains(t, set, PorterStem("engineer"))
}

func TestNormalizer_FirstToken(t *testing.T) {
	n := DefaultNormalizer()

	tok, ok := n.FirstToken("Machine Learning")
	require.True(t, ok)
	assert.Equal(t, PorterStem("machine"), tok)

	_, ok = n.FirstToken("the of")
	assert.False(t, ok)

	_, ok = n.FirstToken("+++")
	assert.False(t, ok)
}

func TestNewNormalizer_CopiesStopwords(t *testing.T) {
	stop := []string{"Go"}
	n := NewNormalizer(stop, nil)
	stop[0] = "rust"

	assert.True(t, n.IsStopword("go"))
	assert.False(t, n.IsStopword("rust"))
	assert.Equal(t, []string{"rust", "engineers"}, n.Tokenize("Go Rust engineers"))
}

func TestNewNormalizer_CustomStemmer(t *testing.T) {
	n := NewNormalizer(nil, strings.ToUpper)
	assert.Equal(t, []string{"THE", "API"}, n.Tokenize("the api"))
}

func TestEnglishStopwords_ReturnsCopy(t *testing.T) {
	words := EnglishStopwords()
	require.NotEmpty(t, words)
	words[0] = "mutated"
	assert.NotEqual(t, "mutated", EnglishStopwords()[0])
}

func TestDefaultNormalizer_Shared(t *testing.T) {
	assert.Same(t, DefaultNormalizer(), DefaultNormalizer())
}
