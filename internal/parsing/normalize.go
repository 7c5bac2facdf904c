// Package parsing turns free text into normalized tokens and pulls contact
// details out of resumes.
package parsing

import (
	"strings"
	"sync"

	"github.com/kljensen/snowball/english"
)

// StemFunc reduces a lowercase word to its stem.
type StemFunc func(word string) string

// Normalizer lowercases, splits, filters stopwords and stems text.
// A Normalizer is immutable once built and safe for concurrent use.
type Normalizer struct {
	stopwords map[string]struct{}
	stem      StemFunc
}

// NewNormalizer builds a Normalizer from a stopword list and a stemmer.
// The stopword list is copied. A nil stem leaves tokens unstemmed.
func NewNormalizer(stopwords []string, stem StemFunc) *Normalizer {
	set := make(map[string]struct{}, len(stopwords))
	for _, w := range stopwords {
		w = strings.ToLower(strings.TrimSpace(w))
		if w != "" {
			set[w] = struct{}{}
		}
	}
	if stem == nil {
		stem = func(word string) string { return word }
	}
	return &Normalizer{stopwords: set, stem: stem}
}

// PorterStem stems an English word with the Snowball (Porter2) algorithm.
func PorterStem(word string) string {
	return english.Stem(word, true)
}

var (
	defaultOnce       sync.Once
	defaultNormalizer *Normalizer
)

// DefaultNormalizer returns the shared English normalizer.
func DefaultNormalizer() *Normalizer {
	defaultOnce.Do(func() {
		defaultNormalizer = NewNormalizer(EnglishStopwords(), PorterStem)
	})
	return defaultNormalizer
}

// Tokenize returns the stemmed, stopword-free tokens of text in order.
// Only ASCII letters and digits form words.
func (n *Normalizer) Tokenize(text string) []string {
	words := strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !isWordRune(r)
	})
	tokens := make([]string, 0, len(words))
	for _, w := range words {
		if n.IsStopword(w) {
			continue
		}
		if s := n.stem(w); s != "" {
			tokens = append(tokens, s)
		}
	}
	return tokens
}

// TokenSet returns the distinct tokens of text.
func (n *Normalizer) TokenSet(text string) map[string]struct{} {
	tokens := n.Tokenize(text)
	set := make(map[string]struct{}, len(tokens))
	for _, t := range tokens {
		set[t] = struct{}{}
	}
	return set
}

// FirstToken returns the first surviving token of text, if any.
func (n *Normalizer) FirstToken(text string) (string, bool) {
	tokens := n.Tokenize(text)
	if len(tokens) == 0 {
		return "", false
	}
	return tokens[0], true
}

// IsStopword reports whether the lowercase word is filtered out.
func (n *Normalizer) IsStopword(word string) bool {
	_, ok := n.stopwords[word]
	return ok
}

func isWordRune(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9')
}
