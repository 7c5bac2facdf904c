package ranking

import (
	"math"
	"sort"

	"github.com/jonathan/candidate-matcher/internal/parsing"
)

// corpusSize is the number of documents compared by TextSimilarity.
const corpusSize = 2

// TextSimilarity scores how much of the job description's vocabulary the
// resume shares, using TF-IDF weights over the two-document corpus
// {resume, description}. The result is a whole number in [0, 100].
func TextSimilarity(n *parsing.Normalizer, resumeText, description string) float64 {
	resumeTF := termCounts(n.Tokenize(resumeText))
	jobTF := termCounts(n.Tokenize(description))
	if len(resumeTF) == 0 || len(jobTF) == 0 {
		return 0
	}

	// Sorted iteration keeps the floating point sum identical across runs.
	terms := make([]string, 0, len(jobTF))
	for term := range jobTF {
		terms = append(terms, term)
	}
	sort.Strings(terms)

	sum := 0.0
	for _, term := range terms {
		resumeCount, ok := resumeTF[term]
		if !ok {
			continue
		}
		idf := inverseDocumentFrequency(documentFrequency(term, resumeTF, jobTF))
		resumeWeight := float64(resumeCount) * idf
		if resumeWeight == 0 {
			continue
		}
		sum += resumeWeight * float64(jobTF[term]) * idf
	}

	return clampPercent(math.Round(math.Min(1, sum) * 100))
}

// inverseDocumentFrequency is 1 + ln(N / (1 + df)).
func inverseDocumentFrequency(df int) float64 {
	return 1 + math.Log(float64(corpusSize)/float64(1+df))
}

func documentFrequency(term string, docs ...map[string]int) int {
	df := 0
	for _, doc := range docs {
		if doc[term] > 0 {
			df++
		}
	}
	return df
}

func termCounts(tokens []string) map[string]int {
	counts := make(map[string]int, len(tokens))
	for _, t := range tokens {
		counts[t]++
	}
	return counts
}
