// Package skills matches a job's declared skill catalog against resume text.
package skills

import (
	"github.com/jonathan/candidate-matcher/internal/parsing"
)

// ExtractSkills returns the catalog skills present in resumeText.
//
// Only the first surviving token of each skill is compared against the
// resume's token set, so "Machine Learning" matches a resume that mentions
// "machines". Skills with no surviving token never match. The result keeps
// catalog order and casing and holds no duplicates.
func ExtractSkills(n *parsing.Normalizer, resumeText string, catalog []string) []string {
	matched := make([]string, 0, len(catalog))
	if len(catalog) == 0 {
		return matched
	}

	resumeTokens := n.TokenSet(resumeText)
	seen := make(map[string]struct{}, len(catalog))
	for _, skill := range catalog {
		if _, dup := seen[skill]; dup {
			continue
		}
		token, ok := n.FirstToken(skill)
		if !ok {
			continue
		}
		if _, found := resumeTokens[token]; found {
			seen[skill] = struct{}{}
			matched = append(matched, skill)
		}
	}
	return matched
}

// MissingSkills returns the catalog skills absent from matched, in catalog order.
func MissingSkills(catalog, matched []string) []string {
	have := make(map[string]struct{}, len(matched))
	for _, s := range matched {
		have[s] = struct{}{}
	}
	missing := make([]string, 0, len(catalog))
	seen := make(map[string]struct{}, len(catalog))
	for _, s := range catalog {
		if _, ok := have[s]; ok {
			continue
		}
		if _, dup := seen[s]; dup {
			continue
		}
		seen[s] = struct{}{}
		missing = append(missing, s)
	}
	return missing
}
