package parsing

import (
	"regexp"
	"strings"

	"github.com/jonathan/candidate-matcher/internal/types"
)

// Defaults used when a resume carries no recognizable contact details.
const (
	DefaultEmail = "unknown@example.com"
	DefaultName  = "Unknown Name"
)

var emailRegex = regexp.MustCompile(`[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}`)

// ExtractEmail returns the first email-shaped substring of text.
func ExtractEmail(text string) string {
	if m := emailRegex.FindString(text); m != "" {
		return m
	}
	return DefaultEmail
}

// ExtractName treats the first non-empty line as the candidate's name.
func ExtractName(text string) string {
	for _, line := range strings.Split(text, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			return line
		}
	}
	return DefaultName
}

// ExtractContact returns the heuristic name and email of a resume.
func ExtractContact(text string) types.ContactInfo {
	return types.ContactInfo{
		Name:  ExtractName(text),
		Email: ExtractEmail(text),
	}
}

// ResolveContact prefers caller-supplied values and falls back to the
// heuristics for anything left blank.
func ResolveContact(text, name, email string) types.ContactInfo {
	info := types.ContactInfo{
		Name:  strings.TrimSpace(name),
		Email: strings.TrimSpace(email),
	}
	if info.Name == "" {
		info.Name = ExtractName(text)
	}
	if info.Email == "" {
		info.Email = ExtractEmail(text)
	}
	return info
}
