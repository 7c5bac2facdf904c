package parsing

import (
	"testing"

	"github.com/jonathan/candidate-matcher/internal/types"
	"github.com/stretchr/testify/assert"
)

func TestExtractEmail(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"inline email", "contact: jane@x.co", "jane@x.co"},
		{"first of several", "a@b.io then c@d.io", "a@b.io"},
		{"plus and dots", "Reach me at jane.doe+jobs@mail.example.org.", "jane.doe+jobs@mail.example.org"},
		{"no email", "Jane Doe\nEngineer", DefaultEmail},
		{"tld too short", "jane@host.c", DefaultEmail},
		{"empty", "", DefaultEmail},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ExtractEmail(tt.input))
		})
	}
}

func TestExtractName(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"leading blank lines", "\n\nJane Doe\nEngineer", "Jane Doe"},
		{"trims whitespace", "   John Smith  \r\n", "John Smith"},
		{"no non-empty lines", "\n  \n\t\n", DefaultName},
		{"empty", "", DefaultName},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ExtractName(tt.input))
		})
	}
}

func TestExtractContact(t *testing.T) {
	got := ExtractContact("Jane Doe\njane@example.com\n5 years Go")
	assert.Equal(t, types.ContactInfo{Name: "Jane Doe", Email: "jane@example.com"}, got)
}

func TestResolveContact(t *testing.T) {
	text := "Jane Doe\njane@example.com"

	assert.Equal(t,
		types.ContactInfo{Name: "J. Doe", Email: "jd@corp.io"},
		ResolveContact(text, " J. Doe ", "jd@corp.io"))
	assert.Equal(t,
		types.ContactInfo{Name: "Jane Doe", Email: "jane@example.com"},
		ResolveContact(text, "  ", ""))
	assert.Equal(t,
		types.ContactInfo{Name: DefaultName, Email: DefaultEmail},
		ResolveContact("", "", ""))
}
