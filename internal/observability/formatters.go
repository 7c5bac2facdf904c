// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/candidate-matcher/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stderr; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	for _, line := range strings.Split(content, "\n") {
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, truncate(line, boxWidth-4))
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-3]) + "..."
}

// PrintJob outputs the job a resume is scored against.
func (p *Printer) PrintJob(job *types.JobSpec) {
	if job == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Title:  %s\n", job.Title))
	sb.WriteString(fmt.Sprintf("Words:  %d\n", len(strings.Fields(job.Description))))
	if len(job.Skills) > 0 {
		sb.WriteString("\nRequired Skills:\n")
		count := min(len(job.Skills), maxItemsToShow)
		for i := 0; i < count; i++ {
			sb.WriteString(fmt.Sprintf("  • %s\n", job.Skills[i]))
		}
		if len(job.Skills) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(job.Skills)-maxItemsToShow))
		}
	}

	p.printBox("JOB", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintMatchResult outputs the score breakdown for one resume.
func (p *Printer) PrintMatchResult(result *types.MatchResult) {
	if result == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Composite:        %d\n", result.CompositeScore))
	sb.WriteString(fmt.Sprintf("Text similarity:  %.2f\n", result.TextSimilarity))
	sb.WriteString(fmt.Sprintf("Skill match:      %.2f\n", result.SkillMatch))
	sb.WriteString(fmt.Sprintf("Experience:       %.2f\n", result.ExperienceScore))
	if len(result.Skills) > 0 {
		sb.WriteString(fmt.Sprintf("Skills:           %s\n", strings.Join(result.Skills, ", ")))
	} else {
		sb.WriteString("Skills:           none\n")
	}
	if result.Notes != "" {
		sb.WriteString("\n")
		sb.WriteString(result.Notes)
	}

	p.printBox("MATCH RESULT", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintContact outputs the candidate identity used for a resume.
func (p *Printer) PrintContact(contact *types.ContactInfo) {
	if contact == nil {
		return
	}
	p.printBox("CONTACT", fmt.Sprintf("Name:   %s\nEmail:  %s", contact.Name, contact.Email))
}

// PrintRanking outputs the top candidates of a batch ranking.
func (p *Printer) PrintRanking(ranked *types.RankedCandidates) {
	if ranked == nil || len(ranked.Ranked) == 0 {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Total candidates ranked: %d\n\n", len(ranked.Ranked)))

	count := min(len(ranked.Ranked), maxItemsToShow)
	for i := 0; i < count; i++ {
		c := ranked.Ranked[i]
		sb.WriteString(fmt.Sprintf("#%d  %s (%s)\n", i+1, c.Contact.Name, c.Source))
		sb.WriteString(fmt.Sprintf("    Score: %d\n", c.Result.CompositeScore))
		if len(c.Result.Skills) > 0 {
			sb.WriteString(fmt.Sprintf("    Skills: %s\n", truncate(strings.Join(c.Result.Skills, ", "), 40)))
		}
		if i < count-1 {
			sb.WriteString("\n")
		}
	}

	if len(ranked.Ranked) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("\n... and %d more candidates", len(ranked.Ranked)-maxItemsToShow))
	}

	title := "TOP CANDIDATES"
	if ranked.JobTitle != "" {
		title += ": " + ranked.JobTitle
	}
	p.printBox(title, strings.TrimSuffix(sb.String(), "\n"))
}
