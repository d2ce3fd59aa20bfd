// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/resume-scorer/internal/types"
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
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		// Truncate long lines
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintScoreSummary outputs the overall and per-section scores.
func (p *Printer) PrintScoreSummary(result *types.ScoreResult) {
	if result == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Overall:     %d / 100\n\n", result.Overall))
	sb.WriteString(fmt.Sprintf("Skills:      %3d\n", result.Sections.Skills))
	sb.WriteString(fmt.Sprintf("Experience:  %3d\n", result.Sections.Experience))
	sb.WriteString(fmt.Sprintf("Education:   %3d\n", result.Sections.Education))
	sb.WriteString(fmt.Sprintf("Keywords:    %3d", result.Sections.Keywords))

	p.printBox("SCORE SUMMARY", sb.String())
}

// PrintGates outputs the hard-requirement gate verdicts.
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) PrintGates(gates []types.Gate) {
	if len(gates) == 0 {
		fmt.Fprintf(p.out, "┌%s┐\n", strings.Repeat("─", boxWidth-2))
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, "NO HARD REQUIREMENTS TO GATE ON")
		fmt.Fprintf(p.out, "└%s┘\n", strings.Repeat("─", boxWidth-2))
		return
	}

	var sb strings.Builder
	passed := 0
	for _, g := range gates {
		if g.Passed {
			passed++
		}
	}
	sb.WriteString(fmt.Sprintf("Passed %d of %d:\n\n", passed, len(gates)))

	for i, g := range gates {
		mark := "✓"
		if !g.Passed {
			mark = "✗"
		}
		rule := g.Rule
		if len(rule) > 48 {
			rule = rule[:45] + "..."
		}
		sb.WriteString(fmt.Sprintf("%s %s\n", mark, rule))
		details := g.Details
		if len(details) > 48 {
			details = details[:45] + "..."
		}
		sb.WriteString(fmt.Sprintf("  %s\n", details))
		if i < len(gates)-1 {
			sb.WriteString("\n")
		}
	}

	p.printBox("REQUIREMENT GATES", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintMissingKeywords outputs job-description terms not found in the resume.
func (p *Printer) PrintMissingKeywords(missing []string) {
	if len(missing) == 0 {
		return
	}

	var sb strings.Builder
	count := min(len(missing), maxItemsToShow)
	for i := 0; i < count; i++ {
		sb.WriteString(fmt.Sprintf("• %s\n", missing[i]))
	}
	if len(missing) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("... and %d more", len(missing)-maxItemsToShow))
	}

	p.printBox("MISSING KEYWORDS", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintSuggestions outputs the ranked edit suggestions.
func (p *Printer) PrintSuggestions(suggestions types.Suggestions) {
	if len(suggestions.TopActions) == 0 && len(suggestions.Bullets) == 0 {
		return
	}

	var sb strings.Builder
	if len(suggestions.TopActions) > 0 {
		sb.WriteString("Top actions:\n")
		for _, action := range suggestions.TopActions {
			sb.WriteString(fmt.Sprintf("• %s\n", action))
		}
	}

	if len(suggestions.Bullets) > 0 {
		if sb.Len() > 0 {
			sb.WriteString("\n")
		}
		sb.WriteString("Bullet templates:\n")
		count := min(len(suggestions.Bullets), 3)
		for i := 0; i < count; i++ {
			sb.WriteString(fmt.Sprintf("• %s\n", suggestions.Bullets[i]))
		}
		if len(suggestions.Bullets) > 3 {
			sb.WriteString(fmt.Sprintf("... and %d more\n", len(suggestions.Bullets)-3))
		}
	}

	p.printBox("SUGGESTIONS", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintDebug outputs the debug block when present.
func (p *Printer) PrintDebug(debug *types.ScoreDebug) {
	if debug == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Resume source:  %s\n", debug.ResumeSource))
	if debug.JobSource != "" {
		sb.WriteString(fmt.Sprintf("Job source:     %s\n", debug.JobSource))
	}
	if debug.FallbackReason != "" {
		reason := debug.FallbackReason
		if len(reason) > 40 {
			reason = reason[:37] + "..."
		}
		sb.WriteString(fmt.Sprintf("Fallback:       %s\n", reason))
	}
	sb.WriteString(fmt.Sprintf("Normalize:      %dms\n", debug.NormalizeDurationMS))
	sb.WriteString(fmt.Sprintf("Score:          %dms", debug.ScoreDurationMS))

	p.printBox("DEBUG", sb.String())
}
