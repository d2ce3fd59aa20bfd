package observability

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jonathan/resume-scorer/internal/types"
)

func TestPrintScoreSummary(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintScoreSummary(&types.ScoreResult{
		Overall: 82,
		Sections: types.SectionScores{
			Skills:     100,
			Experience: 75,
			Education:  70,
			Keywords:   50,
		},
	})

	out := buf.String()
	assert.Contains(t, out, "SCORE SUMMARY")
	assert.Contains(t, out, "Overall:     82 / 100")
	assert.Contains(t, out, "Skills:      100")
}

func TestPrintScoreSummary_NilResult(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(&buf).PrintScoreSummary(nil)

	assert.Empty(t, buf.String())
}

func TestPrintGates(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintGates([]types.Gate{
		{Rule: "4+ years of experience", Passed: true, Details: "5.0 years found"},
		{Rule: "Kubernetes in production", Passed: false, Details: "not found in resume"},
	})

	out := buf.String()
	assert.Contains(t, out, "REQUIREMENT GATES")
	assert.Contains(t, out, "Passed 1 of 2")
	assert.Contains(t, out, "✓ 4+ years of experience")
	assert.Contains(t, out, "✗ Kubernetes in production")
}

func TestPrintGates_Empty(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(&buf).PrintGates(nil)

	assert.Contains(t, buf.String(), "NO HARD REQUIREMENTS TO GATE ON")
}

func TestPrintMissingKeywords_Truncates(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintMissingKeywords([]string{"a", "b", "c", "d", "e", "f", "g"})

	out := buf.String()
	assert.Contains(t, out, "MISSING KEYWORDS")
	assert.Contains(t, out, "• e")
	assert.NotContains(t, out, "• f")
	assert.Contains(t, out, "and 2 more")
}

func TestPrintMissingKeywords_Empty(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(&buf).PrintMissingKeywords(nil)

	assert.Empty(t, buf.String())
}

func TestPrintSuggestions(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintSuggestions(types.Suggestions{
		TopActions: []string{`Consider adding "GraphQL" to your skills or experience section if you have it`},
		Bullets:    []string{"Built [project or system] using GraphQL, [add a measurable outcome]"},
	})

	out := buf.String()
	assert.Contains(t, out, "SUGGESTIONS")
	assert.Contains(t, out, "Top actions:")
	assert.Contains(t, out, "Bullet templates:")
}

func TestPrintDebug(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintDebug(&types.ScoreDebug{
		ResumeSource:        "heuristic",
		JobSource:           "llm",
		FallbackReason:      "extraction call failed",
		NormalizeDurationMS: 12,
		ScoreDurationMS:     3,
	})

	out := buf.String()
	assert.Contains(t, out, "DEBUG")
	assert.Contains(t, out, "Resume source:  heuristic")
	assert.Contains(t, out, "Fallback:       extraction call failed")
}
