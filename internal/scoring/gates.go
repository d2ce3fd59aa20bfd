// Package scoring compares a structured resume against a structured job
// description: hard-requirement gates, weighted section scores, keyword
// matching, suggestion generation and final aggregation.
package scoring

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/jonathan/resume-scorer/internal/skills"
	"github.com/jonathan/resume-scorer/internal/types"
)

var (
	yearRangeCapture = regexp.MustCompile(`\b((?:19|20)\d{2})\s*(?:[-–—]|to)\s*((?:19|20)\d{2}|present|current|now)\b`)
	statedYears      = regexp.MustCompile(`(\d{1,2})\s*\+?\s*(?:years?|yrs?)`)
)

// failedGateImpact is attached to every failed gate so callers can explain
// the consequence to the candidate.
const failedGateImpact = "may be auto-rejected by applicant screening"

// EvaluateGates derives a pass/fail check for each hard requirement in the
// job description. Gating is independent of scoring: a resume may score
// highly and still fail a gate ("good resume, wrong candidate").
func EvaluateGates(resume *types.ParsedResume, job *types.ParsedJobDescription) []types.Gate {
	if job == nil {
		return []types.Gate{}
	}

	gates := make([]types.Gate, 0, len(job.Requirements)+1)
	candidateYears := CandidateYears(resume)
	sawYearsGate := false

	for _, req := range job.Requirements {
		if n := requiredYears(req); n > 0 {
			gates = append(gates, yearsGate(req, n, candidateYears))
			sawYearsGate = true
			continue
		}
		gates = append(gates, textualGate(req, resume))
	}

	// A JD-level years figure with no matching requirement line still gates
	if !sawYearsGate && job.ExperienceYears != nil && *job.ExperienceYears > 0 {
		rule := fmt.Sprintf("%d+ years experience", *job.ExperienceYears)
		gates = append(gates, yearsGate(rule, *job.ExperienceYears, candidateYears))
	}

	return gates
}

// yearsGate checks a numeric "N+ years" requirement against the
// candidate's inferred total.
func yearsGate(rule string, required int, candidateYears float64) types.Gate {
	gate := types.Gate{
		Rule:    rule,
		Passed:  candidateYears >= float64(required),
		Details: fmt.Sprintf("candidate has %.1f years of experience, requirement is %d", candidateYears, required),
	}
	if !gate.Passed {
		gate.Impact = failedGateImpact
	}
	return gate
}

// textualGate checks a skill/tool requirement via case-insensitive
// substring or synonym match in the skills and experience text.
func textualGate(req string, resume *types.ParsedResume) types.Gate {
	haystack := strings.ToLower(strings.Join(resume.Sections.Skills, "\n") + "\n" +
		strings.Join(resume.Sections.Experience, "\n"))

	// Prefer concrete tool mentions inside the requirement; fall back to
	// token overlap when the requirement names no known skill.
	mentioned := skills.Known(req)
	if len(mentioned) > 0 {
		var found, missing []string
		for _, m := range mentioned {
			if skillPresent(m, resume, haystack) {
				found = append(found, skills.NormalizeSkillName(m))
			} else {
				missing = append(missing, skills.NormalizeSkillName(m))
			}
		}
		gate := types.Gate{Rule: req, Passed: len(missing) == 0}
		switch {
		case len(missing) == 0:
			gate.Details = "found: " + strings.Join(found, ", ")
		case len(found) == 0:
			gate.Details = "not found in resume: " + strings.Join(missing, ", ")
			gate.Impact = failedGateImpact
		default:
			gate.Details = fmt.Sprintf("found %s; missing %s",
				strings.Join(found, ", "), strings.Join(missing, ", "))
			gate.Impact = failedGateImpact
		}
		return gate
	}

	reqTokens := skills.Tokenize(req)
	if len(reqTokens) == 0 {
		return types.Gate{Rule: req, Passed: true, Details: "no checkable terms in requirement"}
	}
	resumeTokens := skills.TokenSet(resume.Text)
	matched := 0
	var hits []string
	for _, tok := range reqTokens {
		if resumeTokens[tok] {
			matched++
			hits = append(hits, tok)
		}
	}
	ratio := float64(matched) / float64(len(reqTokens))
	gate := types.Gate{
		Rule:    req,
		Passed:  ratio >= 0.5,
		Details: fmt.Sprintf("matched %d of %d requirement terms", matched, len(reqTokens)),
	}
	if len(hits) > 0 {
		gate.Details += " (" + strings.Join(hits, ", ") + ")"
	}
	if !gate.Passed {
		gate.Impact = failedGateImpact
	}
	return gate
}

// skillPresent reports whether a skill appears in the resume's skill list
// (synonym-aware) or anywhere in its skills/experience text.
func skillPresent(skill string, resume *types.ParsedResume, haystack string) bool {
	for _, s := range resume.Sections.Skills {
		if skills.Canonical(s, skill) {
			return true
		}
	}
	return strings.Contains(haystack, strings.ToLower(skill))
}

// requiredYears extracts the years figure from a requirement line, 0 when
// the requirement is not numeric.
func requiredYears(req string) int {
	m := statedYears.FindStringSubmatch(strings.ToLower(req))
	if m == nil {
		return 0
	}
	n := 0
	for _, c := range m[1] {
		n = n*10 + int(c-'0')
	}
	if n > 40 {
		return 0
	}
	return n
}

// CandidateYears infers the candidate's total years of experience. Date
// ranges in experience entries are summed; an explicitly stated
// "N years of experience" claim is also honored. The longest plausible
// interpretation wins when the two disagree.
func CandidateYears(resume *types.ParsedResume) float64 {
	fromRanges := 0.0
	currentYear := time.Now().UTC().Year()

	for _, entry := range resume.Sections.Experience {
		for _, m := range yearRangeCapture.FindAllStringSubmatch(strings.ToLower(entry), -1) {
			start := atoiSafe(m[1])
			end := currentYear
			if m[2] != "present" && m[2] != "current" && m[2] != "now" {
				end = atoiSafe(m[2])
			}
			if end >= start {
				fromRanges += float64(end - start)
			}
		}
	}

	stated := 0.0
	for _, m := range statedYears.FindAllStringSubmatch(strings.ToLower(resume.Text), -1) {
		if n := atoiSafe(m[1]); float64(n) > stated && n <= 40 {
			stated = float64(n)
		}
	}

	years := fromRanges
	if stated > years {
		years = stated
	}
	if years > 40 {
		years = 40
	}
	return years
}

func atoiSafe(s string) int {
	n := 0
	for _, c := range s {
		if c < '0' || c > '9' {
			return 0
		}
		n = n*10 + int(c-'0')
	}
	return n
}
