package scoring

import (
	"sort"
	"strings"

	"github.com/jonathan/resume-scorer/internal/skills"
	"github.com/jonathan/resume-scorer/internal/types"
)

// DefaultMatchThreshold is the similarity below which a job-description
// item counts as missing from the resume.
const DefaultMatchThreshold = 0.3

// Similarity levels assigned by the matcher. Exact or synonym matches get
// full credit; partial token overlap gets half credit.
const (
	similarityExact   = 1.0
	similarityPartial = 0.5
)

// MatchKeywords compares every requirement and required skill against the
// resume. It returns the per-item matches and the deduplicated list of
// items whose similarity fell below the threshold.
func MatchKeywords(resume *types.ParsedResume, job *types.ParsedJobDescription, threshold float64) ([]types.Match, []string) {
	if job == nil {
		return []types.Match{}, []string{}
	}
	if threshold <= 0 {
		threshold = DefaultMatchThreshold
	}

	items := make([]string, 0, len(job.SkillsRequired)+len(job.Requirements))
	items = append(items, job.SkillsRequired...)
	items = append(items, job.Requirements...)

	matches := make([]types.Match, 0, len(items))
	missing := make([]string, 0)
	seen := make(map[string]bool)

	for _, item := range items {
		key := strings.ToLower(strings.TrimSpace(item))
		if key == "" || seen[key] {
			continue
		}
		seen[key] = true

		match := matchItem(item, resume)
		matches = append(matches, match)
		if match.Similarity < threshold {
			missing = append(missing, item)
		}
	}

	// Strongest matches first, stable for identical similarity
	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].Similarity > matches[j].Similarity
	})

	return matches, missing
}

// matchItem computes the similarity of one job-description item against
// the resume and records where the evidence was found.
func matchItem(item string, resume *types.ParsedResume) types.Match {
	match := types.Match{
		JDItem:         item,
		MatchedPhrases: []string{},
	}

	// Synonym-aware exact match against the skill list
	for _, s := range resume.Sections.Skills {
		if skills.Canonical(s, item) {
			match.Similarity = similarityExact
			match.MatchedPhrases = append(match.MatchedPhrases, s)
			match.SourceSection = "skills"
			return match
		}
	}

	// Literal substring anywhere in the resume
	if section, phrase := findSubstring(item, resume); section != "" {
		match.Similarity = similarityExact
		match.MatchedPhrases = append(match.MatchedPhrases, phrase)
		match.SourceSection = section
		return match
	}

	// Partial token overlap
	itemTokens := skills.Tokenize(item)
	if len(itemTokens) == 0 {
		return match
	}
	resumeTokens := skills.TokenSet(resume.Text)
	var hits []string
	for _, tok := range itemTokens {
		if resumeTokens[tok] {
			hits = append(hits, tok)
		}
	}
	if len(hits)*2 >= len(itemTokens) {
		match.Similarity = similarityPartial
		match.MatchedPhrases = hits
		match.SourceSection = "text"
	}

	return match
}

// findSubstring looks for the item as a case-insensitive substring in each
// resume section, most specific first. Returns the section name and the
// literal phrase as it appears in the resume.
func findSubstring(item string, resume *types.ParsedResume) (string, string) {
	needle := strings.ToLower(strings.TrimSpace(item))
	if needle == "" {
		return "", ""
	}

	sections := []struct {
		name  string
		lines []string
	}{
		{"skills", resume.Sections.Skills},
		{"experience", resume.Sections.Experience},
		{"projects", resume.Sections.Projects},
		{"certifications", resume.Sections.Certifications},
		{"education", resume.Sections.Education},
	}

	for _, sec := range sections {
		for _, line := range sec.lines {
			if idx := strings.Index(strings.ToLower(line), needle); idx >= 0 {
				return sec.name, line[idx : idx+len(needle)]
			}
		}
	}

	if idx := strings.Index(strings.ToLower(resume.Text), needle); idx >= 0 {
		return "text", resume.Text[idx : idx+len(needle)]
	}
	return "", ""
}
