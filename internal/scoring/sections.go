package scoring

import (
	"math"
	"strings"

	"github.com/jonathan/resume-scorer/internal/skills"
	"github.com/jonathan/resume-scorer/internal/types"
)

// Fallback values used when no job description is available.
const (
	neutralEducationScore = 70
	neutralKeywordScore   = 50
	baselineSkillCount    = 8
)

// Experience blend weights: years matter most, then quantified
// achievements, then overlap with the target role vocabulary.
const (
	yearsBlendWeight      = 0.5
	quantifiedBlendWeight = 0.3
	roleBlendWeight       = 0.2
)

// degreeMarkers identify a degree mention inside education lines.
var degreeMarkers = []string{
	"bachelor", "master", "phd", "ph.d", "mba", "b.s", "m.s", "b.sc", "m.sc",
	"b.a", "m.a", "b.tech", "m.tech", "associate", "diploma", "degree",
	"university", "college", "institute",
}

// knownFields are study fields the education scorer can recognize in both
// resumes and job descriptions.
var knownFields = []string{
	"computer science", "software engineering", "computer engineering",
	"information technology", "data science", "statistics", "mathematics",
	"electrical engineering", "physics", "economics", "business", "finance",
	"marketing", "design", "machine learning",
}

// relatedFields maps a field to fields considered close enough to count as
// relevant for a degree requirement.
var relatedFields = map[string][]string{
	"computer science":       {"software engineering", "computer engineering", "information technology", "data science", "machine learning"},
	"software engineering":   {"computer science", "computer engineering", "information technology"},
	"data science":           {"statistics", "mathematics", "computer science", "machine learning"},
	"statistics":             {"mathematics", "data science", "economics"},
	"mathematics":            {"statistics", "physics", "computer science"},
	"electrical engineering": {"computer engineering", "physics"},
	"business":               {"economics", "finance", "marketing"},
}

// SkillsScore is the share of required skills found in the resume,
// 0-100. Without a job description it falls back to an intrinsic
// skill-richness heuristic against an expected baseline count.
func SkillsScore(resume *types.ParsedResume, job *types.ParsedJobDescription) int {
	if job == nil || len(job.SkillsRequired) == 0 {
		ratio := float64(len(resume.Sections.Skills)) / baselineSkillCount
		return roundClamp(ratio * 100)
	}

	matched := 0
	for _, skill := range job.SkillsRequired {
		if matchItem(skill, resume).Similarity >= similarityPartial {
			matched++
		}
	}
	return roundClamp(float64(matched) / float64(len(job.SkillsRequired)) * 100)
}

// ExperienceScore blends years-match ratio, quantified achievement bullets
// and vocabulary overlap with the target role into one 0-100 score.
func ExperienceScore(resume *types.ParsedResume, job *types.ParsedJobDescription) int {
	years := CandidateYears(resume)

	yearsRatio := 0.5
	switch {
	case job != nil && job.ExperienceYears != nil && *job.ExperienceYears > 0:
		yearsRatio = math.Min(1, years/float64(*job.ExperienceYears))
	case years > 0:
		yearsRatio = 1
	}

	quantified := 0
	for _, entry := range resume.Sections.Experience {
		if hasMetric(entry) {
			quantified++
		}
	}
	quantifiedRatio := math.Min(1, float64(quantified)/3)

	roleRatio := roleOverlap(resume, job)

	blend := yearsRatio*yearsBlendWeight + quantifiedRatio*quantifiedBlendWeight + roleRatio*roleBlendWeight
	return roundClamp(blend * 100)
}

// EducationScore is tiered: no degree found scores 0, an unrelated degree
// 50, a relevant degree 100. Without a job description a found degree
// scores the neutral default.
func EducationScore(resume *types.ParsedResume, job *types.ParsedJobDescription) int {
	eduText := strings.ToLower(strings.Join(resume.Sections.Education, "\n"))
	if eduText == "" || !containsAnyTerm(eduText, degreeMarkers) {
		return 0
	}

	if job == nil {
		return neutralEducationScore
	}

	jdFields := fieldsIn(strings.ToLower(job.Text))
	if len(jdFields) == 0 {
		// The role states no field preference; any degree satisfies it
		return 100
	}

	candidateFields := fieldsIn(eduText)
	for _, cf := range candidateFields {
		for _, jf := range jdFields {
			if cf == jf {
				return 100
			}
			for _, rel := range relatedFields[jf] {
				if cf == rel {
					return 100
				}
			}
		}
	}
	return 50
}

// KeywordsScore is the weighted coverage of job-description terms found
// anywhere in the resume: required items count double, nice-to-haves
// single. Without a job description it returns the neutral default.
func KeywordsScore(resume *types.ParsedResume, job *types.ParsedJobDescription) int {
	if job == nil {
		return neutralKeywordScore
	}

	type weighted struct {
		item   string
		weight float64
	}
	var items []weighted
	for _, r := range job.Requirements {
		items = append(items, weighted{r, 2})
	}
	for _, s := range job.SkillsRequired {
		items = append(items, weighted{s, 2})
	}
	for _, n := range job.NiceToHave {
		items = append(items, weighted{n, 1})
	}
	if len(items) == 0 {
		return neutralKeywordScore
	}

	total, covered := 0.0, 0.0
	seen := make(map[string]bool)
	for _, it := range items {
		key := strings.ToLower(strings.TrimSpace(it.item))
		if key == "" || seen[key] {
			continue
		}
		seen[key] = true
		total += it.weight
		if matchItem(it.item, resume).Similarity >= similarityPartial {
			covered += it.weight
		}
	}
	if total == 0 {
		return neutralKeywordScore
	}
	return roundClamp(covered / total * 100)
}

// hasMetric reports whether an achievement bullet is quantified with a
// number, percentage or money amount.
func hasMetric(line string) bool {
	if strings.ContainsAny(line, "%$") {
		return true
	}
	// Bare years don't count as metrics
	stripped := yearRangeCapture.ReplaceAllString(line, "")
	for _, r := range stripped {
		if r >= '0' && r <= '9' {
			return true
		}
	}
	return false
}

// roleOverlap measures how much of the job's role vocabulary shows up in
// the candidate's experience text. Neutral 0.5 when there is nothing to
// compare.
func roleOverlap(resume *types.ParsedResume, job *types.ParsedJobDescription) float64 {
	if job == nil {
		return 0.5
	}

	jobTokens := skills.TokenSet(job.Text)
	expTokens := skills.TokenSet(strings.Join(resume.Sections.Experience, "\n"))
	if len(jobTokens) == 0 || len(expTokens) == 0 {
		return 0.5
	}

	overlap := 0
	for tok := range jobTokens {
		if expTokens[tok] {
			overlap++
		}
	}
	return math.Min(1, float64(overlap)/float64(len(jobTokens))*2)
}

// fieldsIn returns the known study fields mentioned in text.
func fieldsIn(lower string) []string {
	var found []string
	for _, f := range knownFields {
		if strings.Contains(lower, f) {
			found = append(found, f)
		}
	}
	return found
}

func containsAnyTerm(lower string, terms []string) bool {
	for _, t := range terms {
		if strings.Contains(lower, t) {
			return true
		}
	}
	return false
}

// roundClamp rounds to the nearest integer and clamps into [0,100].
func roundClamp(v float64) int {
	n := int(math.Round(v))
	if n < 0 {
		return 0
	}
	if n > 100 {
		return 100
	}
	return n
}
