package normalize

import (
	"regexp"
	"strings"

	"github.com/jonathan/resume-scorer/internal/skills"
	"github.com/jonathan/resume-scorer/internal/types"
)

// Patterns and term dictionaries for the deterministic fallback extractor.
var (
	yearRangePattern   = regexp.MustCompile(`\b(19|20)\d{2}\s*(?:[-–—]|to)\s*(?:(19|20)\d{2}|present|current|now)\b`)
	yearsStatedPattern = regexp.MustCompile(`(\d{1,2})\s*\+?\s*(?:years?|yrs?)`)
	bulletPrefix       = regexp.MustCompile(`^[-*•●▪◦>\s]+`)
)

var roleNouns = []string{
	"engineer", "developer", "manager", "analyst", "consultant", "architect",
	"intern", "lead", "director", "scientist", "designer", "administrator",
	"specialist", "officer", "programmer",
}

var degreeTerms = []string{
	"bachelor", "master", "phd", "ph.d", "mba", "b.s", "m.s", "b.sc", "m.sc",
	"b.a", "m.a", "b.e", "b.tech", "m.tech", "associate", "diploma", "degree",
}

var institutionTerms = []string{
	"university", "college", "institute", "school", "academy", "polytechnic",
}

// section header cues for resumes
var resumeHeaders = map[string][]string{
	"summary":        {"summary", "objective", "profile", "about me", "about"},
	"skills":         {"skills", "technical skills", "technologies", "tech stack", "competencies", "tools"},
	"experience":     {"experience", "employment", "work history", "professional experience", "career"},
	"education":      {"education", "academic background", "academics"},
	"projects":       {"projects", "personal projects", "selected projects"},
	"certifications": {"certifications", "certificates", "licenses"},
}

// section header cues for job descriptions
var jobHeaders = map[string][]string{
	"requirements": {"requirements", "qualifications", "what you'll need", "what we're looking for", "must have", "minimum qualifications", "basic qualifications"},
	"nice":         {"nice to have", "nice-to-have", "preferred", "preferred qualifications", "bonus", "plus", "desirable"},
	"skills":       {"skills", "technical skills", "tech stack", "technologies"},
}

// HeuristicResume buckets resume lines into sections using keyword
// dictionaries and patterns. It never fails; sparse input yields a sparse
// but valid structure.
func HeuristicResume(text string) *types.ParsedResume {
	resume := &types.ParsedResume{Text: text}
	resume.EnsureSections()

	current := ""
	var summary []string

	for _, rawLine := range strings.Split(text, "\n") {
		line := strings.TrimSpace(bulletPrefix.ReplaceAllString(rawLine, ""))
		if line == "" {
			continue
		}

		if section, ok := matchHeader(line, resumeHeaders); ok {
			current = section
			continue
		}

		switch current {
		case "summary":
			summary = append(summary, line)
		case "skills":
			resume.Sections.Skills = append(resume.Sections.Skills, splitSkillLine(line)...)
		case "experience":
			resume.Sections.Experience = append(resume.Sections.Experience, line)
		case "education":
			resume.Sections.Education = append(resume.Sections.Education, line)
		case "projects":
			resume.Sections.Projects = append(resume.Sections.Projects, line)
		case "certifications":
			resume.Sections.Certifications = append(resume.Sections.Certifications, line)
		default:
			// No header seen yet: classify the line on its own merits
			classifyResumeLine(resume, line)
		}
	}

	resume.Sections.Summary = strings.Join(summary, " ")
	resume.Sections.Skills = dedupeSkills(resume.Sections.Skills)
	return resume
}

// classifyResumeLine buckets an unlabeled line by pattern evidence.
func classifyResumeLine(resume *types.ParsedResume, line string) {
	lower := strings.ToLower(line)

	if containsAny(lower, degreeTerms) || containsAny(lower, institutionTerms) {
		resume.Sections.Education = append(resume.Sections.Education, line)
		return
	}

	if yearRangePattern.MatchString(lower) || containsAny(lower, roleNouns) {
		resume.Sections.Experience = append(resume.Sections.Experience, line)
		return
	}

	if found := skills.Known(line); len(found) > 0 {
		// A line that is mostly skill mentions is a skills line;
		// otherwise keep it as experience context.
		if len(strings.Fields(line)) <= 3*len(found) {
			resume.Sections.Skills = append(resume.Sections.Skills, splitSkillLine(line)...)
			return
		}
		resume.Sections.Experience = append(resume.Sections.Experience, line)
	}
}

// HeuristicJobDescription extracts requirements, skills and experience
// years from job-description text without the external collaborator.
func HeuristicJobDescription(text string) *types.ParsedJobDescription {
	job := &types.ParsedJobDescription{Text: text}
	job.EnsureSections()

	current := ""
	for _, rawLine := range strings.Split(text, "\n") {
		line := strings.TrimSpace(bulletPrefix.ReplaceAllString(rawLine, ""))
		if line == "" {
			continue
		}

		if section, ok := matchHeader(line, jobHeaders); ok {
			current = section
			continue
		}

		switch current {
		case "requirements":
			job.Requirements = append(job.Requirements, line)
		case "nice":
			job.NiceToHave = append(job.NiceToHave, line)
		case "skills":
			job.SkillsRequired = append(job.SkillsRequired, splitSkillLine(line)...)
		default:
			lower := strings.ToLower(line)
			if strings.Contains(lower, "required") || strings.Contains(lower, "must have") ||
				yearsStatedPattern.MatchString(lower) {
				job.Requirements = append(job.Requirements, line)
			}
		}
	}

	// Skills mentioned anywhere count as required when no skills section exists
	if len(job.SkillsRequired) == 0 {
		for _, skill := range skills.Known(text) {
			job.SkillsRequired = append(job.SkillsRequired, skills.NormalizeSkillName(skill))
		}
	}
	job.SkillsRequired = dedupeSkills(job.SkillsRequired)

	if years := StatedYears(text); years > 0 {
		job.ExperienceYears = &years
	}

	job.RecomputeMetadata()
	return job
}

// StatedYears returns the largest "N years" figure stated in the text,
// or 0 when none is found. The largest plausible interpretation wins when
// several figures appear.
func StatedYears(text string) int {
	max := 0
	for _, m := range yearsStatedPattern.FindAllStringSubmatch(strings.ToLower(text), -1) {
		n := 0
		for _, c := range m[1] {
			n = n*10 + int(c-'0')
		}
		if n > max && n <= 40 {
			max = n
		}
	}
	return max
}

// matchHeader reports whether line is a section header and which section
// it introduces. Headers are short lines matching a known cue.
func matchHeader(line string, headers map[string][]string) (string, bool) {
	lower := strings.ToLower(strings.TrimRight(strings.TrimSpace(line), ":"))
	if len(lower) > 40 {
		return "", false
	}
	for section, cues := range headers {
		for _, cue := range cues {
			if lower == cue {
				return section, true
			}
		}
	}
	return "", false
}

// splitSkillLine breaks a comma/pipe-delimited skills line into entries.
func splitSkillLine(line string) []string {
	// Drop a leading label like "Languages:"
	if idx := strings.Index(line, ":"); idx >= 0 && idx < 30 {
		line = line[idx+1:]
	}
	parts := strings.FieldsFunc(line, func(r rune) bool {
		return r == ',' || r == ';' || r == '|' || r == '•'
	})
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, skills.NormalizeSkillName(p))
		}
	}
	return out
}

func dedupeSkills(list []string) []string {
	seen := make(map[string]bool, len(list))
	out := make([]string, 0, len(list))
	for _, s := range list {
		key := strings.ToLower(skills.NormalizeSkillName(s))
		if key == "" || seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, skills.NormalizeSkillName(s))
	}
	return out
}

func containsAny(lower string, terms []string) bool {
	for _, t := range terms {
		if strings.Contains(lower, t) {
			return true
		}
	}
	return false
}
