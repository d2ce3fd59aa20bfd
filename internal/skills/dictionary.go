// Package skills provides the canonical skill dictionary, synonym
// normalization and tokenization shared by the normalizer and the scorer.
package skills

import "strings"

// synonyms maps common skill name variants to canonical names
var synonyms = map[string]string{
	"golang":              "Go",
	"go lang":             "Go",
	"javascript":          "JavaScript",
	"js":                  "JavaScript",
	"typescript":          "TypeScript",
	"ts":                  "TypeScript",
	"k8s":                 "Kubernetes",
	"kubernetes":          "Kubernetes",
	"react.js":            "React",
	"reactjs":             "React",
	"vue.js":              "Vue",
	"vuejs":               "Vue",
	"node.js":             "Node.js",
	"nodejs":              "Node.js",
	"node":                "Node.js",
	"postgres":            "PostgreSQL",
	"postgresql":          "PostgreSQL",
	"psql":                "PostgreSQL",
	"mongo":               "MongoDB",
	"mongodb":             "MongoDB",
	"aws":                 "AWS",
	"amazon web services": "AWS",
	"gcp":                 "GCP",
	"google cloud":        "GCP",
	"ci/cd":               "CI/CD",
	"cicd":                "CI/CD",
	"ml":                  "Machine Learning",
	"machine learning":    "Machine Learning",
	"tf":                  "Terraform",
	"terraform":           "Terraform",
}

// knownSkills is the dictionary used by the heuristic extractor to spot
// skill mentions in unlabeled resume lines. Lowercased canonical and
// variant forms both appear.
var knownSkills = []string{
	"go", "golang", "python", "java", "javascript", "typescript", "c++", "c#",
	"ruby", "rust", "php", "kotlin", "swift", "scala", "sql", "html", "css",
	"react", "angular", "vue", "node.js", "django", "flask", "spring",
	"rails", "express", "graphql", "rest", "grpc",
	"postgresql", "mysql", "mongodb", "redis", "elasticsearch", "kafka",
	"rabbitmq", "sqlite", "dynamodb", "cassandra",
	"docker", "kubernetes", "terraform", "ansible", "jenkins", "git",
	"aws", "gcp", "azure", "linux", "bash", "ci/cd",
	"machine learning", "deep learning", "nlp", "pandas", "numpy",
	"tensorflow", "pytorch", "spark", "hadoop",
	"agile", "scrum", "microservices", "distributed systems",
}

// NormalizeSkillName normalizes a skill name to its canonical form
func NormalizeSkillName(skillName string) string {
	if skillName == "" {
		return ""
	}

	normalized := strings.TrimSpace(skillName)

	// Check for exact match in synonym map (case-insensitive)
	lower := strings.ToLower(normalized)
	if canonical, ok := synonyms[lower]; ok {
		return canonical
	}

	// Already has mixed case, return as-is
	if normalized != strings.ToUpper(normalized) && normalized != strings.ToLower(normalized) {
		return normalized
	}

	// All-caps multi-character tokens are treated as acronyms
	if normalized == strings.ToUpper(normalized) && len(normalized) > 1 {
		return normalized
	}

	// If all lowercase and single word, capitalize first letter
	if normalized == strings.ToLower(normalized) && !strings.Contains(normalized, " ") && len(normalized) > 0 {
		return strings.ToUpper(normalized[:1]) + normalized[1:]
	}

	return normalized
}

// Canonical reports whether two skill names refer to the same canonical
// skill after synonym normalization (case-insensitive).
func Canonical(a, b string) bool {
	return strings.EqualFold(NormalizeSkillName(a), NormalizeSkillName(b))
}

// Known returns the known-skill dictionary entries found in the given line
// of text (lowercased canonical forms).
func Known(line string) []string {
	lower := strings.ToLower(line)
	var found []string
	for _, skill := range knownSkills {
		if containsTerm(lower, skill) {
			found = append(found, skill)
		}
	}
	return found
}

// containsTerm reports whether term occurs in text on a word boundary.
// Plain substring search would turn "go" into a match for "algorithm".
func containsTerm(text, term string) bool {
	idx := 0
	for {
		i := strings.Index(text[idx:], term)
		if i < 0 {
			return false
		}
		start := idx + i
		end := start + len(term)
		beforeOK := start == 0 || isBoundary(text[start-1])
		afterOK := end == len(text) || isBoundary(text[end])
		if beforeOK && afterOK {
			return true
		}
		idx = start + 1
		if idx >= len(text) {
			return false
		}
	}
}

func isBoundary(b byte) bool {
	switch {
	case b >= 'a' && b <= 'z':
		return false
	case b >= 'A' && b <= 'Z':
		return false
	case b >= '0' && b <= '9':
		return false
	case b == '+' || b == '#':
		// Keep "c++" and "c#" intact
		return false
	default:
		return true
	}
}
