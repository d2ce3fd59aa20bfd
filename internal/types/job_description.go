package types

// JobDescriptionMetadata holds derived counts for a parsed job description.
// RequirementsCount and SkillsCount are always recomputed from the parent
// struct; they are never set independently.
type JobDescriptionMetadata struct {
	WordCount         int `json:"word_count"`
	RequirementsCount int `json:"requirements_count"`
	SkillsCount       int `json:"skills_count"`
}

// ParsedJobDescription is the normalized form of a target role description.
type ParsedJobDescription struct {
	Text            string                 `json:"text"`
	Requirements    []string               `json:"requirements"`
	SkillsRequired  []string               `json:"skills_required"`
	NiceToHave      []string               `json:"nice_to_have"`
	ExperienceYears *int                   `json:"experience_years"`
	Metadata        JobDescriptionMetadata `json:"metadata"`
}

// EnsureSections replaces nil slices with empty ones and recomputes the
// derived metadata counts.
func (j *ParsedJobDescription) EnsureSections() {
	if j.Requirements == nil {
		j.Requirements = []string{}
	}
	if j.SkillsRequired == nil {
		j.SkillsRequired = []string{}
	}
	if j.NiceToHave == nil {
		j.NiceToHave = []string{}
	}
	j.RecomputeMetadata()
}

// RecomputeMetadata refreshes the derived counts from the current slices.
func (j *ParsedJobDescription) RecomputeMetadata() {
	j.Metadata.RequirementsCount = len(j.Requirements)
	j.Metadata.SkillsCount = len(j.SkillsRequired)
}
