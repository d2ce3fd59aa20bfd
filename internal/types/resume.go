// Package types provides type definitions for structured data used throughout the resume-scorer system.
package types

// ResumeSections holds the structured sections extracted from a resume.
// Every slice is always present (possibly empty), never nil.
type ResumeSections struct {
	Summary        string   `json:"summary"`
	Skills         []string `json:"skills"`
	Experience     []string `json:"experience"`
	Education      []string `json:"education"`
	Projects       []string `json:"projects"`
	Certifications []string `json:"certifications"`
}

// ResumeMetadata holds derived metadata about the raw resume document.
type ResumeMetadata struct {
	WordCount       int      `json:"word_count"`
	CharCount       int      `json:"char_count"`
	FileType        string   `json:"file_type,omitempty"`
	FileName        string   `json:"file_name,omitempty"`
	FormattingFlags []string `json:"formatting_flags,omitempty"`
}

// ParsedResume is the normalized form of a candidate resume.
type ParsedResume struct {
	Text     string         `json:"text"`
	Sections ResumeSections `json:"sections"`
	Metadata ResumeMetadata `json:"metadata"`
}

// EnsureSections replaces nil section slices with empty ones so that
// consumers never have to distinguish absent from empty.
func (r *ParsedResume) EnsureSections() {
	if r.Sections.Skills == nil {
		r.Sections.Skills = []string{}
	}
	if r.Sections.Experience == nil {
		r.Sections.Experience = []string{}
	}
	if r.Sections.Education == nil {
		r.Sections.Education = []string{}
	}
	if r.Sections.Projects == nil {
		r.Sections.Projects = []string{}
	}
	if r.Sections.Certifications == nil {
		r.Sections.Certifications = []string{}
	}
}
