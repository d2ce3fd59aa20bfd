package types

import (
	"time"

	"github.com/google/uuid"
)

// Gate is a pass/fail verdict against one mandatory job requirement.
// Gating is independent of numeric scoring: a resume may score highly
// and still fail a gate.
type Gate struct {
	Rule    string `json:"rule"`
	Passed  bool   `json:"passed"`
	Details string `json:"details"`
	Impact  string `json:"impact,omitempty"`
}

// Match records how well one job-description item was found in the resume.
type Match struct {
	JDItem         string   `json:"jd_item"`
	MatchedPhrases []string `json:"matched_phrases"`
	Similarity     float64  `json:"similarity"`
	SourceSection  string   `json:"source_section"`
}

// SectionScores holds the four 0-100 sub-scores.
type SectionScores struct {
	Skills     int `json:"skills"`
	Experience int `json:"experience"`
	Education  int `json:"education"`
	Keywords   int `json:"keywords"`
}

// Suggestions holds generated improvement actions.
type Suggestions struct {
	Bullets    []string `json:"bullets"`
	TopActions []string `json:"top_actions"`
}

// ScoreDebug carries diagnostics that are only attached when the caller
// explicitly asks for them.
type ScoreDebug struct {
	Weights             map[string]float64 `json:"weights"`
	ResumeSource        string             `json:"resume_source"`
	JobSource           string             `json:"job_source,omitempty"`
	FallbackReason      string             `json:"fallback_reason,omitempty"`
	NormalizeDurationMS int64              `json:"normalize_duration_ms"`
	ScoreDurationMS     int64              `json:"score_duration_ms"`
}

// ScoreResult is the full compatibility verdict for one resume against
// one job description.
type ScoreResult struct {
	Overall         int           `json:"overall"`
	Sections        SectionScores `json:"sections"`
	Gates           []Gate        `json:"gates"`
	Matches         []Match       `json:"matches"`
	MissingKeywords []string      `json:"missing_keywords"`
	Suggestions     Suggestions   `json:"suggestions"`
	ScoreRunID      *uuid.UUID    `json:"score_run_id,omitempty"`
	Timestamp       time.Time     `json:"timestamp"`
	Debug           *ScoreDebug   `json:"debug,omitempty"`
}
