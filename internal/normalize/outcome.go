// Package normalize turns raw resume and job-description text into the
// structured section model used by the scorer. Extraction is delegated to
// the external text-understanding collaborator; when that collaborator is
// unavailable or returns invalid output, a deterministic heuristic
// fallback produces the structure instead.
package normalize

import "github.com/jonathan/resume-scorer/internal/types"

// Source tags how a normalized document was produced, so downstream
// components never have to infer whether they received a real or degraded
// structure.
type Source string

const (
	// SourceLLM means the structure came from the external collaborator
	// and passed schema validation.
	SourceLLM Source = "llm"
	// SourceHeuristic means the deterministic fallback produced the structure.
	SourceHeuristic Source = "heuristic"
)

// ResumeOutcome is the tagged result of resume normalization.
// Reason is non-empty only when Source is SourceHeuristic and explains why
// the collaborator result was not used.
type ResumeOutcome struct {
	Resume *types.ParsedResume
	Source Source
	Reason string
}

// JobOutcome is the tagged result of job-description normalization.
type JobOutcome struct {
	Job    *types.ParsedJobDescription
	Source Source
	Reason string
}
