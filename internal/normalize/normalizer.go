package normalize

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"github.com/jonathan/resume-scorer/internal/llm"
	"github.com/jonathan/resume-scorer/internal/schemas"
	"github.com/jonathan/resume-scorer/internal/types"
)

// DefaultTimeout bounds each call to the text-understanding collaborator.
const DefaultTimeout = 30 * time.Second

// Normalizer turns raw document text into structured form. It holds the
// collaborator handle explicitly; handlers receive a constructed Normalizer
// rather than reaching for ambient state.
type Normalizer struct {
	client  llm.Client
	timeout time.Duration
}

// Option configures a Normalizer.
type Option func(*Normalizer)

// WithTimeout overrides the collaborator call timeout.
func WithTimeout(d time.Duration) Option {
	return func(n *Normalizer) {
		if d > 0 {
			n.timeout = d
		}
	}
}

// New creates a Normalizer. A nil client is allowed and forces the
// heuristic path (used by tests and by deployments without an API key).
func New(client llm.Client, opts ...Option) *Normalizer {
	n := &Normalizer{
		client:  client,
		timeout: DefaultTimeout,
	}
	for _, opt := range opts {
		opt(n)
	}
	return n
}

// llmResumePayload mirrors the resume extraction schema.
type llmResumePayload struct {
	Summary        string   `json:"summary"`
	Skills         []string `json:"skills"`
	Experience     []string `json:"experience"`
	Education      []string `json:"education"`
	Projects       []string `json:"projects"`
	Certifications []string `json:"certifications"`
}

// llmJobPayload mirrors the job extraction schema.
type llmJobPayload struct {
	Requirements    []string `json:"requirements"`
	SkillsRequired  []string `json:"skills_required"`
	NiceToHave      []string `json:"nice_to_have"`
	ExperienceYears *int     `json:"experience_years"`
}

// NormalizeResume produces a structured resume from raw text. The returned
// outcome is always valid (possibly sparse); the error is non-nil only
// when even the heuristic fallback yields no usable content.
func (n *Normalizer) NormalizeResume(ctx context.Context, raw string) (ResumeOutcome, error) {
	text := prepareText(raw)

	outcome := ResumeOutcome{Source: SourceHeuristic}
	if n.client == nil {
		outcome.Reason = "no extraction client configured"
	} else if payload, err := n.extract(ctx, llm.ResumeSectionsSchema(), schemas.ResumeExtraction, text); err != nil {
		// Quota exhaustion is an account problem, not a document problem:
		// surface it so the caller can retry instead of silently degrading.
		if svcErr, ok := err.(*ExternalServiceError); ok && svcErr.Quota {
			return outcome, svcErr
		}
		outcome.Reason = err.Error()
	} else {
		var parsed llmResumePayload
		// Payload already passed schema validation; decode cannot produce
		// structurally invalid sections.
		_ = json.Unmarshal(payload, &parsed)
		resume := &types.ParsedResume{
			Text: text,
			Sections: types.ResumeSections{
				Summary:        parsed.Summary,
				Skills:         parsed.Skills,
				Experience:     parsed.Experience,
				Education:      parsed.Education,
				Projects:       parsed.Projects,
				Certifications: parsed.Certifications,
			},
		}
		resume.EnsureSections()
		outcome = ResumeOutcome{Resume: resume, Source: SourceLLM}
	}

	if outcome.Resume == nil {
		outcome.Resume = HeuristicResume(text)
	}
	fillResumeMetadata(outcome.Resume, raw)

	if isEmptyResume(outcome.Resume) {
		return outcome, &EmptyDocumentError{Kind: "resume"}
	}
	return outcome, nil
}

// NormalizeJobDescription produces a structured job description from raw text.
func (n *Normalizer) NormalizeJobDescription(ctx context.Context, raw string) (JobOutcome, error) {
	text := prepareText(raw)

	outcome := JobOutcome{Source: SourceHeuristic}
	if n.client == nil {
		outcome.Reason = "no extraction client configured"
	} else if payload, err := n.extract(ctx, llm.JobDescriptionSchema(), schemas.JobExtraction, text); err != nil {
		if svcErr, ok := err.(*ExternalServiceError); ok && svcErr.Quota {
			return outcome, svcErr
		}
		outcome.Reason = err.Error()
	} else {
		var parsed llmJobPayload
		_ = json.Unmarshal(payload, &parsed)
		job := &types.ParsedJobDescription{
			Text:            text,
			Requirements:    parsed.Requirements,
			SkillsRequired:  parsed.SkillsRequired,
			NiceToHave:      parsed.NiceToHave,
			ExperienceYears: parsed.ExperienceYears,
		}
		job.EnsureSections()
		// The collaborator often misses an inline years requirement;
		// recover it deterministically so the gate evaluator can run.
		if job.ExperienceYears == nil {
			if years := StatedYears(text); years > 0 {
				job.ExperienceYears = &years
			}
		}
		outcome = JobOutcome{Job: job, Source: SourceLLM}
	}

	if outcome.Job == nil {
		outcome.Job = HeuristicJobDescription(text)
	}
	outcome.Job.Metadata.WordCount = len(strings.Fields(raw))
	outcome.Job.RecomputeMetadata()

	if len(outcome.Job.Requirements) == 0 && len(outcome.Job.SkillsRequired) == 0 {
		return outcome, &EmptyDocumentError{Kind: "job description"}
	}
	return outcome, nil
}

// extract calls the collaborator and validates its output against the
// given schema. Every failure mode maps to *ExternalServiceError so the
// caller can decide between fallback and surfacing.
func (n *Normalizer) extract(ctx context.Context, schema llm.ExtractionSchema, schemaFile, text string) ([]byte, error) {
	callCtx, cancel := context.WithTimeout(ctx, n.timeout)
	defer cancel()

	prompt := llm.BuildExtractionPrompt(schema, text)
	response, err := n.client.GenerateJSON(callCtx, prompt, llm.TierStandard)
	if err != nil {
		return nil, &ExternalServiceError{
			Message: "extraction call failed",
			Quota:   isQuotaError(err),
			Cause:   err,
		}
	}

	payload := []byte(llm.CleanJSONBlock(response))
	if err := schemas.ValidateBytes(schemaFile, payload); err != nil {
		return nil, &ExternalServiceError{
			Message: "extraction output failed schema validation",
			Cause:   err,
		}
	}

	return payload, nil
}

// prepareText flattens HTML input and normalizes whitespace.
func prepareText(raw string) string {
	if LooksLikeHTML(raw) {
		if flat, err := FlattenHTML(raw); err == nil && flat != "" {
			return flat
		}
	}
	return cleanWhitespace(raw)
}

// fillResumeMetadata computes derived metadata from the original raw input.
func fillResumeMetadata(resume *types.ParsedResume, raw string) {
	resume.Metadata.WordCount = len(strings.Fields(raw))
	resume.Metadata.CharCount = len(raw)
	if resume.Metadata.FileType == "" {
		resume.Metadata.FileType = "text"
	}
	if LooksLikeHTML(raw) {
		resume.Metadata.FormattingFlags = append(resume.Metadata.FormattingFlags, "html-source")
	}
}

func isEmptyResume(r *types.ParsedResume) bool {
	return strings.TrimSpace(r.Text) == "" &&
		len(r.Sections.Skills) == 0 &&
		len(r.Sections.Experience) == 0 &&
		len(r.Sections.Education) == 0
}
