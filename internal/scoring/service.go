package scoring

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/jonathan/resume-scorer/internal/normalize"
	"github.com/jonathan/resume-scorer/internal/types"
)

// bulkConcurrency caps how many resumes a bulk request scores in parallel.
const bulkConcurrency = 4

// RunRecord is the snapshot a Service hands to its store after scoring.
type RunRecord struct {
	ResumeTitle  string
	ResumeText   string
	JobTitle     string
	JobText      string
	Resume       *types.ParsedResume
	Job          *types.ParsedJobDescription
	Result       *types.ScoreResult
	ModelVersion string
}

// RunStore persists completed score runs. A nil store disables persistence
// (one-shot CLI scoring works without a database).
type RunStore interface {
	SaveRun(ctx context.Context, record RunRecord) (uuid.UUID, error)
}

// Service orchestrates one scoring pass: normalize both documents,
// evaluate gates, score sections, match keywords, generate suggestions,
// aggregate, persist. It holds its collaborators explicitly and is
// injected into request handlers.
type Service struct {
	normalizer   *normalize.Normalizer
	store        RunStore
	weights      Weights
	threshold    float64
	modelVersion string
}

// ServiceOption configures a Service.
type ServiceOption func(*Service)

// WithWeights overrides the default section weights. Invalid weights are
// rejected at construction via Weights.Validate by the caller.
func WithWeights(w Weights) ServiceOption {
	return func(s *Service) { s.weights = w }
}

// WithThreshold overrides the keyword match threshold.
func WithThreshold(t float64) ServiceOption {
	return func(s *Service) {
		if t > 0 && t <= 1 {
			s.threshold = t
		}
	}
}

// WithModelVersion records which extraction model backs the normalizer, so
// stored runs stay comparable across model upgrades.
func WithModelVersion(v string) ServiceOption {
	return func(s *Service) { s.modelVersion = v }
}

// NewService creates a scoring service. The store may be nil.
func NewService(normalizer *normalize.Normalizer, store RunStore, opts ...ServiceOption) *Service {
	s := &Service{
		normalizer: normalizer,
		store:      store,
		weights:    DefaultWeights(),
		threshold:  DefaultMatchThreshold,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Weights exposes the active weight configuration (read-only on the wire).
func (s *Service) Weights() Weights {
	return s.weights
}

// Score runs the full pipeline for one resume, optionally against a job
// description. The request must already be validated.
func (s *Service) Score(ctx context.Context, req *types.ScoreRequest) (*types.ScoreResult, error) {
	normalizeStart := time.Now()

	var (
		resumeOut normalize.ResumeOutcome
		jobOut    normalize.JobOutcome
	)

	// The two documents are independent; normalize them concurrently.
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		resumeOut, err = s.normalizer.NormalizeResume(gctx, req.Resume.Text)
		if err != nil {
			return fmt.Errorf("failed to normalize resume: %w", err)
		}
		return nil
	})
	if req.JobDescription != nil {
		g.Go(func() error {
			var err error
			jobOut, err = s.normalizer.NormalizeJobDescription(gctx, req.JobDescription.Text)
			if err != nil {
				return fmt.Errorf("failed to normalize job description: %w", err)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	normalizeDuration := time.Since(normalizeStart)

	scoreStart := time.Now()
	result := s.score(resumeOut.Resume, jobOut.Job)
	scoreDuration := time.Since(scoreStart)

	if req.IncludeDebug {
		debug := &types.ScoreDebug{
			Weights:             s.weights.Map(),
			ResumeSource:        string(resumeOut.Source),
			NormalizeDurationMS: normalizeDuration.Milliseconds(),
			ScoreDurationMS:     scoreDuration.Milliseconds(),
		}
		if jobOut.Job != nil {
			debug.JobSource = string(jobOut.Source)
		}
		if resumeOut.Reason != "" {
			debug.FallbackReason = resumeOut.Reason
		} else if jobOut.Reason != "" {
			debug.FallbackReason = jobOut.Reason
		}
		result.Debug = debug
	}

	if s.store != nil {
		record := RunRecord{
			ResumeTitle:  req.Resume.Title,
			ResumeText:   req.Resume.Text,
			Resume:       resumeOut.Resume,
			Job:          jobOut.Job,
			Result:       result,
			ModelVersion: s.modelVersion,
		}
		if req.JobDescription != nil {
			record.JobTitle = req.JobDescription.Title
			record.JobText = req.JobDescription.Text
		}
		runID, err := s.store.SaveRun(ctx, record)
		if err != nil {
			return nil, fmt.Errorf("failed to save score run: %w", err)
		}
		result.ScoreRunID = &runID
	}

	return result, nil
}

// score computes the deterministic part of the pipeline from already
// normalized documents.
func (s *Service) score(resume *types.ParsedResume, job *types.ParsedJobDescription) *types.ScoreResult {
	gates := EvaluateGates(resume, job)
	matches, missing := MatchKeywords(resume, job, s.threshold)

	sections := types.SectionScores{
		Skills:     SkillsScore(resume, job),
		Experience: ExperienceScore(resume, job),
		Education:  EducationScore(resume, job),
		Keywords:   KeywordsScore(resume, job),
	}

	return &types.ScoreResult{
		Overall:         Aggregate(sections, s.weights),
		Sections:        sections,
		Gates:           gates,
		Matches:         matches,
		MissingKeywords: missing,
		Suggestions:     Suggest(missing, gates, job),
		Timestamp:       time.Now().UTC(),
	}
}

// BulkItem is the outcome for one resume in a bulk request. Exactly one
// of Result and Error is set.
type BulkItem struct {
	Index  int                `json:"index"`
	Title  string             `json:"title,omitempty"`
	Result *types.ScoreResult `json:"result,omitempty"`
	Error  string             `json:"error,omitempty"`
}

// BulkScore scores every resume against the same job description. Items
// are independent: one resume's failure is recorded on its slot and never
// aborts the rest of the batch.
func (s *Service) BulkScore(ctx context.Context, req *types.BulkScoreRequest) []BulkItem {
	items := make([]BulkItem, len(req.Resumes))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(bulkConcurrency)

	for i, doc := range req.Resumes {
		g.Go(func() error {
			single := &types.ScoreRequest{
				Resume:         doc,
				JobDescription: &req.JobDescription,
			}
			result, err := s.Score(gctx, single)
			item := BulkItem{Index: i, Title: doc.Title}
			if err != nil {
				item.Error = err.Error()
			} else {
				item.Result = result
			}
			items[i] = item
			// Errors stay on the item; returning one would cancel siblings
			return nil
		})
	}
	// Goroutines never return errors, so Wait only synchronizes
	_ = g.Wait()

	return items
}
