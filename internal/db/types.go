package db

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/jonathan/resume-scorer/internal/types"
)

// ScoreRunSummary is the listing view of a stored run: identity, titles
// and headline numbers, without the full result payload.
type ScoreRunSummary struct {
	ID           uuid.UUID `json:"id"`
	ResumeTitle  string    `json:"resume_title"`
	JobTitle     string    `json:"job_title,omitempty"`
	Overall      int       `json:"overall"`
	ModelVersion string    `json:"model_version,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}

// ScoreRun is the full stored run joined with its document snapshots.
type ScoreRun struct {
	ID           uuid.UUID          `json:"id"`
	ResumeTitle  string             `json:"resume_title"`
	ResumeText   string             `json:"resume_text"`
	JobTitle     string             `json:"job_title,omitempty"`
	JobText      string             `json:"job_text,omitempty"`
	Result       *types.ScoreResult `json:"result"`
	ModelVersion string             `json:"model_version,omitempty"`
	CreatedAt    time.Time          `json:"created_at"`
}

// Pagination describes one page of a listing.
type Pagination struct {
	Page    int  `json:"page"`
	Limit   int  `json:"limit"`
	Total   int  `json:"total"`
	Pages   int  `json:"pages"`
	HasNext bool `json:"has_next"`
}

// ScoreDistribution buckets stored runs by overall score band.
type ScoreDistribution struct {
	Excellent int `json:"excellent"` // 90-100
	Good      int `json:"good"`      // 70-89
	Fair      int `json:"fair"`      // 50-69
	Poor      int `json:"poor"`      // 0-49
}

// RunStats aggregates stored runs. Stats are recomputed from the table on
// every read; nothing is cached or maintained incrementally.
type RunStats struct {
	TotalRuns    int               `json:"total_runs"`
	AverageScore float64           `json:"average_score"`
	HighestScore int               `json:"highest_score"`
	LowestScore  int               `json:"lowest_score"`
	RecentRuns   int               `json:"recent_runs"`
	PeriodDays   int               `json:"period_days"`
	Distribution ScoreDistribution `json:"distribution"`
}

// NotFoundError indicates a requested run does not exist.
type NotFoundError struct {
	Resource string
	ID       uuid.UUID
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found: %s", e.Resource, e.ID)
}
