package db

import (
	"context"
	"encoding/json"
	"fmt"
	"math"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/jonathan/resume-scorer/internal/scoring"
	"github.com/jonathan/resume-scorer/internal/types"
)

// Listing defaults and bounds.
const (
	DefaultPageSize = 20
	MaxPageSize     = 100
)

// SaveRun stores one completed score run together with snapshots of both
// input documents. The snapshots make old runs reviewable even after the
// caller's originals change. Implements scoring.RunStore.
func (db *DB) SaveRun(ctx context.Context, record scoring.RunRecord) (uuid.UUID, error) {
	resumeParsed, err := json.Marshal(record.Resume)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to marshal resume snapshot: %w", err)
	}
	resultJSON, err := json.Marshal(record.Result)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to marshal score result: %w", err)
	}
	sectionsJSON, err := json.Marshal(record.Result.Sections)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to marshal section scores: %w", err)
	}

	tx, err := db.pool.Begin(ctx)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	var resumeID uuid.UUID
	err = tx.QueryRow(ctx,
		`INSERT INTO resumes (title, text_content, parsed)
		 VALUES ($1, $2, $3)
		 RETURNING id`,
		record.ResumeTitle, record.ResumeText, resumeParsed,
	).Scan(&resumeID)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to save resume snapshot: %w", err)
	}

	var jobID *uuid.UUID
	if record.Job != nil {
		jobParsed, err := json.Marshal(record.Job)
		if err != nil {
			return uuid.Nil, fmt.Errorf("failed to marshal job snapshot: %w", err)
		}
		var id uuid.UUID
		err = tx.QueryRow(ctx,
			`INSERT INTO job_descriptions (title, text_content, parsed)
			 VALUES ($1, $2, $3)
			 RETURNING id`,
			record.JobTitle, record.JobText, jobParsed,
		).Scan(&id)
		if err != nil {
			return uuid.Nil, fmt.Errorf("failed to save job description snapshot: %w", err)
		}
		jobID = &id
	}

	var runID uuid.UUID
	err = tx.QueryRow(ctx,
		`INSERT INTO score_runs (resume_id, job_description_id, overall, sections, result, model_version)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 RETURNING id`,
		resumeID, jobID, record.Result.Overall, sectionsJSON, resultJSON, record.ModelVersion,
	).Scan(&runID)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to save score run: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return uuid.Nil, fmt.Errorf("failed to commit score run: %w", err)
	}
	return runID, nil
}

// ListScoreRuns retrieves one page of stored runs, newest first. Runs
// created in the same instant order by id so pagination never skips or
// repeats a row.
func (db *DB) ListScoreRuns(ctx context.Context, page, limit int) ([]ScoreRunSummary, Pagination, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = DefaultPageSize
	}
	if limit > MaxPageSize {
		limit = MaxPageSize
	}
	offset := (page - 1) * limit

	var total int
	if err := db.pool.QueryRow(ctx, `SELECT COUNT(*) FROM score_runs`).Scan(&total); err != nil {
		return nil, Pagination{}, fmt.Errorf("failed to count score runs: %w", err)
	}

	rows, err := db.pool.Query(ctx,
		`SELECT sr.id, COALESCE(r.title, ''), COALESCE(jd.title, ''),
		        sr.overall, COALESCE(sr.model_version, ''), sr.created_at
		 FROM score_runs sr
		 JOIN resumes r ON r.id = sr.resume_id
		 LEFT JOIN job_descriptions jd ON jd.id = sr.job_description_id
		 ORDER BY sr.created_at DESC, sr.id DESC
		 LIMIT $1 OFFSET $2`,
		limit, offset,
	)
	if err != nil {
		return nil, Pagination{}, fmt.Errorf("failed to list score runs: %w", err)
	}
	defer rows.Close()

	summaries := make([]ScoreRunSummary, 0, limit)
	for rows.Next() {
		var s ScoreRunSummary
		if err := rows.Scan(&s.ID, &s.ResumeTitle, &s.JobTitle, &s.Overall, &s.ModelVersion, &s.CreatedAt); err != nil {
			return nil, Pagination{}, fmt.Errorf("failed to scan score run: %w", err)
		}
		summaries = append(summaries, s)
	}

	pages := 0
	if total > 0 {
		pages = int(math.Ceil(float64(total) / float64(limit)))
	}
	pagination := Pagination{
		Page:    page,
		Limit:   limit,
		Total:   total,
		Pages:   pages,
		HasNext: page < pages,
	}
	return summaries, pagination, nil
}

// GetScoreRun retrieves a run joined with its document snapshots.
// Returns (nil, nil) when the run does not exist.
func (db *DB) GetScoreRun(ctx context.Context, id uuid.UUID) (*ScoreRun, error) {
	var (
		run        ScoreRun
		resultJSON []byte
	)
	err := db.pool.QueryRow(ctx,
		`SELECT sr.id, COALESCE(r.title, ''), r.text_content,
		        COALESCE(jd.title, ''), COALESCE(jd.text_content, ''),
		        sr.result, COALESCE(sr.model_version, ''), sr.created_at
		 FROM score_runs sr
		 JOIN resumes r ON r.id = sr.resume_id
		 LEFT JOIN job_descriptions jd ON jd.id = sr.job_description_id
		 WHERE sr.id = $1`,
		id,
	).Scan(&run.ID, &run.ResumeTitle, &run.ResumeText, &run.JobTitle, &run.JobText,
		&resultJSON, &run.ModelVersion, &run.CreatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get score run: %w", err)
	}

	var result types.ScoreResult
	if err := json.Unmarshal(resultJSON, &result); err != nil {
		return nil, fmt.Errorf("failed to decode stored result: %w", err)
	}
	run.Result = &result
	return &run, nil
}

// DeleteScoreRun removes a run and its document snapshots. Deleting a run
// that is already gone is not an error; the bool reports whether a row
// was actually removed.
func (db *DB) DeleteScoreRun(ctx context.Context, id uuid.UUID) (bool, error) {
	tx, err := db.pool.Begin(ctx)
	if err != nil {
		return false, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	var resumeID uuid.UUID
	var jobID *uuid.UUID
	err = tx.QueryRow(ctx,
		`DELETE FROM score_runs WHERE id = $1 RETURNING resume_id, job_description_id`,
		id,
	).Scan(&resumeID, &jobID)
	if err != nil {
		if err == pgx.ErrNoRows {
			return false, nil
		}
		return false, fmt.Errorf("failed to delete score run: %w", err)
	}

	if _, err := tx.Exec(ctx, `DELETE FROM resumes WHERE id = $1`, resumeID); err != nil {
		return false, fmt.Errorf("failed to delete resume snapshot: %w", err)
	}
	if jobID != nil {
		if _, err := tx.Exec(ctx, `DELETE FROM job_descriptions WHERE id = $1`, *jobID); err != nil {
			return false, fmt.Errorf("failed to delete job description snapshot: %w", err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return false, fmt.Errorf("failed to commit delete: %w", err)
	}
	return true, nil
}

// GetRunStats aggregates all stored runs. periodDays bounds the "recent
// activity" window; non-positive values default to 7.
func (db *DB) GetRunStats(ctx context.Context, periodDays int) (*RunStats, error) {
	if periodDays <= 0 {
		periodDays = 7
	}

	stats := &RunStats{PeriodDays: periodDays}
	err := db.pool.QueryRow(ctx,
		`SELECT COUNT(*),
		        COALESCE(AVG(overall), 0),
		        COALESCE(MAX(overall), 0),
		        COALESCE(MIN(overall), 0),
		        COUNT(*) FILTER (WHERE created_at > NOW() - $1 * INTERVAL '1 day'),
		        COUNT(*) FILTER (WHERE overall >= 90),
		        COUNT(*) FILTER (WHERE overall >= 70 AND overall < 90),
		        COUNT(*) FILTER (WHERE overall >= 50 AND overall < 70),
		        COUNT(*) FILTER (WHERE overall < 50)
		 FROM score_runs`,
		periodDays,
	).Scan(&stats.TotalRuns, &stats.AverageScore, &stats.HighestScore, &stats.LowestScore,
		&stats.RecentRuns,
		&stats.Distribution.Excellent, &stats.Distribution.Good,
		&stats.Distribution.Fair, &stats.Distribution.Poor)
	if err != nil {
		return nil, fmt.Errorf("failed to compute run stats: %w", err)
	}

	stats.AverageScore = math.Round(stats.AverageScore*10) / 10
	return stats, nil
}
