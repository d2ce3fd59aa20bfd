// Package db provides PostgreSQL persistence for score runs and their
// document snapshots.
//
// Expected tables:
//
//	resumes          (id uuid pk, title text, text_content text, parsed jsonb, created_at timestamptz)
//	job_descriptions (id uuid pk, title text, text_content text, parsed jsonb, created_at timestamptz)
//	score_runs       (id uuid pk, resume_id uuid fk, job_description_id uuid fk null,
//	                  overall int, sections jsonb, result jsonb, model_version text,
//	                  created_at timestamptz)
package db

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// DB wraps a PostgreSQL connection pool
type DB struct {
	pool *pgxpool.Pool
}

// Connect establishes a connection pool to the database
func Connect(ctx context.Context, databaseURL string) (*DB, error) {
	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// Verify connection
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &DB{pool: pool}, nil
}

// Close closes the connection pool
func (db *DB) Close() {
	if db.pool != nil {
		db.pool.Close()
	}
}
