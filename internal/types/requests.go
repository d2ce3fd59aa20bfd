package types

import (
	"github.com/go-playground/validator/v10"
)

// DocumentInput is a raw text document submitted for scoring.
type DocumentInput struct {
	Text  string `json:"text" validate:"required,min=50"`
	Title string `json:"title,omitempty"`
}

// ScoreRequest represents the request body for POST /score.
// JobDescription is optional; without it the scorer falls back to
// intrinsic/neutral section scoring and produces no gates.
type ScoreRequest struct {
	Resume         DocumentInput  `json:"resume" validate:"required"`
	JobDescription *DocumentInput `json:"job_description,omitempty"`
	IncludeDebug   bool           `json:"include_debug,omitempty"`
}

// BulkScoreRequest represents the request body for POST /score/bulk.
// Each resume is scored independently against the same job description.
type BulkScoreRequest struct {
	Resumes        []DocumentInput `json:"resumes" validate:"required,min=1,max=20,dive"`
	JobDescription DocumentInput   `json:"job_description" validate:"required"`
}

// Validate validates the ScoreRequest using the validator.
func (r *ScoreRequest) Validate() error {
	validate := validator.New()
	if err := validate.Struct(r); err != nil {
		return err
	}
	if r.JobDescription != nil {
		return validate.Struct(r.JobDescription)
	}
	return nil
}

// Validate validates the BulkScoreRequest using the validator.
func (r *BulkScoreRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}
