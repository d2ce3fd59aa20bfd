package server

import (
	"encoding/json"
	"net/http"

	"github.com/jonathan/resume-scorer/internal/types"
	"github.com/jonathan/resume-scorer/internal/validation"
)

// handleScore scores one resume, optionally against a job description
func (s *Server) handleScore(w http.ResponseWriter, r *http.Request) {
	var req types.ScoreRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid JSON body: "+err.Error())
		return
	}

	if err := validation.CheckScoreRequest(&req); err != nil {
		s.handleError(w, err)
		return
	}

	result, err := s.scorer.Score(r.Context(), &req)
	if err != nil {
		s.handleError(w, err)
		return
	}

	s.jsonResponse(w, http.StatusOK, result)
}

// handleBulkScore scores up to the batch limit of resumes against one job
// description. Items are independent; each slot carries its own result or
// error and the response is always 200.
func (s *Server) handleBulkScore(w http.ResponseWriter, r *http.Request) {
	var req types.BulkScoreRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid JSON body: "+err.Error())
		return
	}

	if err := validation.CheckBulkScoreRequest(&req); err != nil {
		s.handleError(w, err)
		return
	}

	items := s.scorer.BulkScore(r.Context(), &req)

	succeeded := 0
	for _, item := range items {
		if item.Error == "" {
			succeeded++
		}
	}

	s.jsonResponse(w, http.StatusOK, map[string]any{
		"items":     items,
		"total":     len(items),
		"succeeded": succeeded,
		"failed":    len(items) - succeeded,
	})
}

// handleWeights exposes the active section weights (read-only)
func (s *Server) handleWeights(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, map[string]any{
		"weights": s.scorer.Weights().Map(),
	})
}
