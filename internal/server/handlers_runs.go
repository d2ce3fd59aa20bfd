package server

import (
	"net/http"
	"strconv"

	"github.com/google/uuid"

	"github.com/jonathan/resume-scorer/internal/db"
)

// parseQueryInt parses an integer query parameter with default and max values
func parseQueryInt(r *http.Request, key string, defaultValue, maxValue int) int {
	valStr := r.URL.Query().Get(key)
	if valStr == "" {
		return defaultValue
	}
	val, err := strconv.Atoi(valStr)
	if err != nil || val < 0 {
		return defaultValue
	}
	if maxValue > 0 && val > maxValue {
		return maxValue
	}
	return val
}

// handleListRuns lists stored score runs, newest first
func (s *Server) handleListRuns(w http.ResponseWriter, r *http.Request) {
	page := parseQueryInt(r, "page", 1, 0)
	limit := parseQueryInt(r, "limit", db.DefaultPageSize, db.MaxPageSize)

	runs, pagination, err := s.db.ListScoreRuns(r.Context(), page, limit)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]any{
		"runs":       runs,
		"pagination": pagination,
	})
}

// handleGetRun retrieves a stored run with its document snapshots
func (s *Server) handleGetRun(w http.ResponseWriter, r *http.Request) {
	runID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid run ID")
		return
	}

	run, err := s.db.GetScoreRun(r.Context(), runID)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}
	if run == nil {
		s.handleError(w, &db.NotFoundError{Resource: "score run", ID: runID})
		return
	}

	s.jsonResponse(w, http.StatusOK, run)
}

// handleDeleteRun deletes a stored run. Deleting a run that is already
// gone succeeds; the response reports whether a row was removed.
func (s *Server) handleDeleteRun(w http.ResponseWriter, r *http.Request) {
	runID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid run ID")
		return
	}

	deleted, err := s.db.DeleteScoreRun(r.Context(), runID)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]any{
		"id":      runID,
		"deleted": deleted,
	})
}

// handleRunPDF renders a stored run as a PDF report via the external
// renderer service.
func (s *Server) handleRunPDF(w http.ResponseWriter, r *http.Request) {
	runID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid run ID")
		return
	}

	if s.renderer == nil {
		s.errorResponse(w, http.StatusNotImplemented, "PDF rendering is not configured")
		return
	}

	run, err := s.db.GetScoreRun(r.Context(), runID)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}
	if run == nil {
		s.handleError(w, &db.NotFoundError{Resource: "score run", ID: runID})
		return
	}

	pdf, err := s.renderer.Render(r.Context(), run)
	if err != nil {
		s.handleError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", `attachment; filename="score-report-`+runID.String()+`.pdf"`)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(pdf)
}

// handleRunStats aggregates stored runs. Stats are computed from the
// table on every request.
func (s *Server) handleRunStats(w http.ResponseWriter, r *http.Request) {
	periodDays := parseQueryInt(r, "period_days", 7, 365)

	stats, err := s.db.GetRunStats(r.Context(), periodDays)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, stats)
}
