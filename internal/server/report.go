package server

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/jonathan/resume-scorer/internal/db"
)

// ReportRenderer turns a stored score run into a PDF report. Rendering is
// delegated to an external service; this process never builds PDFs itself.
type ReportRenderer interface {
	Render(ctx context.Context, run *db.ScoreRun) ([]byte, error)
}

// RenderError indicates the external renderer failed or returned garbage.
type RenderError struct {
	Status int
	Detail string
}

func (e *RenderError) Error() string {
	if e.Status > 0 {
		return fmt.Sprintf("report renderer returned status %d: %s", e.Status, e.Detail)
	}
	return "report renderer failed: " + e.Detail
}

// HTTPReportRenderer posts the run to a rendering service and returns the
// PDF bytes.
type HTTPReportRenderer struct {
	baseURL string
	client  *http.Client
}

// NewHTTPReportRenderer creates a renderer client for the given base URL.
func NewHTTPReportRenderer(baseURL string) *HTTPReportRenderer {
	return &HTTPReportRenderer{
		baseURL: baseURL,
		client:  &http.Client{Timeout: 60 * time.Second},
	}
}

// Render sends the run to the renderer's /render endpoint.
func (r *HTTPReportRenderer) Render(ctx context.Context, run *db.ScoreRun) ([]byte, error) {
	payload, err := json.Marshal(run)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal run for rendering: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, r.baseURL+"/render", bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("failed to build render request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/pdf")

	resp, err := r.client.Do(req)
	if err != nil {
		return nil, &RenderError{Detail: err.Error()}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		detail, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, &RenderError{Status: resp.StatusCode, Detail: string(detail)}
	}

	pdf, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &RenderError{Detail: "failed to read renderer response: " + err.Error()}
	}
	if len(pdf) == 0 {
		return nil, &RenderError{Detail: "renderer returned an empty document"}
	}
	return pdf, nil
}
