// Package server provides the HTTP REST API for the resume scorer.
package server

import (
	"errors"
	"net/http"

	"github.com/jonathan/resume-scorer/internal/db"
	"github.com/jonathan/resume-scorer/internal/normalize"
	"github.com/jonathan/resume-scorer/internal/validation"
)

// HTTPStatus returns the appropriate HTTP status code for an error
func HTTPStatus(err error) int {
	var (
		inputErr    *validation.InputError
		notFoundErr *db.NotFoundError
		svcErr      *normalize.ExternalServiceError
		emptyErr    *normalize.EmptyDocumentError
		renderErr   *RenderError
	)
	switch {
	case errors.As(err, &inputErr), errors.As(err, &emptyErr):
		return http.StatusBadRequest
	case errors.As(err, &notFoundErr):
		return http.StatusNotFound
	case errors.As(err, &svcErr):
		if svcErr.Quota {
			return http.StatusTooManyRequests
		}
		return http.StatusBadGateway
	case errors.As(err, &renderErr):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

// clientMessage turns an error into the message sent on the wire. Quota
// exhaustion gets an actionable message instead of the raw provider error.
func clientMessage(err error) string {
	var svcErr *normalize.ExternalServiceError
	if errors.As(err, &svcErr) && svcErr.Quota {
		return "The document extraction service is out of quota. Wait a minute and retry, or check the API plan and billing."
	}
	return err.Error()
}
