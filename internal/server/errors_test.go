package server

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/jonathan/resume-scorer/internal/db"
	"github.com/jonathan/resume-scorer/internal/normalize"
	"github.com/jonathan/resume-scorer/internal/validation"
)

func TestHTTPStatus(t *testing.T) {
	assert.Equal(t, http.StatusBadRequest,
		HTTPStatus(&validation.InputError{Fields: []string{"resume: text is required"}}))

	assert.Equal(t, http.StatusBadRequest,
		HTTPStatus(&normalize.EmptyDocumentError{Kind: "resume"}))

	assert.Equal(t, http.StatusNotFound,
		HTTPStatus(&db.NotFoundError{Resource: "score run", ID: uuid.New()}))

	assert.Equal(t, http.StatusTooManyRequests,
		HTTPStatus(&normalize.ExternalServiceError{Message: "quota exceeded", Quota: true}))

	assert.Equal(t, http.StatusBadGateway,
		HTTPStatus(&normalize.ExternalServiceError{Message: "timeout"}))

	assert.Equal(t, http.StatusBadGateway,
		HTTPStatus(&RenderError{Status: 500, Detail: "renderer crashed"}))

	assert.Equal(t, http.StatusInternalServerError,
		HTTPStatus(errors.New("something else")))
}

func TestHTTPStatus_WrappedErrors(t *testing.T) {
	wrapped := fmt.Errorf("failed to normalize resume: %w",
		&normalize.ExternalServiceError{Message: "quota exceeded", Quota: true})

	assert.Equal(t, http.StatusTooManyRequests, HTTPStatus(wrapped))
}

func TestClientMessage_QuotaIsActionable(t *testing.T) {
	msg := clientMessage(&normalize.ExternalServiceError{Message: "googleapi 429", Quota: true})

	assert.Contains(t, msg, "out of quota")
	assert.Contains(t, msg, "retry")
	assert.NotContains(t, msg, "googleapi")
}

func TestClientMessage_Passthrough(t *testing.T) {
	err := errors.New("plain failure")
	assert.Equal(t, "plain failure", clientMessage(err))
}
