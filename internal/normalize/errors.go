package normalize

import (
	"fmt"
	"strings"
)

// ExternalServiceError represents a failure of the text-understanding
// collaborator: timeout, quota exhaustion, unreachable service, or output
// that failed schema validation.
type ExternalServiceError struct {
	Message string
	Quota   bool // true when the failure is a rate-limit/quota condition
	Cause   error
}

func (e *ExternalServiceError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("external service error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("external service error: %s", e.Message)
}

func (e *ExternalServiceError) Unwrap() error {
	return e.Cause
}

// EmptyDocumentError is returned when even the heuristic fallback cannot
// derive a minimally valid structure from the input.
type EmptyDocumentError struct {
	Kind string // "resume" or "job description"
}

func (e *EmptyDocumentError) Error() string {
	return fmt.Sprintf("no usable content found in %s text", e.Kind)
}

// isQuotaError classifies provider errors that indicate a temporary
// capacity condition. These are surfaced to users as retryable.
func isQuotaError(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "429") ||
		strings.Contains(msg, "quota") ||
		strings.Contains(msg, "rate limit") ||
		strings.Contains(msg, "resource exhausted")
}
