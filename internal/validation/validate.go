// Package validation checks scoring requests before any extraction or
// scoring work starts. Rejections here never cost an external call.
package validation

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/jonathan/resume-scorer/internal/types"
)

// MinDocumentChars is the minimum length for a scoreable document. Anything
// shorter cannot carry enough signal to score meaningfully.
const MinDocumentChars = 50

// InputError indicates a request failed validation. It lists the offending
// fields so clients can fix all of them in one round trip.
type InputError struct {
	Fields []string
}

func (e *InputError) Error() string {
	if len(e.Fields) == 0 {
		return "validation error"
	}
	return "validation error: " + strings.Join(e.Fields, "; ")
}

// CheckScoreRequest validates a single-score request.
func CheckScoreRequest(req *types.ScoreRequest) error {
	var fields []string
	fields = append(fields, checkDocument("resume", &req.Resume)...)
	if req.JobDescription != nil {
		fields = append(fields, checkDocument("job_description", req.JobDescription)...)
	}
	if err := req.Validate(); err != nil {
		fields = append(fields, structuralFields(err, fields)...)
	}
	if len(fields) > 0 {
		return &InputError{Fields: fields}
	}
	return nil
}

// CheckBulkScoreRequest validates a bulk request.
func CheckBulkScoreRequest(req *types.BulkScoreRequest) error {
	var fields []string
	if len(req.Resumes) == 0 {
		fields = append(fields, "resumes: at least one resume is required")
	}
	for i := range req.Resumes {
		fields = append(fields, checkDocument(fmt.Sprintf("resumes[%d]", i), &req.Resumes[i])...)
	}
	fields = append(fields, checkDocument("job_description", &req.JobDescription)...)
	if err := req.Validate(); err != nil {
		fields = append(fields, structuralFields(err, fields)...)
	}
	if len(fields) > 0 {
		return &InputError{Fields: fields}
	}
	return nil
}

// checkDocument applies the document rules with messages a caller can act
// on, instead of validator's struct-path phrasing.
func checkDocument(name string, doc *types.DocumentInput) []string {
	text := strings.TrimSpace(doc.Text)
	switch {
	case text == "":
		return []string{name + ": text is required"}
	case len(text) < MinDocumentChars:
		return []string{fmt.Sprintf("%s: text must be at least %d characters, got %d",
			name, MinDocumentChars, len(text))}
	}
	return nil
}

// structuralFields converts remaining validator errors (batch size, nested
// struct shape) into field messages, skipping rules checkDocument already
// reported.
func structuralFields(err error, already []string) []string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return []string{err.Error()}
	}

	var fields []string
	for _, fe := range verrs {
		// Presence and length rules on document text and on the resume
		// batch were reported with better messages by the explicit checks
		if fe.Tag() == "min" || fe.Tag() == "required" {
			switch {
			case strings.HasSuffix(fe.Field(), "Text"),
				fe.Field() == "Resume", fe.Field() == "Resumes", fe.Field() == "JobDescription":
				continue
			}
		}
		msg := fmt.Sprintf("%s: failed %q rule", fe.Namespace(), fe.Tag())
		duplicate := false
		for _, f := range already {
			if f == msg {
				duplicate = true
				break
			}
		}
		if !duplicate {
			fields = append(fields, msg)
		}
	}
	return fields
}
