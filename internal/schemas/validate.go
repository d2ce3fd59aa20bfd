// Package schemas provides JSON Schema validation for the extraction output
// returned by the external text-understanding collaborator. Responses are
// validated at the normalizer boundary before any of their content is
// trusted by the scoring layer.
package schemas

import (
	"embed"
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

//go:embed *.schema.json
var schemaFiles embed.FS

// Schema file names for the two extraction outputs.
const (
	ResumeExtraction = "resume_extraction.schema.json"
	JobExtraction    = "job_extraction.schema.json"
)

// FieldError represents a single validation error at a specific field
type FieldError struct {
	Field   string
	Message string
}

// ValidationError represents a schema validation failure with field paths
type ValidationError struct {
	Schema string
	Errors []FieldError
}

func (ve *ValidationError) Error() string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("schema %s validation failed:\n", ve.Schema))
	for i, err := range ve.Errors {
		sb.WriteString(fmt.Sprintf("  %d. %s: %s\n", i+1, err.Field, err.Message))
	}
	return sb.String()
}

// SchemaLoadError represents errors loading or parsing the schema itself
type SchemaLoadError struct {
	Name    string
	Message string
	Cause   error
}

func (e *SchemaLoadError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("failed to load schema %s: %s: %v", e.Name, e.Message, e.Cause)
	}
	return fmt.Sprintf("failed to load schema %s: %s", e.Name, e.Message)
}

func (e *SchemaLoadError) Unwrap() error {
	return e.Cause
}

// ValidateBytes validates a JSON document against one of the embedded schemas.
// Returns *ValidationError when the document does not conform and
// *SchemaLoadError when the schema itself cannot be loaded.
func ValidateBytes(schemaName string, document []byte) error {
	schemaData, err := schemaFiles.ReadFile(schemaName)
	if err != nil {
		return &SchemaLoadError{Name: schemaName, Message: "schema not embedded", Cause: err}
	}

	schemaLoader := gojsonschema.NewBytesLoader(schemaData)
	documentLoader := gojsonschema.NewBytesLoader(document)

	result, err := gojsonschema.Validate(schemaLoader, documentLoader)
	if err != nil {
		return &SchemaLoadError{Name: schemaName, Message: "validation could not run", Cause: err}
	}

	if !result.Valid() {
		ve := &ValidationError{Schema: schemaName}
		for _, desc := range result.Errors() {
			ve.Errors = append(ve.Errors, FieldError{
				Field:   desc.Field(),
				Message: desc.Description(),
			})
		}
		return ve
	}

	return nil
}
