// Package llm - extractor.go defines the structured-extraction schemas sent
// to the text-understanding collaborator.
package llm

import (
	"fmt"
	"strings"

	"github.com/jonathan/resume-scorer/internal/prompts"
)

// ExtractionSchema defines the structure for LLM-based content extraction.
type ExtractionSchema struct {
	Name        string        // Schema name (e.g., "ResumeSections")
	Description string        // System prompt preamble describing the extraction task
	Fields      []SchemaField // Expected output fields
}

// SchemaField defines a single field in the extraction output.
type SchemaField struct {
	Name        string // JSON field name
	Type        string // Type hint: "string", "[]string", "int|null"
	Description string // Description for the LLM
	Required    bool   // Whether this field is required
}

// BuildExtractionPrompt constructs the LLM prompt from schema and input text.
func BuildExtractionPrompt(schema ExtractionSchema, inputText string) string {
	var sb strings.Builder

	// System description
	sb.WriteString(schema.Description)
	sb.WriteString("\n\n")

	// Output schema
	sb.WriteString("Return ONLY valid JSON matching this exact structure:\n{\n")
	for i, field := range schema.Fields {
		typeHint := field.Type
		if typeHint == "" {
			typeHint = "string"
		}
		requiredHint := ""
		if field.Required {
			requiredHint = " (required)"
		}
		sb.WriteString(fmt.Sprintf("  \"%s\": %s%s", field.Name, typeHint, requiredHint))
		if field.Description != "" {
			sb.WriteString(fmt.Sprintf(" // %s", field.Description))
		}
		if i < len(schema.Fields)-1 {
			sb.WriteString(",")
		}
		sb.WriteString("\n")
	}
	sb.WriteString("}\n\n")

	// Instructions
	sb.WriteString("IMPORTANT:\n")
	sb.WriteString("- Extract information directly from the text, do not invent or summarize.\n")
	sb.WriteString("- Return ONLY the JSON object, no markdown, no explanation, no code blocks.\n\n")

	// Input text
	sb.WriteString("Input text:\n\"\"\"\n")
	sb.WriteString(inputText)
	sb.WriteString("\n\"\"\"\n")

	return sb.String()
}

// --- Predefined Schemas ---

// ResumeSectionsSchema returns the extraction schema for candidate resumes.
// The output maps directly onto types.ResumeSections.
func ResumeSectionsSchema() ExtractionSchema {
	return ExtractionSchema{
		Name:        "ResumeSections",
		Description: prompts.MustGet("extraction.json", "resume-sections"),
		Fields: []SchemaField{
			{
				Name:        "summary",
				Type:        "\"string\"",
				Description: "Professional summary or objective statement, verbatim",
				Required:    false,
			},
			{
				Name:        "skills",
				Type:        "[\"string\"]",
				Description: "Individual skills, tools and technologies, one per entry",
				Required:    true,
			},
			{
				Name:        "experience",
				Type:        "[\"string\"]",
				Description: "Work-experience lines including role titles, employers, date ranges and achievement bullets, verbatim",
				Required:    true,
			},
			{
				Name:        "education",
				Type:        "[\"string\"]",
				Description: "Degrees, institutions and graduation years, verbatim",
				Required:    true,
			},
			{
				Name:        "projects",
				Type:        "[\"string\"]",
				Description: "Personal or professional project lines, verbatim",
				Required:    false,
			},
			{
				Name:        "certifications",
				Type:        "[\"string\"]",
				Description: "Certifications and licenses, verbatim",
				Required:    false,
			},
		},
	}
}

// JobDescriptionSchema returns the extraction schema for job descriptions.
// The output maps directly onto types.ParsedJobDescription.
func JobDescriptionSchema() ExtractionSchema {
	return ExtractionSchema{
		Name:        "JobDescription",
		Description: prompts.MustGet("extraction.json", "job-description"),
		Fields: []SchemaField{
			{
				Name:        "requirements",
				Type:        "[\"string\"]",
				Description: "Mandatory requirements and qualifications - copy each requirement verbatim",
				Required:    true,
			},
			{
				Name:        "skills_required",
				Type:        "[\"string\"]",
				Description: "Individual required skills, tools and technologies, one per entry",
				Required:    true,
			},
			{
				Name:        "nice_to_have",
				Type:        "[\"string\"]",
				Description: "Preferred skills and nice-to-have qualifications - copy verbatim",
				Required:    false,
			},
			{
				Name:        "experience_years",
				Type:        "int|null",
				Description: "Minimum years of experience demanded, null if not stated",
				Required:    false,
			},
		},
	}
}
