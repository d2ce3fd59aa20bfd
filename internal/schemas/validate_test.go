package schemas

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateBytes_ResumeValid(t *testing.T) {
	doc := []byte(`{
		"summary": "Backend engineer",
		"skills": ["Go"],
		"experience": ["Engineer, Acme"],
		"education": []
	}`)

	assert.NoError(t, ValidateBytes(ResumeExtraction, doc))
}

func TestValidateBytes_ResumeMissingRequired(t *testing.T) {
	doc := []byte(`{"skills": ["Go"]}`)

	err := ValidateBytes(ResumeExtraction, doc)

	var ve *ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, ResumeExtraction, ve.Schema)
	assert.NotEmpty(t, ve.Errors)
	assert.Contains(t, ve.Error(), "experience")
}

func TestValidateBytes_ResumeWrongType(t *testing.T) {
	doc := []byte(`{"skills": "Go", "experience": [], "education": []}`)

	err := ValidateBytes(ResumeExtraction, doc)

	var ve *ValidationError
	require.ErrorAs(t, err, &ve)
}

func TestValidateBytes_JobValid(t *testing.T) {
	doc := []byte(`{
		"requirements": ["5+ years of experience"],
		"skills_required": ["Go"],
		"nice_to_have": [],
		"experience_years": 5
	}`)

	assert.NoError(t, ValidateBytes(JobExtraction, doc))
}

func TestValidateBytes_JobNullYears(t *testing.T) {
	doc := []byte(`{
		"requirements": [],
		"skills_required": [],
		"experience_years": null
	}`)

	assert.NoError(t, ValidateBytes(JobExtraction, doc))
}

func TestValidateBytes_JobNegativeYears(t *testing.T) {
	doc := []byte(`{
		"requirements": [],
		"skills_required": [],
		"experience_years": -2
	}`)

	var ve *ValidationError
	require.ErrorAs(t, ValidateBytes(JobExtraction, doc), &ve)
}

func TestValidateBytes_UnknownSchema(t *testing.T) {
	err := ValidateBytes("nope.schema.json", []byte(`{}`))

	var le *SchemaLoadError
	require.ErrorAs(t, err, &le)
}
