package llm

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCleanJSONBlock(t *testing.T) {
	assert.Equal(t, `{"a": 1}`, CleanJSONBlock("```json\n{\"a\": 1}\n```"))
	assert.Equal(t, `{"a": 1}`, CleanJSONBlock("```\n{\"a\": 1}\n```"))
	assert.Equal(t, `{"a": 1}`, CleanJSONBlock("  {\"a\": 1}  "))
}

func TestCleanJSONBlock_LanguageIdentifier(t *testing.T) {
	assert.Equal(t, `{"a": 1}`, CleanJSONBlock("```javascript\n{\"a\": 1}\n```"))
}

func TestCleanJSONBlock_BracesOnFirstLine(t *testing.T) {
	// A brace right after the fence means there is no language identifier
	assert.Equal(t, `{"a":`+"\n"+`1}`, CleanJSONBlock("```{\"a\":\n1}```"))
}

func TestCleanJSONBlock_Passthrough(t *testing.T) {
	assert.Equal(t, "not json at all", CleanJSONBlock("not json at all"))
}
