package skills

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTokenize(t *testing.T) {
	tokens := Tokenize("5+ years of experience with Node.js and CI/CD pipelines")

	// Stopwords ("of", "with", "years", "experience") are gone, compound
	// tokens survive intact
	assert.Contains(t, tokens, "5+")
	assert.Contains(t, tokens, "node.js")
	assert.Contains(t, tokens, "ci/cd")
	assert.NotContains(t, tokens, "of")
	assert.NotContains(t, tokens, "years")
	assert.NotContains(t, tokens, "experience")
}

func TestTokenize_Stems(t *testing.T) {
	assert.Equal(t, Tokenize("testing"), Tokenize("tested"))
	assert.Equal(t, Tokenize("deployments"), Tokenize("deployment"))
}

func TestStem(t *testing.T) {
	assert.Equal(t, "test", Stem("testing"))
	assert.Equal(t, "deploy", Stem("deployed"))
	assert.Equal(t, "query", Stem("queries"))

	// Short tokens pass through
	assert.Equal(t, "go", Stem("go"))
	assert.Equal(t, "java", Stem("java"))

	// Dictionary skill names are never stemmed
	assert.Equal(t, "kubernetes", Stem("kubernetes"))
	assert.Equal(t, "postgres", Stem("postgres"))
}

func TestTokenSet(t *testing.T) {
	set := TokenSet("build and build and ship")

	assert.True(t, set["build"])
	assert.True(t, set["ship"])
	assert.False(t, set["and"])
	assert.Len(t, set, 2)
}
