package scoring

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-scorer/internal/types"
)

func TestSuggest_NeverFabricates(t *testing.T) {
	suggestions := Suggest([]string{"Terraform", "Kubernetes"}, nil, jobWith(nil, []string{"Terraform", "Kubernetes"}, nil))

	require.NotEmpty(t, suggestions.TopActions)
	for _, action := range suggestions.TopActions {
		assert.True(t, strings.HasPrefix(action, "Consider adding"), action)
		assert.Contains(t, action, "if you have it")
	}
}

func TestSuggest_BulletsKeepMetricPlaceholder(t *testing.T) {
	suggestions := Suggest([]string{"Terraform"}, nil, jobWith(nil, []string{"Terraform"}, nil))

	require.Len(t, suggestions.Bullets, 1)
	assert.Contains(t, suggestions.Bullets[0], "Terraform")
	assert.Contains(t, suggestions.Bullets[0], "[add a measurable outcome]")
}

func TestSuggest_HardRequirementTermsRankFirst(t *testing.T) {
	job := jobWith([]string{"Must have Kubernetes in production"}, nil, nil)
	// Terraform appears more often in the JD text, but Kubernetes is part
	// of a failed gate and must come first
	job.Text += "terraform terraform terraform\n"

	gates := []types.Gate{
		{Rule: "Must have Kubernetes in production", Passed: false},
	}

	suggestions := Suggest([]string{"Terraform", "Kubernetes"}, gates, job)

	require.GreaterOrEqual(t, len(suggestions.TopActions), 2)
	assert.Contains(t, suggestions.TopActions[0], "Kubernetes")
	assert.Contains(t, suggestions.TopActions[1], "Terraform")
}

func TestSuggest_RanksByJDFrequency(t *testing.T) {
	job := jobWith(nil, []string{"GraphQL", "Redis"}, nil)
	job.Text += "redis redis redis\n"

	suggestions := Suggest([]string{"GraphQL", "Redis"}, nil, job)

	require.GreaterOrEqual(t, len(suggestions.TopActions), 2)
	assert.Contains(t, suggestions.TopActions[0], "Redis")
}

func TestSuggest_FailedYearsGateAddsQuantifyAction(t *testing.T) {
	gates := []types.Gate{
		{Rule: "7+ years of experience", Passed: false},
	}

	suggestions := Suggest(nil, gates, jobWith([]string{"7+ years of experience"}, nil, nil))

	require.NotEmpty(t, suggestions.TopActions)
	assert.Contains(t, suggestions.TopActions[0], "7+ years")
	assert.Contains(t, suggestions.TopActions[0], "state dates")
}

func TestSuggest_NothingMissing(t *testing.T) {
	suggestions := Suggest(nil, []types.Gate{{Rule: "Go", Passed: true}}, jobWith(nil, []string{"Go"}, nil))

	assert.Empty(t, suggestions.Bullets)
	require.Len(t, suggestions.TopActions, 1)
	assert.Contains(t, suggestions.TopActions[0], "Quantify")
}

func TestSuggest_TopActionsCapped(t *testing.T) {
	missing := []string{"a", "b", "c", "d", "e", "f", "g"}

	suggestions := Suggest(missing, nil, jobWith(nil, missing, nil))

	assert.Len(t, suggestions.TopActions, maxTopActions)
	assert.Len(t, suggestions.Bullets, len(missing))
}
