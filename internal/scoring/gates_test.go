package scoring

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/jonathan/resume-scorer/internal/types"
)

func resumeWith(skills, experience []string) *types.ParsedResume {
	r := &types.ParsedResume{
		Sections: types.ResumeSections{
			Skills:     skills,
			Experience: experience,
		},
	}
	for _, line := range experience {
		r.Text += line + "\n"
	}
	for _, s := range skills {
		r.Text += s + "\n"
	}
	r.EnsureSections()
	return r
}

func TestEvaluateGates_NoJobDescription(t *testing.T) {
	gates := EvaluateGates(resumeWith([]string{"Go"}, nil), nil)

	// Gating without a job description yields an empty slice, not nil
	assert.NotNil(t, gates)
	assert.Empty(t, gates)
}

func TestEvaluateGates_YearsRequirementPasses(t *testing.T) {
	resume := resumeWith(
		[]string{"JavaScript", "React"},
		[]string{"Frontend developer with 5 years of experience building SPAs"},
	)
	job := &types.ParsedJobDescription{
		Requirements: []string{"4+ years of professional experience"},
	}
	job.EnsureSections()

	gates := EvaluateGates(resume, job)

	assert.Len(t, gates, 1)
	assert.True(t, gates[0].Passed)
	assert.Empty(t, gates[0].Impact)
	assert.Contains(t, gates[0].Details, "5.0 years")
}

func TestEvaluateGates_YearsRequirementFails(t *testing.T) {
	resume := resumeWith(nil, []string{"Junior developer, 2 years of experience"})
	job := &types.ParsedJobDescription{
		Requirements: []string{"7+ years of experience required"},
	}
	job.EnsureSections()

	gates := EvaluateGates(resume, job)

	assert.Len(t, gates, 1)
	assert.False(t, gates[0].Passed)
	assert.Equal(t, failedGateImpact, gates[0].Impact)
}

func TestEvaluateGates_TextualSkillGateFound(t *testing.T) {
	resume := resumeWith([]string{"Kubernetes", "Docker"}, nil)
	job := &types.ParsedJobDescription{
		Requirements: []string{"Production experience with Kubernetes"},
	}
	job.EnsureSections()

	gates := EvaluateGates(resume, job)

	assert.Len(t, gates, 1)
	assert.True(t, gates[0].Passed)
	assert.Contains(t, gates[0].Details, "Kubernetes")
}

func TestEvaluateGates_TextualSkillGateMissing(t *testing.T) {
	resume := resumeWith([]string{"Python"}, nil)
	job := &types.ParsedJobDescription{
		Requirements: []string{"Production experience with Kubernetes"},
	}
	job.EnsureSections()

	gates := EvaluateGates(resume, job)

	assert.Len(t, gates, 1)
	assert.False(t, gates[0].Passed)
	assert.Contains(t, gates[0].Details, "not found")
	assert.Equal(t, failedGateImpact, gates[0].Impact)
}

func TestEvaluateGates_SynonymCountsAsPresent(t *testing.T) {
	// "golang" in the skill list satisfies a "Go" requirement
	resume := resumeWith([]string{"golang"}, nil)
	job := &types.ParsedJobDescription{
		Requirements: []string{"Experience with Go"},
	}
	job.EnsureSections()

	gates := EvaluateGates(resume, job)

	assert.Len(t, gates, 1)
	assert.True(t, gates[0].Passed)
}

func TestEvaluateGates_JDLevelYearsFigure(t *testing.T) {
	resume := resumeWith(nil, []string{"3 years of experience"})
	years := 5
	job := &types.ParsedJobDescription{
		Requirements:    []string{"Experience with PostgreSQL"},
		ExperienceYears: &years,
	}
	job.EnsureSections()

	gates := EvaluateGates(resume, job)

	// One textual gate plus the JD-level years gate
	assert.Len(t, gates, 2)
	assert.Equal(t, "5+ years experience", gates[1].Rule)
	assert.False(t, gates[1].Passed)
}

func TestEvaluateGates_JDLevelYearsSkippedWhenRequirementIsNumeric(t *testing.T) {
	resume := resumeWith(nil, []string{"6 years of experience"})
	years := 5
	job := &types.ParsedJobDescription{
		Requirements:    []string{"5+ years of experience"},
		ExperienceYears: &years,
	}
	job.EnsureSections()

	gates := EvaluateGates(resume, job)

	// The requirement line already gates on years; no duplicate gate
	assert.Len(t, gates, 1)
}

func TestCandidateYears_StatedClaim(t *testing.T) {
	resume := resumeWith(nil, []string{"Software engineer with 5 years of experience"})

	assert.Equal(t, 5.0, CandidateYears(resume))
}

func TestCandidateYears_DateRangesSummed(t *testing.T) {
	resume := resumeWith(nil, []string{
		"Backend Engineer, Acme Corp, 2016 - 2019",
		"Senior Engineer, Beta Inc, 2019 - 2021",
	})

	assert.Equal(t, 5.0, CandidateYears(resume))
}

func TestCandidateYears_PresentRange(t *testing.T) {
	start := time.Now().UTC().Year() - 3
	resume := resumeWith(nil, []string{fmt.Sprintf("Engineer, %d - present", start)})

	assert.Equal(t, 3.0, CandidateYears(resume))
}

func TestCandidateYears_LongestInterpretationWins(t *testing.T) {
	// Ranges cover 2 years but the candidate claims 8; take the larger
	resume := resumeWith(nil, []string{
		"Engineer, 2020 - 2022",
		"8 years of experience across backend systems",
	})

	assert.Equal(t, 8.0, CandidateYears(resume))
}

func TestCandidateYears_ImplausibleClaimIgnored(t *testing.T) {
	resume := resumeWith(nil, []string{"99 years of experience"})

	assert.Equal(t, 0.0, CandidateYears(resume))
}

func TestRequiredYears(t *testing.T) {
	assert.Equal(t, 4, requiredYears("4+ years of experience with JavaScript"))
	assert.Equal(t, 10, requiredYears("minimum 10 years in the field"))
	assert.Equal(t, 0, requiredYears("strong communication skills"))
	assert.Equal(t, 0, requiredYears("founded in 99 years ago")) // implausible
}
