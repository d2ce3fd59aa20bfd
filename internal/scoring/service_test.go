package scoring

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-scorer/internal/normalize"
	"github.com/jonathan/resume-scorer/internal/types"
)

const sampleResume = `Summary
Frontend engineer with 5 years of experience building web applications.

Skills
JavaScript, React, TypeScript, CSS

Experience
Senior Frontend Engineer, Acme Corp, 2021 - present
Cut page load time by 45% by code-splitting the bundle
Frontend Engineer, Beta Inc, 2019 - 2021

Education
B.S. Computer Science, State University
`

const sampleJob = `Senior Frontend Engineer

Requirements
4+ years of professional experience
Strong knowledge of JavaScript and React

Skills
JavaScript, React

Nice to have
GraphQL
`

// memStore records the last saved run and hands back a fixed ID.
type memStore struct {
	lastRecord RunRecord
	id         uuid.UUID
}

func (m *memStore) SaveRun(_ context.Context, record RunRecord) (uuid.UUID, error) {
	m.lastRecord = record
	return m.id, nil
}

func newHeuristicService(store RunStore, opts ...ServiceOption) *Service {
	return NewService(normalize.New(nil), store, opts...)
}

func TestService_ScoreAgainstJobDescription(t *testing.T) {
	service := newHeuristicService(nil)

	result, err := service.Score(context.Background(), &types.ScoreRequest{
		Resume:         types.DocumentInput{Text: sampleResume},
		JobDescription: &types.DocumentInput{Text: sampleJob},
	})

	require.NoError(t, err)
	assert.Equal(t, 100, result.Sections.Skills)
	assert.NotEmpty(t, result.Gates)
	for _, gate := range result.Gates {
		assert.True(t, gate.Passed, "gate %q should pass", gate.Rule)
	}
	assert.Greater(t, result.Overall, 50)
	assert.Nil(t, result.ScoreRunID)
	assert.Nil(t, result.Debug)
	assert.False(t, result.Timestamp.IsZero())
}

func TestService_ScoreWithoutJobDescription(t *testing.T) {
	service := newHeuristicService(nil)

	result, err := service.Score(context.Background(), &types.ScoreRequest{
		Resume: types.DocumentInput{Text: sampleResume},
	})

	require.NoError(t, err)
	// No job description: no gates, no keyword verdicts, neutral fallbacks
	assert.Empty(t, result.Gates)
	assert.Empty(t, result.Matches)
	assert.Empty(t, result.MissingKeywords)
	assert.Equal(t, 50, result.Sections.Keywords)
	assert.Equal(t, 70, result.Sections.Education)
}

func TestService_DebugBlockOnRequest(t *testing.T) {
	service := newHeuristicService(nil)

	result, err := service.Score(context.Background(), &types.ScoreRequest{
		Resume:         types.DocumentInput{Text: sampleResume},
		JobDescription: &types.DocumentInput{Text: sampleJob},
		IncludeDebug:   true,
	})

	require.NoError(t, err)
	require.NotNil(t, result.Debug)
	assert.Equal(t, string(normalize.SourceHeuristic), result.Debug.ResumeSource)
	assert.Equal(t, string(normalize.SourceHeuristic), result.Debug.JobSource)
	assert.Equal(t, "no extraction client configured", result.Debug.FallbackReason)
	assert.Equal(t, DefaultWeights().Map(), result.Debug.Weights)
}

func TestService_PersistsRunWhenStoreConfigured(t *testing.T) {
	store := &memStore{id: uuid.New()}
	service := newHeuristicService(store, WithModelVersion("test/v1"))

	result, err := service.Score(context.Background(), &types.ScoreRequest{
		Resume:         types.DocumentInput{Text: sampleResume, Title: "My Resume"},
		JobDescription: &types.DocumentInput{Text: sampleJob, Title: "Frontend Role"},
	})

	require.NoError(t, err)
	require.NotNil(t, result.ScoreRunID)
	assert.Equal(t, store.id, *result.ScoreRunID)
	assert.Equal(t, "My Resume", store.lastRecord.ResumeTitle)
	assert.Equal(t, "Frontend Role", store.lastRecord.JobTitle)
	assert.Equal(t, "test/v1", store.lastRecord.ModelVersion)
	require.NotNil(t, store.lastRecord.Resume)
	require.NotNil(t, store.lastRecord.Job)
}

func TestService_CustomWeightsChangeOverall(t *testing.T) {
	skillsOnly := Weights{Skills: 1.0}
	service := newHeuristicService(nil, WithWeights(skillsOnly))

	result, err := service.Score(context.Background(), &types.ScoreRequest{
		Resume:         types.DocumentInput{Text: sampleResume},
		JobDescription: &types.DocumentInput{Text: sampleJob},
	})

	require.NoError(t, err)
	assert.Equal(t, result.Sections.Skills, result.Overall)
}

func TestService_BulkItemsAreIndependent(t *testing.T) {
	service := newHeuristicService(nil)

	items := service.BulkScore(context.Background(), &types.BulkScoreRequest{
		Resumes: []types.DocumentInput{
			{Text: "   ", Title: "empty"},
			{Text: sampleResume, Title: "good"},
		},
		JobDescription: types.DocumentInput{Text: sampleJob},
	})

	require.Len(t, items, 2)

	// The unusable resume fails on its own slot
	assert.Equal(t, 0, items[0].Index)
	assert.NotEmpty(t, items[0].Error)
	assert.Nil(t, items[0].Result)

	// The good one still scores
	assert.Equal(t, 1, items[1].Index)
	assert.Empty(t, items[1].Error)
	require.NotNil(t, items[1].Result)
	assert.Equal(t, 100, items[1].Result.Sections.Skills)
}
