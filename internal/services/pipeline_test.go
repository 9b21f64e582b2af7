package services

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/talentsift/resume-analyzer/internal/models"
)

const (
	testJD     = "Data Scientist - Team Lead. Must have a degree in Data Science."
	testResume = "John Doe holds an MSc in Data Science from XYZ University."
)

// Stage routing: evaluation prompts embed the answer script, clarification
// prompts embed the resume, and everything else is an aspect prompt.
func stageOf(prompt string) string {
	switch {
	case strings.Contains(prompt, "Answer Script:"):
		return "evaluation"
	case strings.Contains(prompt, testResume):
		return "clarification"
	default:
		return "aspects"
	}
}

func TestPipelineRunFullThreeStages(t *testing.T) {
	gemini := &fakeGemini{respond: func(prompt string) (string, error) {
		switch stageOf(prompt) {
		case "aspects":
			return "Checkpoint 1: Must have a degree in Data Science.\nCheckpoint 2: Preferred AWS certification.", nil
		case "clarification":
			return "Checkpoint 1: Holds an MSc in Data Science from XYZ University.\nCheckpoint 2: No AWS certification is mentioned.", nil
		default:
			return "**Rating:** 85\n**Evidence:** Degree requirement fully met; preferred certification missing.", nil
		}
	}}

	pipeline := NewSectionPipeline(models.RubricEducation, gemini, zap.NewNop())
	result := pipeline.Run(context.Background(), testJD, testResume, nil)

	require.Empty(t, result.Error)
	assert.Equal(t, models.RubricEducation, result.Rubric)

	require.Len(t, result.Checkpoints, 2)
	assert.Equal(t, 1, result.Checkpoints[0].ID)

	require.Len(t, result.Clarifications, 2)
	assert.Equal(t, 2, result.Clarifications[1].CheckpointID)

	assert.True(t, result.Rating.Parsed)
	assert.Equal(t, 85, result.Rating.Value)
	assert.Equal(t, "Degree requirement fully met; preferred certification missing.", result.Evidence)
	assert.Len(t, gemini.calls(), 3)
}

func TestPipelineRunSkipsAspectStageWhenCheckpointsSupplied(t *testing.T) {
	gemini := &fakeGemini{respond: func(prompt string) (string, error) {
		switch stageOf(prompt) {
		case "clarification":
			return "Checkpoint 1: Lists Python and SQL as skills.", nil
		default:
			return "**Rating:** 70\n**Evidence:** Core skills present.", nil
		}
	}}

	supplied := []models.Checkpoint{{ID: 1, Text: "Verify if the candidate lists Python as a skill."}}

	pipeline := NewSectionPipeline(models.RubricSkills, gemini, zap.NewNop())
	result := pipeline.Run(context.Background(), testJD, testResume, supplied)

	require.Empty(t, result.Error)
	assert.Equal(t, supplied, result.Checkpoints)
	// Two gateway calls only: clarification and evaluation.
	assert.Len(t, gemini.calls(), 2)
}

func TestPipelineAspectFailureDegradesButContinues(t *testing.T) {
	genErr := &GenerationError{Op: "generate", Err: errors.New("quota exceeded")}

	gemini := &fakeGemini{respond: func(prompt string) (string, error) {
		switch stageOf(prompt) {
		case "aspects":
			return "", genErr
		case "clarification":
			return "Checkpoint 1: The resume does not address this.", nil
		default:
			return "**Rating:** 12\n**Evidence:** Input criteria were unusable.", nil
		}
	}}

	pipeline := NewSectionPipeline(models.RubricExperience, gemini, zap.NewNop())
	result := pipeline.Run(context.Background(), testJD, testResume, nil)

	// The failure is recorded but the pipeline keeps going: the literal
	// error message becomes the single checkpoint fed downstream.
	assert.Equal(t, genErr.Error(), result.Error)
	require.Len(t, result.Checkpoints, 1)
	assert.Equal(t, genErr.Error(), result.Checkpoints[0].Text)

	assert.Len(t, gemini.calls(), 3)
	assert.True(t, result.Rating.Parsed)
	assert.Equal(t, 12, result.Rating.Value)
}

func TestPipelineClarificationFailureStopsWithError(t *testing.T) {
	gemini := &fakeGemini{respond: func(prompt string) (string, error) {
		switch stageOf(prompt) {
		case "aspects":
			return "Checkpoint 1: Must have leadership experience.", nil
		case "clarification":
			return "", &GenerationError{Op: "generate", Err: errors.New("timeout")}
		default:
			t.Fatal("evaluation stage must not run after a clarification failure")
			return "", nil
		}
	}}

	pipeline := NewSectionPipeline(models.RubricExperience, gemini, zap.NewNop())
	result := pipeline.Run(context.Background(), testJD, testResume, nil)

	assert.NotEmpty(t, result.Error)
	assert.Len(t, result.Checkpoints, 1)
	assert.Empty(t, result.Clarifications)
	assert.False(t, result.Rating.Parsed)
	assert.Zero(t, result.Rating.Value)
}

func TestPipelineEvaluationFailureKeepsEarlierStages(t *testing.T) {
	gemini := &fakeGemini{respond: func(prompt string) (string, error) {
		switch stageOf(prompt) {
		case "aspects":
			return "Checkpoint 1: Must have a degree in Data Science.", nil
		case "clarification":
			return "Checkpoint 1: Holds an MSc in Data Science.", nil
		default:
			return "", &GenerationError{Op: "generate", Err: errors.New("503")}
		}
	}}

	pipeline := NewSectionPipeline(models.RubricEducation, gemini, zap.NewNop())
	result := pipeline.Run(context.Background(), testJD, testResume, nil)

	assert.NotEmpty(t, result.Error)
	assert.Len(t, result.Checkpoints, 1)
	assert.Len(t, result.Clarifications, 1)
	assert.Empty(t, result.Evaluation)
}

func TestPipelineUnparseableRatingDefaultsToZero(t *testing.T) {
	gemini := &fakeGemini{respond: func(prompt string) (string, error) {
		switch stageOf(prompt) {
		case "aspects":
			return "Checkpoint 1: Verify SQL proficiency.", nil
		case "clarification":
			return "Checkpoint 1: SQL is listed.", nil
		default:
			return "The candidate looks adequate overall.", nil
		}
	}}

	pipeline := NewSectionPipeline(models.RubricSkills, gemini, zap.NewNop())
	result := pipeline.Run(context.Background(), testJD, testResume, nil)

	require.Empty(t, result.Error)
	assert.False(t, result.Rating.Parsed)
	assert.Zero(t, result.Rating.Value)
	assert.Equal(t, "The candidate looks adequate overall.", result.Rating.Raw)
}

func TestPipelineMustHaveCategoryExtraction(t *testing.T) {
	gemini := &fakeGemini{respond: func(prompt string) (string, error) {
		switch stageOf(prompt) {
		case "aspects":
			return "Checkpoint 1: Must have a degree in Data Science.", nil
		case "clarification":
			return "Checkpoint 1: Holds an MSc in Data Science.", nil
		default:
			return "**Category**: Category II\n**Evidence:** All must-haves satisfied.", nil
		}
	}}

	pipeline := NewSectionPipeline(models.RubricMustHave, gemini, zap.NewNop())
	result := pipeline.Run(context.Background(), testJD, testResume, nil)

	require.Empty(t, result.Error)
	assert.Equal(t, models.CategoryII, result.Category)
	assert.False(t, result.Rating.Parsed)
}

func TestGenerateAspectsParsesCheckpoints(t *testing.T) {
	gemini := &fakeGemini{respond: func(string) (string, error) {
		return "Checkpoint 1: Must have a degree.\nCheckpoint 2: Must have 5 years leading teams.", nil
	}}

	pipeline := NewSectionPipeline(models.RubricMustHave, gemini, zap.NewNop())
	checkpoints, err := pipeline.GenerateAspects(context.Background(), testJD)

	require.NoError(t, err)
	require.Len(t, checkpoints, 2)
	assert.Equal(t, "Must have 5 years leading teams.", checkpoints[1].Text)
}
