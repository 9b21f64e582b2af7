package services

import (
	"context"

	"go.uber.org/zap"

	"github.com/talentsift/resume-analyzer/internal/logger"
	"github.com/talentsift/resume-analyzer/internal/models"
)

// SectionPipeline runs the three-stage evaluation for one rubric:
// aspects (checkpoints from the JD), clarifications (facts from the resume),
// evaluation (rating or category plus evidence). Stages are strictly
// sequential with no backward transitions.
type SectionPipeline struct {
	rubric  models.Rubric
	gemini  GeminiService
	prompts *PromptBuilder
	logger  *zap.Logger
}

func NewSectionPipeline(rubric models.Rubric, gemini GeminiService, log *zap.Logger) *SectionPipeline {
	return &SectionPipeline{
		rubric:  rubric,
		gemini:  gemini,
		prompts: NewPromptBuilder(),
		logger:  log.Named("pipeline").With(zap.String("rubric", string(rubric))),
	}
}

func (p *SectionPipeline) Rubric() models.Rubric {
	return p.rubric
}

// GenerateAspects produces the checkpoint set for this rubric from the job
// description. A gateway failure degrades instead of aborting: the literal
// error message becomes the single checkpoint, flowing downstream as input
// rather than stopping the analysis.
func (p *SectionPipeline) GenerateAspects(ctx context.Context, jobDescription string) ([]models.Checkpoint, error) {
	prompt := p.prompts.BuildAspectsPrompt(p.rubric, jobDescription)

	text, err := p.gemini.GenerateText(ctx, prompt)
	if err != nil {
		p.logger.Warn("aspect generation degraded", zap.Error(err))
		return []models.Checkpoint{{ID: 1, Text: err.Error()}}, err
	}

	checkpoints := ParseCheckpoints(text)
	p.logger.Debug("aspects generated", zap.Int("checkpoints", len(checkpoints)))
	return checkpoints, nil
}

// Run executes the full pipeline. When checkpoints are supplied the aspect
// stage is skipped (the shared-aspects mode); otherwise they are generated
// from the job description first. The returned result always carries
// whatever the pipeline managed to produce; failures land in the Error
// field instead of aborting the analysis.
func (p *SectionPipeline) Run(ctx context.Context, jobDescription, resume string, checkpoints []models.Checkpoint) *models.SectionResult {
	result := &models.SectionResult{Rubric: p.rubric}

	// Stage 1: aspects.
	if len(checkpoints) == 0 {
		generated, err := p.GenerateAspects(ctx, jobDescription)
		checkpoints = generated
		if err != nil {
			result.Error = err.Error()
		}
	}
	result.Checkpoints = checkpoints

	// Stage 2: clarifications.
	clarificationPrompt := p.prompts.BuildClarificationPrompt(p.rubric, RenderCheckpoints(checkpoints), resume)
	clarificationText, err := p.gemini.GenerateText(ctx, clarificationPrompt)
	if err != nil {
		p.logger.Warn("clarification stage failed", zap.Error(err))
		result.Error = err.Error()
		return result
	}
	result.Clarifications = ParseClarifications(clarificationText)

	// Stage 3: evaluation.
	evaluationPrompt := p.prompts.BuildEvaluationPrompt(
		p.rubric,
		jobDescription,
		RenderCheckpoints(checkpoints),
		RenderClarifications(result.Clarifications),
	)
	evaluationText, err := p.gemini.GenerateText(ctx, evaluationPrompt)
	if err != nil {
		p.logger.Warn("evaluation stage failed", zap.Error(err))
		result.Error = err.Error()
		return result
	}

	result.Evaluation = evaluationText
	result.Evidence = ExtractEvidence(evaluationText)

	if p.rubric == models.RubricMustHave {
		result.Category = ExtractMustHaveCategory(evaluationText)
	} else {
		result.Rating = ExtractRating(evaluationText)
		if !result.Rating.Parsed {
			p.logger.Warn("rating marker missing from evaluation text",
				zap.String("evaluation", logger.Truncate(evaluationText, 200)),
			)
		}
	}

	p.logger.Debug("section pipeline completed",
		zap.Int("rating", result.Rating.Value),
		zap.String("category", string(result.Category)),
	)

	return result
}
