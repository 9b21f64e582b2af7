package services

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"
)

// SummaryComposer synthesizes the three section rationales into a short
// narrative. Unlike the weight resolver it defines no fallback: a gateway
// failure is returned to the caller.
type SummaryComposer struct {
	gemini  GeminiService
	prompts *PromptBuilder
	logger  *zap.Logger
}

func NewSummaryComposer(gemini GeminiService, log *zap.Logger) *SummaryComposer {
	return &SummaryComposer{
		gemini:  gemini,
		prompts: NewPromptBuilder(),
		logger:  log.Named("summary"),
	}
}

// ComposeSummary returns a 2-3 line assessment of the candidate's overall
// fit built from the experience, skills, and education rationales.
func (s *SummaryComposer) ComposeSummary(ctx context.Context, experienceRationale, skillsRationale, educationRationale string) (string, error) {
	prompt := s.prompts.BuildSummaryPrompt(experienceRationale, skillsRationale, educationRationale)

	summary, err := s.gemini.GenerateText(ctx, prompt)
	if err != nil {
		s.logger.Warn("summary composition failed", zap.Error(err))
		return "", fmt.Errorf("failed to compose summary: %w", err)
	}

	return strings.TrimSpace(summary), nil
}
