package services

import (
	"context"
	"encoding/json"

	"go.uber.org/zap"

	"github.com/talentsift/resume-analyzer/internal/models"
)

// Fallback used whenever the model's weight response cannot be obtained or
// parsed. The values and reasoning text are part of the contract and must
// stay exact.
const defaultWeightReasoning = "Default weights due to error."

var defaultSectionWeights = models.SectionWeights{
	Experience:                33,
	Skills:                    34,
	EducationAndCertification: 33,
}

// WeightResolver asks the model, from the job description alone, how much
// each scored section should count toward the overall rating. Weights are
// produced once per job description, independent of any resume.
type WeightResolver struct {
	gemini  GeminiService
	prompts *PromptBuilder
	logger  *zap.Logger
}

func NewWeightResolver(gemini GeminiService, log *zap.Logger) *WeightResolver {
	return &WeightResolver{
		gemini:  gemini,
		prompts: NewPromptBuilder(),
		logger:  log.Named("weights"),
	}
}

type weightEntry struct {
	Weight    float64 `json:"weight"`
	Reasoning string  `json:"reasoning"`
}

type weightsPayload struct {
	Experience             weightEntry `json:"experience"`
	Skills                 weightEntry `json:"skills"`
	EducationCertification weightEntry `json:"education_certification"`
}

// ResolveWeights returns the section weights and per-section reasoning. It
// never fails: any gateway or parse error yields the fixed default weights
// with the literal default reasoning for every section.
func (r *WeightResolver) ResolveWeights(ctx context.Context, jobDescription string) (models.SectionWeights, models.WeightReasoning) {
	prompt := r.prompts.BuildSectionWeightsPrompt(jobDescription)

	response, err := r.gemini.GenerateText(ctx, prompt)
	if err != nil {
		r.logger.Warn("weight resolution failed, using defaults", zap.Error(err))
		return defaultSectionWeights, defaultReasoning()
	}

	var payload weightsPayload
	if err := json.Unmarshal([]byte(extractJSON(response)), &payload); err != nil {
		r.logger.Warn("weight response unparseable, using defaults", zap.Error(err))
		return defaultSectionWeights, defaultReasoning()
	}

	if payload.Experience.Weight == 0 && payload.Skills.Weight == 0 && payload.EducationCertification.Weight == 0 {
		r.logger.Warn("weight response carried no weights, using defaults")
		return defaultSectionWeights, defaultReasoning()
	}

	weights := models.SectionWeights{
		Experience:                payload.Experience.Weight,
		Skills:                    payload.Skills.Weight,
		EducationAndCertification: payload.EducationCertification.Weight,
	}
	reasoning := models.WeightReasoning{
		Experience:                payload.Experience.Reasoning,
		Skills:                    payload.Skills.Reasoning,
		EducationAndCertification: payload.EducationCertification.Reasoning,
	}

	r.logger.Debug("weights resolved",
		zap.Float64("experience", weights.Experience),
		zap.Float64("skills", weights.Skills),
		zap.Float64("education", weights.EducationAndCertification),
	)

	return weights, reasoning
}

func defaultReasoning() models.WeightReasoning {
	return models.WeightReasoning{
		Experience:                defaultWeightReasoning,
		Skills:                    defaultWeightReasoning,
		EducationAndCertification: defaultWeightReasoning,
	}
}
