package services

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/talentsift/resume-analyzer/internal/models"
)

// AnalyzerService orchestrates one analysis run: the four section pipelines
// and the weight resolver execute concurrently under a bounded limit, the
// aggregator combines the numeric ratings, and the summary is composed only
// after the pipelines it reads from have finished.
type AnalyzerService interface {
	GenerateAspects(ctx context.Context, jobDescription string) *models.SectionAspects
	Analyze(ctx context.Context, jobDescription, resume string, aspects *models.SectionAspects) *models.AnalysisResult
}

type analyzerService struct {
	education   *SectionPipeline
	experience  *SectionPipeline
	skills      *SectionPipeline
	mustHave    *SectionPipeline
	weights     *WeightResolver
	summary     *SummaryComposer
	concurrency int
	logger      *zap.Logger
}

func NewAnalyzerService(gemini GeminiService, concurrency int, log *zap.Logger) AnalyzerService {
	if concurrency < 1 {
		concurrency = 1
	}
	return &analyzerService{
		education:   NewSectionPipeline(models.RubricEducation, gemini, log),
		experience:  NewSectionPipeline(models.RubricExperience, gemini, log),
		skills:      NewSectionPipeline(models.RubricSkills, gemini, log),
		mustHave:    NewSectionPipeline(models.RubricMustHave, gemini, log),
		weights:     NewWeightResolver(gemini, log),
		summary:     NewSummaryComposer(gemini, log),
		concurrency: concurrency,
		logger:      log.Named("analyzer"),
	}
}

// GenerateAspects produces the four checkpoint sets for a job description,
// one per rubric, in parallel. Degraded rubrics carry the gateway error text
// as their single checkpoint instead of failing the whole request, so the
// caller can still share the usable sets across many resumes.
func (a *analyzerService) GenerateAspects(ctx context.Context, jobDescription string) *models.SectionAspects {
	aspects := &models.SectionAspects{}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(a.concurrency)

	g.Go(func() error {
		aspects.Education, _ = a.education.GenerateAspects(gctx, jobDescription)
		return nil
	})
	g.Go(func() error {
		aspects.Experience, _ = a.experience.GenerateAspects(gctx, jobDescription)
		return nil
	})
	g.Go(func() error {
		aspects.Skills, _ = a.skills.GenerateAspects(gctx, jobDescription)
		return nil
	})
	g.Go(func() error {
		aspects.MustHave, _ = a.mustHave.GenerateAspects(gctx, jobDescription)
		return nil
	})

	_ = g.Wait()

	return aspects
}

// Analyze runs the full evaluation of one resume against one job
// description. When aspects are supplied the pipelines skip checkpoint
// generation. A degraded section never fails the analysis: its error is
// carried on the section result and its missing rating counts as zero.
func (a *analyzerService) Analyze(ctx context.Context, jobDescription, resume string, aspects *models.SectionAspects) *models.AnalysisResult {
	runID := uuid.New().String()
	log := a.logger.With(zap.String("analysis_id", runID))
	log.Info("starting analysis",
		zap.Int("jd_chars", len(jobDescription)),
		zap.Int("resume_chars", len(resume)),
		zap.Bool("aspects_supplied", aspects != nil),
	)

	var (
		eduCheckpoints, expCheckpoints, skillsCheckpoints, mhCheckpoints []models.Checkpoint
	)
	if aspects != nil {
		eduCheckpoints = aspects.Education
		expCheckpoints = aspects.Experience
		skillsCheckpoints = aspects.Skills
		mhCheckpoints = aspects.MustHave
	}

	result := &models.AnalysisResult{ID: runID}

	// The pipelines and the weight resolver are mutually independent; run
	// them together under the bounded limit. Each writes to its own field.
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(a.concurrency)

	g.Go(func() error {
		result.Education = a.education.Run(gctx, jobDescription, resume, eduCheckpoints)
		return nil
	})
	g.Go(func() error {
		result.Experience = a.experience.Run(gctx, jobDescription, resume, expCheckpoints)
		return nil
	})
	g.Go(func() error {
		result.Skills = a.skills.Run(gctx, jobDescription, resume, skillsCheckpoints)
		return nil
	})
	g.Go(func() error {
		result.MustHave = a.mustHave.Run(gctx, jobDescription, resume, mhCheckpoints)
		return nil
	})
	g.Go(func() error {
		result.SectionWeights, result.WeightReasoning = a.weights.ResolveWeights(gctx, jobDescription)
		return nil
	})

	_ = g.Wait()

	result.OverallRating, result.OverallCategory = Aggregate(
		result.Education.Rating.Value,
		result.Experience.Rating.Value,
		result.Skills.Rating.Value,
		result.SectionWeights,
		result.MustHave.Category,
	)

	// The summary reads the section rationales, so it must run after the
	// pipelines complete. Its failure is recorded, not propagated.
	summary, err := a.summary.ComposeSummary(ctx,
		result.Experience.Evaluation,
		result.Skills.Evaluation,
		result.Education.Evaluation,
	)
	if err != nil {
		result.SummaryError = err.Error()
	}
	result.OverallSummary = summary

	log.Info("analysis completed",
		zap.Any("overall_rating", result.OverallRating),
		zap.String("overall_category", result.OverallCategory),
		zap.String("must_have_category", string(result.MustHave.Category)),
	)

	return result
}
