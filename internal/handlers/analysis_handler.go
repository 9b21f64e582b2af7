package handlers

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/talentsift/resume-analyzer/internal/models"
	"github.com/talentsift/resume-analyzer/internal/services"
)

type AnalysisHandler struct {
	analyzer services.AnalyzerService
	validate *validator.Validate
}

func NewAnalysisHandler(analyzer services.AnalyzerService) *AnalysisHandler {
	return &AnalysisHandler{
		analyzer: analyzer,
		validate: validator.New(),
	}
}

// HandleAspects handles POST /aspects. It generates the four checkpoint
// sets for a job description so they can be reused across many resumes.
func (h *AnalysisHandler) HandleAspects(c *fiber.Ctx) error {
	var req models.AspectsRequest

	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request payload",
		})
	}

	if err := h.validate.Struct(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "job_description is required",
		})
	}

	aspects := h.analyzer.GenerateAspects(c.Context(), req.JobDescription)

	return c.JSON(models.AspectsResponse{SectionAspects: *aspects})
}

// HandleEvaluate handles POST /evaluate: the shared-aspects mode, scoring a
// resume with checkpoint sets generated earlier.
func (h *AnalysisHandler) HandleEvaluate(c *fiber.Ctx) error {
	var req models.EvaluateRequest

	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request payload",
		})
	}

	if err := h.validate.Struct(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "job_description, resume, and section_aspects are required",
		})
	}

	result := h.analyzer.Analyze(c.Context(), req.JobDescription, req.Resume, req.SectionAspects)

	return c.JSON(result)
}

// HandleAnalyze handles POST /analyze: the ad-hoc single-resume mode,
// generating checkpoints and scoring in one call.
func (h *AnalysisHandler) HandleAnalyze(c *fiber.Ctx) error {
	var req models.AnalyzeRequest

	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request payload",
		})
	}

	if err := h.validate.Struct(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "job_description and resume are required",
		})
	}

	result := h.analyzer.Analyze(c.Context(), req.JobDescription, req.Resume, nil)

	return c.JSON(result)
}
