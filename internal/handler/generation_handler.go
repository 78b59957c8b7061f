package handler

import (
	"bytes"
	"encoding/json"

	"quiz-forge/internal/domain"
	"quiz-forge/internal/dto"
	"quiz-forge/internal/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// GenerationHandler exposes the question-generation pipeline.
type GenerationHandler struct {
	service domain.GenerationService
}

func NewGenerationHandler(service domain.GenerationService) *GenerationHandler {
	return &GenerationHandler{service: service}
}

// GenerateQuestions godoc
// @Summary Generate a batch of questions
// @Description Picks a theme and a concept (or uses the ones supplied), generates questions with the model and stores the valid ones. An empty or unreadable body runs in automatic mode.
// @Tags generation
// @Accept json
// @Produce json
// @Param request body dto.GenerateQuestionsRequest false "Optional overrides"
// @Success 200 {object} dto.GenerateQuestionsResponse
// @Failure 400 {object} dto.DuplicateConceptResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /generate-questions [post]
func (h *GenerationHandler) GenerateQuestions(c *fiber.Ctx) error {
	var req dto.GenerateQuestionsRequest
	if body := bytes.TrimSpace(c.Body()); len(body) > 0 {
		if err := json.Unmarshal(body, &req); err != nil {
			logger.Get().Warn("Unreadable request body, running in automatic mode", zap.Error(err))
			req = dto.GenerateQuestionsRequest{}
		}
	}

	result, err := h.service.Generate(c.UserContext(), domain.GenerateRequest{
		Concept:   req.Concept,
		ConceptFR: req.ConceptFR,
		ThemeID:   string(req.ThemeID),
	})
	if err != nil {
		return err
	}

	if result.Outcome == domain.OutcomeDeclinedDuplicate {
		status := fiber.StatusOK
		if result.Mode == domain.ModeManual {
			status = fiber.StatusBadRequest
		}
		return c.Status(status).JSON(dto.DuplicateConceptResponse{
			Success:          false,
			Message:          result.Message,
			Theme:            result.ThemeName,
			Concept:          result.Concept,
			ExistingConcepts: result.ExistingConcepts,
		})
	}

	return c.JSON(toGenerateResponse(result))
}

// LastRun godoc
// @Summary Last generation run of a theme
// @Tags generation
// @Produce json
// @Param theme_id query string true "Theme ID"
// @Success 200 {object} dto.LastRunResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /generation/last [get]
func (h *GenerationHandler) LastRun(c *fiber.Ctx) error {
	result, err := h.service.LastRun(c.UserContext(), c.Query("theme_id"))
	if err != nil {
		return err
	}
	if result == nil {
		return domain.NewNotFoundError("No generation run recorded for this theme")
	}
	return c.JSON(dto.LastRunResponse{Success: true, Run: toGenerateResponse(result)})
}

func toGenerateResponse(r *domain.GenerationResult) dto.GenerateQuestionsResponse {
	return dto.GenerateQuestionsResponse{
		Success:            true,
		Mode:               string(r.Mode),
		Theme:              r.ThemeName,
		ThemeIcon:          r.ThemeIcon,
		Concept:            r.Concept,
		QuestionsGenerated: r.QuestionsGenerated,
		DifficultyDistribution: dto.DifficultyDistribution{
			Easy:   r.Distribution.Easy,
			Medium: r.Distribution.Medium,
			Hard:   r.Distribution.Hard,
		},
		TotalConceptsForTheme: r.TotalConceptsForTheme,
	}
}
