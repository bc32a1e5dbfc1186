package handler

import (
	"errors"

	"skill-track/internal/delivery/http/dto"
	"skill-track/internal/pkg/response"
	"skill-track/internal/usecase"
	"skill-track/internal/ws"

	"github.com/gofiber/fiber/v3"
)

type SkillImportHandler struct {
	uc usecase.SkillImportUsecase
}

type importRowRequest struct {
	StudentCode string  `json:"student_code"`
	GainedLevel float64 `json:"gained_level"`
}

type importRequest struct {
	Rows []importRowRequest `json:"rows"`
}

func NewSkillImportHandler(uc usecase.SkillImportUsecase) *SkillImportHandler {
	return &SkillImportHandler{uc: uc}
}

func (h *SkillImportHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	r.Post("/courses/:courseId/clos/:cloId/skill-collections/import", h.Import)
}

func (h *SkillImportHandler) Import(c fiber.Ctx) error {
	courseID, ok := paramInt64(c, "courseId")
	if !ok {
		return response.Error(c, fiber.StatusBadRequest, response.MessageBadRequest, nil)
	}
	cloID, ok := paramInt64(c, "cloId")
	if !ok {
		return response.Error(c, fiber.StatusBadRequest, response.MessageBadRequest, nil)
	}

	var req importRequest
	if err := c.Bind().Body(&req); err != nil {
		return response.Error(c, fiber.StatusBadRequest, response.MessageBadRequest, nil)
	}
	if len(req.Rows) == 0 {
		return response.Error(c, fiber.StatusBadRequest, "empty rows", nil)
	}

	rows := make([]usecase.ImportRow, 0, len(req.Rows))
	for _, r := range req.Rows {
		rows = append(rows, usecase.ImportRow{StudentCode: r.StudentCode, GainedLevel: r.GainedLevel})
	}

	result, err := h.uc.ImportSkillCollections(c.Context(), courseID, cloID, rows)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrInvalidInput):
			return response.Error(c, fiber.StatusBadRequest, response.MessageBadRequest, nil)
		case errors.Is(err, usecase.ErrCourseNotFound):
			return response.Error(c, fiber.StatusNotFound, "course not found", nil)
		case errors.Is(err, usecase.ErrCloNotFound):
			return response.Error(c, fiber.StatusNotFound, "clo not found", nil)
		case errors.Is(err, usecase.ErrCloHasNoSkill):
			return response.Error(c, fiber.StatusUnprocessableEntity, "clo has no linked skill", nil)
		case errors.Is(err, usecase.ErrSkillNotFound):
			return response.Error(c, fiber.StatusNotFound, "skill not found", nil)
		default:
			return response.Error(c, fiber.StatusInternalServerError, response.MessageInternalServerError, nil)
		}
	}

	ws.NotifyAssessmentsUpdated(result.RootSkillID, result.AssessmentsCreated, result.AssessmentsUpdated)

	return response.Success(c, fiber.StatusOK, "Import completed", dto.ImportResultResponse{
		RootSkillID:        result.RootSkillID,
		CollectionsCreated: result.CollectionsCreated,
		CollectionsUpdated: result.CollectionsUpdated,
		AssessmentsCreated: result.AssessmentsCreated,
		AssessmentsUpdated: result.AssessmentsUpdated,
		RowsSkipped:        result.RowsSkipped,
	})
}
