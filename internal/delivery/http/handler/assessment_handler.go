package handler

import (
	"errors"

	"skill-track/internal/delivery/http/dto"
	"skill-track/internal/domain/assess"
	"skill-track/internal/pkg/response"
	"skill-track/internal/usecase"
	"skill-track/internal/ws"

	"github.com/gofiber/fiber/v3"
)

type AssessmentHandler struct {
	uc usecase.AssessmentUsecase
}

func NewAssessmentHandler(uc usecase.AssessmentUsecase) *AssessmentHandler {
	return &AssessmentHandler{uc: uc}
}

func (h *AssessmentHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Get("/skills/:id/assessments", h.List)
	r.Get("/skills/:id/assessments/summary", h.Summary)
	r.Post("/skills/:id/assessments/recompute", h.Recompute)
}

func (h *AssessmentHandler) List(c fiber.Ctx) error {
	skillID, ok := paramInt64(c, "id")
	if !ok {
		return response.Error(c, fiber.StatusBadRequest, response.MessageBadRequest, nil)
	}

	rootID, rows, err := h.uc.ListForSkill(c.Context(), skillID)
	if err != nil {
		return h.mapError(c, err)
	}

	items := make([]dto.AssessmentResponse, 0, len(rows))
	for _, a := range rows {
		items = append(items, dto.AssessmentResponse{
			ID:              a.ID,
			SkillID:         a.SkillID,
			StudentID:       a.StudentID,
			CurriculumLevel: a.CurriculumLevel,
			CompanyLevel:    a.CompanyLevel,
			FinalLevel:      a.FinalLevel,
		})
	}

	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.AssessmentListResponse{
		RootSkillID: rootID,
		Items:       items,
	})
}

func (h *AssessmentHandler) Summary(c fiber.Ctx) error {
	skillID, ok := paramInt64(c, "id")
	if !ok {
		return response.Error(c, fiber.StatusBadRequest, response.MessageBadRequest, nil)
	}

	studentIDs, ok := queryInt64List(c, "student_ids")
	if !ok {
		return response.Error(c, fiber.StatusBadRequest, "invalid student_ids", nil)
	}

	summary, err := h.uc.SummarizeForSkill(c.Context(), skillID, studentIDs)
	if err != nil {
		return h.mapError(c, err)
	}

	students := make([]dto.StudentCategoryResponse, 0, len(summary.Students))
	for _, s := range summary.Students {
		students = append(students, dto.StudentCategoryResponse{
			StudentID:     s.StudentID,
			GainedLevel:   s.GainedLevel,
			ExpectedLevel: s.ExpectedLevel,
			Category:      string(s.Category),
		})
	}

	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.CategorySummaryResponse{
		RootSkillID: summary.RootSkillID,
		Above:       summary.Counts[assess.CategoryAbove],
		On:          summary.Counts[assess.CategoryOn],
		Below:       summary.Counts[assess.CategoryBelow],
		Students:    students,
	})
}

func (h *AssessmentHandler) Recompute(c fiber.Ctx) error {
	skillID, ok := paramInt64(c, "id")
	if !ok {
		return response.Error(c, fiber.StatusBadRequest, response.MessageBadRequest, nil)
	}

	rc, err := h.uc.RecomputeForSkill(c.Context(), skillID)
	if err != nil {
		return h.mapError(c, err)
	}

	ws.NotifyAssessmentsUpdated(rc.RootSkillID, rc.AssessmentsCreated, rc.AssessmentsUpdated)

	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.RecomputeResponse{
		RootSkillID:        rc.RootSkillID,
		StudentsAssessed:   rc.StudentsAssessed,
		AssessmentsCreated: rc.AssessmentsCreated,
		AssessmentsUpdated: rc.AssessmentsUpdated,
	})
}

func (h *AssessmentHandler) mapError(c fiber.Ctx, err error) error {
	if errors.Is(err, usecase.ErrSkillNotFound) {
		return response.Error(c, fiber.StatusNotFound, response.MessageNotFound, nil)
	}
	return response.Error(c, fiber.StatusInternalServerError, response.MessageInternalServerError, nil)
}
