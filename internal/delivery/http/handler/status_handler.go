package handler

import (
	"skill-track/internal/delivery/http/dto"
	"skill-track/internal/pkg/response"
	"skill-track/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type StatusHandler struct {
	uc usecase.StatusUsecase
}

func NewStatusHandler(uc usecase.StatusUsecase) *StatusHandler {
	return &StatusHandler{uc: uc}
}

func (h *StatusHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	r.Get("/status", h.Status)
}

func (h *StatusHandler) Status(c fiber.Ctx) error {
	st, err := h.uc.GetStatus(c.Context())
	if err != nil {
		return response.Error(c, fiber.StatusInternalServerError, response.MessageInternalServerError, nil)
	}

	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.StatusResponse{
		Skills:           st.Skills,
		Students:         st.Students,
		SkillCollections: st.SkillCollections,
		SkillAssessments: st.SkillAssessments,
		DatabaseHealthy:  st.DatabaseHealthy,
		CacheHealthy:     st.CacheHealthy,
	})
}
