package handler

import (
	"errors"

	"skill-track/internal/delivery/http/dto"
	"skill-track/internal/pkg/response"
	"skill-track/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type SkillTreeHandler struct {
	uc usecase.SkillTreeUsecase
}

func NewSkillTreeHandler(uc usecase.SkillTreeUsecase) *SkillTreeHandler {
	return &SkillTreeHandler{uc: uc}
}

func (h *SkillTreeHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	r.Get("/skills/:id/tree", h.GetTree)
}

func (h *SkillTreeHandler) GetTree(c fiber.Ctx) error {
	skillID, ok := paramInt64(c, "id")
	if !ok {
		return response.Error(c, fiber.StatusBadRequest, response.MessageBadRequest, nil)
	}

	sub, err := h.uc.LoadSubtree(c.Context(), skillID, nil)
	if err != nil {
		if errors.Is(err, usecase.ErrSkillNotFound) {
			return response.Error(c, fiber.StatusNotFound, response.MessageNotFound, nil)
		}
		return response.Error(c, fiber.StatusInternalServerError, response.MessageInternalServerError, nil)
	}

	nodes := make([]dto.SkillTreeNodeResponse, 0, len(sub.Tree.Nodes))
	for _, id := range sub.Tree.Nodes {
		s := sub.Skills[id]
		nodes = append(nodes, dto.SkillTreeNodeResponse{
			ID:       id,
			ParentID: s.ParentID,
			Name:     s.Name,
			Domain:   s.Domain,
			Children: sub.Tree.Children[id],
			IsLeaf:   sub.Tree.IsLeaf(id),
		})
	}

	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.SkillTreeResponse{
		RootSkillID: sub.Tree.RootID,
		Nodes:       nodes,
		Leaves:      sub.Tree.Leaves,
	})
}
