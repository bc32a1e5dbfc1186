package usecase

import (
	"context"
	"errors"
	"strings"

	"skill-track/internal/repository"
)

const (
	SkillDomainHard = "hard"
	SkillDomainSoft = "soft"
)

type SkillItem struct {
	ID          int64
	ParentID    *int64
	Name        string
	Description string
	Domain      string
}

type CreateSkillInput struct {
	ParentID    *int64
	Name        string
	Description string
	Domain      string
}

type SkillUsecase interface {
	ListSkills(ctx context.Context) ([]SkillItem, error)
	AddSkill(ctx context.Context, in CreateSkillInput) (SkillItem, error)
}

type Skill struct {
	repo repository.SkillRepository
	tree SkillTreeUsecase
}

func NewSkillUsecase(repo repository.SkillRepository, tree SkillTreeUsecase) *Skill {
	return &Skill{repo: repo, tree: tree}
}

func (u *Skill) ListSkills(ctx context.Context) ([]SkillItem, error) {
	items, err := u.repo.GetAllSkills(ctx)
	if err != nil {
		return nil, ErrInternal
	}

	out := make([]SkillItem, 0, len(items))
	for _, it := range items {
		out = append(out, skillItem(it))
	}
	return out, nil
}

func (u *Skill) AddSkill(ctx context.Context, in CreateSkillInput) (SkillItem, error) {
	in.Name = strings.TrimSpace(in.Name)
	if in.Name == "" {
		return SkillItem{}, ErrInvalidInput
	}

	in.Domain = strings.ToLower(strings.TrimSpace(in.Domain))
	if in.Domain != "" && in.Domain != SkillDomainHard && in.Domain != SkillDomainSoft {
		return SkillItem{}, ErrInvalidInput
	}

	if in.ParentID != nil {
		if _, err := u.repo.FindByID(ctx, *in.ParentID); err != nil {
			if errors.Is(err, repository.ErrSkillNotFound) {
				return SkillItem{}, ErrSkillNotFound
			}
			return SkillItem{}, ErrInternal
		}
	}

	created, err := u.repo.CreateSkill(ctx, repository.Skill{
		ParentID:    in.ParentID,
		Name:        in.Name,
		Description: strings.TrimSpace(in.Description),
		Domain:      in.Domain,
	})
	if err != nil {
		return SkillItem{}, ErrInternal
	}

	// The cached structure of the enclosing tree is stale now.
	if u.tree != nil && in.ParentID != nil {
		u.tree.Invalidate(ctx, *in.ParentID)
	}

	return skillItem(created), nil
}

func skillItem(s repository.Skill) SkillItem {
	return SkillItem{
		ID:          s.ID,
		ParentID:    s.ParentID,
		Name:        s.Name,
		Description: s.Description,
		Domain:      s.Domain,
	}
}
