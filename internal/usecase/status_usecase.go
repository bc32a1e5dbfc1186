package usecase

import (
	"context"
	"time"

	"skill-track/internal/infrastructure/cache"
	"skill-track/internal/repository"
)

type Status struct {
	Skills           int64
	Students         int64
	SkillCollections int64
	SkillAssessments int64
	DatabaseHealthy  bool
	CacheHealthy     bool
}

type StatusUsecase interface {
	GetStatus(ctx context.Context) (Status, error)
}

type pinger interface {
	Ping(ctx context.Context) error
}

type StatusService struct {
	repo  repository.StatusRepository
	db    pinger
	cache pinger
}

func NewStatusUsecase(repo repository.StatusRepository, db pinger, redis *cache.Redis) *StatusService {
	var cachePing pinger
	if redis != nil {
		cachePing = redis
	}
	return &StatusService{repo: repo, db: db, cache: cachePing}
}

func (u *StatusService) GetStatus(ctx context.Context) (Status, error) {
	var st Status
	var err error

	if st.Skills, err = u.repo.CountSkills(ctx); err != nil {
		return Status{}, ErrInternal
	}
	if st.Students, err = u.repo.CountStudents(ctx); err != nil {
		return Status{}, ErrInternal
	}
	if st.SkillCollections, err = u.repo.CountSkillCollections(ctx); err != nil {
		return Status{}, ErrInternal
	}
	if st.SkillAssessments, err = u.repo.CountSkillAssessments(ctx); err != nil {
		return Status{}, ErrInternal
	}

	st.DatabaseHealthy = pingOK(ctx, u.db)
	st.CacheHealthy = pingOK(ctx, u.cache)
	return st, nil
}

func pingOK(ctx context.Context, p pinger) bool {
	if p == nil {
		return false
	}
	pingCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	return p.Ping(pingCtx) == nil
}
