package repository

import (
	"context"

	"skill-track/internal/database"
)

type StatusRepository interface {
	CountSkills(ctx context.Context) (int64, error)
	CountStudents(ctx context.Context) (int64, error)
	CountSkillCollections(ctx context.Context) (int64, error)
	CountSkillAssessments(ctx context.Context) (int64, error)
}

type PostgresStatusRepository struct {
	db database.DB
}

func NewPostgresStatusRepository(db database.DB) *PostgresStatusRepository {
	return &PostgresStatusRepository{db: db}
}

func (r *PostgresStatusRepository) CountSkills(ctx context.Context) (int64, error) {
	return r.countTable(ctx, `SELECT COUNT(*) FROM skills`)
}

func (r *PostgresStatusRepository) CountStudents(ctx context.Context) (int64, error) {
	return r.countTable(ctx, `SELECT COUNT(*) FROM students`)
}

func (r *PostgresStatusRepository) CountSkillCollections(ctx context.Context) (int64, error) {
	return r.countTable(ctx, `SELECT COUNT(*) FROM skill_collections`)
}

func (r *PostgresStatusRepository) CountSkillAssessments(ctx context.Context) (int64, error) {
	return r.countTable(ctx, `SELECT COUNT(*) FROM skill_assessments`)
}

func (r *PostgresStatusRepository) countTable(ctx context.Context, query string) (int64, error) {
	var n int64
	row := r.db.QueryRow(ctx, query)
	if err := row.Scan(&n); err != nil {
		return 0, err
	}
	return n, nil
}
