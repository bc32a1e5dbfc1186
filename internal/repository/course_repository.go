package repository

import (
	"context"
	"database/sql"
	"errors"

	"skill-track/internal/database"

	"github.com/jackc/pgx/v5"
)

var ErrCourseNotFound = errors.New("course not found")

// Course is one offering of a subject within a curriculum.
type Course struct {
	ID           int64
	SubjectID    int64
	CurriculumID int64
	Name         string
}

type CourseRepository interface {
	FindByID(ctx context.Context, id int64) (Course, error)
}

type PostgresCourseRepository struct {
	db database.DB
}

func NewPostgresCourseRepository(db database.DB) *PostgresCourseRepository {
	return &PostgresCourseRepository{db: db}
}

func (r *PostgresCourseRepository) FindByID(ctx context.Context, id int64) (Course, error) {
	row := r.db.QueryRow(ctx,
		`SELECT id, subject_id, curriculum_id, COALESCE(name, '') FROM courses WHERE id = $1`,
		id,
	)

	var c Course
	if err := row.Scan(&c.ID, &c.SubjectID, &c.CurriculumID, &c.Name); err != nil {
		if err == sql.ErrNoRows || errors.Is(err, pgx.ErrNoRows) {
			return Course{}, ErrCourseNotFound
		}
		return Course{}, err
	}
	return c, nil
}
