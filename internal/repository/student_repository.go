package repository

import (
	"context"

	"skill-track/internal/database"
)

// Student is identified externally by its code (the id printed on score
// sheets); the serial id is internal.
type Student struct {
	ID           int64
	Code         string
	Name         string
	CurriculumID int64
}

type StudentRepository interface {
	FindByCodes(ctx context.Context, codes []string) ([]Student, error)
	CreateIfAbsent(ctx context.Context, students []Student) error
}

type PostgresStudentRepository struct {
	db database.DB
}

func NewPostgresStudentRepository(db database.DB) *PostgresStudentRepository {
	return &PostgresStudentRepository{db: db}
}

func (r *PostgresStudentRepository) FindByCodes(ctx context.Context, codes []string) ([]Student, error) {
	if len(codes) == 0 {
		return []Student{}, nil
	}

	rows, err := r.db.Query(ctx,
		`SELECT id, code, COALESCE(name, ''), curriculum_id FROM students WHERE code = ANY($1) ORDER BY code ASC`,
		codes,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]Student, 0)
	for rows.Next() {
		var s Student
		if err := rows.Scan(&s.ID, &s.Code, &s.Name, &s.CurriculumID); err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *PostgresStudentRepository) CreateIfAbsent(ctx context.Context, students []Student) error {
	if len(students) == 0 {
		return nil
	}

	return database.WithTx(ctx, r.db, func(tx database.Tx) error {
		for _, s := range students {
			_, err := tx.Exec(ctx,
				`INSERT INTO students (code, name, curriculum_id) VALUES ($1, $2, $3)
				 ON CONFLICT (code) DO NOTHING`,
				s.Code, s.Name, s.CurriculumID,
			)
			if err != nil {
				return err
			}
		}
		return nil
	})
}
