package repository

import (
	"context"

	"skill-track/internal/database"
)

// SkillAssessment is the per-(root skill, student) summary the aggregation
// engine owns. CurriculumLevel is computed here; CompanyLevel is written by
// the internship surface and only read.
type SkillAssessment struct {
	ID              int64
	SkillID         int64
	StudentID       int64
	CurriculumLevel int
	CompanyLevel    int
	FinalLevel      int
}

// SkillAssessmentUpdate targets one existing row by id.
type SkillAssessmentUpdate struct {
	ID              int64
	CurriculumLevel int
	FinalLevel      int
}

type SkillAssessmentRepository interface {
	FindBySkillID(ctx context.Context, skillID int64) ([]SkillAssessment, error)
	UpsertBatch(ctx context.Context, creates []SkillAssessment, updates []SkillAssessmentUpdate) error
}

type PostgresSkillAssessmentRepository struct {
	db database.DB
}

func NewPostgresSkillAssessmentRepository(db database.DB) *PostgresSkillAssessmentRepository {
	return &PostgresSkillAssessmentRepository{db: db}
}

func (r *PostgresSkillAssessmentRepository) FindBySkillID(ctx context.Context, skillID int64) ([]SkillAssessment, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, skill_id, student_id, curriculum_level, company_level, final_level
		 FROM skill_assessments WHERE skill_id = $1 ORDER BY student_id ASC`,
		skillID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]SkillAssessment, 0)
	for rows.Next() {
		var a SkillAssessment
		if err := rows.Scan(&a.ID, &a.SkillID, &a.StudentID, &a.CurriculumLevel, &a.CompanyLevel, &a.FinalLevel); err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// UpsertBatch executes every staged create and update inside one
// transaction; any failure rolls the whole batch back so no partial
// assessment state is ever visible.
func (r *PostgresSkillAssessmentRepository) UpsertBatch(ctx context.Context, creates []SkillAssessment, updates []SkillAssessmentUpdate) error {
	if len(creates) == 0 && len(updates) == 0 {
		return nil
	}

	return database.WithTx(ctx, r.db, func(tx database.Tx) error {
		for _, a := range creates {
			_, err := tx.Exec(ctx,
				`INSERT INTO skill_assessments (skill_id, student_id, curriculum_level, company_level, final_level)
				 VALUES ($1, $2, $3, $4, $5)`,
				a.SkillID, a.StudentID, a.CurriculumLevel, a.CompanyLevel, a.FinalLevel,
			)
			if err != nil {
				return err
			}
		}

		for _, u := range updates {
			_, err := tx.Exec(ctx,
				`UPDATE skill_assessments SET curriculum_level = $1, final_level = $2 WHERE id = $3`,
				u.CurriculumLevel, u.FinalLevel, u.ID,
			)
			if err != nil {
				return err
			}
		}
		return nil
	})
}
