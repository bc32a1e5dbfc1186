package repository

import (
	"context"

	"skill-track/internal/database"
)

// SkillCollection is the leaf evidence record: one student's gained level
// for one CLO in one course offering. (student_id, course_id, clo_id) is
// unique.
type SkillCollection struct {
	ID          int64
	StudentID   int64
	CourseID    int64
	CloID       int64
	GainedLevel int
	Passed      bool
}

// SkillCollectionUpdate targets one existing row by id.
type SkillCollectionUpdate struct {
	ID          int64
	GainedLevel int
	Passed      bool
}

type SkillCollectionRepository interface {
	FindByCourseAndClo(ctx context.Context, courseID, cloID int64) ([]SkillCollection, error)
	FindByCloIDs(ctx context.Context, cloIDs []int64) ([]SkillCollection, error)
	SaveBatch(ctx context.Context, creates []SkillCollection, updates []SkillCollectionUpdate) error
}

type PostgresSkillCollectionRepository struct {
	db database.DB

	// updates are flushed in chunks of this size to bound statement
	// round-trips within the transaction; tuning only, not correctness.
	chunkSize int
}

const defaultUpdateChunkSize = 50

func NewPostgresSkillCollectionRepository(db database.DB, chunkSize int) *PostgresSkillCollectionRepository {
	if chunkSize <= 0 {
		chunkSize = defaultUpdateChunkSize
	}
	return &PostgresSkillCollectionRepository{db: db, chunkSize: chunkSize}
}

const skillCollectionColumns = `id, student_id, course_id, clo_id, gained_level, passed`

func (r *PostgresSkillCollectionRepository) FindByCourseAndClo(ctx context.Context, courseID, cloID int64) ([]SkillCollection, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+skillCollectionColumns+` FROM skill_collections WHERE course_id = $1 AND clo_id = $2 ORDER BY id ASC`,
		courseID, cloID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanSkillCollections(rows)
}

func (r *PostgresSkillCollectionRepository) FindByCloIDs(ctx context.Context, cloIDs []int64) ([]SkillCollection, error) {
	if len(cloIDs) == 0 {
		return []SkillCollection{}, nil
	}

	rows, err := r.db.Query(ctx,
		`SELECT `+skillCollectionColumns+` FROM skill_collections WHERE clo_id = ANY($1) ORDER BY id ASC`,
		cloIDs,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanSkillCollections(rows)
}

// SaveBatch executes every staged create and update inside one transaction;
// any failure rolls the whole batch back.
func (r *PostgresSkillCollectionRepository) SaveBatch(ctx context.Context, creates []SkillCollection, updates []SkillCollectionUpdate) error {
	if len(creates) == 0 && len(updates) == 0 {
		return nil
	}

	return database.WithTx(ctx, r.db, func(tx database.Tx) error {
		for _, c := range creates {
			_, err := tx.Exec(ctx,
				`INSERT INTO skill_collections (student_id, course_id, clo_id, gained_level, passed)
				 VALUES ($1, $2, $3, $4, $5)`,
				c.StudentID, c.CourseID, c.CloID, c.GainedLevel, c.Passed,
			)
			if err != nil {
				return err
			}
		}

		for start := 0; start < len(updates); start += r.chunkSize {
			end := start + r.chunkSize
			if end > len(updates) {
				end = len(updates)
			}
			for _, u := range updates[start:end] {
				_, err := tx.Exec(ctx,
					`UPDATE skill_collections SET gained_level = $1, passed = $2 WHERE id = $3`,
					u.GainedLevel, u.Passed, u.ID,
				)
				if err != nil {
					return err
				}
			}
		}
		return nil
	})
}

func scanSkillCollections(rows database.Rows) ([]SkillCollection, error) {
	out := make([]SkillCollection, 0)
	for rows.Next() {
		var sc SkillCollection
		if err := rows.Scan(&sc.ID, &sc.StudentID, &sc.CourseID, &sc.CloID, &sc.GainedLevel, &sc.Passed); err != nil {
			return nil, err
		}
		out = append(out, sc)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
