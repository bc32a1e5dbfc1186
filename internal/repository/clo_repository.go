package repository

import (
	"context"
	"database/sql"
	"errors"

	"skill-track/internal/database"

	"github.com/jackc/pgx/v5"
)

var ErrCloNotFound = errors.New("clo not found")

// Clo is a course learning outcome. It belongs to one subject and optionally
// targets one skill with an expected proficiency level.
type Clo struct {
	ID          int64
	SubjectID   int64
	SkillID     *int64
	Name        string
	ExpectLevel int
}

type CloRepository interface {
	FindByID(ctx context.Context, id int64) (Clo, error)
	FindBySkillIDs(ctx context.Context, skillIDs []int64) ([]Clo, error)
}

type PostgresCloRepository struct {
	db database.DB
}

func NewPostgresCloRepository(db database.DB) *PostgresCloRepository {
	return &PostgresCloRepository{db: db}
}

const cloColumns = `id, subject_id, skill_id, COALESCE(name, ''), COALESCE(expect_skill_level, 0)`

func (r *PostgresCloRepository) FindByID(ctx context.Context, id int64) (Clo, error) {
	row := r.db.QueryRow(ctx, `SELECT `+cloColumns+` FROM clos WHERE id = $1`, id)

	var c Clo
	if err := row.Scan(&c.ID, &c.SubjectID, &c.SkillID, &c.Name, &c.ExpectLevel); err != nil {
		if err == sql.ErrNoRows || errors.Is(err, pgx.ErrNoRows) {
			return Clo{}, ErrCloNotFound
		}
		return Clo{}, err
	}
	return c, nil
}

func (r *PostgresCloRepository) FindBySkillIDs(ctx context.Context, skillIDs []int64) ([]Clo, error) {
	if len(skillIDs) == 0 {
		return []Clo{}, nil
	}

	rows, err := r.db.Query(ctx,
		`SELECT `+cloColumns+` FROM clos WHERE skill_id = ANY($1) ORDER BY id ASC`,
		skillIDs,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]Clo, 0)
	for rows.Next() {
		var c Clo
		if err := rows.Scan(&c.ID, &c.SubjectID, &c.SkillID, &c.Name, &c.ExpectLevel); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
