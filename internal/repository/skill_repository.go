package repository

import (
	"context"
	"database/sql"
	"errors"

	"skill-track/internal/database"

	"github.com/jackc/pgx/v5"
)

var ErrSkillNotFound = errors.New("skill not found")

// Skill is a node in the skill forest. A nil ParentID marks a root.
type Skill struct {
	ID          int64
	ParentID    *int64
	Name        string
	Description string
	Domain      string
}

type SkillRepository interface {
	FindByID(ctx context.Context, id int64) (Skill, error)
	FindByParentIDs(ctx context.Context, parentIDs []int64) ([]Skill, error)
	GetAllSkills(ctx context.Context) ([]Skill, error)
	CreateSkill(ctx context.Context, s Skill) (Skill, error)
}

type PostgresSkillRepository struct {
	db database.DB
}

func NewPostgresSkillRepository(db database.DB) *PostgresSkillRepository {
	return &PostgresSkillRepository{db: db}
}

const skillColumns = `id, parent_id, name, COALESCE(description, ''), COALESCE(domain, '')`

func (r *PostgresSkillRepository) FindByID(ctx context.Context, id int64) (Skill, error) {
	row := r.db.QueryRow(ctx, `SELECT `+skillColumns+` FROM skills WHERE id = $1`, id)

	var s Skill
	if err := row.Scan(&s.ID, &s.ParentID, &s.Name, &s.Description, &s.Domain); err != nil {
		if err == sql.ErrNoRows || errors.Is(err, pgx.ErrNoRows) {
			return Skill{}, ErrSkillNotFound
		}
		return Skill{}, err
	}
	return s, nil
}

func (r *PostgresSkillRepository) FindByParentIDs(ctx context.Context, parentIDs []int64) ([]Skill, error) {
	if len(parentIDs) == 0 {
		return []Skill{}, nil
	}

	rows, err := r.db.Query(ctx,
		`SELECT `+skillColumns+` FROM skills WHERE parent_id = ANY($1) ORDER BY id ASC`,
		parentIDs,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanSkills(rows)
}

func (r *PostgresSkillRepository) GetAllSkills(ctx context.Context) ([]Skill, error) {
	rows, err := r.db.Query(ctx, `SELECT `+skillColumns+` FROM skills ORDER BY id ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanSkills(rows)
}

func (r *PostgresSkillRepository) CreateSkill(ctx context.Context, s Skill) (Skill, error) {
	row := r.db.QueryRow(ctx,
		`INSERT INTO skills (parent_id, name, description, domain) VALUES ($1, $2, $3, $4) RETURNING id`,
		s.ParentID, s.Name, s.Description, s.Domain,
	)
	if err := row.Scan(&s.ID); err != nil {
		return Skill{}, err
	}
	return s, nil
}

func scanSkills(rows database.Rows) ([]Skill, error) {
	out := make([]Skill, 0)
	for rows.Next() {
		var s Skill
		if err := rows.Scan(&s.ID, &s.ParentID, &s.Name, &s.Description, &s.Domain); err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
