package seeder

import (
	"context"

	"skill-track/internal/database"
)

// AcademicsSeeder inserts one demo curriculum, subject and course offering,
// plus CLOs targeting leaf skills so an import has something to land on.
type AcademicsSeeder struct{}

func (AcademicsSeeder) Name() string { return "academics" }

func (AcademicsSeeder) Run(ctx context.Context, db database.DB) error {
	if err := EnsureTableColumns(ctx, db, "curricula", "id", "name"); err != nil {
		return err
	}
	if err := EnsureTableColumns(ctx, db, "subjects", "id", "curriculum_id", "name"); err != nil {
		return err
	}
	if err := EnsureTableColumns(ctx, db, "courses", "id", "subject_id", "curriculum_id", "name"); err != nil {
		return err
	}
	if err := EnsureTableColumns(ctx, db, "clos", "id", "subject_id", "skill_id", "name", "expect_skill_level"); err != nil {
		return err
	}

	return database.WithTx(ctx, db, func(tx database.Tx) error {
		_, err := tx.Exec(ctx,
			`INSERT INTO curricula (name) VALUES ($1) ON CONFLICT (name) DO NOTHING`,
			"Computer Engineering 2024",
		)
		if err != nil {
			return err
		}

		_, err = tx.Exec(ctx,
			`INSERT INTO subjects (curriculum_id, name)
			 SELECT id, $1 FROM curricula WHERE name = $2
			 ON CONFLICT (name) DO NOTHING`,
			"Fundamentals of Programming", "Computer Engineering 2024",
		)
		if err != nil {
			return err
		}

		_, err = tx.Exec(ctx,
			`INSERT INTO courses (subject_id, curriculum_id, name)
			 SELECT s.id, s.curriculum_id, $1 FROM subjects s WHERE s.name = $2
			 ON CONFLICT (name) DO NOTHING`,
			"Fundamentals of Programming 1/2024", "Fundamentals of Programming",
		)
		if err != nil {
			return err
		}

		clos := []struct {
			Name        string
			Skill       string
			ExpectLevel int
		}{
			{Name: "CLO1 apply core algorithms", Skill: "Algorithms", ExpectLevel: 3},
			{Name: "CLO2 build a simple web app", Skill: "Web Development", ExpectLevel: 2},
			{Name: "CLO3 work in a project team", Skill: "Teamwork", ExpectLevel: 3},
		}
		for _, c := range clos {
			_, err := tx.Exec(ctx,
				`INSERT INTO clos (subject_id, skill_id, name, expect_skill_level)
				 SELECT s.id, k.id, $1, $2
				 FROM subjects s, skills k
				 WHERE s.name = $3 AND k.name = $4
				 ON CONFLICT (name) DO NOTHING`,
				c.Name, c.ExpectLevel, "Fundamentals of Programming", c.Skill,
			)
			if err != nil {
				return err
			}
		}
		return nil
	})
}
