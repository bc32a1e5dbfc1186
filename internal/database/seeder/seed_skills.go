package seeder

import (
	"context"

	"skill-track/internal/database"
)

// SkillsSeeder inserts a small demo skill forest: two roots with a couple
// of levels below each, enough for the aggregation engine to walk.
type SkillsSeeder struct{}

func (SkillsSeeder) Name() string { return "skills" }

func (SkillsSeeder) Run(ctx context.Context, db database.DB) error {
	if err := EnsureTableColumns(ctx, db, "skills", "id", "parent_id", "name", "domain"); err != nil {
		return err
	}

	items := []struct {
		Name   string
		Parent string
		Domain string
	}{
		{Name: "Software Development", Domain: "hard"},
		{Name: "Programming", Parent: "Software Development", Domain: "hard"},
		{Name: "Algorithms", Parent: "Programming", Domain: "hard"},
		{Name: "Web Development", Parent: "Programming", Domain: "hard"},
		{Name: "Databases", Parent: "Software Development", Domain: "hard"},
		{Name: "Communication", Domain: "soft"},
		{Name: "Teamwork", Parent: "Communication", Domain: "soft"},
		{Name: "Presentation", Parent: "Communication", Domain: "soft"},
	}

	return database.WithTx(ctx, db, func(tx database.Tx) error {
		for _, it := range items {
			var err error
			if it.Parent == "" {
				_, err = tx.Exec(ctx,
					`INSERT INTO skills (name, domain) VALUES ($1, $2) ON CONFLICT (name) DO NOTHING`,
					it.Name, it.Domain,
				)
			} else {
				// Parents appear earlier in the list, so the subselect
				// always resolves.
				_, err = tx.Exec(ctx,
					`INSERT INTO skills (parent_id, name, domain)
					 SELECT id, $1, $2 FROM skills WHERE name = $3
					 ON CONFLICT (name) DO NOTHING`,
					it.Name, it.Domain, it.Parent,
				)
			}
			if err != nil {
				return err
			}
		}
		return nil
	})
}
