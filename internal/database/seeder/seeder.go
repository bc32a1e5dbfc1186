// Package seeder loads the baseline rows a fresh deployment needs: the demo
// skill forest and the academic structure hanging off it. Every seeder is
// written to be safe to run repeatedly.
package seeder

import (
	"context"

	"skill-track/internal/database"
)

type Seeder interface {
	Name() string
	Run(ctx context.Context, db database.DB) error
}
