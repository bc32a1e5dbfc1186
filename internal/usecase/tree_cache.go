package usecase

import (
	"context"
	"fmt"
	"time"
)

// TreeCache is the port the tree loader uses to reuse loaded subtree
// structure between calls. Implementations must treat unavailability as a
// miss, never as an error that blocks loading.
type TreeCache interface {
	GetJSON(ctx context.Context, key string, out any) (bool, error)
	SetJSON(ctx context.Context, key string, value any, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
}

const treeCacheTTL = 10 * time.Minute

func treeCacheKey(rootSkillID int64) string {
	return fmt.Sprintf("skilltree:v1:%d", rootSkillID)
}
