package handler

import (
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v3"
)

func paramInt64(c fiber.Ctx, name string) (int64, bool) {
	v, err := strconv.ParseInt(c.Params(name), 10, 64)
	if err != nil || v <= 0 {
		return 0, false
	}
	return v, true
}

// queryInt64List parses an optional comma-separated id list query param.
// An absent or empty param yields a nil slice and ok.
func queryInt64List(c fiber.Ctx, name string) ([]int64, bool) {
	raw := strings.TrimSpace(c.Query(name))
	if raw == "" {
		return nil, true
	}

	parts := strings.Split(raw, ",")
	out := make([]int64, 0, len(parts))
	for _, p := range parts {
		v, err := strconv.ParseInt(strings.TrimSpace(p), 10, 64)
		if err != nil || v <= 0 {
			return nil, false
		}
		out = append(out, v)
	}
	return out, true
}
