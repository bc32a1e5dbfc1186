package assess

// Category compares a gained level against an expected one.
type Category string

const (
	CategoryBelow Category = "below"
	CategoryOn    Category = "on"
	CategoryAbove Category = "above"
)

func Classify(gained, expected int) Category {
	switch {
	case gained > expected:
		return CategoryAbove
	case gained < expected:
		return CategoryBelow
	default:
		return CategoryOn
	}
}

// Summarize reduces several per-node categories for one student to a single
// reported category. Any underperformance dominates, then exact match:
// below beats on beats above. Empty input yields ok=false.
func Summarize(cats []Category) (Category, bool) {
	if len(cats) == 0 {
		return "", false
	}

	out := CategoryAbove
	for _, c := range cats {
		switch c {
		case CategoryBelow:
			return CategoryBelow, true
		case CategoryOn:
			out = CategoryOn
		}
	}
	return out, true
}
