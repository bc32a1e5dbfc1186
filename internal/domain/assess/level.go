package assess

import "sort"

// Level is a computed proficiency for one student at one skill node.
// Valid is false when no evidence exists anywhere at or below the node;
// a Value of 0 with Valid=true is real evidence, not absence.
type Level struct {
	Value int
	Valid bool
}

// ModeThenMax reduces a pool of observed levels to a single level: the most
// frequent value wins, and a frequency tie resolves to the largest tied
// value. An empty pool yields ok=false.
func ModeThenMax(pool []int) (int, bool) {
	if len(pool) == 0 {
		return 0, false
	}

	counts := make(map[int]int, len(pool))
	for _, v := range pool {
		counts[v]++
	}

	best := 0
	for _, n := range counts {
		if n > best {
			best = n
		}
	}

	tied := make([]int, 0, len(counts))
	for v, n := range counts {
		if n == best {
			tied = append(tied, v)
		}
	}
	sort.Ints(tied)
	return tied[len(tied)-1], true
}
