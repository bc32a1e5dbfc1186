package assess

// Tree is a loaded skill subtree: an adjacency map over node ids rooted at
// RootID. It carries no per-student state, so one loaded Tree is reused for
// every student in a pass.
type Tree struct {
	RootID   int64
	Nodes    []int64
	Children map[int64][]int64
	Leaves   []int64
}

func (t *Tree) IsLeaf(id int64) bool {
	if t == nil {
		return false
	}
	return len(t.Children[id]) == 0
}

// PostOrder returns every node in the subtree with children listed before
// their parent, so a single forward scan can aggregate bottom-up.
func (t *Tree) PostOrder() []int64 {
	if t == nil {
		return nil
	}

	out := make([]int64, 0, len(t.Nodes))
	seen := make(map[int64]bool, len(t.Nodes))

	var walk func(id int64)
	walk = func(id int64) {
		if seen[id] {
			return
		}
		seen[id] = true
		for _, c := range t.Children[id] {
			walk(c)
		}
		out = append(out, id)
	}
	walk(t.RootID)
	return out
}
