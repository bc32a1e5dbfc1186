package assess

// Pools maps a skill node id to the raw levels observed directly at that
// node for one student: skill_collection gained levels for the gained pass,
// CLO expectation levels for the expected pass. Nodes without evidence are
// simply absent.
type Pools map[int64][]int

// AggregateAll rolls one student's pools up the tree and returns the
// computed level at every node. Each node reduces its children's computed
// levels plus its own direct evidence with ModeThenMax; children without
// evidence contribute nothing. Nodes whose whole subtree held no evidence
// are returned with Valid=false.
func AggregateAll(t *Tree, pools Pools) map[int64]Level {
	if t == nil {
		return nil
	}

	computed := make(map[int64]Level, len(t.Nodes))
	for _, id := range t.PostOrder() {
		pool := make([]int, 0, len(t.Children[id])+len(pools[id]))
		for _, c := range t.Children[id] {
			if lv := computed[c]; lv.Valid {
				pool = append(pool, lv.Value)
			}
		}
		pool = append(pool, pools[id]...)

		if v, ok := ModeThenMax(pool); ok {
			computed[id] = Level{Value: v, Valid: true}
		}
	}
	return computed
}

// Aggregate is AggregateAll reduced to the root level.
func Aggregate(t *Tree, pools Pools) Level {
	if t == nil {
		return Level{}
	}
	return AggregateAll(t, pools)[t.RootID]
}
