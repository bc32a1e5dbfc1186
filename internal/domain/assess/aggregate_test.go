package assess

import "testing"

func testTree() *Tree {
	// root(1) -> A(2), B(3); A -> leaf1(4), leaf2(5); B is itself a leaf.
	return &Tree{
		RootID: 1,
		Nodes:  []int64{1, 2, 3, 4, 5},
		Children: map[int64][]int64{
			1: {2, 3},
			2: {4, 5},
		},
		Leaves: []int64{4, 5, 3},
	}
}

func TestAggregate_BottomUpPropagation(t *testing.T) {
	lv := Aggregate(testTree(), Pools{4: {3}, 5: {3}, 3: {5}})
	if !lv.Valid {
		t.Fatalf("expected a level")
	}
	// A = mode([3,3]) = 3; root pool [3,5] ties on frequency, max wins.
	if lv.Value != 5 {
		t.Fatalf("expected 5, got %d", lv.Value)
	}
}

func TestAggregate_ModeWinsAtInternalNode(t *testing.T) {
	lv := Aggregate(testTree(), Pools{4: {3}, 5: {3}, 3: {3, 5, 5}})
	if !lv.Valid {
		t.Fatalf("expected a level")
	}
	// B = modeThenMax([3,5,5]) = 5; root pool [3,5] again ties, max wins.
	if lv.Value != 5 {
		t.Fatalf("expected 5, got %d", lv.Value)
	}
}

func TestAggregate_ChildWithoutEvidenceContributesNothing(t *testing.T) {
	lv := Aggregate(testTree(), Pools{3: {2}})
	if !lv.Valid {
		t.Fatalf("expected a level")
	}
	if lv.Value != 2 {
		t.Fatalf("expected 2, got %d", lv.Value)
	}
}

func TestAggregate_NoEvidenceAnywhere(t *testing.T) {
	if lv := Aggregate(testTree(), Pools{}); lv.Valid {
		t.Fatalf("expected no level, got %d", lv.Value)
	}
}

func TestAggregate_SelfEvidenceMergesWithChildren(t *testing.T) {
	// Direct CLO evidence at internal node A joins its children's levels.
	lv := Aggregate(testTree(), Pools{4: {2}, 5: {4}, 2: {4}})
	if !lv.Valid {
		t.Fatalf("expected a level")
	}
	// A pool = [2,4,4] -> 4; root pool = [4] -> 4.
	if lv.Value != 4 {
		t.Fatalf("expected 4, got %d", lv.Value)
	}
}

func TestAggregate_SingleNodeTreeIsItsOwnLeaf(t *testing.T) {
	tree := &Tree{RootID: 7, Nodes: []int64{7}, Children: map[int64][]int64{}, Leaves: []int64{7}}
	lv := Aggregate(tree, Pools{7: {1, 1, 2}})
	if !lv.Valid || lv.Value != 1 {
		t.Fatalf("expected 1, got %+v", lv)
	}
}

func TestPostOrder_ChildrenBeforeParents(t *testing.T) {
	order := testTree().PostOrder()
	pos := make(map[int64]int, len(order))
	for i, id := range order {
		pos[id] = i
	}
	if len(order) != 5 {
		t.Fatalf("expected 5 nodes, got %d", len(order))
	}
	if pos[4] > pos[2] || pos[5] > pos[2] || pos[2] > pos[1] || pos[3] > pos[1] {
		t.Fatalf("unexpected order %v", order)
	}
}
