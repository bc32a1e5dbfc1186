package assess

import "testing"

func TestModeThenMax_SingleMode(t *testing.T) {
	v, ok := ModeThenMax([]int{3, 3, 4})
	if !ok {
		t.Fatalf("expected ok")
	}
	if v != 3 {
		t.Fatalf("expected 3, got %d", v)
	}
}

func TestModeThenMax_TieTakesMax(t *testing.T) {
	v, ok := ModeThenMax([]int{3, 3, 4, 4})
	if !ok {
		t.Fatalf("expected ok")
	}
	if v != 4 {
		t.Fatalf("expected 4, got %d", v)
	}
}

func TestModeThenMax_AllSingletonsTakesMax(t *testing.T) {
	v, ok := ModeThenMax([]int{3, 5})
	if !ok {
		t.Fatalf("expected ok")
	}
	if v != 5 {
		t.Fatalf("expected 5, got %d", v)
	}
}

func TestModeThenMax_ZeroIsEvidence(t *testing.T) {
	v, ok := ModeThenMax([]int{0})
	if !ok {
		t.Fatalf("a recorded 0 must count as evidence")
	}
	if v != 0 {
		t.Fatalf("expected 0, got %d", v)
	}
}

func TestModeThenMax_EmptyPool(t *testing.T) {
	if _, ok := ModeThenMax(nil); ok {
		t.Fatalf("empty pool must not produce a level")
	}
}
