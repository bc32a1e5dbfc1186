package assess

import "testing"

func TestClassify(t *testing.T) {
	if c := Classify(4, 3); c != CategoryAbove {
		t.Fatalf("expected above, got %s", c)
	}
	if c := Classify(3, 3); c != CategoryOn {
		t.Fatalf("expected on, got %s", c)
	}
	if c := Classify(2, 3); c != CategoryBelow {
		t.Fatalf("expected below, got %s", c)
	}
}

func TestSummarize_BelowDominates(t *testing.T) {
	c, ok := Summarize([]Category{CategoryAbove, CategoryBelow})
	if !ok || c != CategoryBelow {
		t.Fatalf("expected below, got %s", c)
	}
}

func TestSummarize_OnBeatsAbove(t *testing.T) {
	c, ok := Summarize([]Category{CategoryAbove, CategoryOn, CategoryAbove})
	if !ok || c != CategoryOn {
		t.Fatalf("expected on, got %s", c)
	}
}

func TestSummarize_AllAbove(t *testing.T) {
	c, ok := Summarize([]Category{CategoryAbove, CategoryAbove})
	if !ok || c != CategoryAbove {
		t.Fatalf("expected above, got %s", c)
	}
}

func TestSummarize_Empty(t *testing.T) {
	if _, ok := Summarize(nil); ok {
		t.Fatalf("expected no category")
	}
}
