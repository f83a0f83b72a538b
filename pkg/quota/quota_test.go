package quota

import (
	"testing"

	"github.com/RoyceNZ/lagom-map/pkg/catalog"
	"github.com/RoyceNZ/lagom-map/pkg/grid"
)

func TestCalculateSumsExactly(t *testing.T) {
	cat := catalog.Default()
	for _, size := range []int{51, 101, 149, 251, 499} {
		g := grid.New(size)
		target, err := Calculate(g, cat)
		if err != nil {
			t.Fatalf("Calculate(%d): %v", size, err)
		}
		sum := 0
		for _, n := range target {
			sum += n
			if n < 0 {
				t.Fatalf("size %d: negative quota in %v", size, target)
			}
		}
		if sum != g.Tiles() {
			t.Errorf("size %d: quotas sum to %d, want %d", size, sum, g.Tiles())
		}
	}
}

func TestCalculateOverflowAbsorbsResidual(t *testing.T) {
	// Two categories at 1/3 each force a rounding residual.
	cat := &catalog.Catalog{
		OverflowID: "a",
		DefaultID:  "a",
		Categories: []catalog.Category{
			{ID: "a", AreaFraction: 1.0 / 3.0},
			{ID: "b", AreaFraction: 1.0 / 3.0},
			{ID: "c", AreaFraction: 1.0 / 3.0},
		},
	}
	g := grid.New(101)
	target, err := Calculate(g, cat)
	if err != nil {
		t.Fatal(err)
	}
	if target["a"]+target["b"]+target["c"] != g.Tiles() {
		t.Errorf("sum = %d, want %d", target["a"]+target["b"]+target["c"], g.Tiles())
	}
	if target["b"] != target["c"] {
		t.Errorf("non-overflow categories differ: b=%d c=%d", target["b"], target["c"])
	}
}

func TestCalculateRejectsZeroFractionTotal(t *testing.T) {
	cat := &catalog.Catalog{
		OverflowID: "a",
		DefaultID:  "a",
		Categories: []catalog.Category{{ID: "a", AreaFraction: 0}},
	}
	if _, err := Calculate(grid.New(101), cat); err == nil {
		t.Error("expected error for zero total fraction")
	}
}

func TestLedgerTakeAndBounds(t *testing.T) {
	target := Target{"a": 2, "b": 0}
	led := NewLedger(target)

	if led.TotalRemaining() != 2 {
		t.Errorf("TotalRemaining = %d, want 2", led.TotalRemaining())
	}
	if led.Take("b") {
		t.Error("Take on exhausted category succeeded")
	}
	if !led.Take("a") || !led.Take("a") {
		t.Error("Take failed with quota available")
	}
	if led.Take("a") {
		t.Error("Take succeeded past the target")
	}
	if led.Remaining("a") != 0 {
		t.Errorf("Remaining(a) = %d, want 0", led.Remaining("a"))
	}
	if led.Placed("a") != 2 {
		t.Errorf("Placed(a) = %d, want 2", led.Placed("a"))
	}
}

func TestLedgerSole(t *testing.T) {
	cat := &catalog.Catalog{
		OverflowID: "a",
		DefaultID:  "a",
		Categories: []catalog.Category{
			{ID: "a", AreaFraction: 0.5},
			{ID: "b", AreaFraction: 0.5},
		},
	}
	led := NewLedger(Target{"a": 1, "b": 1})
	if _, ok := led.Sole(cat); ok {
		t.Error("Sole reported true with two categories in play")
	}
	led.Take("a")
	id, ok := led.Sole(cat)
	if !ok || id != "b" {
		t.Errorf("Sole = (%v, %v), want (b, true)", id, ok)
	}
}
