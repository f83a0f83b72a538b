package area

import (
	"testing"

	"github.com/RoyceNZ/lagom-map/pkg/catalog"
	"github.com/RoyceNZ/lagom-map/pkg/grid"
)

func TestPopulationPresentDay(t *testing.T) {
	pop := Population(2026)
	if pop < 7e9 || pop > 9e9 {
		t.Errorf("Population(2026) = %v, want between 7 and 9 billion", pop)
	}
}

func TestPopulationMonotonic(t *testing.T) {
	prev := Population(1800)
	for year := 1850; year <= 2400; year += 50 {
		p := Population(year)
		if p <= prev {
			t.Errorf("Population(%d) = %v, not greater than previous %v", year, p, prev)
		}
		prev = p
	}
}

func TestPopulationBelowCarryingCapacity(t *testing.T) {
	if p := Population(3000); p >= carryingCapacity {
		t.Errorf("Population(3000) = %v, want below carrying capacity", p)
	}
}

func TestPerPersonKM2ShrinksOverTime(t *testing.T) {
	cat := catalog.Default().ByID(catalog.Saltwater)
	early := PerPersonKM2(1900, cat)
	late := PerPersonKM2(2100, cat)
	if early <= 0 || late <= 0 {
		t.Fatalf("shares must be positive: %v, %v", early, late)
	}
	if late >= early {
		t.Errorf("per-person share grew over time: %v -> %v", early, late)
	}
}

func TestSizeForPopulationInBounds(t *testing.T) {
	for _, year := range []int{1800, 1950, 2026, 2200} {
		g := SizeForPopulation(year)
		if g.Size < grid.MinSize || g.Size > grid.MaxSize {
			t.Errorf("year %d: grid size %d outside [%d, %d]", year, g.Size, grid.MinSize, grid.MaxSize)
		}
		if g.Size%2 != 1 {
			t.Errorf("year %d: grid size %d is even", year, g.Size)
		}
	}
}
