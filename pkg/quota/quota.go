// Package quota converts the catalog's Earth-surface fractions into exact
// integer tile quotas for a grid, and tracks the remaining quota during a
// single assignment pass.
package quota

import (
	"fmt"
	"math"

	"github.com/RoyceNZ/lagom-map/pkg/catalog"
	"github.com/RoyceNZ/lagom-map/pkg/grid"
)

// Target maps every category to the exact tile count it must occupy.
// The values always sum to the grid's tile count.
type Target map[catalog.ID]int

// Calculate rounds each category's share of the grid and absorbs the
// rounding residual into the catalog's overflow category so the total is
// exactly N².
func Calculate(g grid.Grid, cat *catalog.Catalog) (Target, error) {
	tiles := g.Tiles()
	if tiles <= 0 {
		return nil, fmt.Errorf("grid has %d tiles, want > 0", tiles)
	}
	total := cat.TotalFraction()
	if total <= 0 {
		return nil, fmt.Errorf("catalog fractions sum to %v, want > 0", total)
	}

	target := make(Target, len(cat.Categories))
	sum := 0
	for i := range cat.Categories {
		c := &cat.Categories[i]
		q := int(math.Round(float64(tiles) * c.AreaFraction / total))
		target[c.ID] = q
		sum += q
	}

	// Residual can be negative; the overflow category takes it either way.
	target[cat.OverflowID] += tiles - sum
	if target[cat.OverflowID] < 0 {
		return nil, fmt.Errorf("overflow category %q quota went negative (%d)",
			cat.OverflowID, target[cat.OverflowID])
	}
	return target, nil
}

// Ledger is the mutable remaining-quota counter for one assignment pass.
// It is only ever decremented; remaining stays within [0, target].
type Ledger struct {
	target    Target
	remaining map[catalog.ID]int
	left      int
}

// NewLedger initializes a ledger from a target quota.
func NewLedger(target Target) *Ledger {
	l := &Ledger{
		target:    target,
		remaining: make(map[catalog.ID]int, len(target)),
	}
	for id, n := range target {
		l.remaining[id] = n
		l.left += n
	}
	return l
}

// Remaining returns the unplaced quota for a category.
func (l *Ledger) Remaining(id catalog.ID) int { return l.remaining[id] }

// Target returns the original quota for a category.
func (l *Ledger) Target(id catalog.ID) int { return l.target[id] }

// Placed returns how many tiles of a category have been assigned so far.
func (l *Ledger) Placed(id catalog.ID) int { return l.target[id] - l.remaining[id] }

// TotalRemaining returns the number of tiles still to assign.
func (l *Ledger) TotalRemaining() int { return l.left }

// Take decrements a category's remaining quota. It returns false, without
// mutating, when the category is exhausted.
func (l *Ledger) Take(id catalog.ID) bool {
	if l.remaining[id] <= 0 {
		return false
	}
	l.remaining[id]--
	l.left--
	return true
}

// Sole returns the only category with remaining quota, when exactly one is
// left in play. Assignment short-circuits on it without consulting the
// cluster field. Iteration follows catalog order for determinism.
func (l *Ledger) Sole(cat *catalog.Catalog) (catalog.ID, bool) {
	var found catalog.ID
	count := 0
	for i := range cat.Categories {
		id := cat.Categories[i].ID
		if l.remaining[id] > 0 {
			found = id
			count++
			if count > 1 {
				return "", false
			}
		}
	}
	return found, count == 1
}
