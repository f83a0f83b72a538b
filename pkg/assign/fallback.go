package assign

import (
	"github.com/RoyceNZ/lagom-map/pkg/catalog"
	"github.com/RoyceNZ/lagom-map/pkg/field"
	"github.com/RoyceNZ/lagom-map/pkg/grid"
	"github.com/RoyceNZ/lagom-map/pkg/quota"
)

// Tuned resolution probabilities. They have no derivation; treat as
// configuration.
const (
	// missingInjectProb is the chance a never-placed biome is injected
	// ahead of similarity fallback.
	missingInjectProb = 0.4

	// rareBoostProb is the chance an under-represented biome is boosted.
	rareBoostProb = 0.3

	// rareThreshold is the placed-count below which a biome counts as rare.
	rareThreshold = 50
)

// Resolver substitutes a biome when the preferred one is out of quota.
// Diversity and rarity rules outrank strict similarity on purpose: small
// grids would otherwise starve the low-quota biomes entirely.
type Resolver struct {
	cat  *catalog.Catalog
	grid grid.Grid
	seed float64
}

// NewResolver creates a resolver bound to one grid, catalog and seed.
func NewResolver(g grid.Grid, cat *catalog.Catalog, seed float64) *Resolver {
	return &Resolver{cat: cat, grid: g, seed: seed}
}

// Resolve picks a substitute for preferred at tile c. Steps, first success
// wins: missing-biome injection, rare-biome boost, the preferred category's
// similarity fallback list, any category with remaining quota in table
// order, and finally the catalog default regardless of quota.
func (r *Resolver) Resolve(c grid.Coord, preferred catalog.ID, led *quota.Ledger) catalog.ID {
	if id, ok := r.injectMissing(c, led); ok {
		return id
	}
	if id, ok := r.boostRare(c, led); ok {
		return id
	}

	if pc := r.cat.ByID(preferred); pc != nil {
		for _, fb := range pc.Fallbacks {
			if led.Remaining(fb) > 0 {
				return fb
			}
		}
	}

	for i := range r.cat.Categories {
		id := r.cat.Categories[i].ID
		if led.Remaining(id) > 0 {
			return id
		}
	}

	// Pathological exhaustion; the default guarantees termination.
	return r.cat.DefaultID
}

// injectMissing applies the missing-biome rule: if some categories have
// never been placed, a sub-0.4 diversity roll picks one, preferring a
// category whose favored quadrant matches the tile's island quadrant.
func (r *Resolver) injectMissing(c grid.Coord, led *quota.Ledger) (catalog.ID, bool) {
	var missing []*catalog.Category
	for i := range r.cat.Categories {
		cc := &r.cat.Categories[i]
		if led.Target(cc.ID) > 0 && led.Remaining(cc.ID) == led.Target(cc.ID) {
			missing = append(missing, cc)
		}
	}
	if len(missing) == 0 {
		return "", false
	}
	if field.Hash(c.X, c.Z, field.OffsetDiversity, r.seed) >= missingInjectProb {
		return "", false
	}

	ix, iz := r.grid.Normalize(c)
	for _, cc := range missing {
		if quadrantMatches(cc.Quadrant, ix, iz) {
			return cc.ID, true
		}
	}

	pick := int(field.Hash(c.X, c.Z, field.OffsetPick, r.seed) * float64(len(missing)))
	if pick >= len(missing) {
		pick = len(missing) - 1
	}
	return missing[pick].ID, true
}

// boostRare applies the rare-biome rule: categories placed fewer than
// rareThreshold times get a sub-0.3 chance of being chosen.
func (r *Resolver) boostRare(c grid.Coord, led *quota.Ledger) (catalog.ID, bool) {
	var rare []catalog.ID
	for i := range r.cat.Categories {
		id := r.cat.Categories[i].ID
		if led.Remaining(id) > 0 && led.Placed(id) < rareThreshold {
			rare = append(rare, id)
		}
	}
	if len(rare) == 0 {
		return "", false
	}
	if field.Hash(c.X, c.Z, field.OffsetRare, r.seed) >= rareBoostProb {
		return "", false
	}

	pick := int(field.Hash(c.X, c.Z, field.OffsetPick, r.seed) * float64(len(rare)))
	if pick >= len(rare) {
		pick = len(rare) - 1
	}
	return rare[pick], true
}

// quadrantMatches reports whether the tile's island quadrant agrees with a
// category's favored quadrant. A zero sign is a wildcard on that axis, and a
// category with no preference matches nothing here; it stays reachable
// through the index pick.
func quadrantMatches(q [2]int, ix, iz float64) bool {
	if q[0] == 0 && q[1] == 0 {
		return false
	}
	if q[0] != 0 && sign(ix) != q[0] {
		return false
	}
	if q[1] != 0 && sign(iz) != q[1] {
		return false
	}
	return true
}

func sign(v float64) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	}
	return 0
}
