// Package cluster maps tile coordinates to their naturally preferred biome
// by nearest-seed lookup over the catalog's cluster-seed table. Regions come
// out compact and non-overlapping with no blending between neighbors.
package cluster

import (
	"github.com/RoyceNZ/lagom-map/pkg/catalog"
	"github.com/RoyceNZ/lagom-map/pkg/grid"
)

// Field resolves preferred biomes for one grid and catalog.
type Field struct {
	cat  *catalog.Catalog
	grid grid.Grid
	seed float64
}

// NewField creates a cluster field. The seed feeds the elevation noise only;
// the nearest-seed decision itself is purely geometric.
func NewField(g grid.Grid, cat *catalog.Catalog, seed float64) *Field {
	return &Field{cat: cat, grid: g, seed: seed}
}

// Preferred returns the biome whose cluster seed is nearest to the tile in
// island-normalized coordinates, considering only seeds whose influence
// radius covers the tile. With no candidate the catalog default wins.
//
// Ties on distance go to the lowest category id. The seed table is laid out
// so ties never occur in practice; the rule only pins down determinism.
func (f *Field) Preferred(c grid.Coord) catalog.ID {
	ix, iz := f.grid.Normalize(c)

	best := f.cat.DefaultID
	bestDist := -1.0
	found := false

	for i := range f.cat.Categories {
		cat := &f.cat.Categories[i]
		for _, s := range cat.Seeds {
			d := grid.Dist(ix, iz, s.X, s.Z)
			if d >= s.Radius {
				continue
			}
			switch {
			case !found, d < bestDist:
				best, bestDist, found = cat.ID, d, true
			case d == bestDist && cat.ID < best:
				best = cat.ID
			}
		}
	}
	return best
}
