// Package assign runs the single assignment pass: every tile, walked
// closest-to-center first, receives exactly one biome against a live quota
// ledger, so per-category totals land exactly on target.
package assign

import (
	"github.com/RoyceNZ/lagom-map/pkg/catalog"
	"github.com/RoyceNZ/lagom-map/pkg/cluster"
	"github.com/RoyceNZ/lagom-map/pkg/grid"
	"github.com/RoyceNZ/lagom-map/pkg/quota"
)

// Map is a complete tile-to-biome assignment: one entry per grid coordinate.
type Map map[grid.Coord]catalog.ID

// Run assigns a biome to every tile. The preferred biome from the cluster
// field wins while its quota lasts; otherwise the resolver substitutes.
// When only one category has quota left it is assigned directly.
func Run(g grid.Grid, target quota.Target, f *cluster.Field, r *Resolver, cat *catalog.Catalog) Map {
	led := quota.NewLedger(target)
	out := make(Map, g.Tiles())

	for _, c := range g.CenterOutOrder() {
		if id, ok := led.Sole(cat); ok {
			led.Take(id)
			out[c] = id
			continue
		}

		id := f.Preferred(c)
		if !led.Take(id) {
			id = r.Resolve(c, id, led)
			led.Take(id)
		}
		out[c] = id
	}
	return out
}

// Counts tallies assigned tiles per category in catalog order.
func (m Map) Counts(cat *catalog.Catalog) map[catalog.ID]int {
	counts := make(map[catalog.ID]int, len(cat.Categories))
	for _, id := range m {
		counts[id]++
	}
	return counts
}
