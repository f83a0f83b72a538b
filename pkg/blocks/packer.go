// Package blocks rewrites per-category tile counts into axis-aligned square
// regions for visual coherence. Quotas are preserved exactly and the grid
// comes out fully covered; only the arrangement changes.
package blocks

import (
	"fmt"
	"math"
	"sort"

	"github.com/RoyceNZ/lagom-map/pkg/assign"
	"github.com/RoyceNZ/lagom-map/pkg/catalog"
	"github.com/RoyceNZ/lagom-map/pkg/grid"
	"github.com/RoyceNZ/lagom-map/pkg/validation"
)

// packer carries the occupancy state of one packing pass.
type packer struct {
	grid grid.Grid
	occ  []bool
	// candidates caches, per block side, every top-left position sorted by
	// block-center distance to the grid center then (x, z).
	candidates map[int][]grid.Coord
}

// Pack places each category's count as square blocks, largest categories
// first, each block as close to the grid center as it fits. Cells no block
// reaches are filled with the overflow category. The report carries a
// spatial warning for any category that could not be fully placed.
func Pack(g grid.Grid, counts map[catalog.ID]int, cat *catalog.Catalog) (assign.Map, *validation.Report) {
	report := validation.NewReport()
	p := &packer{
		grid:       g,
		occ:        make([]bool, g.Tiles()),
		candidates: make(map[int][]grid.Coord),
	}
	out := make(assign.Map, g.Tiles())

	type entry struct {
		id    catalog.ID
		count int
	}
	order := make([]entry, 0, len(cat.Categories))
	for i := range cat.Categories {
		id := cat.Categories[i].ID
		if counts[id] > 0 {
			order = append(order, entry{id: id, count: counts[id]})
		}
	}
	sort.Slice(order, func(i, j int) bool {
		if order[i].count != order[j].count {
			return order[i].count > order[j].count
		}
		return order[i].id < order[j].id
	})

	for _, e := range order {
		if short := p.packCategory(out, e.id, e.count); short > 0 {
			report.AddWarning(validation.Result{
				Level:       validation.LevelSpatial,
				Message:     fmt.Sprintf("category %q: no space for %d of %d tiles; backfilling with %q", e.id, short, e.count, cat.OverflowID),
				ActualValue: e.count - short,
				Expected:    fmt.Sprintf("%d tiles", e.count),
			})
		}
	}

	// Fill: full coverage regardless of how packing went.
	for x := -g.HalfSize; x <= g.HalfSize; x++ {
		for z := -g.HalfSize; z <= g.HalfSize; z++ {
			c := grid.Coord{X: x, Z: z}
			if !p.occupied(c) {
				out[c] = cat.OverflowID
			}
		}
	}

	return out, report
}

// packCategory places count tiles of one category and returns how many it
// could not place.
func (p *packer) packCategory(out assign.Map, id catalog.ID, count int) int {
	remaining := count
	for remaining > 0 {
		side := int(math.Sqrt(float64(remaining)))
		if side < 1 {
			side = 1
		}

		placed := false
		for s := side; s >= 1; s-- {
			if tl, ok := p.findSpot(s); ok {
				p.place(out, id, tl, s)
				remaining -= s * s
				placed = true
				break
			}
		}
		if placed {
			continue
		}

		// Grid fully fragmented for squares: drop single tiles row-major.
		if tl, ok := p.firstFreeRowMajor(); ok {
			p.place(out, id, tl, 1)
			remaining--
			continue
		}

		// No cell left at all; leave the category under-filled.
		return remaining
	}
	return 0
}

// findSpot returns the first center-most top-left position where an s×s
// block fits without overlap.
func (p *packer) findSpot(s int) (grid.Coord, bool) {
	for _, tl := range p.candidatesFor(s) {
		if p.fits(tl, s) {
			return tl, true
		}
	}
	return grid.Coord{}, false
}

func (p *packer) candidatesFor(s int) []grid.Coord {
	if cached, ok := p.candidates[s]; ok {
		return cached
	}

	g := p.grid
	var cands []grid.Coord
	for x := -g.HalfSize; x+s-1 <= g.HalfSize; x++ {
		for z := -g.HalfSize; z+s-1 <= g.HalfSize; z++ {
			cands = append(cands, grid.Coord{X: x, Z: z})
		}
	}
	half := float64(s-1) / 2
	sort.Slice(cands, func(i, j int) bool {
		di := grid.Dist(float64(cands[i].X)+half, float64(cands[i].Z)+half, 0, 0)
		dj := grid.Dist(float64(cands[j].X)+half, float64(cands[j].Z)+half, 0, 0)
		if di != dj {
			return di < dj
		}
		if cands[i].X != cands[j].X {
			return cands[i].X < cands[j].X
		}
		return cands[i].Z < cands[j].Z
	})
	p.candidates[s] = cands
	return cands
}

func (p *packer) fits(tl grid.Coord, s int) bool {
	for x := tl.X; x < tl.X+s; x++ {
		for z := tl.Z; z < tl.Z+s; z++ {
			if p.occupied(grid.Coord{X: x, Z: z}) {
				return false
			}
		}
	}
	return true
}

func (p *packer) place(out assign.Map, id catalog.ID, tl grid.Coord, s int) {
	for x := tl.X; x < tl.X+s; x++ {
		for z := tl.Z; z < tl.Z+s; z++ {
			c := grid.Coord{X: x, Z: z}
			p.occ[p.index(c)] = true
			out[c] = id
		}
	}
}

func (p *packer) firstFreeRowMajor() (grid.Coord, bool) {
	g := p.grid
	for z := -g.HalfSize; z <= g.HalfSize; z++ {
		for x := -g.HalfSize; x <= g.HalfSize; x++ {
			c := grid.Coord{X: x, Z: z}
			if !p.occupied(c) {
				return c, true
			}
		}
	}
	return grid.Coord{}, false
}

func (p *packer) occupied(c grid.Coord) bool { return p.occ[p.index(c)] }

func (p *packer) index(c grid.Coord) int {
	return (c.Z+p.grid.HalfSize)*p.grid.Size + (c.X + p.grid.HalfSize)
}
