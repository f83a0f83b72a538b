package blocks

import (
	"sort"

	"github.com/RoyceNZ/lagom-map/pkg/catalog"
)

// ClampWater rewrites per-category counts so the water categories total
// exactly desiredWater tiles and land fits in what is left. Non-overflow
// water categories keep their catalog proportions of the water budget,
// clamped to the remainder; land categories shrink proportionally when they
// exceed the allowance, with the flooring remainder handed back one tile at
// a time to the largest originals. The overflow category absorbs the final
// residual so the total is exactly tiles.
func ClampWater(counts map[catalog.ID]int, tiles int, cat *catalog.Catalog, desiredWater int) map[catalog.ID]int {
	if desiredWater < 0 {
		desiredWater = 0
	}
	if desiredWater > tiles {
		desiredWater = tiles
	}

	out := make(map[catalog.ID]int, len(counts))

	waterFrac := cat.WaterFraction()
	waterUsed := 0
	for i := range cat.Categories {
		c := &cat.Categories[i]
		if !c.Water || c.ID == cat.OverflowID {
			continue
		}
		want := 0
		if waterFrac > 0 {
			want = int(float64(desiredWater)*c.AreaFraction/waterFrac + 0.5)
		}
		if want > desiredWater-waterUsed {
			want = desiredWater - waterUsed
		}
		out[c.ID] = want
		waterUsed += want
	}

	allowedLand := tiles - desiredWater

	type landEntry struct {
		id       catalog.ID
		original int
	}
	var land []landEntry
	landSum := 0
	for i := range cat.Categories {
		c := &cat.Categories[i]
		if c.Water {
			continue
		}
		n := counts[c.ID]
		land = append(land, landEntry{id: c.ID, original: n})
		landSum += n
	}

	if landSum > allowedLand && landSum > 0 {
		scaledSum := 0
		for _, e := range land {
			scaled := e.original * allowedLand / landSum
			out[e.id] = scaled
			scaledSum += scaled
		}

		// Hand the flooring remainder back, largest originals first.
		sort.Slice(land, func(i, j int) bool {
			if land[i].original != land[j].original {
				return land[i].original > land[j].original
			}
			return land[i].id < land[j].id
		})
		for rem := allowedLand - scaledSum; rem > 0; {
			for _, e := range land {
				if rem == 0 {
					break
				}
				out[e.id]++
				rem--
			}
		}
	} else {
		for _, e := range land {
			out[e.id] = e.original
		}
	}

	// Overflow water takes whatever keeps the total exact.
	assigned := 0
	for id, n := range out {
		if id != cat.OverflowID {
			assigned += n
		}
	}
	out[cat.OverflowID] = tiles - assigned

	return out
}
