// Package field provides the seeded spatial hash used wherever the engine
// needs reproducible randomness: placement noise, diversity rolls, and
// fallback selection. It is the classic shader one-liner hash, kept exactly
// so identical (x, z, offset, seed) inputs always produce identical values.
package field

import "math"

// Offsets namespace independent draws at the same coordinate. Each concern
// that rolls at a tile uses its own offset so the draws are uncorrelated.
const (
	OffsetElevation float64 = 0
	OffsetDiversity float64 = 17.0
	OffsetPick      float64 = 31.0
	OffsetRare      float64 = 47.0
)

// Hash returns a deterministic pseudo-random value in [0, 1) for the given
// tile coordinate, draw offset and session seed.
func Hash(x, z int, offset, seed float64) float64 {
	fx := float64(x) + seed + offset
	fz := float64(z) + seed + offset
	v := math.Abs(math.Sin(fx*12.9898+fz*78.233) * 43758.5453)
	return v - math.Floor(v)
}
