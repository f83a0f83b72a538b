// Package grid defines the square tile grid the engine assigns biomes onto.
// Tiles are integer-addressed and centered at the origin, so a grid of edge
// N covers x,z in [-N/2, N/2].
package grid

import (
	"math"
	"sort"
)

const (
	// MinSize and MaxSize bound the grid edge length.
	MinSize = 50
	MaxSize = 500

	// islandRadiusRatio scales halfSize into the island radius used to
	// normalize tile coordinates onto the unit disk.
	islandRadiusRatio = 0.65
)

// Coord addresses one tile.
type Coord struct {
	X int `json:"x"`
	Z int `json:"z"`
}

// Grid is a square, odd-edged, origin-centered tile grid.
type Grid struct {
	Size     int
	HalfSize int
}

// New clamps size to [MinSize, MaxSize], forces it odd for center symmetry,
// and returns the resulting grid.
func New(size int) Grid {
	if size < MinSize {
		size = MinSize
	}
	if size > MaxSize {
		size = MaxSize
	}
	if size%2 == 0 {
		if size == MaxSize {
			size--
		} else {
			size++
		}
	}
	return Grid{Size: size, HalfSize: size / 2}
}

// Tiles returns the total tile count, Size².
func (g Grid) Tiles() int { return g.Size * g.Size }

// Contains reports whether the coordinate lies on the grid.
func (g Grid) Contains(c Coord) bool {
	return c.X >= -g.HalfSize && c.X <= g.HalfSize &&
		c.Z >= -g.HalfSize && c.Z <= g.HalfSize
}

// IslandRadius returns the normalization radius for island coordinates.
func (g Grid) IslandRadius() float64 {
	return islandRadiusRatio * float64(g.HalfSize)
}

// Normalize maps a tile coordinate into island-normalized coordinates.
func (g Grid) Normalize(c Coord) (ix, iz float64) {
	r := g.IslandRadius()
	return float64(c.X) / r, float64(c.Z) / r
}

// CenterOutOrder returns every coordinate exactly once, sorted by ascending
// Euclidean distance from the grid center, ties broken by x then z
// ascending. Assignment walks this order so quota pressure lands on the
// edges and clusters stay intact near the center.
func (g Grid) CenterOutOrder() []Coord {
	coords := make([]Coord, 0, g.Tiles())
	for x := -g.HalfSize; x <= g.HalfSize; x++ {
		for z := -g.HalfSize; z <= g.HalfSize; z++ {
			coords = append(coords, Coord{X: x, Z: z})
		}
	}
	sort.Slice(coords, func(i, j int) bool {
		di := coords[i].X*coords[i].X + coords[i].Z*coords[i].Z
		dj := coords[j].X*coords[j].X + coords[j].Z*coords[j].Z
		if di != dj {
			return di < dj
		}
		if coords[i].X != coords[j].X {
			return coords[i].X < coords[j].X
		}
		return coords[i].Z < coords[j].Z
	})
	return coords
}

// Dist returns the Euclidean distance between two points.
func Dist(x1, z1, x2, z2 float64) float64 {
	dx := x1 - x2
	dz := z1 - z2
	return math.Sqrt(dx*dx + dz*dz)
}
