package cluster

import (
	"math"

	"github.com/RoyceNZ/lagom-map/pkg/field"
	"github.com/RoyceNZ/lagom-map/pkg/grid"
)

// Elevation noise shaping constants. Three octaves of the seeded hash ride
// on a central ridge; amplitudes halve per octave.
const (
	ridgeHeight    = 1.0
	noiseAmplitude = 0.35
	noiseOctaves   = 3
	elevationBias  = -0.05
)

// Elevation returns the proxy height for a tile: a central ridge falling off
// toward the island edge plus seeded octave noise. It feeds secondary rules
// such as lake and river placement, never the nearest-seed decision.
func (f *Field) Elevation(c grid.Coord) float64 {
	ix, iz := f.grid.Normalize(c)
	dist := math.Sqrt(ix*ix + iz*iz)

	// Ridge peaks at the island center and fades past the unit disk.
	ridge := ridgeHeight * math.Max(0, 1-dist)

	noise := 0.0
	amp := noiseAmplitude
	for oct := 0; oct < noiseOctaves; oct++ {
		offset := field.OffsetElevation + float64(oct)*101.0
		noise += (field.Hash(c.X<<oct, c.Z<<oct, offset, f.seed) - 0.5) * amp
		amp /= 2
	}

	return ridge + noise + elevationBias
}
