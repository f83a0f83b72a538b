// Package area models how much of Earth's surface each person holds in a
// given year: a fixed per-category fraction table applied to a population
// estimate. It also derives the population-sized grid edge.
package area

import (
	"math"

	"github.com/RoyceNZ/lagom-map/pkg/catalog"
	"github.com/RoyceNZ/lagom-map/pkg/grid"
)

// EarthSurfaceKM2 is Earth's total surface area.
const EarthSurfaceKM2 = 510_064_472.0

// personsPerTile scales a population estimate into a grid edge in
// population-sizing mode. Tuned so present-day population lands mid-range.
const personsPerTile = 350_000.0

// Logistic population model constants.
const (
	carryingCapacity = 11.0e9
	growthRate       = 0.026
	midpointYear     = 1992.0
)

// Population estimates world population for a year using a logistic curve.
func Population(year int) float64 {
	t := float64(year) - midpointYear
	return carryingCapacity / (1 + math.Exp(-growthRate*t))
}

// PerPersonKM2 returns one person's share of Earth's surface, in km², that
// falls in the given category during the given year.
func PerPersonKM2(year int, cat *catalog.Category) float64 {
	pop := Population(year)
	if pop <= 0 {
		return 0
	}
	return EarthSurfaceKM2 * cat.AreaFraction / pop
}

// SizeForPopulation derives the grid edge for a year: one tile per
// personsPerTile people, clamped and forced odd by grid.New.
func SizeForPopulation(year int) grid.Grid {
	n := int(math.Round(math.Sqrt(Population(year) / personsPerTile)))
	return grid.New(n)
}
