package validation

import (
	"fmt"
	"math"

	"github.com/RoyceNZ/lagom-map/pkg/catalog"
	"github.com/RoyceNZ/lagom-map/pkg/grid"
	"github.com/RoyceNZ/lagom-map/pkg/worldspec"
)

// ValidateSchema performs field-level validation on a parsed world spec and
// its catalog. It checks the preconditions the engine refuses to run
// without, before any computation happens.
func ValidateSchema(s *worldspec.WorldSpec, cat *catalog.Catalog) *Report {
	r := NewReport()

	validateGrid(s, r)
	validateWater(s, r)
	validateYear(s, r)
	validateCatalog(cat, r)

	return r
}

func validateGrid(s *worldspec.WorldSpec, r *Report) {
	switch s.Grid.Mode {
	case worldspec.ModePopulation:
	case worldspec.ModeFixed:
		if s.Grid.Size <= 0 {
			r.AddError(Result{
				Level:       LevelSchema,
				Message:     "fixed grid mode requires a positive size",
				SpecPath:    "grid.size",
				ActualValue: s.Grid.Size,
				Expected:    "> 0",
			})
			return
		}
		if s.Grid.Size < grid.MinSize || s.Grid.Size > grid.MaxSize {
			r.AddWarning(Result{
				Level:       LevelSchema,
				Message:     fmt.Sprintf("grid size %d is outside [%d, %d] and will be clamped", s.Grid.Size, grid.MinSize, grid.MaxSize),
				SpecPath:    "grid.size",
				ActualValue: s.Grid.Size,
				Expected:    fmt.Sprintf("%d-%d", grid.MinSize, grid.MaxSize),
			})
		}
		if s.Grid.Size%2 == 0 {
			r.AddInfo(Result{
				Level:    LevelSchema,
				Message:  fmt.Sprintf("grid size %d is even and will be bumped to %d for center symmetry", s.Grid.Size, s.Grid.Size+1),
				SpecPath: "grid.size",
			})
		}
	default:
		r.AddError(Result{
			Level:       LevelSchema,
			Message:     fmt.Sprintf("unknown grid mode %q", s.Grid.Mode),
			SpecPath:    "grid.mode",
			ActualValue: s.Grid.Mode,
			Expected:    `"population" or "fixed"`,
			Suggestions: []string{`Use mode: population to size the grid from the year's population estimate`},
		})
	}
}

func validateWater(s *worldspec.WorldSpec, r *Report) {
	if s.Water.Fraction <= 0 || s.Water.Fraction >= 1 {
		r.AddError(Result{
			Level:       LevelSchema,
			Message:     fmt.Sprintf("water fraction %.4f must be strictly between 0 and 1", s.Water.Fraction),
			SpecPath:    "water.fraction",
			ActualValue: s.Water.Fraction,
			Expected:    "0 < fraction < 1",
		})
	}
}

func validateYear(s *worldspec.WorldSpec, r *Report) {
	if s.Year < 1700 || s.Year > 2500 {
		r.AddWarning(Result{
			Level:       LevelSchema,
			Message:     fmt.Sprintf("year %d is outside the calibrated range of the population model", s.Year),
			SpecPath:    "year",
			ActualValue: s.Year,
			Expected:    "1700-2500",
		})
	}
}

func validateCatalog(cat *catalog.Catalog, r *Report) {
	if err := cat.Validate(); err != nil {
		r.AddError(Result{
			Level:    LevelSchema,
			Message:  fmt.Sprintf("catalog: %v", err),
			SpecPath: "catalog",
		})
		return
	}

	if total := cat.TotalFraction(); math.Abs(total-1.0) > 0.001 {
		r.AddWarning(Result{
			Level:       LevelSchema,
			Message:     fmt.Sprintf("catalog fractions sum to %.4f, not 1.0; quotas are normalized by the total", total),
			SpecPath:    "catalog.categories",
			ActualValue: total,
			Expected:    "1.0 (±0.001)",
		})
	}

	for i := range cat.Categories {
		c := &cat.Categories[i]
		for _, seed := range c.Seeds {
			if math.Abs(seed.X) > 2 || math.Abs(seed.Z) > 2 {
				r.AddWarning(Result{
					Level:       LevelSchema,
					Message:     fmt.Sprintf("category %q: seed %q at (%.2f, %.2f) is far outside the island disk", c.ID, seed.Name, seed.X, seed.Z),
					SpecPath:    fmt.Sprintf("catalog.categories[%d].seeds", i),
					ActualValue: fmt.Sprintf("(%.2f, %.2f)", seed.X, seed.Z),
					Expected:    "within [-2, 2] on both axes",
				})
			}
		}
	}
}
