package catalog

import "fmt"

// ID identifies a biome category.
type ID string

const (
	Saltwater       ID = "saltwater"
	Freshwater      ID = "freshwater"
	Glacier         ID = "glacier"
	Tundra          ID = "tundra"
	Boreal          ID = "boreal"
	TemperateForest ID = "temperate_forest"
	Rainforest      ID = "rainforest"
	Savanna         ID = "savanna"
	Grassland       ID = "grassland"
	Desert          ID = "desert"
	Scrub           ID = "scrub"
	Wetland         ID = "wetland"
	Mountain        ID = "mountain"
	Cropland        ID = "cropland"
)

// Seed is a cluster seed: a named location in island-normalized coordinates
// where the owning category naturally occurs. Positions are expressed as grid
// distance divided by the island radius, so the playable landmass sits roughly
// within the unit disk and open-ocean seeds sit outside it.
type Seed struct {
	Name   string  `yaml:"name" json:"name"`
	X      float64 `yaml:"x" json:"x"`
	Z      float64 `yaml:"z" json:"z"`
	Radius float64 `yaml:"radius" json:"radius"`
}

// Category is one biome classification with its share of Earth's surface.
type Category struct {
	ID ID `yaml:"id" json:"id"`

	// AreaFraction is the category's fraction of Earth's total surface area,
	// given to 4 decimal places. Fractions across the catalog sum to 1.0000.
	AreaFraction float64 `yaml:"area_fraction" json:"area_fraction"`

	Water bool `yaml:"water,omitempty" json:"water,omitempty"`

	// Fallbacks lists substitute categories in decreasing similarity, walked
	// when this category's quota is exhausted.
	Fallbacks []ID `yaml:"fallbacks,omitempty" json:"fallbacks,omitempty"`

	// Quadrant is the favored island quadrant as coordinate signs (x, z);
	// 0 means no preference on that axis. Positive z is south.
	Quadrant [2]int `yaml:"quadrant,omitempty" json:"quadrant,omitempty"`

	Seeds []Seed `yaml:"seeds,omitempty" json:"seeds,omitempty"`
}

// Catalog is the immutable biome category table, defined once per run.
// Declaration order is the deterministic iteration order everywhere.
type Catalog struct {
	Categories []Category `yaml:"categories" json:"categories"`

	// OverflowID absorbs quota rounding residual and backfills unpacked cells.
	OverflowID ID `yaml:"overflow" json:"overflow"`

	// DefaultID is returned when no cluster seed claims a tile and is the
	// terminal fallback when every other resolution step fails.
	DefaultID ID `yaml:"default" json:"default"`

	index map[ID]int
}

// ByID returns the category with the given id, or nil if not present.
func (c *Catalog) ByID(id ID) *Category {
	if c.index == nil {
		c.buildIndex()
	}
	i, ok := c.index[id]
	if !ok {
		return nil
	}
	return &c.Categories[i]
}

// Overflow returns the residual-absorbing category.
func (c *Catalog) Overflow() *Category { return c.ByID(c.OverflowID) }

// Default returns the default/terminal-fallback category.
func (c *Catalog) Default() *Category { return c.ByID(c.DefaultID) }

// TotalFraction sums the area fractions of all categories.
func (c *Catalog) TotalFraction() float64 {
	total := 0.0
	for i := range c.Categories {
		total += c.Categories[i].AreaFraction
	}
	return total
}

// WaterFraction sums the area fractions of the water categories.
func (c *Catalog) WaterFraction() float64 {
	total := 0.0
	for i := range c.Categories {
		if c.Categories[i].Water {
			total += c.Categories[i].AreaFraction
		}
	}
	return total
}

func (c *Catalog) buildIndex() {
	c.index = make(map[ID]int, len(c.Categories))
	for i := range c.Categories {
		c.index[c.Categories[i].ID] = i
	}
}

// Validate checks the structural invariants the engine depends on: unique
// ids, a positive fraction total, resolvable fallback references, and the
// overflow/default categories being present.
func (c *Catalog) Validate() error {
	if len(c.Categories) == 0 {
		return fmt.Errorf("catalog has no categories")
	}

	seen := make(map[ID]bool, len(c.Categories))
	for i := range c.Categories {
		cat := &c.Categories[i]
		if cat.ID == "" {
			return fmt.Errorf("categories[%d]: empty id", i)
		}
		if seen[cat.ID] {
			return fmt.Errorf("duplicate category id %q", cat.ID)
		}
		seen[cat.ID] = true
		if cat.AreaFraction < 0 {
			return fmt.Errorf("category %q: negative area_fraction %v", cat.ID, cat.AreaFraction)
		}
		for _, q := range cat.Quadrant {
			if q < -1 || q > 1 {
				return fmt.Errorf("category %q: quadrant signs must be -1, 0 or 1", cat.ID)
			}
		}
		for _, s := range cat.Seeds {
			if s.Radius <= 0 {
				return fmt.Errorf("category %q: seed %q has non-positive radius", cat.ID, s.Name)
			}
		}
	}

	if c.TotalFraction() <= 0 {
		return fmt.Errorf("category fractions sum to %v, want > 0", c.TotalFraction())
	}

	for i := range c.Categories {
		for _, fb := range c.Categories[i].Fallbacks {
			if !seen[fb] {
				return fmt.Errorf("category %q: unknown fallback %q", c.Categories[i].ID, fb)
			}
		}
	}

	if !seen[c.OverflowID] {
		return fmt.Errorf("overflow category %q is not in the table", c.OverflowID)
	}
	if !seen[c.DefaultID] {
		return fmt.Errorf("default category %q is not in the table", c.DefaultID)
	}
	return nil
}
