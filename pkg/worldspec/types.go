package worldspec

// WorldSpec is the top-level specification for one generated world.
type WorldSpec struct {
	SpecVersion string     `yaml:"spec_version" json:"spec_version"`
	Year        int        `yaml:"year" json:"year"`
	Grid        GridDef    `yaml:"grid" json:"grid"`
	Terrain     TerrainDef `yaml:"terrain" json:"terrain"`
	Water       WaterDef   `yaml:"water" json:"water"`

	// CatalogPath optionally points at a biome catalog override, relative
	// to the project directory. Empty means the built-in catalog.
	CatalogPath string `yaml:"catalog,omitempty" json:"catalog,omitempty"`
}

// GridDef selects how the grid edge is chosen.
type GridDef struct {
	// Mode is "population" (edge derived from the year's population
	// estimate) or "fixed" (edge given explicitly).
	Mode string `yaml:"mode" json:"mode"`

	// Size is the requested edge length in fixed mode. It is clamped to
	// [50, 500] and forced odd.
	Size int `yaml:"size,omitempty" json:"size,omitempty"`
}

// TerrainDef carries the reproducibility and clustering knobs.
type TerrainDef struct {
	// Seed feeds every seeded-field draw. Zero means the caller picks a
	// per-session pseudo-random seed.
	Seed float64 `yaml:"seed,omitempty" json:"seed,omitempty"`

	// BlockClustering enables the square-block packing pass.
	BlockClustering bool `yaml:"block_clustering" json:"block_clustering"`
}

// WaterDef sets the global water budget for the clamp step.
type WaterDef struct {
	// Fraction of all tiles that should be water, applied only in
	// population mode. Earth's share is 0.709.
	Fraction float64 `yaml:"fraction" json:"fraction"`
}

const (
	ModePopulation = "population"
	ModeFixed      = "fixed"

	// DefaultWaterFraction is Earth's water share of total surface area.
	DefaultWaterFraction = 0.709

	defaultYear = 2026
)

// ApplyDefaults fills unset fields with their conventional values.
func (s *WorldSpec) ApplyDefaults() {
	if s.SpecVersion == "" {
		s.SpecVersion = "0.1.0"
	}
	if s.Year == 0 {
		s.Year = defaultYear
	}
	if s.Grid.Mode == "" {
		s.Grid.Mode = ModePopulation
	}
	if s.Water.Fraction == 0 {
		s.Water.Fraction = DefaultWaterFraction
	}
}
