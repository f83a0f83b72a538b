package catalog

// Default returns the canonical 14-category table. Fractions are Earth
// surface shares to 4 decimal places: 70.9% water (66.5% ocean, 4.4% lakes
// and rivers) and 29.1% land split across twelve land classes. The table
// sums to exactly 1.0000.
//
// Seed positions lay out a single island: polar categories to the north
// (negative z), arid categories east, rainforest in the southeast. Open
// ocean is claimed by a ring of seeds outside the unit disk.
func Default() *Catalog {
	return &Catalog{
		OverflowID: Saltwater,
		DefaultID:  Scrub,
		Categories: []Category{
			{
				ID:           Saltwater,
				AreaFraction: 0.6650,
				Water:        true,
				Fallbacks:    []ID{Freshwater, Wetland},
				Seeds: []Seed{
					{Name: "north_ocean", X: 0, Z: -1.55, Radius: 0.95},
					{Name: "south_ocean", X: 0, Z: 1.55, Radius: 0.95},
					{Name: "east_ocean", X: 1.55, Z: 0, Radius: 0.95},
					{Name: "west_ocean", X: -1.55, Z: 0, Radius: 0.95},
					{Name: "northeast_ocean", X: 1.25, Z: -1.25, Radius: 0.85},
					{Name: "northwest_ocean", X: -1.25, Z: -1.25, Radius: 0.85},
					{Name: "southeast_ocean", X: 1.25, Z: 1.25, Radius: 0.85},
					{Name: "southwest_ocean", X: -1.25, Z: 1.25, Radius: 0.85},
				},
			},
			{
				ID:           Freshwater,
				AreaFraction: 0.0440,
				Water:        true,
				Fallbacks:    []ID{Wetland, Saltwater},
				Seeds: []Seed{
					{Name: "central_lake", X: 0.05, Z: 0.35, Radius: 0.20},
					{Name: "north_lake", X: -0.35, Z: -0.35, Radius: 0.16},
				},
			},
			{
				ID:           Glacier,
				AreaFraction: 0.0310,
				Fallbacks:    []ID{Tundra, Mountain},
				Quadrant:     [2]int{0, -1},
				Seeds: []Seed{
					{Name: "ice_cap", X: 0, Z: -1.05, Radius: 0.45},
				},
			},
			{
				ID:           Tundra,
				AreaFraction: 0.0170,
				Fallbacks:    []ID{Glacier, Boreal, Mountain},
				Quadrant:     [2]int{0, -1},
				Seeds: []Seed{
					{Name: "tundra_shelf", X: 0.25, Z: -0.85, Radius: 0.48},
				},
			},
			{
				ID:           Boreal,
				AreaFraction: 0.0300,
				Fallbacks:    []ID{Tundra, TemperateForest},
				Quadrant:     [2]int{-1, -1},
				Seeds: []Seed{
					{Name: "taiga_belt", X: -0.30, Z: -0.60, Radius: 0.52},
				},
			},
			{
				ID:           TemperateForest,
				AreaFraction: 0.0210,
				Fallbacks:    []ID{Boreal, Cropland, Grassland},
				Quadrant:     [2]int{-1, 0},
				Seeds: []Seed{
					{Name: "west_woods", X: -0.55, Z: -0.10, Radius: 0.46},
				},
			},
			{
				ID:           Rainforest,
				AreaFraction: 0.0310,
				Fallbacks:    []ID{Wetland, TemperateForest, Savanna},
				Quadrant:     [2]int{1, 1},
				Seeds: []Seed{
					{Name: "jungle_basin", X: 0.65, Z: 0.80, Radius: 0.50},
				},
			},
			{
				ID:           Savanna,
				AreaFraction: 0.0300,
				Fallbacks:    []ID{Grassland, Scrub, Desert},
				Quadrant:     [2]int{1, 1},
				Seeds: []Seed{
					{Name: "savanna_plain", X: 0.35, Z: 0.55, Radius: 0.42},
				},
			},
			{
				ID:           Grassland,
				AreaFraction: 0.0240,
				Fallbacks:    []ID{Savanna, Cropland, Scrub},
				Seeds: []Seed{
					{Name: "steppe", X: 0.45, Z: -0.20, Radius: 0.42},
				},
			},
			{
				ID:           Desert,
				AreaFraction: 0.0400,
				Fallbacks:    []ID{Scrub, Savanna, Mountain},
				Quadrant:     [2]int{1, 0},
				Seeds: []Seed{
					{Name: "east_erg", X: 0.70, Z: 0.15, Radius: 0.48},
				},
			},
			{
				ID:           Scrub,
				AreaFraction: 0.0180,
				Fallbacks:    []ID{Grassland, Desert, Savanna},
				Seeds: []Seed{
					{Name: "maquis", X: -0.75, Z: 0.35, Radius: 0.30},
				},
			},
			{
				ID:           Wetland,
				AreaFraction: 0.0060,
				Fallbacks:    []ID{Freshwater, Rainforest, Grassland},
				Quadrant:     [2]int{-1, 1},
				Seeds: []Seed{
					{Name: "delta_marsh", X: -0.50, Z: 0.55, Radius: 0.32},
				},
			},
			{
				ID:           Mountain,
				AreaFraction: 0.0190,
				Fallbacks:    []ID{Tundra, Scrub, Glacier},
				Seeds: []Seed{
					{Name: "central_ridge", X: 0.10, Z: -0.25, Radius: 0.32},
				},
			},
			{
				ID:           Cropland,
				AreaFraction: 0.0240,
				Fallbacks:    []ID{Grassland, TemperateForest, Scrub},
				Seeds: []Seed{
					{Name: "farm_belt", X: -0.20, Z: 0.25, Radius: 0.38},
				},
			},
		},
	}
}
