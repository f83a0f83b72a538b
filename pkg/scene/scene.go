// Package scene assembles an engine result into the document the rendering
// layer consumes. The document is immutable for the lifetime of one
// frame-set; nothing here feeds back into the engine.
package scene

import (
	"time"

	"github.com/RoyceNZ/lagom-map/pkg/catalog"
	"github.com/RoyceNZ/lagom-map/pkg/engine"
	"github.com/RoyceNZ/lagom-map/pkg/grid"
)

// Metadata holds document-level information.
type Metadata struct {
	SpecVersion    string  `json:"spec_version"`
	GeneratedAt    string  `json:"generated_at"`
	Year           int     `json:"year"`
	Size           int     `json:"size"`
	Seed           float64 `json:"seed"`
	BlockClustered bool    `json:"block_clustered"`
}

// Count is one category's diagnostic row.
type Count struct {
	ID     catalog.ID `json:"id"`
	Target int        `json:"target"`
	Actual int        `json:"actual"`
	Delta  int        `json:"delta"`
}

// Document is the renderer-facing map: a palette of category ids and a
// size×size matrix of palette indices, rows ordered north to south
// (z ascending), columns west to east (x ascending).
type Document struct {
	Metadata Metadata `json:"metadata"`
	Palette  []string `json:"palette"`
	Tiles    [][]int  `json:"tiles"`
	Counts   []Count  `json:"counts"`
}

// Assemble builds the document from a result. The clustered map wins when
// present.
func Assemble(res *engine.Result, cat *catalog.Catalog, specVersion string, now time.Time) *Document {
	if cat == nil {
		cat = catalog.Default()
	}

	palette := make([]string, len(cat.Categories))
	index := make(map[catalog.ID]int, len(cat.Categories))
	for i := range cat.Categories {
		palette[i] = string(cat.Categories[i].ID)
		index[cat.Categories[i].ID] = i
	}

	final := res.Final()
	g := res.Grid
	tiles := make([][]int, g.Size)
	for zi := 0; zi < g.Size; zi++ {
		row := make([]int, g.Size)
		for xi := 0; xi < g.Size; xi++ {
			c := grid.Coord{X: xi - g.HalfSize, Z: zi - g.HalfSize}
			row[xi] = index[final[c]]
		}
		tiles[zi] = row
	}

	counts := make([]Count, 0, len(res.Counts))
	for _, row := range res.Counts {
		actual := row.Assigned
		if res.Clustered != nil {
			actual = row.Clustered
		}
		counts = append(counts, Count{
			ID:     row.ID,
			Target: row.Target,
			Actual: actual,
			Delta:  row.Delta,
		})
	}

	return &Document{
		Metadata: Metadata{
			SpecVersion:    specVersion,
			GeneratedAt:    now.UTC().Format(time.RFC3339),
			Year:           res.Year,
			Size:           g.Size,
			Seed:           res.Seed,
			BlockClustered: res.Clustered != nil,
		},
		Palette: palette,
		Tiles:   tiles,
		Counts:  counts,
	}
}
