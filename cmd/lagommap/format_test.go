package main

import (
	"io"
	"os"
	"strings"
	"testing"

	"github.com/RoyceNZ/lagom-map/pkg/assign"
	"github.com/RoyceNZ/lagom-map/pkg/engine"
	"github.com/RoyceNZ/lagom-map/pkg/grid"
	"github.com/RoyceNZ/lagom-map/pkg/scene"
)

func captureStdout(t *testing.T, fn func()) string {
	t.Helper()
	old := os.Stdout
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatal(err)
	}
	os.Stdout = w
	fn()
	w.Close()
	os.Stdout = old
	out, err := io.ReadAll(r)
	if err != nil {
		t.Fatal(err)
	}
	return string(out)
}

func sampleCounts() []engine.CountRow {
	return []engine.CountRow{
		{ID: "desert", Target: 100, Assigned: 97, Delta: -3},
		{ID: "scrub", Target: 40, Assigned: 43, Delta: 3},
		{ID: "saltwater", Target: 1000, Assigned: 1000, Delta: 0},
	}
}

func TestPrintCountsTableSignedDeltas(t *testing.T) {
	res := &engine.Result{Grid: grid.New(51), Counts: sampleCounts()}
	out := captureStdout(t, func() { printCountsTable(res) })

	if strings.Contains(out, "%!") {
		t.Fatalf("output contains a broken format verb:\n%s", out)
	}
	if !strings.Contains(out, "      -3") {
		t.Errorf("negative delta not right-aligned signed:\n%s", out)
	}
	if !strings.Contains(out, "      +3") {
		t.Errorf("positive delta missing explicit sign:\n%s", out)
	}
}

func TestPrintCountsTableClusteredColumns(t *testing.T) {
	res := &engine.Result{Grid: grid.New(51), Counts: sampleCounts(), Clustered: assign.Map{}}
	for i := range res.Counts {
		res.Counts[i].Clustered = res.Counts[i].Assigned
	}
	out := captureStdout(t, func() { printCountsTable(res) })

	if strings.Contains(out, "%!") {
		t.Fatalf("output contains a broken format verb:\n%s", out)
	}
	if !strings.Contains(out, "Clustered") {
		t.Errorf("clustered header missing:\n%s", out)
	}
	if !strings.Contains(out, "      -3") || !strings.Contains(out, "      +3") {
		t.Errorf("deltas not signed in clustered table:\n%s", out)
	}
}

func TestPrintSnapshotStatsSignedDeltas(t *testing.T) {
	doc := &scene.Document{
		Metadata: scene.Metadata{Year: 2026, Size: 51, Seed: 42.5},
		Counts: []scene.Count{
			{ID: "desert", Target: 100, Actual: 97, Delta: -3},
		},
	}
	out := captureStdout(t, func() { printSnapshotStats(doc) })

	if strings.Contains(out, "%!") {
		t.Fatalf("output contains a broken format verb:\n%s", out)
	}
	if !strings.Contains(out, "      -3") {
		t.Errorf("snapshot delta not signed:\n%s", out)
	}
}
