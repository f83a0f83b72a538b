package archive

import (
	"context"
	"encoding/json"
	"path/filepath"
	"testing"
	"time"

	"github.com/RoyceNZ/lagom-map/pkg/engine"
	"github.com/RoyceNZ/lagom-map/pkg/grid"
	"github.com/RoyceNZ/lagom-map/pkg/validation"
)

func sampleResult() *engine.Result {
	return &engine.Result{
		Grid:   grid.New(51),
		Year:   2026,
		Seed:   7.25,
		Report: validation.NewReport(),
		Counts: []engine.CountRow{
			{ID: "desert", Target: 104, Assigned: 104, Delta: 0},
			{ID: "saltwater", Target: 1730, Assigned: 1733, Delta: 3},
		},
		Elapsed: 5 * time.Millisecond,
	}
}

func openTemp(t *testing.T) *DB {
	t.Helper()
	db, err := Open(filepath.Join(t.TempDir(), "runs.db"))
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

func TestRecordAndRecentRuns(t *testing.T) {
	db := openTemp(t)
	ctx := context.Background()

	id, err := db.RecordRun(ctx, sampleResult())
	if err != nil {
		t.Fatal(err)
	}
	if id <= 0 {
		t.Errorf("run id = %d, want positive", id)
	}

	runs, err := db.RecentRuns(ctx, 10)
	if err != nil {
		t.Fatal(err)
	}
	if len(runs) != 1 {
		t.Fatalf("got %d runs, want 1", len(runs))
	}
	r := runs[0]
	if r.Year != 2026 || r.Size != 51 || r.Seed != 7.25 {
		t.Errorf("run = %+v", r)
	}
	if r.Tiles != 51*51 {
		t.Errorf("tiles = %d, want %d", r.Tiles, 51*51)
	}
	if r.BlockClustered {
		t.Error("run marked clustered without a clustered map")
	}

	// Only non-zero deltas are stored.
	var deltas map[string]int
	if err := json.Unmarshal([]byte(r.Deltas), &deltas); err != nil {
		t.Fatalf("deltas not JSON: %v", err)
	}
	if len(deltas) != 1 || deltas["saltwater"] != 3 {
		t.Errorf("deltas = %v, want saltwater:3 only", deltas)
	}
}

func TestRecentRunsNewestFirst(t *testing.T) {
	db := openTemp(t)
	ctx := context.Background()

	for year := 2024; year <= 2026; year++ {
		res := sampleResult()
		res.Year = year
		if _, err := db.RecordRun(ctx, res); err != nil {
			t.Fatal(err)
		}
	}

	runs, err := db.RecentRuns(ctx, 2)
	if err != nil {
		t.Fatal(err)
	}
	if len(runs) != 2 {
		t.Fatalf("got %d runs, want 2", len(runs))
	}
	if runs[0].Year != 2026 || runs[1].Year != 2025 {
		t.Errorf("order = [%d, %d], want newest first", runs[0].Year, runs[1].Year)
	}
}

func TestOpenRejectsEmptyPath(t *testing.T) {
	if _, err := Open(""); err == nil {
		t.Error("expected error for empty path")
	}
}

func TestOpenReopensExisting(t *testing.T) {
	path := filepath.Join(t.TempDir(), "runs.db")
	db, err := Open(path)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := db.RecordRun(context.Background(), sampleResult()); err != nil {
		t.Fatal(err)
	}
	db.Close()

	db2, err := Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer db2.Close()
	runs, err := db2.RecentRuns(context.Background(), 10)
	if err != nil {
		t.Fatal(err)
	}
	if len(runs) != 1 {
		t.Errorf("reopened archive has %d runs, want 1", len(runs))
	}
}
