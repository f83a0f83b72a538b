package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/RoyceNZ/lagom-map/internal/archive"
	"github.com/RoyceNZ/lagom-map/pkg/catalog"
	"github.com/RoyceNZ/lagom-map/pkg/engine"
	"github.com/RoyceNZ/lagom-map/pkg/scene"
	"github.com/RoyceNZ/lagom-map/pkg/snapshot"
	"github.com/RoyceNZ/lagom-map/pkg/validation"
	"github.com/RoyceNZ/lagom-map/pkg/worldspec"
)

// loadProject loads the world spec and its catalog, and runs schema
// validation.
func loadProject(projectPath string) (*worldspec.WorldSpec, *catalog.Catalog, *validation.Report, error) {
	spec, err := worldspec.LoadProject(projectPath)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("loading spec: %w", err)
	}

	cat := catalog.Default()
	if spec.CatalogPath != "" {
		if cat, err = catalog.Load(filepath.Join(projectPath, spec.CatalogPath)); err != nil {
			return nil, nil, nil, fmt.Errorf("loading catalog: %w", err)
		}
	}

	report := validation.ValidateSchema(spec, cat)
	return spec, cat, report, nil
}

func runValidate(projectPath string) error {
	_, _, report, err := loadProject(projectPath)
	if err != nil {
		return err
	}

	printValidationReport(report)

	if !report.Valid {
		os.Exit(1)
	}
	return nil
}

func runGenerate(projectPath, out, dbPath string, seed float64) error {
	spec, cat, report, err := loadProject(projectPath)
	if err != nil {
		return err
	}
	if !report.Valid {
		printValidationReport(report)
		return fmt.Errorf("spec has validation errors")
	}

	if seed != 0 {
		spec.Terrain.Seed = seed
	}
	if spec.Terrain.Seed == 0 {
		spec.Terrain.Seed = engine.SessionSeed()
	}

	res, err := engine.Generate(spec, cat)
	if err != nil {
		return err
	}

	printRunHeader(res)
	printCountsTable(res)
	if len(res.Report.Warnings) > 0 {
		fmt.Println()
		printValidationReport(res.Report)
	}

	if out != "" {
		doc := scene.Assemble(res, cat, spec.SpecVersion, time.Now())
		if err := snapshot.Write(out, doc); err != nil {
			return fmt.Errorf("writing snapshot: %w", err)
		}
		fmt.Printf("\nSnapshot written to %s\n", out)
	}

	if dbPath != "" {
		db, err := archive.Open(dbPath)
		if err != nil {
			return fmt.Errorf("opening archive: %w", err)
		}
		defer db.Close()
		id, err := db.RecordRun(context.Background(), res)
		if err != nil {
			return fmt.Errorf("recording run: %w", err)
		}
		fmt.Printf("Run #%d recorded in %s\n", id, dbPath)
	}

	return nil
}

func runStats(dbPath, snapshotPath string, limit int) error {
	if snapshotPath == "" && dbPath == "" {
		return fmt.Errorf("pass --db or --snapshot")
	}

	if snapshotPath != "" {
		doc, err := snapshot.Read(snapshotPath)
		if err != nil {
			return fmt.Errorf("reading snapshot: %w", err)
		}
		printSnapshotStats(doc)
		if dbPath == "" {
			return nil
		}
		fmt.Println()
	}

	db, err := archive.Open(dbPath)
	if err != nil {
		return fmt.Errorf("opening archive: %w", err)
	}
	defer db.Close()

	runs, err := db.RecentRuns(context.Background(), limit)
	if err != nil {
		return fmt.Errorf("querying runs: %w", err)
	}
	printRuns(runs)
	return nil
}
