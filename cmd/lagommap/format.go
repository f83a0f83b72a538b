package main

import (
	"fmt"

	"github.com/RoyceNZ/lagom-map/internal/archive"
	"github.com/RoyceNZ/lagom-map/pkg/engine"
	"github.com/RoyceNZ/lagom-map/pkg/scene"
	"github.com/RoyceNZ/lagom-map/pkg/validation"
)

func printValidationReport(r *validation.Report) {
	if len(r.Errors) > 0 {
		fmt.Printf("ERRORS (%d):\n", len(r.Errors))
		for _, e := range r.Errors {
			fmt.Printf("  [%s] %s\n", e.Level, e.Message)
			if e.SpecPath != "" {
				fmt.Printf("    -> %s = %v\n", e.SpecPath, e.ActualValue)
			}
			if e.Expected != "" {
				fmt.Printf("    expected: %s\n", e.Expected)
			}
			for _, s := range e.Suggestions {
				fmt.Printf("    * %s\n", s)
			}
		}
		fmt.Println()
	}

	if len(r.Warnings) > 0 {
		fmt.Printf("WARNINGS (%d):\n", len(r.Warnings))
		for _, w := range r.Warnings {
			fmt.Printf("  [%s] %s\n", w.Level, w.Message)
			if w.SpecPath != "" {
				fmt.Printf("    -> %s = %v\n", w.SpecPath, w.ActualValue)
			}
			if w.Expected != "" {
				fmt.Printf("    expected: %s\n", w.Expected)
			}
			for _, s := range w.Suggestions {
				fmt.Printf("    * %s\n", s)
			}
		}
		fmt.Println()
	}

	if len(r.Info) > 0 {
		fmt.Printf("INFO (%d):\n", len(r.Info))
		for _, i := range r.Info {
			fmt.Printf("  [%s] %s\n", i.Level, i.Message)
		}
		fmt.Println()
	}

	if r.Valid {
		fmt.Printf("Result: VALID (%s)\n", r.Summary)
	} else {
		fmt.Printf("Result: INVALID (%s)\n", r.Summary)
	}
}

func printRunHeader(res *engine.Result) {
	fmt.Println("Biome Map Generation")
	fmt.Println("====================")
	fmt.Printf("  Year:  %d\n", res.Year)
	fmt.Printf("  Grid:  %dx%d (%d tiles)\n", res.Grid.Size, res.Grid.Size, res.Grid.Tiles())
	fmt.Printf("  Seed:  %v\n", res.Seed)
	if res.Clustered != nil {
		fmt.Println("  Block clustering: on")
	}
	fmt.Printf("  Elapsed: %s\n", res.Elapsed)
	fmt.Println()
}

func printCountsTable(res *engine.Result) {
	clustered := res.Clustered != nil

	if clustered {
		fmt.Printf("%-18s %10s %10s %10s %8s\n", "Category", "Target", "Assigned", "Clustered", "Delta")
		fmt.Printf("%-18s %10s %10s %10s %8s\n", "------------------", "----------", "----------", "----------", "--------")
	} else {
		fmt.Printf("%-18s %10s %10s %8s\n", "Category", "Target", "Assigned", "Delta")
		fmt.Printf("%-18s %10s %10s %8s\n", "------------------", "----------", "----------", "--------")
	}

	totalTarget, totalActual := 0, 0
	for _, row := range res.Counts {
		if clustered {
			fmt.Printf("%-18s %10d %10d %10d %+8d\n", row.ID, row.Target, row.Assigned, row.Clustered, row.Delta)
			totalActual += row.Clustered
		} else {
			fmt.Printf("%-18s %10d %10d %+8d\n", row.ID, row.Target, row.Assigned, row.Delta)
			totalActual += row.Assigned
		}
		totalTarget += row.Target
	}

	if clustered {
		fmt.Printf("%-18s %10d %21d\n", "TOTAL", totalTarget, totalActual)
	} else {
		fmt.Printf("%-18s %10d %10d\n", "TOTAL", totalTarget, totalActual)
	}
}

func printSnapshotStats(doc *scene.Document) {
	fmt.Println("Snapshot")
	fmt.Println("--------")
	fmt.Printf("  Generated: %s\n", doc.Metadata.GeneratedAt)
	fmt.Printf("  Year:      %d\n", doc.Metadata.Year)
	fmt.Printf("  Grid:      %dx%d\n", doc.Metadata.Size, doc.Metadata.Size)
	fmt.Printf("  Seed:      %v\n", doc.Metadata.Seed)
	fmt.Printf("  Clustered: %v\n", doc.Metadata.BlockClustered)
	fmt.Println()
	fmt.Printf("%-18s %10s %10s %8s\n", "Category", "Target", "Actual", "Delta")
	for _, c := range doc.Counts {
		fmt.Printf("%-18s %10d %10d %+8d\n", c.ID, c.Target, c.Actual, c.Delta)
	}
}

func printRuns(runs []archive.Run) {
	if len(runs) == 0 {
		fmt.Println("No archived runs.")
		return
	}
	fmt.Printf("%-5s %-22s %6s %6s %10s %10s %9s %8s\n",
		"ID", "Created", "Year", "Size", "Seed", "Warnings", "Duration", "Deltas")
	for _, r := range runs {
		fmt.Printf("%-5d %-22s %6d %6d %10.3f %10d %7dms %8s\n",
			r.ID, r.CreatedAt.Format("2006-01-02 15:04:05"), r.Year, r.Size,
			r.Seed, r.Warnings, r.DurationMS, r.Deltas)
	}
}
