package validation

import (
	"testing"

	"github.com/RoyceNZ/lagom-map/pkg/catalog"
	"github.com/RoyceNZ/lagom-map/pkg/worldspec"
)

func validSpec() *worldspec.WorldSpec {
	s := &worldspec.WorldSpec{
		Year: 2026,
		Grid: worldspec.GridDef{Mode: worldspec.ModePopulation},
	}
	s.ApplyDefaults()
	return s
}

func TestValidateSchemaDefaultsPass(t *testing.T) {
	r := ValidateSchema(validSpec(), catalog.Default())
	if !r.Valid {
		t.Fatalf("default spec invalid: %+v", r.Errors)
	}
	if len(r.Warnings) != 0 {
		t.Errorf("unexpected warnings: %+v", r.Warnings)
	}
}

func TestValidateSchemaUnknownMode(t *testing.T) {
	s := validSpec()
	s.Grid.Mode = "hexagonal"
	r := ValidateSchema(s, catalog.Default())
	if r.Valid {
		t.Error("unknown mode passed validation")
	}
	if len(r.Errors) != 1 || r.Errors[0].SpecPath != "grid.mode" {
		t.Errorf("errors = %+v", r.Errors)
	}
}

func TestValidateSchemaFixedSize(t *testing.T) {
	s := validSpec()
	s.Grid.Mode = worldspec.ModeFixed

	s.Grid.Size = 0
	if r := ValidateSchema(s, catalog.Default()); r.Valid {
		t.Error("zero fixed size passed validation")
	}

	s.Grid.Size = 9000
	r := ValidateSchema(s, catalog.Default())
	if !r.Valid {
		t.Error("oversized grid should warn, not error")
	}
	if len(r.Warnings) != 1 {
		t.Errorf("warnings = %+v, want one clamp warning", r.Warnings)
	}

	s.Grid.Size = 100
	r = ValidateSchema(s, catalog.Default())
	if !r.Valid || len(r.Info) != 1 {
		t.Errorf("even size: valid=%v info=%+v, want valid with one note", r.Valid, r.Info)
	}
}

func TestValidateSchemaWaterFraction(t *testing.T) {
	for _, f := range []float64{0, 1, -0.2, 1.5} {
		s := validSpec()
		s.Water.Fraction = f
		if r := ValidateSchema(s, catalog.Default()); r.Valid {
			t.Errorf("water fraction %v passed validation", f)
		}
	}
}

func TestValidateSchemaYearRange(t *testing.T) {
	s := validSpec()
	s.Year = 1500
	r := ValidateSchema(s, catalog.Default())
	if !r.Valid {
		t.Error("out-of-range year should warn, not error")
	}
	if len(r.Warnings) != 1 || r.Warnings[0].SpecPath != "year" {
		t.Errorf("warnings = %+v", r.Warnings)
	}
}

func TestValidateSchemaBrokenCatalog(t *testing.T) {
	cat := &catalog.Catalog{
		OverflowID: "ghost",
		DefaultID:  "a",
		Categories: []catalog.Category{{ID: "a", AreaFraction: 1.0}},
	}
	if r := ValidateSchema(validSpec(), cat); r.Valid {
		t.Error("catalog with missing overflow passed validation")
	}
}

func TestValidateSchemaFarSeedWarns(t *testing.T) {
	cat := &catalog.Catalog{
		OverflowID: "a",
		DefaultID:  "a",
		Categories: []catalog.Category{
			{ID: "a", AreaFraction: 1.0, Seeds: []catalog.Seed{
				{Name: "lost", X: 5.0, Z: 0, Radius: 0.3},
			}},
		},
	}
	r := ValidateSchema(validSpec(), cat)
	if !r.Valid {
		t.Error("far seed should warn, not error")
	}
	if len(r.Warnings) != 1 {
		t.Errorf("warnings = %+v, want one far-seed warning", r.Warnings)
	}
}

func TestReportAddAndSummary(t *testing.T) {
	r := NewReport()
	if !r.Valid {
		t.Fatal("new report not valid")
	}
	r.AddWarning(Result{Level: LevelSpatial, Message: "w"})
	if !r.Valid {
		t.Error("warning flipped validity")
	}
	r.AddInfo(Result{Level: LevelSchema, Message: "i"})
	r.AddError(Result{Level: LevelSchema, Message: "e"})
	if r.Valid {
		t.Error("error did not flip validity")
	}
	if r.Summary != "1 errors, 1 warnings, 1 info" {
		t.Errorf("summary = %q", r.Summary)
	}
	if r.Errors[0].Severity != SeverityError || r.Warnings[0].Severity != SeverityWarning {
		t.Error("severities not stamped on add")
	}
}

func TestReportMerge(t *testing.T) {
	a := NewReport()
	a.AddWarning(Result{Level: LevelSchema, Message: "w"})

	b := NewReport()
	b.AddError(Result{Level: LevelSpatial, Message: "e"})

	a.Merge(b)
	if a.Valid {
		t.Error("merging an invalid report kept validity")
	}
	if len(a.Errors) != 1 || len(a.Warnings) != 1 {
		t.Errorf("merged report has %d errors, %d warnings", len(a.Errors), len(a.Warnings))
	}
}
