package ui

import (
	"errors"
	"testing"

	"github.com/piwi3910/sheathcalc/internal/engine"
	"github.com/piwi3910/sheathcalc/internal/model"
)

func referenceEstimate(t *testing.T) model.Estimate {
	t.Helper()
	b, att, err := model.DefaultInputs().Build()
	if err != nil {
		t.Fatalf("Build returned error: %v", err)
	}
	est, err := engine.Estimate(b, att)
	if err != nil {
		t.Fatalf("Estimate returned error: %v", err)
	}
	return est
}

func TestSectionRows(t *testing.T) {
	rows := sectionRows(referenceEstimate(t))

	// header, four sections, total
	if len(rows) != 6 {
		t.Fatalf("expected 6 rows, got %d", len(rows))
	}
	if rows[0][0] != "Section" {
		t.Errorf("expected header row, got %v", rows[0])
	}
	gable := rows[3]
	if gable[0] != model.SectionGableTriangles || gable[1] != "20" {
		t.Errorf("unexpected gable row %v", gable)
	}
	if gable[2] != "11.0, 12.0, 13.0, 14.0, 15.0, 15.0, 14.0, 13.0, 12.0, 11.0" {
		t.Errorf("unexpected gable lengths %q", gable[2])
	}
	total := rows[5]
	if total[0] != "Total" || total[1] != "98" {
		t.Errorf("unexpected total row %v", total)
	}
}

func TestCutListRows(t *testing.T) {
	rows := cutListRows(referenceEstimate(t))
	if len(rows) != 9 {
		t.Fatalf("expected header plus 8 items, got %d", len(rows))
	}
	last := rows[len(rows)-1]
	if last[0] != model.SectionRoof || last[1] != `17' 6"` || last[2] != "30" {
		t.Errorf("unexpected roof row %v", last)
	}
}

func TestCompareRows(t *testing.T) {
	results := []engine.ComparisonResult{
		{Name: "36 in sheets (current)", TotalSheets: 98, TotalLinearFeet: 1200},
		{Name: "48 in sheets", TotalSheets: 74, TotalLinearFeet: 900},
		{Name: "0 in sheets", Err: errors.New("invalid sheet width")},
	}
	rows := compareRows(results)
	if len(rows) != 4 {
		t.Fatalf("expected 4 rows, got %d", len(rows))
	}
	if rows[2][3] != "fewest sheets" {
		t.Errorf("expected 48 in row marked, got %v", rows[2])
	}
	if rows[1][3] != "" {
		t.Errorf("36 in row should not be marked, got %v", rows[1])
	}
	if rows[3][1] != "-" || rows[3][3] != "invalid sheet width" {
		t.Errorf("unexpected error row %v", rows[3])
	}
}
