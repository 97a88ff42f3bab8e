package export

import (
	"path/filepath"
	"testing"

	"github.com/piwi3910/sheathcalc/internal/model"
	"github.com/xuri/excelize/v2"
)

func TestExportXLSX_Sheets(t *testing.T) {
	path := filepath.Join(t.TempDir(), "estimate.xlsx")
	r := buildTestReport(t, model.DefaultInputs())

	if err := ExportXLSX(path, r); err != nil {
		t.Fatalf("ExportXLSX returned error: %v", err)
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		t.Fatalf("cannot open workbook: %v", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) != 2 || sheets[0] != summarySheet || sheets[1] != cutListSheet {
		t.Fatalf("unexpected sheets: %v", sheets)
	}

	rows, err := f.GetRows(summarySheet)
	if err != nil {
		t.Fatalf("cannot read summary: %v", err)
	}
	if rows[0][1] != r.ID {
		t.Errorf("expected report ID %q, got %q", r.ID, rows[0][1])
	}

	var sections, total []string
	for _, row := range rows {
		if len(row) < 2 {
			continue
		}
		switch row[0] {
		case model.SectionRoof:
			sections = row
		case "Total":
			total = row
		}
	}
	if sections == nil || sections[1] != "30" || sections[2] != "17.5" {
		t.Errorf("unexpected roof row: %v", sections)
	}
	if total == nil || total[1] != "98" {
		t.Errorf("unexpected total row: %v", total)
	}

	cut, err := f.GetRows(cutListSheet)
	if err != nil {
		t.Fatalf("cannot read cut list: %v", err)
	}
	if len(cut) != 1+len(CutList(r.Estimate)) {
		t.Errorf("expected header plus %d items, got %d rows", len(CutList(r.Estimate)), len(cut))
	}
	if cut[0][0] != "Section" || cut[0][3] != "Quantity" {
		t.Errorf("unexpected cut list header: %v", cut[0])
	}
}

func TestExportXLSX_NoSections(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.xlsx")
	if err := ExportXLSX(path, Report{}); err == nil {
		t.Error("expected error for empty estimate")
	}
}

func TestFeetInches(t *testing.T) {
	tests := []struct {
		feet float64
		want string
	}{
		{10, `10' 0"`},
		{17.5, `17' 6"`},
		{11.25, `11' 3"`},
		{0, `0' 0"`},
	}
	for _, tt := range tests {
		if got := FeetInches(tt.feet); got != tt.want {
			t.Errorf("FeetInches(%g) = %q, want %q", tt.feet, got, tt.want)
		}
	}
}
