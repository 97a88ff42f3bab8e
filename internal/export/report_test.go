package export

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/piwi3910/sheathcalc/internal/engine"
	"github.com/piwi3910/sheathcalc/internal/model"
)

// buildTestReport estimates the given inputs and wraps them in a report.
func buildTestReport(t *testing.T, in model.Inputs) Report {
	t.Helper()
	b, att, err := in.Build()
	if err != nil {
		t.Fatalf("Build returned error: %v", err)
	}
	est, err := engine.Estimate(b, att)
	if err != nil {
		t.Fatalf("Estimate returned error: %v", err)
	}
	return NewReport(in, est)
}

func shedInputs() model.Inputs {
	in := model.DefaultInputs()
	in.Attachment = model.AttachmentShed
	in.ShedWidth = 12
	in.ShedDepth = 20
	in.ShedPitch = 3
	in.ShedWallHeight = 8
	return in
}

func TestNewReport(t *testing.T) {
	r := buildTestReport(t, model.DefaultInputs())

	if len(r.ID) != 8 {
		t.Errorf("expected 8 character ID, got %q", r.ID)
	}
	if r.CreatedAt == "" || !strings.HasSuffix(r.CreatedAt, "Z") {
		t.Errorf("expected UTC timestamp, got %q", r.CreatedAt)
	}

	other := buildTestReport(t, model.DefaultInputs())
	if other.ID == r.ID {
		t.Errorf("expected distinct report IDs, both were %q", r.ID)
	}
}

func TestBuildingLabel(t *testing.T) {
	got := BuildingLabel(model.DefaultInputs())
	want := "40 x 30 x 10 ft, 4/12 pitch, 16 in overhang"
	if got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
}

func TestSummary(t *testing.T) {
	r := buildTestReport(t, model.DefaultInputs())
	s := Summary(r)

	if s.ID != r.ID {
		t.Errorf("expected ID %q, got %q", r.ID, s.ID)
	}
	if s.TotalSheets != 98 {
		t.Errorf("expected 98 sheets, got %d", s.TotalSheets)
	}
	if s.SheetWidth != 36 {
		t.Errorf("expected sheet width 36, got %g", s.SheetWidth)
	}
	want := map[string]int{
		model.SectionEaveWalls:      28,
		model.SectionGableWalls:     20,
		model.SectionGableTriangles: 20,
		model.SectionRoof:           30,
	}
	if len(s.Sections) != len(want) {
		t.Fatalf("expected %d sections, got %v", len(want), s.Sections)
	}
	for name, count := range want {
		if s.Sections[name] != count {
			t.Errorf("%s: expected %d, got %d", name, count, s.Sections[name])
		}
	}
}

func TestWriteJSON(t *testing.T) {
	r := buildTestReport(t, shedInputs())

	data, err := WriteJSON(r)
	if err != nil {
		t.Fatalf("WriteJSON returned error: %v", err)
	}

	var decoded Report
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if decoded.ID != r.ID {
		t.Errorf("expected ID %q, got %q", r.ID, decoded.ID)
	}
	if decoded.Inputs != r.Inputs {
		t.Errorf("inputs changed in JSON: %+v", decoded.Inputs)
	}
	if decoded.Estimate.TotalSheets() != r.Estimate.TotalSheets() {
		t.Errorf("expected %d sheets, got %d", r.Estimate.TotalSheets(), decoded.Estimate.TotalSheets())
	}

	side, ok := decoded.Estimate.Section(model.SectionShedSideWall)
	if !ok {
		t.Fatal("shed side wall missing after decode")
	}
	if side.Length.Kind != model.LengthRange || side.Length.Min != 8 || side.Length.Max != 11 {
		t.Errorf("expected range 8 - 11, got %+v", side.Length)
	}
	if !strings.Contains(string(data), `"sheet_length"`) {
		t.Error("expected sheet_length key in JSON output")
	}
}

func TestCutList_Reference(t *testing.T) {
	r := buildTestReport(t, model.DefaultInputs())
	items := CutList(r.Estimate)

	want := []CutListItem{
		{model.SectionEaveWalls, 10, 28},
		{model.SectionGableWalls, 10, 20},
		{model.SectionGableTriangles, 11, 4},
		{model.SectionGableTriangles, 12, 4},
		{model.SectionGableTriangles, 13, 4},
		{model.SectionGableTriangles, 14, 4},
		{model.SectionGableTriangles, 15, 4},
		{model.SectionRoof, 17.5, 30},
	}
	if len(items) != len(want) {
		t.Fatalf("expected %d items, got %d: %+v", len(want), len(items), items)
	}
	total := 0
	for i, item := range items {
		if item != want[i] {
			t.Errorf("item %d: expected %+v, got %+v", i, want[i], item)
		}
		total += item.Quantity
	}
	if total != r.Estimate.TotalSheets() {
		t.Errorf("cut list covers %d sheets, estimate has %d", total, r.Estimate.TotalSheets())
	}
}

func TestCutList_RangeUsesLongest(t *testing.T) {
	r := buildTestReport(t, shedInputs())
	items := CutList(r.Estimate)

	var found bool
	for _, item := range items {
		if item.Section == model.SectionShedSideWall {
			found = true
			if item.Length != 11 {
				t.Errorf("expected side wall cut at 11 ft, got %g", item.Length)
			}
		}
	}
	if !found {
		t.Error("shed side wall missing from cut list")
	}
}

func TestCutList_SkipsEmptySections(t *testing.T) {
	est := model.Estimate{Sections: []model.SectionResult{
		{Name: model.SectionGableTriangles, SheetCount: 0, Length: model.Staggered(nil)},
		{Name: model.SectionRoof, SheetCount: 2, Length: model.Uniform(9)},
	}}
	items := CutList(est)
	if len(items) != 1 || items[0].Section != model.SectionRoof {
		t.Errorf("expected only the roof, got %+v", items)
	}
}
