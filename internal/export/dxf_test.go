package export

import (
	"path/filepath"
	"testing"

	"github.com/piwi3910/sheathcalc/internal/model"
	"github.com/yofu/dxf"
	"github.com/yofu/dxf/entity"
)

func TestExportDXF_Lines(t *testing.T) {
	path := filepath.Join(t.TempDir(), "gable.dxf")
	r := buildTestReport(t, model.DefaultInputs())

	if err := ExportDXF(path, r); err != nil {
		t.Fatalf("ExportDXF returned error: %v", err)
	}

	d, err := dxf.Open(path)
	if err != nil {
		t.Fatalf("cannot reopen DXF: %v", err)
	}

	lines := 0
	for _, ent := range d.Entities() {
		if _, ok := ent.(*entity.Line); ok {
			lines++
		}
	}
	// 4 wall edges, 2 roof lines and 4 edges per gable panel.
	want := 4 + 2 + 4*10
	if lines != want {
		t.Errorf("expected %d lines, got %d", want, lines)
	}
}

func TestExportDXF_NoSections(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.dxf")
	if err := ExportDXF(path, Report{}); err == nil {
		t.Error("expected error for empty estimate")
	}
}
