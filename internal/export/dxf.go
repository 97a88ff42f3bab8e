package export

import (
	"fmt"

	"github.com/yofu/dxf"
	"github.com/yofu/dxf/color"
	"github.com/yofu/dxf/drawing"
)

// DXF layer names.
const (
	LayerPanels  = "PANELS"
	LayerOutline = "OUTLINE"
	LayerText    = "TEXT"
)

// dxfTextHeight is the label height in drawing units (feet).
const dxfTextHeight = 0.4

// ExportDXF writes the gable-end elevation as a DXF drawing in feet. Panels
// go on the PANELS layer, the wall and roof line on OUTLINE and the panel
// length labels and title on TEXT.
func ExportDXF(path string, report Report) error {
	if len(report.Estimate.Sections) == 0 {
		return fmt.Errorf("no sections to export")
	}

	d := dxf.NewDrawing()
	layers := []struct {
		name  string
		color color.ColorNumber
	}{
		{LayerOutline, color.White},
		{LayerPanels, color.Cyan},
		{LayerText, color.Yellow},
	}
	for _, l := range layers {
		if _, err := d.AddLayer(l.name, l.color, dxf.DefaultLineType, false); err != nil {
			return fmt.Errorf("failed to add layer %s: %w", l.name, err)
		}
	}

	e := gableElevation(report.Inputs)
	if err := drawOutline(d, e); err != nil {
		return err
	}
	if err := drawPanels(d, e); err != nil {
		return err
	}
	if err := drawLabels(d, e, report); err != nil {
		return err
	}

	if err := d.SaveAs(path); err != nil {
		return fmt.Errorf("failed to save DXF: %w", err)
	}
	return nil
}

func drawOutline(d *drawing.Drawing, e elevation) error {
	if err := d.ChangeLayer(LayerOutline); err != nil {
		return fmt.Errorf("failed to select outline layer: %w", err)
	}
	for i := range e.Wall {
		a, b := e.Wall[i], e.Wall[(i+1)%len(e.Wall)]
		if _, err := d.Line(a.X, a.Y, 0, b.X, b.Y, 0); err != nil {
			return fmt.Errorf("failed to draw wall: %w", err)
		}
	}
	for i := 0; i+1 < len(e.Roof); i++ {
		a, b := e.Roof[i], e.Roof[i+1]
		if _, err := d.Line(a.X, a.Y, 0, b.X, b.Y, 0); err != nil {
			return fmt.Errorf("failed to draw roof line: %w", err)
		}
	}
	return nil
}

func drawPanels(d *drawing.Drawing, e elevation) error {
	if err := d.ChangeLayer(LayerPanels); err != nil {
		return fmt.Errorf("failed to select panel layer: %w", err)
	}
	for _, p := range e.Panels {
		corners := []point{
			{p.X, 0}, {p.X + p.Width, 0}, {p.X + p.Width, p.Length}, {p.X, p.Length},
		}
		for i := range corners {
			a, b := corners[i], corners[(i+1)%len(corners)]
			if _, err := d.Line(a.X, a.Y, 0, b.X, b.Y, 0); err != nil {
				return fmt.Errorf("failed to draw panel: %w", err)
			}
		}
	}
	return nil
}

func drawLabels(d *drawing.Drawing, e elevation, report Report) error {
	if err := d.ChangeLayer(LayerText); err != nil {
		return fmt.Errorf("failed to select text layer: %w", err)
	}
	for _, p := range e.Panels {
		if _, err := d.Text(fmt.Sprintf("%g", p.Length), p.X+p.Width/4, p.Length/2, 0, dxfTextHeight); err != nil {
			return fmt.Errorf("failed to label panel: %w", err)
		}
	}
	title := fmt.Sprintf("%s | %s | %d sheets", report.ID, BuildingLabel(report.Inputs), report.Estimate.TotalSheets())
	if _, err := d.Text(title, e.Roof[0].X, -2*dxfTextHeight-0.5, 0, dxfTextHeight); err != nil {
		return fmt.Errorf("failed to write title: %w", err)
	}
	return nil
}
