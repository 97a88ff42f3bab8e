package export

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"

	"github.com/go-pdf/fpdf"
	"github.com/piwi3910/sheathcalc/internal/model"
	qrcode "github.com/skip2/go-qrcode"
)

// Page layout constants (A4 landscape in mm).
const (
	pageWidth    = 297.0
	pageHeight   = 210.0
	marginLeft   = 15.0
	marginRight  = 15.0
	marginTop    = 15.0
	marginBottom = 15.0
	headerHeight = 12.0
	qrSize       = 35.0
	tableWidth   = 170.0
)

// panelColors alternates fills for neighbouring panels in the elevation sketch.
var panelColors = [][3]int{
	{176, 190, 197},
	{207, 216, 220},
}

// ExportPDF writes a one-page report: inputs, the section table, totals, a
// gable-end elevation sketch and a QR code carrying the summary.
func ExportPDF(path string, report Report) error {
	if len(report.Estimate.Sections) == 0 {
		return fmt.Errorf("no sections to export")
	}

	pdf := fpdf.New("L", "mm", "A4", "")
	pdf.SetAutoPageBreak(false, marginBottom)
	pdf.AddPage()

	renderHeader(pdf, report)
	y := renderInputs(pdf, report.Inputs, marginTop+headerHeight+4)
	y = renderSectionTable(pdf, report.Estimate, y+4)
	renderTotals(pdf, report.Estimate, y+4)

	sketchX := marginLeft + tableWidth + 10
	sketchW := pageWidth - marginRight - sketchX
	renderElevation(pdf, gableElevation(report.Inputs), sketchX, marginTop+headerHeight+4, sketchW, 80)

	if err := renderQRCode(pdf, report, pageWidth-marginRight-qrSize, pageHeight-marginBottom-qrSize-6); err != nil {
		return err
	}

	// Footer
	pdf.SetFont("Helvetica", "I", 8)
	pdf.SetTextColor(120, 120, 120)
	pdf.SetXY(marginLeft, pageHeight-marginBottom)
	pdf.CellFormat(pageWidth-marginLeft-marginRight, 4,
		"Generated by sheathcalc - all quantities are estimates; order extra for waste and cuts", "", 0, "C", false, 0, "")

	return pdf.OutputFileAndClose(path)
}

func renderHeader(pdf *fpdf.Fpdf, report Report) {
	pdf.SetFont("Helvetica", "B", 16)
	pdf.SetTextColor(0, 0, 0)
	pdf.SetXY(marginLeft, marginTop)
	pdf.CellFormat(150, headerHeight, "Sheathing Estimate", "", 0, "L", false, 0, "")

	pdf.SetFont("Helvetica", "", 9)
	pdf.SetTextColor(100, 100, 100)
	pdf.SetXY(pageWidth-marginRight-100, marginTop)
	pdf.CellFormat(100, headerHeight, fmt.Sprintf("Report %s | %s", report.ID, report.CreatedAt), "", 0, "R", false, 0, "")
	pdf.SetTextColor(0, 0, 0)

	pdf.SetDrawColor(0, 0, 0)
	pdf.SetLineWidth(0.5)
	pdf.Line(marginLeft, marginTop+headerHeight, pageWidth-marginRight, marginTop+headerHeight)
}

type labelValue struct {
	label string
	value string
}

// renderInputs prints the parameters and returns the y position below them.
func renderInputs(pdf *fpdf.Fpdf, in model.Inputs, y float64) float64 {
	items := []labelValue{
		{"Building", fmt.Sprintf("%g x %g ft, %g ft walls", in.Length, in.Width, in.WallHeight)},
		{"Roof", fmt.Sprintf("%g/12 pitch, %g in overhang", in.Pitch, in.OverhangInches)},
		{"Sheet Width", fmt.Sprintf("%g in", in.SheetWidthInches)},
	}
	switch att := in.AttachmentSpec().(type) {
	case model.Shed:
		if att.Active() {
			items = append(items, labelValue{"Shed", fmt.Sprintf("%g x %g ft, %g ft wall, %g/12 pitch", att.Width, att.Depth, att.WallHeight, att.Pitch)})
		}
	case model.Porch:
		if att.Active() {
			items = append(items, labelValue{"Porch", fmt.Sprintf("%g x %g ft, %g/12 pitch", att.Length, att.Depth, att.Pitch)})
		}
	}

	for _, item := range items {
		pdf.SetXY(marginLeft, y)
		pdf.SetFont("Helvetica", "", 10)
		pdf.CellFormat(30, 6, item.label+":", "", 0, "L", false, 0, "")
		pdf.SetFont("Helvetica", "B", 10)
		pdf.CellFormat(tableWidth-30, 6, item.value, "", 0, "L", false, 0, "")
		y += 6
	}
	return y
}

// renderSectionTable draws the per-section table and returns the y position below it.
func renderSectionTable(pdf *fpdf.Fpdf, est model.Estimate, y float64) float64 {
	colWidths := []float64{42, 18, 62, 24, 24}
	headers := []string{"Section", "Sheets", "Sheet Length (ft)", "Linear ft", "Perimeter ft"}

	pdf.SetFont("Helvetica", "B", 9)
	pdf.SetFillColor(230, 230, 230)
	xPos := marginLeft
	for i, header := range headers {
		pdf.SetXY(xPos, y)
		pdf.CellFormat(colWidths[i], 6, header, "1", 0, "C", true, 0, "")
		xPos += colWidths[i]
	}
	y += 6

	pdf.SetFont("Helvetica", "", 9)
	for i, s := range est.Sections {
		rowData := []string{
			s.Name,
			fmt.Sprintf("%d", s.SheetCount),
			fitText(pdf, s.Length.String(), colWidths[2]-2),
			fmt.Sprintf("%.1f", s.LinearFeet),
			fmt.Sprintf("%.1f", s.PerimeterFeet),
		}

		// Alternate row background
		if i%2 == 0 {
			pdf.SetFillColor(245, 245, 245)
		} else {
			pdf.SetFillColor(255, 255, 255)
		}

		xPos = marginLeft
		for j, cell := range rowData {
			align := "C"
			if j == 0 {
				align = "L"
			}
			pdf.SetXY(xPos, y)
			pdf.CellFormat(colWidths[j], 6, cell, "1", 0, align, true, 0, "")
			xPos += colWidths[j]
		}
		y += 6
	}
	return y
}

func renderTotals(pdf *fpdf.Fpdf, est model.Estimate, y float64) {
	pdf.SetFont("Helvetica", "B", 11)
	pdf.SetXY(marginLeft, y)
	pdf.CellFormat(tableWidth, 7,
		fmt.Sprintf("Total: %d sheets, %.1f linear ft", est.TotalSheets(), est.TotalLinearFeet()),
		"", 0, "L", false, 0, "")

	pdf.SetFont("Helvetica", "", 8)
	pdf.SetTextColor(100, 100, 100)
	notes := []string{
		"Sheet counts are rounded up to whole sheets.",
		"Roof sheets are rounded up to the next half foot; gable lengths to the nearest inch.",
		"Gable triangle lengths are listed for one gable end and apply to both.",
	}
	for i, n := range notes {
		pdf.SetXY(marginLeft, y+8+float64(i)*4)
		pdf.CellFormat(tableWidth, 4, "- "+n, "", 0, "L", false, 0, "")
	}
	pdf.SetTextColor(0, 0, 0)
}

// renderElevation draws the gable-end sketch scaled into the given box.
func renderElevation(pdf *fpdf.Fpdf, e elevation, x, y, w, h float64) {
	pdf.SetFont("Helvetica", "B", 10)
	pdf.SetXY(x, y)
	pdf.CellFormat(w, 6, "Gable End Elevation", "", 0, "L", false, 0, "")

	min, max := e.bounds()
	spanX := max.X - min.X
	spanY := max.Y - min.Y
	if spanX <= 0 || spanY <= 0 {
		return
	}
	drawTop := y + 8
	drawH := h - 8
	scale := math.Min(w/spanX, drawH/spanY)

	// Drawing y grows downwards; building y grows upwards.
	toPage := func(p point) (float64, float64) {
		return x + (p.X-min.X)*scale, drawTop + drawH - (p.Y-min.Y)*scale
	}

	pdf.SetLineWidth(0.2)
	pdf.SetDrawColor(90, 90, 90)
	for i, p := range e.Panels {
		col := panelColors[i%len(panelColors)]
		pdf.SetFillColor(col[0], col[1], col[2])
		px, py := toPage(point{p.X, p.Length})
		pdf.Rect(px, py, p.Width*scale, p.Length*scale, "FD")
	}

	// Wall outline
	pdf.SetLineWidth(0.5)
	pdf.SetDrawColor(0, 0, 0)
	for i := range e.Wall {
		x1, y1 := toPage(e.Wall[i])
		x2, y2 := toPage(e.Wall[(i+1)%len(e.Wall)])
		pdf.Line(x1, y1, x2, y2)
	}

	// Roof line
	pdf.SetDrawColor(200, 0, 0)
	for i := 0; i+1 < len(e.Roof); i++ {
		x1, y1 := toPage(e.Roof[i])
		x2, y2 := toPage(e.Roof[i+1])
		pdf.Line(x1, y1, x2, y2)
	}

	pdf.SetFont("Helvetica", "", 7)
	pdf.SetTextColor(80, 80, 80)
	pdf.SetXY(x, drawTop+drawH+1)
	pdf.CellFormat(w, 4, fmt.Sprintf("%g ft wide, %d panels per end", e.Width, len(e.Panels)), "", 0, "C", false, 0, "")
	pdf.SetTextColor(0, 0, 0)
	pdf.SetDrawColor(0, 0, 0)
}

// renderQRCode places a QR code encoding the report summary as JSON.
func renderQRCode(pdf *fpdf.Fpdf, report Report, x, y float64) error {
	qrData, err := json.Marshal(Summary(report))
	if err != nil {
		return fmt.Errorf("failed to marshal summary: %w", err)
	}

	qrPNG, err := qrcode.Encode(string(qrData), qrcode.Medium, 256)
	if err != nil {
		return fmt.Errorf("failed to generate QR code: %w", err)
	}

	imgName := "qr_" + report.ID
	pdf.RegisterImageOptionsReader(imgName, fpdf.ImageOptions{ImageType: "PNG"}, bytes.NewReader(qrPNG))
	pdf.ImageOptions(imgName, x, y, qrSize, qrSize, false, fpdf.ImageOptions{ImageType: "PNG"}, 0, "")

	pdf.SetFont("Helvetica", "", 7)
	pdf.SetXY(x, y+qrSize)
	pdf.CellFormat(qrSize, 4, "Scan for summary", "", 0, "C", false, 0, "")
	return nil
}

// fitText truncates s with an ellipsis so it fits within w.
func fitText(pdf *fpdf.Fpdf, s string, w float64) string {
	if pdf.GetStringWidth(s) <= w {
		return s
	}
	for len(s) > 0 && pdf.GetStringWidth(s+"...") > w {
		s = s[:len(s)-1]
	}
	return s + "..."
}
