package export

import (
	"fmt"

	"github.com/xuri/excelize/v2"
)

const (
	summarySheet = "Summary"
	cutListSheet = "Cut List"
)

// ExportXLSX writes the estimate as a workbook with a "Summary" sheet (one
// row per section) and a "Cut List" sheet (one row per distinct panel length).
func ExportXLSX(path string, report Report) error {
	if len(report.Estimate.Sections) == 0 {
		return fmt.Errorf("no sections to export")
	}

	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName(f.GetSheetName(0), summarySheet); err != nil {
		return fmt.Errorf("failed to name summary sheet: %w", err)
	}
	if _, err := f.NewSheet(cutListSheet); err != nil {
		return fmt.Errorf("failed to create cut list sheet: %w", err)
	}

	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return fmt.Errorf("failed to create header style: %w", err)
	}

	summary := [][]interface{}{
		{"Report", report.ID},
		{"Created", report.CreatedAt},
		{"Building", BuildingLabel(report.Inputs)},
		{"Sheet Width (in)", report.Inputs.SheetWidthInches},
		{},
		{"Section", "Sheets", "Sheet Length (ft)", "Longest (ft)", "Linear ft", "Perimeter ft"},
	}
	headerRow := len(summary)
	for _, s := range report.Estimate.Sections {
		summary = append(summary, []interface{}{
			s.Name, s.SheetCount, s.Length.String(), s.Length.Longest(), s.LinearFeet, s.PerimeterFeet,
		})
	}
	summary = append(summary, []interface{}{
		"Total", report.Estimate.TotalSheets(), "", "", report.Estimate.TotalLinearFeet(), "",
	})
	if err := writeRows(f, summarySheet, summary); err != nil {
		return err
	}
	if err := f.SetCellStyle(summarySheet, "A6", cellName(6, headerRow), bold); err != nil {
		return fmt.Errorf("failed to style summary header: %w", err)
	}
	if err := f.SetColWidth(summarySheet, "A", "A", 24); err != nil {
		return fmt.Errorf("failed to size summary columns: %w", err)
	}
	if err := f.SetColWidth(summarySheet, "C", "C", 40); err != nil {
		return fmt.Errorf("failed to size summary columns: %w", err)
	}

	cutList := [][]interface{}{{"Section", "Length (ft)", "Length (ft-in)", "Quantity"}}
	for _, item := range CutList(report.Estimate) {
		cutList = append(cutList, []interface{}{item.Section, item.Length, FeetInches(item.Length), item.Quantity})
	}
	if err := writeRows(f, cutListSheet, cutList); err != nil {
		return err
	}
	if err := f.SetCellStyle(cutListSheet, "A1", "D1", bold); err != nil {
		return fmt.Errorf("failed to style cut list header: %w", err)
	}
	if err := f.SetColWidth(cutListSheet, "A", "A", 24); err != nil {
		return fmt.Errorf("failed to size cut list columns: %w", err)
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("failed to save workbook: %w", err)
	}
	return nil
}

func writeRows(f *excelize.File, sheet string, rows [][]interface{}) error {
	for i, row := range rows {
		for j, cell := range row {
			if err := f.SetCellValue(sheet, cellName(j+1, i+1), cell); err != nil {
				return fmt.Errorf("failed to write %s row %d: %w", sheet, i+1, err)
			}
		}
	}
	return nil
}

// cellName converts 1-based column/row numbers to an A1 reference. Inputs
// are always within the sheet limits here, so the error is dropped.
func cellName(col, row int) string {
	name, _ := excelize.CoordinatesToCellName(col, row)
	return name
}

// FeetInches formats a length in feet as feet and whole inches, e.g. 17.5 -> 17' 6".
func FeetInches(feet float64) string {
	totalInches := int(feet*12 + 0.5)
	return fmt.Sprintf("%d' %d\"", totalInches/12, totalInches%12)
}
