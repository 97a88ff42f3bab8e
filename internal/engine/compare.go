package engine

import (
	"fmt"

	"github.com/piwi3910/sheathcalc/internal/model"
)

// ComparisonResult holds the estimate and totals for one candidate sheet width.
type ComparisonResult struct {
	Name             string
	SheetWidthInches float64
	Estimate         model.Estimate
	TotalSheets      int
	TotalLinearFeet  float64
	Err              error
}

// DefaultSheetWidths returns common panel coverage widths in inches.
func DefaultSheetWidths() []float64 {
	return []float64{24, 32, 36, 38, 40, 48}
}

// CompareSheetWidths estimates the same building once per candidate sheet
// width and returns the results in the order given. A width the engine
// rejects yields a row with Err set instead of aborting the comparison.
func CompareSheetWidths(b model.BuildingSpec, att model.Attachment, widthsInches []float64) []ComparisonResult {
	results := make([]ComparisonResult, 0, len(widthsInches))

	for _, w := range widthsInches {
		candidate := b
		candidate.SheetWidthInches = w

		row := ComparisonResult{
			Name:             fmt.Sprintf("%.0f in sheets", w),
			SheetWidthInches: w,
		}
		if w == b.SheetWidthInches {
			row.Name += " (current)"
		}

		est, err := Estimate(candidate, att)
		if err != nil {
			row.Err = err
			results = append(results, row)
			continue
		}

		row.Estimate = est
		row.TotalSheets = est.TotalSheets()
		row.TotalLinearFeet = est.TotalLinearFeet()
		results = append(results, row)
	}

	return results
}

// FewestSheets returns the index of the successful row with the lowest sheet
// count, or -1 when every row failed. Ties go to the wider sheet.
func FewestSheets(results []ComparisonResult) int {
	best := -1
	for i, r := range results {
		if r.Err != nil {
			continue
		}
		if best == -1 ||
			r.TotalSheets < results[best].TotalSheets ||
			(r.TotalSheets == results[best].TotalSheets && r.SheetWidthInches > results[best].SheetWidthInches) {
			best = i
		}
	}
	return best
}
