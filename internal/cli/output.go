package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/piwi3910/sheathcalc/internal/engine"
	"github.com/piwi3910/sheathcalc/internal/export"
	"github.com/piwi3910/sheathcalc/internal/model"
)

// Output formats.
const (
	formatTable = "table"
	formatJSON  = "json"
)

func validFormat(f string) error {
	if f != formatTable && f != formatJSON {
		return fmt.Errorf("invalid format %q (must be %s or %s)", f, formatTable, formatJSON)
	}
	return nil
}

var headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
var cellStyle = lipgloss.NewStyle().Padding(0, 1)

func renderTable(w io.Writer, headers []string, rows [][]string) error {
	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers(headers...).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		})
	_, err := fmt.Fprintln(w, t.String())
	return err
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("failed to encode JSON: %w", err)
	}
	return nil
}

func formatFeet(v float64) string {
	return strconv.FormatFloat(v, 'f', 1, 64)
}

func writeEstimateTable(w io.Writer, in model.Inputs, est model.Estimate) error {
	if _, err := fmt.Fprintf(w, "%s, %g in sheets\n", export.BuildingLabel(in), in.SheetWidthInches); err != nil {
		return err
	}
	rows := make([][]string, 0, len(est.Sections))
	for _, s := range est.Sections {
		rows = append(rows, []string{
			s.Name,
			strconv.Itoa(s.SheetCount),
			s.Length.String(),
			formatFeet(s.LinearFeet),
			formatFeet(s.PerimeterFeet),
		})
	}
	if err := renderTable(w, []string{"Section", "Sheets", "Sheet Length (ft)", "Linear ft", "Perimeter ft"}, rows); err != nil {
		return err
	}
	_, err := fmt.Fprintf(w, "Total: %d sheets, %s linear ft\n", est.TotalSheets(), formatFeet(est.TotalLinearFeet()))
	return err
}

func writeCutListTable(w io.Writer, items []export.CutListItem) error {
	rows := make([][]string, 0, len(items))
	for _, item := range items {
		rows = append(rows, []string{
			item.Section,
			formatFeet(item.Length),
			export.FeetInches(item.Length),
			strconv.Itoa(item.Quantity),
		})
	}
	return renderTable(w, []string{"Section", "Length (ft)", "Length", "Qty"}, rows)
}

// comparisonRow is the JSON form of one engine.ComparisonResult.
type comparisonRow struct {
	Name             string  `json:"name"`
	SheetWidthInches float64 `json:"sheet_width_inches"`
	TotalSheets      int     `json:"total_sheets"`
	TotalLinearFeet  float64 `json:"total_linear_feet"`
	Fewest           bool    `json:"fewest,omitempty"`
	Error            string  `json:"error,omitempty"`
}

func comparisonRows(results []engine.ComparisonResult) []comparisonRow {
	best := engine.FewestSheets(results)
	rows := make([]comparisonRow, len(results))
	for i, r := range results {
		rows[i] = comparisonRow{
			Name:             r.Name,
			SheetWidthInches: r.SheetWidthInches,
			TotalSheets:      r.TotalSheets,
			TotalLinearFeet:  r.TotalLinearFeet,
			Fewest:           i == best,
		}
		if r.Err != nil {
			rows[i].Error = r.Err.Error()
		}
	}
	return rows
}

func writeComparisonTable(w io.Writer, rows []comparisonRow) error {
	cells := make([][]string, 0, len(rows))
	for _, r := range rows {
		if r.Error != "" {
			cells = append(cells, []string{r.Name, "-", "-", r.Error})
			continue
		}
		note := ""
		if r.Fewest {
			note = "fewest sheets"
		}
		cells = append(cells, []string{r.Name, strconv.Itoa(r.TotalSheets), formatFeet(r.TotalLinearFeet), note})
	}
	return renderTable(w, []string{"Option", "Sheets", "Linear ft", ""}, cells)
}
