package ui

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/piwi3910/sheathcalc/internal/engine"
	"github.com/piwi3910/sheathcalc/internal/export"
	"github.com/piwi3910/sheathcalc/internal/model"
)

// sectionRows renders the estimate as table rows with a trailing total row.
func sectionRows(est model.Estimate) [][]string {
	rows := [][]string{{"Section", "Sheets", "Sheet Length (ft)", "Linear ft"}}
	for _, s := range est.Sections {
		rows = append(rows, []string{
			s.Name,
			fmt.Sprintf("%d", s.SheetCount),
			s.Length.String(),
			fmt.Sprintf("%.1f", s.LinearFeet),
		})
	}
	rows = append(rows, []string{
		"Total",
		fmt.Sprintf("%d", est.TotalSheets()),
		"",
		fmt.Sprintf("%.1f", est.TotalLinearFeet()),
	})
	return rows
}

// cutListRows renders the cut list of an estimate.
func cutListRows(est model.Estimate) [][]string {
	rows := [][]string{{"Section", "Length", "Qty"}}
	for _, item := range export.CutList(est) {
		rows = append(rows, []string{
			item.Section,
			export.FeetInches(item.Length),
			fmt.Sprintf("%d", item.Quantity),
		})
	}
	return rows
}

// compareRows renders one row per sheet width and marks the cheapest option.
func compareRows(results []engine.ComparisonResult) [][]string {
	best := engine.FewestSheets(results)
	rows := [][]string{{"Option", "Sheets", "Linear ft", ""}}
	for i, r := range results {
		if r.Err != nil {
			rows = append(rows, []string{r.Name, "-", "-", r.Err.Error()})
			continue
		}
		note := ""
		if i == best {
			note = "fewest sheets"
		}
		rows = append(rows, []string{
			r.Name,
			fmt.Sprintf("%d", r.TotalSheets),
			fmt.Sprintf("%.1f", r.TotalLinearFeet),
			note,
		})
	}
	return rows
}

// newTable builds a read-only table whose first row is the header.
func newTable(rows [][]string, colWidths []float32) *widget.Table {
	table := widget.NewTable(
		func() (int, int) {
			if len(rows) == 0 {
				return 0, 0
			}
			return len(rows), len(rows[0])
		},
		func() fyne.CanvasObject {
			return widget.NewLabel("")
		},
		func(id widget.TableCellID, obj fyne.CanvasObject) {
			label := obj.(*widget.Label)
			label.SetText(rows[id.Row][id.Col])
			label.TextStyle = fyne.TextStyle{Bold: id.Row == 0 || rows[id.Row][0] == "Total"}
			label.Refresh()
		},
	)
	for i, w := range colWidths {
		table.SetColumnWidth(i, w)
	}
	return table
}

func buildResultView(est model.Estimate) fyne.CanvasObject {
	sections := newTable(sectionRows(est), []float32{170, 60, 260, 80})
	cuts := newTable(cutListRows(est), []float32{170, 80, 50})

	tabs := container.NewAppTabs(
		container.NewTabItem("Sections", sections),
		container.NewTabItem("Cut List", cuts),
	)
	return tabs
}

func buildCompareView(results []engine.ComparisonResult) fyne.CanvasObject {
	return newTable(compareRows(results), []float32{170, 70, 90, 240})
}
