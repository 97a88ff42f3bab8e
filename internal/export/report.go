// Package export writes sheathing estimates to PDF, Excel and DXF files.
package export

import (
	"encoding/json"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/piwi3910/sheathcalc/internal/model"
)

// Report wraps one estimate with the inputs that produced it and an
// identifier printed on every exported artifact.
type Report struct {
	ID        string         `json:"id"`
	CreatedAt string         `json:"created_at"`
	Inputs    model.Inputs   `json:"inputs"`
	Estimate  model.Estimate `json:"estimate"`
}

// NewReport stamps an estimate with a short ID and the current UTC time.
func NewReport(inputs model.Inputs, estimate model.Estimate) Report {
	return Report{
		ID:        uuid.New().String()[:8],
		CreatedAt: time.Now().UTC().Format(time.RFC3339),
		Inputs:    inputs,
		Estimate:  estimate,
	}
}

// SummaryInfo is the compact record encoded into the report's QR code.
type SummaryInfo struct {
	ID          string         `json:"id"`
	Building    string         `json:"building"`
	SheetWidth  float64        `json:"sheet_width_in"`
	TotalSheets int            `json:"total_sheets"`
	Sections    map[string]int `json:"sections"`
}

// Summary builds the QR payload for a report.
func Summary(r Report) SummaryInfo {
	sections := make(map[string]int, len(r.Estimate.Sections))
	for _, s := range r.Estimate.Sections {
		sections[s.Name] = s.SheetCount
	}
	return SummaryInfo{
		ID:          r.ID,
		Building:    BuildingLabel(r.Inputs),
		SheetWidth:  r.Inputs.SheetWidthInches,
		TotalSheets: r.Estimate.TotalSheets(),
		Sections:    sections,
	}
}

// BuildingLabel describes the building in one line, e.g.
// "40 x 30 x 10 ft, 4/12 pitch, 16 in overhang".
func BuildingLabel(in model.Inputs) string {
	return fmt.Sprintf("%g x %g x %g ft, %g/12 pitch, %g in overhang",
		in.Length, in.Width, in.WallHeight, in.Pitch, in.OverhangInches)
}

// WriteJSON returns the report as indented JSON.
func WriteJSON(r Report) ([]byte, error) {
	data, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal report: %w", err)
	}
	return data, nil
}

// CutListItem is one distinct panel length within a section.
type CutListItem struct {
	Section  string  `json:"section"`
	Length   float64 `json:"length_ft"`
	Quantity int     `json:"quantity"`
}

// CutList groups every panel of the estimate by section and length. Range
// sections are listed at their longest length since each panel is cut from
// a full-height sheet. Items keep section order; lengths ascend within a
// section.
func CutList(est model.Estimate) []CutListItem {
	var items []CutListItem
	for _, s := range est.Sections {
		if s.SheetCount == 0 {
			continue
		}
		switch s.Length.Kind {
		case model.LengthStaggered:
			perLength := make(map[float64]int)
			// The staggered sequence describes one gable end; the section
			// count covers every end.
			ends := s.SheetCount / max(len(s.Length.Values), 1)
			for _, l := range s.Length.Values {
				perLength[l] += ends
			}
			lengths := make([]float64, 0, len(perLength))
			for l := range perLength {
				lengths = append(lengths, l)
			}
			sort.Float64s(lengths)
			for _, l := range lengths {
				items = append(items, CutListItem{Section: s.Name, Length: l, Quantity: perLength[l]})
			}
		default:
			items = append(items, CutListItem{Section: s.Name, Length: s.Length.Longest(), Quantity: s.SheetCount})
		}
	}
	return items
}
