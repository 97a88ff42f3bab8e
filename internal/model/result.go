package model

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Section names, in display order.
const (
	SectionEaveWalls      = "Eave Walls"
	SectionGableWalls     = "Gable Walls"
	SectionGableTriangles = "Gable Triangles"
	SectionRoof           = "Roof"
	SectionShedWalls      = "Shed Front/Back Walls"
	SectionShedSideWall   = "Shed Side Wall"
	SectionShedRoof       = "Shed Roof"
	SectionPorchRoof      = "Porch Roof"
)

// LengthKind tells which of the SheetLength fields carry the value.
type LengthKind string

const (
	LengthUniform   LengthKind = "uniform"   // every panel is Value long
	LengthStaggered LengthKind = "staggered" // one entry per panel in Values
	LengthRange     LengthKind = "range"     // panels vary between Min and Max
)

// SheetLength is the panel length of a section: a single value, an ordered
// list of lengths, or an interval.
type SheetLength struct {
	Kind   LengthKind
	Value  float64
	Values []float64
	Min    float64
	Max    float64
}

// Uniform returns a single-length SheetLength.
func Uniform(v float64) SheetLength {
	return SheetLength{Kind: LengthUniform, Value: v}
}

// Staggered returns a SheetLength holding one length per panel. The slice is copied.
func Staggered(values []float64) SheetLength {
	cp := make([]float64, len(values))
	copy(cp, values)
	return SheetLength{Kind: LengthStaggered, Values: cp}
}

// Range returns an interval SheetLength.
func Range(min, max float64) SheetLength {
	return SheetLength{Kind: LengthRange, Min: min, Max: max}
}

// Longest returns the longest panel the section needs.
func (l SheetLength) Longest() float64 {
	switch l.Kind {
	case LengthStaggered:
		var m float64
		for _, v := range l.Values {
			if v > m {
				m = v
			}
		}
		return m
	case LengthRange:
		return l.Max
	default:
		return l.Value
	}
}

// String formats the length for tables, e.g. "17.5", "11.0 - 15.0" or
// "11.0, 12.0, 13.0".
func (l SheetLength) String() string {
	switch l.Kind {
	case LengthStaggered:
		if len(l.Values) == 0 {
			return "-"
		}
		parts := make([]string, len(l.Values))
		for i, v := range l.Values {
			parts[i] = fmt.Sprintf("%.1f", v)
		}
		return strings.Join(parts, ", ")
	case LengthRange:
		return fmt.Sprintf("%.1f - %.1f", l.Min, l.Max)
	default:
		return fmt.Sprintf("%.1f", l.Value)
	}
}

type sheetLengthJSON struct {
	Kind   LengthKind `json:"kind"`
	Value  *float64   `json:"value,omitempty"`
	Values []float64  `json:"values,omitempty"`
	Min    *float64   `json:"min,omitempty"`
	Max    *float64   `json:"max,omitempty"`
}

func (l SheetLength) MarshalJSON() ([]byte, error) {
	out := sheetLengthJSON{Kind: l.Kind}
	switch l.Kind {
	case LengthStaggered:
		out.Values = l.Values
		if out.Values == nil {
			out.Values = []float64{}
		}
	case LengthRange:
		out.Min, out.Max = &l.Min, &l.Max
	default:
		out.Kind = LengthUniform
		out.Value = &l.Value
	}
	return json.Marshal(out)
}

func (l *SheetLength) UnmarshalJSON(data []byte) error {
	var in sheetLengthJSON
	if err := json.Unmarshal(data, &in); err != nil {
		return err
	}
	switch in.Kind {
	case LengthStaggered:
		*l = Staggered(in.Values)
	case LengthRange:
		if in.Min == nil || in.Max == nil {
			return fmt.Errorf("range sheet length needs min and max")
		}
		*l = Range(*in.Min, *in.Max)
	case LengthUniform, "":
		if in.Value == nil {
			return fmt.Errorf("uniform sheet length needs a value")
		}
		*l = Uniform(*in.Value)
	default:
		return fmt.Errorf("unknown sheet length kind %q", in.Kind)
	}
	return nil
}

// SectionResult holds the quantities for one building surface.
type SectionResult struct {
	Name          string      `json:"name"`
	SheetCount    int         `json:"sheet_count"`
	Length        SheetLength `json:"sheet_length"`   // ft
	LinearFeet    float64     `json:"linear_feet"`    // Total panel run (ft)
	PerimeterFeet float64     `json:"perimeter_feet"` // Outline of all covered surfaces (ft)
}

// Estimate is the ordered list of sections produced for one building.
type Estimate struct {
	Sections []SectionResult `json:"sections"`
}

// Section returns the named section and whether it is present.
func (e Estimate) Section(name string) (SectionResult, bool) {
	for _, s := range e.Sections {
		if s.Name == name {
			return s, true
		}
	}
	return SectionResult{}, false
}

// Names returns the section names in display order.
func (e Estimate) Names() []string {
	names := make([]string, len(e.Sections))
	for i, s := range e.Sections {
		names[i] = s.Name
	}
	return names
}

// TotalSheets returns the panel count over all sections.
func (e Estimate) TotalSheets() int {
	total := 0
	for _, s := range e.Sections {
		total += s.SheetCount
	}
	return total
}

// TotalLinearFeet returns the panel run over all sections.
func (e Estimate) TotalLinearFeet() float64 {
	var total float64
	for _, s := range e.Sections {
		total += s.LinearFeet
	}
	return total
}
