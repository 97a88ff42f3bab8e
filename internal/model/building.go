package model

import (
	"errors"
	"fmt"
	"math"
)

// MaxPitch is the steepest supported roof pitch (12/12, a 45° roof).
const MaxPitch = 12.0

// InchesPerFoot converts the inch-denominated inputs to feet.
const InchesPerFoot = 12.0

var (
	// ErrInvalidDimension is returned when a required dimension is not a
	// positive finite number (or, for overhang, is negative).
	ErrInvalidDimension = errors.New("dimension must be a positive number")
	// ErrInvalidPitch is returned when a pitch falls outside (0, 12].
	ErrInvalidPitch = errors.New("pitch must be greater than 0 and at most 12")
)

// InputError reports which input field failed validation.
type InputError struct {
	Field string
	Value float64
	Err   error
}

func (e *InputError) Error() string {
	return fmt.Sprintf("invalid %s %g: %v", e.Field, e.Value, e.Err)
}

func (e *InputError) Unwrap() error {
	return e.Err
}

func dimensionError(field string, v float64) *InputError {
	return &InputError{Field: field, Value: v, Err: ErrInvalidDimension}
}

func pitchError(field string, v float64) *InputError {
	return &InputError{Field: field, Value: v, Err: ErrInvalidPitch}
}

// BuildingSpec describes the main gable-roofed building.
type BuildingSpec struct {
	Length           float64 `json:"length"`             // Eave wall length (ft)
	Width            float64 `json:"width"`              // Gable wall width (ft)
	WallHeight       float64 `json:"wall_height"`        // Eave height (ft)
	Pitch            float64 `json:"pitch"`              // Rise per 12 run
	OverhangInches   float64 `json:"overhang_inches"`    // Horizontal roof overhang (in)
	SheetWidthInches float64 `json:"sheet_width_inches"` // Coverage width of one sheet (in)
}

// SheetWidthFeet returns the sheet width converted to feet.
func (b BuildingSpec) SheetWidthFeet() float64 {
	return b.SheetWidthInches / InchesPerFoot
}

// OverhangFeet returns the overhang converted to feet.
func (b BuildingSpec) OverhangFeet() float64 {
	return b.OverhangInches / InchesPerFoot
}

// Validate checks the dimensions the engine relies on. It returns an
// *InputError wrapping ErrInvalidDimension or ErrInvalidPitch.
func (b BuildingSpec) Validate() error {
	dims := []struct {
		field string
		value float64
	}{
		{"length", b.Length},
		{"width", b.Width},
		{"wall height", b.WallHeight},
		{"sheet width", b.SheetWidthInches},
	}
	for _, d := range dims {
		if !positive(d.value) {
			return dimensionError(d.field, d.value)
		}
	}
	if !finite(b.OverhangInches) || b.OverhangInches < 0 {
		return dimensionError("overhang", b.OverhangInches)
	}
	if !validPitch(b.Pitch) {
		return pitchError("pitch", b.Pitch)
	}
	return nil
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

func positive(v float64) bool {
	return finite(v) && v > 0
}

func validPitch(p float64) bool {
	return finite(p) && p > 0 && p <= MaxPitch
}
