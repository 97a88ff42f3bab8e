// Package engine converts building dimensions into panel counts and lengths.
//
// Every function here is pure: inputs are read-only values and each call
// allocates its own result, so estimates can run concurrently without locks.
package engine

import (
	"github.com/piwi3910/sheathcalc/internal/model"
)

// geometry holds the derived dimensions shared by the gable and roof sections.
type geometry struct {
	sheetWidth float64 // ft
	overhang   float64 // ft
	gableWidth float64 // building width plus overhang on both eaves (ft)
	halfGable  float64 // horizontal roof run (ft)
	peakHeight float64 // rise from wall top to ridge (ft)
	roofSlope  float64 // rafter length eave to ridge (ft)
	roofLength float64 // ridge length including gable overhangs (ft)
}

func newGeometry(b model.BuildingSpec) geometry {
	g := geometry{
		sheetWidth: b.SheetWidthFeet(),
		overhang:   b.OverhangFeet(),
	}
	g.gableWidth = b.Width + 2*g.overhang
	g.halfGable = g.gableWidth / 2
	g.peakHeight = g.halfGable * (b.Pitch / 12)
	g.roofSlope = slopeLength(g.halfGable, g.peakHeight)
	g.roofLength = b.Length + 2*g.overhang
	return g
}

// Estimate computes the panels for every surface of the building and, when
// att is active, for the attached shed or porch. Sections are returned in
// display order. The only failures are invalid inputs, reported as a
// *model.InputError.
func Estimate(b model.BuildingSpec, att model.Attachment) (model.Estimate, error) {
	if err := b.Validate(); err != nil {
		return model.Estimate{}, err
	}
	if att == nil {
		att = model.NoAttachment{}
	}
	if err := att.Validate(); err != nil {
		return model.Estimate{}, err
	}

	g := newGeometry(b)

	sections := make([]model.SectionResult, 0, 7)
	sections = append(sections,
		eaveWalls(b, g),
		gableWalls(b, g),
		gableTriangles(b, g),
		roof(g),
	)

	if att.Active() {
		switch a := att.(type) {
		case model.Shed:
			sections = append(sections, shedSections(a, g.sheetWidth)...)
		case model.Porch:
			sections = append(sections, porchSections(a, g.sheetWidth)...)
		}
	}

	return model.Estimate{Sections: sections}, nil
}

// eaveWalls covers the two long walls with full-height vertical panels.
func eaveWalls(b model.BuildingSpec, g geometry) model.SectionResult {
	return uniformSection(model.SectionEaveWalls,
		ceilCount(b.Length, g.sheetWidth)*2,
		b.WallHeight,
		2*rectPerimeter(b.Length, b.WallHeight))
}

// gableWalls covers the rectangular part of both end walls below the roofline.
func gableWalls(b model.BuildingSpec, g geometry) model.SectionResult {
	return uniformSection(model.SectionGableWalls,
		ceilCount(b.Width, g.sheetWidth)*2,
		b.WallHeight,
		2*rectPerimeter(b.Width, b.WallHeight))
}

// roof covers both slopes, overhangs included. Panel length is rounded up
// to the next half foot.
func roof(g geometry) model.SectionResult {
	perSide := ceilCount(g.roofLength, g.sheetWidth)
	return uniformSection(model.SectionRoof,
		perSide*2,
		ceilTo(g.roofSlope, 0.5),
		2*rectPerimeter(g.roofLength, g.roofSlope))
}

func uniformSection(name string, count int, length, perimeter float64) model.SectionResult {
	return model.SectionResult{
		Name:          name,
		SheetCount:    count,
		Length:        model.Uniform(length),
		LinearFeet:    float64(count) * length,
		PerimeterFeet: perimeter,
	}
}

func rectPerimeter(w, h float64) float64 {
	return 2 * (w + h)
}
