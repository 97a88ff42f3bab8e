package engine

import (
	"github.com/piwi3910/sheathcalc/internal/model"
)

// shedSections estimates a lean-to shed: front and back walls, the
// trapezoidal side wall and the single roof plane.
func shedSections(s model.Shed, sheetWidth float64) []model.SectionResult {
	peak := s.PeakHeight()
	slope := slopeLength(s.Width, peak)

	walls := uniformSection(model.SectionShedWalls,
		ceilCount(s.Width, sheetWidth)*2,
		s.WallHeight,
		2*rectPerimeter(s.Width, s.WallHeight))

	sideCount := ceilCount(s.Depth, sheetWidth)
	side := model.SectionResult{
		Name:          model.SectionShedSideWall,
		SheetCount:    sideCount,
		Length:        model.Range(s.WallHeight, s.WallHeight+peak),
		LinearFeet:    float64(sideCount) * (s.WallHeight + peak),
		PerimeterFeet: s.WallHeight + (s.WallHeight + peak) + s.Depth + slopeLength(s.Depth, peak),
	}

	roof := uniformSection(model.SectionShedRoof,
		ceilCount(s.Depth, sheetWidth),
		ceilTo(slope, 0.5),
		rectPerimeter(s.Depth, slope))

	return []model.SectionResult{walls, side, roof}
}

// porchSections estimates an open porch: one roof plane sloping away from
// the building over the porch depth.
func porchSections(p model.Porch, sheetWidth float64) []model.SectionResult {
	slope := slopeLength(p.Depth, p.PeakHeight())
	roof := uniformSection(model.SectionPorchRoof,
		ceilCount(p.Length, sheetWidth),
		ceilTo(slope, 0.5),
		rectPerimeter(p.Length, slope))
	return []model.SectionResult{roof}
}
