package engine

import (
	"math"

	"github.com/piwi3910/sheathcalc/internal/model"
)

// GableSequence returns the staggered panel lengths (ft) for one gable end:
// panels climbing from the eave to the ridge on one slope, followed by the
// mirror image for the other slope. Both panels beside the ridge are kept,
// so the sequence has 2*sheetsPerSide entries and starts and ends with the
// same length.
//
// Each panel is one rise step longer than its neighbour towards the eave,
// where a step is the rise over one sheet width rounded up to a whole inch.
func GableSequence(b model.BuildingSpec) []float64 {
	sheetWidth := b.SheetWidthFeet()
	perSide := ceilCount(b.Width, 2*sheetWidth)
	if perSide <= 0 {
		return []float64{}
	}

	riseInches := math.Ceil(b.SheetWidthInches*b.Pitch/12 - ceilEpsilon)
	riseFeet := riseInches / 12

	seq := make([]float64, 2*perSide)
	for k := 0; k < perSide; k++ {
		length := roundToInch(b.WallHeight + float64(k+1)*riseFeet)
		seq[k] = length
		seq[len(seq)-1-k] = length
	}
	return seq
}

// gableTriangles covers the triangular caps of both gable ends. The same
// sequence applies to both ends.
func gableTriangles(b model.BuildingSpec, g geometry) model.SectionResult {
	seq := GableSequence(b)

	var run float64
	for _, l := range seq {
		run += l
	}

	return model.SectionResult{
		Name:          model.SectionGableTriangles,
		SheetCount:    2 * len(seq),
		Length:        model.Staggered(seq),
		LinearFeet:    2 * run,
		PerimeterFeet: 2 * (g.gableWidth + 2*g.roofSlope),
	}
}
