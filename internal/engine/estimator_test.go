package engine

import (
	"errors"
	"math"
	"testing"

	"github.com/piwi3910/sheathcalc/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func referenceBuilding() model.BuildingSpec {
	return model.BuildingSpec{
		Length:           40,
		Width:            30,
		WallHeight:       10,
		Pitch:            4,
		OverhangInches:   16,
		SheetWidthInches: 36,
	}
}

func section(t *testing.T, est model.Estimate, name string) model.SectionResult {
	t.Helper()
	s, ok := est.Section(name)
	require.True(t, ok, "missing section %q", name)
	return s
}

func TestEstimate_ReferenceBuilding(t *testing.T) {
	est, err := Estimate(referenceBuilding(), model.NoAttachment{})
	require.NoError(t, err)

	eave := section(t, est, model.SectionEaveWalls)
	assert.Equal(t, 28, eave.SheetCount)
	assert.Equal(t, model.Uniform(10), eave.Length)
	assert.InDelta(t, 280.0, eave.LinearFeet, 1e-9)
	assert.InDelta(t, 200.0, eave.PerimeterFeet, 1e-9)

	gableWalls := section(t, est, model.SectionGableWalls)
	assert.Equal(t, 20, gableWalls.SheetCount)
	assert.Equal(t, 10.0, gableWalls.Length.Value)

	tri := section(t, est, model.SectionGableTriangles)
	assert.Equal(t, model.LengthStaggered, tri.Length.Kind)
	assert.Equal(t, []float64{11, 12, 13, 14, 15, 15, 14, 13, 12, 11}, tri.Length.Values)
	assert.Equal(t, 20, tri.SheetCount)
	assert.InDelta(t, 260.0, tri.LinearFeet, 1e-9)

	roof := section(t, est, model.SectionRoof)
	assert.Equal(t, 30, roof.SheetCount)
	assert.Equal(t, 17.5, roof.Length.Value)
}

func TestEstimate_ReferenceGeometry(t *testing.T) {
	g := newGeometry(referenceBuilding())

	assert.InDelta(t, 32.667, g.gableWidth, 1e-3)
	assert.InDelta(t, 16.333, g.halfGable, 1e-3)
	assert.InDelta(t, 5.444, g.peakHeight, 1e-3)
	assert.InDelta(t, 17.22, g.roofSlope, 1e-2)
	assert.InDelta(t, 42.667, g.roofLength, 1e-3)
}

func TestEstimate_SectionOrderWithoutAttachment(t *testing.T) {
	est, err := Estimate(referenceBuilding(), model.NoAttachment{})
	require.NoError(t, err)

	assert.Equal(t, []string{
		model.SectionEaveWalls,
		model.SectionGableWalls,
		model.SectionGableTriangles,
		model.SectionRoof,
	}, est.Names())
}

func TestEstimate_NilAttachmentIsNone(t *testing.T) {
	est, err := Estimate(referenceBuilding(), nil)
	require.NoError(t, err)
	assert.Len(t, est.Sections, 4)
}

func TestEstimate_Shed(t *testing.T) {
	shed := model.Shed{Width: 10, Depth: 12, Pitch: 3, WallHeight: 8}
	est, err := Estimate(referenceBuilding(), shed)
	require.NoError(t, err)

	assert.Equal(t, []string{
		model.SectionEaveWalls,
		model.SectionGableWalls,
		model.SectionGableTriangles,
		model.SectionRoof,
		model.SectionShedWalls,
		model.SectionShedSideWall,
		model.SectionShedRoof,
	}, est.Names())

	walls := section(t, est, model.SectionShedWalls)
	assert.Equal(t, 8, walls.SheetCount)
	assert.Equal(t, 8.0, walls.Length.Value)

	side := section(t, est, model.SectionShedSideWall)
	assert.Equal(t, 4, side.SheetCount)
	assert.Equal(t, model.LengthRange, side.Length.Kind)
	assert.Equal(t, 8.0, side.Length.Min)
	assert.InDelta(t, 10.5, side.Length.Max, 1e-9)

	roof := section(t, est, model.SectionShedRoof)
	assert.Equal(t, 4, roof.SheetCount, "lean-to roof has a single plane")
	assert.Equal(t, 10.5, roof.Length.Value)
}

func TestEstimate_Porch(t *testing.T) {
	porch := model.Porch{Length: 20, Depth: 8, Pitch: 3}
	est, err := Estimate(referenceBuilding(), porch)
	require.NoError(t, err)

	require.Len(t, est.Sections, 5)
	roof := section(t, est, model.SectionPorchRoof)
	assert.Equal(t, 7, roof.SheetCount)
	assert.Equal(t, 8.5, roof.Length.Value)
	assert.InDelta(t, 59.5, roof.LinearFeet, 1e-9)
}

func TestEstimate_IncompleteAttachmentIsSkipped(t *testing.T) {
	attachments := []model.Attachment{
		model.Porch{Length: 20, Depth: 0, Pitch: 3},
		model.Porch{Length: -5, Depth: 8, Pitch: 3},
		model.Shed{Width: 10, Depth: 12, Pitch: 3, WallHeight: 0},
		model.Shed{},
	}
	for _, att := range attachments {
		est, err := Estimate(referenceBuilding(), att)
		require.NoError(t, err, "attachment %+v", att)
		assert.Len(t, est.Sections, 4, "attachment %+v should be skipped", att)
	}
}

func TestEstimate_InvalidInputs(t *testing.T) {
	tests := []struct {
		name string
		mod  func(*model.BuildingSpec)
		att  model.Attachment
		want error
	}{
		{"zero length", func(b *model.BuildingSpec) { b.Length = 0 }, nil, model.ErrInvalidDimension},
		{"negative width", func(b *model.BuildingSpec) { b.Width = -30 }, nil, model.ErrInvalidDimension},
		{"zero wall height", func(b *model.BuildingSpec) { b.WallHeight = 0 }, nil, model.ErrInvalidDimension},
		{"zero sheet width", func(b *model.BuildingSpec) { b.SheetWidthInches = 0 }, nil, model.ErrInvalidDimension},
		{"pitch zero", func(b *model.BuildingSpec) { b.Pitch = 0 }, nil, model.ErrInvalidPitch},
		{"pitch above twelve", func(b *model.BuildingSpec) { b.Pitch = 13 }, nil, model.ErrInvalidPitch},
		{"steep shed", func(b *model.BuildingSpec) {}, model.Shed{Width: 10, Depth: 12, Pitch: 15, WallHeight: 8}, model.ErrInvalidPitch},
		{"infinite porch", func(b *model.BuildingSpec) {}, model.Porch{Length: math.Inf(1), Depth: 8, Pitch: 3}, model.ErrInvalidDimension},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			b := referenceBuilding()
			tc.mod(&b)
			_, err := Estimate(b, tc.att)
			require.Error(t, err)
			assert.True(t, errors.Is(err, tc.want), "expected %v, got %v", tc.want, err)
		})
	}
}

func TestEstimate_DoesNotMutateInputs(t *testing.T) {
	b := referenceBuilding()
	shed := model.Shed{Width: 10, Depth: 12, Pitch: 3, WallHeight: 8}

	_, err := Estimate(b, shed)
	require.NoError(t, err)

	assert.Equal(t, referenceBuilding(), b)
	assert.Equal(t, model.Shed{Width: 10, Depth: 12, Pitch: 3, WallHeight: 8}, shed)
}

func TestEstimate_Idempotent(t *testing.T) {
	porch := model.Porch{Length: 24, Depth: 10, Pitch: 2.5}
	first, err := Estimate(referenceBuilding(), porch)
	require.NoError(t, err)
	second, err := Estimate(referenceBuilding(), porch)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestEstimate_ExactMultipleDoesNotAddPanel(t *testing.T) {
	b := referenceBuilding()
	b.Width = 32
	b.SheetWidthInches = 32 // 2.667 ft, 32 / 2.667 == 12

	est, err := Estimate(b, nil)
	require.NoError(t, err)
	assert.Equal(t, 24, section(t, est, model.SectionGableWalls).SheetCount)
}

func TestEstimate_SheetWiderThanBuilding(t *testing.T) {
	b := referenceBuilding()
	b.Width = 2
	b.Length = 3
	b.SheetWidthInches = 48

	est, err := Estimate(b, nil)
	require.NoError(t, err)

	tri := section(t, est, model.SectionGableTriangles)
	assert.Len(t, tri.Length.Values, 2)
	assert.Equal(t, 4, tri.SheetCount)
	assert.Equal(t, 2, section(t, est, model.SectionEaveWalls).SheetCount)
}

func TestEstimate_EaveCountProperty(t *testing.T) {
	for _, sheetIn := range []float64{24, 36, 48} {
		swFt := sheetIn / 12
		for length := 1.0; length <= 200; length += 7.5 {
			for _, pitch := range []float64{0.5, 4, 12} {
				b := referenceBuilding()
				b.Length = length
				b.Pitch = pitch
				b.SheetWidthInches = sheetIn

				est, err := Estimate(b, nil)
				require.NoError(t, err)

				count := section(t, est, model.SectionEaveWalls).SheetCount
				assert.Equal(t, int(math.Ceil(length/swFt))*2, count, "length=%v sheet=%v", length, sheetIn)
				assert.Equal(t, 0, count%2)
				assert.GreaterOrEqual(t, count, 2)
			}
		}
	}
}

func TestEstimate_RoofLengthBoundProperty(t *testing.T) {
	for width := 4.0; width <= 80; width += 3.3 {
		for _, pitch := range []float64{1, 2.5, 4, 6, 9, 12} {
			for _, overhang := range []float64{0, 6, 16, 24} {
				b := referenceBuilding()
				b.Width = width
				b.Pitch = pitch
				b.OverhangInches = overhang

				est, err := Estimate(b, nil)
				require.NoError(t, err)

				slope := newGeometry(b).roofSlope
				got := section(t, est, model.SectionRoof).Length.Value
				assert.GreaterOrEqual(t, got, slope)
				assert.Less(t, got-slope, 0.5)
			}
		}
	}
}
