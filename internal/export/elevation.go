package export

import (
	"github.com/piwi3910/sheathcalc/internal/engine"
	"github.com/piwi3910/sheathcalc/internal/model"
)

// point is a 2D coordinate in feet, origin at the bottom-left wall corner.
type point struct {
	X, Y float64
}

// panelRect is one gable panel standing on the foundation line.
type panelRect struct {
	X, Width, Length float64
}

// elevation is the drawing of one gable end: the wall, the roof line with
// its overhangs and the staggered panels.
type elevation struct {
	Width      float64
	WallHeight float64
	Wall       []point // closed rectangle
	Roof       []point // eave, ridge, eave
	Panels     []panelRect
}

// gableElevation lays the gable panels side by side, centred under the ridge.
func gableElevation(in model.Inputs) elevation {
	b := in.Building()
	sw := b.SheetWidthFeet()
	ovh := b.OverhangFeet()
	peak := (b.Width/2 + ovh) * (b.Pitch / 12)

	e := elevation{
		Width:      b.Width,
		WallHeight: b.WallHeight,
		Wall: []point{
			{0, 0}, {b.Width, 0}, {b.Width, b.WallHeight}, {0, b.WallHeight},
		},
		Roof: []point{
			{-ovh, b.WallHeight},
			{b.Width / 2, b.WallHeight + peak},
			{b.Width + ovh, b.WallHeight},
		},
	}

	seq := engine.GableSequence(b)
	span := float64(len(seq)) * sw
	x0 := b.Width/2 - span/2
	for i, l := range seq {
		e.Panels = append(e.Panels, panelRect{X: x0 + float64(i)*sw, Width: sw, Length: l})
	}
	return e
}

// bounds returns the extent of the drawing.
func (e elevation) bounds() (min, max point) {
	min = e.Roof[0]
	max = e.Roof[2]
	max.Y = e.Roof[1].Y
	min.Y = 0
	for _, p := range e.Panels {
		if p.X < min.X {
			min.X = p.X
		}
		if p.X+p.Width > max.X {
			max.X = p.X + p.Width
		}
		if p.Length > max.Y {
			max.Y = p.Length
		}
	}
	return min, max
}
