package widgets

import (
	"fmt"
	"image/color"
	"math"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/widget"

	"github.com/piwi3910/sheathcalc/internal/engine"
	"github.com/piwi3910/sheathcalc/internal/model"
)

// Panel colors, alternated so neighbouring sheets stand apart.
var panelColors = []color.NRGBA{
	{R: 210, G: 180, B: 140, A: 255}, // wood
	{R: 188, G: 158, B: 118, A: 255}, // darker wood
}

var (
	outlineColor = color.NRGBA{R: 40, G: 40, B: 40, A: 255}
	roofColor    = color.NRGBA{R: 200, G: 40, B: 40, A: 255}
)

// GableCanvas draws one gable end: the wall outline, the roof line with
// overhangs and the staggered triangle panels standing on the foundation.
type GableCanvas struct {
	widget.BaseWidget
	building  model.BuildingSpec
	maxWidth  float32
	maxHeight float32
}

func NewGableCanvas(b model.BuildingSpec, maxW, maxH float32) *GableCanvas {
	gc := &GableCanvas{
		building:  b,
		maxWidth:  maxW,
		maxHeight: maxH,
	}
	gc.ExtendBaseWidget(gc)
	return gc
}

// SetBuilding redraws the canvas for another building.
func (gc *GableCanvas) SetBuilding(b model.BuildingSpec) {
	gc.building = b
	gc.Refresh()
}

func (gc *GableCanvas) CreateRenderer() fyne.WidgetRenderer {
	return newGableCanvasRenderer(gc)
}

// gableLayout is the drawing geometry in feet, x to the right and y up
// from the bottom-left wall corner.
type gableLayout struct {
	minX, maxX, maxY float64
	roof             [3][2]float64
	panelX           float64
	sheetWidth       float64
	lengths          []float64
}

func layoutGable(b model.BuildingSpec) gableLayout {
	sw := b.SheetWidthFeet()
	ovh := b.OverhangFeet()
	peak := (b.Width/2 + ovh) * b.Pitch / model.MaxPitch
	seq := engine.GableSequence(b)
	span := float64(len(seq)) * sw

	l := gableLayout{
		roof: [3][2]float64{
			{-ovh, b.WallHeight},
			{b.Width / 2, b.WallHeight + peak},
			{b.Width + ovh, b.WallHeight},
		},
		panelX:     b.Width/2 - span/2,
		sheetWidth: sw,
		lengths:    seq,
	}
	l.minX = math.Min(-ovh, l.panelX)
	l.maxX = math.Max(b.Width+ovh, l.panelX+span)
	l.maxY = b.WallHeight + peak
	for _, v := range seq {
		l.maxY = math.Max(l.maxY, v)
	}
	return l
}

// scale fits the layout into the widget bounds.
func (l gableLayout) scale(maxW, maxH float32) float32 {
	spanX := l.maxX - l.minX
	if spanX <= 0 || l.maxY <= 0 {
		return 0
	}
	return float32(math.Min(float64(maxW)/spanX, float64(maxH)/l.maxY))
}

type gableCanvasRenderer struct {
	gc      *GableCanvas
	objects []fyne.CanvasObject
}

func newGableCanvasRenderer(gc *GableCanvas) *gableCanvasRenderer {
	r := &gableCanvasRenderer{gc: gc}
	r.rebuild()
	return r
}

func (r *gableCanvasRenderer) rebuild() {
	r.objects = nil

	b := r.gc.building
	if b.Validate() != nil {
		return
	}
	l := layoutGable(b)
	scale := l.scale(r.gc.maxWidth, r.gc.maxHeight)
	if scale == 0 {
		return
	}
	canvasH := float32(l.maxY) * scale

	// Building coordinates to widget coordinates; widget y grows downwards.
	toPos := func(x, y float64) fyne.Position {
		return fyne.NewPos(float32(x-l.minX)*scale, canvasH-float32(y)*scale)
	}

	for i, length := range l.lengths {
		x := l.panelX + float64(i)*l.sheetWidth
		pw := float32(l.sheetWidth) * scale
		ph := float32(length) * scale

		panel := canvas.NewRectangle(panelColors[i%len(panelColors)])
		panel.StrokeColor = outlineColor
		panel.StrokeWidth = 1
		panel.Resize(fyne.NewSize(pw, ph))
		panel.Move(toPos(x, length))
		r.objects = append(r.objects, panel)

		// Label (only if big enough)
		if pw > 18 {
			label := canvas.NewText(fmt.Sprintf("%g", length), color.Black)
			label.TextSize = 9
			label.Move(toPos(x, length).AddXY(2, 2))
			r.objects = append(r.objects, label)
		}
	}

	wall := canvas.NewRectangle(color.Transparent)
	wall.StrokeColor = outlineColor
	wall.StrokeWidth = 2
	wall.Resize(fyne.NewSize(float32(b.Width)*scale, float32(b.WallHeight)*scale))
	wall.Move(toPos(0, b.WallHeight))
	r.objects = append(r.objects, wall)

	for i := 0; i+1 < len(l.roof); i++ {
		line := canvas.NewLine(roofColor)
		line.StrokeWidth = 2
		line.Position1 = toPos(l.roof[i][0], l.roof[i][1])
		line.Position2 = toPos(l.roof[i+1][0], l.roof[i+1][1])
		r.objects = append(r.objects, line)
	}
}

func (r *gableCanvasRenderer) Layout(size fyne.Size)        {}
func (r *gableCanvasRenderer) Refresh()                     { r.rebuild(); canvas.Refresh(r.gc) }
func (r *gableCanvasRenderer) Destroy()                     {}
func (r *gableCanvasRenderer) Objects() []fyne.CanvasObject { return r.objects }
func (r *gableCanvasRenderer) MinSize() fyne.Size {
	if r.gc.building.Validate() != nil {
		return fyne.NewSize(0, 0)
	}
	l := layoutGable(r.gc.building)
	scale := l.scale(r.gc.maxWidth, r.gc.maxHeight)
	return fyne.NewSize(float32(l.maxX-l.minX)*scale, float32(l.maxY)*scale)
}
