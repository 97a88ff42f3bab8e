package model

// AttachmentKind identifies the secondary structure attached to the building.
type AttachmentKind string

const (
	AttachmentNone  AttachmentKind = "none"
	AttachmentShed  AttachmentKind = "shed"
	AttachmentPorch AttachmentKind = "porch"
)

// AttachmentKinds lists the selectable kinds in display order.
func AttachmentKinds() []AttachmentKind {
	return []AttachmentKind{AttachmentNone, AttachmentShed, AttachmentPorch}
}

func (k AttachmentKind) String() string {
	switch k {
	case AttachmentShed:
		return "Shed"
	case AttachmentPorch:
		return "Porch"
	default:
		return "None"
	}
}

// Attachment is the optional lean-to structure. It is one of NoAttachment,
// Shed or Porch.
type Attachment interface {
	Kind() AttachmentKind
	// Active reports whether every dimension is present. An inactive
	// attachment is estimated exactly like NoAttachment.
	Active() bool
	// Validate checks an active attachment for values the engine cannot use.
	Validate() error
	attachment()
}

// NoAttachment means the building stands alone.
type NoAttachment struct{}

func (NoAttachment) Kind() AttachmentKind { return AttachmentNone }
func (NoAttachment) Active() bool         { return false }
func (NoAttachment) Validate() error      { return nil }
func (NoAttachment) attachment()          {}

// Shed is a single-slope lean-to with its own walls.
type Shed struct {
	Width      float64 `json:"width"`       // Run away from the main wall (ft)
	Depth      float64 `json:"depth"`       // Length along the main wall (ft)
	Pitch      float64 `json:"pitch"`       // Rise per 12 run
	WallHeight float64 `json:"wall_height"` // Low-side wall height (ft)
}

func (Shed) Kind() AttachmentKind { return AttachmentShed }

func (s Shed) Active() bool {
	return s.Width > 0 && s.Depth > 0 && s.Pitch > 0 && s.WallHeight > 0
}

func (s Shed) Validate() error {
	if !s.Active() {
		return nil
	}
	for _, d := range []struct {
		field string
		value float64
	}{
		{"shed width", s.Width},
		{"shed depth", s.Depth},
		{"shed wall height", s.WallHeight},
	} {
		if !finite(d.value) {
			return dimensionError(d.field, d.value)
		}
	}
	if !validPitch(s.Pitch) {
		return pitchError("shed pitch", s.Pitch)
	}
	return nil
}

func (Shed) attachment() {}

// PeakHeight is the rise of the shed roof over its full run (ft).
func (s Shed) PeakHeight() float64 {
	return s.Width * (s.Pitch / 12)
}

// Porch is an open single-slope roof; it has no walls to sheet.
type Porch struct {
	Length float64 `json:"length"` // Along the main wall (ft)
	Depth  float64 `json:"depth"`  // Run away from the main wall (ft)
	Pitch  float64 `json:"pitch"`  // Rise per 12 run
}

func (Porch) Kind() AttachmentKind { return AttachmentPorch }

func (p Porch) Active() bool {
	return p.Length > 0 && p.Depth > 0 && p.Pitch > 0
}

func (p Porch) Validate() error {
	if !p.Active() {
		return nil
	}
	if !finite(p.Length) {
		return dimensionError("porch length", p.Length)
	}
	if !finite(p.Depth) {
		return dimensionError("porch depth", p.Depth)
	}
	if !validPitch(p.Pitch) {
		return pitchError("porch pitch", p.Pitch)
	}
	return nil
}

func (Porch) attachment() {}

// PeakHeight is the rise of the porch roof over its depth (ft).
func (p Porch) PeakHeight() float64 {
	return p.Depth * (p.Pitch / 12)
}
