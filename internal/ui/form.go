package ui

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/piwi3910/sheathcalc/internal/model"
)

// formField binds one numeric entry to a field of model.Inputs.
type formField struct {
	label string
	hint  string
	value func(in *model.Inputs) *float64
}

var buildingFields = []formField{
	{"Length (ft)", "Eave wall length", func(in *model.Inputs) *float64 { return &in.Length }},
	{"Width (ft)", "Gable wall width", func(in *model.Inputs) *float64 { return &in.Width }},
	{"Wall Height (ft)", "Foundation to top plate", func(in *model.Inputs) *float64 { return &in.WallHeight }},
	{"Pitch (x/12)", "Rise per 12 of run, 1 to 12", func(in *model.Inputs) *float64 { return &in.Pitch }},
	{"Overhang (in)", "Roof overhang past each wall", func(in *model.Inputs) *float64 { return &in.OverhangInches }},
	{"Sheet Width (in)", "Usable width of one sheet", func(in *model.Inputs) *float64 { return &in.SheetWidthInches }},
}

var shedFields = []formField{
	{"Shed Width (ft)", "Projection from the building", func(in *model.Inputs) *float64 { return &in.ShedWidth }},
	{"Shed Depth (ft)", "Along the building wall", func(in *model.Inputs) *float64 { return &in.ShedDepth }},
	{"Shed Pitch (x/12)", "", func(in *model.Inputs) *float64 { return &in.ShedPitch }},
	{"Shed Wall Height (ft)", "Low side wall height", func(in *model.Inputs) *float64 { return &in.ShedWallHeight }},
}

var porchFields = []formField{
	{"Porch Length (ft)", "Along the building wall", func(in *model.Inputs) *float64 { return &in.PorchLength }},
	{"Porch Depth (ft)", "Projection from the building", func(in *model.Inputs) *float64 { return &in.PorchDepth }},
	{"Porch Pitch (x/12)", "", func(in *model.Inputs) *float64 { return &in.PorchPitch }},
}

// inputForm is the parameter form. Shed and porch entries are enabled only
// while their attachment kind is selected.
type inputForm struct {
	building   []*widget.Entry
	shed       []*widget.Entry
	porch      []*widget.Entry
	attachment *widget.Select

	// OnSubmit is called when Enter is pressed in any entry.
	OnSubmit func()
}

func newInputForm() *inputForm {
	f := &inputForm{}
	f.building = f.newEntries(buildingFields)
	f.shed = f.newEntries(shedFields)
	f.porch = f.newEntries(porchFields)

	options := make([]string, 0, len(model.AttachmentKinds()))
	for _, k := range model.AttachmentKinds() {
		options = append(options, k.String())
	}
	f.attachment = widget.NewSelect(options, func(string) { f.updateEnabled() })
	f.attachment.SetSelected(model.AttachmentNone.String())
	return f
}

func (f *inputForm) newEntries(fields []formField) []*widget.Entry {
	entries := make([]*widget.Entry, len(fields))
	for i := range fields {
		e := widget.NewEntry()
		e.OnSubmitted = func(string) {
			if f.OnSubmit != nil {
				f.OnSubmit()
			}
		}
		entries[i] = e
	}
	return entries
}

// selectedKind maps the select's display name back to an AttachmentKind.
func (f *inputForm) selectedKind() model.AttachmentKind {
	for _, k := range model.AttachmentKinds() {
		if k.String() == f.attachment.Selected {
			return k
		}
	}
	return model.AttachmentNone
}

func (f *inputForm) updateEnabled() {
	kind := f.selectedKind()
	setEnabled(f.shed, kind == model.AttachmentShed)
	setEnabled(f.porch, kind == model.AttachmentPorch)
}

func setEnabled(entries []*widget.Entry, enabled bool) {
	for _, e := range entries {
		if enabled {
			e.Enable()
		} else {
			e.Disable()
		}
	}
}

// Set fills every entry from in.
func (f *inputForm) Set(in model.Inputs) {
	fill := func(fields []formField, entries []*widget.Entry) {
		for i, field := range fields {
			entries[i].SetText(strconv.FormatFloat(*field.value(&in), 'f', -1, 64))
		}
	}
	fill(buildingFields, f.building)
	fill(shedFields, f.shed)
	fill(porchFields, f.porch)

	kind := in.Attachment
	if kind == "" {
		kind = model.AttachmentNone
	}
	f.attachment.SetSelected(kind.String())
	f.updateEnabled()
}

// Read parses every entry. Fields of the unselected attachment kinds are
// read too so switching kinds keeps what was typed; blank ones count as 0.
func (f *inputForm) Read() (model.Inputs, error) {
	var in model.Inputs
	var problems []string

	read := func(fields []formField, entries []*widget.Entry, required bool) {
		for i, field := range fields {
			text := strings.TrimSpace(entries[i].Text)
			if text == "" && !required {
				*field.value(&in) = 0
				continue
			}
			v, err := strconv.ParseFloat(text, 64)
			if err != nil {
				problems = append(problems, fmt.Sprintf("%s: %q is not a number", field.label, text))
				continue
			}
			*field.value(&in) = v
		}
	}
	read(buildingFields, f.building, true)
	read(shedFields, f.shed, false)
	read(porchFields, f.porch, false)
	in.Attachment = f.selectedKind()

	if len(problems) > 0 {
		return in, errors.New(strings.Join(problems, "\n"))
	}
	return in, nil
}

// Build lays out the form in three cards.
func (f *inputForm) Build() fyne.CanvasObject {
	items := func(fields []formField, entries []*widget.Entry) *widget.Form {
		form := widget.NewForm()
		for i, field := range fields {
			item := widget.NewFormItem(field.label, entries[i])
			item.HintText = field.hint
			form.AppendItem(item)
		}
		return form
	}

	attachmentForm := widget.NewForm(widget.NewFormItem("Attachment", f.attachment))

	return container.NewVBox(
		widget.NewCard("Building", "", items(buildingFields, f.building)),
		widget.NewCard("Attachment", "", container.NewVBox(
			attachmentForm,
			widget.NewLabelWithStyle("Shed", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
			items(shedFields, f.shed),
			widget.NewLabelWithStyle("Porch", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
			items(porchFields, f.porch),
		)),
	)
}
