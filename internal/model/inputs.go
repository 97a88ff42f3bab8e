package model

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Inputs is the flat parameter record gathered by a front end (form, CLI
// flags or an imported parameter sheet). The ranges mirror what the input
// widgets accept; Build turns a valid record into engine inputs.
type Inputs struct {
	Length           float64 `json:"length" validate:"gte=1,lte=200"`
	Width            float64 `json:"width" validate:"gte=1,lte=200"`
	WallHeight       float64 `json:"wall_height" validate:"gte=1,lte=40"`
	Pitch            float64 `json:"pitch" validate:"gte=1,lte=12"`
	OverhangInches   float64 `json:"overhang_inches" validate:"gte=0,lte=48"`
	SheetWidthInches float64 `json:"sheet_width_inches" validate:"gte=10,lte=48"`

	Attachment AttachmentKind `json:"attachment" validate:"omitempty,oneof=none shed porch"`

	ShedWidth      float64 `json:"shed_width" validate:"gte=0,lte=200"`
	ShedDepth      float64 `json:"shed_depth" validate:"gte=0,lte=200"`
	ShedPitch      float64 `json:"shed_pitch" validate:"gte=0,lte=12"`
	ShedWallHeight float64 `json:"shed_wall_height" validate:"gte=0,lte=40"`

	PorchLength float64 `json:"porch_length" validate:"gte=0,lte=200"`
	PorchDepth  float64 `json:"porch_depth" validate:"gte=0,lte=40"`
	PorchPitch  float64 `json:"porch_pitch" validate:"gte=0,lte=12"`
}

// DefaultInputs returns the form defaults: a 40x30 ft building with 10 ft
// walls, a 4/12 roof, 16 in overhang and 36 in sheets.
func DefaultInputs() Inputs {
	return Inputs{
		Length:           40,
		Width:            30,
		WallHeight:       10,
		Pitch:            4,
		OverhangInches:   16,
		SheetWidthInches: 36,
		Attachment:       AttachmentNone,
		ShedPitch:        4,
		PorchPitch:       4,
	}
}

var validate *validator.Validate

func init() {
	validate = validator.New()
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return fld.Name
		}
		return name
	})
}

// Validate range-checks the building fields and those of the selected
// attachment kind, joining all failures into one error. Fields of the
// unselected kinds are ignored.
func (in Inputs) Validate() error {
	err := validate.Struct(in.selectedOnly())
	if err == nil {
		return nil
	}
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return err
	}
	messages := make([]string, 0, len(validationErrors))
	for _, e := range validationErrors {
		messages = append(messages, describeFieldError(e))
	}
	return fmt.Errorf("%s", strings.Join(messages, "; "))
}

func describeFieldError(e validator.FieldError) string {
	field := strings.ReplaceAll(e.Field(), "_", " ")
	switch e.Tag() {
	case "gte":
		return fmt.Sprintf("%s must be at least %s (got %v)", field, e.Param(), e.Value())
	case "lte":
		return fmt.Sprintf("%s must be at most %s (got %v)", field, e.Param(), e.Value())
	case "oneof":
		return fmt.Sprintf("%s must be one of [%s] (got %v)", field, e.Param(), e.Value())
	default:
		return fmt.Sprintf("%s failed %q (got %v)", field, e.Tag(), e.Value())
	}
}

// selectedOnly returns a copy with the fields of unselected attachment kinds zeroed.
func (in Inputs) selectedOnly() Inputs {
	if in.Attachment != AttachmentShed {
		in.ShedWidth, in.ShedDepth, in.ShedPitch, in.ShedWallHeight = 0, 0, 0, 0
	}
	if in.Attachment != AttachmentPorch {
		in.PorchLength, in.PorchDepth, in.PorchPitch = 0, 0, 0
	}
	return in
}

// Building returns the main building part of the record.
func (in Inputs) Building() BuildingSpec {
	return BuildingSpec{
		Length:           in.Length,
		Width:            in.Width,
		WallHeight:       in.WallHeight,
		Pitch:            in.Pitch,
		OverhangInches:   in.OverhangInches,
		SheetWidthInches: in.SheetWidthInches,
	}
}

// AttachmentSpec returns the selected attachment. Fields belonging to the
// unselected kinds are ignored.
func (in Inputs) AttachmentSpec() Attachment {
	switch in.Attachment {
	case AttachmentShed:
		return Shed{Width: in.ShedWidth, Depth: in.ShedDepth, Pitch: in.ShedPitch, WallHeight: in.ShedWallHeight}
	case AttachmentPorch:
		return Porch{Length: in.PorchLength, Depth: in.PorchDepth, Pitch: in.PorchPitch}
	default:
		return NoAttachment{}
	}
}

// Build validates the record and returns the engine inputs.
func (in Inputs) Build() (BuildingSpec, Attachment, error) {
	if err := in.Validate(); err != nil {
		return BuildingSpec{}, nil, err
	}
	return in.Building(), in.AttachmentSpec(), nil
}
