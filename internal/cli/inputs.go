package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/piwi3910/sheathcalc/internal/importer"
	"github.com/piwi3910/sheathcalc/internal/model"
)

// inputFlag binds one numeric flag to a field of model.Inputs.
type inputFlag struct {
	name  string
	usage string
	value func(in *model.Inputs) *float64
}

var inputFlags = []inputFlag{
	{"length", "building length along the eave walls (ft)", func(in *model.Inputs) *float64 { return &in.Length }},
	{"width", "building width across the gable walls (ft)", func(in *model.Inputs) *float64 { return &in.Width }},
	{"height", "wall height (ft)", func(in *model.Inputs) *float64 { return &in.WallHeight }},
	{"pitch", "roof pitch, rise per 12 of run", func(in *model.Inputs) *float64 { return &in.Pitch }},
	{"overhang", "roof overhang (in)", func(in *model.Inputs) *float64 { return &in.OverhangInches }},
	{"sheet-width", "sheet width (in)", func(in *model.Inputs) *float64 { return &in.SheetWidthInches }},
	{"shed-width", "shed projection from the building (ft)", func(in *model.Inputs) *float64 { return &in.ShedWidth }},
	{"shed-depth", "shed length along the building (ft)", func(in *model.Inputs) *float64 { return &in.ShedDepth }},
	{"shed-pitch", "shed roof pitch", func(in *model.Inputs) *float64 { return &in.ShedPitch }},
	{"shed-height", "shed low wall height (ft)", func(in *model.Inputs) *float64 { return &in.ShedWallHeight }},
	{"porch-length", "porch length along the building (ft)", func(in *model.Inputs) *float64 { return &in.PorchLength }},
	{"porch-depth", "porch projection from the building (ft)", func(in *model.Inputs) *float64 { return &in.PorchDepth }},
	{"porch-pitch", "porch roof pitch", func(in *model.Inputs) *float64 { return &in.PorchPitch }},
}

// inputOptions holds the raw flag values of a command that takes building
// inputs.
type inputOptions struct {
	flags      model.Inputs
	attachment string
	from       string
}

func (o *inputOptions) register(cmd *cobra.Command) {
	defaults := model.DefaultInputs()
	for _, f := range inputFlags {
		cmd.Flags().Float64Var(f.value(&o.flags), f.name, *f.value(&defaults), f.usage)
	}
	cmd.Flags().StringVar(&o.attachment, "attachment", string(model.AttachmentNone), "attachment: none, shed or porch")
	cmd.Flags().StringVar(&o.from, "from", "", "read parameters from a CSV or XLSX name,value sheet")
}

// resolve builds the inputs from, in increasing priority, the built-in
// defaults, the config defaults, the --from sheet and explicitly set flags.
// The sheet is read from fsys.
func (o *inputOptions) resolve(cmd *cobra.Command, fsys afero.Fs, cfg model.AppConfig) (model.Inputs, error) {
	in := model.DefaultInputs()
	cfg.ApplyToInputs(&in)

	if o.from != "" {
		result := importer.ImportInputsFs(fsys, o.from)
		for _, w := range result.Warnings {
			cmd.PrintErrf("warning: %s: %s\n", o.from, w)
		}
		if len(result.Errors) > 0 && len(result.Values) == 0 {
			return model.Inputs{}, fmt.Errorf("cannot import %s: %s", o.from, strings.Join(result.Errors, "; "))
		}
		for _, e := range result.Errors {
			cmd.PrintErrf("warning: %s: %s\n", o.from, e)
		}
		result.ApplyTo(&in)
	}

	for _, f := range inputFlags {
		if cmd.Flags().Changed(f.name) {
			*f.value(&in) = *f.value(&o.flags)
		}
	}
	if cmd.Flags().Changed("attachment") {
		kind, ok := importer.ParseAttachment(o.attachment)
		if !ok {
			return model.Inputs{}, fmt.Errorf("invalid attachment %q (must be none, shed or porch)", o.attachment)
		}
		in.Attachment = kind
	}
	return in, nil
}

// build resolves the inputs and converts them for the engine.
func (o *inputOptions) build(cmd *cobra.Command, fsys afero.Fs, cfg model.AppConfig) (model.Inputs, model.BuildingSpec, model.Attachment, error) {
	in, err := o.resolve(cmd, fsys, cfg)
	if err != nil {
		return model.Inputs{}, model.BuildingSpec{}, nil, err
	}
	b, att, err := in.Build()
	if err != nil {
		return model.Inputs{}, model.BuildingSpec{}, nil, fmt.Errorf("invalid inputs: %w", err)
	}
	return in, b, att, nil
}
