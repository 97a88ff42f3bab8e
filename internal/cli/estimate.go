package cli

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/piwi3910/sheathcalc/internal/engine"
	"github.com/piwi3910/sheathcalc/internal/export"
)

// estimateOutput is the JSON document printed by estimate --format json.
type estimateOutput struct {
	export.Report
	CutList []export.CutListItem `json:"cut_list,omitempty"`
}

func newEstimateCmd(app *cliApp) *cobra.Command {
	var (
		opts    inputOptions
		format  string
		cutList bool
	)

	cmd := &cobra.Command{
		Use:   "estimate",
		Short: "Estimate the panels for one building",
		Example: `  sheathcalc-cli estimate --length 40 --width 30 --height 10 --pitch 4
  sheathcalc-cli estimate --attachment shed --shed-width 12 --shed-depth 20 --shed-height 8
  sheathcalc-cli estimate --from barn.csv --format json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := validFormat(format); err != nil {
				return err
			}
			cfg, err := app.loadConfig()
			if err != nil {
				return err
			}
			in, b, att, err := opts.build(cmd, app.fs, cfg)
			if err != nil {
				return err
			}
			est, err := engine.Estimate(b, att)
			if err != nil {
				return err
			}
			slog.Debug("estimate", "building", export.BuildingLabel(in), "attachment", in.Attachment, "sheets", est.TotalSheets())

			w := cmd.OutOrStdout()
			if format == formatJSON {
				out := estimateOutput{Report: export.NewReport(in, est)}
				if cutList {
					out.CutList = export.CutList(est)
				}
				return writeJSON(w, out)
			}
			if err := writeEstimateTable(w, in, est); err != nil {
				return err
			}
			if cutList {
				return writeCutListTable(w, export.CutList(est))
			}
			return nil
		},
	}

	opts.register(cmd)
	cmd.Flags().StringVarP(&format, "format", "f", formatTable, "output format: table or json")
	cmd.Flags().BoolVar(&cutList, "cut-list", false, "also print the cut list")
	return cmd
}
