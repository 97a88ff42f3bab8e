package cli

import (
	"github.com/spf13/cobra"

	"github.com/piwi3910/sheathcalc/internal/engine"
)

func newCompareCmd(app *cliApp) *cobra.Command {
	var (
		opts   inputOptions
		format string
		widths []float64
	)

	cmd := &cobra.Command{
		Use:   "compare",
		Short: "Compare sheet counts across sheet widths",
		Long: `Estimate the same building with several sheet widths. The widths default to
compare_widths from the config file; the current --sheet-width is marked.`,
		Example: `  sheathcalc-cli compare --length 40 --width 30 --widths 24,36,48`,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := validFormat(format); err != nil {
				return err
			}
			cfg, err := app.loadConfig()
			if err != nil {
				return err
			}
			_, b, att, err := opts.build(cmd, app.fs, cfg)
			if err != nil {
				return err
			}
			if !cmd.Flags().Changed("widths") {
				widths = cfg.CompareWidths
			}

			rows := comparisonRows(engine.CompareSheetWidths(b, att, widths))
			if format == formatJSON {
				return writeJSON(cmd.OutOrStdout(), rows)
			}
			return writeComparisonTable(cmd.OutOrStdout(), rows)
		},
	}

	opts.register(cmd)
	cmd.Flags().StringVarP(&format, "format", "f", formatTable, "output format: table or json")
	cmd.Flags().Float64SliceVar(&widths, "widths", engine.DefaultSheetWidths(), "sheet widths to compare (in)")
	return cmd
}
