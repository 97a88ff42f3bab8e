package cli

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/piwi3910/sheathcalc/internal/engine"
	"github.com/piwi3910/sheathcalc/internal/export"
)

func newExportCmd(app *cliApp) *cobra.Command {
	var (
		opts                       inputOptions
		pdfPath, xlsxPath, dxfPath string
		jsonPath                   string
	)

	cmd := &cobra.Command{
		Use:     "export",
		Short:   "Write the estimate to PDF, Excel, DXF or JSON files",
		Example: `  sheathcalc-cli export --length 40 --width 30 --pdf barn.pdf --xlsx barn.xlsx`,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			targets := []struct {
				kind  string
				path  string
				write func(string, export.Report) error
			}{
				{"PDF", pdfPath, export.ExportPDF},
				{"Excel", xlsxPath, export.ExportXLSX},
				{"DXF", dxfPath, export.ExportDXF},
				{"JSON", jsonPath, writeReportJSON(app)},
			}
			requested := false
			for _, t := range targets {
				requested = requested || t.path != ""
			}
			if !requested {
				return errors.New("nothing to export: pass at least one of --pdf, --xlsx, --dxf or --json")
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
			report := export.NewReport(in, est)

			for _, t := range targets {
				if t.path == "" {
					continue
				}
				if err := t.write(t.path, report); err != nil {
					return fmt.Errorf("%s export failed: %w", t.kind, err)
				}
				slog.Info("exported estimate", "format", t.kind, "path", t.path, "report", report.ID)
				cmd.Printf("Wrote %s to %s\n", t.kind, t.path)
			}
			return nil
		},
	}

	opts.register(cmd)
	cmd.Flags().StringVar(&pdfPath, "pdf", "", "write a PDF report to this path")
	cmd.Flags().StringVar(&xlsxPath, "xlsx", "", "write an Excel workbook to this path")
	cmd.Flags().StringVar(&dxfPath, "dxf", "", "write a DXF gable drawing to this path")
	cmd.Flags().StringVar(&jsonPath, "json", "", "write the JSON report to this path")
	return cmd
}

// writeReportJSON writes the report through the command's filesystem.
func writeReportJSON(app *cliApp) func(string, export.Report) error {
	return func(path string, r export.Report) error {
		data, err := export.WriteJSON(r)
		if err != nil {
			return err
		}
		return afero.WriteFile(app.fs, path, data, 0644)
	}
}
