package commands

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/piwi3910/TrayCalc/internal/engine"
	"github.com/piwi3910/TrayCalc/internal/export"
	"github.com/piwi3910/TrayCalc/internal/model"
	"github.com/piwi3910/TrayCalc/internal/project"
)

var exportFormats = []string{"pdf", "csv", "xlsx", "dxf", "labels"}

func newExportCmd(opts *rootOptions) *cobra.Command {
	var (
		format string
		out    string
		title  string
		author string
	)

	cmd := &cobra.Command{
		Use:   "export <workingset>...",
		Short: "Export a calculation report (PDF, CSV, XLSX), a DXF cross-section or tray labels",
		Long: `Export a working set as a PDF, CSV or XLSX calculation report, a DXF
cross-section drawing, or a sheet of QR-coded tray labels.

The labels format accepts several working sets and prints one label
each; the other formats take exactly one.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			format = strings.ToLower(format)
			if !validFormat(format) {
				return fmt.Errorf("unknown format %q (want one of %s)", format, strings.Join(exportFormats, ", "))
			}
			if format != "labels" && len(args) != 1 {
				return fmt.Errorf("format %s takes exactly one working set, got %d", format, len(args))
			}

			cfg := opts.config
			if title != "" {
				cfg.ReportTitle = title
			}
			if author != "" {
				cfg.ReportAuthor = author
			}

			sets := make([]model.WorkingSet, 0, len(args))
			for _, path := range args {
				ws, err := project.LoadWorkingSet(path)
				if err != nil {
					return err
				}
				sets = append(sets, ws)
			}

			if out == "" {
				out = defaultOutput(args[0], format)
			}

			now := time.Now()
			var err error
			switch format {
			case "pdf":
				err = export.ExportPDF(out, export.NewReport(sets[0], cfg, now))
			case "csv":
				err = export.ExportCSV(out, export.NewReport(sets[0], cfg, now))
			case "xlsx":
				err = export.ExportXLSX(out, export.NewReport(sets[0], cfg, now))
			case "dxf":
				ws := sets[0]
				err = export.ExportDXF(out, engine.LayoutCrossSection(ws.Cables, ws.Tray, cfg.EffectiveFillRatioForHeight))
			case "labels":
				reports := make([]export.Report, 0, len(sets))
				for _, ws := range sets {
					reports = append(reports, export.NewReport(ws, cfg, now))
				}
				err = export.ExportLabels(out, reports)
			}
			if err != nil {
				return fmt.Errorf("export %s: %w", format, err)
			}

			opts.logger.Info("exported", "format", format, "path", out)
			fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", out)
			return nil
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "pdf", "output format: "+strings.Join(exportFormats, ", "))
	cmd.Flags().StringVarP(&out, "out", "o", "", "output file (default: working set name with the format's extension)")
	cmd.Flags().StringVar(&title, "title", "", "report title (overrides config)")
	cmd.Flags().StringVar(&author, "author", "", "report author (overrides config)")
	return cmd
}

func validFormat(f string) bool {
	for _, v := range exportFormats {
		if f == v {
			return true
		}
	}
	return false
}

// defaultOutput swaps the working set's extension for the format's.
func defaultOutput(input, format string) string {
	base := strings.TrimSuffix(input, filepath.Ext(input))
	switch format {
	case "labels":
		return base + "-labels.pdf"
	default:
		return base + "." + format
	}
}
