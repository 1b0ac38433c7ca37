package commands

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/piwi3910/TrayCalc/internal/catalogue"
	cableimporter "github.com/piwi3910/TrayCalc/internal/importer"
	"github.com/piwi3910/TrayCalc/internal/model"
	"github.com/piwi3910/TrayCalc/internal/project"
)

func newImportCmd(opts *rootOptions) *cobra.Command {
	var (
		trayName string
		out      string
		name     string
	)

	cmd := &cobra.Command{
		Use:   "import <cables.csv|cables.xlsx>",
		Short: "Build a working set from a CSV or Excel cable list",
		Long: `Read a cable list (name, diameter, weight, quantity columns) from CSV or
Excel and write it as a working set on the given catalogue tray. Rows
with missing or non-positive values are reported and skipped.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			input := args[0]

			var result cableimporter.ImportResult
			switch strings.ToLower(filepath.Ext(input)) {
			case ".xlsx", ".xlsm":
				result = cableimporter.ImportExcel(input)
			default:
				result = cableimporter.ImportCSV(input)
			}

			for _, w := range result.Warnings {
				opts.logger.Warn("import warning", "detail", w)
			}
			errOut := cmd.ErrOrStderr()
			for _, e := range result.Errors {
				fmt.Fprintln(errOut, "skipped:", e)
			}
			if len(result.Entries) == 0 {
				return errors.New("no cable rows imported")
			}

			ws := model.NewWorkingSet()
			if trayName == "" {
				trayName = opts.config.DefaultTray
			}
			if trayName != "" {
				tray, ok := catalogue.FindTray(trayName)
				if !ok {
					return fmt.Errorf("unknown tray %q (see 'traycalc catalogue trays')", trayName)
				}
				ws.Tray = tray
			}
			if name != "" {
				ws.Name = name
			} else {
				ws.Name = strings.TrimSuffix(filepath.Base(input), filepath.Ext(input))
			}
			ws.Cables = result.Entries

			if out == "" {
				out = strings.TrimSuffix(input, filepath.Ext(input)) + ".json"
			}
			if err := project.SaveWorkingSet(out, ws); err != nil {
				return err
			}

			opts.logger.Info("imported cables", "rows", len(result.Entries), "skipped", len(result.Errors), "path", out)
			fmt.Fprintf(cmd.OutOrStdout(), "Imported %d cable rows into %s (tray %q)\n", len(result.Entries), out, ws.Tray.Name)
			return nil
		},
	}

	cmd.Flags().StringVarP(&trayName, "tray", "t", "", "catalogue tray name (default: config default_tray, else a custom tray)")
	cmd.Flags().StringVarP(&out, "out", "o", "", "working set file to write (.json, .yaml or .yml)")
	cmd.Flags().StringVar(&name, "name", "", "working set name (default: input file name)")
	return cmd
}
