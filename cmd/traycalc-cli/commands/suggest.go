package commands

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/piwi3910/TrayCalc/internal/catalogue"
	"github.com/piwi3910/TrayCalc/internal/engine"
	"github.com/piwi3910/TrayCalc/internal/project"
)

func newSuggestCmd(opts *rootOptions) *cobra.Command {
	var (
		limit       int
		passingOnly bool
		libraryPath string
		applyPath   string
	)

	cmd := &cobra.Command{
		Use:   "suggest <workingset>",
		Short: "Rank trays for the cables of a working set",
		Long: `Evaluate the working set's cables against every catalogue tray (or the
trays of a preset library) and list them best first: adequate trays
ordered by how close they run to their first limit, then overloaded
trays, least overloaded first.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ws, err := project.LoadWorkingSet(args[0])
			if err != nil {
				return err
			}
			if ws.Empty() {
				return errors.New("working set has no valid cables")
			}

			trays := catalogue.Trays()
			if libraryPath != "" {
				lib, err := project.LoadLibrary(libraryPath)
				if err != nil {
					return err
				}
				trays = trays[:0]
				for _, p := range lib.Trays {
					trays = append(trays, p.ToTrayType())
				}
			}

			ratio := opts.config.EffectiveFillRatioForHeight
			suggestions := engine.SuggestTrays(ws.Cables, trays, ratio)
			opts.logger.Debug("ranked trays", "candidates", len(trays))

			var rows [][]string
			for i, s := range suggestions {
				if passingOnly && !s.Passes() {
					break
				}
				if limit > 0 && len(rows) >= limit {
					break
				}
				status := color.GreenString(s.Assessment.Status.String())
				if !s.Passes() {
					status = color.HiRedString(s.Assessment.Status.String())
				}
				rows = append(rows, []string{
					strconv.Itoa(i + 1),
					s.Tray.Name,
					fmt.Sprintf("%.1f %%", s.Stats.StructuralUtilisationPercent),
					fmt.Sprintf("%.1f %%", s.Stats.AreaFillPercent),
					fmt.Sprintf("%.1f %%", s.Utilisation()),
					status,
				})
			}

			out := cmd.OutOrStdout()
			if len(rows) == 0 {
				fmt.Fprintln(out, "No tray carries these cables within its limits.")
			} else {
				fmt.Fprintln(out, renderTable(
					[]string{"#", "Tray", "Structural", "Fill", "Utilisation", "Status"}, rows))
			}

			if applyPath == "" {
				return nil
			}
			best, ok := engine.BestTray(ws.Cables, trays, ratio)
			if !ok {
				return errors.New("no adequate tray to apply")
			}
			updated := ws.Clone()
			updated.Tray = best.Tray
			if err := project.SaveWorkingSet(applyPath, updated); err != nil {
				return err
			}
			opts.logger.Info("applied suggested tray", "tray", best.Tray.Name, "path", applyPath)
			fmt.Fprintf(out, "Wrote %s with tray %q\n", applyPath, best.Tray.Name)
			return nil
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 10, "maximum number of trays to list (0 for all)")
	cmd.Flags().BoolVar(&passingOnly, "passing", false, "only list trays within both limits")
	cmd.Flags().StringVar(&libraryPath, "library", "", "rank the trays of this preset library instead of the catalogue")
	cmd.Flags().StringVar(&applyPath, "apply", "", "write a copy of the working set using the best tray to this path")
	return cmd
}
