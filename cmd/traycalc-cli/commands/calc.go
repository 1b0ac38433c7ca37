package commands

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/piwi3910/TrayCalc/internal/model"
	"github.com/piwi3910/TrayCalc/internal/project"
)

// calcResult is the --json output of calc.
type calcResult struct {
	Name    string          `json:"name"`
	Tray    model.TrayType  `json:"tray"`
	Stats   model.TrayStats `json:"stats"`
	Status  string          `json:"status"`
	Failing bool            `json:"failing"`
}

func newCalcCmd(opts *rootOptions) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "calc <workingset>",
		Short: "Evaluate a working set against its tray's limits",
		Long: `Evaluate the cables of a working set against its tray's allowable load
and recommended fill. Exits with status 2 when a limit is exceeded.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ws, err := project.LoadWorkingSet(args[0])
			if err != nil {
				return err
			}
			stats, a := ws.Evaluate(opts.config.EffectiveFillRatioForHeight)
			opts.logger.Debug("evaluated working set",
				"path", args[0],
				"entries", len(ws.Cables),
				"status", a.Status.String(),
			)

			out := cmd.OutOrStdout()
			if asJSON {
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				if err := enc.Encode(calcResult{
					Name:    ws.Name,
					Tray:    ws.Tray,
					Stats:   stats,
					Status:  a.Status.String(),
					Failing: a.Status.Failing(),
				}); err != nil {
					return fmt.Errorf("failed to write result: %w", err)
				}
			} else {
				printSummary(out, ws, stats, a, opts.config.NearLimitPercent)
			}

			if a.Status.Failing() {
				return ErrOverloaded
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "print the result as JSON")
	return cmd
}
