package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/piwi3910/TrayCalc/internal/catalogue"
	"github.com/piwi3910/TrayCalc/internal/model"
)

func newCatalogueCmd(opts *rootOptions) *cobra.Command {
	var filter string

	cmd := &cobra.Command{
		Use:     "catalogue",
		Aliases: []string{"catalog"},
		Short:   "List the built-in cable and tray presets",
	}
	cmd.PersistentFlags().StringVar(&filter, "filter", "", "only list presets whose name contains this text")

	cables := &cobra.Command{
		Use:   "cables",
		Short: "List cable presets",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var rows [][]string
			for _, c := range catalogue.Cables() {
				if !matches(c.Name, filter) {
					continue
				}
				rows = append(rows, []string{
					c.Name,
					fmt.Sprintf("%.1f", c.Diameter),
					fmt.Sprintf("%.3f", c.Weight),
					numberPrinter.Sprintf("%.0f", model.CableArea(c.Diameter)),
				})
			}
			opts.logger.Debug("listed cables", "count", len(rows))
			fmt.Fprintln(cmd.OutOrStdout(), renderTable(
				[]string{"Cable", "Diameter (mm)", "Weight (kg/m)", "Area (mm²)"}, rows))
			return nil
		},
	}

	trays := &cobra.Command{
		Use:   "trays",
		Short: "List tray presets",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var rows [][]string
			for _, t := range catalogue.Trays() {
				if !matches(t.Name, filter) {
					continue
				}
				rows = append(rows, []string{
					t.Name,
					fmt.Sprintf("%.0f", t.Width),
					fmt.Sprintf("%.0f", t.Height),
					fmt.Sprintf("%.1f", t.MaxLoad),
					fmt.Sprintf("%.1f", t.SelfWeight),
					fmt.Sprintf("%.0f %%", t.MaxFillRatio*100),
				})
			}
			opts.logger.Debug("listed trays", "count", len(rows))
			fmt.Fprintln(cmd.OutOrStdout(), renderTable(
				[]string{"Tray", "Width (mm)", "Height (mm)", "Max load (kg/m)", "Self-weight (kg/m)", "Max fill"}, rows))
			return nil
		},
	}

	cmd.AddCommand(cables, trays)
	return cmd
}

func matches(name, filter string) bool {
	return filter == "" || strings.Contains(strings.ToLower(name), strings.ToLower(filter))
}
