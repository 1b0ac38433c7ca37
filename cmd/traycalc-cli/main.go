// traycalc: command line cable tray loading & fill calculator.
//
// Build:
//   go build -o traycalc-cli ./cmd/traycalc-cli
//
// Examples:
//   traycalc-cli catalogue trays --filter ladder
//   traycalc-cli import cables.csv --tray "Ladder HDG heavy 300 x 100" -o riser.json
//   traycalc-cli calc riser.json
//   traycalc-cli suggest riser.json --passing
//   traycalc-cli export riser.json -f pdf -o riser.pdf

package main

import "github.com/piwi3910/TrayCalc/cmd/traycalc-cli/commands"

func main() {
	commands.Execute()
}
