package cmd

import (
	"github.com/spf13/cobra"

	"github.com/PanoramicPanda/gridkit/grid"
	"github.com/PanoramicPanda/gridkit/ray"
)

// emptyCell marks a cell with no antenna.
const emptyCell = '.'

var antennasCmd = newAntennasCmd()

func newAntennasCmd() *cobra.Command {
	return newPuzzleCmd(puzzle{
		use:   "antennas",
		short: "Count antinodes of same-frequency antenna pairs",
		day:   8,
		title: "Resonant Collinearity",
		solve: solveAntennas,
	})
}

func solveAntennas(r run) ([]answer, error) {
	g, err := grid.Parse(r.lines)
	if err != nil {
		return nil, err
	}
	r.logger.Debug("antennas grouped", "frequencies", len(ray.Antennas(g, emptyCell)))

	return []answer{
		{"antinodes", len(ray.Antinodes(g, emptyCell))},
		{"resonant antinodes", len(ray.ResonantAntinodes(g, emptyCell))},
	}, nil
}

func init() {
	rootCmd.AddCommand(antennasCmd)
}
