package cmd

import (
	"github.com/spf13/cobra"

	"github.com/PanoramicPanda/gridkit/grid"
	"github.com/PanoramicPanda/gridkit/trail"
)

var trailsCmd = newTrailsCmd()

func newTrailsCmd() *cobra.Command {
	return newPuzzleCmd(puzzle{
		use:   "trails",
		short: "Score and rate hiking trails on a height map",
		day:   10,
		title: "Hoof It",
		solve: solveTrails,
	})
}

func solveTrails(r run) ([]answer, error) {
	g, err := grid.ParseDigits(r.lines)
	if err != nil {
		return nil, err
	}
	heads := trail.Trailheads(g)
	r.logger.Debug("trailheads found", "count", len(heads))

	return []answer{
		{"trailheads", len(heads)},
		{"score", trail.ScoreMap(g)},
		{"rating", trail.RateMap(g)},
	}, nil
}

func init() {
	rootCmd.AddCommand(trailsCmd)
}
