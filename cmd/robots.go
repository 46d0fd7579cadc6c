package cmd

import (
	"github.com/spf13/cobra"

	"github.com/PanoramicPanda/gridkit/drone"
)

var robotsCmd = newRobotsCmd()

func newRobotsCmd() *cobra.Command {
	var width, height, seconds int
	cmd := newPuzzleCmd(puzzle{
		use:   "robots",
		short: "Drift drones across a wrapping floor and score their quadrants",
		day:   14,
		title: "Restroom Redoubt",
		solve: func(r run) ([]answer, error) {
			return solveRobots(r, width, height, seconds)
		},
	})
	cmd.Flags().IntVar(&width, "width", 101, "floor width")
	cmd.Flags().IntVar(&height, "height", 103, "floor height")
	cmd.Flags().IntVar(&seconds, "seconds", 100, "moves to simulate")

	return cmd
}

func solveRobots(r run, width, height, seconds int) ([]answer, error) {
	drones, err := drone.ParseAll(r.lines)
	if err != nil {
		return nil, err
	}
	f, err := drone.NewFloor(width, height, drones)
	if err != nil {
		return nil, err
	}
	f.Move(seconds)
	r.logger.Debug("drones moved", "drones", len(drones), "seconds", seconds)

	answers := []answer{{"drones", len(drones)}}
	counts := f.QuadrantCounts()
	for _, q := range drone.Quadrants() {
		answers = append(answers, answer{q.String(), counts[q]})
	}
	return append(answers, answer{"safety score", f.SafetyScore()}), nil
}

func init() {
	rootCmd.AddCommand(robotsCmd)
}
