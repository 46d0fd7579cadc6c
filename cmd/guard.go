package cmd

import (
	"github.com/spf13/cobra"

	"github.com/PanoramicPanda/gridkit/grid"
	"github.com/PanoramicPanda/gridkit/walker"
)

var guardCmd = newGuardCmd()

func newGuardCmd() *cobra.Command {
	return newPuzzleCmd(puzzle{
		use:   "guard",
		short: "Trace the patrolling guard and count loop-forming obstacles",
		day:   6,
		title: "Guard Gallivant",
		solve: solveGuard,
	})
}

func solveGuard(r run) ([]answer, error) {
	g, err := grid.Parse(r.lines)
	if err != nil {
		return nil, err
	}

	turns := 0
	w, err := walker.New(g,
		walker.WithWorkers(r.cfg.Workers),
		walker.WithOnStep(func(_ walker.Agent, s walker.State) {
			if s == walker.Turning {
				turns++
			}
		}),
	)
	if err != nil {
		return nil, err
	}

	res := w.Walk()
	r.logger.Debug("walk finished", "start", w.Start().Position, "outcome", res.Outcome, "steps", res.Steps)

	traps, err := w.LoopObstacles(r.ctx)
	if err != nil {
		return nil, err
	}
	return []answer{
		{"visited cells", len(res.Visited)},
		{"steps", res.Steps},
		{"turns", turns},
		{"loop obstacles", len(traps)},
	}, nil
}

func init() {
	rootCmd.AddCommand(guardCmd)
}
