package cmd

import (
	"github.com/spf13/cobra"

	"github.com/PanoramicPanda/gridkit/grid"
	"github.com/PanoramicPanda/gridkit/region"
)

var gardenCmd = newGardenCmd()

func newGardenCmd() *cobra.Command {
	return newPuzzleCmd(puzzle{
		use:   "garden",
		short: "Price the fences around every garden region",
		day:   12,
		title: "Garden Groups",
		solve: solveGarden,
	})
}

func solveGarden(r run) ([]answer, error) {
	g, err := grid.Parse(r.lines)
	if err != nil {
		return nil, err
	}
	regions := region.DiscoverAll(g)
	r.logger.Debug("regions discovered", "count", len(regions))

	return []answer{
		{"regions", len(regions)},
		{"fence price", region.TotalPrice(regions)},
		{"bulk price", region.TotalBulkPrice(regions)},
	}, nil
}

func init() {
	rootCmd.AddCommand(gardenCmd)
}
