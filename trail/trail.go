// Package trail searches a height map for hiking trails: paths that start
// at height 0 and climb exactly one unit per orthogonal step to a summit.
//
// Complexity: FindTrails is O(P·L) for P trails of length L; on a 0..9 map
// each trail has at most 10 cells but the number of trails may grow
// exponentially with the map size.
package trail

import (
	"slices"

	"github.com/zyedidia/generic/mapset"

	"github.com/PanoramicPanda/gridkit/grid"
)

// DefaultSummit is the height a trail must reach.
const DefaultSummit = 9

// Trailheads returns every height-0 cell in row-major order.
func Trailheads(g *grid.Grid[int]) []grid.Coordinate {
	var heads []grid.Coordinate
	for c, v := range g.All() {
		if v == 0 {
			heads = append(heads, c)
		}
	}
	return heads
}

// FindTrails returns every path from start that climbs one unit per step
// and reaches target. Neighbors are explored up, down, left, right, so the
// result order is deterministic. An off-grid or impassable start yields no
// trails.
func FindTrails(g *grid.Grid[int], start grid.Coordinate, target int) [][]grid.Coordinate {
	v, ok := g.Get(start)
	if !ok || v == grid.Impassable {
		return nil
	}
	var trails [][]grid.Coordinate
	climb(g, start, target, nil, &trails)
	return trails
}

// climb extends path by c and recurses into every one-greater neighbor.
// path is clipped before appending so sibling branches never share storage.
func climb(g *grid.Grid[int], c grid.Coordinate, target int, path []grid.Coordinate, trails *[][]grid.Coordinate) {
	path = append(slices.Clip(path), c)
	if v, _ := g.Get(c); v == target {
		*trails = append(*trails, path)
	}
	for _, n := range grid.Classify(g, c, grid.OneGreater).Same {
		climb(g, n, target, path, trails)
	}
}

// Score counts the distinct summits reachable from head.
func Score(g *grid.Grid[int], head grid.Coordinate) int {
	ends := mapset.New[grid.Coordinate]()
	for _, t := range FindTrails(g, head, DefaultSummit) {
		ends.Put(t[len(t)-1])
	}
	return ends.Size()
}

// Rating counts the distinct trails from head to any summit.
func Rating(g *grid.Grid[int], head grid.Coordinate) int {
	return len(FindTrails(g, head, DefaultSummit))
}

// ScoreMap sums Score over all trailheads.
func ScoreMap(g *grid.Grid[int]) int {
	total := 0
	for _, h := range Trailheads(g) {
		total += Score(g, h)
	}
	return total
}

// RateMap sums Rating over all trailheads.
func RateMap(g *grid.Grid[int]) int {
	total := 0
	for _, h := range Trailheads(g) {
		total += Rating(g, h)
	}
	return total
}
