package ray

import (
	"slices"

	"github.com/zyedidia/generic/mapset"

	"github.com/PanoramicPanda/gridkit/grid"
)

// Antennas groups every non-empty cell of g by its value, each group in
// row-major order.
func Antennas(g *grid.Grid[rune], empty rune) map[rune][]grid.Coordinate {
	groups := make(map[rune][]grid.Coordinate)
	for c, v := range g.All() {
		if v == empty {
			continue
		}
		groups[v] = append(groups[v], c)
	}
	return groups
}

// Pairs returns each unordered pair of cs exactly once.
func Pairs(cs []grid.Coordinate) [][2]grid.Coordinate {
	var pairs [][2]grid.Coordinate
	for i := range cs {
		for j := i + 1; j < len(cs); j++ {
			pairs = append(pairs, [2]grid.Coordinate{cs[i], cs[j]})
		}
	}
	return pairs
}

// Antinodes places, for every pair of same-valued antennas, one antinode
// on the far side of each antenna at the pair's own distance, dropping
// those off the grid. Returns distinct coordinates in row-major order.
func Antinodes(g *grid.Grid[rune], empty rune) []grid.Coordinate {
	nodes := mapset.New[grid.Coordinate]()
	eachPair(g, empty, func(a, b grid.Coordinate) {
		for _, c := range [...]grid.Coordinate{a.Add(StepVector(a, b)), b.Add(StepVector(b, a))} {
			if g.InBounds(c) {
				nodes.Put(c)
			}
		}
	})
	return sorted(nodes)
}

// ResonantAntinodes extends Antinodes: antinodes repeat along the pair's
// line in both directions up to the grid edge, and the antennas themselves
// count as antinodes.
func ResonantAntinodes(g *grid.Grid[rune], empty rune) []grid.Coordinate {
	nodes := mapset.New[grid.Coordinate]()
	eachPair(g, empty, func(a, b grid.Coordinate) {
		for c := range Cast(g, a, StepVector(a, b)) {
			nodes.Put(c)
		}
		for c := range Cast(g, b, StepVector(b, a)) {
			nodes.Put(c)
		}
		nodes.Put(a)
		nodes.Put(b)
	})
	return sorted(nodes)
}

func eachPair(g *grid.Grid[rune], empty rune, fn func(a, b grid.Coordinate)) {
	for _, group := range Antennas(g, empty) {
		for _, p := range Pairs(group) {
			fn(p[0], p[1])
		}
	}
}

func sorted(set mapset.Set[grid.Coordinate]) []grid.Coordinate {
	out := make([]grid.Coordinate, 0, set.Size())
	set.Each(func(c grid.Coordinate) {
		out = append(out, c)
	})
	slices.SortFunc(out, grid.Compare)
	return out
}
