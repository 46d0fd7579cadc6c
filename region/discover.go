package region

import (
	"github.com/zyedidia/generic/mapset"

	"github.com/PanoramicPanda/gridkit/grid"
)

// DiscoverAll partitions g into maximal regions of equal, 4-connected cells.
// Seeds are taken in row-major order, so regions are enumerated by the
// position of their first cell; every coordinate of g belongs to exactly
// one returned region.
//
// Time:   O(H·W·4).
// Memory: O(H·W) for the assigned flags and output.
func DiscoverAll[T comparable](g *grid.Grid[T]) []*Region[T] {
	assigned := make([]bool, g.Len())
	same := grid.Equal[T]()
	var regions []*Region[T]

	for i := range assigned {
		if assigned[i] {
			continue
		}
		regions = append(regions, discover(g, g.Coordinate(i), same, assigned))
	}
	return regions
}

// discover runs one BFS from seed through Same neighbors, marking every
// reached cell in assigned.
func discover[T comparable](g *grid.Grid[T], seed grid.Coordinate, same grid.Predicate[T], assigned []bool) *Region[T] {
	value, _ := g.Get(seed)
	r := &Region[T]{
		Value:     value,
		Neighbors: make(map[grid.Coordinate]grid.Neighbors),
		members:   mapset.New[grid.Coordinate](),
	}

	queue := []grid.Coordinate{seed}
	assigned[g.Index(seed)] = true
	for qi := 0; qi < len(queue); qi++ {
		u := queue[qi]
		nb := grid.Classify(g, u, same)
		r.Cells = append(r.Cells, u)
		r.Neighbors[u] = nb
		r.members.Put(u)

		for _, v := range nb.Same {
			vi := g.Index(v)
			if !assigned[vi] {
				assigned[vi] = true
				queue = append(queue, v)
			}
		}
	}
	return r
}
