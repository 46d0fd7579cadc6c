package grid

// axisOrder is the fixed examination order of Classify.
var axisOrder = [...]Direction{Up, Down, Left, Right}

// Classify partitions the four axis-aligned neighbors of c.
// A neighbor n goes to Same when it is on the grid and same(value(c), value(n))
// holds; every other neighbor, including off-grid ones, goes to Different.
// Neighbors are examined up, down, left, right. Pure: g is not modified.
//
// c itself must be in bounds; Classify on an off-grid c reports all four
// neighbors as Different.
func Classify[T comparable](g *Grid[T], c Coordinate, same Predicate[T]) Neighbors {
	var nb Neighbors
	from, ok := g.Get(c)
	for _, d := range axisOrder {
		n := c.Step(d)
		to, in := g.Get(n)
		if ok && in && same(from, to) {
			nb.Same = append(nb.Same, n)
			continue
		}
		nb.Different = append(nb.Different, n)
	}
	return nb
}

// Equal returns the equality predicate used for region discovery.
func Equal[T comparable]() Predicate[T] {
	return func(from, to T) bool { return from == to }
}

// OneGreater holds when to is exactly from+1; used for trail search.
func OneGreater(from, to int) bool {
	return to == from+1
}
