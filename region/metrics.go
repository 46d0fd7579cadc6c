package region

// Area is the number of member cells.
func (r *Region[T]) Area() int {
	return len(r.Cells)
}

// Perimeter counts outward-facing edges: the Different neighbors of every member.
func (r *Region[T]) Perimeter() int {
	p := 0
	for _, nb := range r.Neighbors {
		p += len(nb.Different)
	}
	return p
}

// Price is area × perimeter.
func (r *Region[T]) Price() int {
	return r.Area() * r.Perimeter()
}

// Corners counts boundary vertices. For every member and every diagonal,
// with a = the two flanking orthogonal neighbors:
//
//	outer:        diagonal out, both a out
//	inner:        diagonal in,  both a out
//	transitional: diagonal out, both a in
//
// Each diagonal of each cell is checked on its own; a cell may contribute
// up to four corners.
func (r *Region[T]) Corners() int {
	corners := 0
	for _, c := range r.Cells {
		for _, cc := range cornerChecks {
			diagIn := r.Contains(c.Step(cc.diag))
			a0 := r.Contains(c.Step(cc.adj[0]))
			a1 := r.Contains(c.Step(cc.adj[1]))
			switch {
			case !diagIn && !a0 && !a1: // outer
				corners++
			case diagIn && !a0 && !a1: // inner
				corners++
			case !diagIn && a0 && a1: // transitional
				corners++
			}
		}
	}
	return corners
}

// Sides equals Corners: a closed rectilinear boundary has as many sides as vertices.
func (r *Region[T]) Sides() int {
	return r.Corners()
}

// BulkPrice is area × corners.
func (r *Region[T]) BulkPrice() int {
	return r.Area() * r.Corners()
}

// Metrics computes every measurement of r in one call.
func (r *Region[T]) Metrics() Metrics {
	area, perimeter, corners := r.Area(), r.Perimeter(), r.Corners()
	return Metrics{
		Area:      area,
		Perimeter: perimeter,
		Price:     area * perimeter,
		Corners:   corners,
		BulkPrice: area * corners,
	}
}

// TotalPrice sums Price over regions.
func TotalPrice[T comparable](regions []*Region[T]) int {
	total := 0
	for _, r := range regions {
		total += r.Price()
	}
	return total
}

// TotalBulkPrice sums BulkPrice over regions.
func TotalBulkPrice[T comparable](regions []*Region[T]) int {
	total := 0
	for _, r := range regions {
		total += r.BulkPrice()
	}
	return total
}
