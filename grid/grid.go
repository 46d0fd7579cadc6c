// Package grid provides a rectangular 2D lattice of comparable cell values
// together with the geometry shared by every traversal in gridkit:
//
//   - Coordinate and Vector value types with structural equality
//   - a fixed table of cardinal and diagonal Direction vectors
//   - bounds-checked access and in-place mutation
//   - a four-neighbor classifier driven by a Predicate
//
// Coordinates derived arithmetically must be checked with InBounds (or read
// with Get) before use; At and Set return ErrOutOfBounds otherwise.
package grid

import (
	"fmt"
	"iter"
)

// New constructs a Grid from a non-empty, rectangular 2D slice.
// It deep-copies the input so later mutation of rows has no effect.
// Returns ErrEmptyGrid if rows has no rows or no columns,
// ErrNonRectangular if any row length differs.
// Complexity: O(H×W) time and memory.
func New[T comparable](rows [][]T) (*Grid[T], error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	h, w := len(rows), len(rows[0])
	cells := make([]T, 0, h*w)
	for r, row := range rows {
		if len(row) != w {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrNonRectangular, r, len(row), w)
		}
		cells = append(cells, row...)
	}

	return &Grid[T]{height: h, width: w, cells: cells}, nil
}

// Filled returns a height×width grid with every cell set to v.
// Returns ErrEmptyGrid for non-positive dimensions.
func Filled[T comparable](height, width int, v T) (*Grid[T], error) {
	if height <= 0 || width <= 0 {
		return nil, ErrEmptyGrid
	}
	cells := make([]T, height*width)
	for i := range cells {
		cells[i] = v
	}
	return &Grid[T]{height: height, width: width, cells: cells}, nil
}

// Dimensions returns (height, width).
func (g *Grid[T]) Dimensions() (height, width int) {
	return g.height, g.width
}

// Height returns the number of rows.
func (g *Grid[T]) Height() int { return g.height }

// Width returns the number of columns.
func (g *Grid[T]) Width() int { return g.width }

// Len returns the number of cells.
func (g *Grid[T]) Len() int { return len(g.cells) }

// InBounds reports whether c lies within the grid boundaries.
// Complexity: O(1).
func (g *Grid[T]) InBounds(c Coordinate) bool {
	return c.Row >= 0 && c.Row < g.height && c.Col >= 0 && c.Col < g.width
}

// At returns the value stored at c, or ErrOutOfBounds.
func (g *Grid[T]) At(c Coordinate) (T, error) {
	if !g.InBounds(c) {
		var zero T
		return zero, fmt.Errorf("%w: %v in %dx%d", ErrOutOfBounds, c, g.height, g.width)
	}
	return g.cells[g.index(c)], nil
}

// Get is the checked lookup for arithmetic coordinates: it returns the
// value at c and true, or the zero value and false when c is off-grid.
func (g *Grid[T]) Get(c Coordinate) (T, bool) {
	if !g.InBounds(c) {
		var zero T
		return zero, false
	}
	return g.cells[g.index(c)], true
}

// Set overwrites the value at c in place, or returns ErrOutOfBounds.
func (g *Grid[T]) Set(c Coordinate, v T) error {
	if !g.InBounds(c) {
		return fmt.Errorf("%w: %v in %dx%d", ErrOutOfBounds, c, g.height, g.width)
	}
	g.cells[g.index(c)] = v
	return nil
}

// Coordinates yields every coordinate in row-major order.
func (g *Grid[T]) Coordinates() iter.Seq[Coordinate] {
	return func(yield func(Coordinate) bool) {
		for i := range g.cells {
			if !yield(g.Coordinate(i)) {
				return
			}
		}
	}
}

// All yields every (coordinate, value) pair in row-major order.
func (g *Grid[T]) All() iter.Seq2[Coordinate, T] {
	return func(yield func(Coordinate, T) bool) {
		for i, v := range g.cells {
			if !yield(g.Coordinate(i), v) {
				return
			}
		}
	}
}

// Find returns the first coordinate holding v in row-major order.
func (g *Grid[T]) Find(v T) (Coordinate, bool) {
	return g.FindFunc(func(x T) bool { return x == v })
}

// FindFunc returns the first coordinate whose value satisfies match.
func (g *Grid[T]) FindFunc(match func(T) bool) (Coordinate, bool) {
	for c, v := range g.All() {
		if match(v) {
			return c, true
		}
	}
	return Coordinate{}, false
}

// Clone returns an independent deep copy of g.
func (g *Grid[T]) Clone() *Grid[T] {
	cells := make([]T, len(g.cells))
	copy(cells, g.cells)
	return &Grid[T]{height: g.height, width: g.width, cells: cells}
}

// Rows returns a deep copy of the cells as a 2D slice.
func (g *Grid[T]) Rows() [][]T {
	rows := make([][]T, g.height)
	for r := range rows {
		rows[r] = make([]T, g.width)
		copy(rows[r], g.cells[r*g.width:(r+1)*g.width])
	}
	return rows
}

// Index maps an in-bounds c to its row-major index: Row*Width + Col.
// Complexity: O(1).
func (g *Grid[T]) Index(c Coordinate) int {
	return g.index(c)
}

func (g *Grid[T]) index(c Coordinate) int {
	return c.Row*g.width + c.Col
}

// Coordinate converts a row-major index back to a Coordinate.
// Complexity: O(1).
func (g *Grid[T]) Coordinate(idx int) Coordinate {
	return Coordinate{Row: idx / g.width, Col: idx % g.width}
}
