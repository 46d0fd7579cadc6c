// Package grid defines core types and sentinel errors
// for the grid subpackage of github.com/PanoramicPanda/gridkit.
package grid

import (
	"errors"
	"fmt"
)

// Sentinel errors for grid operations.
var (
	// ErrEmptyGrid indicates input grid has no rows or no columns.
	ErrEmptyGrid = errors.New("grid: input grid must have at least one row and one column")
	// ErrMalformedInput indicates input that cannot describe a valid grid.
	ErrMalformedInput = errors.New("grid: malformed input")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = fmt.Errorf("%w: all rows must have the same length", ErrMalformedInput)
	// ErrOutOfBounds indicates access to a coordinate outside the grid extents.
	ErrOutOfBounds = errors.New("grid: coordinate out of bounds")
	// ErrUnknownDirection indicates a direction name or marker with no vector.
	ErrUnknownDirection = errors.New("grid: unknown direction")
)

// Impassable is the cell value ParseDigits stores for '.' cells.
const Impassable = -1

// Coordinate is a (row, column) pair. It may lie outside any grid while
// being computed; check InBounds before dereferencing.
type Coordinate struct {
	Row, Col int
}

// Vector is a signed (Δrow, Δcol) displacement.
type Vector struct {
	DRow, DCol int
}

// Neighbors partitions the four axis-aligned neighbors of a cell.
// Off-grid neighbors are always in Different.
type Neighbors struct {
	Same      []Coordinate
	Different []Coordinate
}

// Predicate decides whether the neighbor value to counts as "same" as from.
type Predicate[T comparable] func(from, to T) bool

// Grid is a rectangular, row-major lattice of cell values.
// Height and width are fixed at construction; cells are mutated in place.
type Grid[T comparable] struct {
	height, width int
	cells         []T
}
