// Package region defines the Region type and metrics
// for the region subpackage of github.com/PanoramicPanda/gridkit.
package region

import (
	"github.com/zyedidia/generic/mapset"

	"github.com/PanoramicPanda/gridkit/grid"
)

// Region is a maximal set of 4-connected cells sharing one value.
// It is immutable after DiscoverAll returns it.
type Region[T comparable] struct {
	// Value is the cell value shared by every member.
	Value T
	// Cells lists members in BFS discovery order, seed first.
	Cells []grid.Coordinate
	// Neighbors holds each member's classification against the equality predicate.
	Neighbors map[grid.Coordinate]grid.Neighbors

	members mapset.Set[grid.Coordinate]
}

// Metrics bundles the scalar measurements of one region.
type Metrics struct {
	Area      int
	Perimeter int
	Price     int
	Corners   int
	BulkPrice int
}

// Contains reports whether c is a member of r. Off-grid coordinates are never members.
func (r *Region[T]) Contains(c grid.Coordinate) bool {
	return r.members.Has(c)
}

// cornerCheck pairs one diagonal with the two orthogonal directions that flank it.
type cornerCheck struct {
	diag grid.Direction
	adj  [2]grid.Direction
}

var cornerChecks = [...]cornerCheck{
	{diag: grid.UpLeft, adj: [2]grid.Direction{grid.Up, grid.Left}},
	{diag: grid.UpRight, adj: [2]grid.Direction{grid.Up, grid.Right}},
	{diag: grid.DownLeft, adj: [2]grid.Direction{grid.Down, grid.Left}},
	{diag: grid.DownRight, adj: [2]grid.Direction{grid.Down, grid.Right}},
}
