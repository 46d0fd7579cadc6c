// Package ray casts lattice lines: it reconstructs the step vector between
// two grid points and lazily projects coordinates along it.
package ray

import (
	"cmp"
	"iter"

	"github.com/PanoramicPanda/gridkit/grid"
)

// Bounds is anything that can tell whether a coordinate is on its lattice;
// *grid.Grid[T] satisfies it.
type Bounds interface {
	InBounds(c grid.Coordinate) bool
}

// Distance returns the absolute per-axis distance between a and b.
func Distance(a, b grid.Coordinate) grid.Vector {
	return grid.Vector{DRow: abs(a.Row - b.Row), DCol: abs(a.Col - b.Col)}
}

// StepVector returns the displacement that carries b onto a, rebuilt from
// the absolute distance and the ordering of a and b on each axis.
// StepVector(a, b) is always the negation of StepVector(b, a).
func StepVector(a, b grid.Coordinate) grid.Vector {
	d := Distance(a, b)
	return grid.Vector{
		DRow: cmp.Compare(a.Row, b.Row) * d.DRow,
		DCol: cmp.Compare(a.Col, b.Col) * d.DCol,
	}
}

// ProjectLine lazily yields origin+step, origin+2·step, ... without end.
// The caller stops consuming, typically through Within. A zero step
// yields nothing.
func ProjectLine(origin grid.Coordinate, step grid.Vector) iter.Seq[grid.Coordinate] {
	return func(yield func(grid.Coordinate) bool) {
		if step.IsZero() {
			return
		}
		for c := origin.Add(step); ; c = c.Add(step) {
			if !yield(c) {
				return
			}
		}
	}
}

// Within truncates seq at its first coordinate outside b.
func Within(b Bounds, seq iter.Seq[grid.Coordinate]) iter.Seq[grid.Coordinate] {
	return func(yield func(grid.Coordinate) bool) {
		for c := range seq {
			if !b.InBounds(c) || !yield(c) {
				return
			}
		}
	}
}

// Cast is Within(b, ProjectLine(origin, step)).
func Cast(b Bounds, origin grid.Coordinate, step grid.Vector) iter.Seq[grid.Coordinate] {
	return Within(b, ProjectLine(origin, step))
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
