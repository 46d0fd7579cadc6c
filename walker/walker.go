package walker

import (
	"github.com/zyedidia/generic/mapset"

	"github.com/PanoramicPanda/gridkit/grid"
)

// Walker owns an immutable snapshot of the map and the agent's start state.
type Walker struct {
	base  *grid.Grid[rune]
	start Agent
	opts  Options
}

// New scans g once for the agent marker and returns a Walker over a private
// copy of g. Returns ErrNoAgent when no marker is present or
// ErrOptionViolation for bad options.
func New(g *grid.Grid[rune], opts ...Option) (*Walker, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	pos, ok := g.FindFunc(func(r rune) bool {
		_, isMarker := grid.DirectionFromMarker(r)
		return isMarker
	})
	if !ok {
		return nil, ErrNoAgent
	}
	marker, _ := g.Get(pos)
	heading, _ := grid.DirectionFromMarker(marker)

	return &Walker{
		base:  g.Clone(),
		start: Agent{Position: pos, Heading: heading},
		opts:  o,
	}, nil
}

// Start returns the agent state found by the initial scan.
func (w *Walker) Start() Agent {
	return w.start
}

// Step applies one transition on the unmodified map.
func (w *Walker) Step(a Agent) (Agent, State) {
	return w.step(a, overlay{})
}

// Walk runs the unobstructed patrol from the start state, accumulating the
// distinct positions visited. It stops on escape or on the first repeated
// (position, heading) state.
func (w *Walker) Walk() Result {
	return w.run(overlay{}, true, true)
}

// Simulate runs a bounded patrol with one temporary obstacle at c, layered
// over the map without modifying it. Each call uses its own visited-state
// set; an off-grid c has no effect.
func (w *Walker) Simulate(c grid.Coordinate) Outcome {
	return w.run(overlay{cell: c, active: true}, false, false).Outcome
}

// overlay is a sparse layer of temporary obstacles consulted on lookup.
type overlay struct {
	cell   grid.Coordinate
	active bool
}

func (ov overlay) blocks(c grid.Coordinate) bool {
	return ov.active && ov.cell == c
}

// step computes the target cell and applies the transition rule:
// off-grid → Escaped; obstacle → turn right in place; otherwise move.
func (w *Walker) step(a Agent, ov overlay) (Agent, State) {
	target := a.Position.Step(a.Heading)
	cell, ok := w.base.Get(target)
	switch {
	case !ok:
		return a, Escaped
	case cell == w.opts.Obstacle || ov.blocks(target):
		return Agent{Position: a.Position, Heading: a.Heading.TurnRight()}, Turning
	default:
		return Agent{Position: target, Heading: a.Heading}, Moving
	}
}

// run is the single simulation loop behind Walk and Simulate. The number
// of distinct states is at most 4×cells, so it always returns within that
// many steps. track collects visited positions; notify fires OnStep.
func (w *Walker) run(ov overlay, track, notify bool) Result {
	var res Result
	seen := mapset.New[Agent]()
	cells := mapset.New[grid.Coordinate]()

	a := w.start
	seen.Put(a)
	if track {
		cells.Put(a.Position)
		res.Visited = append(res.Visited, a.Position)
	}

	for {
		next, st := w.step(a, ov)
		if notify {
			w.opts.OnStep(next, st)
		}
		if st == Escaped {
			res.Outcome = Terminates
			return res
		}
		res.Steps++
		if seen.Has(next) {
			res.Outcome = Loop
			return res
		}
		seen.Put(next)
		a = next

		if track && !cells.Has(a.Position) {
			cells.Put(a.Position)
			res.Visited = append(res.Visited, a.Position)
		}
	}
}
