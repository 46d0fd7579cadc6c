// Package walker provides tunable options, state enums and error definitions
// for the directed grid walker.
package walker

import (
	"errors"
	"fmt"

	"github.com/PanoramicPanda/gridkit/grid"
)

// Sentinel errors for walker construction and execution.
var (
	// ErrNoAgent is returned when the grid holds no agent marker (^ > v <).
	ErrNoAgent = fmt.Errorf("%w: no agent marker found", grid.ErrMalformedInput)

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("walker: invalid option supplied")
)

// DefaultObstacle is the cell value that blocks the agent.
const DefaultObstacle = '#'

// State is the outcome of a single transition.
type State int

const (
	// Moving: the agent advanced one cell along its heading.
	Moving State = iota
	// Turning: the target was blocked; the agent rotated clockwise in place.
	Turning
	// Escaped: the target was off-grid. Terminal.
	Escaped
)

// String returns the state name.
func (s State) String() string {
	switch s {
	case Moving:
		return "moving"
	case Turning:
		return "turning"
	case Escaped:
		return "escaped"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// Outcome classifies a whole simulation run.
type Outcome int

const (
	// Terminates: the agent left the grid.
	Terminates Outcome = iota
	// Loop: a (position, heading) state repeated, so the walk never ends.
	Loop
)

// String returns the outcome name.
func (o Outcome) String() string {
	if o == Loop {
		return "loop"
	}
	return "terminates"
}

// Agent is the walker's mutable state. It is comparable and serves
// directly as the key of the visited-state set.
type Agent struct {
	Position grid.Coordinate
	Heading  grid.Direction
}

// Result holds the outcome of an unobstructed walk:
//   - Outcome: Terminates or Loop.
//   - Visited: distinct positions in first-visit order, start included.
//   - Steps:   transitions taken before escaping or repeating a state.
type Result struct {
	Outcome Outcome
	Visited []grid.Coordinate
	Steps   int
}

// Option configures Walker behavior via functional arguments.
// If an Option is invalid it is recorded and surfaced as
// ErrOptionViolation by New.
type Option func(*Options)

// Options holds parameters and callbacks to customize a Walker.
type Options struct {
	// Obstacle is the cell value that blocks movement.
	Obstacle rune

	// Workers bounds the goroutines LoopObstacles may run at once.
	// 1 evaluates hypotheses sequentially.
	Workers int

	// OnStep is called after every transition of Walk (not of the
	// hypothesis runs) with the new agent state and the transition kind.
	OnStep func(a Agent, s State)

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with:
//   - Obstacle '#'
//   - one worker
//   - a no-op OnStep hook
func DefaultOptions() Options {
	return Options{
		Obstacle: DefaultObstacle,
		Workers:  1,
		OnStep:   func(Agent, State) {},
	}
}

// WithObstacle sets the blocking cell value. Agent markers are rejected.
func WithObstacle(r rune) Option {
	return func(o *Options) {
		if _, isMarker := grid.DirectionFromMarker(r); isMarker {
			o.err = fmt.Errorf("%w: obstacle %q is an agent marker", ErrOptionViolation, r)
			return
		}
		o.Obstacle = r
	}
}

// WithWorkers sets the sweep parallelism.
//
//	n >= 1: at most n concurrent hypothesis runs
//	n < 1:  invalid option → ErrOptionViolation
func WithWorkers(n int) Option {
	return func(o *Options) {
		if n < 1 {
			o.err = fmt.Errorf("%w: Workers must be at least 1 (%d)", ErrOptionViolation, n)
			return
		}
		o.Workers = n
	}
}

// WithOnStep registers a callback run after every transition of Walk.
func WithOnStep(fn func(a Agent, s State)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnStep = fn
		}
	}
}
