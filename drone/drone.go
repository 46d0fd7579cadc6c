package drone

import (
	"fmt"
	"strings"

	"github.com/PanoramicPanda/gridkit/grid"
)

// Parse reads one "p=X,Y v=DX,DY" line.
func Parse(line string) (Drone, error) {
	var x, y, dx, dy int
	n, err := fmt.Sscanf(strings.TrimSpace(line), "p=%d,%d v=%d,%d", &x, &y, &dx, &dy)
	if err != nil || n != 4 {
		return Drone{}, fmt.Errorf("%w: %q", ErrMalformedDrone, line)
	}
	return Drone{
		Position: grid.Coordinate{Row: y, Col: x},
		Velocity: grid.Vector{DRow: dy, DCol: dx},
	}, nil
}

// ParseAll reads one drone per line.
func ParseAll(lines []string) ([]Drone, error) {
	drones := make([]Drone, 0, len(lines))
	for i, line := range lines {
		d, err := Parse(line)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", i+1, err)
		}
		drones = append(drones, d)
	}
	return drones, nil
}

// NewFloor returns a width×height floor holding a copy of drones.
func NewFloor(width, height int, drones []Drone) (*Floor, error) {
	if width < 1 || height < 1 {
		return nil, fmt.Errorf("%w (%dx%d)", ErrInvalidSize, width, height)
	}
	f := &Floor{width: width, height: height, drones: append([]Drone(nil), drones...)}
	for _, d := range f.drones {
		if !f.InBounds(d.Position) {
			return nil, fmt.Errorf("%w: drone at %v on %dx%d floor", grid.ErrOutOfBounds, d.Position, width, height)
		}
	}
	return f, nil
}

// Dimensions returns the floor width and height.
func (f *Floor) Dimensions() (width, height int) { return f.width, f.height }

// Drones returns a copy of the current drone states.
func (f *Floor) Drones() []Drone { return append([]Drone(nil), f.drones...) }

// InBounds reports whether c lies on the floor.
func (f *Floor) InBounds(c grid.Coordinate) bool {
	return c.Row >= 0 && c.Row < f.height && c.Col >= 0 && c.Col < f.width
}

// Move advances every drone times steps, wrapping at the edges. A negative
// times moves drones backwards.
func (f *Floor) Move(times int) {
	for i := range f.drones {
		d := &f.drones[i]
		p := d.Position.Add(d.Velocity.Scale(times))
		d.Position = grid.Coordinate{Row: wrap(p.Row, f.height), Col: wrap(p.Col, f.width)}
	}
}

// wrap maps v into [0, n).
func wrap(v, n int) int {
	return ((v % n) + n) % n
}

// QuadrantOf returns the quadrant holding c. Cells on the middle row or
// middle column belong to none.
func (f *Floor) QuadrantOf(c grid.Coordinate) (Quadrant, bool) {
	midRow, midCol := f.height/2, f.width/2
	if c.Row == midRow || c.Col == midCol {
		return 0, false
	}
	q := TopLeft
	if c.Col > midCol {
		q = TopRight
	}
	if c.Row > midRow {
		q += BottomLeft
	}
	return q, true
}

// QuadrantCounts returns the number of drones per quadrant, indexed by Quadrant.
func (f *Floor) QuadrantCounts() [4]int {
	var counts [4]int
	for _, d := range f.drones {
		if q, ok := f.QuadrantOf(d.Position); ok {
			counts[q]++
		}
	}
	return counts
}

// SafetyScore multiplies the four quadrant counts.
func (f *Floor) SafetyScore() int {
	score := 1
	for _, n := range f.QuadrantCounts() {
		score *= n
	}
	return score
}
